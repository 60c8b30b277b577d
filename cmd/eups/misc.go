package eups

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RobertLuptonTheGood/eups/pkg/cli"
)

func newFlavorCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "flavor",
		Short:   MsgFlavorShort,
		GroupID: "info",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := newContext()
			if err != nil {
				return err
			}
			fmt.Println(cli.Flavor(ctx, flags.flavor))
			return nil
		},
	}
	return cmd
}

func newExpandtableCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "expandtable <product> [version-expr]",
		Short:   MsgExpandtableShort,
		GroupID: "info",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := newContext()
			if err != nil {
				return err
			}
			var versionExpr string
			if len(args) == 2 {
				versionExpr = args[1]
			}
			actions, err := cli.ExpandTable(ctx, args[0], versionExpr, flags.flavor)
			if err != nil {
				return err
			}
			for _, act := range actions {
				fmt.Printf("%s(%s)\n", act.Name, joinArgs(act.Args))
			}
			return nil
		},
	}
	return cmd
}

func newPathCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "path <product> [version-expr]",
		Short:   MsgPathShort,
		GroupID: "info",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := newContext()
			if err != nil {
				return err
			}
			var versionExpr string
			if len(args) == 2 {
				versionExpr = args[1]
			}
			dir, err := cli.Path(ctx, args[0], versionExpr, flags.flavor)
			if err != nil {
				return err
			}
			fmt.Println(dir)
			return nil
		},
	}
	return cmd
}

func joinArgs(args []string) string {
	out := ""
	for i, a := range args {
		if i > 0 {
			out += ", "
		}
		out += a
	}
	return out
}
