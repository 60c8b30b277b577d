package eups

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RobertLuptonTheGood/eups/pkg/cli"
)

func newDeclareCmd(flags *globalFlags) *cobra.Command {
	var (
		productDir, upsDir, tableFile, qualifiers, declarer string
		tags                                                []string
		force                                                bool
	)

	cmd := &cobra.Command{
		Use:     "declare <product> <version>",
		Short:   MsgDeclareShort,
		GroupID: "db",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := newContext()
			if err != nil {
				return err
			}
			opts := cli.DeclareOptions{
				Product:    args[0],
				Version:    args[1],
				Flavor:     ctx.Flavor(flags.flavor),
				ProductDir: productDir,
				UpsDir:     upsDir,
				TableFile:  tableFile,
				Qualifiers: qualifiers,
				Tags:       tags,
				StackRoot:  flags.stackRoot,
				Declarer:   declarer,
			}
			if err := cli.Declare(ctx, opts, force); err != nil {
				return err
			}
			fmt.Printf("declared %s %s\n", opts.Product, opts.Version)
			return nil
		},
	}

	cmd.Flags().StringVarP(&productDir, "root", "r", "", "product directory")
	cmd.Flags().StringVar(&upsDir, "ups-dir", "ups", "ups directory relative to the product directory")
	cmd.Flags().StringVarP(&tableFile, "table", "m", "", "table file name (defaults to <product>.table in ups-dir)")
	cmd.Flags().StringVar(&qualifiers, "qualifiers", "", "qualifier string recorded with this declaration")
	cmd.Flags().StringArrayVarP(&tags, "tag", "t", nil, "tag to assign to this version (repeatable)")
	cmd.Flags().StringVar(&declarer, "declarer", "", "name recorded as this declaration's author")
	cmd.Flags().BoolVarP(&force, "force", "F", false, "overwrite an existing, conflicting declaration")

	return cmd
}

func newUndeclareCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "undeclare <product> <version>",
		Short:   MsgUndeclareShort,
		GroupID: "db",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := newContext()
			if err != nil {
				return err
			}
			if err := cli.Undeclare(ctx, args[0], args[1], flags.stackRoot); err != nil {
				return err
			}
			fmt.Printf("undeclared %s %s\n", args[0], args[1])
			return nil
		},
	}
	return cmd
}
