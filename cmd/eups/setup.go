package eups

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RobertLuptonTheGood/eups/pkg/cli"
)

func newSetupCmd(flags *globalFlags) *cobra.Command {
	var (
		tag, localRoot, tableFile string
		just, onlyDeps, force, ignoreCurrent bool
	)

	cmd := &cobra.Command{
		Use:     "setup <product> [version-expr]",
		Short:   MsgSetupShort,
		Long:    MsgSetupLong,
		GroupID: "env",
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

			result, err := cli.Setup(ctx, cli.SetupOptions{
				Product:       args[0],
				VersionExpr:   versionExpr,
				Tag:           tag,
				Flavor:        flags.flavor,
				StackRoot:     flags.stackRoot,
				StackFilter:   flags.stackTok,
				LocalRoot:     localRoot,
				TableFile:     tableFile,
				Just:          just,
				OnlyDeps:      onlyDeps,
				Force:         force,
				IgnoreCurrent: ignoreCurrent,
				Verbose:       flags.verbosity,
			})
			if err != nil {
				return err
			}

			for _, w := range result.Warnings {
				fmt.Fprintf(os.Stderr, "warning: %s: %s\n", w.Product, w.Message)
			}

			changes := append(result.Changes, result.MarkerChanges()...)
			fmt.Print(ctx.Printer.Print(changes))
			return nil
		},
	}

	cmd.Flags().StringVarP(&tag, "tag", "t", "", "tag to resolve the version from")
	cmd.Flags().StringVarP(&localRoot, "root", "r", "", "set up from this local product directory instead of the database")
	cmd.Flags().StringVarP(&tableFile, "table", "m", "", "with -r, table file to use instead of <root>/ups/<product>.table (\"none\" to skip); ignored without -r")
	cmd.Flags().BoolVarP(&just, "just", "j", false, "set up only this product, not its dependencies")
	cmd.Flags().BoolVarP(&onlyDeps, "only-dependencies", "D", false, "set up this product's dependencies but not the product itself")
	cmd.Flags().BoolVarP(&force, "force", "F", false, "re-apply even if already set up at this version")
	cmd.Flags().BoolVarP(&ignoreCurrent, "ignore-current", "i", false, "ignore any currently setup version of this product's dependencies")

	return cmd
}

func newUnsetupCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "unsetup <product>",
		Short:   MsgUnsetupShort,
		Long:    MsgUnsetupLong,
		GroupID: "env",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := newContext()
			if err != nil {
				return err
			}
			result, err := cli.Unsetup(ctx, args[0])
			if err != nil {
				return err
			}
			if result.Mismatch != nil {
				fmt.Fprintf(os.Stderr, "warning: %v\n", result.Mismatch)
			}
			fmt.Print(ctx.Printer.Print(result.Changes))
			return nil
		},
	}
	return cmd
}
