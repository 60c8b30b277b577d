package eups

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RobertLuptonTheGood/eups/pkg/cli"
	"github.com/RobertLuptonTheGood/eups/pkg/ui/format"
	"github.com/RobertLuptonTheGood/eups/pkg/ui/table"
)

func newListCmd(flags *globalFlags) *cobra.Command {
	var formatStr string

	cmd := &cobra.Command{
		Use:     "list [product]",
		Short:   MsgListShort,
		Long:    MsgListLong,
		GroupID: "info",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := newContext()
			if err != nil {
				return err
			}
			var product string
			if len(args) == 1 {
				product = args[0]
			}

			rows, err := cli.List(ctx, cli.ListFilter{Product: product, Flavor: flags.flavor})
			if err != nil {
				return err
			}

			f, err := format.ParseFormat(formatStr)
			if err != nil {
				return err
			}
			switch format.Resolve(f, nil) {
			case format.FormatJSON:
				out, err := format.MarshalJSON(rows)
				if err != nil {
					return err
				}
				fmt.Println(out)
			case format.FormatYAML:
				out, err := format.MarshalYAML(rows)
				if err != nil {
					return err
				}
				fmt.Print(out)
			default:
				fmt.Print(table.RenderListings(rows))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&formatStr, "format", "auto", "output format: table, json, or yaml")
	return cmd
}
