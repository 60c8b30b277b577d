package eups

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RobertLuptonTheGood/eups/pkg/cli"
	"github.com/RobertLuptonTheGood/eups/pkg/ui/format"
	"github.com/RobertLuptonTheGood/eups/pkg/ui/table"
)

func newTagsCmd(flags *globalFlags) *cobra.Command {
	var formatStr string

	cmd := &cobra.Command{
		Use:     "tags [product]",
		Short:   MsgTagsShort,
		GroupID: "db",
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

			rows, err := cli.Tags(ctx, product)
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
				fmt.Print(table.RenderTags(rows))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&formatStr, "format", "auto", "output format: table, json, or yaml")
	return cmd
}

func newTagCmd(flags *globalFlags) *cobra.Command {
	var declarer string

	cmd := &cobra.Command{
		Use:     "tag <tag> <product> <version>",
		Short:   MsgTagShort,
		GroupID: "db",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := newContext()
			if err != nil {
				return err
			}
			flavor := ctx.Flavor(flags.flavor)
			if err := cli.Tag(ctx, flags.stackRoot, args[1], args[0], flavor, args[2], declarer); err != nil {
				return err
			}
			fmt.Printf("tagged %s %s as %s\n", args[1], args[2], args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&declarer, "declarer", "", "name recorded as this tag's author")
	return cmd
}

func newUntagCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "untag <tag> <product>",
		Short:   MsgUntagShort,
		GroupID: "db",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := newContext()
			if err != nil {
				return err
			}
			flavor := ctx.Flavor(flags.flavor)
			if err := cli.Untag(ctx, flags.stackRoot, args[1], args[0], flavor); err != nil {
				return err
			}
			fmt.Printf("untagged %s from %s\n", args[0], args[1])
			return nil
		},
	}
	return cmd
}
