// Package eups assembles the cobra command tree cmd/eups/main wires up:
// one cobra.Command per verb in spec.md §6, each a thin adapter from
// flags to a pkg/cli call and a pkg/shell/pkg/ui render of the result.
// Grounded on dodot's cmd/dodot package (commands.go's NewRootCmd plus
// msgs.go's message constants).
package eups

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/RobertLuptonTheGood/eups/internal/version"
	"github.com/RobertLuptonTheGood/eups/pkg/cli"
	"github.com/RobertLuptonTheGood/eups/pkg/logging"
	"github.com/RobertLuptonTheGood/eups/pkg/ui/topics"
)

// globalFlags holds the common options of spec.md §6 that more than one
// verb accepts, bound once on the root command's persistent flag set.
type globalFlags struct {
	flavor    string
	stackRoot string
	stackTok  string
	verbosity int
	quiet     bool
}

// NewRootCmd builds the eups command tree.
func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:     "eups",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(flags.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().StringVarP(&flags.flavor, "flavor", "f", "", "override the active flavor")
	rootCmd.PersistentFlags().StringVarP(&flags.stackRoot, "stack", "Z", "", "restrict to this single stack root")
	rootCmd.PersistentFlags().StringVarP(&flags.stackTok, "filter", "z", "", "restrict to stacks whose root contains this substring")
	rootCmd.PersistentFlags().CountVarP(&flags.verbosity, "verbose", "v", "increase logging verbosity (repeatable)")
	rootCmd.PersistentFlags().BoolVarP(&flags.quiet, "quiet", "q", false, "suppress non-essential output")

	rootCmd.AddGroup(&cobra.Group{ID: "env", Title: "ENVIRONMENT:"})
	rootCmd.AddGroup(&cobra.Group{ID: "db", Title: "DATABASE:"})
	rootCmd.AddGroup(&cobra.Group{ID: "info", Title: "INFORMATION:"})

	rootCmd.AddCommand(newSetupCmd(flags))
	rootCmd.AddCommand(newUnsetupCmd(flags))
	rootCmd.AddCommand(newListCmd(flags))
	rootCmd.AddCommand(newDeclareCmd(flags))
	rootCmd.AddCommand(newUndeclareCmd(flags))
	rootCmd.AddCommand(newTagsCmd(flags))
	rootCmd.AddCommand(newTagCmd(flags))
	rootCmd.AddCommand(newUntagCmd(flags))
	rootCmd.AddCommand(newFlavorCmd(flags))
	rootCmd.AddCommand(newExpandtableCmd(flags))
	rootCmd.AddCommand(newPathCmd(flags))

	initTopics(rootCmd)

	return rootCmd
}

// initTopics wires the `eups help <topic>` system to cmd/eups/topics,
// trying the executable's own directory first (installed layout) and
// falling back to the source tree (development), mirroring dodot's
// os.Executable()-relative search in commands.go.
func initTopics(rootCmd *cobra.Command) {
	candidates := []string{filepath.Join("cmd", "eups", "topics")}
	if exe, err := os.Executable(); err == nil {
		candidates = append([]string{filepath.Join(filepath.Dir(exe), "topics")}, candidates...)
	}
	for _, dir := range candidates {
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		if err := topics.Initialize(rootCmd, dir, topics.NewGlamourRenderer()); err == nil {
			return
		}
	}
}

// newContext builds a *cli.Context from the live process environment,
// the one production seam NewRootCmd's verbs share.
func newContext() (*cli.Context, error) {
	return cli.NewContext(os.Environ())
}
