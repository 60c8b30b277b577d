package topics

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Initialize scans dir for topic files and installs a `help` command on
// rootCmd that falls back to the original help for command names and
// renders a topic's content for everything else, grounded on dodot's
// topics.InitializeWithOptions.
func Initialize(rootCmd *cobra.Command, dir string, renderer Renderer) error {
	m := New(dir, renderer)
	if err := m.Scan(); err != nil {
		return fmt.Errorf("scanning help topics: %w", err)
	}

	originalHelp := rootCmd.HelpFunc()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := append([]string{}, m.List()...)
			for _, c := range rootCmd.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				originalHelp(rootCmd, nil)
				return
			}
			if content, ok := m.Get(args[0]); ok {
				fmt.Print(content)
				return
			}
			originalHelp(rootCmd, args)
		},
	}

	for _, c := range rootCmd.Commands() {
		if c.Name() == "help" {
			rootCmd.RemoveCommand(c)
			break
		}
	}
	rootCmd.AddCommand(helpCmd)

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			if content, ok := m.Get(args[0]); ok {
				fmt.Print(content)
				return
			}
		}
		originalHelp(cmd, args)
	})

	return nil
}
