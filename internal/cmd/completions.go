package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cameronsjo/lxd-profile/internal/config"
)

// documentExtensions are the file types offered for template and values.
var documentExtensions = []string{"yaml", "yml", "json", "jsonc"}

// completeDocuments completes YAML and JSON file names.
func completeDocuments(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return documentExtensions, cobra.ShellCompDirectiveFilterFileExt
}

// completeTemplate completes the single template argument.
func completeTemplate(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	// Don't complete if we already have an argument
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return completeDocuments(cmd, args, toComplete)
}

// registerCompletions wires shell completion for the template argument and
// the document flags.
func registerCompletions(cmd *cobra.Command) {
	cmd.ValidArgsFunction = completeTemplate
	for _, name := range []string{config.FlagUpdate, config.FlagProfile} {
		_ = cmd.RegisterFlagCompletionFunc(name, completeDocuments)
	}
}
