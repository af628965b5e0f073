// Package cmd provides the CLI command for lxd-profile.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cameronsjo/lxd-profile/internal/config"
	"github.com/cameronsjo/lxd-profile/internal/emitter"
	"github.com/cameronsjo/lxd-profile/internal/profile"
	"github.com/cameronsjo/lxd-profile/internal/ui"
)

const version = "0.1.0"

// NewRootCmd builds the lxd-profile command. Each call returns a fresh
// command so flag state never leaks between executions.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lxd-profile [template]",
		Short: "Generate LXD profiles from templates",
		Long: `lxd-profile - generate LXD profiles from templates

Deep-merges YAML values into a profile template and prints the result or
writes it to a file. Template and values may be file paths or inline YAML.

Merge rules:
  mappings     merged key by key, new keys appended
  lists        values appended to the template list
  scalars      value replaces the template
  mismatches   template wins (e.g. a string cannot replace a list)

With --cloud-init, the config keys user.user-data, user.network-config,
user.vendor-data and user.meta-data are loaded as YAML (from a path or
inline), merged with the matching top-level keys of the values, and written
back as "#cloud-config" blocks.

Every flag can also be set through the environment, e.g.
LXD_PROFILE_CLOUD_INIT=true or LXD_PROFILE_TEMPLATE=base.yaml.

Examples:
  lxd-profile base.yaml -u '{config: {limits.cpu: "2"}}'
  lxd-profile base.yaml -u prod.yaml -p profiles/web.yaml
  lxd-profile base.yaml -c -u '{user.user-data: {packages: [curl]}}'`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRoot,
	}

	config.RegisterFlags(rootCmd.Flags())
	registerCompletions(rootCmd)
	rootCmd.SetVersionTemplate("lxd-profile version {{.Version}}\n")

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		ui.New(os.Stderr, false).Error("%v", err)
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	opts, err := config.Load(cmd.Flags(), args)
	if err != nil {
		return err
	}

	log := ui.New(cmd.ErrOrStderr(), opts.Verbose)

	gen := profile.NewGenerator(log, profile.Options{
		CloudInit:  opts.CloudInit,
		SkipErrors: opts.SkipErrors,
	})
	result, err := gen.Generate(opts.Template, opts.Update)
	if err != nil {
		return err
	}

	return emitter.New(log, opts.SkipErrors, cmd.OutOrStdout()).Emit(result, opts.Profile)
}
