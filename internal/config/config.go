// Package config resolves run options from flags and the environment.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variables, e.g. LXD_PROFILE_CLOUD_INIT.
const EnvPrefix = "LXD_PROFILE"

// Flag names shared by the CLI and the environment bindings.
const (
	FlagTemplate   = "template"
	FlagUpdate     = "update"
	FlagProfile    = "profile"
	FlagCloudInit  = "cloud-init"
	FlagSkipErrors = "skip-errors"
	FlagVerbose    = "verbose"
)

// DefaultUpdate is the update applied when none is given: an empty mapping.
const DefaultUpdate = "{}"

// ErrNoTemplate indicates no template was given on the command line or in
// the environment.
var ErrNoTemplate = errors.New("template is required")

// Options holds the settings of one generation run.
type Options struct {
	// Template is the template path or inline YAML.
	Template string

	// Update is the update path or inline YAML.
	Update string

	// Profile is the output path. Empty means stdout.
	Profile string

	// CloudInit enables cloud-init key handling.
	CloudInit bool

	// SkipErrors turns failures into warnings.
	SkipErrors bool

	// Verbose enables progress messages.
	Verbose bool
}

// RegisterFlags adds the run flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagUpdate, "u", DefaultUpdate, "YAML values applied to the template (path or inline)")
	fs.StringP(FlagProfile, "p", "", "YAML profile to write, stdout if empty (a bare file name writes to the current directory)")
	fs.BoolP(FlagCloudInit, "c", false, "parse cloud-init data")
	fs.BoolP(FlagSkipErrors, "s", false, "skip errors")
	fs.BoolP(FlagVerbose, "V", false, "make output verbose")
}

// Load resolves Options from fs and args. Flags set on the command line win
// over LXD_PROFILE_* environment variables, which win over flag defaults.
// The template is args[0], or LXD_PROFILE_TEMPLATE when no argument is given.
func Load(fs *pflag.FlagSet, args []string) (*Options, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	opts := &Options{
		Template:   v.GetString(FlagTemplate),
		Update:     v.GetString(FlagUpdate),
		Profile:    v.GetString(FlagProfile),
		CloudInit:  v.GetBool(FlagCloudInit),
		SkipErrors: v.GetBool(FlagSkipErrors),
		Verbose:    v.GetBool(FlagVerbose),
	}
	if len(args) > 0 {
		opts.Template = args[0]
	}
	if opts.Template == "" {
		return nil, ErrNoTemplate
	}

	return opts, nil
}
