package profile

import (
	"fmt"

	"github.com/cameronsjo/lxd-profile/internal/document"
	"github.com/cameronsjo/lxd-profile/internal/loader"
	"github.com/cameronsjo/lxd-profile/internal/ui"
)

// Options controls a generation run.
type Options struct {
	// CloudInit enables expansion and rendering of the cloud-init keys.
	CloudInit bool

	// SkipErrors turns load failures into warnings with fallback values.
	SkipErrors bool
}

// Generator builds a profile from a template source and an update source.
type Generator struct {
	opts   Options
	log    *ui.Logger
	loader *loader.Loader
}

// NewGenerator returns a Generator logging to log.
func NewGenerator(log *ui.Logger, opts Options) *Generator {
	return &Generator{
		opts:   opts,
		log:    log,
		loader: loader.New(log, opts.SkipErrors),
	}
}

// Generate loads the template and the update (each a path or inline YAML)
// and returns the merged profile, ready to be emitted.
//
// An update that does not load as a mapping is replaced by an empty mapping
// with a warning, even when SkipErrors is off.
func (g *Generator) Generate(templateSource, updateSource string) (document.Value, error) {
	template, err := g.loader.Load(templateSource, "template")
	if err != nil {
		return document.Null(), fmt.Errorf("load template: %w", err)
	}

	if g.opts.CloudInit {
		template, err = ExpandCloudInit(template, g.loader, g.log)
		if err != nil {
			return document.Null(), fmt.Errorf("expand cloud-init: %w", err)
		}
	}

	update, err := g.loader.Load(updateSource, "update")
	if err != nil {
		return document.Null(), fmt.Errorf("load update: %w", err)
	}
	if update.Kind() != document.KindMapping {
		g.log.Warning("values is not a valid dictionary, skipping")
		update = document.Mapping(nil)
	}

	return g.Apply(template, update)
}

// Apply merges an already loaded update into an already loaded template.
// When cloud-init handling is on, template is expected to be expanded
// already and the result has its cloud-init keys rendered.
func (g *Generator) Apply(template, update document.Value) (document.Value, error) {
	g.log.Info("updating template...")
	template, update = MergeCloudInit(template, update, g.log)
	result := MergeWith(template, update, mismatchLogger(g.log, ""))
	g.log.Info("template updated")

	if g.opts.CloudInit {
		var err error
		result, err = ContractCloudInit(result, g.log)
		if err != nil {
			return document.Null(), fmt.Errorf("contract cloud-init: %w", err)
		}
	}

	return result, nil
}
