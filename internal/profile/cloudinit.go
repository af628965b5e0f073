package profile

import (
	"fmt"

	"github.com/cameronsjo/lxd-profile/internal/document"
	"github.com/cameronsjo/lxd-profile/internal/loader"
	"github.com/cameronsjo/lxd-profile/internal/ui"
)

// ConfigKey is the top-level profile key holding instance options.
const ConfigKey = "config"

// CloudInitHeader starts every rendered cloud-init document.
const CloudInitHeader = "#cloud-config\n"

// CloudInitKeys are the config keys holding cloud-init documents.
var CloudInitKeys = []string{
	"user.user-data",
	"user.network-config",
	"user.vendor-data",
	"user.meta-data",
}

// IsCloudInitKey reports whether key is one of CloudInitKeys.
func IsCloudInitKey(key string) bool {
	for _, k := range CloudInitKeys {
		if k == key {
			return true
		}
	}
	return false
}

// configMap returns the config mapping of doc, or nil if doc has none.
func configMap(doc document.Value) *document.Map {
	config, ok := doc.Get(ConfigKey)
	if !ok {
		return nil
	}
	return config.Map()
}

// ExpandCloudInit returns a copy of doc where each cloud-init key under config
// holding a string (a path or inline YAML) is replaced by the parsed document.
// Values that are already trees are kept. Load failures are handled by ld:
// they either abort or yield an absent value.
func ExpandCloudInit(doc document.Value, ld *loader.Loader, log *ui.Logger) (document.Value, error) {
	if configMap(doc) == nil {
		return doc.Clone(), nil
	}

	log.Info("parsing cloud-init data...")
	result := doc.Clone()
	config := configMap(result)

	for _, key := range config.Keys() {
		if !IsCloudInitKey(key) {
			continue
		}
		value, _ := config.Get(key)
		if value.Kind() != document.KindScalar {
			continue
		}

		expanded, err := ld.Load(value.Text(), key)
		if err != nil {
			return document.Null(), fmt.Errorf("load %s: %w", key, err)
		}
		config.Set(key, expanded)
	}

	log.Info("cloud-init data parsed")
	return result, nil
}

// MergeCloudInit merges the cloud-init keys of template's config with the
// matching top-level keys of update. It returns the merged template and a
// copy of update without the consumed keys, so they are not merged twice.
func MergeCloudInit(template, update document.Value, log *ui.Logger) (document.Value, document.Value) {
	result := template.Clone()
	rest := update.Clone()

	config := configMap(result)
	overlay := rest.Map()
	if config == nil || overlay == nil {
		return result, rest
	}

	for _, key := range config.Keys() {
		if !IsCloudInitKey(key) || !overlay.Has(key) {
			continue
		}
		log.Info("updating cloud-init: %s", key)

		base, _ := config.Get(key)
		value, _ := overlay.Get(key)
		config.Set(key, MergeWith(base, value, mismatchLogger(log, ConfigKey+"."+key)))
		overlay.Delete(key)
	}

	return result, rest
}

// ContractCloudInit returns a copy of doc where each cloud-init key under
// config is rendered back to "#cloud-config" text with a literal block hint.
func ContractCloudInit(doc document.Value, log *ui.Logger) (document.Value, error) {
	if configMap(doc) == nil {
		return doc.Clone(), nil
	}

	log.Info("dumping cloud-init data...")
	result := doc.Clone()
	config := configMap(result)

	for _, key := range config.Keys() {
		if !IsCloudInitKey(key) {
			continue
		}
		log.Info("dumping %s", key)

		value, _ := config.Get(key)
		rendered, err := RenderCloudInit(value)
		if err != nil {
			return document.Null(), fmt.Errorf("render %s: %w", key, err)
		}
		config.Set(key, rendered)
	}

	log.Info("cloud-init data dumped")
	return result, nil
}

// RenderCloudInit serializes v as a cloud-init document: the header line
// followed by block-style YAML, as a literal-hinted string scalar.
func RenderCloudInit(v document.Value) (document.Value, error) {
	body, err := document.Marshal(v)
	if err != nil {
		return document.Null(), err
	}
	return document.String(CloudInitHeader + string(body)).WithStyle(document.StyleLiteral), nil
}

func mismatchLogger(log *ui.Logger, prefix string) MismatchFunc {
	return func(path string, base, overlay document.Value) {
		if path == "" {
			path = prefix
		} else if prefix != "" {
			path = prefix + "." + path
		}
		log.Info("keeping template value for %s: cannot merge %s into %s", path, overlay.Kind(), base.Kind())
	}
}
