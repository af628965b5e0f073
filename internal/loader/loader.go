// Package loader turns a document source into a document.Value.
//
// A source is either a path to a YAML (or JSON/JSONC) file or the document
// text itself. Paths are tried first, after ~ expansion.
package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/cameronsjo/lxd-profile/internal/document"
	"github.com/cameronsjo/lxd-profile/internal/fileutil"
	"github.com/cameronsjo/lxd-profile/internal/ui"
)

var (
	// ErrRead indicates a source file could not be read.
	ErrRead = errors.New("read document")

	// ErrParse indicates a source is not valid YAML.
	ErrParse = errors.New("parse document")
)

// Loader loads documents from files or inline text.
type Loader struct {
	log        *ui.Logger
	skipErrors bool
}

// New returns a Loader. With skipErrors set, failures are logged as warnings
// and Load returns an absent value instead of an error.
func New(log *ui.Logger, skipErrors bool) *Loader {
	return &Loader{log: log, skipErrors: skipErrors}
}

// Load parses source, which is a file path or the document text itself.
// name is used in log messages only.
func (l *Loader) Load(source, name string) (document.Value, error) {
	l.log.Info("loading %s...", name)

	path := fileutil.ExpandHome(source)
	if fileutil.IsFile(path) {
		l.log.Info("loading %s from %s for YAML parsing", name, path)
		v, err := loadFile(path)
		if err != nil {
			return l.fail(err, "%s is not a valid YAML file, skipping", path)
		}
		l.log.Info("%s loaded from %s", name, path)
		return v, nil
	}

	v, err := document.Parse([]byte(source))
	if err != nil {
		return l.fail(fmt.Errorf("%w: %s: %w", ErrParse, name, err), "%s is not valid YAML, skipping", name)
	}
	l.log.Info("%s loaded from raw", name)
	return v, nil
}

func (l *Loader) fail(err error, format string, args ...any) (document.Value, error) {
	if l.skipErrors {
		l.log.Warning(format, args...)
		return document.Null(), nil
	}
	return document.Null(), err
}

func loadFile(path string) (document.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return document.Null(), fmt.Errorf("%w: %s: %w", ErrRead, path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		data = jsonc.ToJSON(data)
	}

	v, err := document.Parse(data)
	if err != nil {
		return document.Null(), fmt.Errorf("%w: %s: %w", ErrParse, path, err)
	}
	return v, nil
}
