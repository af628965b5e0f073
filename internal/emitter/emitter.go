// Package emitter writes a generated profile to a file or to standard output.
package emitter

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/cameronsjo/lxd-profile/internal/document"
	"github.com/cameronsjo/lxd-profile/internal/fileutil"
	"github.com/cameronsjo/lxd-profile/internal/ui"
)

// ErrWrite indicates the profile could not be written to its destination.
var ErrWrite = errors.New("write profile")

// Emitter serializes documents as YAML.
type Emitter struct {
	log        *ui.Logger
	skipErrors bool
	stdout     io.Writer
}

// New returns an Emitter that falls back to stdout when no usable
// destination is given. With skipErrors set, failures are logged as
// warnings and Emit returns nil.
func New(log *ui.Logger, skipErrors bool, stdout io.Writer) *Emitter {
	return &Emitter{log: log, skipErrors: skipErrors, stdout: stdout}
}

// Emit writes v to destination when its parent directory exists, and to
// stdout otherwise (including when destination is empty).
func (e *Emitter) Emit(v document.Value, destination string) error {
	e.log.Info("dumping profile...")

	data, err := document.Marshal(v)
	if err != nil {
		return e.fail(fmt.Errorf("render profile: %w", err), "profile is not valid YAML: %v", err)
	}

	path := fileutil.ExpandHome(destination)
	if destination != "" && fileutil.IsDir(filepath.Dir(path)) {
		e.log.Info("writing profile to %s", path)
		if err := fileutil.WriteFileAtomic(path, data, 0644); err != nil {
			return e.fail(fmt.Errorf("%w: %s: %w", ErrWrite, path, err),
				"an error occurred while dumping profile to %s: %v", path, err)
		}
		e.log.Success("profile dumped to %s", path)
		return nil
	}

	if _, err := e.stdout.Write(data); err != nil {
		return e.fail(fmt.Errorf("%w: stdout: %w", ErrWrite, err), "an error occurred while dumping profile: %v", err)
	}
	return nil
}

func (e *Emitter) fail(err error, format string, args ...any) error {
	if e.skipErrors {
		e.log.Warning(format, args...)
		return nil
	}
	return err
}
