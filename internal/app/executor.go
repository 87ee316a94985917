package app

import (
	"errors"
	"fmt"
	"path/filepath"

	"fhcleanup/internal/domain"
	appErrors "fhcleanup/internal/errors"
	"fhcleanup/internal/logging"
)

// Executor applies resolved actions to the filesystem. Failures on a single
// file are logged and skipped; only a failure to create the holding directory
// is returned.
type Executor struct {
	FS     FileSystem
	Root   string
	Logger logging.Logger
}

func (e *Executor) Execute(action domain.Action) (domain.Summary, error) {
	if e.FS == nil {
		return domain.Summary{}, errors.New("executor requires FS")
	}

	switch action.Kind {
	case domain.ActionRename:
		return e.Rename(action.Record, action.Target), nil
	case domain.ActionMove:
		return e.Move(action.Record, action.Target)
	case domain.ActionDelete:
		return e.Delete(action.Record), nil
	default:
		return domain.Summary{}, appErrors.Wrap(appErrors.Internal, "execute", action.Record.RelPath(), fmt.Errorf("unknown action %v", action.Kind))
	}
}

// Rename gives record its canonical name inside its own directory.
func (e *Executor) Rename(record domain.FileRecord, canonicalName string) domain.Summary {
	source := e.sourcePath(record)
	target := filepath.Join(e.Root, record.DirPath, canonicalName)
	if err := e.FS.Rename(source, target); err != nil {
		e.Logger.Warn().Str("path", source).Err(err).Msg("Could not rename")
		return domain.Summary{}
	}
	e.Logger.Infof("Renamed '%s' to '%s'", source, target)
	return domain.Summary{Renamed: 1}
}

// Move relocates record beneath holdingDir, keeping its relative directory
// and original name.
func (e *Executor) Move(record domain.FileRecord, holdingDir string) (domain.Summary, error) {
	targetDir := filepath.Join(holdingDir, record.DirPath)
	if err := e.FS.MkdirAll(targetDir, 0o755); err != nil {
		return domain.Summary{}, appErrors.Wrap(appErrors.Fatal, "create holding dir", targetDir, err)
	}

	source := e.sourcePath(record)
	target := filepath.Join(targetDir, record.Name)
	if err := e.FS.Rename(source, target); err != nil {
		e.Logger.Warn().Str("path", source).Err(err).Msg("Could not move")
		return domain.Summary{}, nil
	}
	e.Logger.Infof("Moved '%s' to '%s'", source, target)
	return domain.Summary{Moved: 1}, nil
}

func (e *Executor) Delete(record domain.FileRecord) domain.Summary {
	source := e.sourcePath(record)
	if err := e.FS.Remove(source); err != nil {
		e.Logger.Warn().Str("path", source).Err(err).Msg("Could not delete")
		return domain.Summary{}
	}
	e.Logger.Infof("Deleted '%s'", source)
	return domain.Summary{Deleted: 1}
}

func (e *Executor) sourcePath(record domain.FileRecord) string {
	return filepath.Join(e.Root, record.DirPath, record.Name)
}
