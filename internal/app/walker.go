package app

import (
	"context"
	"path/filepath"
	"unicode/utf8"

	"fhcleanup/internal/domain"
	"fhcleanup/internal/logging"
)

// Walker processes a single directory per call: it classifies the entries,
// hands subdirectories to Submit and resolves the directory's duplicate
// groups before returning.
type Walker struct {
	FS        FileSystem
	Extractor *domain.Extractor
	Executor  *Executor
	Policy    Policy
	Root      string
	Recursive bool
	// Skip holds relative directory paths that are never entered.
	Skip   map[string]bool
	Submit func(dir string)
	Logger logging.Logger
}

func (w *Walker) Walk(ctx context.Context, dir string) (domain.Summary, error) {
	current := filepath.Join(w.Root, dir)
	if current == "" {
		current = "."
	}
	names, err := w.FS.ReadDirNames(current)
	if err != nil {
		w.Logger.Error().Str("path", domain.DisplayDir(dir)).Err(err).Msg("could not open dir")
		return domain.Summary{}, nil
	}
	w.Logger.Debug().Msgf("stepping into dir: %s", domain.DisplayDir(dir))

	grouper := NewGrouper()
	for _, name := range names {
		if !utf8.ValidString(name) {
			w.Logger.Warn().Str("dir", domain.DisplayDir(dir)).Msgf("Invalid UTF-8 file name: %q", name)
			continue
		}
		info, err := w.FS.Lstat(filepath.Join(current, name))
		if err != nil {
			w.Logger.Warn().Str("path", filepath.Join(current, name)).Err(err).Msg("Could not determine file type")
			continue
		}

		switch {
		case info.IsDir():
			if !w.Recursive {
				continue
			}
			child := domain.ChildDir(dir, name)
			if w.Skip[child] {
				w.Logger.Debug().Msgf("skipping holding dir: %s", child)
				continue
			}
			if w.Submit != nil {
				w.Submit(child)
			}
		case info.Mode().IsRegular():
			w.classify(grouper, dir, name)
		default:
			w.Logger.Trace().Str("path", filepath.Join(current, name)).Msg("skipping irregular entry")
		}
	}

	return w.resolve(ctx, dir, grouper)
}

func (w *Walker) classify(grouper *Grouper, dir, name string) {
	match, ok, err := w.Extractor.Extract(name)
	if !ok {
		w.Logger.Trace().Str("file", name).Msg("no timestamp marker")
		return
	}
	if err != nil {
		w.Logger.Error().Str("path", filepath.Join(w.Root, dir, name)).Err(err).Msg("could not parse date")
		return
	}
	grouper.Add(match.CanonicalName, domain.NewFileRecord(dir, name, match.Timestamp))
}

func (w *Walker) resolve(ctx context.Context, dir string, grouper *Grouper) (domain.Summary, error) {
	var summary domain.Summary
	if grouper.Len() == 0 {
		w.Logger.Debug().Msgf("No relevant files found in dir '%s'", domain.DisplayDir(dir))
		return summary, nil
	}
	w.Logger.Debug().Msgf("Found %d relevant files in dir '%s'", grouper.Len(), domain.DisplayDir(dir))

	for _, group := range grouper.Groups() {
		canonicalPath := filepath.Join(w.Root, dir, group.CanonicalName)
		exists, err := w.FS.Exists(canonicalPath)
		if err != nil {
			w.Logger.Warn().Str("path", canonicalPath).Err(err).Msg("could not check for existing file, not renaming")
			exists = true
		}
		if exists {
			w.Logger.Infof("File without timestamp already exists, treating all other files as duplicates: %s", canonicalPath)
		}
		w.Logger.Debug().Msgf("Found %d matching files for '%s'", len(group.Records), group.CanonicalName)

		for _, action := range Resolve(group, exists, w.Policy) {
			if err := ctx.Err(); err != nil {
				return summary, nil
			}
			result, err := w.Executor.Execute(action)
			summary = summary.Add(result)
			if err != nil {
				return summary, err
			}
		}
	}
	return summary, nil
}
