package app

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"fhcleanup/internal/domain"
	"fhcleanup/internal/logging"
)

const DefaultHoldingDir = "./fhcleanup_to_del/"

type Options struct {
	Root       string
	Recursive  bool
	Workers    int
	HoldingDir string
	Purge      bool
	KeepNames  bool
}

// Cleaner removes file history duplicates below Options.Root.
type Cleaner struct {
	FS         FileSystem
	Options    Options
	Logger     logging.Logger
	OnProgress ProgressFunc
}

func (c *Cleaner) Run(ctx context.Context) (domain.Summary, error) {
	if c.FS == nil {
		return domain.Summary{}, errors.New("cleaner requires FS")
	}

	stop := c.Logger.Measure("Cleanup")
	defer stop()

	holdingDir := c.Options.HoldingDir
	if holdingDir == "" {
		holdingDir = DefaultHoldingDir
	}

	scheduler, err := NewScheduler(ctx, c.Options.Workers)
	if err != nil {
		return domain.Summary{}, err
	}
	scheduler.OnProgress = c.OnProgress

	walker := &Walker{
		FS:        c.FS,
		Extractor: domain.NewExtractor(),
		Executor: &Executor{
			FS:     c.FS,
			Root:   c.Options.Root,
			Logger: c.Logger,
		},
		Policy: Policy{
			KeepNames:  c.Options.KeepNames,
			Purge:      c.Options.Purge,
			HoldingDir: holdingDir,
		},
		Root:      c.Options.Root,
		Recursive: c.Options.Recursive,
		Skip:      skipDirs(c.Options.Root, holdingDir, c.Options.Purge),
		Logger:    c.Logger,
	}
	walker.Submit = func(dir string) {
		c.Logger.Trace().Str("dir", dir).Msg("submitting unit")
		scheduler.Submit(func(ctx context.Context) (domain.Summary, error) {
			return walker.Walk(ctx, dir)
		})
	}

	walker.Submit("")
	return scheduler.Join()
}

// skipDirs returns the holding directory relative to root when it lies
// beneath root, so that relocated files are not picked up again.
func skipDirs(root, holdingDir string, purge bool) map[string]bool {
	if purge {
		return nil
	}
	if root == "" {
		root = "."
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil
	}
	absHolding, err := filepath.Abs(holdingDir)
	if err != nil {
		return nil
	}
	rel, err := filepath.Rel(absRoot, absHolding)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil
	}
	return map[string]bool{filepath.ToSlash(rel) + "/": true}
}
