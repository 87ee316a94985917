package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fhcleanup/internal/app"
	"fhcleanup/internal/config"
	"fhcleanup/internal/domain"
	appErrors "fhcleanup/internal/errors"
	"fhcleanup/internal/infra/fs"
	"fhcleanup/internal/logging"
	"fhcleanup/internal/presentation"
	"fhcleanup/internal/tui"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(context.Background()); err != nil {
		exitWithError(err)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "fhcleanup [root]",
		Short: "Clear file history duplicates",
		Long: `Clear Windows file history files by finding files with the same name except for a UTC timestamp
within the same directory and keeping the latest version of the file, trimming the timestamp
from the file name (unless disabled) and moving all other copies of the file to a to_delete
folder or deleting them instantly (depending on whether --purge is set).`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, args)
			if err != nil {
				return appErrors.Wrap(appErrors.InvalidConfig, "config", "", err)
			}
			return run(cmd.Context(), cfg, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := config.BindFlags(cmd.Flags(), v); err != nil {
		panic(err)
	}
	return cmd
}

func run(ctx context.Context, cfg config.Config, stdout, stderr io.Writer) error {
	start := time.Now()
	filesystem := fs.NewOSFS()

	info, err := filesystem.Stat(cfg.Root)
	if err != nil {
		return appErrors.Wrap(appErrors.NotFound, "stat", cfg.Root, err)
	}
	if !info.IsDir() {
		return appErrors.Wrap(appErrors.InvalidConfig, "root", cfg.Root, fmt.Errorf("%s is not a directory", cfg.Root))
	}

	// Diagnostics are held back while the progress view owns the terminal.
	var held bytes.Buffer
	logWriter := stderr
	if cfg.TUI {
		logWriter = &held
	}

	cleaner := app.Cleaner{
		FS: filesystem,
		Options: app.Options{
			Root:       cfg.Root,
			Recursive:  cfg.Recursive,
			Workers:    cfg.Workers,
			HoldingDir: cfg.HoldingDir,
			Purge:      cfg.Purge,
			KeepNames:  cfg.KeepNames,
		},
		Logger: logging.New(logWriter, cfg.Verbosity),
	}

	if !cfg.TUI {
		summary, err := cleaner.Run(ctx)
		if err != nil {
			return err
		}
		presentation.Printer{Writer: stdout}.PrintSummary(summary, time.Since(start))
		return nil
	}

	_, err = tui.Run(tui.Config{
		Root:       cfg.Root,
		HoldingDir: cfg.HoldingDir,
		Purge:      cfg.Purge,
		Recursive:  cfg.Recursive,
	}, func(onProgress func(current, total int)) (domain.Summary, error) {
		cleaner.OnProgress = onProgress
		return cleaner.Run(ctx)
	})
	if _, copyErr := io.Copy(stderr, &held); copyErr != nil && err == nil {
		err = copyErr
	}
	return err
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, appErrors.UserMessage(err))
	os.Exit(1)
}
