package app

import (
	"context"
	"sort"
	"sync"
	"testing"

	"fhcleanup/internal/domain"
	"fhcleanup/internal/logging"
)

func newTestWalker(fsys FileSystem, recursive bool) (*Walker, *[]string) {
	var mu sync.Mutex
	submitted := []string{}
	w := &Walker{
		FS:        fsys,
		Extractor: domain.NewExtractor(),
		Executor:  &Executor{FS: fsys, Logger: logging.Nop()},
		Policy:    Policy{HoldingDir: holding},
		Recursive: recursive,
		Logger:    logging.Nop(),
		Submit: func(dir string) {
			mu.Lock()
			defer mu.Unlock()
			submitted = append(submitted, dir)
		},
	}
	return w, &submitted
}

func TestWalkSubmitsSubdirsWhenRecursive(t *testing.T) {
	fsys := newFaultyFS()
	writeFiles(t, fsys.Fs, "a/x.txt", "b/c/y.txt", newName)

	w, submitted := newTestWalker(fsys, true)
	summary, err := w.Walk(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Renamed != 1 {
		t.Fatalf("expected root file renamed, got %+v", summary)
	}

	got := append([]string(nil), (*submitted)...)
	sort.Strings(got)
	if len(got) != 2 || got[0] != "a/" || got[1] != "b/" {
		t.Fatalf("unexpected submitted dirs %v", got)
	}
}

func TestWalkDoesNotSubmitWithoutRecursion(t *testing.T) {
	fsys := newFaultyFS()
	writeFiles(t, fsys.Fs, "a/x.txt")

	w, submitted := newTestWalker(fsys, false)
	if _, err := w.Walk(context.Background(), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(*submitted) != 0 {
		t.Fatalf("expected no submissions, got %v", *submitted)
	}
}

func TestWalkChildPathsAreRelative(t *testing.T) {
	fsys := newFaultyFS()
	writeFiles(t, fsys.Fs, "a/b/"+newName)

	w, submitted := newTestWalker(fsys, true)
	if _, err := w.Walk(context.Background(), "a/"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(*submitted) != 1 || (*submitted)[0] != "a/b/" {
		t.Fatalf("unexpected submitted dirs %v", *submitted)
	}
}

func TestWalkSkipsUnparseableAndInvalidNames(t *testing.T) {
	fsys := newFaultyFS()
	badDate := "report (2023_13_45 10_00_00 UTC).txt"
	badUTF8 := "r\xffport (2023_01_01 10_00_00 UTC).txt"
	writeFiles(t, fsys.Fs, badDate, badUTF8, newName)

	w, _ := newTestWalker(fsys, false)
	summary, err := w.Walk(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary != (domain.Summary{Renamed: 1}) {
		t.Fatalf("unexpected summary %+v", summary)
	}
	assertExists(t, fsys.Fs, badDate, true)
	assertExists(t, fsys.Fs, badUTF8, true)
}

func TestWalkListingFailureIsNotAnError(t *testing.T) {
	fsys := newFaultyFS()
	fsys.failList["gone"] = true

	w, _ := newTestWalker(fsys, true)
	summary, err := w.Walk(context.Background(), "gone/")
	if err != nil || summary.Total() != 0 {
		t.Fatalf("expected empty result, got %+v err=%v", summary, err)
	}
}

func TestWalkSkipsOnlyTheEntryWhoseTypeIsUnknown(t *testing.T) {
	fsys := newFaultyFS()
	broken := "report (2023_01_03 10_00_00 UTC).txt"
	writeFiles(t, fsys.Fs, oldName, broken, newName)
	fsys.failLstat[broken] = true

	w, _ := newTestWalker(fsys, false)
	summary, err := w.Walk(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary != (domain.Summary{Moved: 1, Renamed: 1}) {
		t.Fatalf("expected siblings to be resolved, got %+v", summary)
	}
	assertExists(t, fsys.Fs, broken, true)
	assertExists(t, fsys.Fs, "report.txt", true)
	assertExists(t, fsys.Fs, holding+oldName, true)
}

func TestWalkExistsFailureTreatsCanonicalAsPresent(t *testing.T) {
	fsys := newFaultyFS()
	writeFiles(t, fsys.Fs, oldName, newName)
	fsys.failExists["report.txt"] = true

	w, _ := newTestWalker(fsys, false)
	summary, err := w.Walk(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Renamed != 0 || summary.Moved != 2 {
		t.Fatalf("expected no renames and two moves, got %+v", summary)
	}
	assertExists(t, fsys.Fs, "report.txt", false)
	assertExists(t, fsys.Fs, holding+oldName, true)
	assertExists(t, fsys.Fs, holding+newName, true)
}
