package app

import (
	"sort"

	"fhcleanup/internal/domain"
)

// Policy holds the configuration that shapes group resolution.
type Policy struct {
	KeepNames  bool
	Purge      bool
	HoldingDir string
}

// Resolve decides the fate of every record in group. The newest record is
// renamed to the canonical name unless renaming is disabled or the canonical
// file already exists; everything else is disposed of.
func Resolve(group Group, canonicalExists bool, p Policy) []domain.Action {
	records := make([]domain.FileRecord, len(group.Records))
	copy(records, group.Records)
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp.Before(records[j].Timestamp)
	})

	rename := !canonicalExists && !p.KeepNames
	last := len(records) - 1

	actions := make([]domain.Action, 0, len(records))
	for i, record := range records {
		if rename && i == last {
			actions = append(actions, domain.Action{
				Kind:   domain.ActionRename,
				Record: record,
				Target: group.CanonicalName,
			})
			continue
		}
		actions = append(actions, p.dispose(record))
	}
	return actions
}

func (p Policy) dispose(record domain.FileRecord) domain.Action {
	if p.Purge {
		return domain.Action{Kind: domain.ActionDelete, Record: record}
	}
	return domain.Action{
		Kind:   domain.ActionMove,
		Record: record,
		Target: p.HoldingDir,
	}
}
