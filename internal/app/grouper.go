package app

import "fhcleanup/internal/domain"

// Group is the set of revisions in one directory sharing a canonical name.
type Group struct {
	CanonicalName string
	Records       []domain.FileRecord
}

// Grouper collects one directory's timestamped files by canonical name.
type Grouper struct {
	groups map[string][]domain.FileRecord
	order  []string
	count  int
}

func NewGrouper() *Grouper {
	return &Grouper{groups: make(map[string][]domain.FileRecord)}
}

func (g *Grouper) Add(canonicalName string, record domain.FileRecord) {
	if _, ok := g.groups[canonicalName]; !ok {
		g.order = append(g.order, canonicalName)
	}
	g.groups[canonicalName] = append(g.groups[canonicalName], record)
	g.count++
}

// Groups returns the groups in order of first appearance.
func (g *Grouper) Groups() []Group {
	groups := make([]Group, 0, len(g.order))
	for _, name := range g.order {
		groups = append(groups, Group{CanonicalName: name, Records: g.groups[name]})
	}
	return groups
}

// Len is the number of records collected.
func (g *Grouper) Len() int {
	return g.count
}
