package domain

type ActionKind int

const (
	ActionRename ActionKind = iota
	ActionMove
	ActionDelete
)

func (k ActionKind) String() string {
	switch k {
	case ActionRename:
		return "rename"
	case ActionMove:
		return "move"
	case ActionDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Action is the resolved outcome for a single record of a duplicate group.
type Action struct {
	Kind   ActionKind
	Record FileRecord
	// Target is the canonical name for renames and the holding root for moves.
	Target string
}

// Summary tallies confirmed filesystem actions.
type Summary struct {
	Moved   int
	Deleted int
	Renamed int
}

func (s Summary) Add(other Summary) Summary {
	return Summary{
		Moved:   s.Moved + other.Moved,
		Deleted: s.Deleted + other.Deleted,
		Renamed: s.Renamed + other.Renamed,
	}
}

func (s Summary) Total() int {
	return s.Moved + s.Deleted + s.Renamed
}
