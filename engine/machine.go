package engine

import "fmt"

// Modifiers are the input modifiers that accompany a click.
type Modifiers uint8

const (
	// ModPlatform is ctrl, or cmd on macOS.
	ModPlatform Modifiers = 1 << iota
	ModShift
)

// SelectionMode decides how clicks on leaf rows change the selection.
type SelectionMode uint8

const (
	SelectionSingle SelectionMode = iota
	SelectionMulti
	SelectionNone
)

func (m SelectionMode) String() string {
	switch m {
	case SelectionSingle:
		return "single"
	case SelectionMulti:
		return "multi"
	case SelectionNone:
		return "none"
	}
	return fmt.Sprintf("SelectionMode(%d)", uint8(m))
}

// ParseSelectionMode parses the names returned by SelectionMode.String.
func ParseSelectionMode(s string) (SelectionMode, error) {
	switch s {
	case "single", "":
		return SelectionSingle, nil
	case "multi":
		return SelectionMulti, nil
	case "none":
		return SelectionNone, nil
	}
	return SelectionSingle, fmt.Errorf("unknown selection mode %q", s)
}

// Policy holds the options the state machine consults.
type Policy struct {
	Mode       SelectionMode
	Checkboxes bool
}

// State is everything a click can change.
type State struct {
	Expansion Expansion
	Selection Selection
}

// Action names the effect of a transition.
type Action uint8

const (
	ActionNone Action = iota
	ActionToggleFolder
	ActionSelect
)

// Transition is the outcome of feeding one event to the state machine.
type Transition struct {
	Next   State
	Action Action
	// Row is the row the event targeted, when it exists.
	Row FlatRow
	// Expanded is the folder's new state for ActionToggleFolder.
	Expanded bool
	// SelectionChanged reports whether the selected ids differ from before.
	SelectionChanged bool
}

func rowAt(rows []FlatRow, index int) (FlatRow, bool) {
	if index < 0 || index >= len(rows) {
		return FlatRow{}, false
	}
	return rows[index], true
}

// Click returns the transition caused by clicking the row at flat index with
// mods held. Clicks on group headers, disabled rows and unknown indices leave
// the state untouched.
func Click(state State, rows []FlatRow, index int, mods Modifiers, policy Policy) Transition {
	row, ok := rowAt(rows, index)
	if !ok || row.GroupHeader || row.Disabled {
		return Transition{Next: state, Row: row}
	}

	if row.Folder {
		next := state
		next.Expansion = state.Expansion.Toggle(row.ID)
		return Transition{
			Next:     next,
			Action:   ActionToggleFolder,
			Row:      row,
			Expanded: next.Expansion.Has(row.ID),
		}
	}

	if policy.Mode == SelectionNone {
		return Transition{Next: state, Row: row}
	}

	next := state
	next.Selection = clickSelection(state.Selection, rows, row, mods, policy.Mode)
	return Transition{
		Next:             next,
		Action:           ActionSelect,
		Row:              row,
		SelectionChanged: !next.Selection.SameIDs(state.Selection),
	}
}

func clickSelection(sel Selection, rows []FlatRow, row FlatRow, mods Modifiers, mode SelectionMode) Selection {
	if mode != SelectionMulti {
		return sel.Only(row.ID, row.Index)
	}
	switch {
	case mods&ModShift != 0:
		anchor, ok := sel.Anchor()
		if !ok {
			return sel.Only(row.ID, row.Index)
		}
		return sel.Union(rangeIDs(rows, anchor, row.Index)...)
	case mods&ModPlatform != 0:
		return sel.Toggle(row.ID).WithAnchor(row.Index)
	default:
		return sel.Only(row.ID, row.Index)
	}
}

// rangeIDs returns the ids of the rows between from and to inclusive, in flat
// order. Disabled rows are part of a range; group headers are not.
func rangeIDs(rows []FlatRow, from, to int) []string {
	lo, hi := min(from, to), max(from, to)
	lo = max(lo, 0)
	hi = min(hi, len(rows)-1)
	if lo > hi {
		return nil
	}
	ids := make([]string, 0, hi-lo+1)
	for _, row := range rows[lo : hi+1] {
		if row.GroupHeader {
			continue
		}
		ids = append(ids, row.ID)
	}
	return ids
}

// CheckToggle returns the transition caused by toggling the checkbox of the row
// at flat index. It only applies when checkboxes are enabled and never moves
// the anchor.
func CheckToggle(state State, rows []FlatRow, index int, policy Policy) Transition {
	row, ok := rowAt(rows, index)
	if !ok || !policy.Checkboxes || row.GroupHeader || row.Disabled {
		return Transition{Next: state, Row: row}
	}
	next := state
	next.Selection = state.Selection.Toggle(row.ID)
	return Transition{
		Next:             next,
		Action:           ActionSelect,
		Row:              row,
		SelectionChanged: true,
	}
}
