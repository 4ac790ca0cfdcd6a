package engine

import "github.com/go-logr/logr"

// Option configures an Engine in New.
type Option func(*Engine)

// WithItems sets an ungrouped item tree.
func WithItems(items []Item) Option {
	return func(e *Engine) {
		e.tree = NewTree(items)
	}
}

// WithGroups sets a grouped item tree.
func WithGroups(groups []Group) Option {
	return func(e *Engine) {
		e.tree = NewGroupedTree(groups)
	}
}

// WithExpanded starts with the given folders expanded. Ids that are not
// folders of the tree are dropped.
func WithExpanded(ids ...string) Option {
	return func(e *Engine) {
		e.state.Expansion = NewExpansion(ids...)
	}
}

// WithSelection sets the initial selection.
func WithSelection(selection Selection) Option {
	return func(e *Engine) {
		e.state.Selection = selection
	}
}

// WithControlledSelection leaves the selected ids to the caller: clicks are
// reported through the selection changed handler and take effect once the
// caller passes them back with SetSelectedIDs.
func WithControlledSelection() Option {
	return func(e *Engine) {
		e.controlledSelection = true
	}
}

// WithPagination enables pagination.
func WithPagination(pageSize, page int) Option {
	return func(e *Engine) {
		e.paginated = true
		e.pageSize = clampPageSize(pageSize)
		e.page = page
	}
}

// WithControlledPage leaves the current page to the caller: page requests are
// reported through the page changed handler and take effect on SetPage.
func WithControlledPage() Option {
	return func(e *Engine) {
		e.controlledPage = true
	}
}

// WithRowHeight gives every row the same height.
func WithRowHeight(height int) Option {
	return func(e *Engine) {
		e.heights = NewFixedHeights(height)
	}
}

// WithAutoRowHeight measures rows, using estimate until a measurement exists.
func WithAutoRowHeight(estimate int) Option {
	return func(e *Engine) {
		e.heights = NewDynamicHeights(estimate)
	}
}

// WithOverscan sets the number of extra rows rendered past each viewport edge.
func WithOverscan(rows int) Option {
	return func(e *Engine) {
		e.overscan = max(rows, 0)
	}
}

// WithSelectionMode sets how leaf clicks select.
func WithSelectionMode(mode SelectionMode) Option {
	return func(e *Engine) {
		e.policy.Mode = mode
	}
}

// WithCheckboxes enables checkbox toggles.
func WithCheckboxes(enabled bool) Option {
	return func(e *Engine) {
		e.policy.Checkboxes = enabled
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(log logr.Logger) Option {
	return func(e *Engine) {
		e.log = log
	}
}
