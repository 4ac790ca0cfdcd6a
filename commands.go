package hlist

// Command is a side effect requested by a primitive during input handling.
// Commands are executed by the Application event loop.
type Command any

// BatchCommand groups multiple commands into a single command.
type BatchCommand []Command

// AppendCommand appends next to current and returns a merged command value.
// Nested BatchCommand values are flattened.
func AppendCommand(current Command, next Command) Command {
	if next == nil {
		return current
	}
	if current == nil {
		return next
	}

	var batch BatchCommand
	if c, ok := current.(BatchCommand); ok {
		batch = append(batch, c...)
	} else {
		batch = append(batch, current)
	}
	if n, ok := next.(BatchCommand); ok {
		batch = append(batch, n...)
	} else {
		batch = append(batch, next)
	}
	return batch
}

// SetFocusCommand moves the keyboard focus to Target.
type SetFocusCommand struct {
	Target Primitive
}

// RedrawCommand requests a redraw at the end of the current event.
type RedrawCommand struct{}

// QuitCommand requests stopping the application event loop.
type QuitCommand struct{}

// ConsumeEventCommand stops further propagation of the current input event
// without asking for a redraw.
type ConsumeEventCommand struct{}
