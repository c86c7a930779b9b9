package command

import "strings"

// HelpName is the built-in command that lists registered commands.
const HelpName = "help"

// UnknownReply is written when the input line names no registered command.
const UnknownReply = "Command not recognised. Enter 'help' to view registered commands.\r\n"

// Interpreter resolves completed lines against a frozen [Registry] and
// streams handler output chunk by chunk. It carries the in-progress handler
// between invocations, so one Interpreter belongs to exactly one session
// and is not safe for concurrent use.
type Interpreter struct {
	registry *Registry

	active     HandlerFunc
	activeLine string
}

// NewInterpreter creates an interpreter over the given registry.
func NewInterpreter(r *Registry) *Interpreter {
	return &Interpreter{registry: r}
}

// Process produces the next output chunk for line. The first call for a line
// resolves the command; while it returns more=true, subsequent calls must
// pass the same line and yield the remaining chunks. An unknown command
// yields a single chunk containing [UnknownReply]; a blank line yields no
// output.
func (it *Interpreter) Process(line string, out []byte) (int, bool) {
	if it.active != nil {
		n, more := it.active(it.activeLine, out)
		if !more {
			it.active = nil
			it.activeLine = ""
		}
		return clamp(n, out), more
	}

	name, _, _ := strings.Cut(strings.TrimSpace(line), " ")
	if name == "" {
		return 0, false
	}

	var handler HandlerFunc
	if name == HelpName {
		handler = it.helpHandler()
	} else {
		def, ok := it.registry.Lookup(name)
		if !ok {
			return Fill(out, UnknownReply), false
		}
		handler = def.Handler
	}

	n, more := handler(line, out)
	if more {
		it.active = handler
		it.activeLine = line
	}
	return clamp(n, out), more
}

// Abort discards any in-progress handler, e.g. after a transmission failure
// cut a multi-chunk response short.
func (it *Interpreter) Abort() {
	it.active = nil
	it.activeLine = ""
}

// helpHandler streams one registered help line per chunk, in registration
// order, the way the original console's help command pages its output.
func (it *Interpreter) helpHandler() HandlerFunc {
	defs := it.registry.Definitions()
	index := 0

	return func(_ string, out []byte) (int, bool) {
		if index >= len(defs) {
			return 0, false
		}
		n := Fill(out, defs[index].Help)
		index++
		return n, index < len(defs)
	}
}

func clamp(n int, out []byte) int {
	if n < 0 {
		return 0
	}
	if n > len(out) {
		return len(out)
	}
	return n
}
