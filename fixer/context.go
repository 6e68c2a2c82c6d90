package fixer

import (
	"fmt"

	"github.com/aether-framework/aether-datafixers-sub003/result"
	"github.com/aether-framework/aether-datafixers-sub003/typereg"
)

// FixEventLevel classifies a structured event a DataFix publishes
// through Context (spec §4.6: "may publish structured events via ctx
// (info/warn/error)").
type FixEventLevel int

const (
	EventInfo FixEventLevel = iota
	EventWarn
	EventError
)

// String implements fmt.Stringer.
func (l FixEventLevel) String() string {
	switch l {
	case EventInfo:
		return "info"
	case EventWarn:
		return "warn"
	case EventError:
		return "error"
	default:
		return "unknown"
	}
}

// FixEvent is one structured event published by a DataFix during Apply.
type FixEvent struct {
	Level   FixEventLevel
	Fix     string
	Type    typereg.TypeReference
	Message string
}

// Context is the ctx parameter threaded into DataFix.Apply. It carries
// a Logger (mirroring parser.Logger's threading through parse options)
// and collects structured events, readable through Events. Update and
// Preview create one Context per applied fix and do not return it, so
// after they return the events are visible only through the Logger.
type Context struct {
	logger Logger
	events []FixEvent
	fix    string
	typ    typereg.TypeReference
}

func newContext(logger Logger, fix string, typ typereg.TypeReference) *Context {
	if logger == nil {
		logger = NopLogger{}
	}
	return &Context{logger: logger, fix: fix, typ: typ}
}

// Info records an info-level event and forwards it to the Logger.
func (c *Context) Info(format string, args ...any) {
	c.record(EventInfo, format, args...)
}

// Warn records a warn-level event and forwards it to the Logger.
func (c *Context) Warn(format string, args ...any) {
	c.record(EventWarn, format, args...)
}

// Error records an error-level event and forwards it to the Logger. Per
// spec §4.6, a published error event does not itself fail Update — only
// a fix that panics or is otherwise broken does.
func (c *Context) Error(format string, args ...any) {
	c.record(EventError, format, args...)
}

func (c *Context) record(level FixEventLevel, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	c.events = append(c.events, FixEvent{Level: level, Fix: c.fix, Type: c.typ, Message: msg})
	switch level {
	case EventWarn:
		c.logger.Warn(msg, "fix", c.fix, "type", c.typ.ID())
	case EventError:
		c.logger.Error(msg, "fix", c.fix, "type", c.typ.ID())
	default:
		c.logger.Info(msg, "fix", c.fix, "type", c.typ.ID())
	}
}

// Check validates an invariant a DataFix depends on before editing: ok
// false records an error event and returns a failed DataResult carrying
// the formatted message, for a fix that wants to short-circuit on a
// precondition without producing a replacement value (spec's DataResult
// channel is otherwise used only for per-field reads/writes).
func (c *Context) Check(ok bool, format string, args ...any) result.DataResult[result.Unit] {
	if !ok {
		msg := fmt.Sprintf(format, args...)
		c.record(EventError, "%s", msg)
		return result.Error[result.Unit](msg)
	}
	return result.Success(result.UnitValue)
}

// Events returns every event recorded on this Context so far.
func (c *Context) Events() []FixEvent {
	out := make([]FixEvent, len(c.events))
	copy(out, c.events)
	return out
}
