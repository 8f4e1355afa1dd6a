package executor

import (
	"slices"
	"strings"
)

// CallLog records every invocation a mock engine receives, in call order,
// as normalized command strings. It is append-only; only Reset clears it.
type CallLog struct {
	calls []string
}

// Append records one invocation.
func (l *CallLog) Append(command string) {
	l.calls = append(l.calls, command)
}

// Calls returns a copy of the recorded invocations in call order.
func (l *CallLog) Calls() []string {
	return slices.Clone(l.calls)
}

// Len returns the number of recorded invocations.
func (l *CallLog) Len() int {
	return len(l.calls)
}

// IsEmpty reports whether nothing has been recorded.
func (l *CallLog) IsEmpty() bool {
	return len(l.calls) == 0
}

// Contains reports whether any recorded invocation contains substr.
func (l *CallLog) Contains(substr string) bool {
	return l.Count(substr) > 0
}

// Count returns how many recorded invocations contain substr.
func (l *CallLog) Count(substr string) int {
	n := 0
	for _, c := range l.calls {
		if strings.Contains(c, substr) {
			n++
		}
	}
	return n
}

// EqualAt reports whether the invocation at position i equals command.
// An out-of-range position is simply not equal, never an error.
func (l *CallLog) EqualAt(i int, command string) bool {
	if i < 0 || i >= len(l.calls) {
		return false
	}
	return l.calls[i] == command
}

// Reset discards all recorded invocations.
func (l *CallLog) Reset() {
	l.calls = nil
}
