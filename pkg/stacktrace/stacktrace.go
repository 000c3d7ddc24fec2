// Package stacktrace captures call stacks and reads the stack traces recorded by cockroachdb errors.
package stacktrace

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/errors/errbase"
)

const maxDepth = 32

// StackTrace is a call stack, innermost call first.
// It has the layout of [errbase.StackTrace].
type StackTrace errbase.StackTrace

// Capture captures the call stack, skipping the given number of frames.
// skip=0 identifies the caller of Capture.
func Capture(skip int) StackTrace {
	var pcs [maxDepth]uintptr
	n := runtime.Callers(2+skip, pcs[:])
	s := make(StackTrace, n)
	for i := range s {
		s[i] = errbase.StackFrame(pcs[i])
	}
	return s
}

// FromError returns the stack trace recorded by the outermost error of the chain that has one.
func FromError(err error) (StackTrace, bool) {
	var provider errbase.StackTraceProvider
	if err == nil || !errors.As(err, &provider) {
		return nil, false
	}
	return StackTrace(provider.StackTrace()), true
}

// Frames resolves the stack trace, outermost call first.
// Runtime frames at the bottom of the stack are skipped.
func (s StackTrace) Frames() []Frame {
	frames := make([]Frame, 0, len(s))
	skipping := true
	for i := len(s) - 1; i >= 0; i-- {
		pc := uintptr(s[i]) - 1
		fn := runtime.FuncForPC(pc)
		if fn == nil {
			frames = append(frames, Frame{Function: "unknown"})
			skipping = false
			continue
		}

		name := fn.Name()
		if skipping && strings.HasPrefix(name, "runtime.") {
			continue
		}
		skipping = false

		file, line := fn.FileLine(pc)
		frames = append(frames, Frame{Function: name, File: file, Line: line})
	}
	return frames
}

// Strings returns one "function file:line" entry per frame, outermost call first.
func (s StackTrace) Strings() []string {
	frames := s.Frames()
	lines := make([]string, len(frames))
	for i, f := range frames {
		lines[i] = f.String()
	}
	return lines
}

func (s StackTrace) String() string {
	var sb strings.Builder
	for i, f := range s.Frames() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "[%d] %s", i+1, f)
	}
	return sb.String()
}
