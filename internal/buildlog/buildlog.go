// Package buildlog provides an accumulating diagnostic log for
// triangulation and validation runs, grounded on the teacher's
// BuildContext message accumulator (buildcontext.go /
// recast/buildcontext.go) but re-pointed from navmesh-build progress
// messages to per-constraint CDT diagnostics: which constraint is being
// enforced, how many edges it flipped, which triangles a validator
// rejected.
package buildlog

import (
	"fmt"
	"io"
	"time"
)

// Category classifies a log entry the way the teacher's rcLogCategory
// does (RC_LOG_PROGRESS/WARNING/ERROR).
type Category int

const (
	Progress Category = iota
	Warn
	Error
)

func (c Category) String() string {
	switch c {
	case Progress:
		return "PROG"
	case Warn:
		return "WARN"
	case Error:
		return "ERR"
	default:
		return "????"
	}
}

// Entry is a single accumulated message.
type Entry struct {
	Category Category
	Text     string
	At       time.Time
}

// Log accumulates messages in order, mirroring the teacher's
// BuildContext.doLog/m_messages accumulator but as a growable slice
// instead of a fixed [MAX_MESSAGES]string array — this log has no fixed
// upper bound on the number of constraints or validation steps it might
// record.
type Log struct {
	entries []Entry
}

// New returns an empty Log.
func New() *Log {
	return &Log{}
}

func (l *Log) log(cat Category, format string, args ...any) {
	l.entries = append(l.entries, Entry{
		Category: cat,
		Text:     fmt.Sprintf(format, args...),
		At:       time.Now(),
	})
}

// Progress records an informational entry.
func (l *Log) Progress(format string, args ...any) { l.log(Progress, format, args...) }

// Warn records a warning entry.
func (l *Log) Warn(format string, args ...any) { l.log(Warn, format, args...) }

// Err records an error entry.
func (l *Log) Err(format string, args ...any) { l.log(Error, format, args...) }

// Count returns the number of accumulated entries.
func (l *Log) Count() int { return len(l.entries) }

// Entries returns the accumulated entries in recorded order.
func (l *Log) Entries() []Entry {
	return l.entries
}

// Reset discards every accumulated entry.
func (l *Log) Reset() {
	l.entries = nil
}

// Dump writes every accumulated message to w, one per line, prefixed by
// its category tag — the teacher's dumpLog behavior generalized to an
// arbitrary io.Writer instead of hardcoding stdout.
func (l *Log) Dump(w io.Writer, header string) {
	if header != "" {
		fmt.Fprintln(w, header)
	}
	for _, e := range l.entries {
		fmt.Fprintf(w, "%s %s\n", e.Category, e.Text)
	}
}
