// Package diag defines the categories attached to diagnostic log entries so
// that callers and tests can tell a fatal load problem from an expected no-op.
package diag

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Category classifies a diagnostic.
type Category string

// FieldCategory is the logrus field holding the Category.
const FieldCategory = "category"

const (
	// LoadFailed marks an island that could not be loaded and was excluded.
	LoadFailed Category = "load_failed"
	// OutOfBounds marks tile writes dropped because they fell outside the shared grid.
	OutOfBounds Category = "out_of_bounds"
	// NoWalkableTiles marks an adjacent pair skipped because an island has no walkable tiles.
	NoWalkableTiles Category = "no_walkable_tiles"
	// NoAlignedPair marks an adjacent pair without an axis-aligned tile pair in range.
	NoAlignedPair Category = "no_aligned_pair"
	// BridgeCreated marks a detected bridge.
	BridgeCreated Category = "bridge_created"
	// RenderFallback marks the flat-colour bridge renderer being used.
	RenderFallback Category = "render_fallback"
)

// With returns an entry tagged with the category. A nil log discards.
func With(log *logrus.Entry, c Category) *logrus.Entry {
	return OrDiscard(log).WithField(FieldCategory, c)
}

// Of returns the category of a log entry, or "" when it has none.
func Of(e *logrus.Entry) Category {
	if e == nil {
		return ""
	}
	c, _ := e.Data[FieldCategory].(Category)
	return c
}

// OrDiscard returns log, or a discarding entry when log is nil.
func OrDiscard(log *logrus.Entry) *logrus.Entry {
	if log == nil {
		return Discard()
	}
	return log
}

// Discard returns an entry that drops everything. Useful as a default when a
// caller passes no logger.
func Discard() *logrus.Entry {
	l := logrus.New()
	l.Out = io.Discard
	l.SetLevel(logrus.PanicLevel)
	return logrus.NewEntry(l)
}
