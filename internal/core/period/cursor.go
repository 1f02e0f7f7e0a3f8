package period

import (
	"time"

	"github.com/SscSPs/finops_core/internal/core/domain"
)

// Cursor is the "current period" of a view. Callers own it and pass it
// around explicitly; navigation returns a new Cursor.
type Cursor struct {
	Anchor      time.Time
	Granularity domain.Granularity
}

// NewCursor creates a cursor anchored at the given date.
func NewCursor(anchor time.Time, g domain.Granularity) Cursor {
	return Cursor{Anchor: anchor, Granularity: g}
}

func (c Cursor) Range() (domain.DateRange, error) { return Resolve(c.Anchor, c.Granularity) }

func (c Cursor) Next() Cursor { return Cursor{Anchor: Step(c.Anchor, c.Granularity, Next), Granularity: c.Granularity} }

func (c Cursor) Prev() Cursor { return Cursor{Anchor: Step(c.Anchor, c.Granularity, Prev), Granularity: c.Granularity} }

func (c Cursor) Label() string { return Label(c.Anchor, c.Granularity) }
