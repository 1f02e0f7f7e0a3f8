package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/finops_core/internal/core/domain"
	"github.com/SscSPs/finops_core/internal/core/period"
)

// DateLayout is the calendar-day format used for anchors and dates in query strings.
const DateLayout = "2006-01-02"

// PeriodQuery selects a reporting period. Anchor defaults to today and
// Granularity to MONTH.
type PeriodQuery struct {
	Anchor      string `form:"anchor" binding:"omitempty,datetime=2006-01-02"`
	Granularity string `form:"granularity" binding:"omitempty,granularity"`
}

// Cursor converts the query into a period cursor. now supplies the default anchor.
func (q PeriodQuery) Cursor(now time.Time) (period.Cursor, error) {
	g := domain.Month
	if q.Granularity != "" {
		parsed, err := period.ParseGranularity(q.Granularity)
		if err != nil {
			return period.Cursor{}, err
		}
		g = parsed
	}

	anchor := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if q.Anchor != "" {
		parsed, err := time.ParseInLocation(DateLayout, q.Anchor, now.Location())
		if err != nil {
			return period.Cursor{}, fmt.Errorf("invalid anchor %q: %w", q.Anchor, err)
		}
		anchor = parsed
	}
	return period.NewCursor(anchor, g), nil
}

// PeriodResponse describes a resolved period and how to navigate from it.
type PeriodResponse struct {
	Granularity domain.Granularity `json:"granularity"`
	Anchor      string             `json:"anchor"`
	Start       time.Time          `json:"start"`
	End         time.Time          `json:"end"`
	Label       string             `json:"label"`
	PrevAnchor  string             `json:"prevAnchor"`
	NextAnchor  string             `json:"nextAnchor"`
}

// ToPeriodResponse resolves a cursor into its response form.
func ToPeriodResponse(c period.Cursor) (PeriodResponse, error) {
	r, err := c.Range()
	if err != nil {
		return PeriodResponse{}, err
	}
	return PeriodResponse{
		Granularity: c.Granularity,
		Anchor:      c.Anchor.Format(DateLayout),
		Start:       r.Start,
		End:         r.End,
		Label:       c.Label(),
		PrevAnchor:  c.Prev().Anchor.Format(DateLayout),
		NextAnchor:  c.Next().Anchor.Format(DateLayout),
	}, nil
}
