package dto

import (
	"time"

	"github.com/SscSPs/finops_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StatementQuery selects the period of a statement and the line every other
// line is expressed as a percentage of. An empty PercentBase uses the first
// REVENUE line.
type StatementQuery struct {
	PeriodQuery
	PercentBase string `form:"percentBase"`
}

// TemplateResponse defines the data returned for a statement template listing.
type TemplateResponse struct {
	TemplateID string `json:"templateID"`
	Name       string `json:"name"`
}

// ComputedLineResponse is one evaluated line. Percent is omitted when it is
// not applicable (base missing or zero).
type ComputedLineResponse struct {
	LineID  string           `json:"lineID"`
	Name    string           `json:"name"`
	Type    domain.LineType  `json:"type"`
	Value   decimal.Decimal  `json:"value"`
	Percent *decimal.Decimal `json:"percent,omitempty"`
}

// StatementResponse defines the data returned for a generated statement.
type StatementResponse struct {
	TemplateID  string                      `json:"templateID"`
	Name        string                      `json:"name"`
	Label       string                      `json:"label"`
	Start       time.Time                   `json:"start"`
	End         time.Time                   `json:"end"`
	Lines       []ComputedLineResponse      `json:"lines"`
	Diagnostics domain.StatementDiagnostics `json:"diagnostics"`
	GeneratedAt time.Time                   `json:"generatedAt"`
}

// ToTemplateResponses converts templates to their listing form.
func ToTemplateResponses(templates []domain.StatementTemplate) []TemplateResponse {
	res := make([]TemplateResponse, len(templates))
	for i, t := range templates {
		res[i] = TemplateResponse{TemplateID: t.TemplateID, Name: t.Name}
	}
	return res
}

// ToStatementResponse converts a report, rounding values to cents.
func ToStatementResponse(r *domain.StatementReport) StatementResponse {
	lines := make([]ComputedLineResponse, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = ComputedLineResponse{
			LineID:  l.LineID,
			Name:    l.Name,
			Type:    l.Type,
			Value:   l.Value.Round(2),
			Percent: l.Percent,
		}
	}
	return StatementResponse{
		TemplateID:  r.TemplateID,
		Name:        r.Name,
		Label:       r.Label,
		Start:       r.Range.Start,
		End:         r.Range.End,
		Lines:       lines,
		Diagnostics: r.Diagnostics,
		GeneratedAt: r.GeneratedAt,
	}
}
