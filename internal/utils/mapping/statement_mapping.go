package mapping

import (
	"github.com/SscSPs/finops_core/internal/core/domain"
	"github.com/SscSPs/finops_core/internal/models"
)

// ToDomainTemplate converts a template row. Lines are loaded separately.
func ToDomainTemplate(m models.StatementTemplate) domain.StatementTemplate {
	return domain.StatementTemplate{
		TemplateID: m.TemplateID,
		CompanyID:  m.CompanyID,
		Name:       m.Name,
	}
}

// ToDomainLines converts line rows and attaches their mappings. Line order is kept.
func ToDomainLines(lines []models.StatementLine, mappings []models.LineMapping) []domain.StatementLine {
	byLine := make(map[string][]domain.LineMapping)
	for _, m := range mappings {
		byLine[m.LineID] = append(byLine[m.LineID], domain.LineMapping{
			TargetKind: domain.MappingTarget(m.TargetKind),
			TargetID:   m.TargetID,
		})
	}

	out := make([]domain.StatementLine, len(lines))
	for i, l := range lines {
		out[i] = domain.StatementLine{
			LineID:     l.LineID,
			TemplateID: l.TemplateID,
			Name:       l.Name,
			Type:       domain.LineType(l.LineType),
			Position:   l.Position,
			Mappings:   byLine[l.LineID],
			Formula:    l.Formula,
		}
	}
	return out
}
