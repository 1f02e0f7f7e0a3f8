package models

// StatementTemplate is a row of the statement_templates table.
type StatementTemplate struct {
	TemplateID string `db:"template_id"`
	CompanyID  string `db:"company_id"`
	Name       string `db:"name"`
}

// StatementLine is a row of the statement_lines table.
type StatementLine struct {
	LineID     string `db:"line_id"`
	TemplateID string `db:"template_id"`
	Name       string `db:"name"`
	LineType   string `db:"line_type"`
	Position   int    `db:"position"`
	Formula    string `db:"formula"`
}

// LineMapping is a row of the statement_line_mappings table.
type LineMapping struct {
	TemplateID string `db:"template_id"`
	LineID     string `db:"line_id"`
	TargetKind string `db:"target_kind"`
	TargetID   string `db:"target_id"`
}
