// Package statement turns a period's transactions into a computed statement:
// leaf lines are aggregated from category/account mappings and SUBTOTAL/RESULT
// lines are evaluated from explicit formulas over other line ids.
package statement

import (
	"errors"
	"sort"
	"strings"

	"github.com/SscSPs/finops_core/internal/apperrors"
	"github.com/SscSPs/finops_core/internal/core/domain"
	"github.com/agnivade/levenshtein"
	"github.com/shopspring/decimal"
)

// Evaluate computes every line of tmpl. Leaf lines take their value from agg
// (missing entries count as zero). SUBTOTAL and RESULT lines are computed from
// their formula once the lines they reference are known, so formulas may refer
// to lines in any position. The output follows template order.
//
// Templates are validated up front: duplicate ids, computed lines without a
// formula, leaf lines with one, unparsable formulas, unknown references and
// cycles all yield a *apperrors.ConfigError. Evaluate keeps no state between
// calls.
func Evaluate(agg map[string]decimal.Decimal, tmpl domain.StatementTemplate) ([]domain.ComputedLine, error) {
	byID := make(map[string]domain.StatementLine, len(tmpl.Lines))
	for _, line := range tmpl.Lines {
		if line.LineID == "" {
			return nil, apperrors.NewConfigError("", "line %q has no id", line.Name)
		}
		if _, dup := byID[line.LineID]; dup {
			return nil, apperrors.NewConfigError(line.LineID, "duplicate line id")
		}
		byID[line.LineID] = line
	}

	formulas, err := parseFormulas(tmpl, byID)
	if err != nil {
		return nil, err
	}

	order, err := evaluationOrder(tmpl, formulas)
	if err != nil {
		return nil, err
	}

	values := make(map[string]decimal.Decimal, len(tmpl.Lines))
	for _, line := range tmpl.Lines {
		if line.Type.IsLeaf() {
			v, ok := agg[line.LineID]
			if !ok {
				v = decimal.Zero
			}
			values[line.LineID] = v
		}
	}
	for _, id := range order {
		sum := decimal.Zero
		for _, term := range formulas[id].Terms {
			if term.Sign < 0 {
				sum = sum.Sub(values[term.LineID])
			} else {
				sum = sum.Add(values[term.LineID])
			}
		}
		values[id] = sum
	}

	out := make([]domain.ComputedLine, 0, len(tmpl.Lines))
	for _, line := range tmpl.Lines {
		out = append(out, domain.ComputedLine{
			LineID: line.LineID,
			Name:   line.Name,
			Type:   line.Type,
			Value:  values[line.LineID],
		})
	}
	return out, nil
}

func parseFormulas(tmpl domain.StatementTemplate, byID map[string]domain.StatementLine) (map[string]Formula, error) {
	formulas := make(map[string]Formula)
	for _, line := range tmpl.Lines {
		expr := strings.TrimSpace(line.Formula)
		switch {
		case line.Type.IsLeaf():
			if expr != "" {
				return nil, apperrors.NewConfigError(line.LineID, "%s lines take their value from mappings and cannot have a formula", line.Type)
			}
			continue
		case !line.Type.IsComputed():
			return nil, apperrors.NewConfigError(line.LineID, "unknown line type %q", line.Type)
		case expr == "":
			return nil, apperrors.NewConfigError(line.LineID, "%s line requires an explicit formula", line.Type)
		}

		f, err := ParseFormula(expr)
		if err != nil {
			if errors.Is(err, ErrInvalidFormula) {
				return nil, apperrors.NewConfigError(line.LineID, "%s", err.Error())
			}
			return nil, err
		}
		for _, ref := range f.References() {
			if _, ok := byID[ref]; !ok {
				if hint := closestID(ref, byID); hint != "" {
					return nil, apperrors.NewConfigError(line.LineID, "formula references unknown line %q (did you mean %q?)", ref, hint)
				}
				return nil, apperrors.NewConfigError(line.LineID, "formula references unknown line %q", ref)
			}
		}
		formulas[line.LineID] = f
	}
	return formulas, nil
}

// evaluationOrder sorts computed lines so that every line comes after the
// computed lines it references (Kahn's algorithm, ties broken by template order).
func evaluationOrder(tmpl domain.StatementTemplate, formulas map[string]Formula) ([]string, error) {
	position := make(map[string]int, len(tmpl.Lines))
	for i, line := range tmpl.Lines {
		position[line.LineID] = i
	}

	pending := make(map[string]int, len(formulas))
	dependents := make(map[string][]string)
	for id, f := range formulas {
		seen := make(map[string]bool)
		for _, ref := range f.References() {
			if _, computed := formulas[ref]; !computed || seen[ref] {
				continue
			}
			seen[ref] = true
			pending[id]++
			dependents[ref] = append(dependents[ref], id)
		}
	}

	var ready []string
	for id := range formulas {
		if pending[id] == 0 {
			ready = append(ready, id)
		}
	}

	order := make([]string, 0, len(formulas))
	for len(ready) > 0 {
		sort.Slice(ready, func(i, j int) bool { return position[ready[i]] < position[ready[j]] })
		id := ready[0]
		ready = ready[1:]
		order = append(order, id)
		for _, dep := range dependents[id] {
			pending[dep]--
			if pending[dep] == 0 {
				ready = append(ready, dep)
			}
		}
	}

	if len(order) < len(formulas) {
		var cyclic []string
		for _, line := range tmpl.Lines {
			if _, ok := formulas[line.LineID]; ok && pending[line.LineID] > 0 {
				cyclic = append(cyclic, line.LineID)
			}
		}
		return nil, apperrors.NewConfigError(cyclic[0], "cyclic formula involving lines %s", strings.Join(cyclic, ", "))
	}
	return order, nil
}

// closestID suggests a known line id for a mistyped reference.
func closestID(ref string, byID map[string]domain.StatementLine) string {
	best, bestDist := "", -1
	for id := range byID {
		d := levenshtein.ComputeDistance(strings.ToLower(ref), strings.ToLower(id))
		if bestDist < 0 || d < bestDist || (d == bestDist && id < best) {
			best, bestDist = id, d
		}
	}
	limit := len(ref) / 3
	if limit < 2 {
		limit = 2
	}
	if bestDist < 0 || bestDist > limit {
		return ""
	}
	return best
}
