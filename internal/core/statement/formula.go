package statement

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidFormula is returned by ParseFormula for malformed expressions.
var ErrInvalidFormula = errors.New("invalid formula")

// Term is one signed reference inside a formula.
type Term struct {
	Sign   int // +1 or -1
	LineID string
}

// Formula is a parsed SUBTOTAL/RESULT expression: a signed sum of other lines.
type Formula struct {
	Terms []Term
}

// References returns the referenced line ids in order of appearance.
func (f Formula) References() []string {
	refs := make([]string, 0, len(f.Terms))
	for _, t := range f.Terms {
		refs = append(refs, t.LineID)
	}
	return refs
}

func (f Formula) String() string {
	var b strings.Builder
	for i, t := range f.Terms {
		switch {
		case i == 0 && t.Sign < 0:
			b.WriteString("-")
		case i > 0 && t.Sign < 0:
			b.WriteString(" - ")
		case i > 0:
			b.WriteString(" + ")
		}
		b.WriteString("{" + t.LineID + "}")
	}
	return b.String()
}

// ParseFormula parses expressions such as
//
//	revenue - deductions
//	{3f1c-...} - {9a2e-...} - taxes
//
// A term is either a bare identifier made of letters, digits, '_', '.', ':'
// or any id wrapped in braces (needed for ids containing '-', like UUIDs).
func ParseFormula(expr string) (Formula, error) {
	p := &formulaParser{src: []rune(expr)}
	var f Formula

	sign := 1
	p.skipSpace()
	if op, ok := p.operator(); ok {
		sign = op
	}
	for {
		id, err := p.term()
		if err != nil {
			return Formula{}, err
		}
		f.Terms = append(f.Terms, Term{Sign: sign, LineID: id})

		p.skipSpace()
		if p.done() {
			break
		}
		op, ok := p.operator()
		if !ok {
			return Formula{}, fmt.Errorf("%w: expected '+' or '-' at position %d in %q", ErrInvalidFormula, p.pos, expr)
		}
		sign = op
	}
	return f, nil
}

type formulaParser struct {
	src []rune
	pos int
}

func (p *formulaParser) done() bool { return p.pos >= len(p.src) }

func (p *formulaParser) skipSpace() {
	for !p.done() && unicode.IsSpace(p.src[p.pos]) {
		p.pos++
	}
}

func (p *formulaParser) operator() (int, bool) {
	if p.done() {
		return 0, false
	}
	switch p.src[p.pos] {
	case '+':
		p.pos++
		return 1, true
	case '-', '−':
		p.pos++
		return -1, true
	}
	return 0, false
}

func (p *formulaParser) term() (string, error) {
	p.skipSpace()
	if p.done() {
		return "", fmt.Errorf("%w: expected a line reference at end of %q", ErrInvalidFormula, string(p.src))
	}

	if p.src[p.pos] == '{' {
		p.pos++
		start := p.pos
		for !p.done() && p.src[p.pos] != '}' {
			p.pos++
		}
		if p.done() {
			return "", fmt.Errorf("%w: unterminated '{' in %q", ErrInvalidFormula, string(p.src))
		}
		id := strings.TrimSpace(string(p.src[start:p.pos]))
		p.pos++ // closing brace
		if id == "" {
			return "", fmt.Errorf("%w: empty reference in %q", ErrInvalidFormula, string(p.src))
		}
		return id, nil
	}

	start := p.pos
	for !p.done() && isIdentRune(p.src[p.pos]) {
		p.pos++
	}
	if start == p.pos {
		return "", fmt.Errorf("%w: unexpected %q at position %d in %q", ErrInvalidFormula, p.src[p.pos], p.pos, string(p.src))
	}
	return string(p.src[start:p.pos]), nil
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '.' || r == ':'
}
