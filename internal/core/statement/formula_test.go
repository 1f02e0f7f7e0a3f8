package statement_test

import (
	"testing"

	"github.com/SscSPs/finops_core/internal/core/statement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormula(t *testing.T) {
	tests := []struct {
		expr string
		want []statement.Term
	}{
		{"revenue - deductions", []statement.Term{{Sign: 1, LineID: "revenue"}, {Sign: -1, LineID: "deductions"}}},
		{"gross-expenses-taxes", []statement.Term{{Sign: 1, LineID: "gross"}, {Sign: -1, LineID: "expenses"}, {Sign: -1, LineID: "taxes"}}},
		{"-a + b", []statement.Term{{Sign: -1, LineID: "a"}, {Sign: 1, LineID: "b"}}},
		{"{3f1c-aa} − {9a2e-bb}", []statement.Term{{Sign: 1, LineID: "3f1c-aa"}, {Sign: -1, LineID: "9a2e-bb"}}},
		{"  line.1 + ns:line_2 ", []statement.Term{{Sign: 1, LineID: "line.1"}, {Sign: 1, LineID: "ns:line_2"}}},
		{"single", []statement.Term{{Sign: 1, LineID: "single"}}},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			f, err := statement.ParseFormula(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.Terms)
		})
	}
}

func TestParseFormula_Errors(t *testing.T) {
	for _, expr := range []string{"", "   ", "a -", "a b", "{unterminated", "{} + a", "a * b", "+"} {
		t.Run(expr, func(t *testing.T) {
			_, err := statement.ParseFormula(expr)
			assert.ErrorIs(t, err, statement.ErrInvalidFormula)
		})
	}
}

func TestFormula_StringRoundTrip(t *testing.T) {
	f, err := statement.ParseFormula("-a + {b-1} - c")
	require.NoError(t, err)
	assert.Equal(t, "-{a} + {b-1} - {c}", f.String())

	again, err := statement.ParseFormula(f.String())
	require.NoError(t, err)
	assert.Equal(t, f, again)
}
