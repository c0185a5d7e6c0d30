package bindgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exprTokens(t *testing.T, src string) []token {
	t.Helper()
	toks, err := tokenize(src, 1)
	require.NoError(t, err)
	return toks
}

func TestEvaluate(t *testing.T) {
	names := map[string]Value{"WIDTH": {Int: 64}}
	isType := func(name string) bool { return name == "DWORD" }

	tests := []struct {
		expr string
		want Value
	}{
		{"42", Value{Int: 42}},
		{"0x10", Value{Int: 16, Hex: true}},
		{"4000000000", Value{Int: 4000000000}},
		{"-1", Value{Int: -1}},
		{"(DWORD)-2", Value{Int: -2}},
		{"1 << 4 | 1", Value{Int: 17}},
		{"2 + 3 * 4", Value{Int: 14}},
		{"(2 + 3) * 4", Value{Int: 20}},
		{"WIDTH * WIDTH", Value{Int: 4096}},
		{"~0", Value{Int: -1, Hex: true}},
		{"10u", Value{Int: 10}},
		{"'A'", Value{Int: 65}},
		{"1.5f", Value{Float: true, Flt: 1.5}},
		{"DWORD_MAX", Value{Int: 0xFFFFFFFF, Hex: true}},
		{"FLT_MAX", builtinValues["FLT_MAX"]},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := evaluate(exprTokens(t, tt.expr), names, isType)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	isType := func(string) bool { return false }
	for _, expr := range []string{"UNKNOWN", "1 +", "(1", "4 / 0", "~1.5"} {
		t.Run(expr, func(t *testing.T) {
			_, err := evaluate(exprTokens(t, expr), nil, isType)
			assert.Error(t, err)
		})
	}
}
