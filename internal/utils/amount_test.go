package utils_test

import (
	"testing"

	"github.com/SscSPs/surety_risk_app/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
	}{
		{name: "plain digits", input: "1250000", want: 1_250_000},
		{name: "dot grouping", input: "1.250.000", want: 1_250_000},
		{name: "currency prefix", input: "Rp 500.000.000", want: 500_000_000},
		{name: "comma grouping", input: "2,000,000", want: 2_000_000},
		{name: "decimal part is folded in", input: "12,50", want: 1250},
		{name: "minus sign is dropped", input: "-300", want: 300},
		{name: "empty", input: "", want: 0},
		{name: "no digits", input: "abc", want: 0},
		{name: "overflow", input: "99999999999999999999999", want: 0},
		{name: "non-ascii digits ignored", input: "١٢3", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.ParseAmount(tt.input))
		})
	}
}
