package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/SscSPs/surety_risk_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    dto.Amount
		wantErr bool
	}{
		{name: "integer", input: `1250000`, want: 1_250_000},
		{name: "zero", input: `0`, want: 0},
		{name: "null", input: `null`, want: 0},
		{name: "formatted text", input: `"Rp 1.250.000"`, want: 1_250_000},
		{name: "text with commas", input: `"500,000,000"`, want: 500_000_000},
		{name: "empty text", input: `""`, want: 0},
		{name: "text without digits", input: `"n/a"`, want: 0},
		{name: "negative number", input: `-5`, wantErr: true},
		{name: "fractional number", input: `10.5`, wantErr: true},
		{name: "exponent", input: `1e9`, wantErr: true},
		{name: "boolean", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got dto.Amount
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatement_DecodesMixedAmounts(t *testing.T) {
	var s dto.Statement
	err := json.Unmarshal([]byte(`{"Kas dan Setara Kas": 100, "Utang usaha": "Rp 2.000"}`), &s)

	require.NoError(t, err)
	assert.Equal(t, dto.Amount(100), s["Kas dan Setara Kas"])
	assert.Equal(t, int64(2000), s["Utang usaha"].Int64())
}
