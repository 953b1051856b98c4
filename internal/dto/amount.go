package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/SscSPs/surety_risk_app/internal/utils"
)

// Amount is a non-negative monetary value in the smallest currency unit. It
// decodes from a JSON integer or from formatted text such as "Rp 1.250.000".
type Amount int64

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = 0
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*a = Amount(utils.ParseAmount(text))
		return nil
	}

	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("amount %s must be a whole number of currency units", data)
	}
	if n < 0 {
		return fmt.Errorf("amount %d must not be negative", n)
	}
	*a = Amount(n)
	return nil
}

// Int64 returns the amount as a plain integer.
func (a Amount) Int64() int64 {
	return int64(a)
}

// Statement maps line-item labels to amounts.
type Statement map[string]Amount
