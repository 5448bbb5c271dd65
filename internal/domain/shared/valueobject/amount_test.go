package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDecimal(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"26", "26.00"},
		{"26.0000", "26.00"},
		{"10.5", "10.50"},
		{"10.125", "10.125"},
		{"0.0001", "0.0001"},
		{"1.23456", "1.2346"},
		{"0", "0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDecimal(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestStoredAmountBounds(t *testing.T) {
	tests := []struct {
		in            string
		tooPrecise    bool
		tooManyDigits bool
	}{
		{in: "0"},
		{in: "0.0001"},
		{in: "10.50000"},
		{in: "99999999999999.9999"},
		{in: "-99999999999999"},
		{in: "0.00001", tooPrecise: true},
		{in: "12.34567", tooPrecise: true},
		{in: "100000000000000", tooManyDigits: true},
		{in: "123456789012345.12345", tooPrecise: true, tooManyDigits: true},
	}

	for _, tt := range tests {
		d := decimal.RequireFromString(tt.in)
		assert.Equal(t, tt.tooPrecise, ExceedsScale(d), tt.in)
		assert.Equal(t, tt.tooManyDigits, ExceedsIntegerDigits(d), tt.in)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "plain", in: "120", want: "120"},
		{name: "till prefix", in: "Kshs. 120", want: "120"},
		{name: "lowercase code", in: "kes 99.5", want: "99.5"},
		{name: "thousands separator", in: "1,200.50", want: "1200.5"},
		{name: "prefix only", in: "Kshs.", wantErr: true},
		{name: "garbage", in: "twelve", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := ParseAmount(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(a.Decimal()))
		})
	}
}

func TestAmount_JSON(t *testing.T) {
	t.Run("decodes numbers and strings", func(t *testing.T) {
		var payload struct {
			A Amount `json:"a"`
			B Amount `json:"b"`
		}
		require.NoError(t, json.Unmarshal([]byte(`{"a": 10.50, "b": "Kshs. 5"}`), &payload))

		assert.Equal(t, "10.50", payload.A.String())
		assert.Equal(t, "5.00", payload.B.String())
	})

	t.Run("rejects null", func(t *testing.T) {
		var a Amount
		assert.Error(t, a.UnmarshalJSON([]byte("null")))
	})

	t.Run("encodes as string", func(t *testing.T) {
		out, err := json.Marshal(NewAmount(decimal.RequireFromString("26")))
		require.NoError(t, err)
		assert.JSONEq(t, `"26.00"`, string(out))
	})

	t.Run("does not lose precision", func(t *testing.T) {
		var a Amount
		require.NoError(t, json.Unmarshal([]byte(`0.1`), &a))
		sum := a.Decimal().Add(decimal.RequireFromString("0.2"))
		assert.Equal(t, "0.30", FormatDecimal(sum))
	})
}

func TestAmount_IsNegative(t *testing.T) {
	a, err := ParseAmount("-1")
	require.NoError(t, err)
	assert.True(t, a.IsNegative())
}
