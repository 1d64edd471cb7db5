package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "10.00", want: "10.00"},
		{raw: "10", want: "10.00"},
		{raw: "10.5", want: "10.50"},
		{raw: "0.99", want: "0.99"},
		{raw: "-1.50", want: "-1.50"}, // negative prices are not rejected
		{raw: "10.123", wantErr: true},
		{raw: "abc", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		price, err := ParsePrice(tt.raw)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidPrice, "raw=%q", tt.raw)
			continue
		}
		require.NoError(t, err, "raw=%q", tt.raw)
		assert.Equal(t, tt.want, price.StringFixed(2), "raw=%q", tt.raw)
	}
}
