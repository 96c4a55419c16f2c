// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTTL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Duration
	}{
		{name: "days", input: "365d", want: 365 * day},
		{name: "weeks", input: "2w", want: 14 * day},
		{name: "years", input: "1y", want: 365 * day},
		{name: "go duration", input: "36h", want: 36 * time.Hour},
		{name: "years and hours", input: "1y12h", want: 365*day + 12*time.Hour},
		{name: "years and weeks", input: "2y1w", want: 2*365*day + 7*day},
		{name: "mixed go units", input: "1d1h30m", want: day + 90*time.Minute},
		{name: "fractional day", input: "1.5d", want: 36 * time.Hour},
		{name: "surrounding space", input: " 90d ", want: 90 * day},
		{name: "zero", input: "0d", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTTL(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTTL_Invalid(t *testing.T) {
	for _, input := range []string{"", "d", "10", "ten days", "-5d", "5x", "1.5y", "12dy", "999999y"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseTTL(input)
			assert.ErrorIs(t, err, ErrInvalidDuration)
		})
	}
}
