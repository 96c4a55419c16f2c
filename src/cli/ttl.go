// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xhit/go-str2duration/v2"
)

// ErrInvalidDuration indicates a --ttl value that could not be parsed.
var ErrInvalidDuration = errors.New("invalid duration")

const (
	day  = 24 * time.Hour
	year = 365 * day
)

// ParseTTL parses a validity duration such as "365d", "2w", "1y12h" or "36h".
//
// Everything after an optional leading whole number of years ("y", 365 days)
// is handed to str2duration, which adds "d" and "w" to the Go duration units.
func ParseTTL(s string) (time.Duration, error) {
	in := strings.TrimSpace(s)
	if in == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidDuration)
	}

	var years time.Duration
	if before, after, ok := strings.Cut(in, "y"); ok {
		n, err := strconv.ParseUint(before, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: years must be a leading whole number", ErrInvalidDuration, s)
		}
		if n > uint64(math.MaxInt64/int64(year)) {
			return 0, fmt.Errorf("%w: %q: out of range", ErrInvalidDuration, s)
		}
		years, in = time.Duration(n)*year, after
	}

	var rest time.Duration
	if in != "" {
		d, err := str2duration.ParseDuration(in)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %w", ErrInvalidDuration, s, err)
		}
		rest = d
	}

	if rest < 0 {
		return 0, fmt.Errorf("%w: %q: must not be negative", ErrInvalidDuration, s)
	}
	if years > math.MaxInt64-rest {
		return 0, fmt.Errorf("%w: %q: out of range", ErrInvalidDuration, s)
	}
	return years + rest, nil
}
