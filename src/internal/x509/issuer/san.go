// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509issuer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/idna"
)

const (
	maxDNSNameLength  = 253
	maxDNSLabelLength = 63
)

// DNSName validates name as a DNS subject alternative name and returns the
// form stored in the certificate. ASCII names are returned unchanged;
// internationalized names are returned as their A-label (punycode) form.
// A single leading "*." wildcard label is allowed.
func DNSName(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: empty name", ErrInvalidSAN)
	}

	host, wildcard := strings.CutPrefix(name, "*.")

	ascii, err := idna.Lookup.ToASCII(host)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrInvalidSAN, name, err)
	}
	if len(ascii) > maxDNSNameLength {
		return "", fmt.Errorf("%w: %q exceeds %d characters", ErrInvalidSAN, name, maxDNSNameLength)
	}
	for label := range strings.SplitSeq(ascii, ".") {
		if label == "" {
			return "", fmt.Errorf("%w: %q has an empty label", ErrInvalidSAN, name)
		}
		if len(label) > maxDNSLabelLength {
			return "", fmt.Errorf("%w: %q has a label longer than %d characters", ErrInvalidSAN, name, maxDNSLabelLength)
		}
	}

	if isASCII(name) {
		return name, nil
	}
	if wildcard {
		return "*." + ascii, nil
	}
	return ascii, nil
}

// DNSNames validates every entry of names in order. The first invalid entry
// fails the whole list; duplicates are kept.
func DNSNames(names []string) ([]string, error) {
	if len(names) == 0 {
		return nil, nil
	}

	out := make([]string, 0, len(names))
	for _, name := range names {
		dns, err := DNSName(name)
		if err != nil {
			return nil, err
		}
		out = append(out, dns)
	}
	return out, nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
