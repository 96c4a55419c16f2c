// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	x509issuer "github.com/H0llyW00dzZ/devca/src/internal/x509/issuer"
	x509keys "github.com/H0llyW00dzZ/devca/src/internal/x509/keys"
	x509pair "github.com/H0llyW00dzZ/devca/src/internal/x509/pair"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitOK},
		{name: "usage", err: &usageError{errors.New("bad flag")}, want: ExitUsage},
		{name: "config", err: &configError{errors.New("bad file")}, want: ExitConfig},
		{name: "load io", err: &x509pair.LoadError{Path: "ca.key", Kind: x509pair.KindIO, Err: os.ErrNotExist}, want: ExitIOErr},
		{name: "load parse", err: &x509pair.LoadError{Path: "ca.key", Kind: x509pair.KindParse, Err: errors.New("junk")}, want: ExitDataErr},
		{name: "write", err: &x509pair.WriteError{Path: "cert.pem", Err: os.ErrPermission}, want: ExitIOErr},
		{name: "invalid san", err: fmt.Errorf("wrapped: %w", x509issuer.ErrInvalidSAN), want: ExitDataErr},
		{name: "invalid ttl", err: x509issuer.ErrInvalidTTL, want: ExitDataErr},
		{name: "invalid duration", err: ErrInvalidDuration, want: ExitDataErr},
		{name: "key generation", err: fmt.Errorf("generating CA certificate: %w", x509keys.ErrKeyGeneration), want: ExitSoftware},
		{name: "certificate", err: x509issuer.ErrCertificate, want: ExitSoftware},
		{name: "cancelled", err: context.Canceled, want: ExitInterrupted},
		{name: "not verified", err: ErrNotVerified, want: ExitFailure},
		{name: "other", err: errors.New("boom"), want: ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}
