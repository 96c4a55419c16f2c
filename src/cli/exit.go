// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"

	x509issuer "github.com/H0llyW00dzZ/devca/src/internal/x509/issuer"
	x509keys "github.com/H0llyW00dzZ/devca/src/internal/x509/keys"
	x509pair "github.com/H0llyW00dzZ/devca/src/internal/x509/pair"
)

// Process exit codes, following the BSD sysexits convention.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitUsage       = 64
	ExitDataErr     = 65
	ExitSoftware    = 70
	ExitIOErr       = 74
	ExitConfig      = 78
	ExitInterrupted = 130
)

// ErrNotVerified is returned by the verify command when the certificate does
// not chain to the given CA.
var ErrNotVerified = errors.New("certificate verification failed")

// usageError marks bad flags or arguments.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// configError marks an unreadable or malformed --config file.
type configError struct{ err error }

func (e *configError) Error() string { return e.err.Error() }
func (e *configError) Unwrap() error { return e.err }

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var (
		usage *usageError
		cfg   *configError
		load  *x509pair.LoadError
		write *x509pair.WriteError
	)
	switch {
	case errors.As(err, &usage):
		return ExitUsage
	case errors.As(err, &cfg):
		return ExitConfig
	case errors.As(err, &load):
		if load.Kind == x509pair.KindParse {
			return ExitDataErr
		}
		return ExitIOErr
	case errors.As(err, &write):
		return ExitIOErr
	case errors.Is(err, ErrInvalidDuration),
		errors.Is(err, x509issuer.ErrInvalidSAN),
		errors.Is(err, x509issuer.ErrInvalidTTL):
		return ExitDataErr
	case errors.Is(err, x509keys.ErrKeyGeneration),
		errors.Is(err, x509issuer.ErrCertificate):
		return ExitSoftware
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	default:
		return ExitFailure
	}
}
