// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"crypto/rsa"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	x509issuer "github.com/H0llyW00dzZ/devca/src/internal/x509/issuer"
	x509keys "github.com/H0llyW00dzZ/devca/src/internal/x509/keys"
	x509pair "github.com/H0llyW00dzZ/devca/src/internal/x509/pair"
	"github.com/H0llyW00dzZ/devca/src/logger"
)

type failingKeys struct{}

func (failingKeys) Generate() (*rsa.PrivateKey, error) {
	return nil, fmt.Errorf("%w: no entropy", x509keys.ErrKeyGeneration)
}

func withIssuer(t *testing.T, i *x509issuer.Issuer) {
	t.Helper()
	orig := issuer
	t.Cleanup(func() { issuer = orig })
	issuer = i
}

func execute(args ...string) error {
	cmd := NewRootCmd("test", logger.Discard{}, "host")
	cmd.SetArgs(args)
	return cmd.ExecuteContext(context.Background())
}

func TestRunCA_KeyGenerationFailure(t *testing.T) {
	withIssuer(t, x509issuer.New(x509issuer.WithKeyGenerator(failingKeys{})))
	prefix := filepath.Join(t.TempDir(), "ca")

	err := execute("ca", "--name", prefix)
	assert.ErrorIs(t, err, x509keys.ErrKeyGeneration)
	assert.Equal(t, ExitSoftware, ExitCode(err))
	assert.NoFileExists(t, x509pair.CertPath(prefix))
	assert.NoFileExists(t, x509pair.KeyPath(prefix))
}

func TestRunCA_ValidityDates(t *testing.T) {
	now := time.Date(2026, time.January, 15, 18, 30, 0, 0, time.UTC)
	withIssuer(t, x509issuer.New(x509issuer.WithClock(func() time.Time { return now })))
	prefix := filepath.Join(t.TempDir(), "ca")

	require.NoError(t, execute("ca", "--name", prefix, "--ttl", "1y12h"))

	ca, err := x509pair.Reconstruct(prefix)
	require.NoError(t, err)
	cert := ca.Certificate()
	assert.Equal(t, time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC), cert.NotBefore)
	// 18:30 plus 365 days and 12 hours rolls over to the next date.
	assert.Equal(t, time.Date(2027, time.January, 16, 0, 0, 0, 0, time.UTC), cert.NotAfter)
}
