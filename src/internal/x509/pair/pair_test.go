// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509pair_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	x509keys "github.com/H0llyW00dzZ/devca/src/internal/x509/keys"
	x509pair "github.com/H0llyW00dzZ/devca/src/internal/x509/pair"
)

// newSelfSigned builds a minimal CA pair without going through the issuer package.
func newSelfSigned(t *testing.T) *x509pair.CertificateKeyPair {
	t.Helper()

	key, err := x509keys.Generate()
	require.NoError(t, err)

	template := &x509.Certificate{
		SerialNumber:          big.NewInt(42),
		Subject:               pkix.Name{CommonName: "pair test CA", Organization: []string{"devca"}},
		NotBefore:             time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC),
		NotAfter:              time.Date(2027, time.October, 19, 0, 0, 0, 0, time.UTC),
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageCRLSign,
		BasicConstraintsValid: true,
		IsCA:                  true,
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err)
	cert, err := x509.ParseCertificate(der)
	require.NoError(t, err)

	return x509pair.New(cert, key)
}

func TestWriteAndReconstruct(t *testing.T) {
	original := newSelfSigned(t)
	prefix := filepath.Join(t.TempDir(), "ca_cert")

	require.NoError(t, original.Write(prefix))

	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "Certificate file is PEM",
			testFunc: func(t *testing.T) {
				data, err := os.ReadFile(prefix + ".pem")
				require.NoError(t, err)
				block, _ := pem.Decode(data)
				require.NotNil(t, block)
				assert.Equal(t, "CERTIFICATE", block.Type)
			},
		},
		{
			name: "Key file is PKCS#8 PEM",
			testFunc: func(t *testing.T) {
				data, err := os.ReadFile(prefix + ".key")
				require.NoError(t, err)
				block, _ := pem.Decode(data)
				require.NotNil(t, block)
				assert.Equal(t, "PRIVATE KEY", block.Type)
				_, err = x509.ParsePKCS8PrivateKey(block.Bytes)
				assert.NoError(t, err)
			},
		},
		{
			name: "Key file is private",
			testFunc: func(t *testing.T) {
				if runtime.GOOS == "windows" {
					t.Skip("file modes are not enforced on windows")
				}
				info, err := os.Stat(prefix + ".key")
				require.NoError(t, err)
				assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
			},
		},
		{
			name: "Round trip preserves certificate content",
			testFunc: func(t *testing.T) {
				loaded, err := x509pair.Reconstruct(prefix)
				require.NoError(t, err)

				got, want := loaded.Certificate(), original.Certificate()
				assert.Equal(t, want.Subject.String(), got.Subject.String())
				assert.Equal(t, want.NotBefore, got.NotBefore)
				assert.Equal(t, want.NotAfter, got.NotAfter)
				assert.Equal(t, want.KeyUsage, got.KeyUsage)
				assert.True(t, got.IsCA)
				assert.True(t, want.Equal(got), "stored certificate is imported as-is")
			},
		},
		{
			name: "Round trip preserves key",
			testFunc: func(t *testing.T) {
				loaded, err := x509pair.Reconstruct(prefix)
				require.NoError(t, err)

				key, ok := loaded.PrivateKey().(*rsa.PrivateKey)
				require.True(t, ok, "expected RSA key")
				assert.True(t, key.Equal(original.PrivateKey()))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t)
		})
	}
}

func TestReconstruct_Errors(t *testing.T) {
	valid := newSelfSigned(t)

	tests := []struct {
		name     string
		setup    func(t *testing.T, prefix string)
		wantKind x509pair.ErrKind
		wantExt  string
	}{
		{
			name: "Missing key file",
			setup: func(t *testing.T, prefix string) {
				require.NoError(t, os.WriteFile(prefix+".pem", valid.CertificatePEM(), 0o644))
			},
			wantKind: x509pair.KindIO,
			wantExt:  ".key",
		},
		{
			name:     "Missing both files reports the key file",
			setup:    func(t *testing.T, prefix string) {},
			wantKind: x509pair.KindIO,
			wantExt:  ".key",
		},
		{
			name: "Malformed key file",
			setup: func(t *testing.T, prefix string) {
				require.NoError(t, os.WriteFile(prefix+".key", []byte("not a key"), 0o600))
				require.NoError(t, os.WriteFile(prefix+".pem", valid.CertificatePEM(), 0o644))
			},
			wantKind: x509pair.KindParse,
			wantExt:  ".key",
		},
		{
			name: "Missing certificate file",
			setup: func(t *testing.T, prefix string) {
				keyPEM, err := valid.KeyPEM()
				require.NoError(t, err)
				require.NoError(t, os.WriteFile(prefix+".key", keyPEM, 0o600))
			},
			wantKind: x509pair.KindIO,
			wantExt:  ".pem",
		},
		{
			name: "Malformed certificate file",
			setup: func(t *testing.T, prefix string) {
				keyPEM, err := valid.KeyPEM()
				require.NoError(t, err)
				require.NoError(t, os.WriteFile(prefix+".key", keyPEM, 0o600))
				require.NoError(t, os.WriteFile(prefix+".pem", []byte("-----BEGIN CERTIFICATE-----\nAAAA\n-----END CERTIFICATE-----\n"), 0o644))
			},
			wantKind: x509pair.KindParse,
			wantExt:  ".pem",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefix := filepath.Join(t.TempDir(), "ca_cert")
			tt.setup(t, prefix)

			got, err := x509pair.Reconstruct(prefix)
			assert.Nil(t, got)

			var le *x509pair.LoadError
			require.ErrorAs(t, err, &le)
			assert.Equal(t, tt.wantKind, le.Kind)
			assert.Equal(t, prefix+tt.wantExt, le.Path)
			assert.True(t, x509pair.IsLoadKind(err, tt.wantKind))
			assert.Contains(t, err.Error(), le.Path, "diagnostic must name the file")
		})
	}
}

func TestReconstruct_DERCertificate(t *testing.T) {
	valid := newSelfSigned(t)
	prefix := filepath.Join(t.TempDir(), "ca_cert")

	keyPEM, err := valid.KeyPEM()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(prefix+".key", keyPEM, 0o600))
	require.NoError(t, os.WriteFile(prefix+".pem", valid.Certificate().Raw, 0o644))

	loaded, err := x509pair.Reconstruct(prefix)
	require.NoError(t, err)
	assert.True(t, valid.Certificate().Equal(loaded.Certificate()))
}

func TestWrite_Errors(t *testing.T) {
	valid := newSelfSigned(t)

	t.Run("Missing directory", func(t *testing.T) {
		prefix := filepath.Join(t.TempDir(), "missing", "cert")

		err := valid.Write(prefix)

		var we *x509pair.WriteError
		require.ErrorAs(t, err, &we)
		assert.Equal(t, prefix+".pem", we.Path)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("Key path is a directory", func(t *testing.T) {
		prefix := filepath.Join(t.TempDir(), "cert")
		require.NoError(t, os.Mkdir(prefix+".key", 0o755))

		err := valid.Write(prefix)

		var we *x509pair.WriteError
		require.ErrorAs(t, err, &we)
		assert.Equal(t, prefix+".key", we.Path)

		_, statErr := os.Stat(prefix + ".pem")
		assert.NoError(t, statErr, "certificate file is written before the key file")
	})
}

func TestPaths(t *testing.T) {
	assert.Equal(t, "out/ca_cert.pem", x509pair.CertPath("out/ca_cert"))
	assert.Equal(t, "out/ca_cert.key", x509pair.KeyPath("out/ca_cert"))
	assert.Equal(t, "dev.local.key", x509pair.KeyPath("dev.local"), "existing dots are kept")
}

func TestErrKind_String(t *testing.T) {
	assert.Equal(t, "I/O error", x509pair.KindIO.String())
	assert.Equal(t, "parse error", x509pair.KindParse.String())
	assert.Equal(t, "unknown error", x509pair.ErrKind(99).String())
}
