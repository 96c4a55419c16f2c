// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs_test

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	x509certs "github.com/H0llyW00dzZ/devca/src/internal/x509/certs"
)

func newTestCert(t *testing.T, cn string) (*x509.Certificate, *ecdsa.PrivateKey) {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	template := &x509.Certificate{
		SerialNumber: big.NewInt(7),
		Subject:      pkix.Name{CommonName: cn},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err)
	cert, err := x509.ParseCertificate(der)
	require.NoError(t, err)
	return cert, key
}

func TestCertificateOperations(t *testing.T) {
	cert, _ := newTestCert(t, "codec.test")
	other, _ := newTestCert(t, "other.test")
	decoder := x509certs.New()

	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "Encode and decode PEM",
			testFunc: func(t *testing.T) {
				encoded := decoder.EncodePEM(cert)
				assert.True(t, decoder.IsPEM(encoded))

				decoded, err := decoder.Decode(encoded)
				require.NoError(t, err)
				assert.True(t, cert.Equal(decoded), "original and decoded certificates are not equal")
			},
		},
		{
			name: "Decode DER",
			testFunc: func(t *testing.T) {
				decoded, err := decoder.Decode(cert.Raw)
				require.NoError(t, err)
				assert.Equal(t, "codec.test", decoded.Subject.CommonName)
			},
		},
		{
			name: "Decode multiple PEM",
			testFunc: func(t *testing.T) {
				bundle := append(decoder.EncodePEM(cert), decoder.EncodePEM(other)...)

				certs, err := decoder.DecodeMultiple(bundle)
				require.NoError(t, err)
				require.Len(t, certs, 2)
				assert.Equal(t, "codec.test", certs[0].Subject.CommonName)
				assert.Equal(t, "other.test", certs[1].Subject.CommonName)
			},
		},
		{
			name: "Decode multiple DER",
			testFunc: func(t *testing.T) {
				certs, err := decoder.DecodeMultiple(append(append([]byte(nil), cert.Raw...), other.Raw...))
				require.NoError(t, err)
				assert.Len(t, certs, 2)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t)
		})
	}
}

const (
	invalidPEM = `
-----BEGIN INVALID-----
MIIEmTCCBD+gAwIBAgIRANFjRCmF+Y2bUYHbhxwkEpowCgYIKoZIzj0EAwIwgY8x
-----END INVALID-----
`

	invalidCERT = `
-----BEGIN CERTIFICATE-----
MIIBIjANBgkqhkiG9w0BAQEFAAOCAQ8AMIIBCgKCAQEAz6e5VV5F8rF2sFJ0Q4vA
-----END CERTIFICATE-----
`
)

func TestDecodeCertificate_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected error
	}{
		{name: "Invalid PEM Block", input: []byte(invalidPEM), expected: x509certs.ErrInvalidBlockType},
		{name: "Invalid Certificate", input: []byte(invalidCERT), expected: x509certs.ErrParseCertificate},
		{name: "Garbage DER", input: []byte{0x01, 0x02, 0x03}, expected: x509certs.ErrParsePKCS7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := x509certs.New().Decode(tt.input)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestDecodeMultiple_WrongBlockType(t *testing.T) {
	_, err := x509certs.New().DecodeMultiple([]byte(invalidPEM))
	assert.ErrorIs(t, err, x509certs.ErrInvalidBlockType)
}

func TestKeyOperations(t *testing.T) {
	rsaKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	_, ecKey := newTestCert(t, "ec.test")
	codec := x509certs.New()

	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "PKCS#8 round trip",
			testFunc: func(t *testing.T) {
				encoded, err := codec.EncodeKeyPEM(rsaKey)
				require.NoError(t, err)

				block, _ := pem.Decode(encoded)
				require.NotNil(t, block)
				assert.Equal(t, "PRIVATE KEY", block.Type)

				decoded, err := codec.DecodeKey(encoded)
				require.NoError(t, err)
				assert.True(t, rsaKey.Equal(decoded))
			},
		},
		{
			name: "PKCS#1 key accepted",
			testFunc: func(t *testing.T) {
				encoded := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(rsaKey)})

				decoded, err := codec.DecodeKey(encoded)
				require.NoError(t, err)
				assert.True(t, rsaKey.Equal(decoded))
			},
		},
		{
			name: "EC key accepted",
			testFunc: func(t *testing.T) {
				encoded, err := codec.EncodeKeyPEM(ecKey)
				require.NoError(t, err)

				decoded, err := codec.DecodeKey(encoded)
				require.NoError(t, err)
				assert.True(t, ecKey.Equal(decoded))
			},
		},
		{
			name: "Not PEM",
			testFunc: func(t *testing.T) {
				_, err := codec.DecodeKey([]byte("not a key"))
				assert.ErrorIs(t, err, x509certs.ErrParsePrivateKey)
				assert.ErrorIs(t, err, x509certs.ErrInvalidPEMBlock)
			},
		},
		{
			name: "Corrupt key body",
			testFunc: func(t *testing.T) {
				encoded := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: []byte{0x30, 0x00}})
				_, err := codec.DecodeKey(encoded)
				assert.ErrorIs(t, err, x509certs.ErrParsePrivateKey)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t)
		})
	}
}
