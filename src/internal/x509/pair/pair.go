// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509pair

import (
	"crypto"
	"crypto/x509"
	"errors"
	"fmt"
	"os"

	"github.com/H0llyW00dzZ/devca/src/internal/helper/gc"
	x509certs "github.com/H0llyW00dzZ/devca/src/internal/x509/certs"
)

const (
	// CertExt is appended to a name prefix to form the certificate file name.
	CertExt = ".pem"
	// KeyExt is appended to a name prefix to form the private key file name.
	KeyExt = ".key"
)

const (
	certFileMode os.FileMode = 0o644
	keyFileMode  os.FileMode = 0o600
)

// ErrKind classifies a LoadError.
type ErrKind int

const (
	// KindIO means the file is missing or unreadable.
	KindIO ErrKind = iota
	// KindParse means the file was read but its content is malformed.
	KindParse
)

// String returns the human-readable kind.
func (k ErrKind) String() string {
	switch k {
	case KindIO:
		return "I/O error"
	case KindParse:
		return "parse error"
	default:
		return "unknown error"
	}
}

// LoadError is returned by Reconstruct. Path names the file that failed.
type LoadError struct {
	Path string
	Kind ErrKind
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("error loading file %s: %s: %v", e.Path, e.Kind, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// WriteError is returned by Write. Path names the file that could not be written;
// when it is the key file, the certificate file has already been written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("error writing file %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// CertificateKeyPair binds a certificate to the private key it was issued with.
// For a CA the key is also the one that signed the certificate.
type CertificateKeyPair struct {
	certificate *x509.Certificate
	key         crypto.Signer
	codec       *x509certs.Certificate
}

// New wraps a certificate and its private key.
func New(certificate *x509.Certificate, key crypto.Signer) *CertificateKeyPair {
	return &CertificateKeyPair{
		certificate: certificate,
		key:         key,
		codec:       x509certs.New(),
	}
}

// Certificate returns the certificate.
func (p *CertificateKeyPair) Certificate() *x509.Certificate { return p.certificate }

// PrivateKey returns the private key.
func (p *CertificateKeyPair) PrivateKey() crypto.Signer { return p.key }

// CertificatePEM returns the certificate as a PEM block.
func (p *CertificateKeyPair) CertificatePEM() []byte { return p.codec.EncodePEM(p.certificate) }

// KeyPEM returns the private key as a PKCS#8 PEM block.
func (p *CertificateKeyPair) KeyPEM() ([]byte, error) { return p.codec.EncodeKeyPEM(p.key) }

// CertPath returns the certificate file name for prefix.
func CertPath(prefix string) string { return prefix + CertExt }

// KeyPath returns the private key file name for prefix.
func KeyPath(prefix string) string { return prefix + KeyExt }

// Write stores the certificate in <prefix>.pem and then the key in <prefix>.key.
//
// The two writes are not atomic: if the key write fails, <prefix>.pem is left
// on disk next to whatever <prefix>.key held before.
func (p *CertificateKeyPair) Write(prefix string) error {
	keyPEM, err := p.KeyPEM()
	if err != nil {
		return &WriteError{Path: KeyPath(prefix), Err: err}
	}

	if err := os.WriteFile(CertPath(prefix), p.CertificatePEM(), certFileMode); err != nil {
		return &WriteError{Path: CertPath(prefix), Err: err}
	}
	if err := os.WriteFile(KeyPath(prefix), keyPEM, keyFileMode); err != nil {
		return &WriteError{Path: KeyPath(prefix), Err: err}
	}
	return nil
}

// Reconstruct loads the pair written under prefix so it can sign further certificates.
//
// The key file is read first; if it fails, the certificate file is not read.
// The stored certificate is used as-is: crypto/x509 accepts a parsed parent
// certificate as the issuer, so no self-signed restatement is needed.
func Reconstruct(prefix string) (*CertificateKeyPair, error) {
	codec := x509certs.New()

	keyPath := KeyPath(prefix)
	keyPEM, err := gc.ReadFile(keyPath)
	if err != nil {
		return nil, &LoadError{Path: keyPath, Kind: KindIO, Err: err}
	}
	key, err := codec.DecodeKey(keyPEM)
	if err != nil {
		return nil, &LoadError{Path: keyPath, Kind: KindParse, Err: err}
	}

	certPath := CertPath(prefix)
	certData, err := gc.ReadFile(certPath)
	if err != nil {
		return nil, &LoadError{Path: certPath, Kind: KindIO, Err: err}
	}
	cert, err := codec.Decode(certData)
	if err != nil {
		return nil, &LoadError{Path: certPath, Kind: KindParse, Err: err}
	}

	return &CertificateKeyPair{certificate: cert, key: key, codec: codec}, nil
}

// IsLoadKind reports whether err is a LoadError of the given kind.
func IsLoadKind(err error, kind ErrKind) bool {
	var le *LoadError
	return errors.As(err, &le) && le.Kind == kind
}
