// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509issuer

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"fmt"
	"math/big"
	"time"

	"github.com/cloudflare/cfssl/helpers"

	x509keys "github.com/H0llyW00dzZ/devca/src/internal/x509/keys"
	x509pair "github.com/H0llyW00dzZ/devca/src/internal/x509/pair"
)

// KeyGenerator produces the key pair of a new certificate.
type KeyGenerator interface {
	Generate() (*rsa.PrivateKey, error)
}

// serialNumberLimit bounds random serial numbers to 128 bits.
var serialNumberLimit = new(big.Int).Lsh(big.NewInt(1), 128)

// internal variables for mocking in tests
var (
	createCertificate = x509.CreateCertificate
	parseCertificate  = x509.ParseCertificate
)

// Issuer builds CA and leaf certificates.
type Issuer struct {
	keys KeyGenerator
	now  func() time.Time
}

// Option configures an Issuer.
type Option func(*Issuer)

// WithKeyGenerator replaces the key generator. The default is [x509keys.Default].
func WithKeyGenerator(g KeyGenerator) Option {
	return func(i *Issuer) { i.keys = g }
}

// WithClock replaces the clock used to compute validity windows.
func WithClock(now func() time.Time) Option {
	return func(i *Issuer) { i.now = now }
}

// New returns an Issuer with the given options applied.
func New(opts ...Option) *Issuer {
	i := &Issuer{
		keys: x509keys.Default,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Default is the Issuer used by the package-level functions.
var Default = New()

// GenerateCA issues a self-signed root certificate using the Default issuer.
func GenerateCA(params CaParameters) (*x509pair.CertificateKeyPair, error) {
	return Default.GenerateCA(params)
}

// GenerateCert issues a leaf certificate using the Default issuer.
func GenerateCert(params CertParameters) (*x509pair.CertificateKeyPair, error) {
	return Default.GenerateCert(params)
}

// GenerateCA issues a self-signed root certificate.
//
// The certificate is a CA without a path length constraint and may only sign
// certificates and CRLs. Subject and issuer are identical and the certificate
// is signed with its own freshly generated key.
func (i *Issuer) GenerateCA(params CaParameters) (*x509pair.CertificateKeyPair, error) {
	notBefore, notAfter, err := Window(i.now(), params.TTL)
	if err != nil {
		return nil, err
	}

	key, err := i.keys.Generate()
	if err != nil {
		return nil, err
	}

	serial, err := serialNumber()
	if err != nil {
		return nil, err
	}

	template := &x509.Certificate{
		SerialNumber:          serial,
		Subject:               subject(params.Organization, params.CommonName),
		NotBefore:             notBefore,
		NotAfter:              notAfter,
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageCRLSign,
		BasicConstraintsValid: true,
		IsCA:                  true,
		MaxPathLen:            -1,
		SignatureAlgorithm:    helpers.SignerAlgo(key),
	}

	cert, err := i.sign(template, template, &key.PublicKey, key)
	if err != nil {
		return nil, err
	}

	return x509pair.New(cert, key), nil
}

// GenerateCert issues a leaf certificate signed by params.CA.
//
// The leaf is not a CA, carries key encipherment, digital signature and
// content commitment key usages, and lists params.SANs as DNS names in the
// given order. Its subject is independent of the CA's; its issuer is the CA's
// subject.
func (i *Issuer) GenerateCert(params CertParameters) (*x509pair.CertificateKeyPair, error) {
	ca := params.CA
	if ca == nil || ca.Certificate() == nil || ca.PrivateKey() == nil {
		return nil, fmt.Errorf("%w: a signing CA is required", ErrCertificate)
	}
	if err := checkSigner(ca); err != nil {
		return nil, err
	}

	notBefore, notAfter, err := Window(i.now(), params.TTL)
	if err != nil {
		return nil, err
	}

	dnsNames, err := DNSNames(params.SANs)
	if err != nil {
		return nil, err
	}

	key, err := i.keys.Generate()
	if err != nil {
		return nil, err
	}

	serial, err := serialNumber()
	if err != nil {
		return nil, err
	}

	template := &x509.Certificate{
		SerialNumber:          serial,
		Subject:               subject(params.Organization, params.CommonName),
		NotBefore:             notBefore,
		NotAfter:              notAfter,
		KeyUsage:              x509.KeyUsageKeyEncipherment | x509.KeyUsageDigitalSignature | x509.KeyUsageContentCommitment,
		BasicConstraintsValid: true,
		IsCA:                  false,
		DNSNames:              dnsNames,
		SignatureAlgorithm:    helpers.SignerAlgo(ca.PrivateKey()),
	}

	cert, err := i.sign(template, ca.Certificate(), &key.PublicKey, ca.PrivateKey())
	if err != nil {
		return nil, err
	}

	return x509pair.New(cert, key), nil
}

// checkSigner rejects a CA pair that cannot sign leaves.
func checkSigner(ca *x509pair.CertificateKeyPair) error {
	cert := ca.Certificate()
	if !cert.IsCA {
		return fmt.Errorf("%w: %q is not a CA certificate", ErrCertificate, cert.Subject.CommonName)
	}
	if cert.KeyUsage != 0 && cert.KeyUsage&x509.KeyUsageCertSign == 0 {
		return fmt.Errorf("%w: %q may not sign certificates", ErrCertificate, cert.Subject.CommonName)
	}

	pub, ok := ca.PrivateKey().Public().(interface{ Equal(crypto.PublicKey) bool })
	if !ok || !pub.Equal(cert.PublicKey) {
		return fmt.Errorf("%w: private key does not match CA certificate %q", ErrCertificate, cert.Subject.CommonName)
	}
	return nil
}

func serialNumber() (*big.Int, error) {
	serial, err := rand.Int(rand.Reader, serialNumberLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: generate serial number: %w", ErrCertificate, err)
	}
	return serial, nil
}

func (i *Issuer) sign(template, parent *x509.Certificate, pub crypto.PublicKey, signer crypto.Signer) (*x509.Certificate, error) {
	der, err := createCertificate(rand.Reader, template, parent, pub, signer)
	if err != nil {
		return nil, fmt.Errorf("%w: sign certificate: %w", ErrCertificate, err)
	}

	cert, err := parseCertificate(der)
	if err != nil {
		return nil, fmt.Errorf("%w: parse signed certificate: %w", ErrCertificate, err)
	}
	return cert, nil
}
