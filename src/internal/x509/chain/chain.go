// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509chain

import (
	"crypto/x509"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrEmptyChain is returned when a chain holds no certificates.
var ErrEmptyChain = errors.New("x509chain: no certificates in chain")

// Chain manages an ordered list of [X.509] certificates, leaf first.
//
// [X.509]: https://grokipedia.com/page/X.509
type Chain struct {
	mu            sync.RWMutex
	Certs         []*x509.Certificate
	Roots         *x509.CertPool
	Intermediates *x509.CertPool
	// CurrentTime is the time used for validity checks. Zero means now.
	CurrentTime time.Time
}

// New creates a new Chain from certs, ordered leaf first and root last.
func New(certs ...*x509.Certificate) *Chain {
	return &Chain{
		Certs:         certs,
		Roots:         x509.NewCertPool(),
		Intermediates: x509.NewCertPool(),
	}
}

// IsSelfSigned checks if a certificate is self-signed.
//
// It verifies the certificate's signature against itself.
func (ch *Chain) IsSelfSigned(cert *x509.Certificate) bool {
	return cert.CheckSignatureFrom(cert) == nil
}

// IsRootNode determines if a certificate is a root node in the chain.
func (ch *Chain) IsRootNode(cert *x509.Certificate) bool {
	return cert.IsCA && ch.IsSelfSigned(cert)
}

// VerifyChain checks that the leaf is validly signed by the last certificate
// in the chain and that every certificate is inside its validity window.
//
// The last certificate is the trust anchor; anything between leaf and root is
// treated as an intermediate. Extended key usage is not enforced because devca
// leaves carry none.
//
// Thread Safety: Safe for concurrent use.
func (ch *Chain) VerifyChain() error {
	ch.mu.RLock()
	defer ch.mu.RUnlock()

	if len(ch.Certs) == 0 {
		return ErrEmptyChain
	}

	for i, cert := range ch.Certs {
		if i == len(ch.Certs)-1 {
			ch.Roots.AddCert(cert)
		} else if i > 0 {
			ch.Intermediates.AddCert(cert)
		}
	}

	leaf := ch.Certs[0]
	opts := x509.VerifyOptions{
		Roots:         ch.Roots,
		Intermediates: ch.Intermediates,
		CurrentTime:   ch.CurrentTime,
		KeyUsages:     []x509.ExtKeyUsage{x509.ExtKeyUsageAny},
	}

	if _, err := leaf.Verify(opts); err != nil {
		// Keep the x509 error for its diagnostic detail (expiry, unknown authority).
		return fmt.Errorf("verify %q: %w", leaf.Subject.CommonName, err)
	}

	return nil
}

// Issuer finds the certificate in the chain that signed cert, or nil.
//
// Thread Safety: Safe for concurrent use.
func (ch *Chain) Issuer(cert *x509.Certificate) *x509.Certificate {
	ch.mu.RLock()
	defer ch.mu.RUnlock()

	if i := ch.issuerIndex(cert); i >= 0 {
		return ch.Certs[i]
	}
	return nil
}

// issuerIndex returns the position of the certificate that signed cert, or -1.
// A certificate only counts as its own issuer when it is self-signed.
// The caller must hold ch.mu.
func (ch *Chain) issuerIndex(cert *x509.Certificate) int {
	for i := len(ch.Certs) - 1; i >= 0; i-- {
		potentialIssuer := ch.Certs[i]
		if potentialIssuer == cert && !ch.IsSelfSigned(cert) {
			continue
		}
		if err := cert.CheckSignatureFrom(potentialIssuer); err == nil {
			return i
		}
	}
	return -1
}

// now returns the time validity is judged against.
func (ch *Chain) now() time.Time {
	if ch.CurrentTime.IsZero() {
		return time.Now()
	}
	return ch.CurrentTime
}
