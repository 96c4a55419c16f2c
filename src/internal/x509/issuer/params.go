// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509issuer

import (
	"crypto/x509/pkix"
	"errors"
	"fmt"
	"time"

	x509pair "github.com/H0llyW00dzZ/devca/src/internal/x509/pair"
)

var (
	// ErrCertificate indicates that a certificate could not be built, signed or encoded.
	ErrCertificate = errors.New("x509issuer: certificate error")

	// ErrInvalidSAN indicates a subject alternative name that is not a valid DNS name.
	ErrInvalidSAN = errors.New("x509issuer: invalid subject alternative name")

	// ErrInvalidTTL indicates a validity duration that yields no usable validity window.
	ErrInvalidTTL = errors.New("x509issuer: invalid ttl")
)

// CaParameters describe a self-signed root certificate.
type CaParameters struct {
	TTL          time.Duration
	Organization string
	CommonName   string
}

// CertParameters describe a leaf certificate signed by CA.
type CertParameters struct {
	TTL          time.Duration
	Organization string
	CommonName   string
	// CA signs the leaf. It is usually loaded with x509pair.Reconstruct.
	CA *x509pair.CertificateKeyPair
	// SANs are DNS names, kept in order and not deduplicated.
	SANs []string
}

// subject builds the distinguished name. Empty attributes are omitted.
func subject(organization, commonName string) pkix.Name {
	var name pkix.Name
	if organization != "" {
		name.Organization = []string{organization}
	}
	name.CommonName = commonName
	return name
}

// MinTTL is the shortest accepted validity duration.
const MinTTL = 24 * time.Hour

// Window returns the validity bounds for a certificate issued at now.
// Both bounds are calendar dates in UTC: not-before is the date of now and
// not-after is the date of now+ttl, so anything below a day in ttl is dropped.
// A ttl shorter than MinTTL is rejected regardless of the time of day.
func Window(now time.Time, ttl time.Duration) (notBefore, notAfter time.Time, err error) {
	if ttl < MinTTL {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: must be at least %s, got %s", ErrInvalidTTL, MinTTL, ttl)
	}

	now = now.UTC()
	return toDate(now), toDate(now.Add(ttl)), nil
}

func toDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
