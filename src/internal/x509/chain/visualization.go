// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509chain

import (
	"crypto/ecdsa"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// keyUsageNames lists the names of the bits set in a key usage, in bit order.
var keyUsageNames = []struct {
	usage x509.KeyUsage
	name  string
}{
	{x509.KeyUsageDigitalSignature, "digitalSignature"},
	{x509.KeyUsageContentCommitment, "contentCommitment"},
	{x509.KeyUsageKeyEncipherment, "keyEncipherment"},
	{x509.KeyUsageDataEncipherment, "dataEncipherment"},
	{x509.KeyUsageKeyAgreement, "keyAgreement"},
	{x509.KeyUsageCertSign, "keyCertSign"},
	{x509.KeyUsageCRLSign, "cRLSign"},
	{x509.KeyUsageEncipherOnly, "encipherOnly"},
	{x509.KeyUsageDecipherOnly, "decipherOnly"},
}

// KeyUsages returns the RFC 5280 names of the key usage bits in ku.
func KeyUsages(ku x509.KeyUsage) []string {
	var names []string
	for _, u := range keyUsageNames {
		if ku&u.usage != 0 {
			names = append(names, u.name)
		}
	}
	return names
}

// RenderASCIITree renders the certificate chain as an ASCII tree diagram.
//
// Each line shows the validity status, common name and role of one certificate,
// leaf first.
//
// Thread Safety: Safe for concurrent use.
func (ch *Chain) RenderASCIITree() string {
	ch.mu.RLock()
	defer ch.mu.RUnlock()

	if len(ch.Certs) == 0 {
		return "No certificates in chain"
	}

	now := ch.now()
	var result strings.Builder
	for i, cert := range ch.Certs {
		connector := "├── "
		if i == len(ch.Certs)-1 {
			connector = "└── "
		}

		statusIcon := "✓"
		if validityStatus(cert, now) != "valid" {
			statusIcon = "✗"
		}

		fmt.Fprintf(&result, "%s[%s] %s (%s)\n", connector, statusIcon, cert.Subject.CommonName, ch.getCertificateRole(i))
	}

	return result.String()
}

// RenderTable renders the certificate chain as a formatted markdown table.
//
// It displays role, subject, issuer, validity dates, key, key usage and DNS
// names for each certificate.
//
// Thread Safety: Safe for concurrent use.
func (ch *Chain) RenderTable() string {
	ch.mu.RLock()
	defer ch.mu.RUnlock()

	if len(ch.Certs) == 0 {
		return "No certificates to display"
	}

	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)

	headers := []string{"#", "Role", "Subject", "Issuer", "Not Before", "Not After", "Key", "Key Usage", "DNS Names", "Status"}
	table.Header(headers)

	now := ch.now()
	var rows [][]string
	for i, cert := range ch.Certs {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			ch.getCertificateRole(i),
			cert.Subject.String(),
			cert.Issuer.String(),
			cert.NotBefore.UTC().Format(time.DateOnly),
			cert.NotAfter.UTC().Format(time.DateOnly),
			describeKey(cert),
			strings.Join(KeyUsages(cert.KeyUsage), ", "),
			strings.Join(cert.DNSNames, ", "),
			validityStatus(cert, now),
		})
	}

	table.Bulk(rows)
	table.Render()
	return buf.String()
}

// CertificateVizData is the JSON description of one certificate.
type CertificateVizData struct {
	Index              int       `json:"index"`
	Role               string    `json:"role"`
	Subject            string    `json:"subject"`
	Issuer             string    `json:"issuer"`
	SerialNumber       string    `json:"serialNumber"`
	SignatureAlgorithm string    `json:"signatureAlgorithm"`
	PublicKeyAlgorithm string    `json:"publicKeyAlgorithm"`
	KeySize            int       `json:"keySize"`
	NotBefore          time.Time `json:"notBefore"`
	NotAfter           time.Time `json:"notAfter"`
	IsCA               bool      `json:"isCA"`
	KeyUsage           []string  `json:"keyUsage"`
	DNSNames           []string  `json:"dnsNames,omitempty"`
	Status             string    `json:"status"`
}

// RelationshipData links a certificate to the one that signed it.
type RelationshipData struct {
	FromIndex int    `json:"fromIndex"`
	ToIndex   int    `json:"toIndex"`
	Type      string `json:"type"`
}

// VisualizationData is the JSON document produced by ToVisualizationJSON.
type VisualizationData struct {
	Timestamp     string               `json:"timestamp"`
	ChainLength   int                  `json:"chainLength"`
	Certificates  []CertificateVizData `json:"certificates"`
	Relationships []RelationshipData   `json:"relationships"`
}

// ToVisualizationJSON converts the certificate chain to structured JSON for external tools.
//
// Thread Safety: Safe for concurrent use.
func (ch *Chain) ToVisualizationJSON() ([]byte, error) {
	ch.mu.RLock()
	defer ch.mu.RUnlock()

	now := ch.now()
	data := VisualizationData{
		Timestamp:     now.UTC().Format(time.RFC3339),
		ChainLength:   len(ch.Certs),
		Certificates:  make([]CertificateVizData, len(ch.Certs)),
		Relationships: make([]RelationshipData, 0, len(ch.Certs)),
	}

	for i, cert := range ch.Certs {
		algo, size := keyInfo(cert)
		data.Certificates[i] = CertificateVizData{
			Index:              i,
			Role:               ch.getCertificateRole(i),
			Subject:            cert.Subject.String(),
			Issuer:             cert.Issuer.String(),
			SerialNumber:       cert.SerialNumber.String(),
			SignatureAlgorithm: cert.SignatureAlgorithm.String(),
			PublicKeyAlgorithm: algo,
			KeySize:            size,
			NotBefore:          cert.NotBefore.UTC(),
			NotAfter:           cert.NotAfter.UTC(),
			IsCA:               cert.IsCA,
			KeyUsage:           KeyUsages(cert.KeyUsage),
			DNSNames:           cert.DNSNames,
			Status:             validityStatus(cert, now),
		}
	}

	for i, cert := range ch.Certs {
		switch j := ch.issuerIndex(cert); {
		case j == i:
			data.Relationships = append(data.Relationships, RelationshipData{FromIndex: i, ToIndex: i, Type: "self_signed"})
		case j >= 0:
			data.Relationships = append(data.Relationships, RelationshipData{FromIndex: i, ToIndex: j, Type: "signed_by"})
		}
	}

	return json.MarshalIndent(data, "", "  ")
}

// getCertificateRole determines the role of a certificate in the chain.
func (ch *Chain) getCertificateRole(index int) string {
	total := len(ch.Certs)
	cert := ch.Certs[index]
	switch {
	case total == 1 && ch.IsRootNode(cert):
		return "Root CA Certificate"
	case total == 1:
		return "End-Entity Certificate"
	case index == 0:
		return "End-Entity (Leaf) Certificate"
	case index == total-1:
		return "Root CA Certificate"
	default:
		return "Intermediate CA Certificate"
	}
}

func keyInfo(cert *x509.Certificate) (string, int) {
	switch pubKey := cert.PublicKey.(type) {
	case *rsa.PublicKey:
		return "RSA", pubKey.Size() * 8
	case *ecdsa.PublicKey:
		return "ECDSA", pubKey.Curve.Params().BitSize
	default:
		return cert.PublicKeyAlgorithm.String(), 0
	}
}

func describeKey(cert *x509.Certificate) string {
	algo, size := keyInfo(cert)
	if size == 0 {
		return algo
	}
	return fmt.Sprintf("%d-bit %s", size, algo)
}

func validityStatus(cert *x509.Certificate, now time.Time) string {
	switch {
	case now.Before(cert.NotBefore):
		return "not yet valid"
	case now.After(cert.NotAfter):
		return "expired"
	default:
		return "valid"
	}
}
