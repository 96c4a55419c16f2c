// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509issuer issues the two kinds of certificate devca knows about:
// a self-signed root CA and leaf certificates signed by that CA.
//
// Both kinds get a validity window expressed in whole UTC days, a random
// 128-bit serial number and a fresh RSA-2048 key. Issuance completes in memory;
// persisting the result is left to [x509pair.CertificateKeyPair.Write].
//
//	ca, err := x509issuer.GenerateCA(x509issuer.CaParameters{
//	    TTL:          365 * 24 * time.Hour,
//	    Organization: "Example Dev",
//	    CommonName:   "Example Dev CA",
//	})
//	leaf, err := x509issuer.GenerateCert(x509issuer.CertParameters{
//	    TTL:        90 * 24 * time.Hour,
//	    CommonName: "app.test",
//	    CA:         ca,
//	    SANs:       []string{"app.test", "localhost"},
//	})
package x509issuer
