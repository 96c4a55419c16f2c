// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509pair holds a certificate together with its private key and
// persists it as two files sharing a name prefix:
//
//	<prefix>.pem  PEM-encoded X.509 certificate
//	<prefix>.key  PEM-encoded PKCS#8 private key
//
// The key file always uses the .key extension. A pair written by Write can be
// loaded back with Reconstruct and used as the signing CA for leaf certificates.
package x509pair
