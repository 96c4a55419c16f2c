// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509keys generates the RSA-2048 key pairs used for every certificate devca issues.
// A new key is generated for each issuance and is never reused.
package x509keys
