// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509chain verifies and describes the two-tier [X.509] chains devca produces:
// a leaf certificate followed by the root CA that signed it.
// It provides capabilities to:
//   - Verify that a leaf was signed by a given CA and is inside its validity window.
//   - Render a chain as a markdown table, an ASCII tree or structured JSON.
//
// [X.509]: https://grokipedia.com/page/X.509
package x509chain
