// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for devca.
// It implements a Cobra-based CLI with four commands: ca creates a self-signed
// root certificate, cert issues leaf certificates signed by a stored root,
// inspect summarises certificate files as a table, ASCII tree or JSON, and
// verify checks a leaf against a root.
//
// Flag defaults may be supplied by a JSON or YAML file given with --config;
// flags on the command line always win. Errors are returned to the caller,
// which maps them to sysexits-style codes with [ExitCode].
package cli
