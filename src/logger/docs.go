// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides abstraction and implementation for logging operations.
// It defines the Logger interface and provides CLILogger for human-readable
// command-line output, JSONLogger for one-JSON-object-per-line output, and
// Discard for quiet runs. JSONLogger assembles each line in a pooled buffer.
package logger
