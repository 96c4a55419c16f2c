// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"path/filepath"
	"strings"
)

// fallbackName is used when os.Args carries no program name.
const fallbackName = "devca"

// fallbackHostname is used when the operating system cannot report a host name.
const fallbackHostname = "localhost"

// hostname is swapped in tests.
var hostname = os.Hostname

// GetExecutableName returns the executable name without extension, cross-platform compatible.
// It extracts the base name from os.Args[0] and removes the .exe suffix so usage
// strings read the same on every operating system:
//   - Linux/macOS: "devca" from "/usr/local/bin/devca"
//   - Windows: "devca" from "C:\bin\devca.exe"
func GetExecutableName() string {
	if len(os.Args) == 0 || os.Args[0] == "" {
		return fallbackName
	}

	name := filepath.Base(os.Args[0])

	// A Windows path seen on a Unix host keeps its backslashes after filepath.Base.
	if strings.Contains(name, "\\") || (strings.Contains(name, "/") && !strings.Contains(name, string(filepath.Separator))) {
		parts := strings.FieldsFunc(name, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			name = parts[len(parts)-1]
		}
	}

	return strings.TrimSuffix(name, ".exe")
}

// Hostname returns the local host name, or "localhost" when it cannot be
// determined or is empty.
func Hostname() string {
	h, err := hostname()
	if err != nil || strings.TrimSpace(h) == "" {
		return fallbackHostname
	}
	return h
}
