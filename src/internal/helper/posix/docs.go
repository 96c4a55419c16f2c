// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides [POSIX]-compliant helper functions for the devca command line.
//
// It answers two questions about the host process:
//   - GetExecutableName: the executable name without extension, for usage strings
//   - Hostname: the local host name, used as the default organization, common
//     name and subject alternative name of issued certificates
//
// Usage in a cobra command definition:
//
//	rootCmd := &cobra.Command{
//	    Use:   posix.GetExecutableName(),
//	    Short: "Development certificate issuer",
//	}
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix
