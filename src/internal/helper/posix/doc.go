// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides [POSIX]-style helpers that behave the same on every platform.
//
// Key functions:
//   - ExecutableName: Returns the executable name without extension for CLI usage
//
// # Usage
//
//	rootCmd := &cobra.Command{
//	    Use:   posix.ExecutableName("cert-decoder") + " [FILE...]",
//	    Short: "Decode X.509 certificates",
//	}
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix
