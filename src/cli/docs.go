// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli implements the cert-decoder command line with [cobra].
// It reads PEM certificates from files or standard input, decodes them with
// the certinfo package, and prints text, JSON, YAML, or markdown table reports.
//
// [cobra]: https://github.com/spf13/cobra
package cli
