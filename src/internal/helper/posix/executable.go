// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"strings"
)

// ExecutableName returns the base name of os.Args[0] without a trailing
// ".exe", for use in cobra Use strings and usage examples.
//
// Both '/' and '\' are treated as separators regardless of the host OS, so
// a Windows path seen on a Unix system still yields its last component:
//   - "/usr/local/bin/cert-decoder" → "cert-decoder"
//   - "C:\bin\cert-decoder.exe" → "cert-decoder"
//
// fallback is returned when os.Args is empty or its first element has no
// usable name.
func ExecutableName(fallback string) string {
	if len(os.Args) == 0 {
		return fallback
	}
	return baseName(os.Args[0], fallback)
}

func baseName(path, fallback string) string {
	parts := strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	if len(parts) == 0 {
		return fallback
	}

	name := strings.TrimSuffix(parts[len(parts)-1], ".exe")
	if name == "" || name == "." || name == ".." {
		return fallback
	}
	return name
}
