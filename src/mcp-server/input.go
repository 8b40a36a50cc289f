// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"bytes"
	"encoding/base64"
	"errors"
	"os"
	"strings"

	x509certs "github.com/zhiweicoding/devtoolbox/src/internal/x509/certs"
)

// errEmptyCertificate is returned for a blank certificate argument.
var errEmptyCertificate = errors.New("empty certificate input")

// readCertificateInput resolves a certificate argument into bytes the
// decoder accepts.
//
// The argument is tried, in order, as a file path, as PEM text, and as base64
// of PEM text. Anything else is passed through unchanged so that a bare
// base64 certificate body still decodes.
func readCertificateInput(input string) ([]byte, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, errEmptyCertificate
	}

	if info, err := os.Stat(input); err == nil && info.Mode().IsRegular() {
		return os.ReadFile(input)
	}

	certManager := x509certs.New()
	raw := []byte(input)
	if certManager.IsPEM(raw) {
		return raw, nil
	}

	if decoded, err := base64.StdEncoding.DecodeString(input); err == nil && certManager.IsPEM(bytes.TrimSpace(decoded)) {
		return decoded, nil
	}

	return raw, nil
}

// splitCertificateInputs splits a comma-separated list, dropping blank entries.
func splitCertificateInputs(list string) []string {
	parts := strings.Split(list, ",")
	inputs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			inputs = append(inputs, p)
		}
	}
	return inputs
}
