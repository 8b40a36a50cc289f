// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// cert-decoder is a command-line tool for decoding X.509 certificates and
// reporting their identity and validity.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/zhiweicoding/devtoolbox/cmd/cert-decoder@latest
//
// # Usage
//
//	cert-decoder [FLAGS] [FILE...]
//
// Standard input is read when no FILE is given or FILE is "-". Each input may
// be PEM text or a bare base64 certificate body; only its first certificate
// is decoded.
//
// # Flags
//
//	-o, --output     Destination file (default: stdout)
//	-j, --json       Emit a JSON report
//	-y, --yaml       Emit a YAML report
//	-t, --table      Emit a markdown table
//	-w, --warn-days  Days before expiry reported as "Expiring soon" (default 30)
//	-c, --config     JSON or YAML config file (default $CERT_DECODER_CONFIG_FILE)
//
// # Examples
//
// Print the text report:
//
//	cert-decoder cert.pem
//
// Compare several certificates:
//
//	cert-decoder --table a.pem b.pem c.pem
//
// Decode from a pipe:
//
//	openssl s_client -connect example.com:443 </dev/null | cert-decoder --json
//
// Exit status is 0 on success, 1 when any input failed to decode, and 130
// when interrupted.
package main
