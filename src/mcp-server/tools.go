// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// Tool roles referenced by the instructions template.
const (
	roleDecoder       = "decoder"
	roleBatchDecoder  = "batchDecoder"
	roleExpiryChecker = "expiryChecker"
)

const formatDescription = "Output format: 'text', 'json', 'yaml', or 'table' (default: configured format, text)"

const certificateDescription = "Certificate file path, PEM text, or base64-encoded certificate data"

// createTools returns the MCP tool definitions with their handlers.
//
// The function defines the following tools:
//   - decode_certificate: Decodes one certificate into a report
//   - batch_decode_certificates: Decodes a comma-separated list of certificates concurrently
//   - check_cert_expiry: Reports the expiry status against a warning threshold
//
// Optional arguments carry no schema default so that handlers fall back to
// the loaded configuration.
func createTools() []ToolDefinition {
	return []ToolDefinition{
		{
			Tool: mcp.NewTool("decode_certificate",
				mcp.WithDescription("Decode an X509 certificate and report its version, serial number, signature algorithm, issuer, subject, validity, and expiry status"),
				mcp.WithString("certificate",
					mcp.Required(),
					mcp.Description(certificateDescription),
				),
				mcp.WithString("format",
					mcp.Description(formatDescription),
					mcp.Enum("text", "json", "yaml", "table"),
				),
			),
			Handler: handleDecodeCertificate,
			Role:    roleDecoder,
		},
		{
			Tool: mcp.NewTool("batch_decode_certificates",
				mcp.WithDescription("Decode several X509 certificates concurrently; failures are reported per certificate"),
				mcp.WithString("certificates",
					mcp.Required(),
					mcp.Description("Comma-separated list of certificate file paths or base64-encoded certificate data"),
				),
				mcp.WithString("format",
					mcp.Description(formatDescription),
					mcp.Enum("text", "json", "yaml", "table"),
				),
			),
			Handler: handleBatchDecodeCertificates,
			Role:    roleBatchDecoder,
		},
		{
			Tool: mcp.NewTool("check_cert_expiry",
				mcp.WithDescription("Check a certificate's expiry date and warn when it expires soon"),
				mcp.WithString("certificate",
					mcp.Required(),
					mcp.Description(certificateDescription),
				),
				mcp.WithNumber("warn_days",
					mcp.Description("Number of days before expiry to show warning (default: configured threshold, 30)"),
					mcp.Min(1),
				),
			),
			Handler: handleCheckCertExpiry,
			Role:    roleExpiryChecker,
		},
	}
}
