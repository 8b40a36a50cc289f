// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/zhiweicoding/devtoolbox/src/internal/config"
	"github.com/zhiweicoding/devtoolbox/src/internal/x509/certinfo"
)

// requestFormat returns the format argument, falling back to the configured default.
func requestFormat(request mcp.CallToolRequest, cfg *config.Config) (certinfo.Format, error) {
	raw := request.GetString("format", "")
	if raw == "" {
		return cfg.OutputFormat(), nil
	}
	return certinfo.ParseFormat(raw)
}

// handleDecodeCertificate decodes the first certificate of the input and
// renders the report in the requested format.
//
// Parameters:
//   - ctx: Context for cancellation
//   - request: MCP tool call request containing certificate input and format
//   - cfg: Configuration providing the default format and render options
//
// Returns:
//   - The rendered report, or an error result describing why the input could not be decoded
func handleDecodeCertificate(ctx context.Context, request mcp.CallToolRequest, cfg *config.Config) (*mcp.CallToolResult, error) {
	certInput, err := request.RequireString("certificate")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("certificate parameter required: %v", err)), nil
	}

	format, err := requestFormat(request, cfg)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	data, err := readCertificateInput(certInput)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read certificate: %v", err)), nil
	}

	info, err := certinfo.New().DecodePEM(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to decode certificate: %v", err)), nil
	}

	report, err := certinfo.Render(info, format, cfg.RenderOptions())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to render report: %v", err)), nil
	}

	return mcp.NewToolResultText(report), nil
}

// handleBatchDecodeCertificates decodes every comma-separated input concurrently.
// Inputs that cannot be read or decoded are reported inline and do not
// affect the others. The number of inputs is capped by mcp.maxBatch.
func handleBatchDecodeCertificates(ctx context.Context, request mcp.CallToolRequest, cfg *config.Config) (*mcp.CallToolResult, error) {
	list, err := request.RequireString("certificates")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("certificates parameter required: %v", err)), nil
	}

	format, err := requestFormat(request, cfg)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	certInputs := splitCertificateInputs(list)
	switch {
	case len(certInputs) == 0:
		return mcp.NewToolResultError("certificates parameter required: no certificate given"), nil
	case len(certInputs) > cfg.MCP.MaxBatch:
		return mcp.NewToolResultError(fmt.Sprintf("too many certificates: %d (limit %d)", len(certInputs), cfg.MCP.MaxBatch)), nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := make([]certinfo.Result, len(certInputs))
	inputs := make([]certinfo.Input, 0, len(certInputs))
	pending := make([]int, 0, len(certInputs))

	for i, in := range certInputs {
		source := sourceLabel(in, i)
		data, err := readCertificateInput(in)
		if err != nil {
			results[i] = certinfo.Result{Source: source, Err: fmt.Errorf("failed to read certificate: %w", err)}
			continue
		}
		inputs = append(inputs, certinfo.Input{Source: source, Data: data})
		pending = append(pending, i)
	}

	for j, r := range certinfo.New().DecodeBatch(inputs) {
		results[pending[j]] = r
	}

	report, err := certinfo.RenderBatch(results, format, cfg.RenderOptions())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to render report: %v", err)), nil
	}

	if format == certinfo.FormatJSON || format == certinfo.FormatYAML {
		return mcp.NewToolResultText(report), nil
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}

	var b strings.Builder
	b.WriteString("Batch Certificate Decode Results:\n")
	fmt.Fprintf(&b, "Processed %d certificate(s), %d failed\n\n", len(results), failed)
	b.WriteString(report)

	return mcp.NewToolResultText(b.String()), nil
}

// sourceLabel names an input in batch output: file paths by path, inline data by position.
func sourceLabel(input string, index int) string {
	if info, err := os.Stat(input); err == nil && info.Mode().IsRegular() {
		return input
	}
	return "certificate " + strconv.Itoa(index+1)
}

// handleCheckCertExpiry reports the validity window and expiry status of a certificate.
//
// Parameters:
//   - ctx: Context for cancellation
//   - request: MCP tool call request containing certificate input and warn_days
//   - cfg: Configuration providing the default warning threshold and time format
//
// Returns:
//   - A short expiry report ending with a one-line verdict
func handleCheckCertExpiry(ctx context.Context, request mcp.CallToolRequest, cfg *config.Config) (*mcp.CallToolResult, error) {
	certInput, err := request.RequireString("certificate")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("certificate parameter required: %v", err)), nil
	}

	opts := cfg.RenderOptions()
	if warnDays := request.GetInt("warn_days", 0); warnDays > 0 {
		opts.WarnDays = warnDays
	}

	data, err := readCertificateInput(certInput)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read certificate: %v", err)), nil
	}

	info, err := certinfo.New().DecodePEM(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to decode certificate: %v", err)), nil
	}

	var b strings.Builder
	b.WriteString("Certificate Expiry Check Results:\n\n")
	fmt.Fprintf(&b, "Subject: %s\n", info.Subject)
	fmt.Fprintf(&b, "  Issued: %s\n", info.NotBefore.UTC().Format(opts.TimeFormat))
	fmt.Fprintf(&b, "  Expires: %s\n", info.NotAfter.UTC().Format(opts.TimeFormat))
	fmt.Fprintf(&b, "  Status: %s\n", info.StatusText(opts.WarnDays))
	fmt.Fprintf(&b, "\nWarning threshold: %d days\n", opts.WarnDays)

	switch info.Status(opts.WarnDays) {
	case certinfo.StatusValid:
		b.WriteString("\n✓ Certificate is valid and not expiring soon.")
	case certinfo.StatusExpiringSoon:
		b.WriteString("\n⚠️  Certificate expires soon and should be renewed.")
	default:
		b.WriteString("\n⚠️  Certificate has expired.")
	}

	return mcp.NewToolResultText(b.String()), nil
}
