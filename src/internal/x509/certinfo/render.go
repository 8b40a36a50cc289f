// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package certinfo

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"gopkg.in/yaml.v3"

	"github.com/zhiweicoding/devtoolbox/src/internal/helper/gc"
)

// DefaultTimeFormat renders validity dates in UTC, e.g. "Wed, 01 Jan 2020 00:00:00 GMT".
const DefaultTimeFormat = "Mon, 02 Jan 2006 15:04:05 GMT"

// ErrUnknownFormat indicates an output format name that is not supported.
var ErrUnknownFormat = errors.New("certinfo: unknown output format")

// Format selects how a decoded certificate is rendered.
type Format string

const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
)

// ParseFormat maps a case-insensitive format name to a [Format].
// The empty string selects [FormatText]; "yml" is accepted for YAML.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "table":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// RenderOptions controls rendering. Zero values select the defaults.
type RenderOptions struct {
	WarnDays   int    // expiring-soon threshold, default [DefaultWarnDays]
	TimeFormat string // layout for text and table output, default [DefaultTimeFormat]
}

func (o RenderOptions) withDefaults() RenderOptions {
	if o.WarnDays <= 0 {
		o.WarnDays = DefaultWarnDays
	}
	if o.TimeFormat == "" {
		o.TimeFormat = DefaultTimeFormat
	}
	return o
}

// Report is an [Info] together with its status, as emitted by the JSON and
// YAML renderers.
type Report struct {
	Info       `yaml:",inline"`
	Status     Status `json:"status" yaml:"status"`
	StatusText string `json:"statusText" yaml:"statusText"`
}

// NewReport classifies info using warnDays and returns the combined report.
func NewReport(info *Info, warnDays int) Report {
	if warnDays <= 0 {
		warnDays = DefaultWarnDays
	}
	return Report{
		Info:       *info,
		Status:     info.Status(warnDays),
		StatusText: info.StatusText(warnDays),
	}
}

// Render renders info in the given format.
func Render(info *Info, format Format, opts RenderOptions) (string, error) {
	switch format {
	case FormatText, "":
		return RenderText(info, opts), nil
	case FormatTable:
		return RenderTable(info, opts), nil
	case FormatJSON:
		b, err := RenderJSON(info, opts)
		return string(b), err
	case FormatYAML:
		b, err := RenderYAML(info, opts)
		return string(b), err
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}

// RenderText renders info as "key: value" lines, one per field, followed by
// the status line.
func RenderText(info *Info, opts RenderOptions) string {
	opts = opts.withDefaults()

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	line := func(key, value string) {
		buf.WriteString(key)
		buf.WriteString(": ")
		buf.WriteString(value)
		buf.WriteByte('\n')
	}

	line("subject", info.Subject)
	line("issuer", info.Issuer)
	line("serialNumber", info.SerialNumber)
	line("signatureAlgorithm", info.SignatureAlgorithm)
	line("signatureAlgorithmOid", info.SignatureAlgorithmOID)
	line("version", strconv.Itoa(info.Version))
	line("isExpired", strconv.FormatBool(info.IsExpired))
	line("daysRemaining", strconv.Itoa(info.DaysRemaining))
	line("validFrom", info.NotBefore.UTC().Format(opts.TimeFormat))
	line("validTo", info.NotAfter.UTC().Format(opts.TimeFormat))
	line("status", info.StatusText(opts.WarnDays))

	return buf.String()
}

// RenderTable renders info as a two-column markdown table.
//
// Parameters:
//   - info: decoded certificate
//   - opts: rendering options; TimeFormat applies to the validity rows
//
// Returns:
//   - string: Markdown table with one row per field
//
// Thread Safety: Safe for concurrent use.
func RenderTable(info *Info, opts RenderOptions) string {
	opts = opts.withDefaults()

	rows := [][]string{
		{"Version", "v" + strconv.Itoa(info.Version)},
		{"Subject", info.Subject},
		{"Issuer", info.Issuer},
		{"Valid From", info.NotBefore.UTC().Format(opts.TimeFormat)},
		{"Valid To", info.NotAfter.UTC().Format(opts.TimeFormat)},
		{"Serial Number", info.SerialNumber},
		{"Signature Algorithm", info.SignatureAlgorithm},
		{"Status", info.StatusText(opts.WarnDays)},
	}

	return renderMarkdown([]string{"Field", "Value"}, rows)
}

// renderMarkdown keeps the renderer's default header formatting, which
// upper-cases header cells.
func renderMarkdown(headers []string, rows [][]string) string {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	table := tablewriter.NewTable(buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header(headers)
	table.Bulk(rows)
	table.Render()

	return buf.String()
}

// RenderJSON renders info and its status as indented JSON.
func RenderJSON(info *Info, opts RenderOptions) ([]byte, error) {
	opts = opts.withDefaults()
	return json.MarshalIndent(NewReport(info, opts.WarnDays), "", "  ")
}

// RenderYAML renders info and its status as YAML.
func RenderYAML(info *Info, opts RenderOptions) ([]byte, error) {
	opts = opts.withDefaults()
	return yaml.Marshal(NewReport(info, opts.WarnDays))
}
