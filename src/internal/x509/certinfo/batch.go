// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package certinfo

import (
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/zhiweicoding/devtoolbox/src/internal/helper/gc"
	x509certs "github.com/zhiweicoding/devtoolbox/src/internal/x509/certs"
)

// Input is one certificate to decode, as PEM text or a bare base64 body.
type Input struct {
	Source string // label used in output, such as a file name
	Data   []byte
}

// Result is the outcome of decoding one [Input].
type Result struct {
	Source string
	Info   *Info
	Err    error
}

// DecodePEM strips the PEM armor from data and decodes the first certificate.
func (d *Decoder) DecodePEM(data []byte) (*Info, error) {
	der, err := x509certs.New().Decode(data)
	if err != nil {
		return nil, err
	}
	return d.Decode(der)
}

// DecodeBatch decodes every input concurrently and returns the results in
// input order. A failure in one input does not affect the others.
func (d *Decoder) DecodeBatch(inputs []Input) []Result {
	results := make([]Result, len(inputs))

	var wg sync.WaitGroup
	for i, in := range inputs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			info, err := d.DecodePEM(in.Data)
			results[i] = Result{Source: in.Source, Info: info, Err: err}
		}()
	}
	wg.Wait()

	return results
}

type batchEntry struct {
	Source string  `json:"source" yaml:"source"`
	Report *Report `json:"certificate,omitempty" yaml:"certificate,omitempty"`
	Error  string  `json:"error,omitempty" yaml:"error,omitempty"`
}

func batchEntries(results []Result, warnDays int) []batchEntry {
	entries := make([]batchEntry, len(results))
	for i, r := range results {
		entries[i].Source = r.Source
		if r.Err != nil {
			entries[i].Error = r.Err.Error()
			continue
		}
		report := NewReport(r.Info, warnDays)
		entries[i].Report = &report
	}
	return entries
}

// RenderBatch renders several results in one document. Text output separates
// entries with a "==> source <==" header, table output uses one row per
// certificate, and JSON/YAML output is a list of entries.
func RenderBatch(results []Result, format Format, opts RenderOptions) (string, error) {
	opts = opts.withDefaults()

	switch format {
	case FormatText, "":
		return renderBatchText(results, opts), nil
	case FormatTable:
		return renderBatchTable(results, opts), nil
	case FormatJSON:
		b, err := json.MarshalIndent(batchEntries(results, opts.WarnDays), "", "  ")
		return string(b), err
	case FormatYAML:
		b, err := yaml.Marshal(batchEntries(results, opts.WarnDays))
		return string(b), err
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}

func renderBatchText(results []Result, opts RenderOptions) string {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	for i, r := range results {
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString("==> ")
		buf.WriteString(r.Source)
		buf.WriteString(" <==\n")
		if r.Err != nil {
			buf.WriteString("error: ")
			buf.WriteString(r.Err.Error())
			buf.WriteByte('\n')
			continue
		}
		buf.WriteString(RenderText(r.Info, opts))
	}

	return buf.String()
}

func renderBatchTable(results []Result, opts RenderOptions) string {
	rows := make([][]string, 0, len(results))
	for i, r := range results {
		row := []string{strconv.Itoa(i + 1), r.Source}
		if r.Err != nil {
			row = append(row, "", "", "", "error: "+r.Err.Error())
		} else {
			row = append(row,
				r.Info.Subject,
				r.Info.Issuer,
				r.Info.NotAfter.UTC().Format(opts.TimeFormat),
				r.Info.StatusText(opts.WarnDays),
			)
		}
		rows = append(rows, row)
	}

	return renderMarkdown([]string{"#", "Source", "Subject", "Issuer", "Valid To", "Status"}, rows)
}
