// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package certinfo_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/zhiweicoding/devtoolbox/src/internal/x509/certinfo"
	x509certs "github.com/zhiweicoding/devtoolbox/src/internal/x509/certs"
	"github.com/zhiweicoding/devtoolbox/src/internal/x509/dertest"
)

func decodedFixture(t *testing.T) *certinfo.Info {
	t.Helper()
	c := dertest.Default()
	c.Signature = []byte{0xab, 0xcd}
	info, err := newDecoderAt(2024, 1, 1).Decode(c.Bytes())
	require.NoError(t, err)
	return info
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    certinfo.Format
		wantErr bool
	}{
		{input: "", want: certinfo.FormatText},
		{input: "text", want: certinfo.FormatText},
		{input: "JSON", want: certinfo.FormatJSON},
		{input: "yml", want: certinfo.FormatYAML},
		{input: " yaml ", want: certinfo.FormatYAML},
		{input: "table", want: certinfo.FormatTable},
		{input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := certinfo.ParseFormat(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, certinfo.ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderText(t *testing.T) {
	got := certinfo.RenderText(decodedFixture(t), certinfo.RenderOptions{})

	want := strings.Join([]string{
		"subject: CN=Test",
		"issuer: CN=Test",
		"serialNumber: 01",
		"signatureAlgorithm: SHA256withRSA",
		"signatureAlgorithmOid: 1.2.840.113549.1.1.11",
		"version: 3",
		"isExpired: false",
		"daysRemaining: 27759",
		"validFrom: Wed, 01 Jan 2020 00:00:00 GMT",
		"validTo: Thu, 31 Dec 2099 23:59:59 GMT",
		"status: Valid: 27759 days remaining",
	}, "\n") + "\n"

	assert.Equal(t, want, got)
}

func TestRenderText_TimeFormat(t *testing.T) {
	got := certinfo.RenderText(decodedFixture(t), certinfo.RenderOptions{TimeFormat: "2006-01-02"})
	assert.Contains(t, got, "validFrom: 2020-01-01\n")
	assert.Contains(t, got, "validTo: 2099-12-31\n")
}

func TestRenderTable(t *testing.T) {
	got := certinfo.RenderTable(decodedFixture(t), certinfo.RenderOptions{WarnDays: 30})

	// Headers are upper-cased by the markdown renderer; cells are kept as is.
	assert.Contains(t, got, "FIELD")
	assert.Contains(t, got, "VALUE")
	assert.NotContains(t, got, "Field")

	for _, want := range []string{"Version", "v3", "Subject", "CN=Test", "Serial Number", "SHA256withRSA", "Valid: 27759 days remaining"} {
		assert.Contains(t, got, want)
	}
	assert.Contains(t, got, "|", "expected markdown table")
}

func TestRenderJSON(t *testing.T) {
	b, err := certinfo.RenderJSON(decodedFixture(t), certinfo.RenderOptions{})
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))

	assert.Equal(t, float64(3), got["version"])
	assert.Equal(t, "01", got["serialNumber"])
	assert.Equal(t, "SHA256withRSA", got["signatureAlgorithm"])
	assert.Equal(t, "CN=Test", got["subject"])
	assert.Equal(t, "2099-12-31T23:59:59Z", got["notAfter"])
	assert.Equal(t, false, got["isExpired"])
	assert.Equal(t, "ab:cd", got["signature"])
	assert.Equal(t, "valid", got["status"])
	assert.Equal(t, "Valid: 27759 days remaining", got["statusText"])
}

func TestRenderYAML(t *testing.T) {
	b, err := certinfo.RenderYAML(decodedFixture(t), certinfo.RenderOptions{WarnDays: 40000})
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(b, &got))

	assert.Equal(t, 3, got["version"])
	assert.Equal(t, "CN=Test", got["issuer"])
	assert.Equal(t, "ab:cd", got["signature"])
	assert.Equal(t, "expiring_soon", got["status"])
	assert.Contains(t, string(b), "signatureAlgorithmOid: 1.2.840.113549.1.1.11")
}

func TestRender(t *testing.T) {
	info := decodedFixture(t)

	for _, format := range []certinfo.Format{certinfo.FormatText, certinfo.FormatJSON, certinfo.FormatYAML, certinfo.FormatTable} {
		t.Run(string(format), func(t *testing.T) {
			out, err := certinfo.Render(info, format, certinfo.RenderOptions{})
			require.NoError(t, err)
			assert.Contains(t, out, "CN=Test")
		})
	}

	_, err := certinfo.Render(info, certinfo.Format("xml"), certinfo.RenderOptions{})
	assert.ErrorIs(t, err, certinfo.ErrUnknownFormat)
}

func TestDecodeBatch(t *testing.T) {
	certPEM := string(x509certs.New().EncodePEM(dertest.Default().Bytes()))

	inputs := []certinfo.Input{
		{Source: "fixture.pem", Data: []byte(certPEM)},
		{Source: "google.pem", Data: []byte(googleCertPEM)},
		{Source: "garbage.txt", Data: []byte("definitely not base64!")},
		{Source: "empty.pem", Data: nil},
	}

	results := newDecoderAt(2025, 12, 15).DecodeBatch(inputs)
	require.Len(t, results, len(inputs))

	for i, r := range results {
		assert.Equal(t, inputs[i].Source, r.Source, "results keep input order")
	}

	require.NoError(t, results[0].Err)
	assert.Equal(t, "CN=Test", results[0].Info.Subject)
	require.NoError(t, results[1].Err)
	assert.Equal(t, "CN=www.google.com", results[1].Info.Subject)
	assert.ErrorIs(t, results[2].Err, x509certs.ErrInvalidPEMBlock)
	assert.Nil(t, results[2].Info)
	assert.ErrorIs(t, results[3].Err, x509certs.ErrEmptyInput)
}

func TestRenderBatch(t *testing.T) {
	results := []certinfo.Result{
		{Source: "a.pem", Info: decodedFixture(t)},
		{Source: "b.pem", Err: errors.New("x509certs: invalid PEM block")},
	}

	t.Run("Text", func(t *testing.T) {
		out, err := certinfo.RenderBatch(results, certinfo.FormatText, certinfo.RenderOptions{})
		require.NoError(t, err)
		assert.Contains(t, out, "==> a.pem <==\nsubject: CN=Test\n")
		assert.Contains(t, out, "\n\n==> b.pem <==\nerror: x509certs: invalid PEM block\n")
	})

	t.Run("Table", func(t *testing.T) {
		out, err := certinfo.RenderBatch(results, certinfo.FormatTable, certinfo.RenderOptions{})
		require.NoError(t, err)
		for _, want := range []string{"SOURCE", "VALID TO", "a.pem", "b.pem", "CN=Test", "error: x509certs: invalid PEM block"} {
			assert.Contains(t, out, want)
		}
	})

	t.Run("JSON", func(t *testing.T) {
		out, err := certinfo.RenderBatch(results, certinfo.FormatJSON, certinfo.RenderOptions{})
		require.NoError(t, err)

		var got []map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		require.Len(t, got, 2)

		assert.Equal(t, "a.pem", got[0]["source"])
		cert, ok := got[0]["certificate"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "CN=Test", cert["subject"])
		assert.NotContains(t, got[0], "error")

		assert.Equal(t, "x509certs: invalid PEM block", got[1]["error"])
		assert.NotContains(t, got[1], "certificate")
	})

	t.Run("YAML", func(t *testing.T) {
		out, err := certinfo.RenderBatch(results, certinfo.FormatYAML, certinfo.RenderOptions{})
		require.NoError(t, err)

		var got []map[string]any
		require.NoError(t, yaml.Unmarshal([]byte(out), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "b.pem", got[1]["source"])
	})

	t.Run("Unknown Format", func(t *testing.T) {
		_, err := certinfo.RenderBatch(results, certinfo.Format("csv"), certinfo.RenderOptions{})
		assert.ErrorIs(t, err, certinfo.ErrUnknownFormat)
	})
}
