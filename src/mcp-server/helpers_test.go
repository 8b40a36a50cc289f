// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/require"

	x509certs "github.com/zhiweicoding/devtoolbox/src/internal/x509/certs"
	"github.com/zhiweicoding/devtoolbox/src/internal/x509/dertest"
)

// validPEM is CN=Test, valid until 2099.
func validPEM() string {
	return string(x509certs.New().EncodePEM(dertest.Default().Bytes()))
}

func expiredPEM() string {
	c := dertest.Default()
	c.Subject = []dertest.Attribute{dertest.Printable(dertest.OIDCommonName, "old.example.com")}
	c.NotAfter = time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)
	return string(x509certs.New().EncodePEM(c.Bytes()))
}

func expiringPEM() string {
	c := dertest.Default()
	c.Subject = []dertest.Attribute{dertest.Printable(dertest.OIDCommonName, "soon.example.com")}
	c.NotAfter = time.Now().UTC().Add(10 * 24 * time.Hour).Truncate(time.Second)
	return string(x509certs.New().EncodePEM(c.Bytes()))
}

// truncatedPEM frames the first 20 bytes of a valid certificate.
func truncatedPEM() string {
	return string(x509certs.New().EncodePEM(dertest.Default().Bytes()[:20]))
}

func base64Of(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

// resultText joins every text content item of result.
func resultText(result *mcp.CallToolResult) string {
	var b strings.Builder
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			b.WriteString(tc.Text)
		}
	}
	return b.String()
}
