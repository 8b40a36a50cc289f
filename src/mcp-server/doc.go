// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mcpserver provides the [MCP] server for [X509] certificate decoding.
// It exposes tools that decode a certificate, decode a batch of certificates
// concurrently, and check expiry against a warning threshold, plus static
// resources describing the server and its report format.
// The server is assembled with [ServerBuilder] and served over stdio by [Run].
//
// [X509]: https://grokipedia.com/page/X.509
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
package mcpserver
