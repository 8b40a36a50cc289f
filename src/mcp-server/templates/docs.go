// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package templates embeds the markdown served by the [MCP] server: the
// instructions template sent at initialization and the report field reference.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
package templates
