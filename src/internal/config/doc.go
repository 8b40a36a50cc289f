// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads the JSON or YAML settings shared by the cert-decoder
// CLI and MCP server: the expiring-soon threshold, the default output format,
// the date layout, logging, and batch limits.
//
// Example YAML:
//
//	defaults:
//	  warnDays: 14
//	  format: table
//	  timeFormat: "2006-01-02 15:04:05 MST"
//	logging:
//	  format: json
//	  silent: false
//	mcp:
//	  maxBatch: 16
package config
