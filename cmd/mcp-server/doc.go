// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// mcp-server serves the X.509 certificate decoder over the Model Context
// Protocol on stdio.
//
// # Tools
//
//	decode_certificate         Decode one certificate (text, json, yaml, or table)
//	batch_decode_certificates  Decode a comma-separated list concurrently
//	check_cert_expiry          Report expiry status against warn_days
//
// # Configuration
//
// Set CERT_DECODER_CONFIG_FILE to a JSON or YAML file to change the default
// format, warning threshold, time format, batch limit, and logging. Logs are
// written to stderr as JSON lines.
//
// # Client Setup
//
//	{
//	  "mcpServers": {
//	    "cert-decoder": {
//	      "command": "mcp-server",
//	      "env": { "CERT_DECODER_CONFIG_FILE": "/path/to/config.yaml" }
//	    }
//	  }
//	}
package main
