// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509certs provides the [PEM] framing around [X.509] certificates.
// It locates CERTIFICATE blocks, strips the armor, and returns raw DER bytes
// for the decoder in the certinfo package. Bare base64 bodies pasted without
// the BEGIN/END lines are accepted as well.
//
// [X.509]: https://grokipedia.com/page/X.509
// [PEM]: https://grokipedia.com/page/PEM#privacy-enhanced-mail
package x509certs
