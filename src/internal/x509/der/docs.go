// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509der implements the minimal [DER] primitives needed to walk an
// [X.509] certificate without a general-purpose ASN.1 library: length headers,
// single-octet tag TLVs, object identifiers, and the UTCTime and
// GeneralizedTime time types.
//
// Every function is a pure function of a byte buffer and offsets into it.
// Offsets reported in errors are absolute positions in that buffer, and every
// offset computation is bounds checked, so malformed or truncated input always
// yields a [*ParseError] instead of an out-of-range read.
//
// [DER]: https://grokipedia.com/page/X.690
// [X.509]: https://grokipedia.com/page/X.509
package x509der
