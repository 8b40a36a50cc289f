// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509der

import (
	"math"
	"strconv"
)

// oidNames maps dotted object identifiers to short mnemonics.
// The table is read-only after package initialization.
var oidNames = map[string]string{
	// X.520 attribute types
	"2.5.4.3":  "CN",
	"2.5.4.5":  "serialNumber",
	"2.5.4.6":  "C",
	"2.5.4.7":  "L",
	"2.5.4.8":  "ST",
	"2.5.4.9":  "STREET",
	"2.5.4.10": "O",
	"2.5.4.11": "OU",
	"2.5.4.17": "postalCode",

	// PKCS #9
	"1.2.840.113549.1.9.1": "emailAddress",

	// Signature and key algorithms
	"1.2.840.113549.1.1.1":  "RSA",
	"1.2.840.113549.1.1.4":  "MD5withRSA",
	"1.2.840.113549.1.1.5":  "SHA1withRSA",
	"1.2.840.113549.1.1.10": "RSASSA-PSS",
	"1.2.840.113549.1.1.11": "SHA256withRSA",
	"1.2.840.113549.1.1.12": "SHA384withRSA",
	"1.2.840.113549.1.1.13": "SHA512withRSA",
	"1.2.840.10045.4.3.2":   "ECDSA-SHA256",
	"1.2.840.10045.4.3.3":   "ECDSA-SHA384",
	"1.2.840.10045.4.3.4":   "ECDSA-SHA512",
	"1.3.101.112":           "Ed25519",
}

// OIDName returns the mnemonic for a dotted OID, or the OID itself when it is unknown.
func OIDName(oid string) string {
	if name, ok := LookupOID(oid); ok {
		return name
	}
	return oid
}

// LookupOID reports the mnemonic for oid and whether one is known.
func LookupOID(oid string) (string, bool) {
	name, ok := oidNames[oid]
	return name, ok
}

// DecodeOID decodes the OBJECT IDENTIFIER content buf[offset:offset+length]
// into dotted-decimal notation.
//
// The first subidentifier packs the first two arcs as 40*X+Y; values of 80
// and above always belong to arc 2. Every subidentifier is a base-128 varint
// with the continuation bit set on all but its last octet.
//
// Errors:
//   - [ErrTruncatedInput] if the range lies outside buf
//   - [ErrMalformedOID] if the content is empty, a varint does not terminate,
//     or an arc exceeds 64 bits
func DecodeOID(buf []byte, offset, length int) (string, error) {
	if offset < 0 || length < 0 || length > len(buf)-offset {
		return "", Errorf(ErrTruncatedInput, offset, "OID content of %d bytes exceeds input", length)
	}
	if length == 0 {
		return "", Errorf(ErrMalformedOID, offset, "empty content")
	}

	end := offset + length
	out := make([]byte, 0, length*3)
	first := true

	for pos := offset; pos < end; {
		start := pos
		var v uint64
		for {
			if pos >= end {
				return "", Errorf(ErrMalformedOID, start, "unterminated subidentifier")
			}
			b := buf[pos]
			pos++
			if v > math.MaxUint64>>7 {
				return "", Errorf(ErrMalformedOID, start, "subidentifier overflows 64 bits")
			}
			v = v<<7 | uint64(b&0x7f)
			if b&0x80 == 0 {
				break
			}
		}

		if first {
			first = false
			x, y := v/40, v%40
			if v >= 80 {
				x, y = 2, v-80
			}
			out = strconv.AppendUint(out, x, 10)
			out = append(out, '.')
			out = strconv.AppendUint(out, y, 10)
			continue
		}

		out = append(out, '.')
		out = strconv.AppendUint(out, v, 10)
	}

	return string(out), nil
}
