// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package certinfo

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"

	x509der "github.com/zhiweicoding/devtoolbox/src/internal/x509/der"
)

// Attribute is one AttributeTypeAndValue of a distinguished name.
type Attribute struct {
	OID   string `json:"oid" yaml:"oid"`
	Name  string `json:"name" yaml:"name"` // short name such as "CN", or the OID when unknown
	Value string `json:"value" yaml:"value"`
}

var (
	bmpDecoding       encoding.Encoding = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	universalDecoding encoding.Encoding = utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM)
)

// ParseName decodes the Name whose content is buf[offset:offset+length]
// into its attributes in encoding order.
//
// The Name is a SEQUENCE OF SET OF AttributeTypeAndValue. Elements other than
// SET at the outer level, or other than SEQUENCE inside a SET, are skipped.
// Inside an AttributeTypeAndValue the first element must be an OBJECT
// IDENTIFIER followed by a string value.
func ParseName(buf []byte, offset, length int) ([]Attribute, error) {
	if offset < 0 || length < 0 || length > len(buf)-offset {
		return nil, x509der.Errorf(x509der.ErrTruncatedInput, offset, "name content of %d bytes exceeds input", length)
	}

	var attrs []Attribute
	end := offset + length

	for pos := offset; pos < end; {
		rdn, err := x509der.ReadTLVWithin(buf, pos, end)
		if err != nil {
			return nil, err
		}
		pos = rdn.End()

		if rdn.Tag != x509der.TagSet {
			continue
		}

		for p := rdn.ValueOffset; p < rdn.End(); {
			atv, err := x509der.ReadTLVWithin(buf, p, rdn.End())
			if err != nil {
				return nil, err
			}
			p = atv.End()

			if atv.Tag != x509der.TagSequence {
				continue
			}

			attr, err := parseAttribute(buf, atv)
			if err != nil {
				return nil, err
			}
			attrs = append(attrs, attr)
		}
	}

	return attrs, nil
}

func parseAttribute(buf []byte, atv x509der.TLV) (Attribute, error) {
	typ, err := x509der.ExpectTLV(buf, atv.ValueOffset, atv.End(), x509der.TagOID)
	if err != nil {
		return Attribute{}, err
	}

	oid, err := x509der.DecodeOID(buf, typ.ValueOffset, typ.Length)
	if err != nil {
		return Attribute{}, err
	}

	if typ.End() >= atv.End() {
		return Attribute{}, x509der.Errorf(x509der.ErrStructuralMismatch, atv.Offset, "attribute %s has no value", oid)
	}

	val, err := x509der.ReadTLVWithin(buf, typ.End(), atv.End())
	if err != nil {
		return Attribute{}, err
	}

	return Attribute{
		OID:   oid,
		Name:  x509der.OIDName(oid),
		Value: decodeString(val.Tag, val.Value(buf)),
	}, nil
}

// decodeString converts a DirectoryString-like value to UTF-8. The 8-bit
// string types are taken as-is.
func decodeString(tag byte, content []byte) string {
	var enc encoding.Encoding
	switch tag {
	case x509der.TagBMPString:
		enc = bmpDecoding
	case x509der.TagUniversalString:
		enc = universalDecoding
	default:
		return string(content)
	}

	out, err := enc.NewDecoder().Bytes(content)
	if err != nil {
		return string(content)
	}
	return string(out)
}

// FormatName renders attrs as "Name=Value" pairs joined by ", " in reverse
// encoding order, so the most specific attribute comes first.
func FormatName(attrs []Attribute) string {
	var sb strings.Builder
	for i := len(attrs) - 1; i >= 0; i-- {
		if sb.Len() > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(attrs[i].Name)
		sb.WriteByte('=')
		sb.WriteString(attrs[i].Value)
	}
	return sb.String()
}
