// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package dertest builds DER certificate fixtures for tests.
//
// Fixtures are encoded with [golang.org/x/crypto/cryptobyte], an encoder that
// shares no code with the decoder under test. Only the TBSCertificate fields
// read by the decoder are emitted; the public key and extensions are omitted.
package dertest

import (
	"encoding/asn1"
	"time"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// Well-known object identifiers used by fixtures.
var (
	OIDCommonName         = asn1.ObjectIdentifier{2, 5, 4, 3}
	OIDCountry            = asn1.ObjectIdentifier{2, 5, 4, 6}
	OIDLocality           = asn1.ObjectIdentifier{2, 5, 4, 7}
	OIDOrganization       = asn1.ObjectIdentifier{2, 5, 4, 10}
	OIDOrganizationalUnit = asn1.ObjectIdentifier{2, 5, 4, 11}
	OIDEmailAddress       = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 9, 1}
	OIDSHA256WithRSA      = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 11}
	OIDECDSAWithSHA384    = asn1.ObjectIdentifier{1, 2, 840, 10045, 4, 3, 3}
)

// Attribute is one AttributeTypeAndValue. Each attribute is emitted in its
// own RelativeDistinguishedName SET.
type Attribute struct {
	Type  asn1.ObjectIdentifier
	Tag   cbasn1.Tag // string tag; zero means PrintableString
	Value []byte
}

// Printable returns a PrintableString attribute.
func Printable(oid asn1.ObjectIdentifier, value string) Attribute {
	return Attribute{Type: oid, Tag: cbasn1.PrintableString, Value: []byte(value)}
}

// UTF8 returns a UTF8String attribute.
func UTF8(oid asn1.ObjectIdentifier, value string) Attribute {
	return Attribute{Type: oid, Tag: cbasn1.UTF8String, Value: []byte(value)}
}

// Certificate describes a fixture certificate.
type Certificate struct {
	// Version is the 1-based certificate version. Zero omits the [0] wrapper.
	Version int

	Serial       []byte // raw INTEGER content octets
	SignatureOID asn1.ObjectIdentifier
	Issuer       []Attribute
	Subject      []Attribute
	NotBefore    time.Time
	NotAfter     time.Time

	// Signature, when non-nil, appends the outer signatureAlgorithm and
	// signatureValue BIT STRING after the TBSCertificate.
	Signature []byte
}

// Default returns a v3 certificate with serial 01, SHA256withRSA, CN=Test as
// issuer and subject, valid from 2020-01-01 to 2099-12-31.
func Default() Certificate {
	return Certificate{
		Version:      3,
		Serial:       []byte{0x01},
		SignatureOID: OIDSHA256WithRSA,
		Issuer:       []Attribute{Printable(OIDCommonName, "Test")},
		Subject:      []Attribute{Printable(OIDCommonName, "Test")},
		NotBefore:    time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		NotAfter:     time.Date(2099, 12, 31, 23, 59, 59, 0, time.UTC),
	}
}

// Bytes encodes c. It panics if the builder rejects a field, which only
// happens for programming errors in the fixture itself.
func (c Certificate) Bytes() []byte {
	var b cryptobyte.Builder
	b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddBytes(c.TBS())
		if c.Signature != nil {
			addAlgorithm(b, c.SignatureOID)
			b.AddASN1BitString(c.Signature)
		}
	})
	return b.BytesOrPanic()
}

// TBS encodes only the TBSCertificate SEQUENCE of c.
func (c Certificate) TBS() []byte {
	var b cryptobyte.Builder
	b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
		if c.Version != 0 {
			b.AddASN1(cbasn1.Tag(0).ContextSpecific().Constructed(), func(b *cryptobyte.Builder) {
				b.AddASN1Int64(int64(c.Version - 1))
			})
		}
		b.AddASN1(cbasn1.INTEGER, func(b *cryptobyte.Builder) {
			b.AddBytes(c.Serial)
		})
		addAlgorithm(b, c.SignatureOID)
		b.AddBytes(Name(c.Issuer...))
		b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
			addTime(b, c.NotBefore)
			addTime(b, c.NotAfter)
		})
		b.AddBytes(Name(c.Subject...))
	})
	return b.BytesOrPanic()
}

// Name encodes a Name SEQUENCE holding one RDN per attribute, in order.
func Name(attrs ...Attribute) []byte {
	var b cryptobyte.Builder
	b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
		for _, a := range attrs {
			b.AddASN1(cbasn1.SET, func(b *cryptobyte.Builder) {
				b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
					b.AddASN1ObjectIdentifier(a.Type)
					tag := a.Tag
					if tag == 0 {
						tag = cbasn1.PrintableString
					}
					b.AddASN1(tag, func(b *cryptobyte.Builder) {
						b.AddBytes(a.Value)
					})
				})
			})
		}
	})
	return b.BytesOrPanic()
}

func addAlgorithm(b *cryptobyte.Builder, oid asn1.ObjectIdentifier) {
	b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1ObjectIdentifier(oid)
		b.AddASN1(cbasn1.NULL, func(*cryptobyte.Builder) {})
	})
}

// addTime follows RFC 5280: UTCTime through 2049, GeneralizedTime after.
func addTime(b *cryptobyte.Builder, t time.Time) {
	t = t.UTC()
	if t.Year() >= 1950 && t.Year() < 2050 {
		b.AddASN1UTCTime(t)
		return
	}
	b.AddASN1GeneralizedTime(t)
}
