// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package certinfo

import (
	"errors"
	"fmt"
	"time"

	x509der "github.com/zhiweicoding/devtoolbox/src/internal/x509/der"
)

// ErrUnsupportedVersion indicates a certificate version other than v1, v2, or v3.
var ErrUnsupportedVersion = errors.New("certinfo: unsupported certificate version")

// Decoder decodes DER certificates into [Info] values.
type Decoder struct {
	now func() time.Time
}

// New returns a Decoder that evaluates expiry against [time.Now].
func New() *Decoder {
	return &Decoder{now: time.Now}
}

// NewWithClock returns a Decoder that evaluates expiry against now.
// A nil now falls back to [time.Now].
func NewWithClock(now func() time.Time) *Decoder {
	if now == nil {
		now = time.Now
	}
	return &Decoder{now: now}
}

// Decode parses der, which must start with a Certificate SEQUENCE, and
// returns its decoded fields.
//
// Parameters:
//   - der: DER bytes of the certificate; bytes after the Certificate are ignored
//
// Returns:
//   - *Info: the decoded fields, with IsExpired and DaysRemaining evaluated
//     against the decoder's clock
//   - error: the first failure, matching an x509der error kind or
//     [ErrUnsupportedVersion] through [errors.Is]
//
// Thread Safety: Decode does not mutate the Decoder or der and may be called
// concurrently.
func (d *Decoder) Decode(der []byte) (*Info, error) {
	cert, err := x509der.ExpectTLV(der, 0, len(der), x509der.TagSequence)
	if err != nil {
		return nil, fmt.Errorf("certinfo: certificate: %w", err)
	}

	tbs, err := x509der.ExpectTLV(der, cert.ValueOffset, cert.End(), x509der.TagSequence)
	if err != nil {
		return nil, fmt.Errorf("certinfo: tbsCertificate: %w", err)
	}

	info, err := d.decodeTBS(der, tbs)
	if err != nil {
		return nil, err
	}

	if tbs.End() < cert.End() {
		sig, err := decodeSignature(der, tbs.End(), cert.End())
		if err != nil {
			return nil, fmt.Errorf("certinfo: signature: %w", err)
		}
		info.Signature = sig
	}

	now := d.now()
	info.IsExpired = now.After(info.NotAfter)
	info.DaysRemaining = daysUntil(now, info.NotAfter)

	return info, nil
}

func (d *Decoder) decodeTBS(der []byte, tbs x509der.TLV) (*Info, error) {
	info := &Info{Version: 1}
	pos, end := tbs.ValueOffset, tbs.End()

	first, err := x509der.ReadTLVWithin(der, pos, end)
	if err != nil {
		return nil, fmt.Errorf("certinfo: version: %w", err)
	}
	if first.Tag == x509der.TagExplicitVersion {
		v, err := decodeVersion(der, first)
		if err != nil {
			return nil, err
		}
		info.Version = v
		pos = first.End()
	}

	serial, err := x509der.ExpectTLV(der, pos, end, x509der.TagInteger)
	if err != nil {
		return nil, fmt.Errorf("certinfo: serial number: %w", err)
	}
	if serial.Length == 0 {
		return nil, fmt.Errorf("certinfo: serial number: %w",
			x509der.Errorf(x509der.ErrMalformedInteger, serial.Offset, "empty INTEGER"))
	}
	info.SerialNumber = colonHex(serial.Value(der))
	pos = serial.End()

	alg, oid, err := decodeAlgorithm(der, pos, end)
	if err != nil {
		return nil, fmt.Errorf("certinfo: signature algorithm: %w", err)
	}
	info.SignatureAlgorithmOID = oid
	info.SignatureAlgorithm = x509der.OIDName(oid)
	pos = alg.End()

	issuer, next, err := decodeName(der, pos, end)
	if err != nil {
		return nil, fmt.Errorf("certinfo: issuer: %w", err)
	}
	info.Issuer = issuer
	pos = next

	validity, err := x509der.ExpectTLV(der, pos, end, x509der.TagSequence)
	if err != nil {
		return nil, fmt.Errorf("certinfo: validity: %w", err)
	}
	if info.NotBefore, info.NotAfter, err = decodeValidity(der, validity); err != nil {
		return nil, fmt.Errorf("certinfo: validity: %w", err)
	}
	pos = validity.End()

	subject, _, err := decodeName(der, pos, end)
	if err != nil {
		return nil, fmt.Errorf("certinfo: subject: %w", err)
	}
	info.Subject = subject

	return info, nil
}

func decodeVersion(der []byte, wrapper x509der.TLV) (int, error) {
	inner, err := x509der.ExpectTLV(der, wrapper.ValueOffset, wrapper.End(), x509der.TagInteger)
	if err != nil {
		return 0, fmt.Errorf("certinfo: version: %w", err)
	}

	stored, err := x509der.DecodeSmallInt(der, inner)
	if err != nil {
		return 0, fmt.Errorf("certinfo: version: %w", err)
	}

	version := stored + 1
	if version > 3 {
		return 0, fmt.Errorf("%w: v%d", ErrUnsupportedVersion, version)
	}
	return version, nil
}

// decodeAlgorithm reads an AlgorithmIdentifier at pos and returns its OID.
// Parameters after the OID are not interpreted.
func decodeAlgorithm(der []byte, pos, limit int) (x509der.TLV, string, error) {
	seq, err := x509der.ExpectTLV(der, pos, limit, x509der.TagSequence)
	if err != nil {
		return x509der.TLV{}, "", err
	}

	oidTLV, err := x509der.ExpectTLV(der, seq.ValueOffset, seq.End(), x509der.TagOID)
	if err != nil {
		return x509der.TLV{}, "", err
	}

	oid, err := x509der.DecodeOID(der, oidTLV.ValueOffset, oidTLV.Length)
	if err != nil {
		return x509der.TLV{}, "", err
	}
	return seq, oid, nil
}

func decodeName(der []byte, pos, limit int) (string, int, error) {
	seq, err := x509der.ExpectTLV(der, pos, limit, x509der.TagSequence)
	if err != nil {
		return "", 0, err
	}

	attrs, err := ParseName(der, seq.ValueOffset, seq.Length)
	if err != nil {
		return "", 0, err
	}
	return FormatName(attrs), seq.End(), nil
}

func decodeValidity(der []byte, validity x509der.TLV) (notBefore, notAfter time.Time, err error) {
	nb, err := x509der.ReadTLVWithin(der, validity.ValueOffset, validity.End())
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if notBefore, err = x509der.DecodeTime(der, nb); err != nil {
		return time.Time{}, time.Time{}, err
	}

	na, err := x509der.ReadTLVWithin(der, nb.End(), validity.End())
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if notAfter, err = x509der.DecodeTime(der, na); err != nil {
		return time.Time{}, time.Time{}, err
	}

	return notBefore, notAfter, nil
}

// decodeSignature reads the signatureAlgorithm and signatureValue that follow
// the TBSCertificate and returns the signature bits as whole octets.
func decodeSignature(der []byte, pos, limit int) (HexBytes, error) {
	alg, _, err := decodeAlgorithm(der, pos, limit)
	if err != nil {
		return nil, err
	}

	bits, err := x509der.ExpectTLV(der, alg.End(), limit, x509der.TagBitString)
	if err != nil {
		return nil, err
	}
	if bits.Length == 0 {
		return nil, x509der.Errorf(x509der.ErrStructuralMismatch, bits.Offset, "BIT STRING without unused-bits octet")
	}

	content := bits.Value(der)
	sig := make(HexBytes, len(content)-1)
	copy(sig, content[1:])
	return sig, nil
}
