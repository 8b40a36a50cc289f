// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package certinfo

import (
	"encoding/hex"
	"time"
)

// Info holds the decoded fields of one certificate.
type Info struct {
	Version               int       `json:"version" yaml:"version"`
	SerialNumber          string    `json:"serialNumber" yaml:"serialNumber"`
	SignatureAlgorithm    string    `json:"signatureAlgorithm" yaml:"signatureAlgorithm"`
	SignatureAlgorithmOID string    `json:"signatureAlgorithmOid" yaml:"signatureAlgorithmOid"`
	Issuer                string    `json:"issuer" yaml:"issuer"`
	Subject               string    `json:"subject" yaml:"subject"`
	NotBefore             time.Time `json:"notBefore" yaml:"notBefore"`
	NotAfter              time.Time `json:"notAfter" yaml:"notAfter"`
	IsExpired             bool      `json:"isExpired" yaml:"isExpired"`
	DaysRemaining         int       `json:"daysRemaining" yaml:"daysRemaining"`

	// Signature is the signatureValue without its unused-bits octet. It is
	// empty when the input carries only a TBSCertificate.
	Signature HexBytes `json:"signature,omitempty" yaml:"signature,omitempty"`
}

// HexBytes is a byte slice that marshals as colon-separated lowercase hex.
type HexBytes []byte

// String returns b as colon-separated lowercase hex, e.g. "0a:1b:ff".
func (b HexBytes) String() string { return colonHex(b) }

// MarshalText implements [encoding.TextMarshaler].
func (b HexBytes) MarshalText() ([]byte, error) { return []byte(colonHex(b)), nil }

func colonHex(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	out := make([]byte, 0, len(b)*3-1)
	for i, v := range b {
		if i > 0 {
			out = append(out, ':')
		}
		out = hex.AppendEncode(out, []byte{v})
	}
	return string(out)
}

// daysUntil returns ceil((to - from) / 24h) computed on Unix seconds so that
// far-future GeneralizedTime values do not overflow [time.Duration].
func daysUntil(from, to time.Time) int {
	sec := to.Unix() - from.Unix()
	nsec := int64(to.Nanosecond() - from.Nanosecond())
	if nsec < 0 {
		sec--
		nsec += int64(time.Second)
	}

	const day = 24 * 60 * 60
	days := sec / day
	rem := sec % day
	if rem < 0 {
		days--
		rem += day
	}
	if rem > 0 || nsec > 0 {
		days++
	}
	return int(days)
}
