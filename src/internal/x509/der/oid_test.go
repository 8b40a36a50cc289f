// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509der_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	x509der "github.com/zhiweicoding/devtoolbox/src/internal/x509/der"
)

func TestDecodeOID(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{name: "SHA256withRSA", input: []byte{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x0b}, want: "1.2.840.113549.1.1.11"},
		{name: "Common Name", input: []byte{0x55, 0x04, 0x03}, want: "2.5.4.3"},
		{name: "ECDSA-SHA384", input: []byte{0x2a, 0x86, 0x48, 0xce, 0x3d, 0x04, 0x03, 0x03}, want: "1.2.840.10045.4.3.3"},
		{name: "Ed25519", input: []byte{0x2b, 0x65, 0x70}, want: "1.3.101.112"},
		{name: "First Arc Zero", input: []byte{0x27}, want: "0.39"},
		{name: "Large Second Arc", input: []byte{0x88, 0x37, 0x03}, want: "2.999.3"},
		{name: "Single Subidentifier", input: []byte{0x50}, want: "2.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := x509der.DecodeOID(tt.input, 0, len(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("Content At Offset", func(t *testing.T) {
		buf := []byte{0x06, 0x03, 0x55, 0x04, 0x0a}
		got, err := x509der.DecodeOID(buf, 2, 3)
		require.NoError(t, err)
		assert.Equal(t, "2.5.4.10", got)
	})
}

func TestDecodeOIDErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		offset  int
		length  int
		wantErr error
	}{
		{name: "Empty", input: []byte{}, length: 0, wantErr: x509der.ErrMalformedOID},
		{name: "Unterminated", input: []byte{0x2a, 0x86}, length: 2, wantErr: x509der.ErrMalformedOID},
		{
			name:    "Overflow",
			input:   []byte{0x2a, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f},
			length:  12,
			wantErr: x509der.ErrMalformedOID,
		},
		{name: "Range Past End", input: []byte{0x2a}, length: 4, wantErr: x509der.ErrTruncatedInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := x509der.DecodeOID(tt.input, tt.offset, tt.length)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestOIDName(t *testing.T) {
	assert.Equal(t, "SHA256withRSA", x509der.OIDName("1.2.840.113549.1.1.11"))
	assert.Equal(t, "CN", x509der.OIDName("2.5.4.3"))
	assert.Equal(t, "1.2.3.4", x509der.OIDName("1.2.3.4"))

	name, ok := x509der.LookupOID("2.5.4.11")
	assert.True(t, ok)
	assert.Equal(t, "OU", name)

	_, ok = x509der.LookupOID("1.2.3.4")
	assert.False(t, ok)
}
