// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509der_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	x509der "github.com/zhiweicoding/devtoolbox/src/internal/x509/der"
)

func element(tag byte, content string) ([]byte, x509der.TLV) {
	buf := append([]byte{tag, byte(len(content))}, content...)
	return buf, x509der.TLV{Tag: tag, Length: len(content), ValueOffset: 2, TotalLength: len(buf)}
}

func TestDecodeTime(t *testing.T) {
	tests := []struct {
		name    string
		tag     byte
		content string
		want    time.Time
	}{
		{name: "UTCTime 2023", tag: x509der.TagUTCTime, content: "230615120000Z", want: time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC)},
		{name: "UTCTime 1999", tag: x509der.TagUTCTime, content: "990101000000Z", want: time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "UTCTime Pivot 2049", tag: x509der.TagUTCTime, content: "491231235959Z", want: time.Date(2049, 12, 31, 23, 59, 59, 0, time.UTC)},
		{name: "UTCTime Pivot 1950", tag: x509der.TagUTCTime, content: "500101000000Z", want: time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "UTCTime Without Z", tag: x509der.TagUTCTime, content: "200101000000", want: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "GeneralizedTime", tag: x509der.TagGeneralizedTime, content: "20991231235959Z", want: time.Date(2099, 12, 31, 23, 59, 59, 0, time.UTC)},
		{name: "GeneralizedTime Leap Day", tag: x509der.TagGeneralizedTime, content: "20240229000000Z", want: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, tlv := element(tt.tag, tt.content)
			got, err := x509der.DecodeTime(buf, tlv)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s, want %s", got, tt.want)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestDecodeTimeErrors(t *testing.T) {
	tests := []struct {
		name    string
		tag     byte
		content string
		wantErr error
	}{
		{name: "Short", tag: x509der.TagUTCTime, content: "2306151200Z", wantErr: x509der.ErrMalformedTime},
		{name: "Non Digit", tag: x509der.TagUTCTime, content: "23061512000AZ", wantErr: x509der.ErrMalformedTime},
		{name: "Offset Suffix", tag: x509der.TagUTCTime, content: "230615120000+0100", wantErr: x509der.ErrMalformedTime},
		{name: "Month 13", tag: x509der.TagUTCTime, content: "231315120000Z", wantErr: x509der.ErrMalformedTime},
		{name: "Day 32", tag: x509der.TagUTCTime, content: "230132120000Z", wantErr: x509der.ErrMalformedTime},
		{name: "February 30", tag: x509der.TagGeneralizedTime, content: "20230230000000Z", wantErr: x509der.ErrMalformedTime},
		{name: "Hour 24", tag: x509der.TagGeneralizedTime, content: "20230101240000Z", wantErr: x509der.ErrMalformedTime},
		{name: "Day Zero", tag: x509der.TagGeneralizedTime, content: "20230100000000Z", wantErr: x509der.ErrMalformedTime},
		{name: "Generalized With UTC Length", tag: x509der.TagGeneralizedTime, content: "230615120000Z", wantErr: x509der.ErrMalformedTime},
		{name: "Wrong Tag", tag: x509der.TagPrintableString, content: "230615120000Z", wantErr: x509der.ErrStructuralMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, tlv := element(tt.tag, tt.content)
			_, err := x509der.DecodeTime(buf, tlv)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
