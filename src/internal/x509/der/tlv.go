// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509der

import "math"

// MaxLengthOctets is the largest number of long-form length octets accepted.
// Four octets already describe ~4 GiB, far more than any certificate.
const MaxLengthOctets = 4

// TLV is a decoded tag-length-value header. It borrows nothing from the
// buffer; the content is buf[ValueOffset:End()].
type TLV struct {
	Offset      int  // position of the tag octet
	Tag         byte // tag octet
	Length      int  // content length
	ValueOffset int  // position of the first content octet
	TotalLength int  // tag + length header + content
}

// End returns the offset just past the content.
func (t TLV) End() int { return t.ValueOffset + t.Length }

// Value returns the content octets of t as a subslice of buf.
func (t TLV) Value(buf []byte) []byte { return buf[t.ValueOffset:t.End()] }

// ReadLength decodes the DER length header starting at offset.
//
// It returns the content length and the number of header octets consumed:
// one for the short form (0-127), 1+N for the long form with N length octets.
//
// Errors:
//   - [ErrTruncatedInput] if offset is outside buf
//   - [ErrMalformedLength] for the indefinite form, for more than
//     [MaxLengthOctets] length octets, or for length octets past the end of
//     buf (this case also matches [ErrTruncatedInput])
func ReadLength(buf []byte, offset int) (length int, consumed int, err error) {
	if offset < 0 || offset >= len(buf) {
		return 0, 0, Errorf(ErrTruncatedInput, offset, "missing length octet")
	}

	first := buf[offset]
	if first < 0x80 {
		return int(first), 1, nil
	}

	n := int(first & 0x7f)
	switch {
	case n == 0:
		return 0, 0, Errorf(ErrMalformedLength, offset, "indefinite length is not allowed in DER")
	case n > MaxLengthOctets:
		return 0, 0, Errorf(ErrMalformedLength, offset, "%d length octets exceed limit of %d", n, MaxLengthOctets)
	case n > len(buf)-offset-1:
		e := Errorf(ErrMalformedLength, offset, "%d length octets run past end of input", n)
		e.cause = ErrTruncatedInput
		return 0, 0, e
	}

	var v uint64
	for _, b := range buf[offset+1 : offset+1+n] {
		v = v<<8 | uint64(b)
	}
	if v > math.MaxInt {
		return 0, 0, Errorf(ErrMalformedLength, offset, "length %d overflows int", v)
	}

	return int(v), 1 + n, nil
}

// ReadTLV reads the TLV header at offset and checks that its content fits in buf.
func ReadTLV(buf []byte, offset int) (TLV, error) {
	return ReadTLVWithin(buf, offset, len(buf))
}

// ReadTLVWithin works like [ReadTLV] but requires the whole element to end at
// or before limit, which is usually the end of the enclosing element.
//
// Errors:
//   - [ErrTruncatedInput] if there is no tag octet at offset
//   - any error of [ReadLength]
//   - [ErrTruncatedTLV] if the content would extend past limit
func ReadTLVWithin(buf []byte, offset, limit int) (TLV, error) {
	if limit > len(buf) {
		limit = len(buf)
	}
	if offset < 0 || offset >= limit {
		return TLV{}, Errorf(ErrTruncatedInput, offset, "missing tag octet")
	}

	length, n, err := ReadLength(buf[:limit], offset+1)
	if err != nil {
		return TLV{}, err
	}

	valueOffset := offset + 1 + n
	if length > limit-valueOffset {
		return TLV{}, Errorf(ErrTruncatedTLV, offset, "%s content of %d bytes exceeds %d available",
			TagName(buf[offset]), length, limit-valueOffset)
	}

	return TLV{
		Offset:      offset,
		Tag:         buf[offset],
		Length:      length,
		ValueOffset: valueOffset,
		TotalLength: 1 + n + length,
	}, nil
}

// ExpectTLV reads the TLV at offset within limit and fails with
// [ErrStructuralMismatch] unless its tag equals tag.
func ExpectTLV(buf []byte, offset, limit int, tag byte) (TLV, error) {
	t, err := ReadTLVWithin(buf, offset, limit)
	if err != nil {
		return TLV{}, err
	}
	if t.Tag != tag {
		return TLV{}, Mismatch(offset, tag, t.Tag)
	}
	return t, nil
}

// DecodeSmallInt decodes the content of a non-negative INTEGER that must fit
// in four octets, as used for the certificate version.
func DecodeSmallInt(buf []byte, t TLV) (int, error) {
	if t.Length == 0 {
		return 0, Errorf(ErrMalformedInteger, t.Offset, "empty INTEGER")
	}
	if t.Length > 4 {
		return 0, Errorf(ErrMalformedInteger, t.Offset, "INTEGER of %d bytes is too large", t.Length)
	}

	content := t.Value(buf)
	if content[0]&0x80 != 0 {
		return 0, Errorf(ErrMalformedInteger, t.Offset, "negative INTEGER")
	}

	v := 0
	for _, b := range content {
		v = v<<8 | int(b)
	}
	return v, nil
}
