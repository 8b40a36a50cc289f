// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509der

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrMalformedLength indicates a length header that is indefinite, declares
	// more length octets than the decoder accepts, or runs past the buffer.
	ErrMalformedLength = errors.New("malformed length")

	// ErrTruncatedTLV indicates a TLV whose content range exceeds the buffer
	// or its enclosing element.
	ErrTruncatedTLV = errors.New("truncated TLV")

	// ErrTruncatedInput indicates an attempt to read a byte beyond the end of the buffer.
	ErrTruncatedInput = errors.New("truncated input")

	// ErrStructuralMismatch indicates that a fixed position in the grammar holds an unexpected tag.
	ErrStructuralMismatch = errors.New("structural mismatch")

	// ErrMalformedTime indicates a UTCTime or GeneralizedTime with a bad digit string.
	ErrMalformedTime = errors.New("malformed time")

	// ErrMalformedOID indicates an object identifier whose encoding cannot be decoded.
	ErrMalformedOID = errors.New("malformed object identifier")

	// ErrMalformedInteger indicates an INTEGER that is empty or too large for its use.
	ErrMalformedInteger = errors.New("malformed integer")
)

// ParseError describes the first failure found while walking a DER buffer.
//
// Err is one of the sentinel kinds above. Callers match on the kind with
// [errors.Is]; the remaining fields locate the failure.
type ParseError struct {
	Err    error // sentinel kind
	Offset int   // absolute byte offset of the failure

	// Expected and Found are set for structural mismatches.
	Expected byte
	Found    byte
	hasTags  bool

	Detail string

	// cause is an additional kind the error also matches (a length header
	// running past the buffer is both malformed and truncated).
	cause error
}

// Error returns a message such as
// "x509der: structural mismatch at offset 4: expected SEQUENCE (0x30), found SET (0x31)".
func (e *ParseError) Error() string {
	b := []byte("x509der: ")
	b = append(b, e.Err.Error()...)
	b = strconv.AppendInt(append(b, " at offset "...), int64(e.Offset), 10)
	if e.hasTags {
		b = append(b, ": expected "...)
		b = append(b, TagName(e.Expected)...)
		b = append(b, ", found "...)
		b = append(b, TagName(e.Found)...)
	}
	if e.Detail != "" {
		b = append(b, ": "...)
		b = append(b, e.Detail...)
	}
	return string(b)
}

// Unwrap exposes the error kinds so that [errors.Is] matches them.
func (e *ParseError) Unwrap() []error {
	if e.cause != nil {
		return []error{e.Err, e.cause}
	}
	return []error{e.Err}
}

// IsTruncated reports whether err is a [ErrTruncatedTLV] or [ErrTruncatedInput] failure.
func IsTruncated(err error) bool {
	return errors.Is(err, ErrTruncatedTLV) || errors.Is(err, ErrTruncatedInput)
}

// Errorf returns a [*ParseError] of the given kind at offset with a formatted detail.
func Errorf(kind error, offset int, format string, args ...any) *ParseError {
	e := &ParseError{Err: kind, Offset: offset}
	if format != "" {
		e.Detail = fmt.Sprintf(format, args...)
	}
	return e
}

// Mismatch returns an [ErrStructuralMismatch] error for the tag found at offset.
func Mismatch(offset int, expected, found byte) *ParseError {
	return &ParseError{
		Err:      ErrStructuralMismatch,
		Offset:   offset,
		Expected: expected,
		Found:    found,
		hasTags:  true,
	}
}
