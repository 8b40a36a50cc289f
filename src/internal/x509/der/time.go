// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509der

import "time"

// DecodeTime decodes a UTCTime or GeneralizedTime element described by t.
// Any other tag is reported as [ErrStructuralMismatch] against UTCTime.
func DecodeTime(buf []byte, t TLV) (time.Time, error) {
	switch t.Tag {
	case TagUTCTime:
		return DecodeUTCTime(t.Value(buf), t.Offset)
	case TagGeneralizedTime:
		return DecodeGeneralizedTime(t.Value(buf), t.Offset)
	default:
		return time.Time{}, Mismatch(t.Offset, TagUTCTime, t.Tag)
	}
}

// DecodeUTCTime decodes YYMMDDHHMMSS with an optional trailing 'Z'.
// Two-digit years below 50 map to 20YY, the rest to 19YY.
// offset is only used for error reporting.
func DecodeUTCTime(content []byte, offset int) (time.Time, error) {
	digits, err := stripZulu(content, 12, offset)
	if err != nil {
		return time.Time{}, err
	}

	yy, err := atoi(digits[0:2], offset)
	if err != nil {
		return time.Time{}, err
	}
	year := 1900 + yy
	if yy < 50 {
		year = 2000 + yy
	}

	return civil(year, digits[2:], offset)
}

// DecodeGeneralizedTime decodes YYYYMMDDHHMMSS with an optional trailing 'Z'.
func DecodeGeneralizedTime(content []byte, offset int) (time.Time, error) {
	digits, err := stripZulu(content, 14, offset)
	if err != nil {
		return time.Time{}, err
	}

	year, err := atoi(digits[0:4], offset)
	if err != nil {
		return time.Time{}, err
	}

	return civil(year, digits[4:], offset)
}

func stripZulu(content []byte, n, offset int) ([]byte, error) {
	switch {
	case len(content) == n:
		return content, nil
	case len(content) == n+1 && content[n] == 'Z':
		return content[:n], nil
	default:
		return nil, Errorf(ErrMalformedTime, offset, "expected %d digits with optional Z, got %q", n, content)
	}
}

// civil builds a UTC time from MMDDHHMMSS and rejects out-of-range fields
// instead of letting time.Date normalize them.
func civil(year int, rest []byte, offset int) (time.Time, error) {
	var f [5]int
	for i := range f {
		v, err := atoi(rest[2*i:2*i+2], offset)
		if err != nil {
			return time.Time{}, err
		}
		f[i] = v
	}
	month, day, hour, minute, second := f[0], f[1], f[2], f[3], f[4]

	if month < 1 || month > 12 || day < 1 || hour > 23 || minute > 59 || second > 59 {
		return time.Time{}, Errorf(ErrMalformedTime, offset, "field out of range in %q", rest)
	}

	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)
	if t.Day() != day {
		return time.Time{}, Errorf(ErrMalformedTime, offset, "day %d does not exist in %d-%02d", day, year, month)
	}
	return t, nil
}

func atoi(digits []byte, offset int) (int, error) {
	v := 0
	for _, c := range digits {
		if c < '0' || c > '9' {
			return 0, Errorf(ErrMalformedTime, offset, "non-digit %q", c)
		}
		v = v*10 + int(c-'0')
	}
	return v, nil
}
