// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package certinfo decodes the human-relevant fields of an [X.509] certificate
// from its DER encoding and renders them for display.
//
// The [Decoder] walks the Certificate and TBSCertificate structures with the
// primitives of the x509der package and produces an [Info] value: version,
// serial number, signature algorithm, issuer and subject distinguished names,
// the validity window, and the expiry status relative to the decoder's clock.
// It does not verify signatures, build chains, or read extensions.
//
// Example:
//
//	der, err := x509certs.New().Decode(pemBytes)
//	if err != nil {
//		return err
//	}
//	info, err := certinfo.New().Decode(der)
//	if err != nil {
//		return err
//	}
//	fmt.Println(info.Subject, info.StatusText(certinfo.DefaultWarnDays))
//
// All functions are pure apart from reading the clock, so a single [Decoder]
// may be shared across goroutines.
//
// [X.509]: https://grokipedia.com/page/X.509
package certinfo
