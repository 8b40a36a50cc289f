// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509der

import "fmt"

// Tag octets used by TBSCertificate. Only the low-tag-number form is supported,
// so every tag is exactly one octet.
const (
	TagInteger         byte = 0x02
	TagBitString       byte = 0x03
	TagOctetString     byte = 0x04
	TagNull            byte = 0x05
	TagOID             byte = 0x06
	TagUTF8String      byte = 0x0c
	TagNumericString   byte = 0x12
	TagPrintableString byte = 0x13
	TagTeletexString   byte = 0x14
	TagIA5String       byte = 0x16
	TagUTCTime         byte = 0x17
	TagGeneralizedTime byte = 0x18
	TagVisibleString   byte = 0x1a
	TagUniversalString byte = 0x1c
	TagBMPString       byte = 0x1e
	TagSequence        byte = 0x30
	TagSet             byte = 0x31

	// TagExplicitVersion is the context-specific constructed [0] tag that wraps
	// the TBSCertificate version.
	TagExplicitVersion byte = 0xa0
)

const (
	classMask     = 0xc0
	classContext  = 0x80
	tagNumberMask = 0x1f
)

var tagNames = map[byte]string{
	TagInteger:         "INTEGER",
	TagBitString:       "BIT STRING",
	TagOctetString:     "OCTET STRING",
	TagNull:            "NULL",
	TagOID:             "OBJECT IDENTIFIER",
	TagUTF8String:      "UTF8String",
	TagNumericString:   "NumericString",
	TagPrintableString: "PrintableString",
	TagTeletexString:   "TeletexString",
	TagIA5String:       "IA5String",
	TagUTCTime:         "UTCTime",
	TagGeneralizedTime: "GeneralizedTime",
	TagVisibleString:   "VisibleString",
	TagUniversalString: "UniversalString",
	TagBMPString:       "BMPString",
	TagSequence:        "SEQUENCE",
	TagSet:             "SET",
}

// TagName returns a readable name for a tag octet, e.g. "SEQUENCE (0x30)" or "[0] (0xa0)".
func TagName(tag byte) string {
	if name, ok := tagNames[tag]; ok {
		return fmt.Sprintf("%s (0x%02x)", name, tag)
	}
	if tag&classMask == classContext {
		return fmt.Sprintf("[%d] (0x%02x)", tag&tagNumberMask, tag)
	}
	return fmt.Sprintf("tag 0x%02x", tag)
}
