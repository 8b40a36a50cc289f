// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"bytes"
	"encoding/base64"
	"encoding/pem"
	"errors"
)

var (
	// ErrInvalidPEMBlock indicates that the provided data does not contain a valid PEM block.
	ErrInvalidPEMBlock = errors.New("x509certs: invalid PEM block")

	// ErrInvalidBlockType indicates that the PEM block type is not the expected certificate type.
	ErrInvalidBlockType = errors.New("x509certs: invalid block type")

	// ErrEmptyInput indicates that the input holds nothing but whitespace.
	ErrEmptyInput = errors.New("x509certs: empty input")
)

// Certificate extracts DER certificate bytes from [PEM] text.
// It maintains internal configuration such as the certificate block type.
//
// [PEM]: https://grokipedia.com/page/PEM#privacy-enhanced-mail
type Certificate struct {
	certBlockType string
}

// New creates a new Certificate with default settings.
func New() *Certificate {
	return &Certificate{
		certBlockType: "CERTIFICATE",
	}
}

// IsPEM checks if the data is in PEM format.
func (c *Certificate) IsPEM(data []byte) bool {
	block, _ := pem.Decode(data)
	return block != nil
}

// decodePEMBlock decodes a PEM block and checks its type.
func (c *Certificate) decodePEMBlock(data []byte) (*pem.Block, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, ErrInvalidPEMBlock
	}
	if block.Type != c.certBlockType {
		return nil, ErrInvalidBlockType
	}
	return block, nil
}

// Decode returns the DER bytes of the first certificate in data.
//
// data is either PEM text, in which case only the first block is used, or a
// bare base64 certificate body without the BEGIN/END lines. Any whitespace
// inside a bare body is ignored.
func (c *Certificate) Decode(data []byte) ([]byte, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyInput
	}

	if c.IsPEM(data) {
		block, err := c.decodePEMBlock(data)
		if err != nil {
			return nil, err
		}
		return block.Bytes, nil
	}

	return decodeBareBase64(data)
}

// EncodePEM encodes DER certificate bytes to PEM format.
func (c *Certificate) EncodePEM(der []byte) []byte {
	block := pem.Block{
		Type:  c.certBlockType,
		Bytes: der,
	}
	return pem.EncodeToMemory(&block)
}

func decodeBareBase64(data []byte) ([]byte, error) {
	compact := bytes.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n':
			return -1
		}
		return r
	}, data)

	der := make([]byte, base64.StdEncoding.DecodedLen(len(compact)))
	n, err := base64.StdEncoding.Decode(der, compact)
	if err != nil {
		return nil, ErrInvalidPEMBlock
	}
	return der[:n], nil
}
