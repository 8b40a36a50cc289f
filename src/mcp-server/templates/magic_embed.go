// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package templates

import (
	"embed"
	"io/fs"
)

//go:embed *.md
var embeddedFS embed.FS

// EmbedFS is the read-only view of the embedded template files.
type EmbedFS interface {
	// ReadFile reads the named file and returns the contents.
	ReadFile(name string) ([]byte, error)

	// ReadDir reads the named directory and returns a list of directory entries.
	ReadDir(name string) ([]fs.DirEntry, error)

	// Open opens the named file for reading.
	Open(name string) (fs.File, error)
}

type embedFS struct{ fs embed.FS }

func (e *embedFS) ReadFile(name string) ([]byte, error) { return e.fs.ReadFile(name) }

func (e *embedFS) ReadDir(name string) ([]fs.DirEntry, error) { return e.fs.ReadDir(name) }

func (e *embedFS) Open(name string) (fs.File, error) { return e.fs.Open(name) }

// File names inside [MagicEmbed].
const (
	// InstructionsFile is a text/template rendered with the registered tools.
	InstructionsFile = "instructions.md"

	// ReportFieldsFile documents every field of a decoded certificate report.
	ReportFieldsFile = "report-fields.md"
)

// MagicEmbed is the embedded filesystem holding the server templates.
//
// Example:
//
//	content, err := templates.MagicEmbed.ReadFile(templates.ReportFieldsFile)
//	if err != nil {
//		return fmt.Errorf("failed to read report fields: %w", err)
//	}
var MagicEmbed EmbedFS = &embedFS{fs: embeddedFS}
