// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gc

import "bytes"

// mockBuffer is a Buffer backed by bytes.Buffer, used to check that Put
// ignores buffers it did not hand out.
type mockBuffer struct {
	bytes.Buffer
}

func (m *mockBuffer) Set(p []byte) {
	m.Reset()
	m.Write(p)
}

func (m *mockBuffer) SetString(s string) {
	m.Reset()
	m.WriteString(s)
}

// errorReader is a mock io.Reader that always returns an error
type errorReader struct {
	err error
}

func (e *errorReader) Read(p []byte) (n int, err error) {
	return 0, e.err
}
