// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger_test

import (
	"io"
	"testing"

	"github.com/zhiweicoding/devtoolbox/src/logger"
)

func BenchmarkJSONLogger_Printf(b *testing.B) {
	log := logger.NewJSONLogger(io.Discard, false)

	b.ReportAllocs()
	for b.Loop() {
		log.Printf("decoded %s: %s", "cert.pem", "CN=www.google.com")
	}
}

func BenchmarkJSONLogger_PrintfConcurrent(b *testing.B) {
	log := logger.NewJSONLogger(io.Discard, false)

	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			log.Printf("decoded %s: %s", "cert.pem", "CN=www.google.com")
		}
	})
}

func BenchmarkJSONLogger_Silent(b *testing.B) {
	log := logger.NewJSONLogger(io.Discard, true)

	b.ReportAllocs()
	for b.Loop() {
		log.Printf("decoded %s", "cert.pem")
	}
}

func BenchmarkCLILogger_Printf(b *testing.B) {
	log := logger.NewCLILogger()
	log.SetOutput(io.Discard)

	b.ReportAllocs()
	for b.Loop() {
		log.Printf("decoded %s", "cert.pem")
	}
}
