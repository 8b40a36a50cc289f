// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"

	"github.com/zhiweicoding/devtoolbox/src/internal/config"
	"github.com/zhiweicoding/devtoolbox/src/logger"
	"github.com/zhiweicoding/devtoolbox/src/mcp-server/templates"
	"github.com/zhiweicoding/devtoolbox/src/version"
)

var appVersion = version.Version // default version

// GetVersion returns the version reported by the server.
// It is the [version.Version] default until [Run] is called with another value.
func GetVersion() string {
	return appVersion
}

// newServer builds the MCP server with the default tools, resources, and instructions.
func newServer(cfg *config.Config, version string) (*server.MCPServer, error) {
	tools := createTools()

	instructions, err := loadInstructions(templates.MagicEmbed, tools)
	if err != nil {
		return nil, fmt.Errorf("failed to load instructions: %w", err)
	}

	return NewServerBuilder().
		WithConfig(cfg).
		WithVersion(version).
		WithTools(tools...).
		WithResources(createResources(templates.MagicEmbed, version, tools)...).
		WithInstructions(instructions).
		Build()
}

// Run starts the MCP server over stdio and blocks until stdin closes or the
// process receives SIGINT or SIGTERM.
//
// Parameters:
//   - version: Version string reported to clients (e.g., "0.1.0")
//
// Returns:
//   - error: Configuration or build errors, the stdio server error, or a
//     "server shutdown" error wrapping [context.Canceled] on signal
//
// Configuration is loaded from the file named by CERT_DECODER_CONFIG_FILE, if set.
// Diagnostics are written as JSON lines to stderr; stdout carries the protocol only.
func Run(version string) error {
	appVersion = version

	cfg, err := config.Load("")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.NewJSONLogger(os.Stderr, cfg.Logging.Silent)

	s, err := newServer(cfg, version)
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("%s %s listening on stdio", serverName, version)
	err = serve(ctx, s, os.Stdin, os.Stdout)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("server stopped: %v", err)
	}
	return err
}

// serve runs s over in/out until in is exhausted or ctx is cancelled.
func serve(ctx context.Context, s *server.MCPServer, in io.Reader, out io.Writer) error {
	stdioServer := server.NewStdioServer(s)

	errChan := make(chan error, 1)
	go func() {
		errChan <- stdioServer.Listen(ctx, in, out)
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return fmt.Errorf("server shutdown: %w", ctx.Err())
	}
}
