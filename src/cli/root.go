// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/zhiweicoding/devtoolbox/src/internal/config"
	"github.com/zhiweicoding/devtoolbox/src/internal/helper/gc"
	"github.com/zhiweicoding/devtoolbox/src/internal/helper/posix"
	"github.com/zhiweicoding/devtoolbox/src/internal/x509/certinfo"
	"github.com/zhiweicoding/devtoolbox/src/logger"
)

var (
	// ErrDecodeFailed indicates that at least one input of a multi-file run could not be decoded.
	ErrDecodeFailed = errors.New("cli: one or more certificates failed to decode")

	// ErrNoInput indicates that stdin was empty and no file was given.
	ErrNoInput = errors.New("cli: no certificate input")
)

// stdinName is the source label and argument used for standard input.
const stdinName = "-"

type options struct {
	output     string
	jsonOut    bool
	yamlOut    bool
	tableOut   bool
	warnDays   int
	configPath string
}

// Execute builds the root command and runs it with os.Args.
// A nil log selects the logger described by the loaded configuration.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	return NewRootCommand(version, log).ExecuteContext(ctx)
}

// NewRootCommand returns the cert-decoder root command.
//
// log receives diagnostics; when nil, a logger is built from the loaded
// configuration writing to the command's stderr. Reports are written to the
// command's stdout or to --output.
func NewRootCommand(version string, log logger.Logger) *cobra.Command {
	opts := &options{}
	name := posix.ExecutableName("cert-decoder")

	cmd := &cobra.Command{
		Use:   name + " [FILE...]",
		Short: "Decode X.509 certificates and report their validity",
		Long: `Decode PEM-encoded X.509 certificates and print the version, serial number,
signature algorithm, issuer, subject, validity window, and expiry status.

Reads standard input when no FILE is given or FILE is "-". Only the first
certificate of each input is decoded. Several files are decoded concurrently.`,
		Example: fmt.Sprintf(`  %[1]s cert.pem
  %[1]s --table a.pem b.pem
  cat cert.pem | %[1]s --json
  %[1]s -w 60 -o report.txt cert.pem`, name),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args, log)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "", "write the report to OUTPUT_FILE (default: stdout)")
	flags.BoolVarP(&opts.jsonOut, "json", "j", false, "output JSON")
	flags.BoolVarP(&opts.yamlOut, "yaml", "y", false, "output YAML")
	flags.BoolVarP(&opts.tableOut, "table", "t", false, "output a markdown table")
	flags.IntVarP(&opts.warnDays, "warn-days", "w", 0, "days before expiry reported as expiring soon (default from config, 30)")
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file (.json, .yaml, .yml); default $"+config.EnvConfigFile)
	cmd.MarkFlagsMutuallyExclusive("json", "yaml", "table")

	return cmd
}

func (o *options) run(cmd *cobra.Command, args []string, log logger.Logger) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if log == nil {
		log = cfg.NewLogger(cmd.ErrOrStderr())
	}

	format := o.format(cfg)
	renderOpts := cfg.RenderOptions()
	if o.warnDays > 0 {
		renderOpts.WarnDays = o.warnDays
	}

	if len(args) == 0 {
		args = []string{stdinName}
	}

	inputs, err := readInputs(cmd.Context(), cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	decoder := certinfo.New()
	var report string

	if len(inputs) == 1 {
		info, err := decoder.DecodePEM(inputs[0].Data)
		if err != nil {
			return fmt.Errorf("decode %s: %w", inputs[0].Source, err)
		}
		if report, err = certinfo.Render(info, format, renderOpts); err != nil {
			return err
		}
	} else {
		results := decoder.DecodeBatch(inputs)
		if report, err = certinfo.RenderBatch(results, format, renderOpts); err != nil {
			return err
		}
		for _, r := range results {
			if r.Err != nil {
				log.Printf("decode %s: %v", r.Source, r.Err)
				err = ErrDecodeFailed
			}
		}
	}

	if werr := o.write(cmd.OutOrStdout(), report); werr != nil {
		return werr
	}
	return err
}

func (o *options) format(cfg *config.Config) certinfo.Format {
	switch {
	case o.jsonOut:
		return certinfo.FormatJSON
	case o.yamlOut:
		return certinfo.FormatYAML
	case o.tableOut:
		return certinfo.FormatTable
	default:
		return cfg.OutputFormat()
	}
}

func (o *options) write(stdout io.Writer, report string) error {
	if len(report) > 0 && report[len(report)-1] != '\n' {
		report += "\n"
	}

	if o.output != "" {
		if err := os.WriteFile(o.output, []byte(report), 0644); err != nil {
			return fmt.Errorf("error writing to output file: %w", err)
		}
		return nil
	}

	_, err := io.WriteString(stdout, report)
	return err
}

// readInputs reads every named input in order. stdin is read at most once.
func readInputs(ctx context.Context, stdin io.Reader, names []string) ([]certinfo.Input, error) {
	inputs := make([]certinfo.Input, 0, len(names))
	stdinRead := false

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var data []byte
		var err error
		if name == stdinName {
			if stdinRead {
				continue
			}
			stdinRead = true
			if data, err = readAll(stdin); err == nil && len(data) == 0 {
				err = ErrNoInput
			}
		} else {
			data, err = readFile(name)
		}
		if err != nil {
			return nil, err
		}

		inputs = append(inputs, certinfo.Input{Source: name, Data: data})
	}

	return inputs, nil
}

func readFile(name string) ([]byte, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("error reading input file: %w", err)
	}
	defer f.Close()

	data, err := readAll(f)
	if err != nil {
		return nil, fmt.Errorf("error reading input file: %w", err)
	}
	return data, nil
}

// readAll reads r through a pooled buffer and returns a private copy.
func readAll(r io.Reader) ([]byte, error) {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	if _, err := buf.ReadFrom(r); err != nil {
		return nil, err
	}
	return append([]byte(nil), buf.Bytes()...), nil
}
