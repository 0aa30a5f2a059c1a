// Command copsoq-score scores a response set offline and prints the laudo payload
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"copsoq/internal/platform/logger"
	"copsoq/internal/platform/net/http/bind"
	"copsoq/internal/services/laudos/domain"
	"copsoq/internal/services/laudos/service"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run writes only the payload to stdout; logs go to stderr
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("copsoq-score", flag.ContinueOnError)
	fs.SetOutput(stderr)
	in := fs.String("in", "-", "input JSON file, - for stdin")
	pretty := fs.Bool("pretty", false, "indent output")
	if err := fs.Parse(args); err != nil {
		return err
	}

	opt := logger.FromEnv()
	opt.Writer = stderr
	log := logger.New(opt).With().Str("component", "copsoq-score").Logger()

	src := stdin
	if *in != "-" && *in != "" {
		f, err := os.Open(*in)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		src = f
	}

	input, err := decode(src)
	if err != nil {
		return err
	}

	payload, err := service.BuildPreview(input)
	if err != nil {
		return err
	}
	log.Debug().
		Str("empresa", input.Entity.CompanyName).
		Int("responses", len(input.Responses)).
		Int("high", payload.Summary.High).
		Msg("scored")

	enc := json.NewEncoder(stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(payload)
}

func decode(r io.Reader) (domain.PreviewInput, error) {
	var in domain.PreviewInput
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		if errors.Is(err, io.EOF) {
			return in, errors.New("empty input")
		}
		return in, fmt.Errorf("invalid JSON: %w", err)
	}
	if dec.More() {
		return in, errors.New("unexpected trailing data")
	}
	return in, bind.Validate(in)
}
