// Command isodump parses a message against a schema and prints its fields.
//
//	isodump [-schema file] [-frame ascii|hex|binary] [-json] [-all] [-verify] [-dump] [message]
//
// The message is read from the first argument, or from stdin when absent.
// Without -schema the Tieto native schema is used.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"

	iso8583 "github.com/mkadit/isoschema"
)

const envLogLevel = "ISODUMP_LOG_LEVEL"

func main() {
	opts := ParseFlags(os.Args[1:])
	logger := newLogger(opts.LogLevel)
	if err := run(opts, os.Stdin, os.Stdout, logger); err != nil {
		logger.Error().Err(err).Msg("isodump failed")
		os.Exit(1)
	}
}

func newLogger(level string) zerolog.Logger {
	if env := os.Getenv(envLogLevel); env != "" {
		level = env
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).Level(lvl).With().Timestamp().Str("app", "isodump").Logger()
}

func run(opts Options, stdin io.Reader, stdout io.Writer, logger zerolog.Logger) error {
	schema := iso8583.TietoNative
	if opts.SchemaPath != "" {
		s, err := iso8583.LoadSchemaFile(opts.SchemaPath)
		if err != nil {
			return fmt.Errorf("load schema: %w", err)
		}
		schema = s
	}
	logger.Debug().Str("schema", schema.Name()).Int("fields", schema.Len()).Msg("schema ready")

	frame, err := iso8583.ParseLengthIndicatorType(opts.Frame)
	if err != nil {
		return err
	}

	data := opts.Message
	if data == "" {
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		data = strings.TrimRight(string(raw), "\r\n")
	}

	body, rest, err := iso8583.Unframe(data, frame)
	if err != nil {
		return fmt.Errorf("unframe: %w", err)
	}
	if rest != "" {
		logger.Warn().Int("bytes", len(rest)).Msg("ignoring data after the first frame")
	}

	proc := iso8583.NewProcessor(schema, iso8583.WithLogger(logger))
	msg, err := proc.Parse(body)
	if err != nil {
		return err
	}

	if opts.Verify {
		out, err := proc.Compose(msg)
		if err != nil {
			return fmt.Errorf("compose: %w", err)
		}
		// Bitmaps are always composed in lower case hex.
		if !strings.EqualFold(out, body) {
			return fmt.Errorf("round trip mismatch:\n in: %s\nout: %s", body, out)
		}
		logger.Info().Int("size", len(out)).Msg("round trip verified")
	}

	switch {
	case opts.Dump:
		spew.Fdump(stdout, msg.ToMap(opts.All))
	case opts.JSON:
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(msg.ToMap(opts.All))
	default:
		for fv := range msg.Describe(opts.All) {
			value := fv.Value
			if !fv.Present {
				value = "-"
			}
			fmt.Fprintf(stdout, "%5s %-42s %s\n", fv.Name, fv.Label, value)
		}
	}
	return nil
}
