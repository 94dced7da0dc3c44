package main

import "flag"

// Options holds CLI options for isodump.
type Options struct {
	SchemaPath string
	Frame      string
	LogLevel   string
	JSON       bool
	All        bool
	Verify     bool
	Dump       bool
	Message    string
}

// ParseFlags parses CLI flags from args and returns Options.
func ParseFlags(args []string) Options {
	fs := flag.NewFlagSet("isodump", flag.ExitOnError)
	var opts Options
	fs.StringVar(&opts.SchemaPath, "schema", "", "Path to a JSON, TOML or YAML schema file")
	fs.StringVar(&opts.Frame, "frame", "none", "Length indicator in front of the message: none, ascii, hex or binary")
	fs.StringVar(&opts.LogLevel, "log-level", "info", "Log level")
	fs.BoolVar(&opts.JSON, "json", false, "Print fields as a JSON object")
	fs.BoolVar(&opts.All, "all", false, "Include absent fields")
	fs.BoolVar(&opts.Verify, "verify", false, "Compose the parsed message and compare it with the input")
	fs.BoolVar(&opts.Dump, "dump", false, "Dump the parsed fields with spew")
	_ = fs.Parse(args)
	opts.Message = fs.Arg(0)
	return opts
}
