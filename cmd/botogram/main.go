package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"

	botogram "github.com/Haloghen/botogram"
	"github.com/Haloghen/botogram/objects"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "botogram payload inspector\n\nUsage:\n  botogram decode -type NAME [-in FILE] [-strict] [-fail-fast] [-coerce-strings] [-v]\n  botogram schema -type NAME\n  botogram types\n\nNotes:\n  - FILE defaults to stdin; .yaml/.yml files are read as YAML, anything else as JSON.")
}

// run returns the process exit code: 0 ok, 1 payload or I/O error, 2 usage.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return 2
	}
	switch args[0] {
	case "decode":
		return decodeCmd(args[1:], stdin, stdout, stderr)
	case "schema":
		return schemaCmd(args[1:], stdout, stderr)
	case "types":
		for _, n := range objects.Names() {
			fmt.Fprintln(stdout, n)
		}
		return 0
	default:
		usage(stderr)
		return 2
	}
}

func decodeCmd(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var typeName, in string
	var strict, failFast, coerce, verbose bool
	fs.StringVar(&typeName, "type", "", "entity name (see: botogram types)")
	fs.StringVar(&in, "in", "-", "input file, - for stdin")
	fs.BoolVar(&strict, "strict", false, "reject unknown and repeated keys")
	fs.BoolVar(&failFast, "fail-fast", false, "stop at the first issue")
	fs.BoolVar(&coerce, "coerce-strings", false, "accept numeric strings for number fields")
	fs.BoolVar(&verbose, "v", false, "enable verbose logs")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	logf := func(format string, a ...any) {
		if verbose {
			fmt.Fprintf(stderr, format+"\n", a...)
		}
	}
	kind, ok := objects.Lookup(typeName)
	if !ok {
		fmt.Fprintf(stderr, "decode: unknown type %q\n", typeName)
		return 2
	}

	data, err := readInput(in, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "decode: %v\n", err)
		return 1
	}
	logf("decode: type=%s in=%s bytes=%d", kind.Name, in, len(data))

	var raw any
	switch {
	case isYAML(in):
		raw, err = botogram.DecodeYAML(data)
	case strict:
		raw, err = botogram.DecodeJSONStrict(data)
	default:
		raw, err = botogram.DecodeJSON(data)
	}
	if err != nil {
		return reportIssues(stderr, err)
	}

	opt := botogram.Options{FailFast: failFast, CoerceNumericStrings: coerce}
	if strict {
		opt.Unknown = botogram.UnknownStrict
	}
	ctx := botogram.WithOptions(context.Background(), opt)
	v, err := kind.Construct(ctx, raw, nil)
	if err != nil {
		return reportIssues(stderr, err)
	}
	logf("decode: constructed %T", v)
	if fb, ok := v.(botogram.FileBearer); ok {
		logf("decode: file_id=%s", fb.FileRef().ID)
	}
	return writeJSON(stdout, stderr, kind.Serialize(v))
}

func schemaCmd(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("schema", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var typeName string
	fs.StringVar(&typeName, "type", "", "entity name (see: botogram types)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	kind, ok := objects.Lookup(typeName)
	if !ok {
		fmt.Fprintf(stderr, "schema: unknown type %q\n", typeName)
		return 2
	}
	return writeJSON(stdout, stderr, kind.JSONSchema())
}

func readInput(in string, stdin io.Reader) ([]byte, error) {
	if in == "" || in == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(in)
}

func isYAML(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func writeJSON(stdout, stderr io.Writer, v any) int {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(stderr, "encode: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdout, string(b))
	return 0
}

func reportIssues(stderr io.Writer, err error) int {
	iss, ok := botogram.AsIssues(err)
	if !ok {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	for _, it := range iss {
		fmt.Fprintf(stderr, "%s\t%s\t%s\n", it.Path, it.Code, it.Message)
	}
	return 1
}
