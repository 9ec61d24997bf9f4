// Command tokens prints the design token catalog, a sub-tree, or the list of
// leaf paths as JSON or YAML, or the whole catalog as CSS custom properties.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/okian/edgegate/pkg/tokens"
)

// Output formats.
const (
	formatJSON = "json"
	formatYAML = "yaml"
	formatCSS  = "css"
)

var (
	errUnknownFormat = errors.New("unknown format")
	errListWithPath  = errors.New("-list and -path are mutually exclusive")
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("tokens", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		format = fs.String("format", formatJSON, "Output format: json, yaml or css")
		path   = fs.String("path", "", "Dotted token path to print, e.g. colors.brand.primary")
		list   = fs.Bool("list", false, "List every leaf token path")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *list && *path != "" {
		fmt.Fprintln(stderr, "tokens:", errListWithPath)
		return 1
	}

	if strings.EqualFold(*format, formatCSS) {
		if *path != "" || *list {
			fmt.Fprintln(stderr, "tokens: -format css prints the whole catalog and takes no -path or -list")
			return 1
		}
		css, err := tokens.CSS()
		if err != nil {
			fmt.Fprintln(stderr, "tokens:", err)
			return 1
		}
		_, _ = io.WriteString(stdout, css)
		return 0
	}

	v, err := selectOutput(*path, *list)
	if err != nil {
		fmt.Fprintln(stderr, "tokens:", err)
		return 1
	}
	if err := encode(stdout, strings.ToLower(*format), v); err != nil {
		fmt.Fprintln(stderr, "tokens:", err)
		return 1
	}
	return 0
}

func selectOutput(path string, list bool) (any, error) {
	switch {
	case list:
		return tokens.Paths()
	case path != "":
		return tokens.Lookup(path)
	default:
		return tokens.Default(), nil
	}
}

func encode(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, format)
	}
}
