// Command structwalk inspects JSON and YAML documents with the structwalk
// algorithms: flatten a document to dotted paths, merge several documents,
// or compare two documents for structural equality.
//
//	structwalk flatten [-d DELIM] [-m DEPTH] [-o text|json|yaml] doc.yaml
//	structwalk merge [-o json|yaml] a.json b.yaml ...
//	structwalk equal a.json b.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"dario.cat/mergo"
	goyaml "github.com/itchyny/go-yaml"
	"github.com/itchyny/timefmt-go"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"

	"github.com/structwalk/structwalk"
	"github.com/structwalk/structwalk/pkg/yamlval"
)

type config struct {
	Delimiter  string
	MaxDepth   int
	Output     string
	TimeFormat string
	Verbose    bool
	NoColor    bool
}

func defaultConfig() config {
	return config{
		Delimiter:  ".",
		MaxDepth:   -1,
		Output:     "text",
		TimeFormat: "%Y-%m-%dT%H:%M:%S%z",
	}
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	cmd, args := os.Args[1], os.Args[2:]

	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	var cfg config
	fs.StringVar(&cfg.Delimiter, "d", "", "path delimiter")
	fs.IntVar(&cfg.MaxDepth, "m", -1, "max flatten depth (-1 = unbounded)")
	fs.StringVar(&cfg.Output, "o", "", "output format: text, json or yaml")
	fs.StringVar(&cfg.TimeFormat, "t", "", "strftime format for timestamp leaves")
	fs.BoolVar(&cfg.Verbose, "v", false, "log traversal events to stderr")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable colored output")
	_ = fs.Parse(args)

	// Unset flags inherit the defaults; set flags win. MaxDepth bypasses
	// the merge: 0 is a meaningful user value, not "unset".
	maxDepth := cfg.MaxDepth
	if err := mergo.Merge(&cfg, defaultConfig()); err != nil {
		fatal(err)
	}
	cfg.MaxDepth = maxDepth

	var err error
	switch cmd {
	case "flatten":
		err = runFlatten(cfg, fs.Args())
	case "merge":
		err = runMerge(cfg, fs.Args())
	case "equal":
		err = runEqual(cfg, fs.Args())
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fatal(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: structwalk flatten|merge|equal [flags] <files...>")
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "structwalk: %v\n", err)
	os.Exit(1)
}

func runFlatten(cfg config, files []string) error {
	if len(files) != 1 {
		return fmt.Errorf("flatten wants exactly one file, got %d", len(files))
	}
	doc, err := load(files[0])
	if err != nil {
		return err
	}

	opts := structwalk.FlattenOptions{
		Delimiter: cfg.Delimiter,
		MaxDepth:  cfg.MaxDepth,
	}
	if cfg.Verbose {
		opts.Logger = structwalk.NewLogger(structwalk.LevelDebug, os.Stderr).
			With(map[string]any{"file": files[0]})
	}
	flat, err := structwalk.FlattenObject(doc, opts)
	if err != nil {
		return err
	}

	if cfg.Output != "text" {
		return emit(cfg.Output, flat)
	}

	paths := make([]string, 0, len(flat))
	width := 0
	for p := range flat {
		paths = append(paths, p)
		if w := runewidth.StringWidth(p); w > width {
			width = w
		}
	}
	sort.Strings(paths)

	color := !cfg.NoColor && isatty.IsTerminal(os.Stdout.Fd())
	for _, p := range paths {
		pad := strings.Repeat(" ", width-runewidth.StringWidth(p))
		if color {
			fmt.Printf("\x1b[36m%s\x1b[0m%s  %s\n", p, pad, renderLeaf(flat[p], cfg))
		} else {
			fmt.Printf("%s%s  %s\n", p, pad, renderLeaf(flat[p], cfg))
		}
	}
	return nil
}

func renderLeaf(v any, cfg config) string {
	switch t := v.(type) {
	case time.Time:
		return timefmt.Format(t, cfg.TimeFormat)
	case string:
		return fmt.Sprintf("%q", t)
	case nil:
		return "null"
	default:
		data, err := json.Marshal(yamlval.Plain(v))
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(data)
	}
}

func runMerge(cfg config, files []string) error {
	if len(files) < 2 {
		return fmt.Errorf("merge wants at least two files, got %d", len(files))
	}
	docs := make([]any, len(files))
	for i, f := range files {
		doc, err := load(f)
		if err != nil {
			return err
		}
		docs[i] = doc
	}
	merged, err := structwalk.DeepMerge(docs...)
	if err != nil {
		return err
	}
	out := cfg.Output
	if out == "text" {
		out = "json"
	}
	return emit(out, merged)
}

func runEqual(cfg config, files []string) error {
	if len(files) != 2 {
		return fmt.Errorf("equal wants exactly two files, got %d", len(files))
	}
	a, err := load(files[0])
	if err != nil {
		return err
	}
	b, err := load(files[1])
	if err != nil {
		return err
	}
	if structwalk.DeepEquals(a, b) {
		fmt.Println("true")
		return nil
	}
	fmt.Println("false")
	os.Exit(1)
	return nil
}

func emit(format string, v any) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(yamlval.Plain(v), "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	case "yaml":
		data, err := goyaml.Marshal(yamlval.Plain(v))
		if err != nil {
			return err
		}
		fmt.Print(string(data))
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	return nil
}

func load(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlval.Decode(data)
	default:
		var doc any
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return doc, nil
	}
}
