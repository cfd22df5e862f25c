// engine parses a file of simplified HTML markup and prints the
// resulting document tree, either as indented JSON or as re-rendered
// markup.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/luffy84217/my-first-browser-engine/pkg/dom"
	"github.com/luffy84217/my-first-browser-engine/pkg/html"
)

const version = "0.1.0"

var (
	inPath      string
	outPath     string
	format      string
	configPath  string
	maxDepth    int
	showVersion bool
)

func init() {
	flag.StringVar(&inPath, "in", "", "input markup file (default stdin)")
	flag.StringVar(&outPath, "out", "", "output file (default stdout)")
	flag.StringVar(&format, "format", "", "output format: json or html (default json)")
	flag.StringVar(&configPath, "config", "", "optional YAML config file")
	flag.IntVar(&maxDepth, "max-depth", 0, "element nesting limit (0 uses the built-in default)")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: engine [options]\n\n")
		fmt.Fprintf(os.Stderr, "Parses simplified HTML markup into a document tree.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("engine version %s\n", version)
		return
	}

	var fileCfg settings
	if configPath != "" {
		var err error
		fileCfg, err = loadConfigFile(configPath)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
	}
	cfg, err := fileCfg.merge(format, maxDepth)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	src, name, err := readInput(inPath)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}

	root, err := html.ParseWithConfig(src, html.Config{MaxDepth: cfg.MaxDepth})
	if err != nil {
		log.Fatalf("parse %s: %v", name, err)
	}

	out, err := formatTree(root, cfg.Format)
	if err != nil {
		log.Fatalf("format: %v", err)
	}

	if err := writeOutput(outPath, out); err != nil {
		log.Fatalf("write output: %v", err)
	}
}

func readInput(path string) (src, name string, err error) {
	name = path
	var data []byte
	if path == "" {
		name = "stdin"
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	// An editor-appended trailing newline is not markup.
	return strings.TrimRight(string(data), "\r\n"), name, err
}

func formatTree(root dom.Node, format string) (string, error) {
	switch format {
	case formatHTML:
		return dom.Render(root) + "\n", nil
	default:
		pretty, err := json.MarshalIndent(root, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshal tree: %w", err)
		}
		return string(pretty) + "\n", nil
	}
}

func writeOutput(path, content string) error {
	if path == "" {
		_, err := io.WriteString(os.Stdout, content)
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
