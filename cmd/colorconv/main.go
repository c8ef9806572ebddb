// Package main implements colorconv, a converter between the fractional
// RGB(A) color values used by Endless Sky data files and 24-bit hexadecimal
// HTML color codes.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"strconv"
	"strings"
	"syscall"
	"time"

	rootpkg "github.com/warp-core/colorconv"
	"github.com/warp-core/colorconv/internal/config"
	"github.com/warp-core/colorconv/internal/convert"
	"github.com/warp-core/colorconv/internal/escolor"
	"github.com/warp-core/colorconv/internal/fetch"
	"github.com/warp-core/colorconv/internal/logger"
	"github.com/warp-core/colorconv/internal/output"
	"github.com/warp-core/colorconv/internal/paths"
	"github.com/warp-core/colorconv/internal/watch"
)

// Exit codes. Missing or broken arguments exit with [exitUsage]; an
// invocation that matches none of the recognized forms exits with
// [exitNoMatch]. The distinction is part of the tool's contract.
const (
	exitOK      = 0
	exitUsage   = 1
	exitNoMatch = 2
)

// Conversion modes.
const (
	modeESToHex = "es-to-hex"
	modeHexToES = "hex-to-es"
)

// ///////////////////////////////////////////////
// Version
// ///////////////////////////////////////////////

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

// resolveVersion returns the build version string. If [version] was set via
// ldflags at build time it is returned as-is; otherwise VCS revision and
// dirty state embedded by the Go toolchain are used to construct a
// "dev+<hash>" tag.
func resolveVersion() string {
	if version != "dev" {
		return version
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return version
	}
	var revision string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if revision == "" {
		return version
	}
	hash := revision[:min(7, len(revision))]
	if dirty {
		return "dev+" + hash + ".dirty"
	}
	return "dev+" + hash
}

// ///////////////////////////////////////////////
// Usage
// ///////////////////////////////////////////////

// printUsage writes the help text to w.
func printUsage(w io.Writer) {
	fmt.Fprint(w, `colorconv converts between Endless Sky colors and HTML color codes.

Usage:
  colorconv --es-to-hex <source> [-o <file>] [--watch]
  colorconv --hex-to-es <source> [-o <file>] [--watch]
  colorconv <r> <g> <b> [<a>]
  colorconv #<rrggbb>

Modes:
  --es-to-hex <source>   Read Endless Sky colors from the source and print
                         them as 24 bit hexadecimal HTML color codes.
  --hex-to-es <source>   Read 24 bit hexadecimal HTML colors from the source
                         and print them in the Endless Sky color format.
  <r> <g> <b> [<a>]      Convert one Endless Sky color to HTML format.
  #<rrggbb>              Convert one HTML color to Endless Sky format.

A source is a file path, a glob pattern such as 'data/**/*.txt', or an
http(s) URL.

Formats:
  Endless Sky: color <name> <r#> <g#> <b#> [<a#>]
  24 bit hex:  color <name> #<0xrr><0xgg><0xbb>

Options:
  -o <file>          Write output to the file (atomically) instead of stdout.
  --watch            With a file mode and -o, keep running and re-convert
                     whenever the source files change.
  --data-dir <dir>   Directory for config and logs (default ~/`+paths.DataDirRel+`).
  --version          Print the version and exit.
`)
}

// defaultDataDir returns the default directory for colorconv config and
// logs, typically ~/.colorconv. Falls back to ./.colorconv if the home
// directory cannot be determined.
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", paths.DataDirRel)
	}
	return filepath.Join(home, paths.DataDirRel)
}

// ///////////////////////////////////////////////
// Inline Conversions
// ///////////////////////////////////////////////

// parseInlineFractions parses 3 or 4 command-line arguments as channel
// fractions. Returns false when the count is wrong or any argument is not
// numeric.
func parseInlineFractions(args []string) ([]float64, bool) {
	if len(args) < 3 || len(args) > 4 {
		return nil, false
	}
	vals := make([]float64, 0, len(args))
	for _, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, false
		}
		vals = append(vals, v)
	}
	return vals, true
}

// inlineHexToES prints the fractional form of one hex color. Malformed hex
// decodes to nothing, so nothing is printed and the exit stays successful.
func inlineHexToES(hex string, precision int, stdout io.Writer) int {
	fractions := escolor.HexToFractions(hex)
	if fractions == nil {
		return exitOK
	}
	parts := make([]string, len(fractions))
	for i, v := range fractions {
		parts[i] = convert.FormatFraction(v, precision)
	}
	fmt.Fprintln(stdout, strings.Join(parts, " "))
	return exitOK
}

// ///////////////////////////////////////////////
// File Modes
// ///////////////////////////////////////////////

// fileMode runs one file-based conversion, optionally staying resident in
// watch mode. Output goes to outPath when set, stdout otherwise.
func fileMode(mode, src, outPath string, watchMode bool, cfg *config.Config, stdout, stderr io.Writer) int {
	opts := convert.Options{
		Precision:    cfg.Output.Precision,
		OnInvalidHex: cfg.Output.OnInvalidHex,
	}
	fetcher := fetch.New(cfg.Fetch.RetryMax, time.Duration(cfg.Fetch.TimeoutSeconds)*time.Second)

	runOnce := func() error {
		nodes, err := convert.ReadSource(src, fetcher)
		if err != nil {
			return err
		}
		var lines []string
		if mode == modeESToHex {
			lines = convert.ESToHTML(nodes)
		} else {
			lines = convert.HTMLToES(nodes, opts)
		}
		slog.Info("converted source", "mode", mode, "source", src, "records", len(nodes), "lines", len(lines))
		if outPath != "" {
			return output.WriteFile(outPath, lines)
		}
		return output.WriteLines(stdout, lines)
	}

	if err := runOnce(); err != nil {
		slog.Error("conversion failed", "mode", mode, "source", src, "error", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}
	if !watchMode {
		return exitOK
	}

	return watchLoop(src, runOnce, outPath, stderr)
}

// watchLoop re-runs the conversion whenever a source file changes, until
// interrupted. Conversion errors in the loop are logged but do not stop
// watching; a transient half-saved source should not kill the session.
func watchLoop(src string, runOnce func() error, outPath string, stderr io.Writer) int {
	if outPath == "" {
		fmt.Fprintln(stderr, "Error: --watch requires -o <file>")
		return exitUsage
	}
	if fetch.IsURL(src) {
		fmt.Fprintln(stderr, "Error: --watch only supports local sources")
		return exitUsage
	}

	files, err := convert.ExpandSource(src)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}
	w, err := watch.New(files)
	if err != nil {
		slog.Error("failed to create watcher", "error", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}
	defer w.Close()
	if w.Polling() {
		slog.Info("watching sources via polling", "files", len(files))
	} else {
		slog.Info("watching sources", "files", len(files))
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	for {
		select {
		case <-sig:
			slog.Info("shutting down")
			return exitOK
		case <-w.Events():
			if err := runOnce(); err != nil {
				slog.Warn("conversion failed, keeping last output", "error", err)
			}
		}
	}
}

// ///////////////////////////////////////////////
// Main
// ///////////////////////////////////////////////

// run parses arguments and dispatches to the selected conversion.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stderr)
		return exitUsage
	}

	fs := flag.NewFlagSet("colorconv", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	esToHex := fs.String("es-to-hex", "", "read ES colors from the source, print HTML codes")
	hexToES := fs.String("hex-to-es", "", "read HTML colors from the source, print ES colors")
	outPath := fs.String("o", "", "write output to the file instead of stdout")
	watchMode := fs.Bool("watch", false, "re-convert when source files change")
	dataDir := fs.String("data-dir", defaultDataDir(), "directory for config and logs")
	showVersion := fs.Bool("version", false, "print the version and exit")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n\n", err)
		printUsage(stderr)
		return exitUsage
	}

	if *showVersion {
		fmt.Fprintln(stdout, "colorconv "+resolveVersion())
		return exitOK
	}
	if *esToHex != "" && *hexToES != "" {
		fmt.Fprintln(stderr, "Error: --es-to-hex and --hex-to-es are mutually exclusive")
		return exitUsage
	}

	if *esToHex != "" || *hexToES != "" {
		mode, src := modeESToHex, *esToHex
		if *hexToES != "" {
			mode, src = modeHexToES, *hexToES
		}

		if err := os.MkdirAll(*dataDir, 0o755); err != nil {
			fmt.Fprintf(stderr, "Error: create data dir: %v\n", err)
			return exitUsage
		}
		dirs := paths.DataDir{Root: *dataDir}
		if _, err := os.Stat(dirs.Config()); os.IsNotExist(err) {
			if writeErr := os.WriteFile(dirs.Config(), rootpkg.DefaultConfigTOML, 0o644); writeErr != nil {
				fmt.Fprintf(stderr, "warning: failed to write default config: %v\n", writeErr)
			}
		}
		cfg, err := config.Load(*dataDir)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitUsage
		}
		log, closer := logger.New(dirs.Log(),
			logger.ParseLevel(cfg.Log.Level), cfg.Log.MaxSizeMB)
		defer closer.Close()
		slog.SetDefault(log)
		slog.Info("colorconv starting", "version", resolveVersion(), "mode", mode)

		return fileMode(mode, src, *outPath, *watchMode, cfg, stdout, stderr)
	}

	cfg, err := config.Load(*dataDir)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	rest := fs.Args()
	if len(rest) > 0 && strings.HasPrefix(rest[0], "#") {
		return inlineHexToES(rest[0], cfg.Output.Precision, stdout)
	}
	if vals, ok := parseInlineFractions(rest); ok {
		fmt.Fprintln(stdout, escolor.FractionsToHex(vals[0], vals[1], vals[2]))
		return exitOK
	}

	printUsage(stderr)
	return exitNoMatch
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
