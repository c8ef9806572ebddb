// Package convert turns parsed "color" records into output lines in the
// opposite representation: Endless Sky fractional records become HTML hex
// lines, and HTML hex records become fractional ES lines.
package convert

import (
	"strconv"
	"strings"

	"github.com/warp-core/colorconv/internal/config"
	"github.com/warp-core/colorconv/internal/datafile"
	"github.com/warp-core/colorconv/internal/escolor"
)

// keyword is the record type this tool converts; other records pass by
// untouched.
const keyword = "color"

// Options controls record output formatting.
type Options struct {
	// Precision is the number of significant digits for printed fractions.
	Precision int
	// OnInvalidHex selects the policy for records whose hex token does not
	// decode: config.InvalidHexSkip or config.InvalidHexEmpty.
	OnInvalidHex string
}

// DefaultOptions returns the options matching the default configuration.
func DefaultOptions() Options {
	cfg := config.DefaultConfig()
	return Options{Precision: cfg.Output.Precision, OnInvalidHex: cfg.Output.OnInvalidHex}
}

// FormatFraction prints a channel fraction with the given number of
// significant digits, shortest form ("1", "0", "0.498039").
func FormatFraction(v float64, precision int) string {
	return strconv.FormatFloat(v, 'g', precision, 64)
}

// ESRecordToHTML converts one ES color record to an HTML output line of the
// form `"<name>" #RRGGBB`. Records that are not color records, or that carry
// fewer than three channel values, are skipped: the second return is false
// and no line is produced. A fourth (alpha) value is permitted and dropped,
// since the hex form has no alpha.
func ESRecordToHTML(n datafile.Node) (string, bool) {
	if n.Token(0) != keyword || n.Size() < 5 {
		return "", false
	}
	hex := escolor.FractionsToHex(n.Value(2), n.Value(3), n.Value(4))
	return `"` + n.Token(1) + `" ` + hex, true
}

// HTMLRecordToES converts one HTML color record to an ES output line of the
// form `color"<name>" <r> <g> <b>`. Records that are not color records or
// are missing the hex token are skipped. When the hex token does not decode,
// opts.OnInvalidHex decides between skipping the record and emitting the
// name with no channel values.
func HTMLRecordToES(n datafile.Node, opts Options) (string, bool) {
	if n.Token(0) != keyword || n.Size() < 3 {
		return "", false
	}

	var sb strings.Builder
	sb.WriteString(keyword)
	sb.WriteByte('"')
	sb.WriteString(n.Token(1))
	sb.WriteByte('"')

	fractions := escolor.HexToFractions(n.Token(2))
	if fractions == nil && opts.OnInvalidHex != config.InvalidHexEmpty {
		return "", false
	}
	for _, v := range fractions {
		sb.WriteByte(' ')
		sb.WriteString(FormatFraction(v, opts.Precision))
	}
	return sb.String(), true
}

// ESToHTML converts all ES color records to HTML lines, preserving input
// order. Skipped records produce no line.
func ESToHTML(nodes []datafile.Node) []string {
	var lines []string
	for _, n := range nodes {
		if line, ok := ESRecordToHTML(n); ok {
			lines = append(lines, line)
		}
	}
	return lines
}

// HTMLToES converts all HTML color records to ES lines, preserving input
// order. Skipped records produce no line.
func HTMLToES(nodes []datafile.Node, opts Options) []string {
	var lines []string
	for _, n := range nodes {
		if line, ok := HTMLRecordToES(n, opts); ok {
			lines = append(lines, line)
		}
	}
	return lines
}
