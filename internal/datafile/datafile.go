// Package datafile reads the line-oriented token format used by Endless Sky
// data files. Each non-empty, non-comment line becomes a [Node]: an ordered
// list of string tokens. Double quotes and backticks group tokens that
// contain whitespace, and a line starting with '#' is a comment.
//
// Indentation (child nodes in the full game format) is ignored here; the
// converter only cares about flat "color" lines.
package datafile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ///////////////////////////////////////////////
// Node
// ///////////////////////////////////////////////

// Node is one parsed record: the tokens of a single logical line.
type Node struct {
	tokens []string
}

// Size returns the number of tokens in the node.
func (n Node) Size() int { return len(n.tokens) }

// Token returns the i-th token, or "" when i is out of range.
func (n Node) Token(i int) string {
	if i < 0 || i >= len(n.tokens) {
		return ""
	}
	return n.tokens[i]
}

// Value returns the i-th token parsed as a float64. Tokens that are missing
// or not numeric yield 0.
func (n Node) Value(i int) float64 {
	v, err := strconv.ParseFloat(n.Token(i), 64)
	if err != nil {
		return 0
	}
	return v
}

// IsNumber reports whether the i-th token parses as a float64.
func (n Node) IsNumber(i int) bool {
	_, err := strconv.ParseFloat(n.Token(i), 64)
	return err == nil
}

// ///////////////////////////////////////////////
// Parsing
// ///////////////////////////////////////////////

// Parse reads records from r, one per non-empty, non-comment line.
func Parse(r io.Reader) ([]Node, error) {
	var nodes []Node
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		tokens := splitLine(scanner.Text())
		if len(tokens) == 0 {
			continue
		}
		nodes = append(nodes, Node{tokens: tokens})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading data: %w", err)
	}
	return nodes, nil
}

// ParseFile reads records from the file at path.
func ParseFile(path string) ([]Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening data file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// ParseLine tokenizes a single line. Used for inline command-line input.
func ParseLine(line string) Node {
	return Node{tokens: splitLine(line)}
}

// splitLine breaks one line into tokens. A '"' or '`' at the start of a
// token quotes everything up to the matching character; an unterminated
// quote runs to end of line. A line whose first non-whitespace character is
// '#' is a comment. Mid-line '#' is an ordinary token character, so hex
// color tokens like #FF0000 pass through intact.
func splitLine(line string) []string {
	var tokens []string
	i := 0
	for i < len(line) {
		// Skip inter-token whitespace.
		for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
			i++
		}
		if i >= len(line) {
			break
		}
		if line[i] == '#' && len(tokens) == 0 {
			break
		}
		if q := line[i]; q == '"' || q == '`' {
			i++
			start := i
			for i < len(line) && line[i] != q {
				i++
			}
			tokens = append(tokens, line[start:i])
			if i < len(line) {
				i++ // closing quote
			}
			continue
		}
		start := i
		for i < len(line) && line[i] != ' ' && line[i] != '\t' {
			i++
		}
		tokens = append(tokens, line[start:i])
	}
	return tokens
}
