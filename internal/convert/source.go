// source.go resolves conversion sources: a plain file path, a doublestar
// glob matching several files, or an http(s) URL.

package convert

import (
	"bytes"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/warp-core/colorconv/internal/datafile"
	"github.com/warp-core/colorconv/internal/fetch"
)

// Fetcher retrieves the content of a URL source.
type Fetcher interface {
	Get(url string) ([]byte, error)
}

// globMeta are the characters that mark a source string as a glob pattern.
const globMeta = "*?[{"

// ExpandSource resolves a local source string to the list of file paths it
// names. Plain paths pass through; glob patterns must match at least one file.
func ExpandSource(src string) ([]string, error) {
	if !strings.ContainsAny(src, globMeta) {
		return []string{src}, nil
	}
	matches, err := doublestar.FilepathGlob(src)
	if err != nil {
		return nil, fmt.Errorf("bad glob pattern %q: %w", src, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no files match %q", src)
	}
	sort.Strings(matches)
	return matches, nil
}

// ReadSource parses all color records named by src, in source order. URL
// sources are retrieved through f; local sources may be a single path or a
// glob.
func ReadSource(src string, f Fetcher) ([]datafile.Node, error) {
	if fetch.IsURL(src) {
		if f == nil {
			return nil, fmt.Errorf("no fetcher available for URL source %q", src)
		}
		body, err := f.Get(src)
		if err != nil {
			return nil, err
		}
		return datafile.Parse(bytes.NewReader(body))
	}

	files, err := ExpandSource(src)
	if err != nil {
		return nil, err
	}

	var nodes []datafile.Node
	for _, path := range files {
		fileNodes, err := datafile.ParseFile(path)
		if err != nil {
			return nil, err
		}
		slog.Debug("parsed source file", "path", path, "records", len(fileNodes))
		nodes = append(nodes, fileNodes...)
	}
	return nodes, nil
}
