package parser

import (
	"io"
	"os"
	"path/filepath"
)

// IncludeResolver locates the content behind a /include directive.
// name is the filename following /include, as written in source, with
// the surrounding quotes of a quoted filename removed.
type IncludeResolver interface {
	Resolve(name string) (content string, resolvedName string, err error)
}

// OSIncludeResolver resolves /include directives against the local
// filesystem, searching Dirs in order and falling back to name as
// given (relative to the working directory) if no directory holds it.
// Every include, nested or not, is searched in the same Dirs; the
// directory of the including file is not added.
type OSIncludeResolver struct {
	Dirs []string
}

func (r OSIncludeResolver) Resolve(name string) (string, string, error) {
	candidates := make([]string, 0, len(r.Dirs)+1)
	for _, dir := range r.Dirs {
		candidates = append(candidates, filepath.Join(dir, name))
	}
	candidates = append(candidates, name)
	var lastErr error
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err == nil {
			abs, absErr := filepath.Abs(path)
			if absErr != nil {
				abs = path
			}
			return string(data), abs, nil
		}
		lastErr = err
	}
	return "", "", lastErr
}

// nopIncludeResolver rejects every include; used when a parser is
// constructed directly from in-memory text with no filesystem context.
type nopIncludeResolver struct{}

func (nopIncludeResolver) Resolve(name string) (string, string, error) {
	return "", "", &os.PathError{Op: "resolve", Path: name, Err: io.ErrUnexpectedEOF}
}
