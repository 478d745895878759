package fourier

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"
)

// ReadSVG reads an SVG document and returns the segments of all of its path
// elements, in document order. Everything else in the document, including
// transforms and styling, is ignored.
//
// It returns an error wrapping [ErrInvalidPath] if the document is malformed,
// contains malformed path data, or has no path segments at all.
func ReadSVG(r io.Reader) ([]PathSegment, error) {
	z := parse.NewInput(r)
	defer z.Restore()

	l := xml.NewLexer(z)
	var segs []PathSegment
	var npaths int
	for {
		tt, data := l.Next()
		switch tt {
		case xml.ErrorToken:
			if l.Err() != io.EOF {
				return nil, fmt.Errorf("couldn't parse SVG: %w: %w", l.Err(), ErrInvalidPath)
			}
			if len(segs) == 0 {
				return nil, fmt.Errorf("SVG has %d paths but no segments: %w", npaths, ErrInvalidPath)
			}
			Logger().Debug("read SVG", "paths", npaths, "segments", len(segs))
			return segs, nil
		case xml.StartTagToken:
			tag := string(data[1:])
			var d []byte
			var hasD bool
			for {
				tt, _ = l.Next()
				if tt != xml.AttributeToken {
					break
				}
				if tag == "path" && string(l.Text()) == "d" {
					d = unquote(l.AttrVal())
					hasD = true
				}
			}
			if tag != "path" || !hasD {
				continue
			}
			npaths++
			p, err := ParseSVGPath(string(d))
			if err != nil {
				pos := parse.NewErrorLexer(z, "bad path data")
				return nil, fmt.Errorf("path %d ending on line %d, column %d: %w", npaths, pos.Line, pos.Column, err)
			}
			for seg := range p.Segments() {
				segs = append(segs, seg)
			}
		}
	}
}

func unquote(val []byte) []byte {
	if len(val) >= 2 && (val[0] == '"' || val[0] == '\'') && val[len(val)-1] == val[0] {
		return val[1 : len(val)-1]
	}
	return val
}

// openFile opens name for reading. Errors, including name not being a regular
// file, wrap [ErrNotFound].
func openFile(name string) (*os.File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", err, ErrNotFound)
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %w", err, ErrNotFound)
	}
	if !fi.Mode().IsRegular() {
		f.Close()
		return nil, fmt.Errorf("%s isn't a regular file: %w", name, ErrNotFound)
	}
	return f, nil
}

// OpenSVG is like [ReadSVG] but reads the named file. It returns an error
// wrapping [ErrNotFound] if the file can't be opened or isn't a regular file.
func OpenSVG(name string) ([]PathSegment, error) {
	f, err := openFile(name)
	if err != nil {
		return nil, fmt.Errorf("couldn't open SVG: %w", err)
	}
	defer f.Close()
	segs, err := ReadSVG(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return segs, nil
}
