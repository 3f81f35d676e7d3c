package card

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"
)

// Header is the required first record of every source, in this exact order.
var Header = []string{"itemkey", "itemvalue", "itemlink"}

const utf8BOM = "\xef\xbb\xbf"

// Source produces CSV text for the loader.
type Source interface {
	// Name identifies the source in errors and diagnostics.
	Name() string
	// Open returns a reader over the CSV text. The caller closes it.
	Open() (io.ReadCloser, error)
}

// FileSource reads a CSV file from disk.
type FileSource struct {
	Path string
}

func (s FileSource) Name() string { return s.Path }

func (s FileSource) Open() (io.ReadCloser, error) {
	return os.Open(s.Path)
}

// ReaderSource serves CSV text held in memory.
type ReaderSource struct {
	Label string
	Text  string
}

func (s ReaderSource) Name() string { return s.Label }

func (s ReaderSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(s.Text)), nil
}

// ReadRows parses every record of src after validating the header.
func ReadRows(src Source) ([]RawRow, error) {
	name := src.Name()

	rc, err := src.Open()
	if err != nil {
		return nil, &SourceUnavailableError{Source: name, Err: err}
	}
	defer func() { _ = rc.Close() }()

	br := bufio.NewReader(rc)
	if prefix, err := br.Peek(len(utf8BOM)); err == nil && string(prefix) == utf8BOM {
		_, _ = br.Discard(len(utf8BOM))
	}

	r := csv.NewReader(br)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &MalformedRowError{Source: name, Row: 1, Reason: "missing header"}
		}
		return nil, readError(name, err)
	}
	if !validHeader(header) {
		return nil, &MalformedRowError{
			Source: name,
			Row:    1,
			Reason: "header must be " + strings.Join(Header, ","),
		}
	}

	var rows []RawRow
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, readError(name, err)
		}

		line, _ := r.FieldPos(0)
		switch {
		case len(record) != len(Header):
			return nil, &MalformedRowError{Source: name, Row: line, Reason: "expected 3 fields"}
		case record[0] == "":
			return nil, &MalformedRowError{Source: name, Row: line, Reason: "itemkey is empty"}
		case record[1] == "":
			return nil, &MalformedRowError{Source: name, Row: line, Reason: "itemvalue is empty"}
		}

		rows = append(rows, RawRow{Key: record[0], Value: record[1], Link: record[2]})
	}

	return rows, nil
}

func validHeader(record []string) bool {
	if len(record) != len(Header) {
		return false
	}
	for i, h := range Header {
		if !strings.EqualFold(strings.TrimSpace(record[i]), h) {
			return false
		}
	}
	return true
}

// readError separates CSV syntax errors, which are attributed to a row, from
// I/O failures on the underlying reader.
func readError(name string, err error) error {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return &MalformedRowError{Source: name, Row: perr.Line, Reason: "invalid csv", Err: perr.Err}
	}
	return &SourceUnavailableError{Source: name, Err: err}
}
