package loader

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
)

// FileSource reads a DOT file from disk on every call.
type FileSource struct {
	Path string
}

// Edges parses the file at Path.
func (s FileSource) Edges(ctx context.Context) ([]Edge, error) {
	if s.Path == "" {
		return nil, ErrEmptyPath
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %w", s.Path, err)
	}
	defer f.Close()

	edges, err := ParseDOT(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}

	return edges, nil
}

// Describe implements Source.
func (s FileSource) Describe() string { return "file:" + s.Path }

// ReaderSource parses DOT text held in memory. The content is buffered on
// construction so Edges can be called more than once.
type ReaderSource struct {
	name string
	data []byte
}

// NewReaderSource drains r into a reusable source.
func NewReaderSource(name string, r io.Reader) (*ReaderSource, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("loader: read %s: %w", name, err)
	}

	return &ReaderSource{name: name, data: data}, nil
}

// Edges parses the buffered content.
func (s *ReaderSource) Edges(ctx context.Context) ([]Edge, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return ParseDOT(bytes.NewReader(s.data))
}

// Describe implements Source.
func (s *ReaderSource) Describe() string { return "reader:" + s.name }

// StaticSource serves a fixed edge slice, e.g. one produced by the builder.
type StaticSource []Edge

// Edges returns a copy of the slice.
func (s StaticSource) Edges(context.Context) ([]Edge, error) {
	out := make([]Edge, len(s))
	copy(out, s)

	return out, nil
}

// Describe implements Source.
func (s StaticSource) Describe() string { return fmt.Sprintf("static:%d edges", len(s)) }
