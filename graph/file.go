// SPDX-License-Identifier: MIT

package graph

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the YAML document layout of a graph file.
//
//	directed: false
//	vertices:
//	  - {id: A, x: 100, y: 120}
//	edges:
//	  - {source: A, target: B, weight: 4}
type File struct {
	Directed bool       `yaml:"directed"`
	Vertices []Vertex   `yaml:"vertices"`
	Edges    []EdgeSpec `yaml:"edges"`
}

// Decode reads a YAML graph document into a new Store.
// Edge IDs from the file are ignored; the Store assigns fresh ones.
func Decode(r io.Reader, opts ...StoreOption) (*Store, error) {
	var f File
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("graph: decode: %w", err)
	}
	if f.Directed {
		opts = append(opts, WithDirected())
	}
	s := NewStore(opts...)
	for _, v := range f.Vertices {
		if err := s.AddVertexWithID(v); err != nil {
			return nil, fmt.Errorf("graph: decode: %w", err)
		}
	}
	for _, e := range f.Edges {
		if _, err := s.AddEdge(e.Source, e.Target, e.Weight); err != nil {
			return nil, fmt.Errorf("graph: decode: %w", err)
		}
	}

	return s, nil
}

// LoadFile opens path and decodes it with Decode.
func LoadFile(path string, opts ...StoreOption) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graph: open %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f, opts...)
}

// Encode writes the Store as a YAML graph document.
func (s *Store) Encode(w io.Writer) error {
	f := File{
		Directed: s.Directed(),
		Vertices: s.Vertices(),
		Edges:    s.Edges(),
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("graph: encode: %w", err)
	}

	return enc.Close()
}
