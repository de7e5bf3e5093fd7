package tokenmap

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed data/ionic-daisyui.yaml
var defaultData []byte

// defaultTable is built once during package initialisation and never replaced.
var defaultTable = mustLoad(defaultData)

// Default returns the built-in Ionic to daisyUI table.
func Default() *Table {
	return defaultTable
}

// document is the on-disk layout of a token map data file.
type document struct {
	SourcePrefix string          `yaml:"source_prefix"`
	Plugins      []string        `yaml:"plugins"`
	Groups       []groupDocument `yaml:"groups"`
}

// groupDocument keeps variables as a raw node so document order survives
// decoding and repeated keys can be reported instead of silently merged.
type groupDocument struct {
	Name      string    `yaml:"name"`
	Variables yaml.Node `yaml:"variables"`
}

// Load decodes a token map data file and builds a Table from it.
func Load(r io.Reader) (*Table, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidData)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}

	var entries []Entry
	for i, g := range doc.Groups {
		if g.Name == "" {
			return nil, fmt.Errorf("%w: group %d has no name", ErrInvalidData, i)
		}
		groupEntries, err := decodeVariables(g.Name, &g.Variables)
		if err != nil {
			return nil, err
		}
		entries = append(entries, groupEntries...)
	}

	return New(doc.SourcePrefix, entries, doc.Plugins)
}

// LoadFile reads a token map data file from disk.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read token map: %w", err)
	}
	t, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return t, nil
}

// decodeVariables walks a mapping node pair by pair.
func decodeVariables(group string, node *yaml.Node) ([]Entry, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: group %q: variables must be a mapping", ErrInvalidData, group)
	}

	entries := make([]Entry, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode || value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: group %q line %d: variables must map strings to strings",
				ErrInvalidData, group, key.Line)
		}
		entries = append(entries, Entry{Source: key.Value, Target: value.Value, Group: group})
	}
	return entries, nil
}

func mustLoad(data []byte) *Table {
	t, err := Load(bytes.NewReader(data))
	if err != nil {
		panic(fmt.Sprintf("tokenmap: embedded table is invalid: %v", err))
	}
	return t
}
