// Package replay runs YAML operation scripts against the lzt containers.
package replay

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Container kinds.
const (
	KindVector = "vector"
	KindString = "string"
	KindList   = "list"
)

var (
	// ErrUnknownKind is returned for a script naming no known container.
	ErrUnknownKind = errors.New("replay: unknown container kind")
	// ErrUnknownOp is returned for an operation name the runner does not know.
	ErrUnknownOp = errors.New("replay: unknown operation")
	// ErrUnsupported is returned for an operation the container does not have.
	ErrUnsupported = errors.New("replay: operation not supported by container")
)

// Script is one replay file.
type Script struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
	Ops  []Op   `yaml:"ops"`
}

// Op is one operation. Which fields matter depends on Op and the container:
// vector and list read Value and Values, string reads Text.
type Op struct {
	Op     string `yaml:"op"`
	Index  int    `yaml:"index,omitempty"`
	Count  *int   `yaml:"count,omitempty"`
	Pos    *int   `yaml:"pos,omitempty"`
	Value  int    `yaml:"value,omitempty"`
	Values []int  `yaml:"values,omitempty"`
	Text   string `yaml:"text,omitempty"`
}

var ops = []string{
	"push_back", "push_front", "pop_back", "pop_front",
	"insert", "erase", "append", "find", "rfind",
	"clear", "reserve", "resize",
}

// Parse decodes and validates a script. name is used when the script has
// none of its own.
func Parse(data []byte, name string) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if s.Name == "" {
		s.Name = name
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses the script at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	s, err := Parse(data, name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate checks the kind and every operation name.
func (s *Script) Validate() error {
	switch s.Kind {
	case KindVector, KindString, KindList:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, s.Kind)
	}
	for i, op := range s.Ops {
		if !slices.Contains(ops, op.Op) {
			return fmt.Errorf("op %d: %w: %q", i, ErrUnknownOp, op.Op)
		}
	}
	return nil
}

// count returns the op's count, or def when the script leaves it out.
func (o *Op) count(def int) int {
	if o.Count == nil {
		return def
	}
	return *o.Count
}

// pos returns the op's search position, or def when the script leaves it out.
func (o *Op) pos(def int) int {
	if o.Pos == nil {
		return def
	}
	return *o.Pos
}
