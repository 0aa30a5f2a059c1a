// Package catalog holds the fixed table of COPSOQ III assessment domains.
// The table is embedded as domains.yaml, parsed once and shared read only
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed domains.yaml
var embedded []byte

// Direction tells whether a higher score is better or worse for a domain
type Direction string

const (
	// Positive means higher is better
	Positive Direction = "positiva"
	// Negative means higher is worse
	Negative Direction = "negativa"
)

// Valid reports whether d is one of the two known directions
func (d Direction) Valid() bool { return d == Positive || d == Negative }

// ParseDirection accepts the portuguese tags and the english words
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "positiva", "positive":
		return Positive, nil
	case "negativa", "negative":
		return Negative, nil
	}
	return "", fmt.Errorf("catalog: unknown direction %q", s)
}

// UnmarshalYAML reads a direction through ParseDirection
func (d *Direction) UnmarshalYAML(n *yaml.Node) error {
	v, err := ParseDirection(n.Value)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Domain is one COPSOQ III dimension (grupo)
type Domain struct {
	ID          int       `json:"id"          yaml:"id"`
	Name        string    `json:"name"        yaml:"name"`
	Description string    `json:"description" yaml:"description"`
	Direction   Direction `json:"direction"   yaml:"direction"`
}

// Size is the number of domains the instrument defines
const Size = 10

type rawCatalog struct {
	Version    int      `yaml:"version"`
	Instrument string   `yaml:"instrument"`
	Domains    []Domain `yaml:"domains"`
}

var (
	loadOnce sync.Once
	header   Header
	domains  []Domain
	byID     map[int]Domain
)

// Header identifies the instrument and table revision
type Header struct {
	Instrument string `json:"instrument"`
	Version    int    `json:"version"`
}

// load parses the embedded table; a malformed table is a build defect so it panics
func load() {
	loadOnce.Do(func() {
		rc, err := parse(embedded)
		if err != nil {
			panic(err)
		}
		header = Header{Instrument: rc.Instrument, Version: rc.Version}
		ds := rc.Domains
		domains = ds
		byID = make(map[int]Domain, len(ds))
		for _, d := range ds {
			byID[d.ID] = d
		}
	})
}

// parse decodes and checks a catalog document
// ids must be unique and contiguous 1..Size and listed in order
func parse(b []byte) (rawCatalog, error) {
	var rc rawCatalog
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&rc); err != nil {
		return rc, fmt.Errorf("catalog: decode: %w", err)
	}
	if len(rc.Domains) != Size {
		return rc, fmt.Errorf("catalog: want %d domains, got %d", Size, len(rc.Domains))
	}
	for i, d := range rc.Domains {
		if d.ID != i+1 {
			return rc, fmt.Errorf("catalog: domain at position %d has id %d", i+1, d.ID)
		}
		if strings.TrimSpace(d.Name) == "" {
			return rc, fmt.Errorf("catalog: domain %d has no name", d.ID)
		}
		if !d.Direction.Valid() {
			return rc, fmt.Errorf("catalog: domain %d has invalid direction %q", d.ID, d.Direction)
		}
	}
	return rc, nil
}

// Info returns the instrument header of the embedded table
func Info() Header {
	load()
	return header
}

// All returns a copy of the catalog in id order
func All() []Domain {
	load()
	out := make([]Domain, len(domains))
	copy(out, domains)
	return out
}

// ByID looks up a domain by id
func ByID(id int) (Domain, bool) {
	load()
	d, ok := byID[id]
	return d, ok
}

// Count returns the number of domains in the catalog
func Count() int {
	load()
	return len(domains)
}
