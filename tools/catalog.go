package tools

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Catalog is an immutable registry of tool definitions. It performs no
// execution bookkeeping; lookup is by exact name only.
type Catalog struct {
	defs    []Definition
	index   map[string]int
	schemas map[string]*gojsonschema.Schema
}

// NewCatalog builds a catalog from a fixed list of definitions. Names must
// be unique and every definition must carry a capability.
func NewCatalog(defs ...Definition) (*Catalog, error) {
	c := &Catalog{
		defs:    make([]Definition, len(defs)),
		index:   make(map[string]int, len(defs)),
		schemas: make(map[string]*gojsonschema.Schema, len(defs)),
	}
	copy(c.defs, defs)
	for i, d := range c.defs {
		if d.Name == "" {
			return nil, fmt.Errorf("tool at position %d has no name", i)
		}
		if d.Function == nil {
			return nil, fmt.Errorf("tool %q has no capability", d.Name)
		}
		if _, dup := c.index[d.Name]; dup {
			return nil, fmt.Errorf("duplicate tool %q", d.Name)
		}
		c.index[d.Name] = i

		// Precompile the advertised schema so Validate is cheap per call.
		// A schema that does not compile disables validation for that tool;
		// dispatch still works.
		raw, err := json.Marshal(d.InputSchema)
		if err != nil {
			continue
		}
		if s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw)); err == nil {
			c.schemas[d.Name] = s
		}
	}
	return c, nil
}

// Lookup returns the capability registered under name. Exact match only; no
// partial or case-insensitive matching.
func (c *Catalog) Lookup(name string) (Capability, bool) {
	i, ok := c.index[name]
	if !ok {
		return nil, false
	}
	return c.defs[i].Function, true
}

// Descriptors returns the definitions in registration order.
func (c *Catalog) Descriptors() []Definition {
	out := make([]Definition, len(c.defs))
	copy(out, c.defs)
	return out
}

// Len returns the number of registered tools.
func (c *Catalog) Len() int {
	return len(c.defs)
}

// Validate checks a requested input against the tool's advertised schema.
// A violation is a capability-level failure: callers fold it into the
// conversation rather than aborting the run. Unknown names and tools
// without a compiled schema validate vacuously.
func (c *Catalog) Validate(name string, input json.RawMessage) error {
	s, ok := c.schemas[name]
	if !ok {
		return nil
	}
	if len(input) == 0 {
		input = json.RawMessage("{}")
	}
	res, err := s.Validate(gojsonschema.NewBytesLoader(input))
	if err != nil {
		return fmt.Errorf("validate input for %s: %w", name, err)
	}
	if res.Valid() {
		return nil
	}
	var b strings.Builder
	fmt.Fprintf(&b, "invalid input for %s:", name)
	for _, e := range res.Errors() {
		fmt.Fprintf(&b, " %s;", e.String())
	}
	return fmt.Errorf("%s", strings.TrimSuffix(b.String(), ";"))
}
