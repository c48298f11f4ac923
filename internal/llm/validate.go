package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// compiled holds compiled schemas keyed by *Schema, so two schemas that
// share a name never collide.
var compiled sync.Map // map[*Schema]*jsonschema.Schema

// ValidateResponse checks raw against schema. A nil schema accepts anything.
// Failures are *ErrInvalidResponse carrying raw.
func ValidateResponse(schema *Schema, raw json.RawMessage) error {
	if schema == nil {
		return nil
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("not JSON: %w", err)}
	}
	sch, err := compile(schema)
	if err != nil {
		return &ErrInvalidResponse{Content: raw, Err: err}
	}
	if err := sch.Validate(doc); err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("does not match %s: %w", schema.Name, err)}
	}
	return nil
}

// Decode validates raw against schema and unmarshals it into v.
func Decode(schema *Schema, raw json.RawMessage, v any) error {
	if err := ValidateResponse(schema, raw); err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return &ErrInvalidResponse{Content: raw, Err: err}
	}
	return nil
}

func compile(schema *Schema) (*jsonschema.Schema, error) {
	if c, ok := compiled.Load(schema); ok {
		return c.(*jsonschema.Schema), nil
	}

	// The compiler wants decoded JSON values, not Go maps holding []string.
	def, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema %s: %w", schema.Name, err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(def))
	if err != nil {
		return nil, fmt.Errorf("decode schema %s: %w", schema.Name, err)
	}

	c := jsonschema.NewCompiler()
	url := "schema://" + schema.Name + ".json"
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("add schema %s: %w", schema.Name, err)
	}
	sch, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", schema.Name, err)
	}

	compiled.Store(schema, sch)
	return sch, nil
}
