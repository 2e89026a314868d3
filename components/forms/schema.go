package forms

import (
	"bytes"
	"embed"
	"fmt"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// Schema names bundled with the package.
const (
	SchemaChecklist = "checklist"
	SchemaAMC       = "amc"
	SchemaPantry    = "pantry"
)

// PayloadValidator checks an outgoing payload before it is sent.
type PayloadValidator interface {
	Validate(schema string, payload any) error
}

// JSONSchemaValidator compiles the embedded payload schemas on first use.
type JSONSchemaValidator struct {
	mu       sync.RWMutex
	compiled map[string]*jsonschema.Schema
}

// NewJSONSchemaValidator builds a validator backed by jsonschema v5.
func NewJSONSchemaValidator() *JSONSchemaValidator {
	return &JSONSchemaValidator{compiled: make(map[string]*jsonschema.Schema)}
}

// Validate normalizes payload through JSON and checks it against the named schema.
func (v *JSONSchemaValidator) Validate(name string, payload any) error {
	schema, err := v.schemaFor(name)
	if err != nil {
		return err
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("forms: marshal %s payload: %w", name, err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("forms: normalize %s payload: %w", name, err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("forms: %s payload failed validation: %w", name, err)
	}
	return nil
}

func (v *JSONSchemaValidator) schemaFor(name string) (*jsonschema.Schema, error) {
	v.mu.RLock()
	schema, ok := v.compiled[name]
	v.mu.RUnlock()
	if ok {
		return schema, nil
	}
	file := name + ".json"
	data, err := schemaFS.ReadFile("schemas/" + file)
	if err != nil {
		return nil, fmt.Errorf("forms: unknown schema %s: %w", name, err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(file, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("forms: load schema %s: %w", name, err)
	}
	compiled, err := compiler.Compile(file)
	if err != nil {
		return nil, fmt.Errorf("forms: compile schema %s: %w", name, err)
	}
	v.mu.Lock()
	v.compiled[name] = compiled
	v.mu.Unlock()
	return compiled, nil
}

// NoPayloadValidation skips the schema check when set as Options.Validator.
var NoPayloadValidation PayloadValidator = noopPayloadValidator{}

type noopPayloadValidator struct{}

func (noopPayloadValidator) Validate(string, any) error { return nil }
