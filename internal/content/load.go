package content

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schema []byte

// Load reads a portfolio from a YAML or JSON file. The document is checked
// against the embedded JSON Schema before it is decoded and validated.
func Load(path string) (*Portfolio, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes and validates a YAML or JSON portfolio document.
func Parse(raw []byte) (*Portfolio, error) {
	var doc map[string]interface{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	if doc == nil {
		return nil, fmt.Errorf("decode content: empty document")
	}
	if err := validateSchema(doc); err != nil {
		return nil, err
	}

	var p Portfolio
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	p.normalize()
	if err := Validate(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

func validateSchema(doc map[string]interface{}) error {
	res, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("schema check: %w", err)
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("schema validation failed: %s", strings.Join(msgs, "; "))
}
