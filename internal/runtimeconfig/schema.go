package runtimeconfig

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed config.schema.json
var configSchema []byte

// ErrConfigSchema reports a configuration file that does not match the
// supported layout.
var ErrConfigSchema = errors.New("palette config: file does not match schema")

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("config.schema.json", bytes.NewReader(configSchema)); err != nil {
		return nil, err
	}
	return compiler.Compile("config.schema.json")
})

// validateDocument checks a decoded YAML document against the embedded
// schema. Unknown keys and mistyped values are reported together.
func validateDocument(doc any) error {
	if doc == nil {
		return nil
	}
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile config schema: %w", err)
	}

	// jsonschema expects encoding/json shaped values.
	encoded, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConfigSchema, err)
	}
	var normalized any
	if err := json.Unmarshal(encoded, &normalized); err != nil {
		return fmt.Errorf("%w: %v", ErrConfigSchema, err)
	}

	if err := schema.Validate(normalized); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("%w: %s", ErrConfigSchema, strings.Join(issues(validationErr), "; "))
		}
		return fmt.Errorf("%w: %v", ErrConfigSchema, err)
	}
	return nil
}

func issues(err *jsonschema.ValidationError) []string {
	var out []string
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if len(node.Causes) == 0 {
			location := node.InstanceLocation
			if location == "" {
				location = "/"
			}
			out = append(out, fmt.Sprintf("%s: %s", location, node.Message))
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return out
}
