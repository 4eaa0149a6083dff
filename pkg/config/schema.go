package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrSchema reports a variables file that does not match Schema.
var ErrSchema = errors.New("variables file does not match schema")

// Schema is the JSON Schema of a variables file, in YAML or JSON form.
const Schema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "maxDepth": {"type": "integer", "minimum": 0},
    "maxRounds": {"type": "integer", "minimum": 0},
    "log": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "level": {"enum": ["debug", "info", "warn", "warning", "error", "DEBUG", "INFO", "WARN", "WARNING", "ERROR"]},
        "format": {"enum": ["text", "json"]},
        "file": {"type": "string", "minLength": 1}
      }
    },
    "variables": {
      "type": "array",
      "items": {
        "type": "object",
        "additionalProperties": false,
        "required": ["value"],
        "properties": {
          "key": {"type": "string", "minLength": 1, "maxLength": 1},
          "longKey": {"type": "string", "minLength": 1},
          "value": {"type": ["string", "number", "boolean"]}
        }
      }
    }
  }
}`

const schemaURL = "varexpand-variables.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func compileSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource(schemaURL, strings.NewReader(Schema)); err != nil {
			schemaErr = fmt.Errorf("failed to add schema resource: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}

// ValidateSchema checks a decoded document against Schema. doc may come
// from either yaml.v3 or encoding/json; it is normalized to JSON types
// first. Every failing location is reported as a *ValidationError.
func ValidateSchema(doc any) error {
	schema, err := compileSchema()
	if err != nil {
		return err
	}

	// Convert to JSON and back to ensure consistent types
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSchema, err)
	}
	var normalized any
	if err := json.Unmarshal(data, &normalized); err != nil {
		return fmt.Errorf("%w: %w", ErrSchema, err)
	}

	err = schema.Validate(normalized)
	if err == nil {
		return nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return fmt.Errorf("%w: %w", ErrSchema, err)
	}
	var errs []error
	collectSchemaErrors(ve, &errs)
	return fmt.Errorf("%w: %w", ErrSchema, errors.Join(errs...))
}

func collectSchemaErrors(ve *jsonschema.ValidationError, errs *[]error) {
	if len(ve.Causes) == 0 {
		*errs = append(*errs, &ValidationError{Field: fieldFromPointer(ve.InstanceLocation), Message: ve.Message})
		return
	}
	for _, cause := range ve.Causes {
		collectSchemaErrors(cause, errs)
	}
}

// fieldFromPointer turns "/variables/0/key" into "variables[0].key".
func fieldFromPointer(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return "(root)"
	}
	var b strings.Builder
	for i, part := range strings.Split(ptr, "/") {
		switch {
		case isIndex(part):
			b.WriteString("[" + part + "]")
		case i > 0:
			b.WriteString("." + part)
		default:
			b.WriteString(part)
		}
	}
	return b.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
