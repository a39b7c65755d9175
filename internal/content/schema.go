package content

import (
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// Document schemas for the catalog YAML files. The check is advisory:
// a failing document is reported but still loaded, matching the
// integrity-error policy.

const (
	courseSchemaName = "course"
	examSchemaName   = "final_exam"
)

var questionSchema = map[string]any{
	"type":     "object",
	"required": []any{"id", "prompt", "options", "answerIndex"},
	"properties": map[string]any{
		"id":          map[string]any{"type": "string", "minLength": 1},
		"prompt":      map[string]any{"type": "string", "minLength": 1},
		"options":     map[string]any{"type": "array", "minItems": 2, "items": map[string]any{"type": "string"}},
		"answerIndex": map[string]any{"type": "integer", "minimum": 0},
		"explanation": map[string]any{"type": "string"},
		"domain":      map[string]any{"type": "string"},
	},
}

var schemaDefs = map[string]map[string]any{
	courseSchemaName: {
		"type":     "object",
		"required": []any{"title", "modules"},
		"properties": map[string]any{
			"title":    map[string]any{"type": "string", "minLength": 1},
			"subtitle": map[string]any{"type": "string"},
			"simulator": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"durationMinutes": map[string]any{"type": "integer", "minimum": 1},
				},
			},
			"modules": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type":     "object",
					"required": []any{"id", "title"},
					"properties": map[string]any{
						"id":    map[string]any{"type": "string", "minLength": 1},
						"title": map[string]any{"type": "string", "minLength": 1},
						"quizzes": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type":     "object",
								"required": []any{"id", "title", "questions"},
								"properties": map[string]any{
									"id":        map[string]any{"type": "string", "minLength": 1},
									"title":     map[string]any{"type": "string"},
									"questions": map[string]any{"type": "array", "minItems": 1, "items": questionSchema},
								},
							},
						},
					},
				},
			},
		},
	},
	examSchemaName: {
		"type":     "object",
		"required": []any{"questions"},
		"properties": map[string]any{
			"title":     map[string]any{"type": "string"},
			"questions": map[string]any{"type": "array", "minItems": 1, "items": questionSchema},
		},
	},
}

// schemaCache caches compiled schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// checkShape validates a YAML document against the named schema.
func checkShape(name string, doc []byte) error {
	var parsed any
	if err := yaml.Unmarshal(doc, &parsed); err != nil {
		return fmt.Errorf("invalid YAML: %w", err)
	}

	compiled, err := compiledSchema(name)
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", name, err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// compiledSchema returns a cached compiled schema or compiles and caches it.
func compiledSchema(name string) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	def, ok := schemaDefs[name]
	if !ok {
		return nil, fmt.Errorf("unknown schema %q", name)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(schemaURL, def); err != nil {
		return nil, err
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, err
	}

	schemaCache.Store(name, compiled)
	return compiled, nil
}
