package profile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://profile.json"

// profileSchema describes the whole profile document. Single keys are
// validated by wrapping them in a one-property object.
const profileSchema = `{
	"type": "object",
	"additionalProperties": false,
	"properties": {
		"os": {"enum": ["linux", "windows", "mac", null]},
		"xp": {"type": "integer", "minimum": 0},
		"level": {"type": "integer", "minimum": 1},
		"completedChallenges": {
			"type": "array",
			"items": {"type": "string"},
			"uniqueItems": true
		},
		"commandHistory": {"type": "array", "items": {"type": "string"}},
		"badges": {"type": "array", "items": {"type": "string"}},
		"settings": {
			"type": "object",
			"properties": {
				"colorTheme": {"enum": ["default", "dark", "light", "colorblind"]},
				"showTips": {"type": "boolean"},
				"difficultyLevel": {"enum": ["beginner", "intermediate", "advanced"]}
			}
		},
		"lastUsed": {"type": "string", "format": "date-time"}
	}
}`

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func getCompiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(profileSchema))
		if err != nil {
			compileErr = fmt.Errorf("parse profile schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		c.AssertFormat()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// validate checks raw against the schema for key. Unknown keys are rejected.
func validate(key string, raw json.RawMessage) error {
	sch, err := getCompiledSchema()
	if err != nil {
		return err
	}

	var doc bytes.Buffer
	keyJSON, _ := json.Marshal(key)
	doc.WriteByte('{')
	doc.Write(keyJSON)
	doc.WriteByte(':')
	doc.Write(raw)
	doc.WriteByte('}')

	parsed, err := jsonschema.UnmarshalJSON(&doc)
	if err != nil {
		return &ValidationError{Key: key, Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	if err := sch.Validate(parsed); err != nil {
		return &ValidationError{Key: key, Err: err}
	}
	return nil
}

// ValidationError reports a value rejected by the profile schema.
type ValidationError struct {
	Key string
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid profile value for %q: %v", e.Key, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
