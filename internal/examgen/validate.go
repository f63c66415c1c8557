package examgen

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// schemaCache caches compiled JSON schemas by contract name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// decodeQuestion checks raw JSON against the question contract and unmarshals
// it. A shape mismatch is a soft failure: ok is false and no error escapes,
// because the caller treats it as one consumed retry attempt.
func decodeQuestion(raw json.RawMessage) (GeneratedQuestion, bool) {
	if !conforms(QuestionContract, raw) {
		return GeneratedQuestion{}, false
	}
	var q GeneratedQuestion
	if err := json.Unmarshal(raw, &q); err != nil {
		return GeneratedQuestion{}, false
	}
	return q, true
}

// decodeExam checks raw JSON against the exam contract and unmarshals it.
func decodeExam(raw json.RawMessage) (GeneratedExam, bool) {
	if !conforms(ExamContract, raw) {
		return GeneratedExam{}, false
	}
	var e GeneratedExam
	if err := json.Unmarshal(raw, &e); err != nil {
		return GeneratedExam{}, false
	}
	return e, true
}

// conforms validates parsed JSON against the contract's schema.
func conforms(c *Contract, raw json.RawMessage) bool {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return false
	}

	compiled, err := compiledSchema(c)
	if err != nil {
		// A contract that fails to compile is a programming error; treat the
		// response as invalid rather than panicking mid-generation.
		return false
	}

	return compiled.Validate(parsed) == nil
}

// compiledSchema returns a cached compiled schema or compiles and caches it.
func compiledSchema(c *Contract) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(c.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The jsonschema library expects a parsed JSON value (any), not raw
	// bytes. Marshal then unmarshal to get a clean any representation.
	defBytes, err := json.Marshal(c.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", c.Name)
	if err := compiler.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(c.Name, compiled)
	return compiled, nil
}
