// SPDX-License-Identifier: MIT

package input

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "transform.schema.json"

//go:embed transform.schema.json
var schemaSource string

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

// compiledSchema compiles the embedded schema once per process.
func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		c.Draft = jsonschema.Draft2020
		if err := c.AddResource(schemaURL, strings.NewReader(schemaSource)); err != nil {
			schemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		schema, schemaErr = c.Compile(schemaURL)
	})

	return schema, schemaErr
}

// Validate checks a generic JSON value (as produced by encoding/json)
// against the transform schema.
func Validate(doc any) error {
	s, err := compiledSchema()
	if err != nil {
		return err
	}
	if err = s.Validate(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrSchema, err)
	}

	return nil
}
