package store

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/nibzard/plantivity-go/internal/task"
)

//go:embed schema/tasks.schema.json
var schemaJSON []byte

const schemaURL = "https://plantivity.local/tasks.schema.json"

var (
	compiledSchema *jsonschema.Schema
	schemaErr      error
	schemaOnce     sync.Once
)

func dataSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
			schemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}

// ValidationResult contains data file validation results.
type ValidationResult struct {
	Valid    bool
	Errors   []error
	Warnings []string
	Tasks    int // number of task entries found, when the file parsed
}

// Validate checks the data file at path against the embedded schema and
// reports task fields outside the known category, priority and status sets as
// warnings. A missing file is valid: the store starts empty.
func Validate(path string) *ValidationResult {
	result := &ValidationResult{
		Valid:    true,
		Errors:   make([]error, 0),
		Warnings: make([]string, 0),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			result.Warnings = append(result.Warnings, fmt.Sprintf("data file not found: %s", path))
			return result
		}
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Errorf("read data file: %w", err))
		return result
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Errorf("parse data file: %w", err))
		return result
	}

	schemaResult := validateDocument(doc)
	if !schemaResult.Valid {
		return schemaResult
	}

	var f dataFile
	if err := json.Unmarshal(data, &f); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Errorf("decode data file: %w", err))
		return result
	}
	result.Tasks = len(f.Tasks)
	if len(f.Tasks) > MaxTasks {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%d tasks exceeds the limit of %d; the next add clears the list", len(f.Tasks), MaxTasks))
	}
	for i, t := range f.Tasks {
		if err := task.Validate(t); err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("tasks[%d] (%s): %v", i, t.Title, flatten(err)))
		}
	}

	return result
}

// validateDocument validates decoded JSON against the embedded schema.
func validateDocument(doc interface{}) *ValidationResult {
	result := &ValidationResult{
		Valid:    true,
		Errors:   make([]error, 0),
		Warnings: make([]string, 0),
	}

	schema, err := dataSchema()
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Errorf("compile schema: %w", err))
		return result
	}

	if err := schema.Validate(doc); err != nil {
		result.Valid = false
		appendSchemaErrors(result, err)
	}
	return result
}

func appendSchemaErrors(result *ValidationResult, err error) {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		result.Errors = append(result.Errors, err)
		return
	}
	collectSchemaErrors(result, ve)
}

func collectSchemaErrors(result *ValidationResult, err *jsonschema.ValidationError) {
	if err == nil {
		return
	}

	if len(err.Causes) == 0 {
		result.Errors = append(result.Errors, &task.ValidationError{
			Path: jsonPointerToPath(err.InstanceLocation),
			Err:  errors.New(err.Message),
		})
		return
	}

	for _, cause := range err.Causes {
		collectSchemaErrors(result, cause)
	}
}

// jsonPointerToPath converts "/tasks/0/title" to "tasks[0].title".
func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	path := ""
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			path += fmt.Sprintf("[%d]", idx)
			continue
		}
		if path == "" {
			path = part
		} else {
			path += "." + part
		}
	}
	return path
}

// flatten joins a multi-error onto one line.
func flatten(err error) string {
	return strings.ReplaceAll(err.Error(), "\n", "; ")
}
