// Package query provides jq-based selection of the values to validate
// inside a JSON document.
package query

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/itchyny/gojq"
)

// Engine executes jq selection expressions against JSON documents.
type Engine struct{}

// NewEngine creates a new selection engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Selection contains the values extracted by a jq expression.
type Selection struct {
	Values   []any    `json:"values"`           // Extracted values, nulls skipped
	Errors   []string `json:"errors,omitempty"` // Per-value jq errors
	RawCount int      `json:"raw_count"`        // Values produced before the cap
}

// Select runs a jq expression against a JSON document and returns the
// produced values. maxResults caps the selection; zero means no cap.
func (e *Engine) Select(data []byte, expression string, maxResults int) (*Selection, error) {
	code, err := compile(expression)
	if err != nil {
		return nil, err
	}

	var input any
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("invalid JSON data: %w", err)
	}

	sel := &Selection{
		Values: make([]any, 0),
		Errors: make([]string, 0),
	}

	iter := code.Run(input)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}

		if err, isErr := v.(error); isErr {
			sel.Errors = append(sel.Errors, formatJQError(err))
			continue
		}

		// Null selections carry nothing to validate.
		if v == nil {
			continue
		}

		sel.RawCount++
		if maxResults > 0 && len(sel.Values) >= maxResults {
			continue
		}
		sel.Values = append(sel.Values, v)
	}

	return sel, nil
}

// ValidateExpression checks a jq expression without executing it.
func (e *Engine) ValidateExpression(expression string) error {
	_, err := compile(expression)
	return err
}

func compile(expression string) (*gojq.Code, error) {
	q, err := gojq.Parse(expression)
	if err != nil {
		var parseErr *gojq.ParseError
		if errors.As(err, &parseErr) {
			return nil, fmt.Errorf("invalid jq expression at position %d: %w", parseErr.Offset, err)
		}
		return nil, fmt.Errorf("invalid jq expression: %w", err)
	}

	code, err := gojq.Compile(q)
	if err != nil {
		return nil, fmt.Errorf("failed to compile jq expression: %w", err)
	}
	return code, nil
}

// formatJQError decorates a jq runtime error with a hint for common
// mistakes. Runtime jq errors are plain errors without typed wrappers,
// so string matching here only shapes the display message, never
// control flow.
func formatJQError(err error) string {
	var haltErr *gojq.HaltError
	if errors.As(err, &haltErr) {
		if haltErr.Value() == nil {
			return "query halted"
		}
		return fmt.Sprintf("query halted with: %v", haltErr.Value())
	}

	errStr := err.Error()

	var hint string
	switch {
	case strings.Contains(errStr, "cannot iterate over: null"):
		hint = " (the path may not exist in this document)"
	case strings.Contains(errStr, "cannot index") && strings.Contains(errStr, "with"):
		hint = " (field not found or wrong type)"
	case strings.Contains(errStr, "object") && strings.Contains(errStr, "cannot be iterated"):
		hint = " (expected array but got object, try removing '[]')"
	case strings.Contains(errStr, "array") && strings.Contains(errStr, "cannot be indexed"):
		hint = " (expected object but got array, try adding '[]')"
	}

	return errStr + hint
}
