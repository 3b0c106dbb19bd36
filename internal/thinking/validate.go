package thinking

import (
	"encoding/json"
	"fmt"
	"math"
)

// ValidationError reports the first missing or ill-typed tool argument.
// It names exactly one field; checks stop at the first violation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid parameter %q: %s", e.Field, e.Reason)
}

func invalidField(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// ParseRecord converts the untyped argument bag delivered by the MCP layer
// into a fully-typed Thought, or rejects it with a ValidationError.
//
// Required fields are checked first (thought, nextThoughtNeeded,
// thoughtNumber, totalThoughts), then optional fields are type-checked if
// present. No cross-field validation is performed: isRevision without
// revisesThought is accepted, and revisesThought / branchFromThought are
// not checked against the history.
func ParseRecord(args map[string]any) (Thought, error) {
	var t Thought

	content, err := stringArg(args, "thought", true)
	if err != nil {
		return t, err
	}
	t.Content = content

	next, err := boolArg(args, "nextThoughtNeeded", true)
	if err != nil {
		return t, err
	}
	t.NextNeeded = next

	number, err := intArg(args, "thoughtNumber", true)
	if err != nil {
		return t, err
	}
	t.Number = number

	total, err := intArg(args, "totalThoughts", true)
	if err != nil {
		return t, err
	}
	t.Total = total

	if _, ok := args["isRevision"]; ok {
		t.IsRevision, err = boolArg(args, "isRevision", false)
		if err != nil {
			return t, err
		}
	}
	if _, ok := args["revisesThought"]; ok {
		t.Revises, err = intArg(args, "revisesThought", false)
		if err != nil {
			return t, err
		}
	}
	if _, ok := args["branchFromThought"]; ok {
		t.BranchFrom, err = intArg(args, "branchFromThought", false)
		if err != nil {
			return t, err
		}
	}
	if _, ok := args["branchId"]; ok {
		t.BranchID, err = stringArg(args, "branchId", false)
		if err != nil {
			return t, err
		}
	}
	if _, ok := args["needsMoreThoughts"]; ok {
		t.NeedsMore, err = boolArg(args, "needsMoreThoughts", false)
		if err != nil {
			return t, err
		}
	}

	return t, nil
}

// stringArg extracts a non-empty string field. With required unset, the
// field is assumed present (caller checked) but must still be a non-empty
// string.
func stringArg(args map[string]any, field string, required bool) (string, error) {
	raw, ok := args[field]
	if !ok {
		if required {
			return "", invalidField(field, "must be provided")
		}
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", invalidField(field, "must be a string")
	}
	if s == "" {
		return "", invalidField(field, "must not be empty")
	}
	return s, nil
}

func boolArg(args map[string]any, field string, required bool) (bool, error) {
	raw, ok := args[field]
	if !ok {
		if required {
			return false, invalidField(field, "must be provided")
		}
		return false, nil
	}
	b, ok := raw.(bool)
	if !ok {
		return false, invalidField(field, "must be a boolean")
	}
	return b, nil
}

// intArg extracts a positive integer field. JSON numbers decode as
// float64, so integral floats are accepted; fractional values are not.
func intArg(args map[string]any, field string, required bool) (int, error) {
	raw, ok := args[field]
	if !ok {
		if required {
			return 0, invalidField(field, "must be provided")
		}
		return 0, nil
	}

	var n int
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, invalidField(field, "must be an integer")
		}
		n = int(v)
	case int:
		n = v
	case int64:
		n = int(v)
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			return 0, invalidField(field, "must be an integer")
		}
		n = int(i)
	default:
		return 0, invalidField(field, "must be an integer")
	}

	if n < 1 {
		return 0, invalidField(field, "must be at least 1")
	}
	return n, nil
}
