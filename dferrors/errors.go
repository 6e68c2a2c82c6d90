package dferrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is(), one per taxonomy row in
// spec §7.
var (
	// ErrTypeMismatch indicates a reader expected a primitive but found a
	// map/list, or vice versa.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrFieldMissing indicates a required field coercion found nothing.
	ErrFieldMissing = errors.New("field missing")

	// ErrFieldCollision indicates a rename/group/flatten target a field
	// that already exists.
	ErrFieldCollision = errors.New("field collision")

	// ErrInvalidPath indicates a path string had an empty segment.
	ErrInvalidPath = errors.New("invalid path")

	// ErrIncompatibleOps indicates two Dynamics from different backends
	// were mixed in one operation.
	ErrIncompatibleOps = errors.New("incompatible ops")

	// ErrSchemaConflict indicates a duplicate version, unresolved parent,
	// or duplicate fix key was registered at bootstrap.
	ErrSchemaConflict = errors.New("schema conflict")

	// ErrMergeConflict indicates merge_to_map was called on a non-map
	// input.
	ErrMergeConflict = errors.New("merge conflict")
)

// TypeMismatchError represents a reader expecting one Dynamic shape
// finding another (spec §7 TypeMismatch).
type TypeMismatchError struct {
	// Expected is the shape the reader wanted (e.g. "string", "map").
	Expected string
	// Actual is the shape that was actually present.
	Actual string
	// Path is the JSON-path-like location of the mismatch, if known.
	Path string
}

func (e *TypeMismatchError) Error() string {
	msg := fmt.Sprintf("type mismatch: expected %s, got %s", e.Expected, e.Actual)
	if e.Path != "" {
		msg += " at " + e.Path
	}
	return msg
}

// Unwrap allows errors.Is(err, ErrTypeMismatch) to succeed.
func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }

// Is reports whether target is the TypeMismatch sentinel.
func (e *TypeMismatchError) Is(target error) bool { return target == ErrTypeMismatch }

// FieldMissingError represents a required field that was absent
// (spec §7 FieldMissing).
type FieldMissingError struct {
	// Field is the name of the missing field.
	Field string
	// Path is the location the field was expected at, if known.
	Path string
}

func (e *FieldMissingError) Error() string {
	msg := fmt.Sprintf("field missing: %s", e.Field)
	if e.Path != "" {
		msg += " at " + e.Path
	}
	return msg
}

func (e *FieldMissingError) Unwrap() error { return ErrFieldMissing }

func (e *FieldMissingError) Is(target error) bool { return target == ErrFieldMissing }

// FieldCollisionError represents a rename/group/flatten into a field that
// already exists (spec §7 FieldCollision).
type FieldCollisionError struct {
	// Field is the name of the field that already existed.
	Field string
	// Operation names the rule that produced the collision (e.g.
	// "rename_field", "group_fields", "flatten_field").
	Operation string
}

func (e *FieldCollisionError) Error() string {
	return fmt.Sprintf("field collision: %s already present (via %s)", e.Field, e.Operation)
}

func (e *FieldCollisionError) Unwrap() error { return ErrFieldCollision }

func (e *FieldCollisionError) Is(target error) bool { return target == ErrFieldCollision }

// InvalidPathError represents a path string with an empty segment
// (spec §7 InvalidPath, spec §4.3 leading/trailing/consecutive dots).
type InvalidPathError struct {
	// Path is the offending path string.
	Path string
	// Reason describes why the path was rejected.
	Reason string
}

func (e *InvalidPathError) Error() string {
	msg := fmt.Sprintf("invalid path %q", e.Path)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *InvalidPathError) Unwrap() error { return ErrInvalidPath }

func (e *InvalidPathError) Is(target error) bool { return target == ErrInvalidPath }

// IncompatibleOpsError represents an operation that mixed Dynamics from
// two different DynamicOps instances (spec §7 IncompatibleOps).
type IncompatibleOpsError struct {
	// Operation names the call that detected the mismatch (e.g. "set").
	Operation string
}

func (e *IncompatibleOpsError) Error() string {
	msg := "incompatible ops"
	if e.Operation != "" {
		msg += ": " + e.Operation
	}
	return msg
}

func (e *IncompatibleOpsError) Unwrap() error { return ErrIncompatibleOps }

func (e *IncompatibleOpsError) Is(target error) bool { return target == ErrIncompatibleOps }

// SchemaConflictError represents a bootstrap-time registration conflict:
// a duplicate version, an unresolved parent, or a duplicate fix key
// (spec §7 SchemaConflict, §4.8).
type SchemaConflictError struct {
	// Kind describes the conflict: "duplicate-version", "unresolved-parent",
	// or "duplicate-fix".
	Kind string
	// Detail carries the offending version, type, or fix name.
	Detail string
}

func (e *SchemaConflictError) Error() string {
	return fmt.Sprintf("schema conflict (%s): %s", e.Kind, e.Detail)
}

func (e *SchemaConflictError) Unwrap() error { return ErrSchemaConflict }

func (e *SchemaConflictError) Is(target error) bool { return target == ErrSchemaConflict }

// MergeConflictError represents merge_to_map/merge_to_list being called
// with a non-map/non-list input on one or both sides (spec §7
// MergeConflict).
type MergeConflictError struct {
	// Side identifies which operand was not the expected shape: "left",
	// "right", or "both".
	Side string
}

func (e *MergeConflictError) Error() string {
	return fmt.Sprintf("merge conflict: %s operand is not a map", e.Side)
}

func (e *MergeConflictError) Unwrap() error { return ErrMergeConflict }

func (e *MergeConflictError) Is(target error) bool { return target == ErrMergeConflict }
