package dferrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorsIs(t *testing.T) {
	var err error = &TypeMismatchError{Expected: "string", Actual: "map"}
	assert.True(t, errors.Is(err, ErrTypeMismatch))
	assert.False(t, errors.Is(err, ErrFieldMissing))

	err = &FieldCollisionError{Field: "b", Operation: "rename_field"}
	assert.True(t, errors.Is(err, ErrFieldCollision))

	err = &InvalidPathError{Path: "a..b", Reason: "empty segment"}
	assert.True(t, errors.Is(err, ErrInvalidPath))

	err = &IncompatibleOpsError{Operation: "set"}
	assert.True(t, errors.Is(err, ErrIncompatibleOps))

	err = &SchemaConflictError{Kind: "duplicate-version", Detail: "3"}
	assert.True(t, errors.Is(err, ErrSchemaConflict))

	err = &MergeConflictError{Side: "right"}
	assert.True(t, errors.Is(err, ErrMergeConflict))

	err = &FieldMissingError{Field: "name"}
	assert.True(t, errors.Is(err, ErrFieldMissing))
}

func TestErrorsAs(t *testing.T) {
	var err error = &FieldCollisionError{Field: "b", Operation: "group_fields"}
	var fc *FieldCollisionError
	require := assert.New(t)
	require.True(errors.As(err, &fc))
	require.Equal("b", fc.Field)
	require.Equal("group_fields", fc.Operation)
}

func TestErrorMessages(t *testing.T) {
	assert.Contains(t, (&TypeMismatchError{Expected: "string", Actual: "map", Path: "$.a"}).Error(), "$.a")
	assert.Contains(t, (&FieldMissingError{Field: "name"}).Error(), "name")
	assert.Contains(t, (&FieldCollisionError{Field: "b", Operation: "rename_field"}).Error(), "rename_field")
	assert.Contains(t, (&InvalidPathError{Path: "a..b"}).Error(), "a..b")
	assert.Contains(t, (&IncompatibleOpsError{Operation: "set"}).Error(), "set")
	assert.Contains(t, (&SchemaConflictError{Kind: "duplicate-fix", Detail: "PLAYER"}).Error(), "PLAYER")
	assert.Contains(t, (&MergeConflictError{Side: "left"}).Error(), "left")
}
