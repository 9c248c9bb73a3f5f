package schemas

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateProfile_Valid(t *testing.T) {
	doc := `{
		"fullName": "Rishi Kumar",
		"email": "rishi@example.com",
		"graduationYear": "2025",
		"customField": "anything"
	}`
	assert.NoError(t, ValidateProfile([]byte(doc)))
}

func TestValidateProfile_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "empty object", doc: `{}`},
		{name: "non-string value", doc: `{"cgpa": 8.2}`},
		{name: "bad graduation year", doc: `{"graduationYear": "25"}`},
		{name: "not an object", doc: `["fullName"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProfile([]byte(tt.doc))
			require.Error(t, err)

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.NotEmpty(t, validationErr.Errors)
		})
	}
}

func TestValidateProfile_ErrorListsFields(t *testing.T) {
	err := ValidateProfile([]byte(`{"cgpa": 8.2, "graduationYear": "25"}`))
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.Len(t, validationErr.Errors, 2)

	fields := []string{validationErr.Errors[0].Field, validationErr.Errors[1].Field}
	assert.Contains(t, fields, "cgpa")
	assert.Contains(t, fields, "graduationYear")
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidateProfile_MalformedJSON(t *testing.T) {
	err := ValidateProfile([]byte(`{not json`))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestValidateProfileFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"email": "rishi@example.com"}`), 0644))
	assert.NoError(t, ValidateProfileFile(path))
}

func TestValidateProfileFile_Missing(t *testing.T) {
	err := ValidateProfileFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorContains(t, err, "failed to read JSON file")
}

func TestValidateJSONString_BadSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": 42}`, `{}`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}
