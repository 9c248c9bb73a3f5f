package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercases and trims",
			input:    "  Full Name  ",
			expected: "full name",
		},
		{
			name:     "strips punctuation",
			input:    "What's your G.P.A.?",
			expected: "whats your gpa",
		},
		{
			name:     "dashes become spaces",
			input:    "10th-percentage",
			expected: "10th percentage",
		},
		{
			name:     "en and em dashes become spaces",
			input:    "roll–number—field",
			expected: "roll number field",
		},
		{
			name:     "diacritics stripped",
			input:    "Résumé Link",
			expected: "resume link",
		},
		{
			name:     "whitespace runs collapse",
			input:    "email \t\n address",
			expected: "email address",
		},
		{
			name:     "digits survive",
			input:    "Class of 2025!",
			expected: "class of 2025",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "punctuation only",
			input:    "?!.,*()",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "btech dotted form",
			input:    "B.Tech",
			expected: "btech",
		},
		{
			name:     "bachelor of technology folds",
			input:    "Bachelor of Technology",
			expected: "btech",
		},
		{
			name:     "computer science and engineering folds to cse",
			input:    "Computer Science and Engineering",
			expected: "cse",
		},
		{
			name:     "ampersand treated as and",
			input:    "Computer Science & Engineering",
			expected: "cse",
		},
		{
			name:     "bare computer science folds",
			input:    "Computer Science",
			expected: "cse",
		},
		{
			name:     "mech folds to me",
			input:    "Mech",
			expected: "me",
		},
		{
			name:     "aiml expands",
			input:    "CSE (AIML)",
			expected: "cse ai ml",
		},
		{
			name:     "information technology folds",
			input:    "Information Technology",
			expected: "it",
		},
		{
			name:     "unrelated text passes through normalized",
			input:    "Willing to Relocate?",
			expected: "willing to relocate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Canonicalize(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, got, Canonicalize(got), "Canonicalize must be idempotent")
		})
	}
}

func TestAcronymize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "multi word phrase",
			input:    "Jawaharlal Nehru Technological University",
			expected: "jntu",
		},
		{
			name:     "existing short acronym lowercased",
			input:    "JNTU",
			expected: "jntu",
		},
		{
			name:     "acronym with digits",
			input:    "IIT2",
			expected: "iit2",
		},
		{
			name:     "mixed case word is not an acronym",
			input:    "Jntu",
			expected: "j",
		},
		{
			name:     "seven caps no longer counts as acronym",
			input:    "ABCDEFG",
			expected: "a",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Acronymize(tt.input))
		})
	}
}

func TestTokenOverlap(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected int
	}{
		{
			name:     "full overlap",
			a:        "full name",
			b:        "name full",
			expected: 2,
		},
		{
			name:     "partial overlap",
			a:        "email address field",
			b:        "your email",
			expected: 1,
		},
		{
			name:     "no overlap",
			a:        "gender",
			b:        "phone number",
			expected: 0,
		},
		{
			name:     "empty side short circuits",
			a:        "",
			b:        "anything",
			expected: 0,
		},
		{
			name:     "duplicate tokens in a each count",
			a:        "name name",
			b:        "name",
			expected: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TokenOverlap(tt.a, tt.b))
		})
	}
}
