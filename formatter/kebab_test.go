package formatter

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/casetools/caseerrors"
	"github.com/erraggy/casetools/tokenizer"
)

func TestKebabCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "camel boundary",
			input: "HelloWorld",
			want:  "hello-world",
		},
		{
			name:  "space separated",
			input: "Hello World",
			want:  "hello-world",
		},
		{
			name:  "underscore separated",
			input: "hello_world",
			want:  "hello-world",
		},
		{
			name:  "underscore run collapses",
			input: "foo__bar",
			want:  "foo-bar",
		},
		{
			name:  "mixed separators",
			input: "foo bar_baz",
			want:  "foo-bar-baz",
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  padded  ",
			want:  "padded",
		},
		{
			name:  "already kebab",
			input: "already-kebab",
			want:  "already-kebab",
		},
		{
			name:  "edge hyphens stripped",
			input: "--x--",
			want:  "x",
		},
		{
			name:  "multiple camel boundaries",
			input: "fooBarBaz",
			want:  "foo-bar-baz",
		},
		{
			name:  "acronym then camel boundary",
			input: "XMLHttpRequest",
			want:  "xmlhttp-request",
		},
		{
			name:  "acronym without lower-to-upper boundary",
			input: "HTTPServer",
			want:  "httpserver",
		},
		{
			name:  "punctuation passes through",
			input: "hello, world!",
			want:  "hello,-world!",
		},
		{
			name:  "digits survive",
			input: "route 66",
			want:  "route-66",
		},
		{
			name:  "leading digit is not rejected",
			input: "123 main",
			want:  "123-main",
		},
		{
			name:  "underscore between cased letters blocks the boundary",
			input: "Foo_Bar",
			want:  "foo-bar",
		},
		{
			name:  "tab separator",
			input: "foo\tbar",
			want:  "foo-bar",
		},
		{
			name:  "separator-only input yields empty output",
			input: "___",
			want:  "",
		},
		{
			name:  "lone hyphen yields empty output",
			input: "-",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := KebabCase(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "KebabCase(%q)", tt.input)
		})
	}
}

func TestKebabCaseErrors(t *testing.T) {
	t.Run("empty string", func(t *testing.T) {
		got, err := KebabCase("")
		require.Error(t, err)
		assert.ErrorIs(t, err, caseerrors.ErrEmptyInput)
		assert.Equal(t, "empty input", err.Error())
		assert.Empty(t, got)
	})

	t.Run("whitespace only", func(t *testing.T) {
		got, err := KebabCase("   \t ")
		require.Error(t, err)
		assert.ErrorIs(t, err, caseerrors.ErrEmptyInput)
		assert.Equal(t, "empty input: input is whitespace-only", err.Error())
		assert.Empty(t, got)
	})
}

func TestKebabCasePassOrder(t *testing.T) {
	// The boundary pass must run before the lowercasing pass.
	// Lowercasing "HelloWorld" first would leave no lowercase-to-
	// uppercase transition to find, and the two words would collapse
	// into "helloworld". The other tokenizer-backed formats lowercase
	// per word and never see this ordering problem.
	got, err := KebabCase("HelloWorld")
	require.NoError(t, err)
	assert.Equal(t, "hello-world", got)
	assert.NotEqual(t, "helloworld", got)
}

var kebabShape = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestKebabCaseShape(t *testing.T) {
	// For input drawn from letters, digits, whitespace, underscores,
	// and hyphens, the output is hyphen-separated lowercase
	// alphanumeric runs, or empty for separator-only input.
	inputs := []string{
		"Hello World",
		"hello_world",
		"fooBarBaz",
		"a-b-c",
		"route 66",
		"__trim__me__",
		"MixedCase_with spaces",
		"___",
		"- _ -",
	}

	for _, input := range inputs {
		got, err := KebabCase(input)
		require.NoError(t, err, "KebabCase(%q)", input)
		if got == "" {
			continue
		}
		assert.Regexp(t, kebabShape, got, "KebabCase(%q)", input)
	}
}

func TestKebabCaseIgnoresPolicy(t *testing.T) {
	// Kebab-case bypasses the tokenizer, so the configured policy has
	// no effect on it.
	strict := New()
	alnum := New()
	alnum.Policy = tokenizer.PolicyAlphanumeric

	for _, input := range []string{"123 main", "HelloWorld", "foo.bar"} {
		a, err := strict.KebabCase(input)
		require.NoError(t, err)
		b, err := alnum.KebabCase(input)
		require.NoError(t, err)
		assert.Equal(t, a, b, "KebabCase(%q) differs across policies", input)
	}
}
