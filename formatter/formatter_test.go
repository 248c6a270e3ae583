package formatter

import (
	"errors"
	"regexp"
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/casetools/caseerrors"
	"github.com/erraggy/casetools/tokenizer"
)

func TestCamelCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "space separated",
			input: "Hello World",
			want:  "helloWorld",
		},
		{
			name:  "underscore separated",
			input: "hello_world",
			want:  "helloWorld",
		},
		{
			name:  "three words",
			input: "hello world foo",
			want:  "helloWorldFoo",
		},
		{
			name:  "surrounding and internal whitespace",
			input: "  spaced   out  ",
			want:  "spacedOut",
		},
		{
			name:  "all caps input",
			input: "HELLO WORLD",
			want:  "helloWorld",
		},
		{
			name:  "single word",
			input: "Hello",
			want:  "hello",
		},
		{
			name:  "single letter",
			input: "X",
			want:  "x",
		},
		{
			name:  "single letter words",
			input: "a b c",
			want:  "aBC",
		},
		{
			name:  "punctuation acts as separator",
			input: "foo.bar",
			want:  "fooBar",
		},
		{
			name:  "digit-only middle word",
			input: "user 2 id",
			want:  "user2Id",
		},
		{
			name:  "mixed separators",
			input: "alpha_beta gamma",
			want:  "alphaBetaGamma",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CamelCase(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "CamelCase(%q)", tt.input)
		})
	}
}

func TestCamelCaseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "empty string",
			input:   "",
			wantErr: caseerrors.ErrEmptyInput,
		},
		{
			name:    "whitespace only",
			input:   "   \t\n",
			wantErr: caseerrors.ErrEmptyInput,
		},
		{
			name:    "leading digit",
			input:   "123abc",
			wantErr: caseerrors.ErrLeadingDigit,
		},
		{
			name:    "punctuation only",
			input:   "!!!",
			wantErr: caseerrors.ErrNoWordCharacters,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CamelCase(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, got)
		})
	}
}

func TestPascalCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "space separated",
			input: "hello world",
			want:  "HelloWorld",
		},
		{
			name:  "underscore separated",
			input: "user_profile",
			want:  "UserProfile",
		},
		{
			name:  "all caps word is normalized",
			input: "API client",
			want:  "ApiClient",
		},
		{
			name:  "hyphen separated",
			input: "api-client",
			want:  "ApiClient",
		},
		{
			name:  "single word",
			input: "widget",
			want:  "Widget",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PascalCase(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "PascalCase(%q)", tt.input)
		})
	}
}

func TestSnakeCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "space separated",
			input: "Hello World",
			want:  "hello_world",
		},
		{
			name:  "already snake",
			input: "hello_world",
			want:  "hello_world",
		},
		{
			name:  "camel input stays one word",
			input: "fooBar",
			want:  "foobar",
		},
		{
			name:  "mixed case words",
			input: "Max RETRY Count",
			want:  "max_retry_count",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SnakeCase(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "SnakeCase(%q)", tt.input)
		})
	}
}

func TestScreamingSnakeCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "space separated",
			input: "hello world",
			want:  "HELLO_WORLD",
		},
		{
			name:  "mixed case",
			input: "max Buffer size",
			want:  "MAX_BUFFER_SIZE",
		},
		{
			name:  "digits survive",
			input: "retry after 30",
			want:  "RETRY_AFTER_30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ScreamingSnakeCase(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "ScreamingSnakeCase(%q)", tt.input)
		})
	}
}

func TestDotCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "padded mixed case",
			input: "  hello  WORLD  ",
			want:  "hello.world",
		},
		{
			name:  "underscore separated",
			input: "foo_bar",
			want:  "foo.bar",
		},
		{
			name:  "already dotted",
			input: "a.b.c",
			want:  "a.b.c",
		},
		{
			name:  "config key shape",
			input: "Server Read Timeout",
			want:  "server.read.timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DotCase(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "DotCase(%q)", tt.input)
		})
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "underscore separated",
			input: "hello_world",
			want:  "Hello World",
		},
		{
			name:  "mixed case words",
			input: "the QUICK brown",
			want:  "The Quick Brown",
		},
		{
			name:  "single word",
			input: "title",
			want:  "Title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TitleCase(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "TitleCase(%q)", tt.input)
		})
	}
}

func TestFormat(t *testing.T) {
	// One input, every target: the word sequence is identical across
	// formats, only the rendering differs.
	const input = "Hello World"

	tests := []struct {
		target Case
		want   string
	}{
		{CaseCamel, "helloWorld"},
		{CasePascal, "HelloWorld"},
		{CaseSnake, "hello_world"},
		{CaseScreamingSnake, "HELLO_WORLD"},
		{CaseKebab, "hello-world"},
		{CaseDot, "hello.world"},
		{CaseTitle, "Hello World"},
	}

	for _, tt := range tests {
		t.Run(string(tt.target), func(t *testing.T) {
			got, err := Format(input, tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "Format(%q, %q)", input, tt.target)
		})
	}
}

func TestFormatInvalidCase(t *testing.T) {
	got, err := Format("hello world", Case("shouty"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid case "shouty"`)
	assert.Contains(t, err.Error(), "must be one of:")
	assert.Empty(t, got)
}

func TestFormatValue(t *testing.T) {
	t.Run("string value succeeds", func(t *testing.T) {
		got, err := FormatValue("hello world", CaseCamel)
		require.NoError(t, err)
		assert.Equal(t, "helloWorld", got)
	})

	t.Run("non-string value is rejected", func(t *testing.T) {
		got, err := FormatValue(42, CaseCamel)
		require.Error(t, err)
		assert.ErrorIs(t, err, caseerrors.ErrInputType)
		assert.NotErrorIs(t, err, caseerrors.ErrNilInput)
		assert.Equal(t, "input type error: expected a string, got int", err.Error())
		assert.Empty(t, got)
	})

	t.Run("nil value gets a distinct message", func(t *testing.T) {
		got, err := FormatValue(nil, CaseCamel)
		require.Error(t, err)
		assert.ErrorIs(t, err, caseerrors.ErrInputType)
		assert.ErrorIs(t, err, caseerrors.ErrNilInput)
		assert.Equal(t, "nil input: expected a string", err.Error())
		assert.Empty(t, got)
	})

	t.Run("kebab target distinguishes nil from wrong type", func(t *testing.T) {
		_, nilErr := FormatValue(nil, CaseKebab)
		require.Error(t, nilErr)
		assert.ErrorIs(t, nilErr, caseerrors.ErrNilInput)

		_, typeErr := FormatValue([]string{"x"}, CaseKebab)
		require.Error(t, typeErr)
		assert.ErrorIs(t, typeErr, caseerrors.ErrInputType)
		assert.NotErrorIs(t, typeErr, caseerrors.ErrNilInput)
	})
}

func TestFormatterPolicy(t *testing.T) {
	t.Run("strict rejects leading digit", func(t *testing.T) {
		f := New()
		_, err := f.CamelCase("123abc")
		require.Error(t, err)
		assert.ErrorIs(t, err, caseerrors.ErrLeadingDigit)
	})

	t.Run("alphanumeric accepts leading digit", func(t *testing.T) {
		f := New()
		f.Policy = tokenizer.PolicyAlphanumeric
		got, err := f.CamelCase("123abc")
		require.NoError(t, err)
		assert.Equal(t, "123abc", got)
	})

	t.Run("policy applies to every format on the formatter", func(t *testing.T) {
		f := New()
		f.Policy = tokenizer.PolicyAlphanumeric
		got, err := f.DotCase("v1.2.3")
		require.NoError(t, err)
		assert.Equal(t, "v1.2.3", got)
	})

	t.Run("invalid policy is rejected", func(t *testing.T) {
		f := New()
		f.Policy = tokenizer.Policy("lenient")
		_, err := f.CamelCase("hello world")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `invalid policy "lenient"`)
	})
}

func TestCamelCaseProperties(t *testing.T) {
	inputs := []string{
		"Hello World",
		"hello_world",
		"the quick brown fox",
		"a b c",
		"SCREAMING WORDS",
		"mixed_Separators here",
		"word",
	}

	for _, input := range inputs {
		got, err := CamelCase(input)
		require.NoError(t, err, "CamelCase(%q)", input)

		assert.False(t, strings.ContainsAny(got, " -_."),
			"CamelCase(%q) = %q contains a separator", input, got)

		first, _ := utf8.DecodeRuneInString(got)
		assert.False(t, unicode.IsUpper(first),
			"CamelCase(%q) = %q starts with an upper-case letter", input, got)
	}
}

var dotShape = regexp.MustCompile(`^[a-z0-9]+(\.[a-z0-9]+)*$`)

func TestDotCaseShape(t *testing.T) {
	inputs := []string{
		"Hello World",
		"foo_bar_baz",
		"  padded  input  ",
		"ONE",
		"a.b.c",
		"server read timeout 30",
	}

	for _, input := range inputs {
		got, err := DotCase(input)
		require.NoError(t, err, "DotCase(%q)", input)
		assert.Regexp(t, dotShape, got, "DotCase(%q)", input)
	}
}

func TestDotCaseIdempotent(t *testing.T) {
	// Dot-cased output tokenizes back to the same words under either
	// policy, so a second pass is a no-op.
	inputs := []string{
		"Hello World",
		"foo_bar",
		"already.dotted",
		"one",
	}

	for _, policy := range []tokenizer.Policy{tokenizer.PolicyStrict, tokenizer.PolicyAlphanumeric} {
		f := New()
		f.Policy = policy
		for _, input := range inputs {
			once, err := f.DotCase(input)
			require.NoError(t, err, "DotCase(%q) under %s", input, policy)
			twice, err := f.DotCase(once)
			require.NoError(t, err, "DotCase(%q) under %s", once, policy)
			assert.Equal(t, once, twice, "DotCase not idempotent under %s for %q", policy, input)
		}
	}
}

func TestWordOrderAcrossFormats(t *testing.T) {
	const input = "the quick brown fox"

	camel, err := CamelCase(input)
	require.NoError(t, err)
	assert.Equal(t, "theQuickBrownFox", camel)

	dot, err := DotCase(input)
	require.NoError(t, err)
	assert.Equal(t, "the.quick.brown.fox", dot)

	snake, err := SnakeCase(input)
	require.NoError(t, err)
	assert.Equal(t, "the_quick_brown_fox", snake)

	kebab, err := KebabCase(input)
	require.NoError(t, err)
	assert.Equal(t, "the-quick-brown-fox", kebab)
}

func TestNew(t *testing.T) {
	f := New()
	assert.Equal(t, tokenizer.DefaultPolicy, f.Policy)
	assert.NotNil(t, f.Logger)
}

func TestIsValidCase(t *testing.T) {
	for _, c := range ValidCases() {
		assert.True(t, IsValidCase(c), "IsValidCase(%q)", c)
	}
	assert.False(t, IsValidCase("shouty"))
	assert.False(t, IsValidCase(""))
	assert.False(t, IsValidCase("Camel"))
}

func TestValidCases(t *testing.T) {
	cases := ValidCases()
	assert.Len(t, cases, 7)
	assert.Contains(t, cases, string(CaseCamel))
	assert.Contains(t, cases, string(CaseKebab))
	assert.Contains(t, cases, string(CaseTitle))
}

func TestErrorTypesSurviveFormatting(t *testing.T) {
	// The concrete error types remain extractable through the formatter
	// layer, not just the sentinel categories.
	_, err := CamelCase("42nd street")
	require.Error(t, err)

	var digitErr *caseerrors.LeadingDigitError
	require.True(t, errors.As(err, &digitErr))
	assert.Equal(t, '4', digitErr.Digit)
	assert.Equal(t, "42nd street", digitErr.Input)
}
