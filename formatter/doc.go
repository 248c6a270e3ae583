// Package formatter converts arbitrary text into named case formats.
//
// This package renders the word sequences produced by the tokenizer
// package into the common identifier and display casings. Each format
// is available as a method on Formatter, as a package-level convenience
// function using default settings, and through the Case enum for
// dynamic dispatch.
//
// # Case Formats
//
//   - CaseCamel: "Hello World" -> "helloWorld"
//   - CasePascal: "hello world" -> "HelloWorld"
//   - CaseSnake: "Hello World" -> "hello_world"
//   - CaseScreamingSnake: "hello world" -> "HELLO_WORLD"
//   - CaseKebab: "HelloWorld" -> "hello-world"
//   - CaseDot: "  hello  WORLD  " -> "hello.world"
//   - CaseTitle: "hello_world" -> "Hello World"
//
// # Tokenization
//
// Every format except kebab-case tokenizes its input first and
// inherits the tokenizer's validation contract: empty or
// whitespace-only input, input with no word characters, and (under the
// default strict policy) input beginning with a decimal digit are all
// rejected with typed errors from the caseerrors package. The
// tokenization policy is configurable per Formatter:
//
//	f := formatter.New()
//	f.Policy = tokenizer.PolicyAlphanumeric
//	out, err := f.CamelCase("123abc") // "123abc": no leading-digit check
//
// Kebab-case is different: it rewrites the whole string through ordered
// substitution passes (camelCase boundary hyphenation, lowercasing,
// separator replacement, hyphen collapsing) and only rejects empty or
// whitespace-only input. See Formatter.KebabCase for the exact pass
// order and its degenerate cases.
//
// # Basic Usage
//
//	out, err := formatter.CamelCase("hello_world")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(out) // helloWorld
//
// Dynamic dispatch through the Case enum:
//
//	out, err := formatter.Format("Hello World", formatter.CaseKebab)
//	// out = "hello-world"
//
// # Configured Usage
//
// Functional options combine input selection and configuration:
//
//	out, err := formatter.FormatWithOptions(
//	    formatter.WithInput("order items"),
//	    formatter.WithCase(formatter.CaseDot),
//	    formatter.WithPolicy(tokenizer.PolicyAlphanumeric),
//	)
//
// The full option set:
//
//   - WithInput: the string to format
//   - WithValue: a dynamically typed input, rejected unless it is a string
//   - WithCase: the target case format
//   - WithPolicy: the tokenization policy
//   - WithLogger: a tokenizer.Logger for debug diagnostics
//
// # Dynamic Input
//
// FormatValue and WithValue accept any-typed values from dynamic
// boundaries such as decoded JSON. Non-string values are rejected with
// a *caseerrors.TypeError, and nil is reported distinctly:
//
//	_, err := formatter.FormatValue(42, formatter.CaseCamel)
//	// err: input type error: expected a string, got int
//
//	_, err = formatter.FormatValue(nil, formatter.CaseKebab)
//	// err: nil input: expected a string
//
// # Error Handling
//
// All validation failures are typed errors supporting errors.Is and
// errors.As:
//
//	_, err := formatter.CamelCase("123abc")
//	if errors.Is(err, caseerrors.ErrLeadingDigit) {
//	    // rejected by the strict tokenization policy
//	}
package formatter
