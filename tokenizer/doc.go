// Package tokenizer splits arbitrary text into ordered word tokens for
// case conversion.
//
// The tokenizer is the shared front end for the formatter package: it
// validates input and produces the non-empty word sequence that the
// case formats re-case and join. Two policies are available:
//
//   - PolicyStrict (default): trims surrounding whitespace, rejects
//     input whose first character is a decimal digit, reduces
//     punctuation to word boundaries, and splits on runs of whitespace
//     and underscores.
//   - PolicyAlphanumeric: splits the trimmed input on every run of
//     characters that are not ASCII letters or digits, with no
//     leading-digit rejection.
//
// Under both policies tokens keep their original casing, appear in
// input order, and are never empty. Inputs that produce no tokens are
// rejected with a typed error from the caseerrors package, so a nil
// error always means at least one token.
//
// # Basic Usage
//
//	words, err := tokenizer.Tokenize("the quick brown fox")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// words = ["the", "quick", "brown", "fox"]
//
// # Configured Usage
//
//	t := tokenizer.New()
//	t.Policy = tokenizer.PolicyAlphanumeric
//	words, err := t.Tokenize("v1.2.3-beta")
//	// words = ["v1", "2", "3", "beta"]
//
// Functional options mirror the struct API and add dynamically typed
// input:
//
//	words, err := tokenizer.TokenizeWithOptions(
//	    tokenizer.WithValue(untrusted),
//	    tokenizer.WithPolicy(tokenizer.PolicyAlphanumeric),
//	)
//
// The full option set:
//
//   - WithInput: the string to tokenize
//   - WithValue: a dynamically typed input, rejected unless it is a string
//   - WithPolicy: the tokenization policy
//   - WithLogger: a Logger for debug diagnostics
//
// # Error Handling
//
// All validation failures are typed errors from the caseerrors
// package and can be matched with errors.Is:
//
//	_, err := tokenizer.Tokenize("!!!")
//	if errors.Is(err, caseerrors.ErrNoWordCharacters) {
//	    // input contained only separators and punctuation
//	}
package tokenizer
