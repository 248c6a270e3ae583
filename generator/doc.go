// Package generator produces Go constant files from lists of raw names.
//
// Each name becomes one exported string constant: the identifier is the
// PascalCase rendering of the name, the value is the name rendered in a
// configurable target case. The generated file carries the standard
// "Code generated" header and is formatted with goimports-equivalent
// processing, so it is immediately compilable.
//
// # Quick Start
//
// Generate constants using functional options:
//
//	result, err := generator.GenerateWithOptions(
//		generator.WithNames([]string{"pending review", "in progress", "done"}),
//		generator.WithPackageName("status"),
//		generator.WithTarget(formatter.CaseSnake),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := result.File.WriteFile("status/names_gen.go"); err != nil {
//		log.Fatal(err)
//	}
//
// Or use a reusable Generator instance:
//
//	g := generator.New()
//	g.PackageName = "status"
//	g.Target = formatter.CaseSnake
//	result, _ := g.Generate([]string{"pending review", "done"})
//
// The example above generates:
//
//	// Code generated by casetools. DO NOT EDIT.
//
//	package status
//
//	// Constant values are rendered in snake case.
//	const (
//		// PendingReview is "pending review" rendered in snake case.
//		PendingReview = "pending_review"
//		// Done is "done" rendered in snake case.
//		Done = "done"
//	)
//
// # Name List Documents
//
// Name lists can also load from YAML documents with an optional package
// field and a names sequence (see NameList). The generator's configured
// package name takes precedence over the document's.
//
// # Options
//
// GenerateWithOptions accepts exactly one name source and any
// combination of configuration options:
//
//   - WithNames: names from a string slice
//   - WithFilePath: names from a YAML document on disk
//   - WithBytes: names from YAML document bytes
//   - WithPackageName: the package name for the generated file
//   - WithTarget: the case format for constant values
//   - WithPolicy: the tokenization policy for names
//   - WithFileName: the name of the generated file (default "names_gen.go")
//   - WithLogger: a tokenizer.Logger for debug diagnostics
//
// # Validation
//
// Every name must tokenize under the configured policy, so the
// tokenizer's error contract applies: empty names, names with no word
// characters, and (under the strict policy) names with a leading digit
// are rejected. Two names that produce the same PascalCase identifier
// are an error, because the generated file would not compile.
package generator
