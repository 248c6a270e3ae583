package generator_test

import (
	"fmt"
	"log"
	"strings"

	"github.com/erraggy/casetools/formatter"
	"github.com/erraggy/casetools/generator"
)

// Example demonstrates generating a constant file from a names slice.
func Example() {
	result, err := generator.GenerateWithOptions(
		generator.WithNames([]string{"pending review", "in progress", "done"}),
		generator.WithPackageName("status"),
		generator.WithTarget(formatter.CaseSnake),
	)
	if err != nil {
		log.Fatalf("failed to generate: %v", err)
	}
	fmt.Printf("package: %s\n", result.PackageName)
	fmt.Printf("constants: %d\n", result.GeneratedConstants)
	fmt.Println(strings.Contains(string(result.File.Content), `PendingReview = "pending_review"`))
	// Output:
	// package: status
	// constants: 3
	// true
}

// Example_nameList demonstrates generating from a YAML name list document.
func Example_nameList() {
	doc := []byte(`package: status
names:
  - pending review
  - done
`)

	g := generator.New()
	g.PackageName = ""
	g.Target = formatter.CaseKebab
	result, err := g.GenerateBytes(doc)
	if err != nil {
		log.Fatalf("failed to generate: %v", err)
	}
	fmt.Printf("%s: %d constants in %s\n", result.PackageName, result.GeneratedConstants, result.File.Name)
	// Output:
	// status: 2 constants in names_gen.go
}
