// Package options provides shared utilities for option validation across packages.
package options

import (
	"fmt"
	"strings"
)

// RequireOneInput ensures exactly one input source is specified.
// pkg prefixes the error messages (e.g. "tokenizer"); optionNames are
// the option constructor names corresponding to the sources flags, in
// the same order. Returns an error if zero or more than one input
// source is specified.
func RequireOneInput(pkg string, optionNames []string, sources ...bool) error {
	sourceCount := 0
	for _, hasSource := range sources {
		if hasSource {
			sourceCount++
		}
	}

	if sourceCount == 0 {
		return fmt.Errorf("%s: must specify an input source (use %s)", pkg, joinNames(optionNames))
	}
	if sourceCount > 1 {
		return fmt.Errorf("%s: must specify exactly one input source", pkg)
	}

	return nil
}

// joinNames renders option names as "A", "A or B", or "A, B, or C".
func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " or " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", or " + names[len(names)-1]
	}
}
