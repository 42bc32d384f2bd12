// Package directive handles livevars comment directives.
//
// # Supported Directives
//
//	//livevars:ignore - Suppress dead-store reports
//
// # Directive Placement
//
// Directives can be placed:
//   - On the line before the store (most common)
//   - On the same line as the store
//   - In the doc comment of a function declaration (function-level ignore)
//   - In the package doc comment (file-level ignore)
//
// # Examples
//
// Line-level ignore:
//
//	//livevars:ignore
//	err = cleanup()  // This report is suppressed
//
// Same-line ignore:
//
//	x = 0  //livevars:ignore
//
// Function-level ignore:
//
//	//livevars:ignore
//	func legacy() {
//	    // All reports in this function are suppressed
//	}
package directive

import "strings"

const directivePrefix = "livevars:"

// hasDirective checks if a comment contains the specified directive.
// Supports both "//livevars:name" and "// livevars:name".
func hasDirective(text, name string) bool {
	text = strings.TrimPrefix(text, "//")
	text = strings.TrimSpace(text)
	return strings.HasPrefix(text, directivePrefix+name)
}

// IsIgnoreDirective checks if a comment is an ignore directive.
func IsIgnoreDirective(text string) bool { return hasDirective(text, "ignore") }
