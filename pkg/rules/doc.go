// Package rules compiles per-filetype rule pairs and applies them to file
// names.
//
// A rule has two regular expressions:
//
//   - the test pattern classifies a path as a test file when it matches
//     anywhere in the path
//   - the strip pattern extracts the search key from a path through its
//     named group "p"
//
// Both operations are total. A path the test pattern does not match is not
// a test; a path the strip pattern cannot reduce is its own key:
//
//	rule.ExtractKey("lib/example/content.ex")               // "content"
//	rule.ExtractKey("test/example/content/content_test.exs") // "content"
//	rule.ExtractKey("README.md")                            // "README.md"
//	rule.IsTest("test/example/content/content_test.exs")    // true
//
// A Table is compiled once from configuration and is read-only afterwards.
package rules
