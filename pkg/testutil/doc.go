// Package testutil provides isolated test environments for fzf-alt.
//
// Key components:
//   - TestEnvironment: a temporary project root with its own config and
//     state directories, selected through environment variables
//   - WriteFakeFzf: a shell script standing in for fzf's filter mode
//
// Every environment variable and working directory change is undone when
// the test ends, so tests using an environment must not run in parallel.
package testutil
