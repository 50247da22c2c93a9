// Package ranker hands a search key and a candidate corpus to a fuzzy
// matcher and returns the matching candidates in the matcher's order.
//
// The production implementation is Fzf, which runs fzf in filter mode
// (--filter <key> --no-sort) as a child process. The call is a single
// blocking round-trip: the corpus is streamed to the child's stdin, the
// pipe is closed, and output is read only after the child exits. There is
// no retry and no in-process fallback matcher.
//
// Package rankertest provides substitutes for tests.
package ranker
