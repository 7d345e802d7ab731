// Package batch generates concordances for many input files in parallel.
//
// Each worker builds its own tokenizer and Generator, so no state is shared
// between goroutines. Per-file failures are reported in the matching Result
// and never stop sibling files; cancelling the context stops new work.
package batch
