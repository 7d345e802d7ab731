// Package concordance builds alphabetical word indexes with frequency counts
// and sentence-occurrence lists.
//
// A Generator normalizes input text, hands it to an injected
// tokenize.Tokenizer, and accumulates one WordInfo per distinct lowercase
// word. Lines renders the result as column-aligned report lines prefixed with
// repeated-letter ordinals (a., b., ... z., bb., cc., ...).
//
// Generators hold per-run state and are not safe for concurrent use; create
// one per goroutine. Each Generate call starts from a clean state, so a single
// instance can be reused across texts.
package concordance
