// Package tokenize segments English text into sentences of word tokens.
//
// The Tokenizer contract is intentionally small: given normalized text, return
// the sentences in order, each as the ordered raw tokens it contains.
// Punctuation stays in the stream as separate tokens; callers decide what
// counts as a word.
//
// Two segmenters are provided. Punkt uses the unsupervised Punkt model from
// github.com/neurosnap/sentences and is the default. Rules splits on terminal
// punctuation with a small abbreviation list and needs no model. Both share
// SplitWords for word-level tokenization.
package tokenize
