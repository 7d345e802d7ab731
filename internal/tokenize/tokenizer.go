package tokenize

// Tokenizer splits text into sentences, each an ordered list of tokens.
// Implementations are restartable: every call starts from scratch.
type Tokenizer interface {
	Tokenize(text string) ([][]string, error)
}

// Func adapts a plain function to the Tokenizer interface.
type Func func(text string) ([][]string, error)

// Tokenize calls f(text).
func (f Func) Tokenize(text string) ([][]string, error) {
	return f(text)
}
