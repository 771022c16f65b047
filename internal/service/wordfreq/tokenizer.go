package wordfreq

// Tokenizer splits a single line into tokens
type Tokenizer interface {
	// Tokenize calls emit once for every token found in line, in order
	Tokenize(line string, emit func(token string))

	// Name returns the name of the tokenization scheme
	Name() string
}

// ASCIITokenizer treats maximal runs of ASCII letters and digits as tokens.
// Uppercase letters are folded to lowercase. Every other byte, including
// each byte of a multi-byte UTF-8 sequence, is a separator.
type ASCIITokenizer struct {
	buf []byte
}

// NewASCIITokenizer creates a new ASCII tokenizer
func NewASCIITokenizer() *ASCIITokenizer {
	return &ASCIITokenizer{buf: make([]byte, 0, 32)}
}

func (t *ASCIITokenizer) Tokenize(line string, emit func(token string)) {
	word := t.buf[:0]
	for i := 0; i < len(line); i++ {
		b := line[i]
		switch {
		case 'A' <= b && b <= 'Z':
			word = append(word, b|0x20)
		case 'a' <= b && b <= 'z', '0' <= b && b <= '9':
			word = append(word, b)
		default:
			if len(word) > 0 {
				emit(string(word))
				word = word[:0]
			}
		}
	}
	// end of line is a separator
	if len(word) > 0 {
		emit(string(word))
	}
	t.buf = word[:0]
}

func (t *ASCIITokenizer) Name() string {
	return "ascii"
}
