package document

import (
	"encoding/hex"
	"strings"

	"github.com/zeebo/blake3"
)

// Token is one normalized word.
type Token struct {
	Text string `json:"text"`
	// Terminal is set when the token carries the sentence-ending period.
	Terminal bool `json:"terminal,omitempty"`
	// Alphabetic is set when the token belongs to the stemmed alphabet.
	Alphabetic bool `json:"alphabetic,omitempty"`
}

// Sentence is an ordered run of tokens.
type Sentence struct {
	Tokens   []Token `json:"tokens"`
	Terminal bool    `json:"terminal,omitempty"`
}

// Text joins the sentence tokens with single spaces.
func (s Sentence) Text() string {
	words := make([]string, len(s.Tokens))
	for i, tok := range s.Tokens {
		words[i] = tok.Text
	}
	return strings.Join(words, " ")
}

// Position locates a global index inside the sentence list.
type Position struct {
	Sentence int `json:"sentence"`
	Word     int `json:"word"`
}

// Document is a flattened, indexed view over sentences. The zero value is an
// empty document.
type Document struct {
	sentences []Sentence
	tokens    []Token
	positions []Position
}

// Build indexes sentences into a Document. The sentences are copied so later
// changes by the caller cannot alter the document.
func Build(sentences []Sentence) Document {
	total := 0
	for _, s := range sentences {
		total += len(s.Tokens)
	}
	doc := Document{
		sentences: make([]Sentence, len(sentences)),
		tokens:    make([]Token, 0, total),
		positions: make([]Position, 0, total),
	}
	for si, s := range sentences {
		toks := make([]Token, len(s.Tokens))
		copy(toks, s.Tokens)
		doc.sentences[si] = Sentence{Tokens: toks, Terminal: s.Terminal}
		for wi, tok := range toks {
			doc.tokens = append(doc.tokens, tok)
			doc.positions = append(doc.positions, Position{Sentence: si, Word: wi})
		}
	}
	return doc
}

// Len returns the number of tokens.
func (d Document) Len() int { return len(d.tokens) }

// SentenceCount returns the number of sentences.
func (d Document) SentenceCount() int { return len(d.sentences) }

// Sentence returns the sentence at index i.
func (d Document) Sentence(i int) Sentence { return d.sentences[i] }

// Sentences returns a copy of the sentence list.
func (d Document) Sentences() []Sentence {
	out := make([]Sentence, len(d.sentences))
	copy(out, d.sentences)
	return out
}

// Token returns the token at global index i.
func (d Document) Token(i int) Token { return d.tokens[i] }

// Position maps a global index to its sentence and word slot. ok is false
// when i is out of range.
func (d Document) Position(i int) (Position, bool) {
	if i < 0 || i >= len(d.positions) {
		return Position{}, false
	}
	return d.positions[i], true
}

// GlobalIndex maps a sentence and word slot back to a global index.
func (d Document) GlobalIndex(p Position) (int, bool) {
	if p.Sentence < 0 || p.Sentence >= len(d.sentences) {
		return 0, false
	}
	if p.Word < 0 || p.Word >= len(d.sentences[p.Sentence].Tokens) {
		return 0, false
	}
	base := 0
	for i := 0; i < p.Sentence; i++ {
		base += len(d.sentences[i].Tokens)
	}
	return base + p.Word, true
}

// Words returns the matching keys of all tokens in global index order.
func (d Document) Words() []string {
	words := make([]string, len(d.tokens))
	for i, tok := range d.tokens {
		words[i] = tok.Text
	}
	return words
}

// Text renders the document with sentences on separate lines.
func (d Document) Text() string {
	lines := make([]string, len(d.sentences))
	for i, s := range d.sentences {
		lines[i] = s.Text()
	}
	return strings.Join(lines, "\n")
}

// Digest returns the hex BLAKE3 hash of Text.
func (d Document) Digest() string {
	sum := blake3.Sum256([]byte(d.Text()))
	return hex.EncodeToString(sum[:])
}
