package normalize_test

import (
	"reflect"
	"testing"

	"shingle/internal/document"
	"shingle/internal/normalize"
	"shingle/internal/stemmer"
)

func sentenceTexts(sentences []document.Sentence) []string {
	out := make([]string, len(sentences))
	for i, s := range sentences {
		out[i] = s.Text()
	}
	return out
}

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"dashes become spaces", "северо-запад — юг–восток", "северо запад   юг восток"},
		{"strips punctuation", "Привет, мир! (test_1)?", "Привет мир test_1"},
		{"keeps periods", "Конец. Начало.", "Конец. Начало."},
		{"drops foreign letters", "café ünd", "caf nd"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalize.Clean(tt.input); got != tt.want {
				t.Fatalf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCleanComposesDecomposedLetters(t *testing.T) {
	// "й" written as и + combining breve.
	decomposed := "мои\u0306"
	if got := normalize.Clean(decomposed); got != "мой" {
		t.Fatalf("Clean(decomposed) = %q, want %q", got, "мой")
	}
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"two sentences", "Один два. Три четыре.", []string{"Один два.", "Три четыре."}},
		{"no trailing period", "Один. Два", []string{"Один.", "Два"}},
		{"consumes whitespace runs", "Один.   \n\tДва.", []string{"Один.", "Два."}},
		{"no space after period", "3.14", []string{"3.", "14"}},
		{"ellipsis", "Да...", []string{"Да.", ".", "."}},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalize.SplitSentences(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("SplitSentences(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSentencesPipeline(t *testing.T) {
	n := normalize.New()
	got := sentenceTexts(n.Sentences("Кошка и собака живут в доме. Они — друзья!"))
	want := []string{"Кошк соба живу доме.", "Они друз"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Sentences = %#v, want %#v", got, want)
	}
}

func TestSentencesDropsFunctionWordsCaseInsensitively(t *testing.T) {
	n := normalize.New()
	got := sentenceTexts(n.Sentences("И. В дом. На"))
	want := []string{"дом."}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Sentences = %#v, want %#v", got, want)
	}
}

func TestSentencesTokenFlags(t *testing.T) {
	n := normalize.New()
	sentences := n.Sentences("Привет world 42.")
	if len(sentences) != 1 {
		t.Fatalf("expected one sentence, got %d", len(sentences))
	}
	s := sentences[0]
	if !s.Terminal {
		t.Fatal("expected terminal sentence")
	}
	toks := s.Tokens
	if len(toks) != 3 {
		t.Fatalf("expected 3 tokens, got %#v", toks)
	}
	if toks[0].Text != "Прив" || !toks[0].Alphabetic || toks[0].Terminal {
		t.Fatalf("unexpected first token %#v", toks[0])
	}
	if toks[1].Text != "world" || toks[1].Alphabetic {
		t.Fatalf("unexpected second token %#v", toks[1])
	}
	if toks[2].Text != "42." || !toks[2].Terminal || toks[2].Alphabetic {
		t.Fatalf("unexpected third token %#v", toks[2])
	}
}

func TestSentencesEmptyInput(t *testing.T) {
	n := normalize.New()
	for _, input := range []string{"", "   ", "...", "и в на", "!!! ???"} {
		if got := n.Sentences(input); len(got) != 0 {
			t.Fatalf("Sentences(%q) = %#v, want none", input, got)
		}
	}
}

func TestWithFunctionWordsAndStemmer(t *testing.T) {
	n := normalize.New(
		normalize.WithFunctionWords("Под", " "),
		normalize.WithStemmer(stemmer.Func(func(s string) string { return s })),
	)
	if !n.IsFunctionWord("под.") {
		t.Fatal("expected custom function word")
	}
	got := sentenceTexts(n.Sentences("под столом"))
	if !reflect.DeepEqual(got, []string{"столом"}) {
		t.Fatalf("Sentences = %#v", got)
	}
}

func TestDocumentIndexesTokens(t *testing.T) {
	doc := normalize.New().Document("Первое предложение. Второе.")
	if doc.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", doc.Len())
	}
	pos, ok := doc.Position(2)
	if !ok || pos.Sentence != 1 || pos.Word != 0 {
		t.Fatalf("Position(2) = %+v", pos)
	}
}
