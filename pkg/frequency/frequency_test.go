package frequency

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/tomcumming/tatoeba-easy-translations/pkg/corpus"
	"github.com/tomcumming/tatoeba-easy-translations/pkg/tokenize"
)

const sample = "1\teng\tThe cat sat.\n" +
	"2\teng\tThe dog ran fast quickly.\n" +
	"3\tfra\tLe chat.\n"

func writeCorpus(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sentences.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write corpus: %v", err)
	}
	return path
}

func TestCount(t *testing.T) {
	path := writeCorpus(t, sample)

	freq, err := Count(context.Background(), corpus.Source{}, path, "eng", tokenize.Delimiter{})
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	want := Table{"THE": 2, "CAT": 1, "SAT": 1, "DOG": 1, "RAN": 1, "FAST": 1, "QUICKLY": 1}
	if !reflect.DeepEqual(freq, want) {
		t.Errorf("Count = %v, want %v", freq, want)
	}
}

func TestCountIgnoresOtherLanguages(t *testing.T) {
	path := writeCorpus(t, sample+"4\tengx\tThe\n5\tEng\tThe\n")

	freq, err := Count(context.Background(), corpus.Source{}, path, "eng", tokenize.Delimiter{})
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if freq["THE"] != 2 {
		t.Errorf("THE counted %d times, want 2 (language match must be exact)", freq["THE"])
	}
	if _, ok := freq["CHAT"]; ok {
		t.Error("fra word leaked into eng table")
	}
}

func TestCountMergesCanonicalForms(t *testing.T) {
	path := writeCorpus(t, "1\tfra\tcafe\u0301\n2\tfra\tCAF\u00c9\n3\tfra\tcaf\u00e9\n")

	freq, err := Count(context.Background(), corpus.Source{}, path, "fra", tokenize.Delimiter{})
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if len(freq) != 1 || freq["CAF\u00c9"] != 3 {
		t.Errorf("expected one bucket of 3, got %v", freq)
	}
}

func TestCountMalformedLine(t *testing.T) {
	path := writeCorpus(t, sample+"oops\n")
	if _, err := Count(context.Background(), corpus.Source{}, path, "eng", tokenize.Delimiter{}); !corpus.IsMalformed(err) {
		t.Fatalf("expected malformed line error, got %v", err)
	}
}

func TestRanksDense(t *testing.T) {
	freq := Table{"A": 10, "B": 10, "C": 7, "D": 3, "E": 3, "F": 1}
	rt := Ranks(freq)

	want := map[string]int{"A": 0, "B": 0, "C": 1, "D": 2, "E": 2, "F": 3}
	for word, rank := range want {
		got, ok := rt.Rank(word)
		if !ok {
			t.Fatalf("Rank(%q) missing", word)
		}
		if got != rank {
			t.Errorf("Rank(%q) = %d, want %d", word, got, rank)
		}
	}
	if _, ok := rt.Rank("Z"); ok {
		t.Error("Rank(Z) should be unknown")
	}
	if !reflect.DeepEqual(rt.Groups(), []int{10, 7, 3, 1}) {
		t.Errorf("Groups = %v", rt.Groups())
	}
	if rt.Len() != 6 {
		t.Errorf("Len = %d, want 6", rt.Len())
	}
}

func TestRanksMonotonic(t *testing.T) {
	freq := Table{}
	for i, w := range []string{"A", "B", "C", "D", "E", "F", "G", "H"} {
		freq[w] = (i * 7) % 5
	}
	rt := Ranks(freq)
	for w1, c1 := range freq {
		for w2, c2 := range freq {
			r1, _ := rt.Rank(w1)
			r2, _ := rt.Rank(w2)
			switch {
			case c1 > c2 && r1 >= r2:
				t.Errorf("count(%s)=%d > count(%s)=%d but rank %d >= %d", w1, c1, w2, c2, r1, r2)
			case c1 == c2 && r1 != r2:
				t.Errorf("equal counts for %s and %s but ranks %d and %d", w1, w2, r1, r2)
			}
		}
	}
}

func TestRanksDeterministic(t *testing.T) {
	path := writeCorpus(t, sample)
	first, err := Count(context.Background(), corpus.Source{}, path, "eng", tokenize.Delimiter{})
	if err != nil {
		t.Fatal(err)
	}
	second, err := Count(context.Background(), corpus.Source{}, path, "eng", tokenize.Delimiter{})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(Ranks(first), Ranks(second)) {
		t.Error("rank tables differ between identical runs")
	}
}

func TestRanksEmpty(t *testing.T) {
	rt := Ranks(Table{})
	if rt.Len() != 0 || len(rt.Groups()) != 0 {
		t.Errorf("expected empty rank table, got %d words / %v", rt.Len(), rt.Groups())
	}
}

func TestEntries(t *testing.T) {
	path := writeCorpus(t, sample)
	freq, err := Count(context.Background(), corpus.Source{}, path, "eng", tokenize.Delimiter{})
	if err != nil {
		t.Fatal(err)
	}

	got := Entries(freq)
	want := []Entry{
		{Word: "THE", Count: 2, Rank: 0},
		{Word: "CAT", Count: 1, Rank: 1},
		{Word: "DOG", Count: 1, Rank: 1},
		{Word: "FAST", Count: 1, Rank: 1},
		{Word: "QUICKLY", Count: 1, Rank: 1},
		{Word: "RAN", Count: 1, Rank: 1},
		{Word: "SAT", Count: 1, Rank: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Entries =\n%v\nwant\n%v", got, want)
	}
}
