// Package frequency counts word keys per language and turns the counts
// into dense frequency ranks.
package frequency

import (
	"context"
	"sort"

	"github.com/tomcumming/tatoeba-easy-translations/pkg/corpus"
	"github.com/tomcumming/tatoeba-easy-translations/pkg/tokenize"
)

// Table maps a word key to the number of times it occurs.
type Table map[string]int

// Count streams the sentences of path once and counts the word keys of
// every sentence whose language is exactly lang.
func Count(ctx context.Context, src corpus.Source, path, lang string, tok tokenize.Tokenizer) (Table, error) {
	freq := make(Table)
	err := src.Sentences(ctx, path, func(s corpus.Sentence) error {
		if s.Lang != lang {
			return nil
		}
		for _, word := range tokenize.Words(tok.Tokenize(s.Text)) {
			freq[word]++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return freq, nil
}

// Entry is one row of a frequency listing.
type Entry struct {
	Word  string
	Count int
	Rank  int
}

// RankTable maps a word key to its dense rank. Rank 0 is the group of the
// most frequent words; words with equal counts share a rank.
type RankTable struct {
	ranks  map[string]int
	groups []int // distinct counts, descending; index is the rank
}

// Ranks derives the dense rank table of freq.
func Ranks(freq Table) RankTable {
	seen := make(map[int]bool)
	var counts []int
	for _, c := range freq {
		if !seen[c] {
			seen[c] = true
			counts = append(counts, c)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(counts)))

	rankOf := make(map[int]int, len(counts))
	for i, c := range counts {
		rankOf[c] = i
	}

	ranks := make(map[string]int, len(freq))
	for word, c := range freq {
		ranks[word] = rankOf[c]
	}
	return RankTable{ranks: ranks, groups: counts}
}

// Rank returns the rank of word and whether it is known.
func (rt RankTable) Rank(word string) (int, bool) {
	r, ok := rt.ranks[word]
	return r, ok
}

// Len returns the number of distinct words.
func (rt RankTable) Len() int { return len(rt.ranks) }

// Groups returns the distinct counts from most to least frequent; the
// index of a count is its rank.
func (rt RankTable) Groups() []int {
	out := make([]int, len(rt.groups))
	copy(out, rt.groups)
	return out
}

// Entries lists every word of freq by ascending rank, ties ordered by
// word key.
func Entries(freq Table) []Entry {
	rt := Ranks(freq)
	entries := make([]Entry, 0, len(freq))
	for word, c := range freq {
		entries = append(entries, Entry{Word: word, Count: c, Rank: rt.ranks[word]})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Rank != entries[j].Rank {
			return entries[i].Rank < entries[j].Rank
		}
		return entries[i].Word < entries[j].Word
	})
	return entries
}
