package links

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomcumming/tatoeba-easy-translations/pkg/corpus"
)

const sentences = "1\teng\tThe cat sat.\n" +
	"2\teng\tThe dog ran.\n" +
	"3\tfra\tLe chat.\n" +
	"4\tfra\tUn chat.\n" +
	"5\tdeu\tDie Katze.\n" +
	"6\teng\tNo link.\n"

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestResolve(t *testing.T) {
	corpusPath := writeFile(t, "sentences.csv", sentences)
	linkPath := writeFile(t, "links.csv", ""+
		"1\t4\n"+ // eng -> fra, kept
		"1\t3\n"+ // eng -> fra, kept after the first
		"3\t1\n"+ // fra -> eng, wrong direction
		"2\t5\n"+ // eng -> deu, wrong target language
		"1\t4\n"+ // duplicate, kept
		"9\t3\n") // unknown source

	m, err := Resolve(context.Background(), corpus.Source{}, corpusPath, linkPath, "eng", "fra")
	require.NoError(t, err)

	assert.Equal(t, Map{1: {4, 3, 4}}, m)

	first, ok := m.First(1)
	assert.True(t, ok)
	assert.Equal(t, uint64(4), first)

	_, ok = m.First(2)
	assert.False(t, ok)
}

func TestResolveSameLanguage(t *testing.T) {
	corpusPath := writeFile(t, "sentences.csv", sentences)
	linkPath := writeFile(t, "links.csv", "1\t2\n")

	m, err := Resolve(context.Background(), corpus.Source{}, corpusPath, linkPath, "eng", "eng")
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestResolveMalformedLink(t *testing.T) {
	corpusPath := writeFile(t, "sentences.csv", sentences)
	linkPath := writeFile(t, "links.csv", "1\t3\n1\tx\n")

	_, err := Resolve(context.Background(), corpus.Source{}, corpusPath, linkPath, "eng", "fra")
	require.Error(t, err)
	assert.True(t, corpus.IsMalformed(err))
}

func TestResolveMissingLinkFile(t *testing.T) {
	corpusPath := writeFile(t, "sentences.csv", sentences)
	_, err := Resolve(context.Background(), corpus.Source{}, corpusPath, filepath.Join(t.TempDir(), "nope.csv"), "eng", "fra")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestTargets(t *testing.T) {
	m := Map{1: {4, 3}, 2: {4}}
	assert.Equal(t, map[uint64]bool{3: true, 4: true}, m.Targets())
	assert.Empty(t, Map{}.Targets())
}

func TestTranslations(t *testing.T) {
	corpusPath := writeFile(t, "sentences.csv", sentences)

	texts, err := Translations(context.Background(), corpus.Source{}, corpusPath, Map{1: {4, 3}})
	require.NoError(t, err)
	assert.Equal(t, map[uint64]string{3: "Le chat.", 4: "Un chat."}, texts)

	texts, err = Translations(context.Background(), corpus.Source{}, corpusPath, Map{})
	require.NoError(t, err)
	assert.Empty(t, texts)
}
