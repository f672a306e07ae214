package recent

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gsearch/internal/models"
	"gsearch/internal/query"
)

func storeAt(t *testing.T, max int) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "gsearch.ini"), max)
}

func TestLoadMissingFileCreatesEmpty(t *testing.T) {
	store := storeAt(t, 0)

	require.NoError(t, store.Load())
	assert.Equal(t, 0, store.Len())

	// the empty file is written so the next run finds one
	_, err := os.Stat(store.Path())
	assert.NoError(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	store := storeAt(t, 0)
	require.NoError(t, store.Load())

	sc := models.NewSearchCriteria()
	sc.AllWords = "annual report"
	sc.TermsLocation = models.LocationTitle
	sc.ExcludeWords = "draft"
	sc.Site = "example.com"
	sc.Filetype = "pdf"
	sc.RangeFrom = "2000"
	sc.RangeTo = "2020"
	sc.After = "2023-01-01"
	sc.SearchType = models.SearchTypeImages
	sc.ColorFilter = models.ColorFilterSpecific
	sc.SpecificColor = "Red"
	sc.Region = "Japan"

	q := query.Build(sc)
	require.NotEmpty(t, q)
	require.NoError(t, store.Save(Entry{Query: q, Criteria: sc}))

	// A fresh store reading the same file must reproduce the record
	// field-for-field and regenerate an identical query string.
	reloaded := NewStore(store.Path(), 0)
	require.NoError(t, reloaded.Load())
	require.Equal(t, 1, reloaded.Len())

	entry, err := reloaded.Get(0)
	require.NoError(t, err)
	assert.Equal(t, q, entry.Query)
	assert.Equal(t, sc, entry.Criteria)
	assert.Equal(t, q, query.Build(entry.Criteria))
}

func TestSaveRoundTripPhraseOnlyQuery(t *testing.T) {
	store := storeAt(t, 0)
	require.NoError(t, store.Load())

	sc := models.NewSearchCriteria()
	sc.ExactPhrase = "to be or not to be"

	q := query.Build(sc)
	require.Equal(t, `"to be or not to be"`, q)
	require.NoError(t, store.Save(Entry{Query: q, Criteria: sc}))

	// The INI writer double-quotes the stored query_1 value, so a naive
	// reload would hand back the phrase with its quotes stripped.
	reloaded := NewStore(store.Path(), 0)
	require.NoError(t, reloaded.Load())
	require.Equal(t, 1, reloaded.Len())

	entry, err := reloaded.Get(0)
	require.NoError(t, err)
	assert.Equal(t, q, entry.Query)
	assert.Equal(t, sc, entry.Criteria)

	// Re-saving the same search after a restart must still deduplicate.
	require.NoError(t, reloaded.Save(Entry{Query: q, Criteria: sc}))
	assert.Equal(t, 1, reloaded.Len())
}

func TestSaveDeduplicatesByQuery(t *testing.T) {
	store := storeAt(t, 0)
	require.NoError(t, store.Load())

	older := models.NewSearchCriteria()
	older.AllWords = "laptop"
	newer := older

	other := models.NewSearchCriteria()
	other.AllWords = "desktop"

	require.NoError(t, store.Save(Entry{Query: query.Build(older), Criteria: older}))
	require.NoError(t, store.Save(Entry{Query: query.Build(other), Criteria: other}))
	require.NoError(t, store.Save(Entry{Query: query.Build(newer), Criteria: newer}))

	queries := store.Queries()
	require.Len(t, queries, 2)
	assert.Equal(t, "laptop", queries[0])
	assert.Equal(t, "desktop", queries[1])
}

func TestSaveTruncatesToMax(t *testing.T) {
	store := storeAt(t, 3)
	require.NoError(t, store.Load())

	for _, word := range []string{"one", "two", "three", "four", "five"} {
		sc := models.NewSearchCriteria()
		sc.AllWords = word
		require.NoError(t, store.Save(Entry{Query: query.Build(sc), Criteria: sc}))
	}

	assert.Equal(t, []string{"five", "four", "three"}, store.Queries())
}

func TestDelete(t *testing.T) {
	store := storeAt(t, 0)
	require.NoError(t, store.Load())

	for _, word := range []string{"one", "two", "three"} {
		sc := models.NewSearchCriteria()
		sc.AllWords = word
		require.NoError(t, store.Save(Entry{Query: query.Build(sc), Criteria: sc}))
	}

	require.NoError(t, store.Delete(1))
	assert.Equal(t, []string{"three", "one"}, store.Queries())

	// deletes persist
	reloaded := NewStore(store.Path(), 0)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, []string{"three", "one"}, reloaded.Queries())
}

func TestDeleteOutOfRange(t *testing.T) {
	store := storeAt(t, 0)
	require.NoError(t, store.Load())

	assert.ErrorIs(t, store.Delete(0), ErrIndexOutOfRange)
	assert.ErrorIs(t, store.Delete(-1), ErrIndexOutOfRange)

	sc := models.NewSearchCriteria()
	sc.AllWords = "one"
	require.NoError(t, store.Save(Entry{Query: "one", Criteria: sc}))
	assert.ErrorIs(t, store.Delete(1), ErrIndexOutOfRange)
	assert.Equal(t, 1, store.Len())
}

func TestGetOutOfRange(t *testing.T) {
	store := storeAt(t, 0)
	require.NoError(t, store.Load())

	_, err := store.Get(0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = store.Get(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestLoadMalformedPartsLeavesEmptyList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gsearch.ini")
	content := strings.Join([]string{
		"[Recent]",
		"query_1 = laptop",
		"parts_1 = not-json",
		"",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	store := NewStore(path, 0)
	err := store.Load()
	assert.Error(t, err)
	assert.Equal(t, 0, store.Len())
}

func TestLoadNormalizesBlankEnumFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gsearch.ini")
	content := strings.Join([]string{
		"[Recent]",
		"query_1 = laptop",
		`parts_1 = {"all_words": "laptop"}`,
		"",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	store := NewStore(path, 0)
	require.NoError(t, store.Load())
	require.Equal(t, 1, store.Len())

	entry, err := store.Get(0)
	require.NoError(t, err)
	assert.Equal(t, models.SearchTypeWeb, entry.Criteria.SearchType)
	assert.Equal(t, models.LocationAnywhere, entry.Criteria.TermsLocation)
	assert.Equal(t, models.DefaultImageSize, entry.Criteria.ImageSize)
}

func TestEntriesReturnsCopy(t *testing.T) {
	store := storeAt(t, 0)
	require.NoError(t, store.Load())

	sc := models.NewSearchCriteria()
	sc.AllWords = "laptop"
	require.NoError(t, store.Save(Entry{Query: "laptop", Criteria: sc}))

	entries := store.Entries()
	entries[0].Query = "mutated"

	got, err := store.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "laptop", got.Query)
}
