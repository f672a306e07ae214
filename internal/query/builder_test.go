package query

import (
	"strings"
	"testing"

	"gsearch/internal/models"
)

func TestBuildEmptyCriteria(t *testing.T) {
	if got := Build(models.NewSearchCriteria()); got != "" {
		t.Errorf("expected empty query for empty criteria, got %q", got)
	}
	if got := Build(models.SearchCriteria{}); got != "" {
		t.Errorf("expected empty query for zero-value criteria, got %q", got)
	}
}

func TestBuildTokens(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*models.SearchCriteria)
		expected string
	}{
		{
			name: "all words anywhere",
			mutate: func(sc *models.SearchCriteria) {
				sc.AllWords = "annual report"
			},
			expected: "annual report",
		},
		{
			name: "all words in title",
			mutate: func(sc *models.SearchCriteria) {
				sc.AllWords = "annual report"
				sc.TermsLocation = models.LocationTitle
			},
			expected: "allintitle:annual report",
		},
		{
			name: "all words in text",
			mutate: func(sc *models.SearchCriteria) {
				sc.AllWords = "quantum computing"
				sc.TermsLocation = models.LocationText
			},
			expected: "allintext:quantum computing",
		},
		{
			name: "all words in url",
			mutate: func(sc *models.SearchCriteria) {
				sc.AllWords = "tutorial"
				sc.TermsLocation = models.LocationURL
			},
			expected: "allinurl:tutorial",
		},
		{
			name: "all words in links",
			mutate: func(sc *models.SearchCriteria) {
				sc.AllWords = "recommended reading"
				sc.TermsLocation = models.LocationLinks
			},
			expected: "allinanchor:recommended reading",
		},
		{
			name: "exact phrase quoted",
			mutate: func(sc *models.SearchCriteria) {
				sc.ExactPhrase = "to be or not to be"
			},
			expected: `"to be or not to be"`,
		},
		{
			name: "exclude words prefixed",
			mutate: func(sc *models.SearchCriteria) {
				sc.ExcludeWords = "fried spicy"
			},
			expected: "-fried -spicy",
		},
		{
			name: "or words grouped and empty segment dropped",
			mutate: func(sc *models.SearchCriteria) {
				sc.OrWords = "chicken|beef| |tofu"
			},
			expected: "(chicken OR beef OR tofu)",
		},
		{
			name: "or words all empty emits nothing",
			mutate: func(sc *models.SearchCriteria) {
				sc.OrWords = " | | "
			},
			expected: "",
		},
		{
			name: "site operator",
			mutate: func(sc *models.SearchCriteria) {
				sc.Site = "example.com"
			},
			expected: "site:example.com",
		},
		{
			name: "filetype operator",
			mutate: func(sc *models.SearchCriteria) {
				sc.Filetype = "pdf"
			},
			expected: "filetype:pdf",
		},
		{
			name: "intitle operator",
			mutate: func(sc *models.SearchCriteria) {
				sc.Intitle = "best books 2023"
			},
			expected: "intitle:best books 2023",
		},
		{
			name: "inurl operator",
			mutate: func(sc *models.SearchCriteria) {
				sc.Inurl = "beginner"
			},
			expected: "inurl:beginner",
		},
		{
			name: "numeric range with unit",
			mutate: func(sc *models.SearchCriteria) {
				sc.RangeFrom = "500"
				sc.RangeTo = "1000"
				sc.RangeUnit = "$"
			},
			expected: "$500..$1000",
		},
		{
			name: "numeric range without unit",
			mutate: func(sc *models.SearchCriteria) {
				sc.RangeFrom = "2000"
				sc.RangeTo = "2020"
			},
			expected: "2000..2020",
		},
		{
			name: "numeric range needs both bounds",
			mutate: func(sc *models.SearchCriteria) {
				sc.RangeFrom = "500"
			},
			expected: "",
		},
		{
			name: "before date",
			mutate: func(sc *models.SearchCriteria) {
				sc.Before = "1945-12-31"
			},
			expected: "before:1945-12-31",
		},
		{
			name: "after date",
			mutate: func(sc *models.SearchCriteria) {
				sc.After = "1939-01-01"
			},
			expected: "after:1939-01-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := models.NewSearchCriteria()
			tt.mutate(&sc)
			if got := Build(sc); got != tt.expected {
				t.Errorf("Build() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestBuildTokenOrder(t *testing.T) {
	sc := models.NewSearchCriteria()
	sc.AllWords = "electric car"
	sc.ExactPhrase = "battery range"
	sc.ExcludeWords = "used"
	sc.OrWords = "tesla|rivian"
	sc.Site = "reviews.com"
	sc.Filetype = "pdf"
	sc.Intitle = "2023"
	sc.Inurl = "review"
	sc.RangeFrom = "20000"
	sc.RangeTo = "50000"
	sc.RangeUnit = "$"
	sc.Before = "2024-01-01"
	sc.After = "2023-01-01"

	expected := `electric car "battery range" -used (tesla OR rivian) ` +
		"site:reviews.com filetype:pdf intitle:2023 inurl:review " +
		"$20000..$50000 before:2024-01-01 after:2023-01-01"

	if got := Build(sc); got != expected {
		t.Errorf("Build() = %q, expected %q", got, expected)
	}
}

func TestBuildDeterministic(t *testing.T) {
	sc := models.NewSearchCriteria()
	sc.AllWords = "recipe"
	sc.OrWords = "chicken|beef|tofu"
	sc.ExcludeWords = "fried"
	sc.Site = "cooking.example"

	first := Build(sc)
	for i := 0; i < 100; i++ {
		if got := Build(sc); got != first {
			t.Fatalf("iteration %d: Build() = %q, expected %q", i, got, first)
		}
	}

	if !strings.Contains(first, "(chicken OR beef OR tofu)") {
		t.Errorf("query %q missing OR group", first)
	}
	if !strings.Contains(first, "-fried") {
		t.Errorf("query %q missing exclusion", first)
	}
}

func TestBuildTrimsFieldWhitespace(t *testing.T) {
	sc := models.NewSearchCriteria()
	sc.AllWords = "  laptop  "
	sc.Site = " example.com "

	if got := Build(sc); got != "laptop site:example.com" {
		t.Errorf("Build() = %q, expected %q", got, "laptop site:example.com")
	}
}
