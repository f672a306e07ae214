// Package examples holds the canned searches exposed through the Examples
// menu. Each preset fills the form with a complete criteria record
// demonstrating one or more advanced operators.
package examples

import (
	"time"

	"gsearch/internal/models"
)

type Example struct {
	Title    string
	Criteria models.SearchCriteria
}

const dateLayout = "2006-01-02"

// All returns the preset list in menu order. Presets with relative date
// ranges are computed against the current date at call time.
func All() []Example {
	now := time.Now()

	pdfOnSite := models.NewSearchCriteria()
	pdfOnSite.AllWords = "annual report"
	pdfOnSite.Site = "example.com"
	pdfOnSite.Filetype = "pdf"
	pdfOnSite.After = now.AddDate(-1, 0, 0).Format(dateLayout)

	exactExclude := models.NewSearchCriteria()
	exactExclude.ExactPhrase = "system failure analysis"
	exactExclude.ExcludeWords = "draft sample"

	priceRange := models.NewSearchCriteria()
	priceRange.AllWords = "laptop"
	priceRange.RangeFrom = "500"
	priceRange.RangeTo = "1000"
	priceRange.RangeUnit = "$"

	orIngredients := models.NewSearchCriteria()
	orIngredients.AllWords = "recipe"
	orIngredients.OrWords = "chicken|beef|tofu"
	orIngredients.ExcludeWords = "fried"

	recentNews := models.NewSearchCriteria()
	recentNews.AllWords = "climate change"
	recentNews.Site = "news.com"
	recentNews.After = now.AddDate(0, -1, 0).Format(dateLayout)

	tutorialsInURL := models.NewSearchCriteria()
	tutorialsInURL.AllWords = "python tutorial"
	tutorialsInURL.Inurl = "beginner"

	filesExcludingTypes := models.NewSearchCriteria()
	filesExcludingTypes.AllWords = "project management"
	filesExcludingTypes.Filetype = "pdf"
	filesExcludingTypes.ExcludeWords = "pptx xlsx"

	booksInTitle := models.NewSearchCriteria()
	booksInTitle.Intitle = "best books 2023"

	yearRange := models.NewSearchCriteria()
	yearRange.AllWords = "olympic games"
	yearRange.RangeFrom = "2000"
	yearRange.RangeTo = "2020"

	pricedProducts := models.NewSearchCriteria()
	pricedProducts.AllWords = "smartphone"
	pricedProducts.RangeFrom = "200"
	pricedProducts.RangeTo = "500"
	pricedProducts.RangeUnit = "€"

	researchPapers := models.NewSearchCriteria()
	researchPapers.AllWords = "machine learning"
	researchPapers.Site = "arxiv.org"
	researchPapers.Filetype = "pdf"

	exactQuote := models.NewSearchCriteria()
	exactQuote.ExactPhrase = "to be or not to be"
	exactQuote.AllWords = "shakespeare"

	excludeCommonSites := models.NewSearchCriteria()
	excludeCommonSites.AllWords = "diy home repair"
	excludeCommonSites.ExcludeWords = "youtube pinterest"

	imageFiletype := models.NewSearchCriteria()
	imageFiletype.AllWords = "mountain landscape"
	imageFiletype.Filetype = "jpg"
	imageFiletype.SearchType = models.SearchTypeImages

	videosInURL := models.NewSearchCriteria()
	videosInURL.AllWords = "cooking tutorial"
	videosInURL.Inurl = "video"
	videosInURL.SearchType = models.SearchTypeVideos

	allWordsInText := models.NewSearchCriteria()
	allWordsInText.AllWords = "quantum computing basics"
	allWordsInText.TermsLocation = models.LocationText

	anchorLinks := models.NewSearchCriteria()
	anchorLinks.AllWords = "recommended reading"
	anchorLinks.TermsLocation = models.LocationLinks

	historicalRange := models.NewSearchCriteria()
	historicalRange.AllWords = "world war ii"
	historicalRange.After = "1939-01-01"
	historicalRange.Before = "1945-12-31"

	unitlessRange := models.NewSearchCriteria()
	unitlessRange.AllWords = "population statistics"
	unitlessRange.RangeFrom = "1000000"
	unitlessRange.RangeTo = "10000000"

	combined := models.NewSearchCriteria()
	combined.AllWords = "electric car"
	combined.OrWords = "tesla|rivian|nissan"
	combined.ExcludeWords = "used"
	combined.Site = "reviews.com"
	combined.Intitle = "2023"

	return []Example{
		{"1. Find PDFs on example.com", pdfOnSite},
		{"2. Exact phrase + exclude", exactExclude},
		{"3. Price range for laptops", priceRange},
		{"4. Recipes with ingredients OR", orIngredients},
		{"5. News articles in last month", recentNews},
		{"6. Tutorials in URL", tutorialsInURL},
		{"7. Files excluding certain types", filesExcludingTypes},
		{"8. Books in title", booksInTitle},
		{"9. Events in specific year range", yearRange},
		{"10. Products in price range with unit", pricedProducts},
		{"11. Research papers on site", researchPapers},
		{"12. Quotes exact phrase", exactQuote},
		{"13. Exclude common sites", excludeCommonSites},
		{"14. Images filetype", imageFiletype},
		{"15. Videos in URL", videosInURL},
		{"16. All words in text", allWordsInText},
		{"17. Links to page with anchor", anchorLinks},
		{"18. Date range for historical events", historicalRange},
		{"19. Number range without unit", unitlessRange},
		{"20. Combined operators", combined},
	}
}
