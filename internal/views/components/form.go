package components

import (
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"gsearch/internal/models"
)

const dateLayout = "2006-01-02"

// CriteriaForm holds the text and date inputs of the search form. Every
// widget change funnels into a single change handler so the controller can
// recompute the preview from the full form state.
type CriteriaForm struct {
	container *fyne.Container

	allWords     *widget.Entry
	termsSelect  *widget.Select
	exactPhrase  *widget.Entry
	excludeWords *widget.Entry
	orWords      *widget.Entry
	site         *widget.Entry
	filetype     *widget.Entry
	intitle      *widget.Entry
	inurl        *widget.Entry
	rangeFrom    *widget.Entry
	rangeTo      *widget.Entry
	rangeUnit    *widget.Entry

	afterCheck  *widget.Check
	afterDate   *widget.Entry
	beforeCheck *widget.Check
	beforeDate  *widget.Entry

	changeHandler func()
}

// NewCriteriaForm creates the form component.
func NewCriteriaForm() *CriteriaForm {
	form := &CriteriaForm{}
	form.createComponents()
	form.buildLayout()
	form.setupEventHandlers()
	return form
}

func (cf *CriteriaForm) createComponents() {
	cf.allWords = widget.NewEntry()
	cf.allWords.SetPlaceHolder("words separated by spaces (must all appear)")

	cf.termsSelect = widget.NewSelect(models.TermsLocationLabels, nil)
	cf.termsSelect.SetSelected(models.TermsLocationLabels[0])

	cf.exactPhrase = widget.NewEntry()
	cf.exactPhrase.SetPlaceHolder("Exact phrase (will be quoted)")

	cf.excludeWords = widget.NewEntry()
	cf.excludeWords.SetPlaceHolder("words to exclude (space-separated)")

	cf.orWords = widget.NewEntry()
	cf.orWords.SetPlaceHolder("word1|word2|word3 — separate with |")

	cf.site = widget.NewEntry()
	cf.site.SetPlaceHolder("example.com")

	cf.filetype = widget.NewEntry()
	cf.filetype.SetPlaceHolder("pdf, docx, xls")

	cf.intitle = widget.NewEntry()
	cf.intitle.SetPlaceHolder("words that must appear in the title")

	cf.inurl = widget.NewEntry()
	cf.inurl.SetPlaceHolder("words in the URL")

	cf.rangeFrom = widget.NewEntry()
	cf.rangeFrom.SetPlaceHolder("from")
	cf.rangeTo = widget.NewEntry()
	cf.rangeTo.SetPlaceHolder("to")
	cf.rangeUnit = widget.NewEntry()
	cf.rangeUnit.SetPlaceHolder("unit e.g. $ (optional)")

	cf.afterCheck = widget.NewCheck("Use after", nil)
	cf.afterDate = widget.NewEntry()
	cf.afterDate.SetPlaceHolder(dateLayout)
	cf.afterDate.SetText(time.Now().AddDate(0, 0, -30).Format(dateLayout))

	cf.beforeCheck = widget.NewCheck("Use before", nil)
	cf.beforeDate = widget.NewEntry()
	cf.beforeDate.SetPlaceHolder(dateLayout)
	cf.beforeDate.SetText(time.Now().Format(dateLayout))
}

func (cf *CriteriaForm) buildLayout() {
	rangeRow := container.NewGridWithColumns(3, cf.rangeFrom, cf.rangeTo, cf.rangeUnit)

	dateRow := container.NewGridWithColumns(2,
		container.NewBorder(nil, nil, cf.afterCheck, nil, cf.afterDate),
		container.NewBorder(nil, nil, cf.beforeCheck, nil, cf.beforeDate),
	)

	quickButtons := container.NewHBox(
		widget.NewButton("Past 24h", func() { cf.applyDatePreset(0, 0, -1) }),
		widget.NewButton("Past week", func() { cf.applyDatePreset(0, 0, -7) }),
		widget.NewButton("Past month", func() { cf.applyDatePreset(0, -1, 0) }),
		widget.NewButton("Past year", func() { cf.applyDatePreset(-1, 0, 0) }),
	)

	formGrid := widget.NewForm(
		widget.NewFormItem("All these words:", container.NewBorder(nil, nil, nil, cf.termsSelect, cf.allWords)),
		widget.NewFormItem("This exact word or phrase:", cf.exactPhrase),
		widget.NewFormItem("None of these words (-):", cf.excludeWords),
		widget.NewFormItem("Any of these words (OR):", cf.orWords),
		widget.NewFormItem("Site or domain:", cf.site),
		widget.NewFormItem("File type:", cf.filetype),
		widget.NewFormItem("intitle:", cf.intitle),
		widget.NewFormItem("inurl:", cf.inurl),
		widget.NewFormItem("Numbers ranging from:", rangeRow),
		widget.NewFormItem("Date range (optional):", container.NewVBox(dateRow, quickButtons)),
	)

	cf.container = container.NewVBox(formGrid)
}

func (cf *CriteriaForm) setupEventHandlers() {
	notify := func(string) { cf.notifyChange() }

	for _, entry := range cf.textEntries() {
		entry.OnChanged = notify
	}
	cf.afterDate.OnChanged = notify
	cf.beforeDate.OnChanged = notify
	cf.termsSelect.OnChanged = notify
	cf.afterCheck.OnChanged = func(bool) { cf.notifyChange() }
	cf.beforeCheck.OnChanged = func(bool) { cf.notifyChange() }
}

func (cf *CriteriaForm) textEntries() []*widget.Entry {
	return []*widget.Entry{
		cf.allWords, cf.exactPhrase, cf.excludeWords, cf.orWords,
		cf.site, cf.filetype, cf.intitle, cf.inurl,
		cf.rangeFrom, cf.rangeTo, cf.rangeUnit,
	}
}

// SetChangeHandler registers the single recompute callback.
func (cf *CriteriaForm) SetChangeHandler(handler func()) {
	cf.changeHandler = handler
}

func (cf *CriteriaForm) notifyChange() {
	if cf.changeHandler != nil {
		cf.changeHandler()
	}
}

// applyDatePreset checks "use after" with a date the given offset back from
// today and unchecks "use before".
func (cf *CriteriaForm) applyDatePreset(years, months, days int) {
	cf.afterDate.SetText(time.Now().AddDate(years, months, days).Format(dateLayout))
	cf.afterCheck.SetChecked(true)
	cf.beforeCheck.SetChecked(false)
	cf.notifyChange()
}

// Collect copies the form inputs into a criteria record. Date fields are
// included only when their checkbox is set and the entry parses as a valid
// yyyy-mm-dd date.
func (cf *CriteriaForm) Collect(sc *models.SearchCriteria) {
	sc.AllWords = cf.allWords.Text
	sc.TermsLocation = models.TermsLocationValue(cf.termsSelect.Selected)
	sc.ExactPhrase = cf.exactPhrase.Text
	sc.ExcludeWords = cf.excludeWords.Text
	sc.OrWords = cf.orWords.Text
	sc.Site = cf.site.Text
	sc.Filetype = cf.filetype.Text
	sc.Intitle = cf.intitle.Text
	sc.Inurl = cf.inurl.Text
	sc.RangeFrom = cf.rangeFrom.Text
	sc.RangeTo = cf.rangeTo.Text
	sc.RangeUnit = cf.rangeUnit.Text

	sc.After = ""
	if cf.afterCheck.Checked {
		sc.After = validDate(cf.afterDate.Text)
	}
	sc.Before = ""
	if cf.beforeCheck.Checked {
		sc.Before = validDate(cf.beforeDate.Text)
	}
}

// Apply restores the form inputs from a criteria record. A stored date that
// does not parse leaves its checkbox unchecked.
func (cf *CriteriaForm) Apply(sc models.SearchCriteria) {
	cf.allWords.SetText(sc.AllWords)
	cf.termsSelect.SetSelected(models.TermsLocationLabel(sc.TermsLocation))
	cf.exactPhrase.SetText(sc.ExactPhrase)
	cf.excludeWords.SetText(sc.ExcludeWords)
	cf.orWords.SetText(sc.OrWords)
	cf.site.SetText(sc.Site)
	cf.filetype.SetText(sc.Filetype)
	cf.intitle.SetText(sc.Intitle)
	cf.inurl.SetText(sc.Inurl)
	cf.rangeFrom.SetText(sc.RangeFrom)
	cf.rangeTo.SetText(sc.RangeTo)
	cf.rangeUnit.SetText(sc.RangeUnit)

	if d := validDate(sc.After); d != "" {
		cf.afterDate.SetText(d)
		cf.afterCheck.SetChecked(true)
	} else {
		cf.afterCheck.SetChecked(false)
	}
	if d := validDate(sc.Before); d != "" {
		cf.beforeDate.SetText(d)
		cf.beforeCheck.SetChecked(true)
	} else {
		cf.beforeCheck.SetChecked(false)
	}
}

// GetContainer returns the form container.
func (cf *CriteriaForm) GetContainer() *fyne.Container {
	return cf.container
}

func validDate(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}
	if _, err := time.Parse(dateLayout, trimmed); err != nil {
		return ""
	}
	return trimmed
}
