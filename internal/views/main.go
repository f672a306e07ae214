// Package views builds the Fyne widget tree for the main window. Views hold
// widgets and handler hooks only; all behavior lives in the controller.
package views

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"gsearch/internal/examples"
	"gsearch/internal/models"
	"gsearch/internal/views/components"
)

const aboutText = "GSearch\n\nBuild advanced Google queries with operators and open them in your browser."

// EmptyPreview is shown while the form produces no query.
const EmptyPreview = "<empty — enter search terms>"

// openKeys are the keys that trigger a browser search together with Ctrl.
// Return and the numpad Enter arrive as distinct key names.
var openKeys = []fyne.KeyName{fyne.KeyReturn, fyne.KeyEnter}

// MainView composes the search form, image options, preview, controls and
// recent panel into the main window.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container

	form         *components.CriteriaForm
	imageOptions *components.ImageOptions
	recentPanel  *components.RecentPanel
	statusBar    *components.StatusBar

	preview          *widget.Label
	searchTypeSelect *widget.Select

	copyButton  *widget.Button
	openButton  *widget.Button
	saveButton  *widget.Button
	clearButton *widget.Button

	// Event handlers, connected by the controller.
	changeHandler  func()
	copyHandler    func()
	openHandler    func()
	saveHandler    func()
	clearHandler   func()
	exampleHandler func(examples.Example)
}

// NewMainView creates the main view inside the given window.
func NewMainView(window fyne.Window) *MainView {
	view := &MainView{window: window}

	view.initializeComponents()
	view.buildLayout()
	view.buildMenu()
	view.setupEventHandlers()

	return view
}

func (mv *MainView) initializeComponents() {
	mv.form = components.NewCriteriaForm()
	mv.imageOptions = components.NewImageOptions()
	mv.recentPanel = components.NewRecentPanel()
	mv.statusBar = components.NewStatusBar()

	mv.preview = widget.NewLabel(EmptyPreview)
	mv.preview.Wrapping = fyne.TextWrapBreak

	mv.searchTypeSelect = widget.NewSelect(models.SearchTypeLabels, nil)
	mv.searchTypeSelect.SetSelected(models.SearchTypeWeb)
	mv.imageOptions.SetEnabled(false)

	mv.copyButton = widget.NewButton("Copy", nil)
	mv.openButton = widget.NewButton("Search in browser (Ctrl+Enter)", nil)
	mv.openButton.Importance = widget.HighImportance
	mv.saveButton = widget.NewButton("Save to Recent (Ctrl+S)", nil)
	mv.clearButton = widget.NewButton("Clear all", nil)
}

func (mv *MainView) buildLayout() {
	previewArea := container.NewVBox(
		widget.NewLabelWithStyle("Preview URL parameters:", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		mv.preview,
	)

	searchTypeRow := container.NewHBox(
		widget.NewLabel("Search type:"),
		mv.searchTypeSelect,
	)

	controls := container.NewHBox(
		mv.copyButton,
		mv.openButton,
		mv.saveButton,
		mv.clearButton,
	)

	left := container.NewVBox(
		mv.form.GetContainer(),
		mv.imageOptions.GetContainer(),
		previewArea,
		searchTypeRow,
		controls,
	)

	content := container.NewBorder(nil, nil, nil, mv.recentPanel.GetContainer(),
		container.NewVScroll(left))

	mv.mainContainer = container.NewBorder(nil, mv.statusBar.GetContainer(), nil, nil, content)
	mv.window.SetContent(mv.mainContainer)
}

func (mv *MainView) buildMenu() {
	items := make([]*fyne.MenuItem, 0, 20)
	for _, ex := range examples.All() {
		example := ex
		items = append(items, fyne.NewMenuItem(example.Title, func() {
			if mv.exampleHandler != nil {
				mv.exampleHandler(example)
			}
		}))
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu("Examples", items...),
		fyne.NewMenu("Help", fyne.NewMenuItem("About", mv.ShowAbout)),
	)
	mv.window.SetMainMenu(mainMenu)
}

func (mv *MainView) setupEventHandlers() {
	mv.form.SetChangeHandler(func() { mv.notifyChange() })
	mv.imageOptions.SetChangeHandler(func() { mv.notifyChange() })

	mv.searchTypeSelect.OnChanged = func(label string) {
		mv.imageOptions.SetEnabled(label == models.SearchTypeImages)
		mv.notifyChange()
	}

	mv.copyButton.OnTapped = func() { mv.invoke(mv.copyHandler) }
	mv.openButton.OnTapped = func() { mv.invoke(mv.openHandler) }
	mv.saveButton.OnTapped = func() { mv.invoke(mv.saveHandler) }
	mv.clearButton.OnTapped = func() { mv.invoke(mv.clearHandler) }

	canvas := mv.window.Canvas()
	for _, key := range openKeys {
		canvas.AddShortcut(&desktop.CustomShortcut{KeyName: key, Modifier: fyne.KeyModifierControl},
			func(fyne.Shortcut) { mv.invoke(mv.openHandler) })
	}
	canvas.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierControl},
		func(fyne.Shortcut) { mv.invoke(mv.saveHandler) })
}

func (mv *MainView) invoke(handler func()) {
	if handler != nil {
		handler()
	}
}

func (mv *MainView) notifyChange() {
	if mv.changeHandler != nil {
		mv.changeHandler()
	}
}

// SetChangeHandler registers the preview-recompute callback fired after any
// form mutation.
func (mv *MainView) SetChangeHandler(handler func()) { mv.changeHandler = handler }

// SetCopyHandler registers the Copy action.
func (mv *MainView) SetCopyHandler(handler func()) { mv.copyHandler = handler }

// SetOpenHandler registers the open-in-browser action.
func (mv *MainView) SetOpenHandler(handler func()) { mv.openHandler = handler }

// SetSaveHandler registers the save-to-recent action.
func (mv *MainView) SetSaveHandler(handler func()) { mv.saveHandler = handler }

// SetClearHandler registers the clear-all action.
func (mv *MainView) SetClearHandler(handler func()) { mv.clearHandler = handler }

// SetExampleHandler registers the Examples-menu action.
func (mv *MainView) SetExampleHandler(handler func(examples.Example)) { mv.exampleHandler = handler }

// SetLoadRecentHandler registers the recent-list Load action.
func (mv *MainView) SetLoadRecentHandler(handler func(index int)) {
	mv.recentPanel.SetLoadHandler(handler)
}

// SetDeleteRecentHandler registers the recent-list Delete action.
func (mv *MainView) SetDeleteRecentHandler(handler func(index int)) {
	mv.recentPanel.SetDeleteHandler(handler)
}

// Criteria gathers the full criteria record from the current widget state.
func (mv *MainView) Criteria() models.SearchCriteria {
	sc := models.NewSearchCriteria()
	mv.form.Collect(&sc)
	sc.SearchType = mv.searchTypeSelect.Selected
	mv.imageOptions.Collect(&sc)
	return sc
}

// ApplyCriteria restores every widget from a criteria record. Each setter
// fires the change handler; the recompute is idempotent so the storm is
// harmless.
func (mv *MainView) ApplyCriteria(sc models.SearchCriteria) {
	sc.Normalize()
	mv.form.Apply(sc)
	mv.searchTypeSelect.SetSelected(sc.SearchType)
	mv.imageOptions.Apply(sc)
}

// SetPreview updates the preview text.
func (mv *MainView) SetPreview(text string) {
	fyne.Do(func() {
		mv.preview.SetText(text)
	})
}

// Preview returns the current preview text.
func (mv *MainView) Preview() string {
	return mv.preview.Text
}

// SetRecentQueries refreshes the recent panel and the status-bar count.
func (mv *MainView) SetRecentQueries(queries []string) {
	mv.recentPanel.SetQueries(queries)
	mv.statusBar.SetRecentCount(len(queries))
}

// StatusBar exposes the status bar for transient messages.
func (mv *MainView) StatusBar() *components.StatusBar {
	return mv.statusBar
}

// ShowAbout displays the about dialog.
func (mv *MainView) ShowAbout() {
	dialog.ShowInformation("About", aboutText, mv.window)
}

// Show displays the main window.
func (mv *MainView) Show() {
	mv.window.Show()
}
