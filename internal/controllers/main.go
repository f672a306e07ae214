// Package controllers connects the view to the query builder and the recent
// store.
package controllers

import (
	"errors"
	"net/url"
	"time"

	"fyne.io/fyne/v2"

	"gsearch/internal/examples"
	"gsearch/internal/logger"
	"gsearch/internal/models"
	"gsearch/internal/query"
	"gsearch/internal/recent"
	"gsearch/internal/views"
)

const (
	shortNotice = 2 * time.Second
	longNotice  = 4 * time.Second
)

// MainController drives the search form. Every widget mutation funnels into
// RefreshPreview, which regathers the criteria record from the view and
// recomputes the query and URL parameters; there is no per-widget state.
type MainController struct {
	app    fyne.App
	window fyne.Window
	store  *recent.Store
	log    logger.Logger

	mainView *views.MainView
}

// NewMainController creates the controller.
func NewMainController(app fyne.App, window fyne.Window, store *recent.Store, log logger.Logger) *MainController {
	return &MainController{
		app:    app,
		window: window,
		store:  store,
		log:    log,
	}
}

// SetMainView associates the view and wires its event handlers.
func (mc *MainController) SetMainView(view *views.MainView) {
	mc.mainView = view

	view.SetChangeHandler(mc.RefreshPreview)
	view.SetCopyHandler(mc.CopyQuery)
	view.SetOpenHandler(mc.OpenInBrowser)
	view.SetSaveHandler(mc.SaveCurrent)
	view.SetClearHandler(mc.ClearAll)
	view.SetExampleHandler(mc.ApplyExample)
	view.SetLoadRecentHandler(mc.LoadRecent)
	view.SetDeleteRecentHandler(mc.DeleteRecent)
}

// Start loads the recent store from disk and renders the initial state. A
// load failure is non-fatal: the session starts with an empty list.
func (mc *MainController) Start() {
	if err := mc.store.Load(); err != nil {
		mc.log.Error("recent store load failed", err, map[string]interface{}{
			"path": mc.store.Path(),
		})
		mc.mainView.StatusBar().ShowTransient("Could not load recent file", longNotice)
	} else {
		mc.log.Info("recent store loaded", map[string]interface{}{
			"path":    mc.store.Path(),
			"entries": mc.store.Len(),
		})
	}

	mc.mainView.SetRecentQueries(mc.store.Queries())
	mc.RefreshPreview()
}

// RefreshPreview recomputes the URL-parameter preview from the current form
// state.
func (mc *MainController) RefreshPreview() {
	params := query.Params(mc.mainView.Criteria())
	if params == "" {
		mc.mainView.SetPreview(views.EmptyPreview)
		return
	}
	mc.mainView.SetPreview(params)
}

// CopyQuery copies the preview text verbatim to the clipboard.
func (mc *MainController) CopyQuery() {
	params := query.Params(mc.mainView.Criteria())
	if params == "" {
		mc.mainView.StatusBar().ShowTransient("Nothing to copy", shortNotice)
		return
	}

	mc.window.Clipboard().SetContent(params)
	mc.mainView.StatusBar().ShowTransient("Query copied to clipboard", shortNotice)
}

// OpenInBrowser hands the search URL to the OS default browser. The
// application itself makes no network request.
func (mc *MainController) OpenInBrowser() {
	rawURL := query.SearchURL(mc.mainView.Criteria())
	if rawURL == "" {
		mc.mainView.StatusBar().ShowTransient("Nothing to search", shortNotice)
		return
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		mc.log.Error("search URL parse failed", err, map[string]interface{}{"url": rawURL})
		mc.mainView.StatusBar().ShowTransient("Invalid search URL", longNotice)
		return
	}

	if err := mc.app.OpenURL(parsed); err != nil {
		mc.log.Error("browser open failed", err, map[string]interface{}{"url": rawURL})
		mc.mainView.StatusBar().ShowTransient("Could not open browser", longNotice)
		return
	}

	mc.log.Info("opened search in browser", map[string]interface{}{"url": rawURL})
	mc.mainView.StatusBar().ShowTransient("Opened browser", shortNotice)
}

// SaveCurrent stores the current form state in the recent list. Entries with
// an identical query string are deduplicated, newest kept.
func (mc *MainController) SaveCurrent() {
	sc := mc.mainView.Criteria()
	q := query.Build(sc)
	if q == "" {
		mc.mainView.StatusBar().ShowTransient("Nothing to save", shortNotice)
		return
	}

	if err := mc.store.Save(recent.Entry{Query: q, Criteria: sc}); err != nil {
		// The in-memory list keeps the entry; only the file write failed.
		mc.log.Error("recent store write failed", err, map[string]interface{}{
			"path": mc.store.Path(),
		})
		mc.mainView.StatusBar().ShowTransient("Could not write recent file", longNotice)
	} else {
		mc.mainView.StatusBar().ShowTransient("Saved to recent", shortNotice)
	}

	mc.mainView.SetRecentQueries(mc.store.Queries())
}

// LoadRecent restores the form from the entry at the given position.
func (mc *MainController) LoadRecent(index int) {
	entry, err := mc.store.Get(index)
	if err != nil {
		mc.mainView.StatusBar().ShowTransient("No recent item selected", shortNotice)
		return
	}

	mc.mainView.ApplyCriteria(entry.Criteria)
	mc.RefreshPreview()
	mc.mainView.StatusBar().ShowTransient("Loaded recent search", shortNotice)
}

// DeleteRecent removes the entry at the given position.
func (mc *MainController) DeleteRecent(index int) {
	if err := mc.store.Delete(index); err != nil {
		if errors.Is(err, recent.ErrIndexOutOfRange) {
			mc.mainView.StatusBar().ShowTransient("Select an item to delete", shortNotice)
			return
		}
		mc.log.Error("recent store delete failed", err, map[string]interface{}{
			"path":  mc.store.Path(),
			"index": index,
		})
		mc.mainView.StatusBar().ShowTransient("Failed to delete", longNotice)
	} else {
		mc.mainView.StatusBar().ShowTransient("Deleted recent item", shortNotice)
	}

	mc.mainView.SetRecentQueries(mc.store.Queries())
}

// ApplyExample fills the form with a canned preset.
func (mc *MainController) ApplyExample(ex examples.Example) {
	mc.mainView.ApplyCriteria(ex.Criteria)
	mc.RefreshPreview()
	mc.mainView.StatusBar().ShowTransient(ex.Title, shortNotice)
}

// ClearAll resets every field to its default.
func (mc *MainController) ClearAll() {
	mc.mainView.ApplyCriteria(models.NewSearchCriteria())
	mc.RefreshPreview()
	mc.mainView.StatusBar().ShowTransient("All fields cleared", shortNotice)
}
