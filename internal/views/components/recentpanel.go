package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// recentItem is a list row that reacts to double clicks. The embedded label
// keeps the list's normal tap-to-select behavior because only the double-tap
// handler is intercepted here.
type recentItem struct {
	widget.Label
	onDoubleTap func()
}

func newRecentItem() *recentItem {
	item := &recentItem{}
	item.Truncation = fyne.TextTruncateEllipsis
	item.ExtendBaseWidget(item)
	return item
}

func (ri *recentItem) DoubleTapped(*fyne.PointEvent) {
	if ri.onDoubleTap != nil {
		ri.onDoubleTap()
	}
}

// RecentPanel lists the saved queries with Load and Delete actions.
// Double-clicking a row loads it directly. Indexes handed to the action
// handlers match positions in the recent store, most recent first.
type RecentPanel struct {
	container *fyne.Container
	list      *widget.List

	queries  []string
	selected int

	loadHandler   func(index int)
	deleteHandler func(index int)
}

// NewRecentPanel creates the recent-queries component.
func NewRecentPanel() *RecentPanel {
	panel := &RecentPanel{selected: -1}
	panel.createComponents()
	panel.buildLayout()
	return panel
}

func (rp *RecentPanel) createComponents() {
	rp.list = widget.NewList(
		func() int { return len(rp.queries) },
		func() fyne.CanvasObject {
			return newRecentItem()
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			item := obj.(*recentItem)
			item.SetText(rp.queries[id])
			item.onDoubleTap = func() { rp.loadIndex(id) }
		},
	)
	rp.list.OnSelected = func(id widget.ListItemID) {
		rp.selected = id
	}
	rp.list.OnUnselected = func(widget.ListItemID) {
		rp.selected = -1
	}
}

func (rp *RecentPanel) buildLayout() {
	buttons := container.NewGridWithColumns(2,
		widget.NewButton("Load", func() {
			if rp.loadHandler != nil {
				rp.loadHandler(rp.selected)
			}
		}),
		widget.NewButton("Delete", func() {
			if rp.deleteHandler != nil {
				rp.deleteHandler(rp.selected)
			}
		}),
	)

	title := widget.NewLabelWithStyle("Recent queries", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	// The list sits in the border center so it expands with the window
	// instead of collapsing to its minimum size.
	rp.container = container.NewBorder(title, buttons, nil, nil, rp.list)
}

// loadIndex selects the row and fires the Load action for it.
func (rp *RecentPanel) loadIndex(id int) {
	rp.list.Select(id)
	if rp.loadHandler != nil {
		rp.loadHandler(id)
	}
}

// SetLoadHandler registers the Load action. The handler receives -1 when no
// item is selected.
func (rp *RecentPanel) SetLoadHandler(handler func(index int)) {
	rp.loadHandler = handler
}

// SetDeleteHandler registers the Delete action. The handler receives -1 when
// no item is selected.
func (rp *RecentPanel) SetDeleteHandler(handler func(index int)) {
	rp.deleteHandler = handler
}

// SetQueries replaces the listed queries and clears the selection.
func (rp *RecentPanel) SetQueries(queries []string) {
	fyne.Do(func() {
		rp.queries = queries
		rp.selected = -1
		rp.list.UnselectAll()
		rp.list.Refresh()
	})
}

// Selected returns the currently selected position, or -1.
func (rp *RecentPanel) Selected() int {
	return rp.selected
}

// GetContainer returns the panel container.
func (rp *RecentPanel) GetContainer() *fyne.Container {
	return rp.container
}
