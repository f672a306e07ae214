package components

import (
	"fmt"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar displays transient status messages and the recent-list size.
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	recentInfo  *widget.Label

	mu         sync.Mutex
	resetTimer *time.Timer
	resetGen   uint64
}

// NewStatusBar creates a new status bar component.
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel("Ready")
	sb.recentInfo = widget.NewLabel("Recent: 0")
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewHBox(
		sb.statusLabel,
		widget.NewSeparator(),
		sb.recentInfo,
	)
}

// ShowTransient displays a message and falls back to "Ready" after the given
// duration. A new message cancels the previous reset; a reset that already
// fired but has not run yet is invalidated by the generation counter, so it
// cannot clobber the newer message.
func (sb *StatusBar) ShowTransient(message string, duration time.Duration) {
	sb.mu.Lock()
	if sb.resetTimer != nil {
		sb.resetTimer.Stop()
	}
	sb.resetGen++
	gen := sb.resetGen
	sb.resetTimer = time.AfterFunc(duration, func() {
		sb.resetIfCurrent(gen)
	})
	sb.mu.Unlock()

	fyne.Do(func() {
		sb.statusLabel.SetText(message)
	})
}

// resetIfCurrent restores "Ready" unless a newer message superseded the
// reset that scheduled it.
func (sb *StatusBar) resetIfCurrent(gen uint64) {
	sb.mu.Lock()
	current := gen == sb.resetGen
	sb.mu.Unlock()
	if !current {
		return
	}

	fyne.Do(func() {
		sb.statusLabel.SetText("Ready")
	})
}

// SetStatus updates the status message without scheduling a reset. Any
// pending reset is cancelled so it cannot overwrite the new message.
func (sb *StatusBar) SetStatus(status string) {
	sb.mu.Lock()
	if sb.resetTimer != nil {
		sb.resetTimer.Stop()
	}
	sb.resetGen++
	sb.mu.Unlock()

	fyne.Do(func() {
		sb.statusLabel.SetText(status)
	})
}

// GetStatus returns the current status message.
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// SetRecentCount updates the recent-list size display.
func (sb *StatusBar) SetRecentCount(count int) {
	fyne.Do(func() {
		sb.recentInfo.SetText(fmt.Sprintf("Recent: %d", count))
	})
}

// GetContainer returns the status bar container.
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
