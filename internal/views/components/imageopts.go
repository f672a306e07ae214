package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"gsearch/internal/models"
)

// ImageOptions holds the image-search filter selects. The group is enabled
// only while the search type is Images; the specific-color select is shown
// only while the color filter is "Specific color".
type ImageOptions struct {
	container *fyne.Container

	sizeSelect          *widget.Select
	aspectSelect        *widget.Select
	colorSelect         *widget.Select
	specificColorSelect *widget.Select
	typeSelect          *widget.Select
	regionSelect        *widget.Select
	usageSelect         *widget.Select

	changeHandler func()
}

// NewImageOptions creates the image-filter component.
func NewImageOptions() *ImageOptions {
	opts := &ImageOptions{}
	opts.createComponents()
	opts.buildLayout()
	opts.setupEventHandlers()
	return opts
}

func (o *ImageOptions) createComponents() {
	o.sizeSelect = widget.NewSelect(models.ImageSizeLabels, nil)
	o.sizeSelect.SetSelected(models.DefaultImageSize)

	o.aspectSelect = widget.NewSelect(models.AspectRatioLabels, nil)
	o.aspectSelect.SetSelected(models.DefaultAspectRatio)

	o.colorSelect = widget.NewSelect(models.ColorFilterLabels, nil)
	o.colorSelect.SetSelected(models.DefaultColorFilter)

	o.specificColorSelect = widget.NewSelect(models.SpecificColorLabels, nil)
	o.specificColorSelect.SetSelected(models.SpecificColorLabels[0])
	o.specificColorSelect.Hide()

	o.typeSelect = widget.NewSelect(models.ImageTypeLabels, nil)
	o.typeSelect.SetSelected(models.DefaultImageType)

	o.regionSelect = widget.NewSelect(models.RegionLabels, nil)
	o.regionSelect.SetSelected(models.DefaultRegion)

	o.usageSelect = widget.NewSelect(models.UsageRightsLabels, nil)
	o.usageSelect.SetSelected(models.DefaultUsageRights)
}

func (o *ImageOptions) buildLayout() {
	form := widget.NewForm(
		widget.NewFormItem("Image size:", o.sizeSelect),
		widget.NewFormItem("Aspect ratio:", o.aspectSelect),
		widget.NewFormItem("Colors in image:", container.NewGridWithColumns(2, o.colorSelect, o.specificColorSelect)),
		widget.NewFormItem("Type of image:", o.typeSelect),
		widget.NewFormItem("Region:", o.regionSelect),
		widget.NewFormItem("Usage rights:", o.usageSelect),
	)

	o.container = container.NewVBox(widget.NewCard("Image Search Options", "", form))
}

func (o *ImageOptions) setupEventHandlers() {
	notify := func(string) { o.notifyChange() }

	o.sizeSelect.OnChanged = notify
	o.aspectSelect.OnChanged = notify
	o.specificColorSelect.OnChanged = notify
	o.typeSelect.OnChanged = notify
	o.regionSelect.OnChanged = notify
	o.usageSelect.OnChanged = notify

	o.colorSelect.OnChanged = func(label string) {
		if label == models.ColorFilterSpecific {
			o.specificColorSelect.Show()
		} else {
			o.specificColorSelect.Hide()
		}
		o.notifyChange()
	}
}

// SetChangeHandler registers the single recompute callback.
func (o *ImageOptions) SetChangeHandler(handler func()) {
	o.changeHandler = handler
}

func (o *ImageOptions) notifyChange() {
	if o.changeHandler != nil {
		o.changeHandler()
	}
}

// SetEnabled enables or disables the whole filter group.
func (o *ImageOptions) SetEnabled(enabled bool) {
	selects := []*widget.Select{
		o.sizeSelect, o.aspectSelect, o.colorSelect, o.specificColorSelect,
		o.typeSelect, o.regionSelect, o.usageSelect,
	}
	for _, sel := range selects {
		if enabled {
			sel.Enable()
		} else {
			sel.Disable()
		}
	}
}

// Collect copies the filter selections into a criteria record. The specific
// color is recorded only while the color filter is "Specific color".
func (o *ImageOptions) Collect(sc *models.SearchCriteria) {
	sc.ImageSize = o.sizeSelect.Selected
	sc.AspectRatio = o.aspectSelect.Selected
	sc.ColorFilter = o.colorSelect.Selected
	sc.SpecificColor = ""
	if o.colorSelect.Selected == models.ColorFilterSpecific {
		sc.SpecificColor = o.specificColorSelect.Selected
	}
	sc.ImageType = o.typeSelect.Selected
	sc.Region = o.regionSelect.Selected
	sc.UsageRights = o.usageSelect.Selected
}

// Apply restores the filter selections from a criteria record.
func (o *ImageOptions) Apply(sc models.SearchCriteria) {
	o.sizeSelect.SetSelected(sc.ImageSize)
	o.aspectSelect.SetSelected(sc.AspectRatio)
	o.colorSelect.SetSelected(sc.ColorFilter)
	if sc.SpecificColor != "" {
		o.specificColorSelect.SetSelected(sc.SpecificColor)
	} else {
		o.specificColorSelect.SetSelected(models.SpecificColorLabels[0])
	}
	o.typeSelect.SetSelected(sc.ImageType)
	o.regionSelect.SetSelected(sc.Region)
	o.usageSelect.SetSelected(sc.UsageRights)
}

// GetContainer returns the image-options container.
func (o *ImageOptions) GetContainer() *fyne.Container {
	return o.container
}
