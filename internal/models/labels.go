package models

// Human-facing label sets for the form selects. Order matters: the first
// entry is the default selection.

var TermsLocationLabels = []string{
	"anywhere in the page",
	"in the title of the page",
	"in the text of the page",
	"in the URL of the page",
	"in links to the page",
}

var termsLocationByLabel = map[string]string{
	"anywhere in the page":     LocationAnywhere,
	"in the title of the page": LocationTitle,
	"in the text of the page":  LocationText,
	"in the URL of the page":   LocationURL,
	"in links to the page":     LocationLinks,
}

var termsLocationLabelByValue = map[string]string{
	LocationAnywhere: "anywhere in the page",
	LocationTitle:    "in the title of the page",
	LocationText:     "in the text of the page",
	LocationURL:      "in the URL of the page",
	LocationLinks:    "in links to the page",
}

// TermsLocationValue maps a select label to the stored location value.
// Unknown labels fall back to "anywhere".
func TermsLocationValue(label string) string {
	if v, ok := termsLocationByLabel[label]; ok {
		return v
	}
	return LocationAnywhere
}

// TermsLocationLabel maps a stored location value back to its select label.
func TermsLocationLabel(value string) string {
	if l, ok := termsLocationLabelByValue[value]; ok {
		return l
	}
	return TermsLocationLabels[0]
}

var SearchTypeLabels = []string{
	SearchTypeWeb,
	SearchTypeImages,
	SearchTypeVideos,
	SearchTypeNews,
}

var ImageSizeLabels = []string{DefaultImageSize, "Large", "Medium", "Icon"}

var AspectRatioLabels = []string{DefaultAspectRatio, "Square", "Tall", "Wide", "Panoramic"}

var ColorFilterLabels = []string{DefaultColorFilter, "Full color", "Black and white", "Transparent", ColorFilterSpecific}

var SpecificColorLabels = []string{
	"Black", "Blue", "Brown", "Gray", "Green", "Orange",
	"Pink", "Purple", "Red", "Teal", "White", "Yellow",
}

var ImageTypeLabels = []string{DefaultImageType, "Face", "Photo", "Clip art", "Line drawing", "Animated"}

var RegionLabels = []string{
	DefaultRegion,
	"United States", "United Kingdom", "Canada", "Australia",
	"Germany", "France", "India", "Japan", "Brazil",
	"Afghanistan", "Albania", "Algeria",
}

var UsageRightsLabels = []string{
	DefaultUsageRights,
	"Free to use or share",
	"Free to use or share commercially",
	"Free to use or share or modify",
	"Free to use or share or modify commercially",
}
