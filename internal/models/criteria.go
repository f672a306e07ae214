package models

// Terms-location values stored in SearchCriteria.TermsLocation.
const (
	LocationAnywhere = "anywhere"
	LocationTitle    = "title"
	LocationText     = "text"
	LocationURL      = "url"
	LocationLinks    = "links"
)

// Search-type labels stored in SearchCriteria.SearchType.
const (
	SearchTypeWeb    = "Web"
	SearchTypeImages = "Images"
	SearchTypeVideos = "Videos"
	SearchTypeNews   = "News"
)

// Default labels for the enum-valued fields. A field holding its default
// contributes nothing to the generated query or URL parameters.
const (
	DefaultImageSize   = "Any size"
	DefaultAspectRatio = "Any aspect ratio"
	DefaultColorFilter = "Any color"
	DefaultImageType   = "Any type"
	DefaultRegion      = "Any region"
	DefaultUsageRights = "All"
)

// ColorFilterSpecific is the sentinel color-filter label that activates the
// SpecificColor field.
const ColorFilterSpecific = "Specific color"

// SearchCriteria is a flat record of everything the search form captures.
// All fields are optional; empty string (or the default label for the enum
// fields) means "not set". Before and After hold ISO yyyy-mm-dd dates and are
// empty unless the corresponding "use date" toggle was checked. JSON field
// names match the keys used in the recent-queries file.
type SearchCriteria struct {
	AllWords      string `json:"all_words"`
	TermsLocation string `json:"terms_location"`
	ExactPhrase   string `json:"exact_phrase"`
	ExcludeWords  string `json:"exclude_words"`
	OrWords       string `json:"or_words"`
	Site          string `json:"site"`
	Filetype      string `json:"filetype"`
	Intitle       string `json:"intitle"`
	Inurl         string `json:"inurl"`
	RangeFrom     string `json:"range_from"`
	RangeTo       string `json:"range_to"`
	RangeUnit     string `json:"range_unit"`
	Before        string `json:"before"`
	After         string `json:"after"`
	SearchType    string `json:"search_type"`
	ImageSize     string `json:"image_size"`
	AspectRatio   string `json:"aspect_ratio"`
	ColorFilter   string `json:"color_filter"`
	SpecificColor string `json:"specific_color"`
	ImageType     string `json:"image_type"`
	Region        string `json:"region"`
	UsageRights   string `json:"usage_rights"`
}

// NewSearchCriteria returns a criteria record with every field at its
// default, matching a freshly cleared form.
func NewSearchCriteria() SearchCriteria {
	return SearchCriteria{
		TermsLocation: LocationAnywhere,
		SearchType:    SearchTypeWeb,
		ImageSize:     DefaultImageSize,
		AspectRatio:   DefaultAspectRatio,
		ColorFilter:   DefaultColorFilter,
		ImageType:     DefaultImageType,
		Region:        DefaultRegion,
		UsageRights:   DefaultUsageRights,
	}
}

// Normalize fills empty enum fields with their defaults. Records decoded
// from older recent files may have blank enum fields; after Normalize they
// behave exactly like a fresh form.
func (sc *SearchCriteria) Normalize() {
	if sc.TermsLocation == "" {
		sc.TermsLocation = LocationAnywhere
	}
	if sc.SearchType == "" {
		sc.SearchType = SearchTypeWeb
	}
	if sc.ImageSize == "" {
		sc.ImageSize = DefaultImageSize
	}
	if sc.AspectRatio == "" {
		sc.AspectRatio = DefaultAspectRatio
	}
	if sc.ColorFilter == "" {
		sc.ColorFilter = DefaultColorFilter
	}
	if sc.ImageType == "" {
		sc.ImageType = DefaultImageType
	}
	if sc.Region == "" {
		sc.Region = DefaultRegion
	}
	if sc.UsageRights == "" {
		sc.UsageRights = DefaultUsageRights
	}
}
