package query

import (
	"net/url"
	"strings"

	"gsearch/internal/models"
)

// BaseURL is the search endpoint the parameter string is appended to.
const BaseURL = "https://www.google.com/search"

// tbm selects the search vertical. Web has no code and omits the parameter.
var tbmCodes = map[string]string{
	models.SearchTypeImages: "isch",
	models.SearchTypeVideos: "vid",
	models.SearchTypeNews:   "nws",
}

// tbs filter codes, keyed by the form labels. Default labels have no entry
// and contribute nothing.
var imageSizeCodes = map[string]string{
	"Large":  "isz:l",
	"Medium": "isz:m",
	"Icon":   "isz:i",
}

var aspectRatioCodes = map[string]string{
	"Square":    "iar:s",
	"Tall":      "iar:t",
	"Wide":      "iar:w",
	"Panoramic": "iar:xw",
}

var colorFilterCodes = map[string]string{
	"Full color":      "ic:color",
	"Black and white": "ic:gray",
	"Transparent":     "ic:trans",
}

var specificColorCodes = map[string]string{
	"Black":  "isc:black",
	"Blue":   "isc:blue",
	"Brown":  "isc:brown",
	"Gray":   "isc:gray",
	"Green":  "isc:green",
	"Orange": "isc:orange",
	"Pink":   "isc:pink",
	"Purple": "isc:purple",
	"Red":    "isc:red",
	"Teal":   "isc:teal",
	"White":  "isc:white",
	"Yellow": "isc:yellow",
}

var imageTypeCodes = map[string]string{
	"Face":         "itp:face",
	"Photo":        "itp:photo",
	"Clip art":     "itp:clipart",
	"Line drawing": "itp:lineart",
	"Animated":     "itp:animated",
}

var usageRightsCodes = map[string]string{
	"Free to use or share":                        "sur:f",
	"Free to use or share commercially":           "sur:fc",
	"Free to use or share or modify":              "sur:fm",
	"Free to use or share or modify commercially": "sur:fmc",
}

// cr country-restrict codes. Labels without an entry contribute nothing.
var regionCodes = map[string]string{
	"Afghanistan":    "countryAF",
	"Albania":        "countryAL",
	"Algeria":        "countryDZ",
	"Australia":      "countryAU",
	"Brazil":         "countryBR",
	"Canada":         "countryCA",
	"France":         "countryFR",
	"Germany":        "countryDE",
	"India":          "countryIN",
	"Japan":          "countryJP",
	"United Kingdom": "countryGB",
	"United States":  "countryUS",
}

// Params builds the URL query-string fragment for a criteria record:
// q=<encoded query>, then tbm for non-web search types, then tbs image
// filters and cr region restriction for image searches. Returns the empty
// string when the record generates no query.
func Params(sc models.SearchCriteria) string {
	q := Build(sc)
	if q == "" {
		return ""
	}

	// QueryEscape encodes spaces as "+", matching what Google's own advanced
	// search form produces. The tbs and cr values are raw short codes and
	// never need escaping.
	frag := "q=" + url.QueryEscape(q)

	if code, ok := tbmCodes[sc.SearchType]; ok {
		frag += "&tbm=" + code
	}

	if sc.SearchType == models.SearchTypeImages {
		var tbs []string

		if code, ok := imageSizeCodes[sc.ImageSize]; ok {
			tbs = append(tbs, code)
		}
		if code, ok := aspectRatioCodes[sc.AspectRatio]; ok {
			tbs = append(tbs, code)
		}
		if code, ok := colorFilterCodes[sc.ColorFilter]; ok {
			tbs = append(tbs, code)
		} else if sc.ColorFilter == models.ColorFilterSpecific && sc.SpecificColor != "" {
			if code, ok := specificColorCodes[sc.SpecificColor]; ok {
				tbs = append(tbs, code)
			}
		}
		if code, ok := imageTypeCodes[sc.ImageType]; ok {
			tbs = append(tbs, code)
		}
		if code, ok := usageRightsCodes[sc.UsageRights]; ok {
			tbs = append(tbs, code)
		}

		if len(tbs) > 0 {
			frag += "&tbs=" + strings.Join(tbs, ",")
		}

		if code, ok := regionCodes[sc.Region]; ok {
			frag += "&cr=" + code
		}
	}

	return frag
}

// SearchURL returns the full search URL for a record, or the empty string
// when the record generates no query.
func SearchURL(sc models.SearchCriteria) string {
	params := Params(sc)
	if params == "" {
		return ""
	}
	return BaseURL + "?" + params
}
