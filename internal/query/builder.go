// Package query turns a SearchCriteria record into a Google advanced-search
// query string and the matching search-URL parameters. Everything here is a
// pure function: same record in, same string out.
package query

import (
	"strings"

	"gsearch/internal/models"
)

// Build assembles the advanced-query string from a criteria record. Tokens
// are emitted in a fixed order and joined with single spaces; fields left
// empty contribute nothing. An entirely empty record yields the empty
// string, which callers must treat as "no valid search".
func Build(sc models.SearchCriteria) string {
	var pieces []string

	if sc.AllWords != "" {
		words := strings.TrimSpace(sc.AllWords)
		switch sc.TermsLocation {
		case models.LocationTitle:
			pieces = append(pieces, "allintitle:"+words)
		case models.LocationText:
			pieces = append(pieces, "allintext:"+words)
		case models.LocationURL:
			pieces = append(pieces, "allinurl:"+words)
		case models.LocationLinks:
			pieces = append(pieces, "allinanchor:"+words)
		default:
			pieces = append(pieces, words)
		}
	}

	if sc.ExactPhrase != "" {
		pieces = append(pieces, `"`+strings.TrimSpace(sc.ExactPhrase)+`"`)
	}

	if sc.ExcludeWords != "" {
		var excluded []string
		for _, w := range strings.Fields(sc.ExcludeWords) {
			excluded = append(excluded, "-"+w)
		}
		if len(excluded) > 0 {
			pieces = append(pieces, strings.Join(excluded, " "))
		}
	}

	if sc.OrWords != "" {
		var terms []string
		for _, t := range strings.Split(sc.OrWords, "|") {
			if t = strings.TrimSpace(t); t != "" {
				terms = append(terms, t)
			}
		}
		if len(terms) > 0 {
			pieces = append(pieces, "("+strings.Join(terms, " OR ")+")")
		}
	}

	if sc.Site != "" {
		pieces = append(pieces, "site:"+strings.TrimSpace(sc.Site))
	}

	if sc.Filetype != "" {
		pieces = append(pieces, "filetype:"+strings.TrimSpace(sc.Filetype))
	}

	if sc.Intitle != "" {
		pieces = append(pieces, "intitle:"+strings.TrimSpace(sc.Intitle))
	}

	if sc.Inurl != "" {
		pieces = append(pieces, "inurl:"+strings.TrimSpace(sc.Inurl))
	}

	// Numeric range needs both bounds; the unit is optional and prepends to
	// each bound ("$500..$1000").
	if sc.RangeFrom != "" && sc.RangeTo != "" {
		from := strings.TrimSpace(sc.RangeFrom)
		to := strings.TrimSpace(sc.RangeTo)
		unit := strings.TrimSpace(sc.RangeUnit)
		pieces = append(pieces, unit+from+".."+unit+to)
	}

	if sc.Before != "" {
		pieces = append(pieces, "before:"+strings.TrimSpace(sc.Before))
	}

	if sc.After != "" {
		pieces = append(pieces, "after:"+strings.TrimSpace(sc.After))
	}

	return strings.TrimSpace(strings.Join(pieces, " "))
}
