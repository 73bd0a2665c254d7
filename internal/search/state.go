package search

import (
	"net/url"
	"strconv"
)

const (
	ParamQuery = "query"
	ParamPage  = "page"
)

// State is the list page's search state.
type State struct {
	Query string
	Page  int
}

// ParseState derives State from URL query parameters. A missing query means
// no filter; a missing, non-numeric or non-positive page means page 1.
func ParseState(values url.Values) State {
	page, err := strconv.Atoi(values.Get(ParamPage))
	if err != nil || page < 1 {
		page = 1
	}
	return State{Query: values.Get(ParamQuery), Page: page}
}

// ApplyTerm returns a copy of current with the search term applied: page is
// reset to 1, query is set to term, or removed when term is empty. Other
// parameters and the path are kept.
func ApplyTerm(current *url.URL, term string) *url.URL {
	next := *current
	params := current.Query()

	params.Set(ParamPage, "1")
	if term != "" {
		params.Set(ParamQuery, term)
	} else {
		params.Del(ParamQuery)
	}

	next.RawQuery = params.Encode()
	return &next
}

// PageURL returns a copy of current pointing at page.
func PageURL(current *url.URL, page int) *url.URL {
	next := *current
	params := current.Query()
	params.Set(ParamPage, strconv.Itoa(page))
	next.RawQuery = params.Encode()
	return &next
}
