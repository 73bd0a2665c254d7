package search

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestParseState(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		query string
		page  int
	}{
		{"empty", "", "", 1},
		{"query only", "query=acme", "acme", 1},
		{"query and page", "query=acme&page=3", "acme", 3},
		{"non-numeric page", "page=abc", "", 1},
		{"zero page", "page=0", "", 1},
		{"negative page", "page=-2", "", 1},
		{"fractional page", "page=2.5", "", 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			values, err := url.ParseQuery(tc.raw)
			require.NoError(t, err)

			st := ParseState(values)
			assert.Equal(t, tc.query, st.Query)
			assert.Equal(t, tc.page, st.Page)
		})
	}
}

func TestApplyTerm_SetsQueryAndResetsPage(t *testing.T) {
	current := mustURL(t, "/dashboard/invoices?page=4")

	next := ApplyTerm(current, "acme")

	assert.Equal(t, "/dashboard/invoices", next.Path)
	assert.Equal(t, url.Values{"query": {"acme"}, "page": {"1"}}, next.Query())
	assert.Equal(t, "/dashboard/invoices?page=4", current.String(), "input URL is not mutated")
}

func TestApplyTerm_EmptyTermRemovesQuery(t *testing.T) {
	current := mustURL(t, "/dashboard/invoices?query=acme&page=2")

	next := ApplyTerm(current, "")

	assert.Equal(t, url.Values{"page": {"1"}}, next.Query())
}

func TestApplyTerm_KeepsOtherParams(t *testing.T) {
	current := mustURL(t, "/dashboard/invoices?sort=date&query=old&page=9")

	next := ApplyTerm(current, "new term")

	assert.Equal(t, "date", next.Query().Get("sort"))
	assert.Equal(t, "new term", next.Query().Get("query"))
	assert.Equal(t, "1", next.Query().Get("page"))
}

func TestPageURL(t *testing.T) {
	current := mustURL(t, "/dashboard/invoices?query=acme&page=1")

	next := PageURL(current, 3)

	assert.Equal(t, "/dashboard/invoices?page=3&query=acme", next.String())
}
