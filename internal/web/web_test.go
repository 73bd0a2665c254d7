package web

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestTemplates_Parse(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	for _, name := range []string{"dashboard.html", "invoices.html", "create.html", "edit.html", "not_found.html", "error.html", "invoice_form"} {
		assert.NotNil(t, tmpl.Lookup(name), "template %s", name)
	}
}

func TestRenderer_NotFound(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	out, err := NewRenderer(tmpl).Render("not_found.html", map[string]string{
		"Title":   "Not Found",
		"Message": "Could not find the requested invoice.",
	})
	require.NoError(t, err)
	assert.Contains(t, string(out), "404 Not Found")
	assert.Contains(t, string(out), "Could not find the requested invoice.")
	assert.Contains(t, string(out), "<title>Not Found | Acme Dashboard</title>")
}

func TestFormatDate(t *testing.T) {
	d := datatypes.Date(time.Date(2026, time.October, 5, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "Oct 5, 2026", FormatDate(d))
}

func TestFieldErrors(t *testing.T) {
	assert.Nil(t, fieldErrors(nil, "amount"))
	assert.Equal(t, []string{"x"}, fieldErrors(map[string][]string{"amount": {"x"}}, "amount"))
	assert.False(t, hasErrors(nil))
	assert.True(t, hasErrors(map[string][]string{"status": {"y"}}))
}
