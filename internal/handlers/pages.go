package handler

import (
	"net/http"

	"invoice-dashboard/internal/services/invoices"

	"github.com/gin-gonic/gin"
)

const msgInvoiceNotFound = "Could not find the requested invoice."

// NotFound renders the 404 page.
func NotFound(c *gin.Context) {
	renderNotFound(c, "Could not find the requested page.")
}

func renderNotFound(c *gin.Context, message string) {
	c.HTML(http.StatusNotFound, "not_found.html", gin.H{
		"Title":   "Not Found",
		"Message": message,
	})
}

// ErrorPage renders the generic error page. Its retry link re-requests the
// current page, or the invoices list when the failed request was a form post.
func ErrorPage(c *gin.Context) {
	retry := invoices.ListPath
	if c.Request.Method == http.MethodGet {
		retry = c.Request.URL.RequestURI()
	}

	status := c.Writer.Status()
	if status < http.StatusBadRequest {
		status = http.StatusInternalServerError
	}
	c.HTML(status, "error.html", gin.H{
		"Title":     "Error",
		"RetryHref": retry,
	})
}

func renderError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Status(http.StatusInternalServerError)
	ErrorPage(c)
}
