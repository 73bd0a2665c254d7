package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"invoice-dashboard/internal/cache"
	"invoice-dashboard/internal/models"
	"invoice-dashboard/internal/search"
	"invoice-dashboard/internal/services/invoices"
	"invoice-dashboard/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ParamMessage carries the outcome of a delete back to the invoices list.
const ParamMessage = "message"

const htmlContentType = "text/html; charset=utf-8"

type InvoiceReader interface {
	FetchFilteredInvoices(ctx context.Context, query string, currentPage int) ([]models.InvoicesTable, error)
	FetchInvoicesPages(ctx context.Context, query string) (int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error)
}

type CustomerLister interface {
	FetchCustomers(ctx context.Context) ([]models.CustomerField, error)
}

type InvoiceHandler struct {
	service   *invoices.Service
	invoices  InvoiceReader
	customers CustomerLister
	pages     cache.PageCache
	renderer  *web.Renderer
	debounce  time.Duration
}

func NewInvoiceHandler(
	s *invoices.Service,
	invoiceReader InvoiceReader,
	customers CustomerLister,
	pages cache.PageCache,
	renderer *web.Renderer,
	debounce time.Duration,
) *InvoiceHandler {
	return &InvoiceHandler{
		service:   s,
		invoices:  invoiceReader,
		customers: customers,
		pages:     pages,
		renderer:  renderer,
		debounce:  debounce,
	}
}

type pageLink struct {
	Page     int
	Ellipsis bool
	Active   bool
	Href     string
}

type listPage struct {
	Title          string
	Flash          string
	Query          string
	DebounceMillis int64
	QueryParam     string
	PageParam      string
	MessageParam   string
	Rows           []models.InvoicesTable
	Pages          []pageLink
	PrevHref       string
	NextHref       string
}

type formPage struct {
	template string

	Title       string
	Action      string
	SubmitLabel string
	Customers   []models.CustomerField
	Values      invoices.FormFields
	Errors      invoices.FieldErrors
	Message     string
}

// List renders the invoices table for the query and page in the URL. Pages
// are served from the page cache until a mutation revalidates the list.
func (h *InvoiceHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	values := c.Request.URL.Query()
	key := values.Encode()

	// The lookup's generation is taken before the data is fetched, so a
	// revalidation during the render drops the write below.
	lookup, err := h.pages.Get(ctx, invoices.ListPath, key)
	cacheable := err == nil
	if err != nil {
		slog.Warn("page cache read failed", "path", invoices.ListPath, "error", err)
	}
	if lookup.Hit {
		c.Data(http.StatusOK, htmlContentType, lookup.Page)
		return
	}

	state := search.ParseState(values)
	totalPages, err := h.invoices.FetchInvoicesPages(ctx, state.Query)
	if err != nil {
		renderError(c, err)
		return
	}
	rows, err := h.invoices.FetchFilteredInvoices(ctx, state.Query, state.Page)
	if err != nil {
		renderError(c, err)
		return
	}

	base := listURL(c.Request.URL.String())

	data := listPage{
		Title:          "Invoices",
		Flash:          values.Get(ParamMessage),
		Query:          state.Query,
		DebounceMillis: h.debounce.Milliseconds(),
		QueryParam:     search.ParamQuery,
		PageParam:      search.ParamPage,
		MessageParam:   ParamMessage,
		Rows:           rows,
	}
	for _, item := range search.Pagination(state.Page, totalPages) {
		link := pageLink{Page: item.Page, Ellipsis: item.Ellipsis, Active: item.Page == state.Page}
		if !item.Ellipsis {
			link.Href = search.PageURL(base, item.Page).String()
		}
		data.Pages = append(data.Pages, link)
	}
	if state.Page > 1 {
		data.PrevHref = search.PageURL(base, state.Page-1).String()
	}
	if state.Page < totalPages {
		data.NextHref = search.PageURL(base, state.Page+1).String()
	}

	page, err := h.renderer.Render("invoices.html", data)
	if err != nil {
		renderError(c, err)
		return
	}
	if cacheable {
		if err := h.pages.Set(ctx, invoices.ListPath, key, lookup.Generation, page); err != nil {
			slog.Warn("page cache write failed", "path", invoices.ListPath, "error", err)
		}
	}
	c.Data(http.StatusOK, htmlContentType, page)
}

// Search applies a submitted term to the list URL the form was submitted
// from and redirects there. Browsers without scripts land here.
func (h *InvoiceHandler) Search(c *gin.Context) {
	next := search.ApplyTerm(listURL(c.Request.Referer()), c.Query("term"))
	c.Redirect(http.StatusSeeOther, next.String())
}

// listURL returns the invoices list URL referenced by referer, keeping only
// its query minus any flash message. Anything else falls back to the bare
// list path.
func listURL(referer string) *url.URL {
	u := &url.URL{Path: invoices.ListPath}
	ref, err := url.Parse(referer)
	if err != nil || ref.Path != invoices.ListPath {
		return u
	}
	q := ref.Query()
	q.Del(ParamMessage)
	u.RawQuery = q.Encode()
	return u
}

func (h *InvoiceHandler) CreateForm(c *gin.Context) {
	h.renderForm(c, http.StatusOK, h.createPage())
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	var fields invoices.FormFields
	if err := c.ShouldBind(&fields); err != nil {
		slog.Debug("bind invoice form", "error", err)
	}

	res := h.service.CreateInvoice(c.Request.Context(), fields)
	if res.Navigates() {
		c.Redirect(http.StatusSeeOther, res.Redirect)
		return
	}

	page := h.createPage()
	page.Values = fields
	page.Errors = res.State.Errors
	page.Message = res.State.Message
	h.renderForm(c, failureStatus(res.State), page)
}

func (h *InvoiceHandler) EditForm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		renderNotFound(c, msgInvoiceNotFound)
		return
	}

	inv, err := h.invoices.GetByID(c.Request.Context(), id)
	if errors.Is(err, models.ErrInvoiceNotFound) {
		renderNotFound(c, msgInvoiceNotFound)
		return
	}
	if err != nil {
		renderError(c, err)
		return
	}

	page := h.editPage(inv.ID.String())
	page.Values = invoices.FormFields{
		CustomerID: inv.CustomerID,
		Amount:     decimal.New(inv.Amount, -2).StringFixed(2),
		Status:     string(inv.Status),
	}
	h.renderForm(c, http.StatusOK, page)
}

func (h *InvoiceHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var fields invoices.FormFields
	if err := c.ShouldBind(&fields); err != nil {
		slog.Debug("bind invoice form", "error", err)
	}

	res := h.service.UpdateInvoice(c.Request.Context(), id, fields)
	if res.Navigates() {
		c.Redirect(http.StatusSeeOther, res.Redirect)
		return
	}

	page := h.editPage(id)
	page.Values = fields
	page.Errors = res.State.Errors
	page.Message = res.State.Message
	h.renderForm(c, failureStatus(res.State), page)
}

// Delete removes the invoice and returns to the list the request came from,
// with the outcome message shown above the table.
func (h *InvoiceHandler) Delete(c *gin.Context) {
	res := h.service.DeleteInvoice(c.Request.Context(), c.Param("id"))

	next := listURL(c.Request.Referer())
	q := next.Query()
	q.Set(ParamMessage, res.State.Message)
	next.RawQuery = q.Encode()
	c.Redirect(http.StatusSeeOther, next.String())
}

func (h *InvoiceHandler) createPage() formPage {
	return formPage{
		template:    "create.html",
		Title:       "Create Invoice",
		Action:      invoices.ListPath,
		SubmitLabel: "Create Invoice",
	}
}

func (h *InvoiceHandler) editPage(id string) formPage {
	return formPage{
		template:    "edit.html",
		Title:       "Edit Invoice",
		Action:      invoices.ListPath + "/" + id,
		SubmitLabel: "Edit Invoice",
	}
}

func (h *InvoiceHandler) renderForm(c *gin.Context, status int, page formPage) {
	customers, err := h.customers.FetchCustomers(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	page.Customers = customers
	c.HTML(status, page.template, page)
}

// failureStatus is 422 for rejected input and 500 when the store failed.
func failureStatus(state *invoices.FormState) int {
	if len(state.Errors) > 0 {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
