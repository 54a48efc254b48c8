package http

import (
	"net/http"
	"sort"

	"github.com/dloman/sbhx-store/internal/app"
	"github.com/dloman/sbhx-store/internal/domain"
	"github.com/dloman/sbhx-store/internal/payment"
	"github.com/gin-gonic/gin"
)

type itemEntry struct {
	Name      string
	Formname  string
	Image     string
	Dates     string
	Price     string
	Limited   bool
	Remaining int
	SoldOut   bool
}

type fundraiserEntry struct {
	Name         string
	Formname     string
	Image        string
	Description  string
	Percent      int
	AmountRaised int
	Goal         int
}

// StorePage lists the inventory. Reads a snapshot taken under the store
// lock, so displayed counts are consistent with the last commit.
func (h *Handler) StorePage(c *gin.Context) {
	records := h.inventory.Snapshot()

	entries := make([]itemEntry, 0, len(records))
	for _, key := range sortedKeys(records) {
		item := records[key]
		entry := itemEntry{
			Name:     item.Name,
			Formname: item.Formname,
			Image:    item.Image,
			Dates:    item.Dates,
			Price:    payment.FormatAmount(item.Price),
			SoldOut:  item.SoldOut(),
		}
		if item.NumberOfItems != nil {
			entry.Limited = true
			entry.Remaining = *item.NumberOfItems
		}
		entries = append(entries, entry)
	}

	h.renderPage(c, "store.html", gin.H{"Items": entries})
}

// FundraisersPage lists the fundraising campaigns with progress bars.
func (h *Handler) FundraisersPage(c *gin.Context) {
	records := h.fundraisers.Snapshot()

	entries := make([]fundraiserEntry, 0, len(records))
	for _, key := range sortedKeys(records) {
		f := records[key]
		entries = append(entries, fundraiserEntry{
			Name:         f.Name,
			Formname:     f.Formname,
			Image:        f.Image,
			Description:  f.Description,
			Percent:      f.PercentRaised(),
			AmountRaised: int(f.AmountRaised),
			Goal:         int(f.Goal),
		})
	}

	h.renderPage(c, "fundraise.html", gin.H{"Fundraisers": entries})
}

// ItemPage renders the payment form for one inventory item.
func (h *Handler) ItemPage(c *gin.Context, key string) {
	item, ok := h.inventory.Snapshot()[key]
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	token, err := h.tokens.ClientToken(c.Request.Context())
	if err != nil {
		h.log.Error("client token", "key", key, "err", err)
		h.renderError(c, domain.KindCourseSignup)
		return
	}

	h.renderPage(c, "form.html", gin.H{
		"CourseType":  item.Formname,
		"Price":       payment.FormatAmount(item.Price + item.Discount),
		"Discount":    payment.FormatAmount(item.Discount),
		"Total":       payment.FormatAmount(item.Price),
		"ClientToken": token,
	})
}

// FundraiserPage renders the donation form for one fundraiser.
func (h *Handler) FundraiserPage(c *gin.Context, key string) {
	f, ok := h.fundraisers.Snapshot()[key]
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	token, err := h.tokens.ClientToken(c.Request.Context())
	if err != nil {
		h.log.Error("client token", "key", key, "err", err)
		h.renderError(c, domain.KindDonation)
		return
	}

	h.renderPage(c, "donate.html", gin.H{
		"Formname":    f.Formname,
		"Name":        f.Name,
		"Description": f.Description,
		"ClientToken": token,
	})
}

// InvoicePage renders the invoice payment form from the link's query
// parameters, with tax and total computed server-side.
func (h *Handler) InvoicePage(c *gin.Context) {
	var q invoiceQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.log.Warn("bad invoice link", "err", err)
		h.renderError(c, domain.KindInvoice)
		return
	}

	token, err := h.tokens.ClientToken(c.Request.Context())
	if err != nil {
		h.log.Error("client token", "invoice_id", q.InvoiceID, "err", err)
		h.renderError(c, domain.KindInvoice)
		return
	}

	tax, total := app.InvoiceTotal(q.Price, q.DisableSalesTax, q.Fees)
	h.renderPage(c, "invoice.html", gin.H{
		"InvoiceID":       q.InvoiceID,
		"Price":           payment.FormatAmount(q.Price),
		"Tax":             payment.FormatAmount(tax),
		"Total":           payment.FormatAmount(total),
		"DueDate":         q.DueDate,
		"DisableSalesTax": q.DisableSalesTax,
		"Fees":            q.Fees,
		"ClientToken":     token,
	})
}

func sortedKeys[R any](records map[string]R) []string {
	keys := make([]string, 0, len(records))
	for k := range records {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
