package http

import (
	"github.com/dloman/sbhx-store/internal/app"
	"github.com/dloman/sbhx-store/internal/domain"
	"github.com/gin-gonic/gin"
)

// ProcessSignup handles the course-signup form post.
func (h *Handler) ProcessSignup(c *gin.Context) {
	var form signupForm
	if err := c.ShouldBind(&form); err != nil {
		h.log.Warn("bad signup form", "err", err)
		h.renderError(c, domain.KindCourseSignup)
		return
	}

	out := h.processor.Signup(c.Request.Context(), h.inventory, app.SignupInput{
		CourseType: form.CourseType,
		Payment:    form.toDomain(),
	})
	h.RenderOutcome(c, out)
}

// ProcessDonation handles the donation form post.
func (h *Handler) ProcessDonation(c *gin.Context) {
	var form donationForm
	if err := c.ShouldBind(&form); err != nil {
		h.log.Warn("bad donation form", "err", err)
		h.renderError(c, domain.KindDonation)
		return
	}

	out := h.processor.Donate(c.Request.Context(), h.fundraisers, app.DonationInput{
		FundraiserName: form.FundraiserName,
		Amount:         form.Amount,
		Payment:        form.toDomain(),
	})
	h.RenderOutcome(c, out)
}

// ProcessInvoice handles the invoice payment form post.
func (h *Handler) ProcessInvoice(c *gin.Context) {
	var form invoiceForm
	if err := c.ShouldBind(&form); err != nil {
		h.log.Warn("bad invoice form", "err", err)
		h.renderError(c, domain.KindInvoice)
		return
	}

	out := h.processor.Invoice(c.Request.Context(), app.InvoiceInput{
		InvoiceID:       form.InvoiceID,
		Price:           form.Price,
		DisableSalesTax: form.DisableSalesTax,
		Fees:            form.Fees,
		Payment:         form.toDomain(),
	})
	h.RenderOutcome(c, out)
}
