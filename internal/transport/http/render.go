package http

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/dloman/sbhx-store/internal/domain"
	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type resultPage struct {
	Name string
	URL  string
}

// RenderOutcome maps a terminal order outcome to the customer-facing result
// page. The page carries the payment kind's display name and its return-to
// URL; the distinction between reject reasons stays in the logs.
func (h *Handler) RenderOutcome(c *gin.Context, out domain.Outcome) {
	name := "error.html"
	if out.Status == domain.OutcomeSuccess {
		name = "thanks.html"
	}
	h.renderPage(c, name, resultPage{
		Name: out.Kind.DisplayName(),
		URL:  out.Kind.ReturnURL(),
	})
}

func (h *Handler) renderError(c *gin.Context, kind domain.PaymentKind) {
	h.renderPage(c, "error.html", resultPage{
		Name: kind.DisplayName(),
		URL:  kind.ReturnURL(),
	})
}

func (h *Handler) renderPage(c *gin.Context, name string, data any) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := pages.ExecuteTemplate(c.Writer, name, data); err != nil {
		h.log.Error("render page", "template", name, "err", err)
	}
}
