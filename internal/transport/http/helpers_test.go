package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/dloman/sbhx-store/internal/app"
	"github.com/dloman/sbhx-store/internal/domain"
	"github.com/dloman/sbhx-store/internal/storage/jsonfile"
	"github.com/dloman/sbhx-store/internal/testutil"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeProcessor struct {
	signupIn  *app.SignupInput
	donateIn  *app.DonationInput
	invoiceIn *app.InvoiceInput
	outcome   domain.Outcome
}

func (f *fakeProcessor) Signup(_ context.Context, _ *jsonfile.Store[domain.Item], in app.SignupInput) domain.Outcome {
	f.signupIn = &in
	out := f.outcome
	out.Kind = domain.KindCourseSignup
	return out
}

func (f *fakeProcessor) Donate(_ context.Context, _ *jsonfile.Store[domain.Fundraiser], in app.DonationInput) domain.Outcome {
	f.donateIn = &in
	out := f.outcome
	out.Kind = domain.KindDonation
	return out
}

func (f *fakeProcessor) Invoice(_ context.Context, in app.InvoiceInput) domain.Outcome {
	f.invoiceIn = &in
	out := f.outcome
	out.Kind = domain.KindInvoice
	return out
}

type fakeTokens struct {
	token string
	err   error
}

func (f *fakeTokens) ClientToken(context.Context) (string, error) {
	return f.token, f.err
}

func testStores(t *testing.T) (*jsonfile.Store[domain.Item], *jsonfile.Store[domain.Fundraiser]) {
	t.Helper()

	dir := t.TempDir()
	invPath := testutil.InventoryFixture(t, dir,
		domain.Item{Formname: "welding-101", Name: "Welding 101", Price: 250, Discount: 50, NumberOfItems: testutil.IntPtr(3), Dates: "June 1-5"},
		domain.Item{Formname: "cnc-class", Name: "CNC Class", Price: 200, NumberOfItems: testutil.IntPtr(0)},
		domain.Item{Formname: "open-workshop", Name: "Open Workshop", Price: 20},
	)
	fundPath := testutil.FundraisersFixture(t, dir,
		domain.Fundraiser{Formname: "new-laser", Name: "New Laser", Goal: 5000, AmountRaised: 1250, Description: "A bigger laser"},
	)

	inventory, err := jsonfile.Load[domain.Item](invPath)
	if err != nil {
		t.Fatalf("load inventory: %v", err)
	}
	fundraisers, err := jsonfile.Load[domain.Fundraiser](fundPath)
	if err != nil {
		t.Fatalf("load fundraisers: %v", err)
	}
	return inventory, fundraisers
}

func newTestRouter(t *testing.T, processor OrderProcessor, tokens TokenSource) *gin.Engine {
	t.Helper()

	inventory, fundraisers := testStores(t)
	h := NewHandler(processor, tokens, inventory, fundraisers, charmlog.New(io.Discard))
	return NewRouter(h, RouterConfig{})
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func validPaymentForm() url.Values {
	return url.Values{
		"first_name":           {"Ada"},
		"last_name":            {"Lovelace"},
		"email":                {"ada@example.com"},
		"address":              {"1 Analytical Way"},
		"city":                 {"Goleta"},
		"state":                {"CA"},
		"payment_method_nonce": {"fake-valid-nonce"},
	}
}
