package http

import (
	"context"

	charmlog "github.com/charmbracelet/log"
	"github.com/dloman/sbhx-store/internal/app"
	"github.com/dloman/sbhx-store/internal/domain"
	"github.com/dloman/sbhx-store/internal/storage/jsonfile"
	"github.com/gin-gonic/gin"
)

// OrderProcessor is the minimal surface the handlers need to process orders.
type OrderProcessor interface {
	Signup(ctx context.Context, store *jsonfile.Store[domain.Item], in app.SignupInput) domain.Outcome
	Donate(ctx context.Context, store *jsonfile.Store[domain.Fundraiser], in app.DonationInput) domain.Outcome
	Invoice(ctx context.Context, in app.InvoiceInput) domain.Outcome
}

// TokenSource supplies browser-side gateway tokens for the payment forms.
type TokenSource interface {
	ClientToken(ctx context.Context) (string, error)
}

// Handler holds the collaborators shared by all routes.
type Handler struct {
	processor   OrderProcessor
	tokens      TokenSource
	inventory   *jsonfile.Store[domain.Item]
	fundraisers *jsonfile.Store[domain.Fundraiser]
	log         *charmlog.Logger
}

func NewHandler(
	processor OrderProcessor,
	tokens TokenSource,
	inventory *jsonfile.Store[domain.Item],
	fundraisers *jsonfile.Store[domain.Fundraiser],
	logger *charmlog.Logger,
) *Handler {
	if logger == nil {
		logger = charmlog.Default()
	}
	return &Handler{
		processor:   processor,
		tokens:      tokens,
		inventory:   inventory,
		fundraisers: fundraisers,
		log:         logger,
	}
}

// RouterConfig carries the routing options that come from the environment.
type RouterConfig struct {
	AssetsDir   string
	CORSOrigins []string
}

// NewRouter builds the gin engine. Item and fundraiser form pages are
// registered per record key at boot, the same way the original site mapped
// each formname to its own path; records added to the backing files while
// running need a restart to get a route. A record key that collides with a
// fixed route, or with a key already registered from the other store, is
// skipped with a warning instead of panicking the engine at boot.
func NewRouter(h *Handler, cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(h.log), CORS(cfg.CORSOrigins))

	router.GET("/health", HealthHandler)

	if cfg.AssetsDir != "" {
		router.Static("/assets", cfg.AssetsDir)
	}

	router.GET("/", h.StorePage)
	router.GET("/store", h.StorePage)
	router.GET("/fundraise", h.FundraisersPage)
	router.GET("/donate", h.FundraisersPage)
	router.GET("/invoice", h.InvoicePage)

	router.POST("/signup", h.ProcessSignup)
	router.POST("/process_donation", h.ProcessDonation)
	router.POST("/process_invoice", h.ProcessInvoice)

	taken := map[string]struct{}{
		"": {}, "health": {}, "assets": {},
		"store": {}, "fundraise": {}, "donate": {}, "invoice": {},
		"signup": {}, "process_donation": {}, "process_invoice": {},
	}
	registerPage := func(key string, page func(*gin.Context, string)) {
		if _, clash := taken[key]; clash {
			h.log.Warn("record key collides with an existing route, page not registered", "key", key)
			return
		}
		taken[key] = struct{}{}
		router.GET("/"+key, func(c *gin.Context) { page(c, key) })
	}
	for _, key := range h.inventory.Keys() {
		registerPage(key, h.ItemPage)
	}
	for _, key := range h.fundraisers.Keys() {
		registerPage(key, h.FundraiserPage)
	}

	return router
}
