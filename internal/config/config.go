package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultPort            = "7777"
	defaultInventoryFile   = "inventory.json"
	defaultFundraisersFile = "fundraising_goals.json"
	defaultAssetsDir       = "assets"
)

// Config carries everything the server needs from the environment.
type Config struct {
	Port string

	// Gateway credentials. Environment selects sandbox or production.
	Environment string
	MerchantID  string
	PublicKey   string
	PrivateKey  string
	// GatewayBaseURL overrides the gateway host; used by tests.
	GatewayBaseURL string

	InventoryFile   string
	FundraisersFile string
	AssetsDir       string

	CORSOrigins []string
	LogLevel    string
}

// Load reads configuration from the environment, with a .env file as
// fallback for unset variables. Missing gateway credentials are an error:
// the server must not start without them.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:            getenv("PORT", defaultPort),
		Environment:     os.Getenv("ENVIRONMENT"),
		MerchantID:      os.Getenv("MERCHANT_ID"),
		PublicKey:       os.Getenv("PUBLIC_KEY"),
		PrivateKey:      os.Getenv("PRIVATE_KEY"),
		GatewayBaseURL:  os.Getenv("GATEWAY_BASE_URL"),
		InventoryFile:   getenv("INVENTORY_FILE", defaultInventoryFile),
		FundraisersFile: getenv("FUNDRAISERS_FILE", defaultFundraisersFile),
		AssetsDir:       getenv("ASSETS_DIR", defaultAssetsDir),
		CORSOrigins:     parseCSV(os.Getenv("CORS_ORIGINS")),
		LogLevel:        os.Getenv("LOG_LEVEL"),
	}

	for _, required := range []struct{ name, value string }{
		{"ENVIRONMENT", cfg.Environment},
		{"MERCHANT_ID", cfg.MerchantID},
		{"PUBLIC_KEY", cfg.PublicKey},
		{"PRIVATE_KEY", cfg.PrivateKey},
	} {
		if required.value == "" {
			return Config{}, fmt.Errorf("environment variable %s is not defined", required.name)
		}
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseCSV(input string) []string {
	var out []string
	for _, field := range strings.FieldsFunc(input, func(r rune) bool { return r == ',' }) {
		if field = strings.TrimSpace(field); field != "" {
			out = append(out, field)
		}
	}
	return out
}
