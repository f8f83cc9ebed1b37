package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/tellerbot/teller/models"
)

type Config struct {
	Port          int           `env:"PORT" envDefault:"3319"`
	DatabaseURL   string        `env:"DATABASE_URL"`
	DatabaseType  string        `env:"DATABASE_TYPE" envDefault:"sqlite"`
	TransportKey  string        `env:"TRANSPORT_KEY"`
	BotToken      string        `env:"BOT_TOKEN"`
	OracleTimeout time.Duration `env:"ORACLE_TIMEOUT" envDefault:"5s"`
	AdminSeed     string        `env:"ADMIN_SEED"`
}

// ParseFlags loads configuration from environment variables, then lets
// CLI flags override individual values
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("teller", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", cfg.Port, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", cfg.DatabaseURL, "Database URL or sqlite file path")
	fs.StringVar(&cfg.DatabaseType, "t", cfg.DatabaseType, "Database type (sqlite or postgres)")
	fs.DurationVar(&cfg.OracleTimeout, "oracle-timeout", cfg.OracleTimeout, "Membership oracle call timeout")
	fs.StringVar(&cfg.AdminSeed, "admins", cfg.AdminSeed, "Admin seed list (id:handle,id:handle)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.TransportKey, "transport-key", cfg.TransportKey, "Shared key for the chat transport (prefer env)")
	fs.StringVar(&cfg.BotToken, "bot-token", cfg.BotToken, "Bot API token (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("invalid database type %q (sqlite or postgres)", cfg.DatabaseType)
	}
	if cfg.OracleTimeout <= 0 {
		return Config{}, errors.New("oracle timeout must be positive")
	}

	// Secrets - MUST be provided
	if cfg.TransportKey == "" {
		return Config{}, errors.New("TRANSPORT_KEY required")
	}
	if cfg.BotToken == "" {
		return Config{}, errors.New("BOT_TOKEN required")
	}

	return cfg, nil
}

// ParseAdminSeed parses the admin seed list into admin records.
// Format: comma-separated id:handle pairs, e.g. "1001:alice,1002:bob".
// An empty seed is valid and yields no admins.
func ParseAdminSeed(seed string) ([]models.Admin, error) {
	if strings.TrimSpace(seed) == "" {
		return nil, nil
	}

	var admins []models.Admin
	for _, pair := range strings.Split(seed, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		id, handle, ok := strings.Cut(pair, ":")
		if !ok || handle == "" {
			return nil, fmt.Errorf("invalid admin seed entry %q (want id:handle)", pair)
		}

		userID, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid admin id %q: %w", id, err)
		}

		admins = append(admins, models.Admin{ID: userID, Handle: handle})
	}

	return admins, nil
}
