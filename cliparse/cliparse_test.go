// cliparse/cliparse_test.go
package cliparse

import (
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "votes.db")
	t.Setenv("TRANSPORT_KEY", "test-key")
	t.Setenv("BOT_TOKEN", "test-token")
}

func TestParseFlags_EnvVars(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("ORACLE_TIMEOUT", "3s")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected default database type sqlite, got %s", cfg.DatabaseType)
	}
	if cfg.OracleTimeout != 3*time.Second {
		t.Errorf("expected oracle timeout 3s, got %s", cfg.OracleTimeout)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9000")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "other.db"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "other.db" {
		t.Errorf("CLI should override env: expected other.db, got %s", cfg.DatabaseURL)
	}
}

func TestParseFlags_MissingRequired(t *testing.T) {
	tests := []struct {
		name string
		skip string
	}{
		{"missing database url", "DATABASE_URL"},
		{"missing transport key", "TRANSPORT_KEY"},
		{"missing bot token", "BOT_TOKEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"DATABASE_URL", "TRANSPORT_KEY", "BOT_TOKEN"} {
				if key == tt.skip {
					t.Setenv(key, "")
				} else {
					t.Setenv(key, "something")
				}
			}

			if _, err := ParseFlags([]string{}); err == nil {
				t.Errorf("expected error when %s is missing", tt.skip)
			}
		})
	}
}

func TestParseFlags_InvalidDatabaseType(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DATABASE_TYPE", "mysql")

	if _, err := ParseFlags([]string{}); err == nil {
		t.Error("expected error for unsupported database type")
	}
}

func TestParseAdminSeed(t *testing.T) {
	tests := []struct {
		name    string
		seed    string
		wantLen int
		wantErr bool
	}{
		{"empty", "", 0, false},
		{"single", "1001:alice", 1, false},
		{"multiple", "1001:alice,1002:bob", 2, false},
		{"spaces", " 1001:alice , 1002:bob ", 2, false},
		{"trailing comma", "1001:alice,", 1, false},
		{"missing handle", "1001", 0, true},
		{"empty handle", "1001:", 0, true},
		{"bad id", "abc:alice", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			admins, err := ParseAdminSeed(tt.seed)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseAdminSeed(%q) expected error", tt.seed)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAdminSeed(%q) error = %v", tt.seed, err)
			}
			if len(admins) != tt.wantLen {
				t.Errorf("ParseAdminSeed(%q) returned %d admins, want %d", tt.seed, len(admins), tt.wantLen)
			}
		})
	}
}

func TestParseAdminSeed_Fields(t *testing.T) {
	admins, err := ParseAdminSeed("1001:alice")
	if err != nil {
		t.Fatal(err)
	}
	if admins[0].ID != 1001 || admins[0].Handle != "alice" {
		t.Errorf("got %+v, want id=1001 handle=alice", admins[0])
	}
}
