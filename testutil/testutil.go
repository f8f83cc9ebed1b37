// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/tellerbot/teller/cliparse"
	"github.com/tellerbot/teller/db"
)

// SetupTestDB creates a fresh sqlite database in a per-test temp dir
// with the full schema. The file lives under t.TempDir so cleanup is
// automatic.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "teller_test.db")
	conn, err := db.Open("sqlite", path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3319,
		DatabaseType:  "sqlite",
		DatabaseURL:   "teller_test.db",
		TransportKey:  "test-transport-key",
		BotToken:      "test-bot-token",
		OracleTimeout: 2 * time.Second,
	}
}

// CreateTestParticipant inserts a participant row directly
func CreateTestParticipant(t *testing.T, conn *sql.DB, id int64, handle, name string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO participant (user_id, handle, display_name, vote_count, registered_at)
		VALUES ($1, $2, $3, 0, $4)
	`, id, handle, name, time.Now().UnixMilli())
	if err != nil {
		t.Fatalf("Failed to create test participant: %v", err)
	}
}

// CreateTestAdmin inserts an admin row directly
func CreateTestAdmin(t *testing.T, conn *sql.DB, id int64, handle string) {
	t.Helper()

	_, err := conn.Exec(`INSERT INTO admin (user_id, handle) VALUES ($1, $2)`, id, handle)
	if err != nil {
		t.Fatalf("Failed to create test admin: %v", err)
	}
}

// SetTestChannel writes the gating channel reference directly
func SetTestChannel(t *testing.T, conn *sql.DB, channelID int64) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO channel (id, channel_id) VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET channel_id = excluded.channel_id
	`, channelID)
	if err != nil {
		t.Fatalf("Failed to set test channel: %v", err)
	}
}

// GetVoteCount reads a participant's tally directly
func GetVoteCount(t *testing.T, conn *sql.DB, id int64) int {
	t.Helper()

	var count int
	if err := conn.QueryRow(`SELECT vote_count FROM participant WHERE user_id = $1`, id).Scan(&count); err != nil {
		t.Fatalf("Failed to read vote count: %v", err)
	}
	return count
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
