package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/api-sage/xubank-ledger/src/internal/logger"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()

	buf := &bytes.Buffer{}
	logger.SetOutput(buf)
	if err := logger.SetLevel("info"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	return buf
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("expected one JSON line, got %q: %v", buf.String(), err)
	}
	return entry
}

func TestInfoWritesMessageAndFields(t *testing.T) {
	buf := capture(t)

	logger.Info("ledger service deposit success", logger.Fields{"accountId": 7})

	entry := decodeLine(t, buf)
	if entry["message"] != "ledger service deposit success" {
		t.Fatalf("expected message, got %v", entry["message"])
	}
	if entry["level"] != "info" {
		t.Fatalf("expected info level, got %v", entry["level"])
	}
	if entry["accountId"] != float64(7) {
		t.Fatalf("expected accountId 7, got %v", entry["accountId"])
	}
}

func TestErrorIncludesError(t *testing.T) {
	buf := capture(t)

	logger.Error("ledger service withdraw failed", errors.New("insufficient funds"), nil)

	entry := decodeLine(t, buf)
	if entry["error"] != "insufficient funds" {
		t.Fatalf("expected error field, got %v", entry["error"])
	}
}

func TestInfoMasksSensitiveFields(t *testing.T) {
	buf := capture(t)

	logger.Info("ledger service register client request", logger.Fields{
		"payload": logger.SanitizePayload(map[string]string{"name": "Ada", "taxId": "12345678900"}),
		"cpf":     "12345678900",
	})

	if strings.Contains(buf.String(), "12345678900") {
		t.Fatalf("expected tax id to be masked, got %s", buf.String())
	}
}

func TestSetLevelFiltersDebug(t *testing.T) {
	buf := capture(t)

	logger.Debug("hidden", nil)
	if buf.Len() != 0 {
		t.Fatalf("expected debug to be filtered at info level, got %s", buf.String())
	}

	if err := logger.SetLevel("debug"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	logger.Debug("shown", nil)
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("expected debug output, got %s", buf.String())
	}
}

func TestSanitizePayloadNested(t *testing.T) {
	out := logger.SanitizePayload(map[string]any{
		"clients": []map[string]string{{"tax_id": "1", "name": "Ada"}},
	})

	clients := out.(map[string]any)["clients"].([]any)
	first := clients[0].(map[string]any)
	if first["tax_id"] != "******" || first["name"] != "Ada" {
		t.Fatalf("expected nested tax id masked, got %v", first)
	}
}

func TestSetLevelRejectsUnknownLevel(t *testing.T) {
	if err := logger.SetLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
