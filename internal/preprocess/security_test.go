package preprocess

import (
	"errors"
	"io"
	"log"
	"testing"

	"github.com/moamenhredeen/oas2graph/internal/models"
	"github.com/moamenhredeen/oas2graph/internal/schema"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestNormalizeAPIKeyScheme(t *testing.T) {
	entries := []models.SchemeEntry{
		{Key: "app_key", Def: &models.SecuritySchemeDef{Type: "apiKey", Name: "X-App-Key", In: "header"}},
	}

	schemes, order, err := normalizeSecuritySchemes(entries, models.Options{}, quietLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s, ok := schemes["app_key"]
	if !ok {
		t.Fatalf("expected scheme app_key, got %v", order)
	}
	if s.RawName != "app_key" {
		t.Errorf("unexpected raw name %q", s.RawName)
	}
	if got := s.Parameters["apiKey"]; got != "app_key_apiKey" {
		t.Errorf("expected parameter app_key_apiKey, got %q", got)
	}
	if s.Schema == nil || s.Schema.Kind != schema.KindObject {
		t.Fatal("expected synthesized object schema")
	}
	prop, ok := s.Schema.Properties["apiKey"]
	if !ok || prop.Type != "string" {
		t.Error("expected string property apiKey on synthesized schema")
	}
}

func TestNormalizeBasicScheme(t *testing.T) {
	entries := []models.SchemeEntry{
		{Key: "basic_auth", Def: &models.SecuritySchemeDef{Type: "http", Scheme: "basic"}},
	}

	schemes, _, err := normalizeSecuritySchemes(entries, models.Options{}, quietLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s, ok := schemes["basic_auth"]
	if !ok {
		t.Fatal("expected scheme basic_auth")
	}
	if got := s.Parameters["username"]; got != "basic_auth_username" {
		t.Errorf("unexpected username parameter %q", got)
	}
	if got := s.Parameters["password"]; got != "basic_auth_password" {
		t.Errorf("unexpected password parameter %q", got)
	}
	if len(s.Schema.Properties) != 2 {
		t.Errorf("expected 2 credential properties, got %d", len(s.Schema.Properties))
	}
}

func TestNormalizeExcludesOAuth2(t *testing.T) {
	entries := []models.SchemeEntry{
		{Key: "petstore_auth", Def: &models.SecuritySchemeDef{Type: "oauth2"}},
	}

	for _, strict := range []bool{false, true} {
		schemes, _, err := normalizeSecuritySchemes(entries, models.Options{Strict: strict}, quietLogger())
		if err != nil {
			t.Fatalf("strict=%v: unexpected error: %v", strict, err)
		}
		if len(schemes) != 0 {
			t.Errorf("strict=%v: oauth2 scheme must never appear in the normalized map", strict)
		}
	}
}

func TestNormalizeUnsupportedScheme(t *testing.T) {
	entries := []models.SchemeEntry{
		{Key: "digest_auth", Def: &models.SecuritySchemeDef{Type: "http", Scheme: "digest"}},
	}

	// Non-strict: the scheme is simply omitted.
	schemes, order, err := normalizeSecuritySchemes(entries, models.Options{}, quietLogger())
	if err != nil {
		t.Fatalf("non-strict mode should not fail: %v", err)
	}
	if len(schemes) != 0 || len(order) != 0 {
		t.Error("unsupported scheme must be omitted in non-strict mode")
	}

	// Strict: the run fails, naming the scheme.
	_, _, err = normalizeSecuritySchemes(entries, models.Options{Strict: true}, quietLogger())
	if !errors.Is(err, ErrUnsupportedScheme) {
		t.Fatalf("expected ErrUnsupportedScheme, got %v", err)
	}
	var schemeErr *UnsupportedSchemeError
	if !errors.As(err, &schemeErr) {
		t.Fatal("expected an UnsupportedSchemeError")
	}
	if schemeErr.Key != "digest_auth" || schemeErr.Scheme != "digest" {
		t.Errorf("error should name the offending scheme, got %+v", schemeErr)
	}
}

func TestNormalizeOpenIDConnectUnsupported(t *testing.T) {
	entries := []models.SchemeEntry{
		{Key: "oidc", Def: &models.SecuritySchemeDef{Type: "openIdConnect"}},
	}

	_, _, err := normalizeSecuritySchemes(entries, models.Options{Strict: true}, quietLogger())
	if !errors.Is(err, ErrUnsupportedScheme) {
		t.Fatalf("expected ErrUnsupportedScheme, got %v", err)
	}
}

func TestNormalizePreservesOrder(t *testing.T) {
	entries := []models.SchemeEntry{
		{Key: "b_key", Def: &models.SecuritySchemeDef{Type: "apiKey"}},
		{Key: "oauth", Def: &models.SecuritySchemeDef{Type: "oauth2"}},
		{Key: "a_key", Def: &models.SecuritySchemeDef{Type: "apiKey"}},
	}

	_, order, err := normalizeSecuritySchemes(entries, models.Options{}, quietLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(order) != 2 || order[0] != "b_key" || order[1] != "a_key" {
		t.Errorf("expected source order [b_key a_key], got %v", order)
	}
}
