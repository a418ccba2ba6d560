package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigs(t *testing.T, public, private string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "public.yaml"), []byte(public), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "private.yaml"), []byte(private), 0o600); err != nil {
		t.Fatal(err)
	}
	return dir
}

const validPublic = `pg:
  host: localhost
  port: 5432
  user: diskusi
  password: secret
  dbname: diskusi
jwt_ttl_seconds: 3600
`

func TestMustLoad(t *testing.T) {
	dir := writeConfigs(t, validPublic, "jwt_key: 'k'\n")

	cfg := MustLoad(dir)

	if cfg.Public.Pg.Host != "localhost" {
		t.Errorf("unexpected pg host: %s", cfg.Public.Pg.Host)
	}
	if cfg.JwtKey() != "k" {
		t.Errorf("unexpected jwt key: %s", cfg.JwtKey())
	}
	if cfg.JwtTTL().Seconds() != 3600 {
		t.Errorf("unexpected jwt ttl: %s", cfg.JwtTTL())
	}
}

func TestMustLoad_RequiredFields(t *testing.T) {
	// Missing pg password must make loading panic rather than run half-configured.
	public := `pg:
  host: localhost
  port: 5432
  user: diskusi
  dbname: diskusi
jwt_ttl_seconds: 3600
`
	dir := writeConfigs(t, public, "jwt_key: 'k'\n")

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic due to missing required field, got none")
		}
	}()

	_ = MustLoad(dir)
}

func TestMustLoad_MissingFile(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic due to missing config file, got none")
		}
	}()

	_ = MustLoad(t.TempDir() + "/nope")
}
