package config

import (
	"testing"

	"github.com/lazervel/cryptor/errors"
	"github.com/lazervel/cryptor/testutil"
)

// fakeFS avoids picking up a real .env from the working directory.
type fakeFS struct {
	files map[string]string
}

func (f *fakeFS) Exists(path string) bool {
	_, ok := f.files[path]
	return ok
}

func (f *fakeFS) LoadEnv(path string) error {
	return nil
}

func isolate(t *testing.T) {
	t.Helper()
	testutil.UnsetEnv(t, "CRYPTOR_KEY", "APP_KEY", "CRYPTOR_CIPHER")
}

func TestResolveSecretExplicitValue(t *testing.T) {
	isolate(t)

	secret, err := ResolveSecret(WithValue("top-secret"), WithFileSystem(&fakeFS{}))
	if err != nil {
		t.Fatalf("ResolveSecret failed: %v", err)
	}
	if secret != "top-secret" {
		t.Errorf("expected explicit value, got %q", secret)
	}
}

func TestResolveSecretFromEnv(t *testing.T) {
	isolate(t)
	t.Setenv("CRYPTOR_KEY", "env-secret")

	secret, err := ResolveSecret(WithFileSystem(&fakeFS{}))
	if err != nil {
		t.Fatalf("ResolveSecret failed: %v", err)
	}
	if secret != "env-secret" {
		t.Errorf("expected env value, got %q", secret)
	}
}

func TestResolveSecretAppKeyFallback(t *testing.T) {
	isolate(t)
	t.Setenv("APP_KEY", "laravel-style-secret")

	secret, err := ResolveSecret(WithFileSystem(&fakeFS{}))
	if err != nil {
		t.Fatalf("ResolveSecret failed: %v", err)
	}
	if secret != "laravel-style-secret" {
		t.Errorf("expected APP_KEY fallback, got %q", secret)
	}
}

func TestResolveSecretCustomEnvVar(t *testing.T) {
	isolate(t)
	t.Setenv("MY_SERVICE_KEY", "custom")
	t.Setenv("CRYPTOR_KEY", "should-be-ignored")

	secret, err := ResolveSecret(WithEnvVar("MY_SERVICE_KEY"), WithFileSystem(&fakeFS{}))
	if err != nil {
		t.Fatalf("ResolveSecret failed: %v", err)
	}
	if secret != "custom" {
		t.Errorf("expected custom env var to win, got %q", secret)
	}
}

func TestResolveSecretEnvFile(t *testing.T) {
	isolate(t)
	path := testutil.WriteTempFile(t, ".env", "CRYPTOR_KEY=dotenv-secret\n")

	secret, err := ResolveSecret(WithEnvFile(path))
	if err != nil {
		t.Fatalf("ResolveSecret failed: %v", err)
	}
	if secret != "dotenv-secret" {
		t.Errorf("expected .env value, got %q", secret)
	}
}

func TestResolveSecretConfigFile(t *testing.T) {
	isolate(t)
	path := testutil.WriteTempFile(t, "config.yml", "key: yaml-secret\ncipher: aes-128-gcm\n")

	secret, err := ResolveSecret(WithConfigFile(path))
	if err != nil {
		t.Fatalf("ResolveSecret failed: %v", err)
	}
	if secret != "yaml-secret" {
		t.Errorf("expected yaml value, got %q", secret)
	}
}

func TestResolveSecretMissing(t *testing.T) {
	isolate(t)

	_, err := ResolveSecret(WithFileSystem(&fakeFS{}))
	if err == nil {
		t.Fatal("expected MissingKey error")
	}
	if !errors.IsCode(err, errors.ErrCodeMissingKey) {
		t.Errorf("expected MISSING_KEY, got %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	t.Setenv("CRYPTOR_KEY", "secret")

	cfg, err := Load(WithFileSystem(&fakeFS{}))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Cipher != DefaultCipher {
		t.Errorf("expected default cipher, got %s", cfg.Cipher)
	}
}

func TestLoadCipherFromEnv(t *testing.T) {
	isolate(t)
	t.Setenv("CRYPTOR_KEY", "secret")
	t.Setenv("CRYPTOR_CIPHER", "aes-256-cbc")

	cfg, err := Load(WithFileSystem(&fakeFS{}))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Cipher != "aes-256-cbc" {
		t.Errorf("expected cipher from env, got %s", cfg.Cipher)
	}
}

func TestLoadCipherFromConfigFile(t *testing.T) {
	isolate(t)
	path := testutil.WriteTempFile(t, "config.yml", "key: yaml-secret\ncipher: chacha20-poly1305\n")

	cfg, err := Load(WithConfigFile(path))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Cipher != "chacha20-poly1305" {
		t.Errorf("expected cipher from config file, got %s", cfg.Cipher)
	}
}

func TestLoadRejectsUnknownCipher(t *testing.T) {
	isolate(t)
	t.Setenv("CRYPTOR_KEY", "secret")
	t.Setenv("CRYPTOR_CIPHER", "rot13")

	_, err := Load(WithFileSystem(&fakeFS{}))
	if err == nil {
		t.Fatal("expected validation error for unknown cipher")
	}
	if !errors.IsCode(err, errors.ErrCodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{Key: "k"}
	cfg.ApplyDefaults()
	if cfg.Cipher != "aes-256-gcm" {
		t.Errorf("expected aes-256-gcm, got %s", cfg.Cipher)
	}

	cfg = Config{Key: "k", Cipher: "aes-128-gcm"}
	cfg.ApplyDefaults()
	if cfg.Cipher != "aes-128-gcm" {
		t.Error("ApplyDefaults should not override an explicit cipher")
	}
}
