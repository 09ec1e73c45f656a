package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// UnsetEnv removes environment variables for the duration of the test and
// restores them on cleanup. Useful for isolating secret-resolution tests
// from the host environment.
func UnsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		if old, ok := os.LookupEnv(key); ok {
			if err := os.Unsetenv(key); err != nil {
				t.Fatalf("unset %s: %v", key, err)
			}
			t.Cleanup(func() { os.Setenv(key, old) })
		}
	}
}

// WriteTempFile writes content to a file under the test's temp directory
// and returns its path.
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}
