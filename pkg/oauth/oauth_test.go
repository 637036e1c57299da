package oauth

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestTokenStorage(t *testing.T) {
	dir := t.TempDir()

	storage := NewTokenStorage(dir)
	token := &Token{AccessToken: "test", TokenType: "Bearer"}

	if err := storage.Save("youtube", token); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := storage.Load("youtube")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.AccessToken != "test" {
		t.Errorf("wrong token: %s", loaded.AccessToken)
	}
}

func TestTokenStorage_NotFound(t *testing.T) {
	_, err := NewTokenStorage(t.TempDir()).Load("nonexistent")
	if err != ErrTokenNotFound {
		t.Errorf("expected ErrTokenNotFound, got %v", err)
	}
}

func TestTokenStorage_RejectsEmptyToken(t *testing.T) {
	storage := NewTokenStorage(t.TempDir())

	if err := storage.Save("youtube", &Token{TokenType: "Bearer"}); err != ErrEmptyToken {
		t.Errorf("expected ErrEmptyToken on save, got %v", err)
	}
}

func TestTokenStorage_LoadEmptyAccessToken(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "youtube_token.json"), []byte(`{"token_type":"Bearer"}`), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := NewTokenStorage(dir).Load("youtube"); err != ErrEmptyToken {
		t.Errorf("expected ErrEmptyToken, got %v", err)
	}
}

func TestTokenStorage_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "youtube_token.json"), []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	_, err := NewTokenStorage(dir).Load("youtube")
	if err == nil || !strings.Contains(err.Error(), "unmarshal") {
		t.Errorf("expected unmarshal error, got %v", err)
	}
}

// TestTokenStorage_FilePermissions verifies that token files are readable by
// the owner only.
func TestTokenStorage_FilePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX permissions only")
	}

	dir := filepath.Join(t.TempDir(), "ytsync")
	storage := NewTokenStorage(dir)

	if err := storage.Save("youtube", &Token{AccessToken: "secret-token"}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	info, err := os.Stat(storage.Path("youtube"))
	if err != nil {
		t.Fatalf("failed to stat token file: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("token file permissions are %o, expected 600", perm)
	}
}

func TestTokenStorage_PathTraversalProtection(t *testing.T) {
	dir := t.TempDir()
	storage := NewTokenStorage(dir)

	for _, provider := range []string{"../../../etc/passwd", "/etc/passwd", "youtube/../../secret"} {
		path := storage.Path(provider)
		if filepath.Dir(path) != dir {
			t.Errorf("provider %q escaped the storage dir: %s", provider, path)
		}
	}
}
