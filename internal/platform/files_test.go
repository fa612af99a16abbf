package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// fakeHome points the user home directory at a fresh temp dir
func fakeHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	if runtime.GOOS == OSWindows {
		t.Setenv("USERPROFILE", home)
	}
	return home
}

func mkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, DefaultDirPermissions); err != nil {
		t.Fatalf("Failed to create %s: %v", path, err)
	}
}

func TestCreateDirectoryIfNotExists(t *testing.T) {
	// Create temporary directory for testing
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	// Create directory
	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	// Directory should now exist
	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestGetUserDocumentsDir(t *testing.T) {
	home := fakeHome(t)

	// No documents folder: home is used
	dir, err := GetUserDocumentsDir()
	if err != nil {
		t.Fatalf("Failed to get documents directory: %v", err)
	}
	if dir != home {
		t.Errorf("Expected home %s, got %s", home, dir)
	}

	// Legacy Windows name
	mkdir(t, filepath.Join(home, "My Documents"))
	dir, _ = GetUserDocumentsDir()
	if filepath.Base(dir) != "My Documents" {
		t.Errorf("Expected 'My Documents', got %s", dir)
	}

	// Documents takes precedence
	mkdir(t, filepath.Join(home, "Documents"))
	dir, _ = GetUserDocumentsDir()
	if filepath.Base(dir) != "Documents" {
		t.Errorf("Expected 'Documents', got %s", dir)
	}
}

func TestGetUserMusicDir(t *testing.T) {
	home := fakeHome(t)
	mkdir(t, filepath.Join(home, "Documents"))

	// Falls back to documents
	dir, err := GetUserMusicDir()
	if err != nil {
		t.Fatalf("Failed to get music directory: %v", err)
	}
	if dir != filepath.Join(home, "Documents") {
		t.Errorf("Expected documents fallback, got %s", dir)
	}

	mkdir(t, filepath.Join(home, "My Documents", "My Music"))
	dir, _ = GetUserMusicDir()
	if filepath.Base(dir) != "My Music" {
		t.Errorf("Expected 'My Music', got %s", dir)
	}

	mkdir(t, filepath.Join(home, "Music"))
	dir, _ = GetUserMusicDir()
	if dir != filepath.Join(home, "Music") {
		t.Errorf("Expected Music folder, got %s", dir)
	}
}

func TestGetGameMusicDir(t *testing.T) {
	home := fakeHome(t)
	docs := filepath.Join(home, "Documents")
	mkdir(t, docs)

	// No game folder: documents
	dir, err := GetGameMusicDir(true)
	if err != nil {
		t.Fatalf("Failed to get game music directory: %v", err)
	}
	if dir != docs {
		t.Errorf("Expected documents %s, got %s", docs, dir)
	}

	gameDir := filepath.Join(docs, GameDirName)
	mkdir(t, gameDir)

	// Game folder without Music and no create
	dir, _ = GetGameMusicDir(false)
	if dir != gameDir {
		t.Errorf("Expected game dir %s, got %s", gameDir, dir)
	}
	if _, err := os.Stat(filepath.Join(gameDir, GameMusicDirName)); !os.IsNotExist(err) {
		t.Error("Music folder should not be created when create is false")
	}

	// create makes the Music folder
	dir, _ = GetGameMusicDir(true)
	expected := filepath.Join(gameDir, GameMusicDirName)
	if dir != expected {
		t.Errorf("Expected %s, got %s", expected, dir)
	}
	if _, err := os.Stat(expected); err != nil {
		t.Errorf("Music folder was not created: %v", err)
	}
}

func TestGetPlayerMusicDir(t *testing.T) {
	home := fakeHome(t)
	docs := filepath.Join(home, "Documents")
	music := filepath.Join(home, "Music")
	mkdir(t, docs)
	mkdir(t, music)

	// No game: the user's music folder
	dir, err := GetPlayerMusicDir()
	if err != nil {
		t.Fatalf("Failed to get player music directory: %v", err)
	}
	if dir != music {
		t.Errorf("Expected %s, got %s", music, dir)
	}

	gameMusic := filepath.Join(docs, GameDirName, GameMusicDirName)
	mkdir(t, gameMusic)

	dir, _ = GetPlayerMusicDir()
	if dir != gameMusic {
		t.Errorf("Expected %s, got %s", gameMusic, dir)
	}
}

func TestOpenURL_RejectsNonURL(t *testing.T) {
	if err := OpenURL("just some text"); err == nil {
		t.Error("Expected error for a string without a scheme")
	}
}

func TestResolveShortcut(t *testing.T) {
	tempDir := t.TempDir()
	target := filepath.Join(tempDir, "song.abc")
	if err := os.WriteFile(target, []byte("X:1\n"), 0o600); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	// Plain files are returned unchanged
	if got := ResolveShortcut(target); got != target {
		t.Errorf("Expected %s, got %s", target, got)
	}

	// Missing files are returned unchanged
	missing := filepath.Join(tempDir, "missing.abc")
	if got := ResolveShortcut(missing); got != missing {
		t.Errorf("Expected %s, got %s", missing, got)
	}

	// Shell links are not followed
	lnk := filepath.Join(tempDir, "song.LNK")
	if got := ResolveShortcut(lnk); got != lnk {
		t.Errorf("Expected %s, got %s", lnk, got)
	}

	if runtime.GOOS == OSWindows {
		t.Skip("symlinks need elevated rights on Windows")
	}

	link := filepath.Join(tempDir, "link.abc")
	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("Failed to create symlink: %v", err)
	}
	resolved, _ := filepath.EvalSymlinks(target)
	if got := ResolveShortcut(link); got != resolved {
		t.Errorf("Expected %s, got %s", resolved, got)
	}
}
