package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	XDGOpenCommand  = "xdg-open"
	RundllCommand   = "rundll32"
	URLProtocolArgs = "url.dll,FileProtocolHandler"
)

// Folder names, tried in order
var (
	DocumentsDirNames = []string{"Documents", "My Documents"}
	MusicDirNames     = []string{"Music", filepath.Join("My Documents", "My Music")}
)

// Game folders below the documents directory
const (
	GameDirName      = "The Lord of the Rings Online"
	GameMusicDirName = "Music"
)

// ShortcutExt is the extension of Windows shell links
const ShortcutExt = ".lnk"

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// GetUserDocumentsDir returns the user's documents folder, or the home
// directory when none of the known folder names exist
func GetUserDocumentsDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return firstExistingDir(homeDir, DocumentsDirNames, homeDir), nil
}

// GetUserMusicDir returns the user's music folder, falling back to the
// documents folder
func GetUserMusicDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	if dir := firstExistingDir(homeDir, MusicDirNames, ""); dir != "" {
		return dir, nil
	}
	return GetUserDocumentsDir()
}

// GetGameMusicDir returns the game's Music folder inside the documents folder.
// When the game folder exists but has no Music folder, create decides whether
// to make one; otherwise the game folder is returned. Without a game folder
// the documents folder is returned.
func GetGameMusicDir(create bool) (string, error) {
	docs, err := GetUserDocumentsDir()
	if err != nil {
		return "", err
	}

	gameDir := filepath.Join(docs, GameDirName)
	if !isDir(gameDir) {
		return docs, nil
	}

	musicDir := filepath.Join(gameDir, GameMusicDirName)
	if isDir(musicDir) {
		return musicDir, nil
	}
	if create {
		if err := os.Mkdir(musicDir, DefaultDirPermissions); err == nil {
			return musicDir, nil
		}
	}
	return gameDir, nil
}

// GetPlayerMusicDir returns the folder tracks are looked up in by default:
// the game's Music folder when the game is installed, the user's music
// folder otherwise
func GetPlayerMusicDir() (string, error) {
	docs, err := GetUserDocumentsDir()
	if err != nil {
		return "", err
	}
	if isDir(filepath.Join(docs, GameDirName)) {
		return GetGameMusicDir(false)
	}
	return GetUserMusicDir()
}

// OpenURL opens url with the system's default handler
func OpenURL(url string) error {
	if !strings.Contains(url, "://") {
		return fmt.Errorf("not a URL: %q", url)
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case OSDarwin:
		cmd = exec.Command(OpenCommand, url)
	case OSWindows:
		cmd = exec.Command(RundllCommand, URLProtocolArgs, url)
	case OSLinux:
		cmd = exec.Command(XDGOpenCommand, url)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}

	// The handler may keep running; only the launch is waited for
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// ResolveShortcut returns the target of a symbolic link. Shell links (.lnk)
// and plain files are returned unchanged, as is anything that cannot be
// resolved.
func ResolveShortcut(path string) string {
	if strings.EqualFold(filepath.Ext(path), ShortcutExt) {
		return path
	}
	info, err := os.Lstat(path)
	if err != nil || info.Mode()&os.ModeSymlink == 0 {
		return path
	}
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return path
	}
	return target
}

func firstExistingDir(base string, names []string, fallback string) string {
	for _, name := range names {
		dir := filepath.Join(base, name)
		if isDir(dir) {
			return dir
		}
	}
	return fallback
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
