package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// AppDirName is the directory name used under the platform config dir.
const AppDirName = "hangserve"

// PathResolver finds the word list directory and config file no matter where
// the binary is started from.
type PathResolver struct {
	executableDir string
	homeDir       string
	configDir     string
	workDir       string
}

// NewPathResolver creates a new path resolver that determines the executable location
func NewPathResolver() (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}
	workDir, err := os.Getwd()
	if err != nil {
		log.Warnf("Could not determine working directory: %v", err)
		workDir = "."
	}

	pr := &PathResolver{
		executableDir: filepath.Dir(execPath),
		homeDir:       homeDir,
		configDir:     getConfigDir(homeDir),
		workDir:       workDir,
	}
	log.Debugf("PathResolver initialized: execDir=%s, configDir=%s, workDir=%s",
		pr.executableDir, pr.configDir, pr.workDir)
	return pr, nil
}

// getConfigDir returns the appropriate config directory for the platform
func getConfigDir(homeDir string) string {
	switch runtime.GOOS {
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, AppDirName)
		}
		return filepath.Join(homeDir, ".config", AppDirName)
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, AppDirName)
		}
		return filepath.Join(homeDir, "AppData", "Roaming", AppDirName)
	default:
		return filepath.Join(homeDir, ".config", AppDirName)
	}
}

// ListsDirCandidates returns every place a word list directory is looked
// for, in order of preference:
// 1. the given path if absolute
// 2. relative to the working directory
// 3. relative to the executable
// 4. lists/ next to the executable, its parent, and in the config dir
func (pr *PathResolver) ListsDirCandidates(path string) []string {
	if filepath.IsAbs(path) {
		return []string{path}
	}
	return []string{
		filepath.Join(pr.workDir, path),
		filepath.Join(pr.executableDir, path),
		filepath.Join(pr.executableDir, "lists"),
		filepath.Join(filepath.Dir(pr.executableDir), "lists"),
		filepath.Join(pr.configDir, "lists"),
	}
}

// GetListsDir returns the first candidate holding at least one .txt file.
// When none does, the first candidate is returned so errors name it.
func (pr *PathResolver) GetListsDir(path string) string {
	candidates := pr.ListsDirCandidates(path)
	for _, dir := range candidates {
		if IsListsDir(dir) {
			log.Debugf("Found word list directory: %s", dir)
			return dir
		}
		log.Debugf("Word list directory candidate not valid: %s", dir)
	}
	return candidates[0]
}

// IsListsDir checks if a directory contains at least one .txt file
func IsListsDir(path string) bool {
	if !IsDir(path) {
		return false
	}
	matches, err := filepath.Glob(filepath.Join(path, "*.txt"))
	return err == nil && len(matches) > 0
}

// GetConfigDir returns the config directory
func (pr *PathResolver) GetConfigDir() string {
	return pr.configDir
}

// GetExecutableDir returns the directory containing the executable
func (pr *PathResolver) GetExecutableDir() string {
	return pr.executableDir
}
