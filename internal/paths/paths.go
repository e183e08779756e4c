// Package paths provides sudo-aware path resolution for landsort.
//
// When running with sudo, these functions resolve paths to the original
// user's directories (via SUDO_USER) instead of root's directories.
package paths

import (
	"os"
	"os/user"
	"path/filepath"
)

// UserHomeDir returns the home directory of the actual user.
// If running with sudo, returns the SUDO_USER's home directory, not root's.
func UserHomeDir() (string, error) {
	if sudoUser := os.Getenv("SUDO_USER"); sudoUser != "" && sudoUser != "root" {
		u, err := user.Lookup(sudoUser)
		if err == nil {
			return u.HomeDir, nil
		}
		// Fall through if lookup fails
	}

	return os.UserHomeDir()
}

// UserConfigDir returns the config directory of the actual user.
// On Linux this is typically ~/.config
func UserConfigDir() (string, error) {
	homeDir, err := UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config"), nil
}

// LandsortDir returns the landsort config directory,
// ~/.config/landsort for the actual user.
func LandsortDir() (string, error) {
	configDir, err := UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "landsort"), nil
}

// ConfigPath returns the path to the landsort config file,
// ~/.config/landsort/config.toml for the actual user.
func ConfigPath() (string, error) {
	dir, err := LandsortDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// HistoryPath returns the path to the transfer history database,
// ~/.config/landsort/history.db for the actual user.
func HistoryPath() (string, error) {
	dir, err := LandsortDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.db"), nil
}

// DefaultLogPath returns the default log file path,
// ~/.config/landsort/logs/landsort.log for the actual user.
func DefaultLogPath() (string, error) {
	dir, err := LandsortDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "logs", "landsort.log"), nil
}
