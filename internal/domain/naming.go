package domain

import "path/filepath"

// Launcher artifact names dropped by the per-user TikTok-Sayer install.
// The pip install places both into the Python 3.11 Scripts directory
// under the local application data root.
const (
	LauncherScriptName = "tiktok-sayer-gui-script.pyw"
	LauncherExeName    = "tiktok-sayer-gui.exe"
)

// ConfigFileName is the name of the uninstaller config file.
const ConfigFileName = "config.toml"

// ScriptsDir returns the Python Scripts directory under the base directory.
func ScriptsDir(baseDir string) string {
	return filepath.Join(baseDir, "Programs", "Python", "Python311", "Scripts")
}

// LauncherScriptPath returns the path to the GUI launcher script.
func LauncherScriptPath(baseDir string) string {
	return filepath.Join(ScriptsDir(baseDir), LauncherScriptName)
}

// LauncherExePath returns the path to the GUI launcher executable.
func LauncherExePath(baseDir string) string {
	return filepath.Join(ScriptsDir(baseDir), LauncherExeName)
}

// GlobalConfigDir returns the uninstaller config directory under the
// user's config home (e.g. ~/.config/tiktok-sayer).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, "tiktok-sayer")
}
