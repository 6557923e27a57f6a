package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/saudilinux/tiktok-sayer-uninstall/internal/app"
	"github.com/saudilinux/tiktok-sayer-uninstall/internal/domain"
	"github.com/saudilinux/tiktok-sayer-uninstall/internal/infra/fsys"
	"github.com/saudilinux/tiktok-sayer-uninstall/internal/infra/logging"
	"github.com/saudilinux/tiktok-sayer-uninstall/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBaseDir = "/home/user/.local"

// newTestContainer creates an app.Container wired with mocks for CLI tests.
func newTestContainer(priv *testutil.MockPrivilege, fs *testutil.MockFilesystem, ack *testutil.MockAcknowledger) *app.Container {
	return app.NewWithDeps(
		app.Config{BaseDir: testBaseDir, BaseDirSource: "default"},
		priv,
		fs,
		ack,
		&testutil.MockConfigLoader{},
		&testutil.MockConfigManager{},
		logging.New(io.Discard, "error"),
	)
}

// seededFilesystem returns a mock filesystem with both launcher artifacts present.
func seededFilesystem() *testutil.MockFilesystem {
	return testutil.NewMockFilesystem(
		domain.LauncherScriptPath(testBaseDir),
		domain.LauncherExePath(testBaseDir),
	)
}

func TestRootCommand_RemovesBothTargets(t *testing.T) {
	// Setup
	fs := seededFilesystem()
	ack := &testutil.MockAcknowledger{}
	container := newTestContainer(&testutil.MockPrivilege{ElevatedResult: true}, fs, ack)

	root := NewRootCommand(container, "test-version")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"--yes"})

	// Execute
	err := root.Execute()

	// Assert
	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "Uninstalling TikTok-Sayer...")
	assert.Contains(t, output, "tiktok-sayer-gui-script.pyw removed successfully.")
	assert.Contains(t, output, "tiktok-sayer-gui.exe removed successfully.")
	assert.Contains(t, output, "TikTok-Sayer has been removed from this computer.")

	// Script is processed before the executable
	require.Len(t, fs.Removed, 2)
	assert.Equal(t, domain.LauncherScriptPath(testBaseDir), fs.Removed[0])
	assert.Equal(t, domain.LauncherExePath(testBaseDir), fs.Removed[1])
	assert.Empty(t, ack.Prompts, "--yes should skip the exit prompt")
}

func TestRootCommand_SecondRunReportsNotFound(t *testing.T) {
	// Setup
	fs := seededFilesystem()
	container := newTestContainer(&testutil.MockPrivilege{ElevatedResult: true}, fs, &testutil.MockAcknowledger{})

	first := NewRootCommand(container, "test-version")
	first.SetOut(io.Discard)
	first.SetArgs([]string{"--yes"})
	require.NoError(t, first.Execute())

	second := NewRootCommand(container, "test-version")
	var buf bytes.Buffer
	second.SetOut(&buf)
	second.SetArgs([]string{"--yes"})

	// Execute
	err := second.Execute()

	// Assert - absent files still count as success
	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "tiktok-sayer-gui-script.pyw not found.")
	assert.Contains(t, output, "tiktok-sayer-gui.exe not found.")
	assert.Contains(t, output, "TikTok-Sayer has been removed from this computer.")
}

func TestRootCommand_NotElevated_BlocksRemoval(t *testing.T) {
	// Setup
	fs := seededFilesystem()
	ack := &testutil.MockAcknowledger{}
	container := newTestContainer(&testutil.MockPrivilege{ElevatedResult: false}, fs, ack)

	root := NewRootCommand(container, "test-version")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{})

	// Execute
	err := root.Execute()

	// Assert
	require.ErrorIs(t, err, domain.ErrElevationRequired)
	output := buf.String()
	assert.Contains(t, output, "Administrator privileges are required to uninstall TikTok-Sayer.")
	assert.Contains(t, output, `Right-click the uninstaller and select "Run as administrator", then try again.`)

	// Nothing may be touched without elevation
	assert.Empty(t, fs.Removed)
	assert.Len(t, fs.Files, 2)

	// The prompt still blocks before exit
	assert.Equal(t, []string{"Press Enter to exit..."}, ack.Prompts)
}

func TestRootCommand_NotElevated_YesSkipsPrompt(t *testing.T) {
	// Setup
	ack := &testutil.MockAcknowledger{}
	container := newTestContainer(&testutil.MockPrivilege{ElevatedResult: false}, seededFilesystem(), ack)

	root := NewRootCommand(container, "test-version")
	root.SetOut(io.Discard)
	root.SetArgs([]string{"--yes"})

	// Execute
	err := root.Execute()

	// Assert
	require.ErrorIs(t, err, domain.ErrElevationRequired)
	assert.Empty(t, ack.Prompts)
}

func TestRootCommand_PromptsBeforeExit(t *testing.T) {
	// Setup
	ack := &testutil.MockAcknowledger{}
	container := newTestContainer(&testutil.MockPrivilege{ElevatedResult: true}, seededFilesystem(), ack)

	root := NewRootCommand(container, "test-version")
	root.SetOut(io.Discard)
	root.SetArgs([]string{})

	// Execute
	err := root.Execute()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"Press Enter to exit..."}, ack.Prompts)
}

func TestRootCommand_AssumeYesConfigSkipsPrompt(t *testing.T) {
	// Setup
	ack := &testutil.MockAcknowledger{}
	cfg := domain.NewDefaultConfig()
	cfg.AssumeYes = true
	container := app.NewWithDeps(
		app.Config{BaseDir: testBaseDir, BaseDirSource: "default"},
		&testutil.MockPrivilege{ElevatedResult: true},
		seededFilesystem(),
		ack,
		&testutil.MockConfigLoader{Cfg: cfg},
		&testutil.MockConfigManager{},
		logging.New(io.Discard, "error"),
	)

	root := NewRootCommand(container, "test-version")
	root.SetOut(io.Discard)
	root.SetArgs([]string{})

	// Execute
	err := root.Execute()

	// Assert
	require.NoError(t, err)
	assert.Empty(t, ack.Prompts, "assume_yes should skip the exit prompt")
}

func TestRootCommand_DryRunLeavesFilesInPlace(t *testing.T) {
	// Setup
	fs := seededFilesystem()
	container := newTestContainer(&testutil.MockPrivilege{ElevatedResult: true}, fs, &testutil.MockAcknowledger{})

	root := NewRootCommand(container, "test-version")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"--dry-run", "--yes"})

	// Execute
	err := root.Execute()

	// Assert
	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "tiktok-sayer-gui-script.pyw would be removed.")
	assert.Contains(t, output, "tiktok-sayer-gui.exe would be removed.")
	assert.Contains(t, output, "Dry run: no changes made.")
	assert.Empty(t, fs.Removed)
	assert.Len(t, fs.Files, 2)
}

func TestRootCommand_BaseDirFlagOverridesDefault(t *testing.T) {
	// Setup
	fs := testutil.NewMockFilesystem(
		domain.LauncherScriptPath("/opt/apps"),
		domain.LauncherExePath("/opt/apps"),
	)
	container := newTestContainer(&testutil.MockPrivilege{ElevatedResult: true}, fs, &testutil.MockAcknowledger{})

	root := NewRootCommand(container, "test-version")
	root.SetOut(io.Discard)
	root.SetArgs([]string{"--base-dir", "/opt/apps", "--yes"})

	// Execute
	err := root.Execute()

	// Assert
	require.NoError(t, err)
	require.Len(t, fs.Removed, 2)
	assert.Equal(t, domain.LauncherScriptPath("/opt/apps"), fs.Removed[0])
	assert.Equal(t, domain.LauncherExePath("/opt/apps"), fs.Removed[1])
}

func TestRootCommand_PrintsConfigWarnings(t *testing.T) {
	// Setup
	cfg := domain.NewDefaultConfig()
	cfg.Warnings = []string{"unknown config key: base_dri"}
	container := app.NewWithDeps(
		app.Config{BaseDir: testBaseDir, BaseDirSource: "default"},
		&testutil.MockPrivilege{ElevatedResult: true},
		seededFilesystem(),
		&testutil.MockAcknowledger{},
		&testutil.MockConfigLoader{Cfg: cfg},
		&testutil.MockConfigManager{},
		logging.New(io.Discard, "error"),
	)

	root := NewRootCommand(container, "test-version")
	var errBuf bytes.Buffer
	root.SetOut(io.Discard)
	root.SetErr(&errBuf)
	root.SetArgs([]string{"--yes"})

	// Execute
	err := root.Execute()

	// Assert
	require.NoError(t, err)
	assert.Contains(t, errBuf.String(), "Warning: unknown config key: base_dri")
}

// TestRootCommand_EndToEnd exercises the full flow against a real filesystem:
// install both launcher artifacts under a temp base directory, uninstall,
// verify only those two files are gone, then run again and expect not found.
func TestRootCommand_EndToEnd(t *testing.T) {
	// Setup
	baseDir := t.TempDir()
	scriptsDir := domain.ScriptsDir(baseDir)
	require.NoError(t, os.MkdirAll(scriptsDir, 0o755))

	scriptPath := domain.LauncherScriptPath(baseDir)
	exePath := domain.LauncherExePath(baseDir)
	siblingPath := filepath.Join(scriptsDir, "pip.exe")
	for _, p := range []string{scriptPath, exePath, siblingPath} {
		require.NoError(t, os.WriteFile(p, []byte("artifact"), 0o644))
	}

	container := app.NewWithDeps(
		app.Config{BaseDir: baseDir, BaseDirSource: "default"},
		&testutil.MockPrivilege{ElevatedResult: true},
		fsys.New(),
		&testutil.MockAcknowledger{},
		&testutil.MockConfigLoader{},
		&testutil.MockConfigManager{},
		logging.New(io.Discard, "error"),
	)

	root := NewRootCommand(container, "test-version")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"--yes"})

	// Execute
	err := root.Execute()

	// Assert
	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "tiktok-sayer-gui-script.pyw removed successfully.")
	assert.Contains(t, output, "tiktok-sayer-gui.exe removed successfully.")

	assert.NoFileExists(t, scriptPath)
	assert.NoFileExists(t, exePath)
	assert.FileExists(t, siblingPath, "unrelated files must be left alone")

	// Execute again - absent targets are an idempotent success
	rerun := NewRootCommand(container, "test-version")
	var rerunBuf bytes.Buffer
	rerun.SetOut(&rerunBuf)
	rerun.SetArgs([]string{"--yes"})

	require.NoError(t, rerun.Execute())
	assert.Contains(t, rerunBuf.String(), "tiktok-sayer-gui-script.pyw not found.")
	assert.Contains(t, rerunBuf.String(), "tiktok-sayer-gui.exe not found.")
	assert.FileExists(t, siblingPath)
}
