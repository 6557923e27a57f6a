// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/saudilinux/tiktok-sayer-uninstall/internal/domain"
	"github.com/saudilinux/tiktok-sayer-uninstall/internal/infra/config"
	"github.com/saudilinux/tiktok-sayer-uninstall/internal/infra/console"
	"github.com/saudilinux/tiktok-sayer-uninstall/internal/infra/fsys"
	"github.com/saudilinux/tiktok-sayer-uninstall/internal/infra/logging"
	"github.com/saudilinux/tiktok-sayer-uninstall/internal/infra/privilege"
	"github.com/saudilinux/tiktok-sayer-uninstall/internal/usecase"
)

// Config holds the resolved application settings.
type Config struct {
	BaseDir       string // Per-user local application data root
	BaseDirSource string // Where BaseDir came from: config, environment or default
}

// newConfig resolves the base directory from the loaded configuration.
// Resolution order: config file, LOCALAPPDATA, <home>/.local.
func newConfig(appCfg *domain.Config) (Config, error) {
	if appCfg != nil && appCfg.BaseDir != "" {
		return Config{BaseDir: appCfg.BaseDir, BaseDirSource: "config"}, nil
	}
	if dir := os.Getenv("LOCALAPPDATA"); dir != "" {
		return Config{BaseDir: dir, BaseDirSource: "environment"}, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}
	return Config{BaseDir: filepath.Join(home, ".local"), BaseDirSource: "default"}, nil
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Privilege     domain.Privilege
	Filesystem    domain.Filesystem
	Acknowledger  domain.Acknowledger
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager

	// Pointer fields
	Logger *slog.Logger

	// Configuration
	Config Config
}

// New creates a new Container with the real platform adapters.
func New() (*Container, error) {
	configLoader := config.NewLoader()
	appConfig, _ := configLoader.Load() // ignore error here, warnings surface on load in CLI
	if appConfig == nil {
		appConfig = domain.NewDefaultConfig()
	}

	cfg, err := newConfig(appConfig)
	if err != nil {
		return nil, err
	}

	logger := logging.New(os.Stderr, appConfig.LogLevel)

	return &Container{
		Privilege:     privilege.NewChecker(),
		Filesystem:    fsys.New(),
		Acknowledger:  console.New(os.Stdin, os.Stdout),
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(),
		Logger:        logger,
		Config:        cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, priv domain.Privilege, fs domain.Filesystem, ack domain.Acknowledger, loader domain.ConfigLoader, manager domain.ConfigManager, logger *slog.Logger) *Container {
	return &Container{
		Privilege:     priv,
		Filesystem:    fs,
		Acknowledger:  ack,
		ConfigLoader:  loader,
		ConfigManager: manager,
		Logger:        logger,
		Config:        cfg,
	}
}

// UseCase factory methods

// UninstallUseCase returns a new Uninstall use case.
func (c *Container) UninstallUseCase() *usecase.Uninstall {
	return usecase.NewUninstall(c.Privilege, c.Filesystem, c.Config.BaseDir)
}

// ResolveTargetsUseCase returns a new ResolveTargets use case.
func (c *Container) ResolveTargetsUseCase() *usecase.ResolveTargets {
	return usecase.NewResolveTargets(c.Config.BaseDir, c.Config.BaseDirSource)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
