package cmd

import (
	"github.com/grovetools/storefront/catalog"
	"github.com/grovetools/storefront/cli"
	"github.com/grovetools/storefront/config"
	"github.com/grovetools/storefront/errors"
	"github.com/grovetools/storefront/state"
	"github.com/grovetools/storefront/storefront"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// app is everything a command needs, built from the global flags.
type app struct {
	opts       cli.CommandOptions
	cfg        *config.Config
	configPath string
	storage    *state.FileStore
	provider   *storefront.Provider
	logger     *logrus.Entry

	catalogPath string
}

// loadConfig resolves the configuration from --config, the project file or
// the global file, falling back to defaults when none exists.
func loadConfig(cmd *cobra.Command, logger *logrus.Entry) (*config.Config, string, error) {
	opts := cli.GetOptions(cmd)

	path, err := cli.InitConfig(opts.ConfigFile)
	if err != nil {
		return nil, "", err
	}

	if path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return nil, path, err
		}
		return cfg, path, nil
	}

	cfg, err := config.LoadDefault()
	if errors.Is(err, errors.ErrCodeConfigNotFound) {
		logger.Debug("No storefront config found, using defaults")
		return config.Default(), "", nil
	}
	if err != nil {
		return nil, "", err
	}
	return cfg, "", nil
}

func newApp(cmd *cobra.Command) (*app, error) {
	logger := cli.GetLogger(cmd)
	opts := cli.GetOptions(cmd)

	cfg, path, err := loadConfig(cmd, logger)
	if err != nil {
		return nil, err
	}

	var ui cli.UIConfig
	if err := cfg.UnmarshalExtension("ui", &ui); err != nil {
		logger.WithError(err).Warn("Failed to parse 'ui' config")
	} else if ui.Theme != "" {
		cli.SetTheme(ui.Theme)
	}

	storage := state.NewFileStore(cfg.Storage.Path)
	logger.WithField("path", storage.Path()).Debug("Using storage file")

	catalogPath := opts.CatalogFile
	if catalogPath == "" {
		catalogPath = cfg.Catalog.Path
	}

	return &app{
		opts:        opts,
		cfg:         cfg,
		configPath:  path,
		storage:     storage,
		provider:    storefront.New(storage, storefront.Options{Config: cfg}),
		logger:      logger,
		catalogPath: catalogPath,
	}, nil
}

// catalog loads the catalog snapshot. Commands that add items need one.
func (a *app) catalog() (*catalog.Catalog, error) {
	if a.catalogPath == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"no catalog snapshot configured; pass --catalog or set catalog.path")
	}
	a.logger.WithField("path", a.catalogPath).Debug("Loading catalog")
	return catalog.LoadFile(a.catalogPath)
}
