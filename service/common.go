package service

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"inkpress/app/config"
	"inkpress/app/repositories"
)

// openStore opens the store selected by the storage configuration,
// creating its directory or database file if needed.
func openStore(cfg config.StorageConfig) (repositories.Store, error) {
	switch cfg.Backend {
	case config.BackendBadger:
		store, err := repositories.NewBadgerStore(cfg.Path())
		if err != nil {
			return nil, fmt.Errorf("failed to open badger store: %w", err)
		}
		return store, nil
	case config.BackendSQLite:
		store, err := repositories.NewSQLiteStore(cfg.Path())
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		return store, nil
	default:
		store, err := repositories.NewFileStore(cfg.Path())
		if err != nil {
			return nil, fmt.Errorf("failed to open file store: %w", err)
		}
		return store, nil
	}
}

// storeExists reports whether the configured backend holds any data.
func storeExists(cfg config.StorageConfig) (bool, error) {
	if _, err := os.Stat(cfg.Path()); errors.Is(err, os.ErrNotExist) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	if cfg.Backend != config.BackendFile {
		return true, nil
	}

	store, err := repositories.NewFileStore(cfg.Path())
	if err != nil {
		return false, err
	}
	names, err := store.Collections()
	if err != nil {
		return false, err
	}
	return len(names) > 0, nil
}

// removeStore deletes all stored data. The file backend only removes its
// collection files so that backups kept under the data directory survive.
func removeStore(cfg config.StorageConfig) error {
	switch cfg.Backend {
	case config.BackendBadger:
		return os.RemoveAll(cfg.Path())
	case config.BackendSQLite:
		for _, suffix := range []string{"", "-wal", "-shm"} {
			if err := os.Remove(cfg.Path() + suffix); err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}
		}
		return nil
	default:
		store, err := repositories.NewFileStore(cfg.Path())
		if err != nil {
			return err
		}
		names, err := store.Collections()
		if err != nil {
			return err
		}
		for _, name := range names {
			if err := os.Remove(filepath.Join(store.Dir(), name+".json")); err != nil {
				return err
			}
		}
		return nil
	}
}

// newLogger builds the process logger from the log configuration.
func newLogger(cfg config.LogConfig, w io.Writer) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

// commandFlags is the flag set shared by every subcommand.
type commandFlags struct {
	set        *flag.FlagSet
	configPath string
	yes        bool
}

func newCommandFlags(name string) *commandFlags {
	f := &commandFlags{set: flag.NewFlagSet(name, flag.ContinueOnError)}
	f.set.SetOutput(os.Stdout)
	f.set.StringVar(&f.configPath, "config", "", "path to the YAML configuration file")
	f.set.BoolVar(&f.yes, "yes", false, "do not ask for confirmation")
	return f
}

// parse parses args and loads the configuration they point to.
func (f *commandFlags) parse(args []string) (*config.Config, error) {
	if err := f.set.Parse(args); err != nil {
		return nil, err
	}
	return config.Load(f.configPath)
}

// confirm asks a yes/no question on stdin. Anything but "y" declines.
func confirm(question string) bool {
	fmt.Print(question + " [y/N] ")
	var response string
	fmt.Scanln(&response)
	return response == "y" || response == "Y"
}
