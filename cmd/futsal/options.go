package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/rafiq2704/FutsalManagerApp/internal/database"
	"github.com/rafiq2704/FutsalManagerApp/internal/util/slogx"
)

const appDir = "futsal"

type Options struct {
	DB  database.Options `toml:"db"`
	Log slogx.Options    `toml:"log"`
}

func defaultDir() (string, error) {
	confDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(confDir, appDir), nil
}

func (o *Options) FillDefaults() error {
	if o.DB.Path == "" {
		dir, err := defaultDir()
		if err != nil {
			return err
		}
		o.DB.Path = filepath.Join(dir, "futsal.db")
	}
	o.DB.FillDefaults()
	if o.Log.Level == "" {
		o.Log.Level = "warn"
	}
	o.Log.FillDefaults()
	return nil
}

// LoadOptions reads options from path. An empty path means the default config
// file, which is allowed to be absent.
func LoadOptions(path string) (Options, error) {
	var opts Options
	optional := false
	if path == "" {
		dir, err := defaultDir()
		if err != nil {
			return Options{}, err
		}
		path = filepath.Join(dir, "config.toml")
		optional = true
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		meta, err := toml.Decode(string(data), &opts)
		if err != nil {
			return Options{}, fmt.Errorf("unmarshal options: %w", err)
		}
		if undec := meta.Undecoded(); len(undec) != 0 {
			return Options{}, fmt.Errorf("unknown option %q", undec[0].String())
		}
	case optional && errors.Is(err, os.ErrNotExist):
	default:
		return Options{}, fmt.Errorf("read options: %w", err)
	}
	return opts, nil
}
