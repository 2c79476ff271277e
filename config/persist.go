package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/teranos/iconforge/errors"
)

// WriteProjectConfig writes the default configuration as a TOML file at
// path. An existing file is refused unless force is set.
func WriteProjectConfig(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.Newf("%s already exists (use --force to overwrite)", path)
		}
	}

	data, err := toml.Marshal(Default())
	if err != nil {
		return errors.Wrap(err, "failed to marshal default config")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(errors.ErrFilesystem, "writing %s: %v", path, err)
	}
	return nil
}
