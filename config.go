package patchup

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const configFile = ".patchup.toml"

func DefaultConfigDir() string {
	if xdgdir := os.Getenv("XDG_CONFIG_HOME"); xdgdir != "" {
		return filepath.Join(xdgdir, "patchup")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		log.Printf("error finding user home dir: %v", err)
		return ""
	}
	return filepath.Join(home, ".config", "patchup")
}

// LoadConfigs reads flag defaults from .patchup.toml files: first from the
// user config directory, then from the current directory. Settings from
// the current directory take precedence.
func LoadConfigs() (UserFlags, error) {
	var flags UserFlags
	paths := []string{
		filepath.Join(DefaultConfigDir(), configFile),
		configFile,
	}
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		err = toml.Unmarshal(data, &flags)
		if err != nil {
			return flags, fmt.Errorf("%s: %w", p, err)
		}
	}
	return flags, nil
}
