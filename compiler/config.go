package compiler

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/syssam/grafton"
	"github.com/syssam/grafton/augment"
)

// LoadConfig loads an augmentation configuration from a grafton.yml file.
// A missing file is not an error: augmentation runs with everything enabled
// and no authorization directives, so projects only write a config file to
// turn things off or on.
func LoadConfig(path string) (augment.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return augment.Config{}, nil
		}
		return augment.Config{}, grafton.NewConfigError(path, nil, err.Error())
	}

	var cfg augment.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return augment.Config{}, grafton.NewConfigError(path, nil, err.Error())
	}
	return cfg, nil
}
