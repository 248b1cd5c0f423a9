package utils

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config keys, shared by flags, environment variables and the config file
const (
	KeySiteDir  = "site-dir"
	KeyTemplate = "template"
	KeyOutput   = "output"
)

const (
	envPrefix      = "POTSITE"
	configFileName = ".potsite"
)

// Paths are the resolved locations of the template and the generated page
type Paths struct {
	SiteDir  string `yaml:"site_dir"`
	Template string `yaml:"template"`
	Output   string `yaml:"output"`
}

// ConfigDefaults registers defaults and environment bindings in Viper config.
// Environment variables use the POTSITE_ prefix, e.g. POTSITE_TEMPLATE
func ConfigDefaults() {
	viper.SetDefault(KeySiteDir, "site")
	viper.SetDefault(KeyTemplate, "template.html")
	viper.SetDefault(KeyOutput, "index.html")

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// ConfigInit loads the optional config file into Viper config.
// Without an explicit path, .potsite.yaml in the site directory is used if present
func ConfigInit(flagConfigFilePath string) error {
	if flagConfigFilePath != "" {
		Logger.Debug("Using config file from flag", "File", flagConfigFilePath)
		viper.SetConfigFile(flagConfigFilePath)
	} else {
		siteDir := viper.GetString(KeySiteDir)
		Logger.Debug("Looking for config file", "Dir", siteDir)
		viper.AddConfigPath(siteDir)
		viper.SetConfigName(configFileName)
		viper.SetConfigType("yaml")
	}

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if flagConfigFilePath == "" && errors.As(err, &notFound) {
			Logger.Debug("No config file found, using defaults")
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}

	Logger.Debug("Using potsite config file", "File", viper.ConfigFileUsed())
	return nil
}

// ResolvePaths returns template and output paths. Relative paths are taken from the site directory
func ResolvePaths() Paths {
	siteDir := viper.GetString(KeySiteDir)

	paths := Paths{
		SiteDir:  siteDir,
		Template: resolve(siteDir, viper.GetString(KeyTemplate)),
		Output:   resolve(siteDir, viper.GetString(KeyOutput)),
	}

	Logger.Debug("Resolved paths", "Template", paths.Template, "Output", paths.Output)
	return paths
}

func resolve(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
