package gridconv

/*------------------------------------------------------------------
 *
 * Purpose:   	Read configuration information from a file and the
 *		environment.
 *
 * Description:	A YAML file is optional.  When no name is given the
 *		search list below is tried in order.  Environment
 *		variables GRIDCONV_* override whatever the file says.
 *
 *---------------------------------------------------------------*/

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Ellipsoid       string `yaml:"ellipsoid"        env:"GRIDCONV_ELLIPSOID"`
	Precision       int    `yaml:"precision"        env:"GRIDCONV_PRECISION"`
	LogLevel        string `yaml:"log_level"        env:"GRIDCONV_LOG_LEVEL"`
	TimestampFormat string `yaml:"timestamp_format" env:"GRIDCONV_TIMESTAMP_FORMAT"`
}

func DefaultConfig() Config {
	return Config{
		Ellipsoid: "WGS84",
		Precision: 5,
		LogLevel:  "info",
	}
}

var configSearchLocations = []string{
	"gridconv.yaml", // Current working directory
	"/usr/local/etc/gridconv.yaml",
	"/etc/gridconv.yaml",
}

/*------------------------------------------------------------------
 *
 * Name:        LoadConfig
 *
 * Purpose:     Build the configuration from defaults, a file and the
 *		environment, in that order.
 *
 * Inputs:      fname	- File to read.  Empty means try the search list
 *			  and carry on with defaults if none exist.  A
 *			  named file must exist.
 *
 *----------------------------------------------------------------*/

func LoadConfig(fname string) (Config, error) {
	var cfg = DefaultConfig()

	var locations = configSearchLocations
	if fname != "" {
		locations = []string{fname}
	}

	for _, location := range locations {
		var data, err = os.ReadFile(location)
		if errors.Is(err, fs.ErrNotExist) && fname == "" {
			continue
		}

		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", location, err)
		}

		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", location, err)
		}

		break
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	return cfg, cfg.Validate()
}

func (cfg Config) Validate() error {
	if _, err := LookupEllipsoid(cfg.Ellipsoid); err != nil {
		return err
	}

	if cfg.Precision < 1 || cfg.Precision > 5 {
		return newErrorf(KindRange, "MGRS precision must be between 1 and 5, got %d", cfg.Precision)
	}

	if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}

	return nil
}

// Converter builds a Converter on the configured ellipsoid.
func (cfg Config) Converter(logger *log.Logger) (*Converter, error) {
	var ell, err = LookupEllipsoid(cfg.Ellipsoid)
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = log.Default()
	}

	return NewConverter(WithEllipsoid(ell), WithLogger(logger)), nil
}
