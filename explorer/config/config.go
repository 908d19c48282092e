package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"bikeshare/communication"
	"bikeshare/dataset"
	"bikeshare/pager"
	"bikeshare/report"
	"bikeshare/utils"
)

const (
	defaultConfigFilepath = "./explorer/config/config.yaml"
	configPathEnvVarName  = "EXPLORER_CONFIG"
	dataDirEnvVarName     = "DATA_DIR"
	rabbitUrlEnvVarName   = "RABBIT_URL"
)

// ExplorerConfig contains everything the explorer needs to run a session
// + DataDir: directory of the city files, relative paths in Cities are resolved from it
// + Cities: dataset registry, exactly one entry per supported city
// + Columns: header names of the trip files
// + TimeLayout: layout of the start and end time columns
// + PageSize: rows shown per window of raw data
// + SeparatorWidth: width of the line printed between reports
type ExplorerConfig struct {
	DataDir        string                         `yaml:"data_dir" validate:"required"`
	Cities         dataset.Registry               `yaml:"cities" validate:"required,len=3,dive"`
	Columns        dataset.Columns                `yaml:"columns"`
	TimeLayout     string                         `yaml:"time_layout" validate:"required"`
	PageSize       int                            `yaml:"page_size" validate:"min=1"`
	SeparatorWidth int                            `yaml:"separator_width" validate:"min=1"`
	Publishing     communication.PublishingConfig `yaml:"publishing"`
}

// LoadConfig loads the .env file if there is one and then the config file pointed by
// EXPLORER_CONFIG, or the default config file
func LoadConfig() (*ExplorerConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Debugf("[component: config] no .env file loaded: %s", err)
	}

	configFilepath := os.Getenv(configPathEnvVarName)
	if configFilepath == "" {
		configFilepath = defaultConfigFilepath
	}
	return LoadConfigFromFile(configFilepath)
}

func LoadConfigFromFile(configFilepath string) (*ExplorerConfig, error) {
	configFile, err := utils.GetConfigFile(configFilepath)
	if err != nil {
		return nil, err
	}

	var explorerConfig ExplorerConfig
	err = yaml.Unmarshal(configFile, &explorerConfig)
	if err != nil {
		return nil, fmt.Errorf("error parsing explorer config file: %w", err)
	}

	if dataDir := os.Getenv(dataDirEnvVarName); dataDir != "" {
		explorerConfig.DataDir = dataDir
	}
	explorerConfig.Publishing.URL = os.Getenv(rabbitUrlEnvVarName)

	explorerConfig.setDefaults()
	if err := explorerConfig.validate(); err != nil {
		return nil, err
	}

	return &explorerConfig, nil
}

func (ec *ExplorerConfig) setDefaults() {
	if ec.Columns == (dataset.Columns{}) {
		ec.Columns = dataset.DefaultColumns()
	}
	if ec.TimeLayout == "" {
		ec.TimeLayout = dataset.DefaultTimeLayout
	}
	if ec.PageSize == 0 {
		ec.PageSize = pager.DefaultPageSize
	}
	if ec.SeparatorWidth == 0 {
		ec.SeparatorWidth = report.DefaultSeparatorWidth
	}

	cities := make(dataset.Registry, len(ec.Cities))
	for city, source := range ec.Cities {
		cities[strings.ToLower(strings.TrimSpace(city))] = source
	}
	ec.Cities = cities
}

func (ec *ExplorerConfig) validate() error {
	if err := validator.New().Struct(ec); err != nil {
		return fmt.Errorf("invalid explorer config: %w", err)
	}

	if ec.Publishing.Enabled {
		if ec.Publishing.Queue.Name == "" {
			return fmt.Errorf("invalid explorer config: publishing is enabled but no queue name is set")
		}
		if ec.Publishing.URL == "" {
			return fmt.Errorf("invalid explorer config: publishing is enabled but %s is not set", rabbitUrlEnvVarName)
		}
	}
	return nil
}
