package config

import (
	"strings"

	"github.com/spf13/viper"
)

type (
	Config struct {
		App      App      `mapstructure:"app"`
		Postgres Postgres `mapstructure:"postgres"`
		ETL      ETL      `mapstructure:"etl"`
	}

	App struct {
		Env       string `mapstructure:"env"`
		Name      string `mapstructure:"name"`
		LogOption string `mapstructure:"log_option"`
		LogLevel  string `mapstructure:"log_level"`
	}

	Postgres struct {
		Write Database `mapstructure:"write"`
		Read  Database `mapstructure:"read"`
	}

	Database struct {
		DbHost            string `mapstructure:"db_host"`
		DbPort            string `mapstructure:"db_port"`
		DbUser            string `mapstructure:"db_user"`
		DbPass            string `mapstructure:"db_pass"`
		DbName            string `mapstructure:"db_name"`
		DbSchema          string `mapstructure:"db_schema"`
		MaxOpenConnection int    `mapstructure:"max_open_connections"`
		MaxIdleConnection int    `mapstructure:"max_idle_connections"`
		ConnMaxLifetime   int    `mapstructure:"conn_max_lifetime"`
	}

	// ETL holds the pipeline-level settings. The SMS feed only ever names
	// the counterparty of a transaction; the device owner identity comes
	// from here.
	ETL struct {
		OwnerFullName    string `mapstructure:"owner_full_name"`
		OwnerPhoneNumber string `mapstructure:"owner_phone_number"`
	}
)

// Load reads config.yaml from the given search paths, with every key
// overridable through MOMO_ETL_ prefixed environment variables.
func Load(searchPaths ...string) (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(searchPaths) == 0 {
		searchPaths = []string{".", "./config", "/config"}
	}
	for _, p := range searchPaths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix("MOMO_ETL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
