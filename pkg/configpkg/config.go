// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"github.com/spf13/viper"
)

// Store drivers.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Config stores all configuration of the application.
//
// The values are read by viper fron a config file or environement variables.
type Config struct {
	DBDriver      string `mapstructure:"DB_DRIVER"`
	DBSource      string `mapstructure:"DB_SOURCE"`
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`
	Environement  string `mapstructure:"GO_ENV"`
	StoreDriver   string `mapstructure:"STORE_DRIVER"`
	RedisAddress  string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`
	EventsStream  string `mapstructure:"EVENTS_STREAM"`
}

// Load read configuration from file or environment variables.
func Load(path string) (Config, error) {
	var c Config

	v := viper.New()

	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("STORE_DRIVER", StoreDriverPostgres)
	v.SetDefault("EVENTS_STREAM", "transaction.events")

	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		return c, err
	}

	err = v.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	return c, nil
}
