package config

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/redflagged/redflagged/pkg/conf"
)

type Config struct {
	Endpoints struct {
		HostName string
		Home     string
		Index    string
		Submit   string
		Flags    string
		Api      struct {
			Prefix string
		}
	}

	Server struct {
		ListenAddress   string
		ShutdownTimeout time.Duration
		MaxUploadSize   int64
		Cookies         struct {
			AuthenticationKey string
			EncryptionKey     string
			Secure            bool
		}
	}

	DataBase struct {
		Host           string
		Port           uint16
		User           string
		Pass           string
		Name           string
		ConnectTimeout time.Duration
	}

	Catalog struct {
		SeedFile       string
		SeedURL        string
		ReloadInterval time.Duration
	}

	Cache struct {
		MaxSize  int64
		FeedTTL  time.Duration
		DraftTTL time.Duration
	}

	Evidence struct {
		Dir string
	}

	Telegram struct {
		BotToken string
		ChatID   int64
	}

	Moderation struct {
		Tokens []string
	}

	Log struct {
		Production bool
		File       string
		MaxSizeMB  int
		MaxBackups int
		MaxAgeDays int
	}
}

func ParseConfig(path string) (*Config, error) {
	config := &Config{}
	if err := conf.ParseConfig(config, conf.EnvPrefix("RFG"), conf.ConfigPath(path)); err != nil {
		return nil, errors.Wrap(err, "Failed to parse config")
	}
	config.SetDefaults()
	return config, nil
}

// Default returns a config usable without any file or environment.
func Default() *Config {
	config := &Config{}
	config.SetDefaults()
	return config
}

func (c *Config) SetDefaults() {
	setString := func(dst *string, value string) {
		if *dst == "" {
			*dst = value
		}
	}
	setDuration := func(dst *time.Duration, value time.Duration) {
		if *dst == 0 {
			*dst = value
		}
	}

	setString(&c.Endpoints.Home, "/")
	setString(&c.Endpoints.Index, "/index")
	setString(&c.Endpoints.Submit, "/submit")
	setString(&c.Endpoints.Flags, "/flags")
	setString(&c.Endpoints.Api.Prefix, "/api")

	setString(&c.Server.ListenAddress, ":8080")
	setDuration(&c.Server.ShutdownTimeout, 10*time.Second)
	if c.Server.MaxUploadSize == 0 {
		c.Server.MaxUploadSize = 16 << 20
	}

	if c.DataBase.Port == 0 {
		c.DataBase.Port = 5432
	}
	setDuration(&c.DataBase.ConnectTimeout, time.Minute)

	if c.Cache.MaxSize == 0 {
		c.Cache.MaxSize = 5000
	}
	setDuration(&c.Cache.FeedTTL, 30*time.Second)
	setDuration(&c.Cache.DraftTTL, 2*time.Hour)

	if c.Log.MaxSizeMB == 0 {
		c.Log.MaxSizeMB = 100
	}
}

func (c *Config) HasDataBase() bool {
	return c.DataBase.Host != ""
}

func (c *Config) DataBaseDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.DataBase.Host, c.DataBase.Port, c.DataBase.User, c.DataBase.Pass, c.DataBase.Name)
}
