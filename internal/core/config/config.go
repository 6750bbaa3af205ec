package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host            string
	Port            int
	ReadTimeoutSec  int
	WriteTimeoutSec int
	IdleTimeoutSec  int
}

type App struct {
	Name string
	Env  string
	HTTP HTTP
}

type LogFile struct {
	Enable     bool
	Filename   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

type Log struct {
	Level string
	JSON  bool
	File  LogFile
}

type Auth struct {
	JWTSecret     string `mapstructure:"jwt_secret"`
	Issuer        string
	SessionTTLMin int    `mapstructure:"session_ttl_min"`
	CookieName    string `mapstructure:"cookie_name"`
	SecureCookie  bool   `mapstructure:"secure_cookie"`
	EnforceRoles  bool   `mapstructure:"enforce_roles"`
}

type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type DB struct {
	Driver             string
	DSN                string
	Username           string
	Password           string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	AutoMigrate        bool
	Seed               bool
	PrepareStmt        bool
	LogLevel           string
}

type Limits struct {
	RPS               float64
	Burst             int
	Concurrency       int64
	MaxBodyBytes      int64
	RequestTimeoutSec int
}

type Config struct {
	App    App
	Log    Log
	Auth   Auth
	DB     DB
	Redis  Redis `mapstructure:"redis"`
	Limits Limits
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "fitclub-admin")
	v.SetDefault("app.env", "local")
	v.SetDefault("app.http.host", "0.0.0.0")
	v.SetDefault("app.http.port", 8080)
	v.SetDefault("app.http.readtimeoutsec", 5)
	v.SetDefault("app.http.writetimeoutsec", 10)
	v.SetDefault("app.http.idletimeoutsec", 60)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("log.file.filename", "logs/app.log")
	v.SetDefault("log.file.maxsizemb", 100)
	v.SetDefault("log.file.maxbackups", 7)
	v.SetDefault("log.file.maxagedays", 30)

	v.SetDefault("log.file.enable", false)
	v.SetDefault("log.file.compress", false)

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.secure_cookie", false)
	v.SetDefault("auth.issuer", "fitclub-admin")
	v.SetDefault("auth.session_ttl_min", 480)
	v.SetDefault("auth.cookie_name", "session")
	v.SetDefault("auth.enforce_roles", true)

	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.dsn", "file:fitclub.db")
	v.SetDefault("db.username", "")
	v.SetDefault("db.password", "")
	v.SetDefault("db.maxopenconns", 20)
	v.SetDefault("db.maxidleconns", 5)
	v.SetDefault("db.connmaxlifetimemin", 30)
	v.SetDefault("db.automigrate", true)
	v.SetDefault("db.seed", true)
	v.SetDefault("db.prepareStmt", true)
	v.SetDefault("db.loglevel", "warn")

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("limits.rps", 200)
	v.SetDefault("limits.burst", 400)
	v.SetDefault("limits.concurrency", 300)
	v.SetDefault("limits.maxbodybytes", 1<<20)
	v.SetDefault("limits.requesttimeoutsec", 10)
}

// Load reads the YAML file at path (or $CONFIG_PATH, or the local default).
// APP_* environment variables override file values, e.g. APP_DB_DSN.
// A missing file is not an error; defaults and env still apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
		if path == "" {
			path = "./configs/config.local.yaml"
		}
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) validate() error {
	if c.Auth.JWTSecret == "" {
		if c.App.Env != "local" && c.App.Env != "test" {
			return fmt.Errorf("auth.jwt_secret is required in env %q", c.App.Env)
		}
		c.Auth.JWTSecret = "local-dev-secret"
	}
	if c.Auth.SessionTTLMin <= 0 {
		return fmt.Errorf("auth.session_ttl_min must be positive, got %d", c.Auth.SessionTTLMin)
	}
	return nil
}
