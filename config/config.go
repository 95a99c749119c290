package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings holds everything tunable about the service. Values come from
// an optional YAML file and can be overridden per-key by environment
// variables, so containers can run with just the defaults.
type Settings struct {
	Server struct {
		Host string `yaml:"host"`
		Port string `yaml:"port"`
	} `yaml:"server"`
	Auth struct {
		JWTSecret       string `yaml:"jwt_secret"`
		SessionCookie   string `yaml:"session_cookie"`
		SessionTTLHours int    `yaml:"session_ttl_hours"`
	} `yaml:"auth"`
	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`
	Menu struct {
		Path string `yaml:"path"`
	} `yaml:"menu"`
	Printer struct {
		Mock      bool `yaml:"mock"`
		QueueSize int  `yaml:"queue_size"`
	} `yaml:"printer"`
}

// JWTSecret used to sign session tokens — populated by Load.
var JWTSecret []byte

// SessionCookieName is the cookie that carries the session token.
var SessionCookieName = "pos_session"

func defaults() *Settings {
	s := &Settings{}
	s.Server.Host = "0.0.0.0"
	s.Server.Port = "8080"
	s.Auth.JWTSecret = "restaurant_pos_dev_secret"
	s.Auth.SessionCookie = "pos_session"
	s.Auth.SessionTTLHours = 24
	s.Database.Path = "orders.db"
	s.Menu.Path = "resources/menu.json"
	s.Printer.Mock = true
	s.Printer.QueueSize = 64
	return s
}

// Load reads the config file at path (skipped when empty or missing) and
// applies environment overrides on top of the defaults.
func Load(path string) (*Settings, error) {
	s := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, s); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	s.Server.Port = getEnv("PORT", s.Server.Port)
	s.Auth.JWTSecret = getEnv("JWT_SECRET", s.Auth.JWTSecret)
	s.Database.Path = getEnv("DATABASE_PATH", s.Database.Path)
	s.Menu.Path = getEnv("MENU_PATH", s.Menu.Path)

	JWTSecret = []byte(s.Auth.JWTSecret)
	SessionCookieName = s.Auth.SessionCookie
	return s, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
