package config

import (
	"path/filepath"
	"time"

	"github.com/maksimkurb/keen-console/src/internal/utils"
)

const (
	DefaultAPIBindAddress = "127.0.0.1:8053"
	DefaultSessionTTL     = 30 * time.Minute
	DefaultStoreDriver    = StoreDriverBolt
	DefaultStorePath      = "keen-console.db"
	DefaultOperationPath  = "/api/{{operation}}"
	DefaultDNSAddress     = "127.0.0.1:53"
	DefaultRequestTimeout = 10 * time.Second
	DefaultServerURL      = "http://127.0.0.1:5380"

	CurrentConfigVersion = 1
)

const (
	StoreDriverBolt   = "bolt"
	StoreDriverMemory = "memory"
	StoreDriverRemote = "remote"
)

// StoreDrivers lists the store driver names accepted in [store].driver.
var StoreDrivers = []string{StoreDriverBolt, StoreDriverMemory, StoreDriverRemote}

type Config struct {
	// ConfigVersion is the configuration file version.
	ConfigVersion uint8 `toml:"config_version" json:"config_version"`
	// General holds general configuration.
	General *GeneralConfig `toml:"general"`
	// Store selects where app configurations are loaded from and saved to.
	Store *StoreConfig `toml:"store"`
	// Server describes the DNS/DHCP server whose apps are edited.
	Server *ServerConfig `toml:"server"`

	_absConfigFilePath string
}

type GeneralConfig struct {
	// APIBindAddress is the address the REST API listens on (default: 127.0.0.1:8053).
	APIBindAddress string `toml:"api_bind_address" json:"api_bind_address" validate:"hostport_or_empty"`
	// UIPath is a directory with the web UI; empty disables static file serving.
	UIPath string `toml:"ui_path" json:"ui_path"`
	// SessionTTLMinutes expires editing sessions idle for longer (default: 30, 0 = default).
	SessionTTLMinutes int `toml:"session_ttl_minutes" json:"session_ttl_minutes" validate:"gte=0"`
}

type StoreConfig struct {
	// Driver is one of bolt, memory or remote (default: bolt).
	Driver string `toml:"driver" json:"driver" validate:"omitempty,store_driver"`
	// Path is the bolt database file, relative to the config file directory.
	Path string `toml:"path" json:"path"`
}

type ServerConfig struct {
	// URL is the base URL of the DNS/DHCP server HTTP API.
	URL string `toml:"url" json:"url" validate:"omitempty,url"`
	// Token is the session token sent with every operation.
	Token string `toml:"token" json:"token"`
	// OperationPath is the endpoint path template. Available variables: {{operation}}.
	OperationPath string `toml:"operation_path" json:"operation_path"`
	// DNSAddress is the host:port of the DNS service, probed by "check" and /status.
	DNSAddress string `toml:"dns_address" json:"dns_address" validate:"hostport_or_empty"`
	// TimeoutSeconds bounds every remote call and DNS probe (default: 10).
	TimeoutSeconds int `toml:"timeout_seconds" json:"timeout_seconds" validate:"gte=0"`
}

func (c *Config) GetConfigDir() string {
	return filepath.Dir(c._absConfigFilePath)
}

func (c *Config) GetAPIBindAddress() string {
	if c.General == nil || c.General.APIBindAddress == "" {
		return DefaultAPIBindAddress
	}
	return c.General.APIBindAddress
}

func (c *Config) GetUIPath() string {
	if c.General == nil {
		return ""
	}
	return c.General.UIPath
}

func (c *Config) GetSessionTTL() time.Duration {
	if c.General == nil || c.General.SessionTTLMinutes == 0 {
		return DefaultSessionTTL
	}
	return time.Duration(c.General.SessionTTLMinutes) * time.Minute
}

func (c *Config) GetStoreDriver() string {
	if c.Store == nil || c.Store.Driver == "" {
		return DefaultStoreDriver
	}
	return c.Store.Driver
}

func (c *Config) GetAbsStorePath() string {
	path := DefaultStorePath
	if c.Store != nil && c.Store.Path != "" {
		path = c.Store.Path
	}
	return utils.GetAbsolutePath(path, c.GetConfigDir())
}

func (c *Config) GetServerURL() string {
	if c.Server == nil || c.Server.URL == "" {
		return DefaultServerURL
	}
	return c.Server.URL
}

func (c *Config) GetToken() string {
	if c.Server == nil {
		return ""
	}
	return c.Server.Token
}

func (c *Config) GetOperationPath() string {
	if c.Server == nil || c.Server.OperationPath == "" {
		return DefaultOperationPath
	}
	return c.Server.OperationPath
}

func (c *Config) GetDNSAddress() string {
	if c.Server == nil || c.Server.DNSAddress == "" {
		return DefaultDNSAddress
	}
	return c.Server.DNSAddress
}

func (c *Config) GetTimeout() time.Duration {
	if c.Server == nil || c.Server.TimeoutSeconds == 0 {
		return DefaultRequestTimeout
	}
	return time.Duration(c.Server.TimeoutSeconds) * time.Second
}
