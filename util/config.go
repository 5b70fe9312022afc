package util

import (
	"log"
	"os"

	"github.com/go-yaml/yaml"
)

// Config is the TMS API base configuration
type Config struct {
	Server  Server  `yaml:"server"`
	TMS     TMS     `yaml:"tms"`
	Profile Profile `yaml:"profile"`
}

type Server struct {
	Dsn           string `yaml:"dsn"`
	RedisAddr     string `yaml:"redisAddr"`
	RedisDB       int    `yaml:"redisDB"`
	MemcachedAddr string `yaml:"memcachedAddr"`
	EnableTrace   bool   `yaml:"enableTrace"`
	TraceEndpoint string `yaml:"traceEndpoint"`
	Listen        string `yaml:"listen"`
}

type TMS struct {
	TenantHeader     string `yaml:"tenantHeader"`
	DocumentCacheTTL int    `yaml:"documentCacheTTL"` // seconds
	MaxPageSize      int    `yaml:"maxPageSize"`
}

type BuildInfo struct {
	BuildTime    string `yaml:"BuildTime" json:"BuildTime"`
	BuildMachine string `yaml:"BuildMachine" json:"BuildMachine"`
	GoVersion    string `yaml:"GoVersion" json:"GoVersion"`
}

type Profile struct {
	Nickname        string `yaml:"nickname" json:"nickname"`
	Description     string `yaml:"description" json:"description"`
	MaintainerName  string `yaml:"maintainerName" json:"maintainerName"`
	MaintainerEmail string `yaml:"maintainerEmail" json:"maintainerEmail"`

	// internal generated
	Version   string    `yaml:"version" json:"version"`
	BuildInfo BuildInfo `yaml:"buildInfo" json:"buildInfo"`
}

// Load loads config from given path
func (c *Config) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		log.Fatal("failed to open configuration file:", err)
		return err
	}
	defer f.Close()

	err = yaml.NewDecoder(f).Decode(&c)
	if err != nil {
		log.Fatal("failed to load configuration file:", err)
		return err
	}

	c.SetDefaults()
	return nil
}

// SetDefaults fills the zero values that have a sensible default
func (c *Config) SetDefaults() {
	if c.Server.Listen == "" {
		c.Server.Listen = ":8000"
	}
	if c.TMS.TenantHeader == "" {
		c.TMS.TenantHeader = "x-tenant-id"
	}
	if c.TMS.DocumentCacheTTL <= 0 {
		c.TMS.DocumentCacheTTL = 600
	}
	if c.TMS.MaxPageSize <= 0 {
		c.TMS.MaxPageSize = 100
	}
}
