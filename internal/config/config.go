// Package config loads the crew file and its environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/alexanderramin/crewclock/internal/domain"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when CREWCLOCK_CONFIG is unset.
const DefaultPath = "crew.yaml"

// S3Config selects bucket storage for punch photos. An empty bucket keeps
// photos on the local disk.
type S3Config struct {
	Bucket          string `yaml:"bucket"`
	Region          string `yaml:"region"`
	Endpoint        string `yaml:"endpoint"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
}

// Config holds everything the crew file and environment define.
type Config struct {
	Timezone            string          `yaml:"timezone"`
	WeeklyCapacityHours float64         `yaml:"weekly_capacity_hours"`
	DefaultLimit        int             `yaml:"default_limit"`
	WarnOnDoubleIn      bool            `yaml:"warn_on_double_in"`
	AllowedIP           string          `yaml:"allowed_ip"`
	Workers             []domain.Member `yaml:"workers"`
	Projects            []string        `yaml:"projects"`
	CompletedProjects   []string        `yaml:"completed_projects"`

	DBPath    string   `yaml:"db_path"`
	Addr      string   `yaml:"addr"`
	JWTSecret string   `yaml:"jwt_secret"`
	PhotoDir  string   `yaml:"photo_dir"`
	S3        S3Config `yaml:"s3"`

	location *time.Location
}

// Default returns a Config with no roster and Pacific time.
func Default() Config {
	return Config{
		Timezone:            "America/Los_Angeles",
		WeeklyCapacityHours: 80,
		DefaultLimit:        10,
		Addr:                ":8080",
		PhotoDir:            "uploads",
	}
}

// Load reads .env if present, then the crew file named by CREWCLOCK_CONFIG
// (default crew.yaml). A missing default file yields the defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	path := os.Getenv("CREWCLOCK_CONFIG")
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	cfg, err := LoadFile(path)
	if err == nil {
		return cfg, nil
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		def := Default()
		if err := def.finish(); err != nil {
			return nil, err
		}
		return &def, nil
	}
	return nil, err
}

// LoadFile parses the crew file at path. ${VAR} placeholders are replaced
// from the environment before parsing; CREWCLOCK_* variables then override
// individual fields.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes crew file contents.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal([]byte(expandEnv(string(data))), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) finish() error {
	if err := c.applyEnv(); err != nil {
		return err
	}
	for i := range c.Workers {
		c.Workers[i].Name = domain.CanonicalWorker(c.Workers[i].Name)
	}
	return c.validate()
}

func expandEnv(content string) string {
	for _, env := range os.Environ() {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 {
			continue
		}
		content = strings.ReplaceAll(content, "${"+pair[0]+"}", pair[1])
	}
	return content
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("CREWCLOCK_TZ"); v != "" {
		c.Timezone = v
	}
	if v := os.Getenv("CREWCLOCK_CAPACITY"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid CREWCLOCK_CAPACITY value: %w", err)
		}
		c.WeeklyCapacityHours = f
	}
	if v := os.Getenv("CREWCLOCK_WARN_DOUBLE_IN"); v != "" {
		c.WarnOnDoubleIn, _ = strconv.ParseBool(v)
	}

	setString(&c.AllowedIP, "CREWCLOCK_ALLOWED_IP")
	setString(&c.DBPath, "CREWCLOCK_DB")
	setString(&c.Addr, "CREWCLOCK_ADDR")
	setString(&c.JWTSecret, "CREWCLOCK_JWT_SECRET")
	setString(&c.PhotoDir, "CREWCLOCK_PHOTO_DIR")
	setString(&c.S3.Bucket, "CREWCLOCK_S3_BUCKET")
	setString(&c.S3.Region, "CREWCLOCK_S3_REGION")
	setString(&c.S3.Endpoint, "CREWCLOCK_S3_ENDPOINT")
	setString(&c.S3.AccessKeyID, "CREWCLOCK_S3_ACCESS_KEY_ID")
	setString(&c.S3.SecretAccessKey, "CREWCLOCK_S3_SECRET_ACCESS_KEY")
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func (c *Config) validate() error {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return fmt.Errorf("unknown timezone %q: %w", c.Timezone, err)
	}
	c.location = loc

	if c.WeeklyCapacityHours <= 0 {
		return fmt.Errorf("weekly_capacity_hours must be positive, got %v", c.WeeklyCapacityHours)
	}
	if c.DefaultLimit <= 0 {
		c.DefaultLimit = 10
	}

	names := make(map[string]bool)
	pins := make(map[string]string)
	admins := 0
	for _, m := range c.Workers {
		if m.Name == "" {
			return errors.New("worker with empty name")
		}
		if names[m.Name] {
			return fmt.Errorf("duplicate worker %q", m.Name)
		}
		names[m.Name] = true
		if m.PIN == "" {
			return fmt.Errorf("worker %q has no pin", m.Name)
		}
		if other, ok := pins[m.PIN]; ok {
			return fmt.Errorf("workers %q and %q share a pin", other, m.Name)
		}
		pins[m.PIN] = m.Name
		if m.Admin {
			admins++
		}
	}
	if admins > 1 {
		return fmt.Errorf("at most one admin allowed, got %d", admins)
	}
	return nil
}

// Location is the crew's time zone. It is valid after a successful load.
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}

func (c *Config) Roster() domain.Roster {
	return domain.Roster{Members: c.Workers}
}

// ActiveProjects lists projects not marked completed, in file order.
func (c *Config) ActiveProjects() []string {
	done := make(map[string]bool, len(c.CompletedProjects))
	for _, p := range c.CompletedProjects {
		done[p] = true
	}
	active := make([]string, 0, len(c.Projects))
	for _, p := range c.Projects {
		if !done[p] {
			active = append(active, p)
		}
	}
	return active
}
