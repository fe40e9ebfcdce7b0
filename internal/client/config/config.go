// Package config загружает клиентскую конфигурацию из YAML файла.
// Отсутствующий файл — не ошибка: при первом запуске создаётся
// конфиг с умолчаниями.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration обёртка над time.Duration: yaml.v3 не умеет разбирать
// строки вида "30s" в time.Duration напрямую
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Std returns the wrapped time.Duration
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config описывает клиентскую конфигурацию
type Config struct {
	// ServerURL базовый адрес сервера синхронизации
	ServerURL string `yaml:"server_url"`

	// DBPath путь к файлу локальной базы (bbolt)
	DBPath string `yaml:"db_path"`

	// CacheVersion семантическая версия поколения кеша;
	// меняется на деплое новой сборки
	CacheVersion string `yaml:"cache_version"`

	// AssetURLs канонический список статических ассетов
	// для прогрева static-namespace
	AssetURLs []string `yaml:"asset_urls"`

	// APIAllowlist внешние API, обслуживаемые по stale-while-revalidate
	APIAllowlist []string `yaml:"api_allowlist"`

	// ProbeInterval период health-пробы монитора связности
	ProbeInterval Duration `yaml:"probe_interval"`

	// DrainCron cron-расписание фоновых drain-проходов агента
	DrainCron string `yaml:"drain_cron"`
}

// Default returns the in-memory default configuration
func Default() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	return &Config{
		ServerURL:     "http://localhost:8080",
		DBPath:        filepath.Join(home, ".weekendly", "weekendly.db"),
		CacheVersion:  "1",
		AssetURLs:     []string{},
		APIAllowlist:  []string{},
		ProbeInterval: Duration(30 * time.Second),
		DrainCron:     "@every 5m",
	}
}

// Normalize заполняет нулевые поля умолчаниями: частично заполненный
// конфиг от старой версии остаётся рабочим
func (c *Config) Normalize() {
	def := Default()

	if c.ServerURL == "" {
		c.ServerURL = def.ServerURL
	}
	if c.DBPath == "" {
		c.DBPath = def.DBPath
	}
	if c.CacheVersion == "" {
		c.CacheVersion = def.CacheVersion
	}
	if c.AssetURLs == nil {
		c.AssetURLs = []string{}
	}
	if c.APIAllowlist == nil {
		c.APIAllowlist = []string{}
	}
	if c.ProbeInterval <= 0 {
		c.ProbeInterval = def.ProbeInterval
	}
	if c.DrainCron == "" {
		c.DrainCron = def.DrainCron
	}
}

// Load reads configuration from the given YAML path.
// Если файла нет — создаётся родительский каталог и дефолтный
// конфиг с правами 0600 (в нём может оказаться приватный адрес).
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := Default()
			if err := Save(path, cfg); err != nil {
				return nil, fmt.Errorf("failed to create default config: %w", err)
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.Normalize()
	return cfg, nil
}

// Save writes the configuration to the given path with 0600 perms
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
