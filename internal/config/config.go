package config

import (
	"os"

	"github.com/ellavs/extdatetime/internal/cache"
	"github.com/ellavs/extdatetime/internal/logger"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const configFile = "data/config.yaml"

type Config struct {
	Timezone          string `yaml:"timezone"`          // Часовой пояс по умолчанию (имя IANA или смещение "+03:00").
	OutputLayout      string `yaml:"outputLayout"`      // Шаблон вывода дат (формат Go).
	ListenAddr        string `yaml:"listenAddr"`        // Адрес HTTP сервера.
	MetricsEnabled    bool   `yaml:"metricsEnabled"`    // Отдавать метрики Prometheus на /metrics.
	TracingEnabled    bool   `yaml:"tracingEnabled"`    // Отправлять трассировку в Jaeger.
	LogLevel          string `yaml:"logLevel"`          // Уровень логирования: debug, info, warn, error.
	LocationCacheSize int    `yaml:"locationCacheSize"` // Количество часовых поясов в LRU кэше.
}

type Service struct {
	config Config
}

func New() (*Service, error) {
	return NewFromFile(configFile)
}

// NewFromFile Чтение конфигурации из произвольного файла.
func NewFromFile(path string) (*Service, error) {
	s := &Service{}

	rawYAML, err := os.ReadFile(path)
	if err != nil {
		logger.Error("Ошибка reading config file", "err", err, "path", path)
		return nil, errors.Wrap(err, "reading config file")
	}

	err = yaml.Unmarshal(rawYAML, &s.config)
	if err != nil {
		logger.Error("Ошибка parsing yaml", "err", err, "path", path)
		return nil, errors.Wrap(err, "parsing yaml")
	}

	return s, nil
}

// Validate Проверка всех параметров, ошибки собираются в одну.
func (s *Service) Validate() error {
	var err error
	if _, locErr := cache.ParseLocation(s.config.Timezone); locErr != nil {
		err = multierr.Append(err, errors.Wrap(locErr, "timezone"))
	}
	if s.config.LogLevel != "" {
		var l zapcore.Level
		if lvlErr := l.UnmarshalText([]byte(s.config.LogLevel)); lvlErr != nil {
			err = multierr.Append(err, errors.Wrap(lvlErr, "logLevel"))
		}
	}
	if s.config.LocationCacheSize < 0 {
		err = multierr.Append(err, errors.Errorf("locationCacheSize: must not be negative, got %d", s.config.LocationCacheSize))
	}
	return err
}

func (s *Service) GetConfig() Config {
	return s.config
}
