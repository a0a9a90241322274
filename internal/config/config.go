// Package config loads ferryc settings from an optional YAML or JSON file,
// with FERRY_ environment variables layered on top.
package config

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix prefixes every environment override, e.g. FERRY_LOG_LEVEL.
const EnvPrefix = "FERRY"

// Config holds everything the generate command can take from a file.
type Config struct {
	Package string   `mapstructure:"package"`
	Output  string   `mapstructure:"output"`
	Types   bool     `mapstructure:"types"`
	Schemas []string `mapstructure:"schemas"`
	Log     Log      `mapstructure:"log"`
}

// Log configures the command's logger.
type Log struct {
	Level string `mapstructure:"level"`
}

// Default returns the settings used when neither a file nor the environment
// says otherwise.
func Default() Config {
	return Config{
		Package: "records",
		Types:   true,
		Log:     Log{Level: "info"},
	}
}

// Loader wraps a viper instance with the defaults and environment binding
// ferryc expects.
type Loader struct {
	v *viper.Viper
}

// New returns a Loader that knows every key, so environment overrides apply
// even without a config file.
func New() *Loader {
	v := viper.New()
	d := Default()
	v.SetDefault("package", d.Package)
	v.SetDefault("output", d.Output)
	v.SetDefault("types", d.Types)
	v.SetDefault("schemas", []string{})
	v.SetDefault("log.level", d.Log.Level)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return &Loader{v: v}
}

// LoadFile reads path, inferring its format from the extension.
func (l *Loader) LoadFile(path string) error {
	l.v.SetConfigFile(path)
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		l.v.SetConfigType("yaml")
	case ".json":
		l.v.SetConfigType("json")
	}
	if err := l.v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "reading config %s", path)
	}
	return nil
}

// Unmarshal decodes the merged settings.
func (l *Loader) Unmarshal() (Config, error) {
	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "decoding config")
	}
	return cfg, nil
}

// Load reads the file at path, if any, and returns the merged settings.
func Load(path string) (Config, error) {
	l := New()
	if path != "" {
		if err := l.LoadFile(path); err != nil {
			return Config{}, err
		}
	}
	return l.Unmarshal()
}

// Logger builds a console logger writing to w at the configured level.
func (c Log) Logger(w io.Writer) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return nil, errors.Wrapf(err, "log level %q", c.Level)
	}

	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), level)
	return zap.New(core), nil
}
