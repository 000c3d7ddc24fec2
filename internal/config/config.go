package config

import (
	"context"
	"io/fs"
	"strings"
	"sync"

	"github.com/Zero-1729/volt-sub001/common/errs"
	"github.com/Zero-1729/volt-sub001/pkg/amount"
	"github.com/Zero-1729/volt-sub001/pkg/logger"
	"github.com/Zero-1729/volt-sub001/pkg/logger/slogx"
	"github.com/Zero-1729/volt-sub001/pkg/middleware/requestcontext"
	"github.com/Zero-1729/volt-sub001/pkg/middleware/requestlogger"
	"github.com/Zero-1729/volt-sub001/pkg/pricefeed"
	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultPort     = 8080
	DefaultCurrency = "USD"
	DefaultEnvFile  = ".env"
)

var (
	mu     sync.RWMutex
	config = Default()

	// command line flags by configuration key
	flags = make(map[string]*pflag.Flag)
)

type Config struct {
	Logger     logger.Config    `mapstructure:"logger"`
	HTTPServer HTTPServerConfig `mapstructure:"http_server"`
	Format     amount.Config    `mapstructure:"format"`
	Pricefeed  PricefeedConfig  `mapstructure:"pricefeed"`
}

type HTTPServerConfig struct {
	Port      int                               `mapstructure:"port"`
	Logger    requestlogger.Config              `mapstructure:"logger"`
	RequestIP requestcontext.WithClientIPConfig `mapstructure:"request_ip"`
}

type PricefeedConfig struct {
	pricefeed.Config `mapstructure:",squash"`

	// Currency is the fiat currency used when a request doesn't name one.
	Currency string `mapstructure:"currency"`
}

// Default returns the configuration used when neither a config file nor the environment sets a value.
func Default() Config {
	return Config{
		Logger: logger.Config{
			Output: "TEXT",
		},
		HTTPServer: HTTPServerConfig{
			Port: DefaultPort,
		},
		Format: amount.DefaultConfig(),
		Pricefeed: PricefeedConfig{
			Config: pricefeed.Config{
				Provider: pricefeed.ProviderMempool,
				BaseURL:  pricefeed.DefaultMempoolURL,
				TTL:      pricefeed.DefaultTTL,
			},
			Currency: DefaultCurrency,
		},
	}
}

// Validate reports the first invalid value of the configuration.
func (c Config) Validate() error {
	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		return errors.Wrapf(errs.InvalidArgument, "http_server.port %d is out of range", c.HTTPServer.Port)
	}
	if _, err := pricefeed.NormalizeCurrency(c.Pricefeed.Currency); err != nil {
		return errors.Wrap(err, "pricefeed.currency")
	}
	return nil
}

// Parse loads the configuration from the `.env` file, the config file, environment variables and bound flags.
// An empty configFile searches for `config.yaml` in the working directory.
func Parse(configFile string) (Config, error) {
	if err := loadEnvFile(DefaultEnvFile); err != nil {
		return Config{}, errors.WithStack(err)
	}

	mu.Lock()
	defer mu.Unlock()

	v := viper.New()
	for key, flag := range flags {
		if err := v.BindPFlag(key, flag); err != nil {
			return Config{}, errors.Wrapf(err, "can't bind flag to %q", key)
		}
	}
	parsed, err := parse(v, configFile)
	if err != nil {
		return Config{}, errors.WithStack(err)
	}
	config = parsed
	return parsed, nil
}

// Load returns the last parsed configuration, or the defaults if [Parse] was never called.
func Load() Config {
	mu.RLock()
	defer mu.RUnlock()
	return config
}

// BindPFlag binds a command line flag to a configuration key. A changed flag overrides every other source.
func BindPFlag(key string, flag *pflag.Flag) {
	if flag == nil {
		logger.Panic("Something went wrong, can't bind undefined flag to config", slogx.String("key", key))
	}
	mu.Lock()
	defer mu.Unlock()
	flags[key] = flag
}

func parse(v *viper.Viper, configFile string) (Config, error) {
	ctx := logger.WithContext(context.Background(), slogx.String("package", "config"))

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath("./")
		v.SetConfigName("config")
	}
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v, Default())

	if err := v.ReadInConfig(); err != nil {
		var errNotFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &errNotFound) {
			return Config{}, errors.Wrap(err, "can't read config file")
		}
		logger.DebugContext(ctx, "Config file not found, use default value")
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return Config{}, errors.Wrap(err, "can't unmarshal config")
	}
	return conf, nil
}

// setDefaults registers every key so environment variables can override keys missing from the config file.
func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("logger.output", c.Logger.Output)
	v.SetDefault("logger.debug", c.Logger.Debug)
	v.SetDefault("http_server.port", c.HTTPServer.Port)
	v.SetDefault("http_server.logger.disable", c.HTTPServer.Logger.Disable)
	v.SetDefault("http_server.logger.slow_threshold", c.HTTPServer.Logger.SlowThreshold)
	v.SetDefault("http_server.request_ip.trusted_proxies_header", c.HTTPServer.RequestIP.TrustedHeader)
	v.SetDefault("format.separator", c.Format.Separator)
	v.SetDefault("format.approx_marker", c.Format.ApproxMarker)
	v.SetDefault("format.suffixes", c.Format.Suffixes)
	v.SetDefault("pricefeed.provider", c.Pricefeed.Provider)
	v.SetDefault("pricefeed.base_url", c.Pricefeed.BaseURL)
	v.SetDefault("pricefeed.ttl", c.Pricefeed.TTL)
	v.SetDefault("pricefeed.debug", c.Pricefeed.Debug)
	v.SetDefault("pricefeed.currency", c.Pricefeed.Currency)
}

// loadEnvFile exports the variables of an env file that are not set yet. A missing file is ignored.
func loadEnvFile(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Wrap(err, "can't load env file")
	}
	return nil
}
