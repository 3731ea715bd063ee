package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const defaultPath = "."

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port int `json:"port" yaml:"port"`
	} `json:"http" yaml:"http"`

	Mongo *MongoConfig `json:"mongo" yaml:"mongo"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	Token *TokenConfig `json:"token" yaml:"token"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	SMTP *SMTPConfig `json:"smtp" yaml:"smtp"`
}

// MongoConfig defines the connection settings for the document store.
type MongoConfig struct {
	URI      string        `json:"uri" yaml:"uri"`
	Database string        `json:"database" yaml:"database"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
}

// TokenConfig defines the lifetimes of the signed tokens.
type TokenConfig struct {
	AccessTTL  time.Duration `json:"accessTtl" yaml:"accessTtl"`
	RefreshTTL time.Duration `json:"refreshTtl" yaml:"refreshTtl"`
}

// AuthConfig defines credential-related configuration.
type AuthConfig struct {
	BcryptCost        int           `json:"bcryptCost" yaml:"bcryptCost"`
	OTPTTL            time.Duration `json:"otpTtl" yaml:"otpTtl"`
	MinPasswordLength int           `json:"minPasswordLength" yaml:"minPasswordLength"`
}

// SMTPConfig defines the outgoing mail server settings.
type SMTPConfig struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	From     string `json:"from" yaml:"from"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LoadWithEnv loads .yaml files through koanf, overlaying environment variables.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: SECRETKEY_REFRESH -> secretKey.refresh (not secretkey.refresh)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Token == nil {
		cfg.Token = &TokenConfig{}
	}
	if cfg.Token.AccessTTL == 0 {
		cfg.Token.AccessTTL = 15 * time.Minute
	}
	if cfg.Token.RefreshTTL == 0 {
		cfg.Token.RefreshTTL = 7 * 24 * time.Hour
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = 10
	}
	if cfg.Auth.OTPTTL == 0 {
		cfg.Auth.OTPTTL = 15 * time.Minute
	}
	if cfg.Auth.MinPasswordLength == 0 {
		cfg.Auth.MinPasswordLength = 8
	}

	if cfg.Mongo != nil && cfg.Mongo.Timeout == 0 {
		cfg.Mongo.Timeout = 10 * time.Second
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
