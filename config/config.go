package config

import (
	"os"
	"path/filepath"
	"slices"
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

const (
	defaultPath               = "."
	envPrefix                 = "PLANNER_"
	defaultMaxRequestBodySize = "10MB"
	defaultHTTPPort           = 8088
	defaultDashboardOrigin    = "http://localhost:3000"

	defaultAPIBaseURL = "http://localhost:5000"
	defaultAPITimeout = 30 * time.Second

	defaultSessionPath = "./data/session.db"
	defaultProfileTTL  = 5 * time.Minute
	defaultSignInRoute = "/auth/sign-in"
	defaultHomeRoute   = "/dashboard"

	defaultUnreadInterval = 30 * time.Second

	defaultRateLimitRPS   = 10
	defaultRateLimitBurst = 20

	defaultQRCodeSize    = 256
	defaultQRCodeLevel   = "M"
	defaultQRCodeBaseURL = "http://localhost:3000"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP HTTPConfig `json:"http" yaml:"http"`

	// API describes the remote wedding-planning REST API every call goes to
	API APIConfig `json:"api" yaml:"api"`

	// Session configures the local token and profile cache
	Session SessionConfig `json:"session" yaml:"session"`

	// Poller configures the background unread-count poll
	Poller PollerConfig `json:"poller" yaml:"poller"`

	// RateLimit applies to the dashboard companion server
	RateLimit RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	// QRCode configuration for RSVP link QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type HTTPConfig struct {
	Port               int    `json:"port" yaml:"port"`
	MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
	// AllowedOrigins are the browser origins that may call the server cross-site.
	AllowedOrigins []string `json:"allowedOrigins" yaml:"allowedOrigins"`
	Timeouts       struct {
		ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
		ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
		WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
		IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
	} `json:"timeouts" yaml:"timeouts"`
}

// APIConfig defines how the remote API is reached
type APIConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// SessionConfig defines the persistent session cache
type SessionConfig struct {
	// Path of the SQLite file that holds the cached token and profile
	Path string `json:"path" yaml:"path"`

	// ProfileTTL is how long a cached profile is served without asking the API again
	ProfileTTL time.Duration `json:"profileTTL" yaml:"profileTTL"`

	// EncryptionKey seals the bearer token at rest when set
	EncryptionKey string `json:"encryptionKey" yaml:"encryptionKey"`

	SignInRoute string `json:"signInRoute" yaml:"signInRoute"`
	HomeRoute   string `json:"homeRoute" yaml:"homeRoute"`
}

// PollerConfig defines the unread notification poll
type PollerConfig struct {
	// Disabled turns the poll off; it runs by default.
	Disabled       bool          `json:"disabled" yaml:"disabled"`
	UnreadInterval time.Duration `json:"unreadInterval" yaml:"unreadInterval"`
}

// RateLimitConfig defines the per-client token bucket of the dashboard server
type RateLimitConfig struct {
	RPS   float64 `json:"rps" yaml:"rps"`
	Burst int     `json:"burst" yaml:"burst"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	// BaseURL is the public site that serves /rsvp/<token>
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

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

	// A missing file is fine for a client: defaults and env vars still apply.
	if found {
		if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "read %s config failed", currEnv)
		}
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(k, v string) (string, any) {
			// PLANNER_API_BASEURL -> api.baseUrl, aligned with existing YAML keys.
			key := canonicalizeEnvKey(strings.TrimPrefix(k, envPrefix), existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
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
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = defaultHTTPPort
	}
	cfg.HTTP.AllowedOrigins = slices.DeleteFunc(cfg.HTTP.AllowedOrigins, func(o string) bool {
		return strings.TrimSpace(o) == ""
	})
	if len(cfg.HTTP.AllowedOrigins) == 0 {
		cfg.HTTP.AllowedOrigins = []string{defaultDashboardOrigin}
	}
	if cfg.Env.Log.Level == "" {
		cfg.Env.Log.Level = "info"
	}

	if strings.TrimSpace(cfg.API.BaseURL) == "" {
		cfg.API.BaseURL = defaultAPIBaseURL
	}
	cfg.API.BaseURL = strings.TrimRight(cfg.API.BaseURL, "/")
	if cfg.API.Timeout <= 0 {
		cfg.API.Timeout = defaultAPITimeout
	}

	if cfg.Session.Path == "" {
		cfg.Session.Path = defaultSessionPath
	}
	if cfg.Session.ProfileTTL <= 0 {
		cfg.Session.ProfileTTL = defaultProfileTTL
	}
	if cfg.Session.SignInRoute == "" {
		cfg.Session.SignInRoute = defaultSignInRoute
	}
	if cfg.Session.HomeRoute == "" {
		cfg.Session.HomeRoute = defaultHomeRoute
	}

	if cfg.Poller.UnreadInterval <= 0 {
		cfg.Poller.UnreadInterval = defaultUnreadInterval
	}

	if cfg.RateLimit.RPS <= 0 {
		cfg.RateLimit.RPS = defaultRateLimitRPS
	}
	if cfg.RateLimit.Burst <= 0 {
		cfg.RateLimit.Burst = defaultRateLimitBurst
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Size <= 0 {
		cfg.QRCode.Size = defaultQRCodeSize
	}
	if cfg.QRCode.ErrorCorrectionLevel == "" {
		cfg.QRCode.ErrorCorrectionLevel = defaultQRCodeLevel
	}
	if cfg.QRCode.BaseURL == "" {
		cfg.QRCode.BaseURL = defaultQRCodeBaseURL
	}
	cfg.QRCode.BaseURL = strings.TrimRight(cfg.QRCode.BaseURL, "/")
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
