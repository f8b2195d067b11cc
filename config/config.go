package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath = "."

	DefaultLocationTimeout   = 10 * time.Second
	DefaultCleanupTimeout    = 30 * time.Second
	DefaultMinPricePerHour   = 0.5
	DefaultMaxPricePerHour   = 500
	DefaultMaxImages         = 5
	DefaultPriceCeiling      = 50
	DefaultDistanceCeilingKm = 10
	DefaultGeocoderTimeout   = 5 * time.Second
	DefaultGeocoderCacheTTL  = 24 * time.Hour
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Enabled  bool   `json:"enabled" yaml:"enabled"`
		Host     string `json:"host" yaml:"host"`
		Port     int    `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout  time.Duration `json:"readTimeout" yaml:"readTimeout"`
			WriteTimeout time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout  time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Firebase configuration for Firestore documents and identity
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Storage configuration for listing images
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// Listings configuration for listing limits and cleanup
	Listings *ListingsConfig `json:"listings" yaml:"listings"`

	// Location configuration for the device location session
	Location *LocationConfig `json:"location" yaml:"location"`

	// Search configuration for default search criteria
	Search *SearchConfig `json:"search" yaml:"search"`

	// QRCode configuration for listing share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines the backend project used for documents and identity
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
	// Web API key used by the identity toolkit endpoints
	APIKey string `json:"apiKey" yaml:"apiKey"`
	// Revoke refresh tokens of the identity when it signs out
	RevokeTokensOnSignOut bool `json:"revokeTokensOnSignOut" yaml:"revokeTokensOnSignOut"`
}

// StorageConfig defines where listing images are stored
type StorageConfig struct {
	// Bucket URL understood by gocloud.dev/blob (gs://, file://, mem://)
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
	// Public URL prefix under which uploaded objects are reachable
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
}

// ListingsConfig defines listing validation limits
type ListingsConfig struct {
	MinPricePerHour float64       `json:"minPricePerHour" yaml:"minPricePerHour"`
	MaxPricePerHour float64       `json:"maxPricePerHour" yaml:"maxPricePerHour"`
	MaxImages       int           `json:"maxImages" yaml:"maxImages"`
	CleanupTimeout  time.Duration `json:"cleanupTimeout" yaml:"cleanupTimeout"`
}

// LocationConfig defines the device location behaviour
type LocationConfig struct {
	// Bound for a single live position read
	Timeout  time.Duration  `json:"timeout" yaml:"timeout"`
	Accuracy string         `json:"accuracy" yaml:"accuracy"`
	Device   DeviceConfig   `json:"device" yaml:"device"`
	Geocoder GeocoderConfig `json:"geocoder" yaml:"geocoder"`
}

// DeviceConfig describes the simulated device used outside a handset
type DeviceConfig struct {
	PermissionGranted  bool     `json:"permissionGranted" yaml:"permissionGranted"`
	CanAskAgain        bool     `json:"canAskAgain" yaml:"canAskAgain"`
	GrantOnRequest     bool     `json:"grantOnRequest" yaml:"grantOnRequest"`
	ServicesEnabled    bool     `json:"servicesEnabled" yaml:"servicesEnabled"`
	Latitude           *float64 `json:"latitude" yaml:"latitude"`
	Longitude          *float64 `json:"longitude" yaml:"longitude"`
	LastKnownLatitude  *float64 `json:"lastKnownLatitude" yaml:"lastKnownLatitude"`
	LastKnownLongitude *float64 `json:"lastKnownLongitude" yaml:"lastKnownLongitude"`
}

// GeocoderConfig defines the reverse/forward geocoding endpoint
type GeocoderConfig struct {
	Enabled   bool          `json:"enabled" yaml:"enabled"`
	BaseURL   string        `json:"baseUrl" yaml:"baseUrl"`
	UserAgent string        `json:"userAgent" yaml:"userAgent"`
	Timeout   time.Duration `json:"timeout" yaml:"timeout"`
	// Public Nominatim allows one request per second
	RequestsPerSecond float64 `json:"requestsPerSecond" yaml:"requestsPerSecond"`
	// Optional redis:// URL caching geocoder answers
	CacheURL string        `json:"cacheUrl" yaml:"cacheUrl"`
	CacheTTL time.Duration `json:"cacheTtl" yaml:"cacheTtl"`
}

// SearchConfig defines the criteria a fresh search starts from
type SearchConfig struct {
	PriceCeiling      float64 `json:"priceCeiling" yaml:"priceCeiling"`
	DistanceCeilingKm float64 `json:"distanceCeilingKm" yaml:"distanceCeilingKm"`
	SortBy            string  `json:"sortBy" yaml:"sortBy"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// LoadWithEnv loads .yaml files through koanf and overlays environment variables.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	configFile, err := findConfigFile(currEnv, configPath...)
	if err != nil {
		return nil, err
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// FIREBASE_APIKEY -> firebase.apiKey, aligned with the keys already present in YAML
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
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

func findConfigFile(currEnv string, configPath ...string) (string, error) {
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("config file %s.yaml not found in any search path", currEnv)
}

func New() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	return cfg, nil
}

// ApplyDefaults fills every optional section so consumers never see a nil section.
func (c *Config) ApplyDefaults() {
	if c.Listings == nil {
		c.Listings = &ListingsConfig{}
	}
	if c.Listings.MinPricePerHour <= 0 {
		c.Listings.MinPricePerHour = DefaultMinPricePerHour
	}
	if c.Listings.MaxPricePerHour <= 0 {
		c.Listings.MaxPricePerHour = DefaultMaxPricePerHour
	}
	if c.Listings.MaxImages <= 0 {
		c.Listings.MaxImages = DefaultMaxImages
	}
	if c.Listings.CleanupTimeout <= 0 {
		c.Listings.CleanupTimeout = DefaultCleanupTimeout
	}

	if c.Location == nil {
		c.Location = &LocationConfig{}
	}
	if c.Location.Timeout <= 0 {
		c.Location.Timeout = DefaultLocationTimeout
	}
	if c.Location.Accuracy == "" {
		c.Location.Accuracy = "balanced"
	}
	if c.Location.Geocoder.Timeout <= 0 {
		c.Location.Geocoder.Timeout = DefaultGeocoderTimeout
	}
	if c.Location.Geocoder.RequestsPerSecond <= 0 {
		c.Location.Geocoder.RequestsPerSecond = 1
	}
	if c.Location.Geocoder.CacheTTL <= 0 {
		c.Location.Geocoder.CacheTTL = DefaultGeocoderCacheTTL
	}

	if c.Search == nil {
		c.Search = &SearchConfig{}
	}
	if c.Search.PriceCeiling <= 0 {
		c.Search.PriceCeiling = DefaultPriceCeiling
	}
	if c.Search.DistanceCeilingKm <= 0 {
		c.Search.DistanceCeilingKm = DefaultDistanceCeilingKm
	}
	if c.Search.SortBy == "" {
		c.Search.SortBy = "distance"
	}

	if c.QRCode == nil {
		c.QRCode = &QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"}
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
