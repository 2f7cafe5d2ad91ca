package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Reference source kinds accepted by ASSETFLOW_REFERENCE_SOURCE.
const (
	ReferenceSourceHTTP     = "http"
	ReferenceSourceS3       = "s3"
	ReferenceSourceFile     = "file"
	ReferenceSourceEmbedded = "embedded"
)

const referenceBaseURL = "https://ppl-ai-code-interpreter-files.s3.amazonaws.com/web/direct-files/6b85444de6c311fec8c69b6156829b05/bca54c81-611a-42a6-9424-5a8df0113778/"

// Config captures the runtime configuration for the AssetFlow backend.
type Config struct {
	AppPort      int
	LogLevel     string
	LogFormat    string
	WriteTimeout time.Duration

	PageSize    int
	SearchDelay time.Duration

	Reference   ReferenceConfig
	ObjectStore ObjectStoreConfig
	Archive     ArchiveConfig
	RateLimit   RateLimitConfig
}

// ReferenceConfig selects where the startup reference tables come from.
type ReferenceConfig struct {
	Source  string
	Timeout time.Duration

	LicensesURL            string
	AssetSourcesURL        string
	ComplianceChecklistURL string
	ContentCategoriesURL   string

	// Dir is read by the file source, Prefix by the s3 source.
	Dir    string
	Prefix string
}

// ObjectStoreConfig points at the S3-compatible bucket used for reference
// documents and library archives. An empty bucket disables both.
type ObjectStoreConfig struct {
	Bucket        string
	Region        string
	Endpoint      string
	PublicBaseURL string
	ArchivePrefix string
}

// Enabled reports whether a bucket has been configured.
func (c ObjectStoreConfig) Enabled() bool {
	return strings.TrimSpace(c.Bucket) != ""
}

// ArchiveConfig sizes the background export uploader.
type ArchiveConfig struct {
	QueueSize int
	Workers   int
	Timeout   time.Duration
}

// RateLimitConfig bounds mutating requests per client address.
type RateLimitConfig struct {
	Requests int
	Window   time.Duration
	Burst    int
	TTL      time.Duration
}

// Load reads configuration from environment variables, applying defaults that
// work for local development.
func Load() (Config, error) {
	cfg := Config{
		AppPort:      getInt("ASSETFLOW_PORT", 8080),
		LogLevel:     getString("ASSETFLOW_LOG_LEVEL", "info"),
		LogFormat:    getString("ASSETFLOW_LOG_FORMAT", "json"),
		WriteTimeout: getDuration("ASSETFLOW_WRITE_TIMEOUT", 10*time.Second),
		PageSize:     getInt("ASSETFLOW_PAGE_SIZE", 12),
		SearchDelay:  getDuration("ASSETFLOW_SEARCH_DELAY", time.Second),
		Reference: ReferenceConfig{
			Source:                 strings.ToLower(getString("ASSETFLOW_REFERENCE_SOURCE", ReferenceSourceHTTP)),
			Timeout:                getDuration("ASSETFLOW_REFERENCE_TIMEOUT", 10*time.Second),
			AssetSourcesURL:        getString("ASSETFLOW_REFERENCE_ASSET_SOURCES_URL", referenceBaseURL+"af6e68be.json"),
			LicensesURL:            getString("ASSETFLOW_REFERENCE_LICENSES_URL", referenceBaseURL+"c9514689.json"),
			ComplianceChecklistURL: getString("ASSETFLOW_REFERENCE_CHECKLIST_URL", referenceBaseURL+"8ed92916.json"),
			ContentCategoriesURL:   getString("ASSETFLOW_REFERENCE_CATEGORIES_URL", referenceBaseURL+"543daa15.json"),
			Dir:                    getString("ASSETFLOW_REFERENCE_DIR", "reference"),
			Prefix:                 getString("ASSETFLOW_REFERENCE_PREFIX", "reference"),
		},
		ObjectStore: ObjectStoreConfig{
			Bucket:        getString("ASSETFLOW_S3_BUCKET", ""),
			Region:        getString("ASSETFLOW_S3_REGION", "us-east-1"),
			Endpoint:      getString("ASSETFLOW_S3_ENDPOINT", ""),
			PublicBaseURL: getString("ASSETFLOW_S3_PUBLIC_BASE_URL", ""),
			ArchivePrefix: getString("ASSETFLOW_S3_ARCHIVE_PREFIX", "exports"),
		},
		Archive: ArchiveConfig{
			QueueSize: getInt("ASSETFLOW_ARCHIVE_QUEUE_SIZE", 16),
			Workers:   getInt("ASSETFLOW_ARCHIVE_WORKERS", 1),
			Timeout:   getDuration("ASSETFLOW_ARCHIVE_TIMEOUT", 30*time.Second),
		},
		RateLimit: RateLimitConfig{
			Requests: getInt("ASSETFLOW_RATE_LIMIT_REQUESTS", 30),
			Window:   getDuration("ASSETFLOW_RATE_LIMIT_WINDOW", time.Minute),
			Burst:    getInt("ASSETFLOW_RATE_LIMIT_BURST", 10),
			TTL:      getDuration("ASSETFLOW_RATE_LIMIT_TTL", 5*time.Minute),
		},
	}

	if cfg.PageSize <= 0 {
		cfg.PageSize = 12
	}
	if cfg.SearchDelay < 0 {
		cfg.SearchDelay = 0
	}

	return cfg, nil
}

func getString(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return i
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
