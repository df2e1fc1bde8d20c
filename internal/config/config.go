package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Paths  PathsConfig
	Server ServerConfig
	DB     DBConfig
	S3     S3Config
	CORS   CORSConfig
	Seed   SeedConfig
}

// PathsConfig locates the raw dataset and the generated artifacts.
// File names are resolved against DataDir.
type PathsConfig struct {
	DataDir string `mapstructure:"data_dir"`
	Input   string `mapstructure:"input"`
	Cleaned string `mapstructure:"cleaned"`
	Map     string `mapstructure:"map"`
	CSV     string `mapstructure:"csv"`
	XLSX    string `mapstructure:"xlsx"`
}

func (p *PathsConfig) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(p.DataDir, name)
}

// InputPath returns the path of the raw pincode dataset.
func (p *PathsConfig) InputPath() string { return p.resolve(p.Input) }

// CleanedPath returns the path of the deduplicated list artifact.
func (p *PathsConfig) CleanedPath() string { return p.resolve(p.Cleaned) }

// MapPath returns the path of the pincode map artifact.
func (p *PathsConfig) MapPath() string { return p.resolve(p.Map) }

// CSVPath returns the path of the CSV export.
func (p *PathsConfig) CSVPath() string { return p.resolve(p.CSV) }

// XLSXPath returns the path of the spreadsheet export.
func (p *PathsConfig) XLSXPath() string { return p.resolve(p.XLSX) }

// OutputPath returns the artifact path for a pipeline mode ("list" or "map").
func (p *PathsConfig) OutputPath(mode string) string {
	if mode == "map" {
		return p.MapPath()
	}
	return p.CleanedPath()
}

// Artifacts returns every generated artifact path, in generation order.
func (p *PathsConfig) Artifacts() []string {
	return []string{p.CleanedPath(), p.MapPath(), p.CSVPath(), p.XLSXPath()}
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// S3Config holds AWS S3 settings for artifact uploads.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	Prefix        string `mapstructure:"prefix"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// SeedConfig holds database seeding settings.
type SeedConfig struct {
	BatchSize int `mapstructure:"batch_size"`
}

// Load reads configuration from environment variables with the NEXGEN_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("NEXGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Path defaults, relative to the working directory
	v.SetDefault("paths.data_dir", "data")
	v.SetDefault("paths.input", "pincode.json")
	v.SetDefault("paths.cleaned", "pincode_cleaned.json")
	v.SetDefault("paths.map", "pincode_map.json")
	v.SetDefault("paths.csv", "pincode_cleaned.csv")
	v.SetDefault("paths.xlsx", "pincode_cleaned.xlsx")

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "nexgen")
	v.SetDefault("db.password", "nexgen_secret")
	v.SetDefault("db.name", "nexgen_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 10)
	v.SetDefault("db.max_idle", 5)

	// S3 defaults
	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "nexgen-data")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.prefix", "pincodes/")
	v.SetDefault("s3.presign_expiry", 3600)

	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	v.SetDefault("seed.batch_size", 500)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"paths.data_dir":       "NEXGEN_PATHS_DATA_DIR",
		"paths.input":          "NEXGEN_PATHS_INPUT",
		"paths.cleaned":        "NEXGEN_PATHS_CLEANED",
		"paths.map":            "NEXGEN_PATHS_MAP",
		"paths.csv":            "NEXGEN_PATHS_CSV",
		"paths.xlsx":           "NEXGEN_PATHS_XLSX",
		"server.port":          "NEXGEN_SERVER_PORT",
		"server.read_timeout":  "NEXGEN_SERVER_READ_TIMEOUT",
		"server.write_timeout": "NEXGEN_SERVER_WRITE_TIMEOUT",
		"server.environment":   "NEXGEN_SERVER_ENVIRONMENT",
		"db.host":              "NEXGEN_DB_HOST",
		"db.port":              "NEXGEN_DB_PORT",
		"db.user":              "NEXGEN_DB_USER",
		"db.password":          "NEXGEN_DB_PASSWORD",
		"db.name":              "NEXGEN_DB_NAME",
		"db.sslmode":           "NEXGEN_DB_SSLMODE",
		"db.max_open":          "NEXGEN_DB_MAX_OPEN",
		"db.max_idle":          "NEXGEN_DB_MAX_IDLE",
		"s3.region":            "NEXGEN_S3_REGION",
		"s3.bucket":            "NEXGEN_S3_BUCKET",
		"s3.endpoint":          "NEXGEN_S3_ENDPOINT",
		"s3.access_key":        "NEXGEN_S3_ACCESS_KEY",
		"s3.secret_key":        "NEXGEN_S3_SECRET_KEY",
		"s3.prefix":            "NEXGEN_S3_PREFIX",
		"s3.presign_expiry":    "NEXGEN_S3_PRESIGN_EXPIRY",
		"cors.allowed_origins": "NEXGEN_CORS_ALLOWED_ORIGINS",
		"seed.batch_size":      "NEXGEN_SEED_BATCH_SIZE",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	cfg.Paths = PathsConfig{
		DataDir: v.GetString("paths.data_dir"),
		Input:   v.GetString("paths.input"),
		Cleaned: v.GetString("paths.cleaned"),
		Map:     v.GetString("paths.map"),
		CSV:     v.GetString("paths.csv"),
		XLSX:    v.GetString("paths.xlsx"),
	}

	// Railway/Heroku/Render set a PORT env var. Use it if NEXGEN_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("NEXGEN_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		Prefix:        v.GetString("s3.prefix"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	batchSize := v.GetInt("seed.batch_size")
	if batchSize <= 0 {
		return nil, fmt.Errorf("seed.batch_size must be positive, got %d", batchSize)
	}
	cfg.Seed = SeedConfig{BatchSize: batchSize}

	return cfg, nil
}
