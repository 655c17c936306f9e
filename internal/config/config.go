package config

import (
	"campus-route-service/internal/services"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Get returns the environment value for key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Config is the process configuration assembled from the environment.
type Config struct {
	Port           string `validate:"required,numeric"`
	MatrixSource   string `validate:"oneof=csv xlsx sql google"`
	MatrixPath     string `validate:"required_if=MatrixSource csv,required_if=MatrixSource xlsx"`
	XLSXSheet      string
	DBDriver       string `validate:"oneof=pgx postgres postgresql mysql mariadb sqlite sqlite3"`
	DatabaseURL    string `validate:"required_if=MatrixSource sql"`
	TuningPath     string
	TaxonomyPath   string
	ReloadSchedule string
	GoogleAPIKey   string `validate:"required_if=MatrixSource google"`
	LocationsPath  string `validate:"required_if=MatrixSource google"`
	AddressSuffix  string
	DisplaySuffix  string
}

// FromEnv reads the configuration. Call godotenv.Load first to pick up .env.
func FromEnv() (Config, error) {
	cfg := Config{
		Port:           Get("PORT", "8080"),
		MatrixSource:   strings.ToLower(Get("MATRIX_SOURCE", "csv")),
		MatrixPath:     Get("MATRIX_PATH", "data/campus_matrix.csv"),
		XLSXSheet:      Get("XLSX_SHEET", ""),
		DBDriver:       strings.ToLower(Get("DB_DRIVER", "sqlite")),
		DatabaseURL:    Get("DATABASE_URL", ""),
		TuningPath:     Get("TUNING_PATH", ""),
		TaxonomyPath:   Get("TAXONOMY_PATH", ""),
		ReloadSchedule: Get("RELOAD_SCHEDULE", ""),
		GoogleAPIKey:   Get("GOOGLE_MAPS_API_KEY", ""),
		LocationsPath:  Get("LOCATIONS_PATH", ""),
		AddressSuffix:  os.Getenv("ADDRESS_SUFFIX"),
		DisplaySuffix:  os.Getenv("DISPLAY_SUFFIX"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// LoadTuning overlays a YAML file onto the default engine tuning. An empty
// path returns the defaults unchanged.
func LoadTuning(path string) (services.Tuning, error) {
	t := services.DefaultTuning()
	if path == "" {
		return t, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return services.Tuning{}, fmt.Errorf("load tuning: read %q: %w", path, err)
	}

	if err := ParseTuning(b, &t); err != nil {
		return services.Tuning{}, fmt.Errorf("load tuning %q: %w", path, err)
	}
	return t, nil
}

// ParseTuning decodes YAML into t, keeping fields the document omits, and
// validates the result.
func ParseTuning(b []byte, t *services.Tuning) error {
	if err := yaml.Unmarshal(b, t); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}
	if err := validator.New().Struct(t); err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	return nil
}
