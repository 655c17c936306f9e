package main

import (
	"campus-route-service/internal/adapters/cache"
	"campus-route-service/internal/adapters/distance"
	"campus-route-service/internal/adapters/matrix"
	"campus-route-service/internal/adapters/repositories"
	"campus-route-service/internal/adapters/taxonomy"
	"campus-route-service/internal/api"
	"campus-route-service/internal/config"
	"campus-route-service/internal/platform/db"
	"campus-route-service/internal/ports"
	"campus-route-service/internal/services"
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It picks the matrix source from the environment, loads the first planner
// snapshot and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal(err)
	}

	tuning, err := config.LoadTuning(cfg.TuningPath)
	if err != nil {
		log.Fatal(err)
	}

	source, closeSource, err := buildSource(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer closeSource()

	var tax ports.TaxonomySource
	if cfg.TaxonomyPath != "" {
		tax = taxonomy.NewCSVTaxonomySource(cfg.TaxonomyPath)
	}

	store := services.NewPlannerStore(source, tax, services.PlannerOptions{
		Tuning:        tuning,
		Taxonomy:      services.DefaultTaxonomy(),
		DisplaySuffix: cfg.DisplaySuffix,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	err = store.Reload(ctx)
	cancel()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.ReloadSchedule != "" {
		if err := store.Schedule(cfg.ReloadSchedule); err != nil {
			log.Fatal(err)
		}
		defer store.Stop()
	}

	router := api.NewRouter(store)

	log.Printf("Server listening addr=:%s source=%s", cfg.Port, cfg.MatrixSource)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// buildSource returns the configured matrix source and a cleanup func for
// any database it opened.
func buildSource(cfg config.Config) (ports.MatrixSource, func(), error) {
	noop := func() {}

	switch cfg.MatrixSource {
	case "csv":
		return matrix.NewCSVMatrixSource(cfg.MatrixPath), noop, nil

	case "xlsx":
		return matrix.NewXLSXMatrixSource(cfg.MatrixPath, cfg.XLSXSheet), noop, nil

	case "sql":
		conn, _, err := openDB(cfg)
		if err != nil {
			return nil, noop, err
		}
		return repositories.NewSQLMatrixRepository(conn), func() { conn.Close() }, nil

	case "google":
		names, err := matrix.LoadLocationNames(cfg.LocationsPath)
		if err != nil {
			return nil, noop, err
		}

		// The distance cache is optional; without a database every load
		// goes to the API.
		var distanceCache ports.DistanceCache
		cleanup := noop
		if cfg.DatabaseURL != "" {
			conn, dialect, err := openDB(cfg)
			if err != nil {
				return nil, noop, err
			}
			if err := repositories.InitSchema(context.Background(), conn); err != nil {
				conn.Close()
				return nil, noop, err
			}
			distanceCache = cache.NewSQLDistanceCache(conn, dialect)
			cleanup = func() { conn.Close() }
		}

		src, err := distance.NewGoogleMatrixSource(cfg.GoogleAPIKey, names, cfg.AddressSuffix, distanceCache)
		if err != nil {
			cleanup()
			return nil, noop, err
		}
		return src, cleanup, nil
	}

	return nil, noop, fmt.Errorf("build source: unsupported matrix source %q", cfg.MatrixSource)
}

func openDB(cfg config.Config) (*sql.DB, db.Dialect, error) {
	dialect, err := db.ParseDialect(cfg.DBDriver)
	if err != nil {
		return nil, 0, err
	}

	conn, err := db.Open(dialect, cfg.DatabaseURL)
	if err != nil {
		return nil, 0, err
	}
	return conn, dialect, nil
}
