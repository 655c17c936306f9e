package main

import (
	"campus-route-service/internal/adapters/matrix"
	"campus-route-service/internal/adapters/repositories"
	"campus-route-service/internal/config"
	"campus-route-service/internal/domain"
	"campus-route-service/internal/platform/db"
	"context"
	"database/sql"
	"log"
	"path/filepath"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// dbtool creates the schema and loads a CSV or XLSX matrix into the
// database so the server can run with MATRIX_SOURCE=sql.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := config.Get("DATABASE_URL", "")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	dialect, err := db.ParseDialect(config.Get("DB_DRIVER", "pgx"))
	if err != nil {
		log.Fatal(err)
	}

	conn, err := db.Open(dialect, databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	matrixPath := config.Get("MATRIX_PATH", "data/campus_matrix.csv")
	m, err := loadMatrix(matrixPath, config.Get("XLSX_SHEET", ""))
	if err != nil {
		log.Fatal(err)
	}

	if err := initAndSeed(conn, dialect, m); err != nil {
		log.Fatal(err)
	}
}

func loadMatrix(path, sheet string) (*domain.DistanceMatrix, error) {
	ctx := context.Background()
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return matrix.NewXLSXMatrixSource(path, sheet).LoadMatrix(ctx)
	}
	return matrix.NewCSVMatrixSource(path).LoadMatrix(ctx)
}

func initAndSeed(conn *sql.DB, dialect db.Dialect, m *domain.DistanceMatrix) error {
	ctx := context.Background()

	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Printf("Seeding matrix locations=%d...", m.Size())
	if err := repositories.SeedMatrix(ctx, conn, dialect, m); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")

	return nil
}
