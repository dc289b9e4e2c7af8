// cmd/seed/main.go
package main

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/chesters/restock-backend/internal/domain"
)

type ctxKey string

const dbKey ctxKey = "db"

func newDBURLFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "db-url",
		Usage:    "Database connection string",
		Required: true,
		EnvVars:  []string{"DATABASE_URL"},
	}
}

// nullIfEmpty returns NULL if the string is empty, otherwise returns the string
func nullIfEmpty(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func initDB(c *cli.Context) error {
	db, err := sql.Open("pgx", c.String("db-url"))
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	c.Context = context.WithValue(c.Context, dbKey, db)
	return nil
}

func closeDB(c *cli.Context) error {
	if db, ok := c.Context.Value(dbKey).(*sql.DB); ok && db != nil {
		return db.Close()
	}
	return nil
}

func dbFrom(c *cli.Context) *sql.DB {
	db, _ := c.Context.Value(dbKey).(*sql.DB)
	return db
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: could not load .env file: %v", err)
	}

	app := &cli.App{
		Name:  "seed",
		Usage: "Create and seed the restock database",
		Flags: []cli.Flag{
			newDBURLFlag(),
		},
		Commands: []*cli.Command{
			{
				Name:   "schema",
				Usage:  "Create the items, categories, suppliers and inventory_counts tables",
				Flags:  []cli.Flag{newDBURLFlag()},
				Before: initDB,
				After:  closeDB,
				Action: runSchema,
			},
			{
				Name:   "master",
				Usage:  "Seed the default categories and suppliers",
				Flags:  []cli.Flag{newDBURLFlag()},
				Before: initDB,
				After:  closeDB,
				Action: runMaster,
			},
			{
				Name:  "items",
				Usage: "Import items from a CSV file",
				Flags: []cli.Flag{
					newDBURLFlag(),
					&cli.StringFlag{
						Name:     "file",
						Usage:    "CSV file with item rows",
						Required: true,
					},
				},
				Before: initDB,
				After:  closeDB,
				Action: runItems,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id   TEXT PRIMARY KEY,
		name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS suppliers (
		id      TEXT PRIMARY KEY,
		name    TEXT NOT NULL,
		contact TEXT NOT NULL DEFAULT '',
		phone   TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS items (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		category    TEXT NOT NULL REFERENCES categories(id),
		supplier    TEXT REFERENCES suppliers(id),
		unit        TEXT NOT NULL DEFAULT '',
		location    TEXT NOT NULL DEFAULT '',
		week_par    DOUBLE PRECISION NOT NULL,
		weekend_par DOUBLE PRECISION NOT NULL,
		threshold   DOUBLE PRECISION NOT NULL,
		daily_usage DOUBLE PRECISION NOT NULL,
		cost        DOUBLE PRECISION NOT NULL DEFAULT 0,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS inventory_counts (
		id         BIGSERIAL PRIMARY KEY,
		item_id    TEXT NOT NULL REFERENCES items(id) ON DELETE CASCADE,
		count      DOUBLE PRECISION NOT NULL,
		counted_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		counted_by TEXT NOT NULL DEFAULT 'Unknown'
	)`,
	`CREATE INDEX IF NOT EXISTS idx_inventory_counts_item_time
		ON inventory_counts (item_id, counted_at DESC)`,
}

func runSchema(c *cli.Context) error {
	db := dbFrom(c)
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(c.Context, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	log.Println("schema created")
	return nil
}

var defaultCategories = []domain.Category{
	{ID: "protein", Name: "Protein"},
	{ID: "bread", Name: "Bread"},
	{ID: "dairy", Name: "Dairy"},
	{ID: "produce", Name: "Produce"},
	{ID: "frozen", Name: "Frozen"},
	{ID: "dry-goods-dry", Name: "Dry Goods: Dry"},
	{ID: "dry-goods-cans", Name: "Dry Goods: Cans"},
	{ID: "dry-goods-liquids", Name: "Dry Goods: Liquids"},
	{ID: "dry-goods-spices", Name: "Dry Goods: Spices/Herbs"},
	{ID: "dry-goods-servers", Name: "Dry Goods: Servers"},
	{ID: "dry-goods-bar", Name: "Dry Goods: Bar Needs"},
	{ID: "dry-goods-togo", Name: "Dry Goods: TOGO"},
	{ID: "cleaning", Name: "Cleaning Supplies"},
}

var defaultSuppliers = []domain.Supplier{
	{ID: "supplier1", Name: "Main Distributor"},
	{ID: "supplier2", Name: "Produce Supplier"},
	{ID: "supplier3", Name: "Meat Supplier"},
}

func runMaster(c *cli.Context) error {
	db := dbFrom(c)

	for _, cat := range defaultCategories {
		_, err := db.ExecContext(c.Context, `
			INSERT INTO categories (id, name) VALUES ($1, $2)
			ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name
		`, cat.ID, cat.Name)
		if err != nil {
			return fmt.Errorf("failed to seed category %s: %w", cat.ID, err)
		}
	}

	for _, sup := range defaultSuppliers {
		_, err := db.ExecContext(c.Context, `
			INSERT INTO suppliers (id, name, contact, phone) VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name
		`, sup.ID, sup.Name, sup.Contact, sup.Phone)
		if err != nil {
			return fmt.Errorf("failed to seed supplier %s: %w", sup.ID, err)
		}
	}

	log.Printf("seeded %d categories and %d suppliers", len(defaultCategories), len(defaultSuppliers))
	return nil
}

// runItems imports item rows from a CSV with the header:
// id,name,category,supplier,unit,location,week_par,weekend_par,threshold,daily_usage,cost
func runItems(c *cli.Context) error {
	f, err := os.Open(c.String("file"))
	if err != nil {
		return fmt.Errorf("failed to open CSV: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("failed to read CSV header: %w", err)
	}
	if len(header) < 11 {
		return fmt.Errorf("unexpected CSV header, want 11 columns, got %d", len(header))
	}

	db := dbFrom(c)
	line := 1
	imported := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read CSV record: %w", err)
		}
		line++

		item, err := itemFromRecord(record)
		if err != nil {
			log.Printf("line %d skipped: %v", line, err)
			continue
		}
		if err := item.Validate(); err != nil {
			log.Printf("line %d skipped: %v", line, err)
			continue
		}

		_, err = db.ExecContext(c.Context, `
			INSERT INTO items (
				id, name, category, supplier, unit, location,
				week_par, weekend_par, threshold, daily_usage, cost
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				category = EXCLUDED.category,
				supplier = EXCLUDED.supplier,
				unit = EXCLUDED.unit,
				location = EXCLUDED.location,
				week_par = EXCLUDED.week_par,
				weekend_par = EXCLUDED.weekend_par,
				threshold = EXCLUDED.threshold,
				daily_usage = EXCLUDED.daily_usage,
				cost = EXCLUDED.cost,
				updated_at = NOW()
		`, item.ID, item.Name, item.Category, nullIfEmpty(item.Supplier), item.Unit, item.Location,
			item.WeekPar, item.WeekendPar, item.Threshold, item.DailyUsage, item.Cost)
		if err != nil {
			return fmt.Errorf("failed to insert item %s: %w", item.ID, err)
		}
		imported++
	}

	log.Printf("imported %d items", imported)
	return nil
}

func itemFromRecord(record []string) (*domain.Item, error) {
	if len(record) < 11 {
		return nil, fmt.Errorf("want 11 columns, got %d", len(record))
	}

	item := &domain.Item{
		ID:       record[0],
		Name:     record[1],
		Category: record[2],
		Supplier: record[3],
		Unit:     record[4],
		Location: record[5],
	}

	numerics := []struct {
		name  string
		value string
		dst   *float64
	}{
		{"week_par", record[6], &item.WeekPar},
		{"weekend_par", record[7], &item.WeekendPar},
		{"threshold", record[8], &item.Threshold},
		{"daily_usage", record[9], &item.DailyUsage},
		{"cost", record[10], &item.Cost},
	}
	for _, n := range numerics {
		if n.name == "cost" && n.value == "" {
			continue
		}
		v, err := strconv.ParseFloat(n.value, 64)
		if err != nil {
			return nil, fmt.Errorf("item %s: invalid %s %q", item.ID, n.name, n.value)
		}
		*n.dst = v
	}

	return item, nil
}
