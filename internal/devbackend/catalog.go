// Package devbackend serves the PartSync HTTP contract from a local SQLite
// catalog, for development and tests. Recommendations are a plain filter and
// sort over the catalog GPUs.
package devbackend

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mark3labs/partsync/internal/hardware"
	_ "modernc.org/sqlite" // SQLite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS cpu (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	brand TEXT,
	model TEXT,
	cores INTEGER,
	threads INTEGER,
	tdp REAL,
	performance_score REAL
);

CREATE TABLE IF NOT EXISTS psu (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	wattage INTEGER NOT NULL,
	connector_6_pin INTEGER,
	connector_8_pin INTEGER,
	connector_12_pin INTEGER
);

CREATE TABLE IF NOT EXISTS motherboard (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	chipset TEXT,
	pcie_version TEXT
);

CREATE TABLE IF NOT EXISTS gpu (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	brand TEXT,
	vram INTEGER,
	tdp REAL,
	pcie_version TEXT,
	performance_score REAL,
	price REAL
);
`

// ErrInvalidItem is returned when a new catalog item lacks its required
// first field.
var ErrInvalidItem = errors.New("invalid item")

// Catalog is the hardware database.
type Catalog struct {
	db *sql.DB
}

// OpenCatalog opens or creates the database at path. The path ":memory:"
// gives a private in-memory catalog.
func OpenCatalog(path string) (*Catalog, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// every pooled connection to :memory: would see its own database
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &Catalog{db: db}, nil
}

// Close closes the database.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// Count returns the number of items of a kind.
func (c *Catalog) Count(kind hardware.Kind) (int, error) {
	var n int
	// kind names are a closed set and double as table names
	if err := c.db.QueryRow("SELECT COUNT(*) FROM " + kind.String()).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", kind, err)
	}
	return n, nil
}

// ListItems returns every row of a kind with its id and form fields.
func (c *Catalog) ListItems(kind hardware.Kind) ([]map[string]any, error) {
	cols := append([]string{"id"}, kind.Fields()...)
	rows, err := c.db.Query(fmt.Sprintf("SELECT %s FROM %s ORDER BY id", strings.Join(cols, ", "), kind))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", kind, err)
	}
	defer rows.Close()

	items := []map[string]any{}
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", kind, err)
		}
		item := make(map[string]any, len(cols))
		for i, col := range cols {
			item[col] = vals[i]
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// AddItem inserts an item of a kind. Unknown fields are ignored and blank
// values are stored as NULL. The kind's first field is required.
func (c *Catalog) AddItem(kind hardware.Kind, fields map[string]string) (int64, error) {
	cols := kind.Fields()
	if len(cols) == 0 {
		return 0, fmt.Errorf("%w: unknown hardware type %q", ErrInvalidItem, kind)
	}
	if strings.TrimSpace(fields[cols[0]]) == "" {
		return 0, fmt.Errorf("%w: %s is required", ErrInvalidItem, cols[0])
	}

	args := make([]any, len(cols))
	marks := make([]string, len(cols))
	for i, col := range cols {
		marks[i] = "?"
		if v := strings.TrimSpace(fields[col]); v != "" {
			args[i] = v
		}
	}

	res, err := c.db.Exec(fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		kind, strings.Join(cols, ", "), strings.Join(marks, ", ")), args...)
	if err != nil {
		return 0, fmt.Errorf("failed to insert %s: %w", kind, err)
	}
	return res.LastInsertId()
}

// CPU is a processor row including its benchmark score.
type CPU struct {
	hardware.CPU
	Score float64
}

// ListCPUs returns the processors in id order.
func (c *Catalog) ListCPUs() ([]CPU, error) {
	rows, err := c.db.Query(`SELECT id, name, brand, cores, tdp, performance_score FROM cpu ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query cpus: %w", err)
	}
	defer rows.Close()

	cpus := []CPU{}
	for rows.Next() {
		var (
			cpu               CPU
			brand             sql.NullString
			cores, tdp, score sql.NullFloat64
		)
		if err := rows.Scan(&cpu.ID, &cpu.Name, &brand, &cores, &tdp, &score); err != nil {
			return nil, fmt.Errorf("failed to scan cpu: %w", err)
		}
		cpu.Brand = brand.String
		cpu.Cores = hardware.Number(cores.Float64)
		cpu.TDP = hardware.Number(tdp.Float64)
		cpu.Score = score.Float64
		cpus = append(cpus, cpu)
	}
	return cpus, rows.Err()
}

// GPU is a graphics card row.
type GPU struct {
	ID          int64
	Name        string
	Brand       string
	VRAM        float64
	TDP         float64
	PCIeVersion string
	Score       float64
	Price       float64
}

// ListGPUs returns the graphics cards in id order.
func (c *Catalog) ListGPUs() ([]GPU, error) {
	rows, err := c.db.Query(`SELECT id, name, brand, vram, tdp, pcie_version, performance_score, price FROM gpu ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query gpus: %w", err)
	}
	defer rows.Close()

	var gpus []GPU
	for rows.Next() {
		var (
			g                       GPU
			brand, pcie             sql.NullString
			vram, tdp, score, price sql.NullFloat64
		)
		if err := rows.Scan(&g.ID, &g.Name, &brand, &vram, &tdp, &pcie, &score, &price); err != nil {
			return nil, fmt.Errorf("failed to scan gpu: %w", err)
		}
		g.Brand, g.PCIeVersion = brand.String, pcie.String
		g.VRAM, g.TDP, g.Score, g.Price = vram.Float64, tdp.Float64, score.Float64, price.Float64
		gpus = append(gpus, g)
	}
	return gpus, rows.Err()
}
