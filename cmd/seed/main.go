// seed genera el script SQL para poblar el catálogo de medicamentos a partir
// de un CSV con columnas: name,category,controlled,stock,min_stock,unit,price,description.
//
// Uso: go run ./cmd/seed [ruta/medicamentos.csv]
// Por defecto busca medicamentos.csv en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_medications.sql
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type medRow struct {
	name        string
	category    string
	controlled  bool
	stock       int64
	minStock    int64
	unit        string
	price       string
	description string
}

func main() {
	csvPath := "medicamentos.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}
	if len(records) < 2 {
		fmt.Fprintln(os.Stderr, "CSV vacío o sin filas de datos")
		os.Exit(1)
	}

	// Primera fila: cabecera
	var meds []medRow
	for i, rec := range records[1:] {
		if len(rec) < 8 {
			fmt.Fprintf(os.Stderr, "Fila %d: se esperaban 8 columnas, hay %d\n", i+2, len(rec))
			os.Exit(1)
		}
		stock, err := strconv.ParseInt(strings.TrimSpace(rec[3]), 10, 64)
		if err != nil || stock < 0 {
			fmt.Fprintf(os.Stderr, "Fila %d: stock inválido %q\n", i+2, rec[3])
			os.Exit(1)
		}
		minStock, err := strconv.ParseInt(strings.TrimSpace(rec[4]), 10, 64)
		if err != nil || minStock < 0 {
			fmt.Fprintf(os.Stderr, "Fila %d: min_stock inválido %q\n", i+2, rec[4])
			os.Exit(1)
		}
		price := strings.TrimSpace(rec[6])
		if _, err := strconv.ParseFloat(price, 64); err != nil {
			fmt.Fprintf(os.Stderr, "Fila %d: precio inválido %q\n", i+2, rec[6])
			os.Exit(1)
		}
		meds = append(meds, medRow{
			name:        strings.TrimSpace(rec[0]),
			category:    strings.TrimSpace(rec[1]),
			controlled:  parseBool(rec[2]),
			stock:       stock,
			minStock:    minStock,
			unit:        strings.TrimSpace(rec[5]),
			price:       price,
			description: strings.TrimSpace(rec[7]),
		})
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_medications.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Catálogo inicial de medicamentos\n")
	out.WriteString("-- Generado desde " + filepath.Base(csvPath) + "\n\n")
	out.WriteString("INSERT INTO medications (id, name, category, controlled, stock, min_stock, unit, price, description)\nVALUES\n")
	for i, m := range meds {
		sep := ","
		if i == len(meds)-1 {
			sep = ""
		}
		fmt.Fprintf(out, "  (gen_random_uuid(), '%s', '%s', %t, %d, %d, '%s', %s, '%s')%s\n",
			escapeSQL(m.name), escapeSQL(m.category), m.controlled,
			m.stock, m.minStock, escapeSQL(m.unit), m.price, escapeSQL(m.description), sep)
	}
	out.WriteString("ON CONFLICT (name) DO UPDATE SET\n")
	out.WriteString("  category = EXCLUDED.category,\n")
	out.WriteString("  controlled = EXCLUDED.controlled,\n")
	out.WriteString("  min_stock = EXCLUDED.min_stock,\n")
	out.WriteString("  unit = EXCLUDED.unit,\n")
	out.WriteString("  price = EXCLUDED.price,\n")
	out.WriteString("  description = EXCLUDED.description;\n")

	fmt.Printf("Generado %s: %d medicamentos\n", outPath, len(meds))
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "t", "1", "si", "sí", "yes":
		return true
	default:
		return false
	}
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
