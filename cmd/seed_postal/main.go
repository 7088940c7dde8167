// seed_postal genera la tabla embebida de códigos postales (pkg/postal/table.go)
// a partir del CSV oficial de 472/DANE (codigo;municipio;departamento).
//
// Uso: go run ./cmd/seed_postal [ruta/codigos_postales.csv]
// Por defecto busca codigos_postales.csv en el directorio actual.
// Escribe: pkg/postal/table.go
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

func main() {
	csvPath := "codigos_postales.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	// El CSV oficial viene en ISO-8859-1 (tildes y eñes).
	reader := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	reader.Comma = ';'
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	type place struct{ city, department string }
	table := make(map[string]place)
	for i, rec := range records {
		if i == 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "codigo") {
			continue // cabecera
		}
		if len(rec) < 3 {
			continue
		}
		code := strings.TrimSpace(rec[0])
		city := strings.TrimSpace(rec[1])
		dept := strings.TrimSpace(rec[2])
		if code == "" || city == "" || dept == "" {
			continue
		}
		table[code] = place{city: city, department: dept}
	}

	// Orden estable por código para diffs limpios
	codes := make([]string, 0, len(table))
	for c := range table {
		codes = append(codes, c)
	}
	sort.Strings(codes)

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "pkg", "postal", "table.go")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("// Código generado por cmd/seed_postal a partir del listado de códigos\n")
	out.WriteString("// postales de 472/DANE. No editar a mano; regenerar con:\n")
	out.WriteString("//\n")
	out.WriteString("//\tgo run ./cmd/seed_postal codigos_postales.csv\n")
	out.WriteString("package postal\n\n")
	out.WriteString("// rawTable mapa código postal → municipio y departamento.\n")
	out.WriteString("var rawTable = map[string]Place{\n")
	for _, c := range codes {
		p := table[c]
		fmt.Fprintf(out, "\t%q: {City: %q, Department: %q},\n", c, p.city, p.department)
	}
	out.WriteString("}\n")

	fmt.Printf("Generado %s: %d códigos postales\n", outPath, len(codes))
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
