// import_leads genera un script SQL para poblar la tabla de leads a partir de
// un export XML legado de prospectos (codificado en ISO-8859-1).
//
// Uso: go run ./cmd/import_leads <org_id> [ruta/Prospectos.xml]
// Por defecto busca Prospectos.xml en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_leads.sql
package main

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type prospectos struct {
	Registros []prospecto `xml:"prospecto"`
}

type prospecto struct {
	Nombres   string `xml:"nombres,attr"`
	Apellidos string `xml:"apellidos,attr"`
	Empresa   string `xml:"empresa,attr"`
	Email     string `xml:"email,attr"`
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Uso: import_leads <org_id> [ruta/Prospectos.xml]")
		os.Exit(1)
	}
	orgID := os.Args[1]
	if _, err := uuid.Parse(orgID); err != nil {
		fmt.Fprintf(os.Stderr, "org_id inválido: %v\n", err)
		os.Exit(1)
	}

	xmlPath := "Prospectos.xml"
	if len(os.Args) > 2 {
		xmlPath = os.Args[2]
	}
	f, err := os.Open(xmlPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir XML: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	var p prospectos
	dec := xml.NewDecoder(f)
	dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		if strings.EqualFold(charset, "ISO-8859-1") || strings.EqualFold(charset, "ISO8859-1") {
			return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
		}
		return input, nil
	}
	if err := dec.Decode(&p); err != nil {
		fmt.Fprintf(os.Stderr, "Decodificar XML: %v\n", err)
		os.Exit(1)
	}

	var valid []prospecto
	for _, r := range p.Registros {
		// Apellidos es el único campo obligatorio de un lead
		if strings.TrimSpace(r.Apellidos) == "" {
			continue
		}
		valid = append(valid, r)
	}
	if len(valid) == 0 {
		fmt.Fprintln(os.Stderr, "El XML no contiene prospectos con apellidos")
		os.Exit(1)
	}

	// Ruta del script de salida (relativa al módulo)
	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_leads.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Leads importados del sistema legado de prospectos\n")
	out.WriteString("-- Generado desde Prospectos.xml (export ISO-8859-1)\n\n")
	out.WriteString("INSERT INTO leads (id, org_id, first_name, last_name, company, email) VALUES\n")
	for i, r := range valid {
		company := strings.TrimSpace(r.Empresa)
		if company == "" {
			company = strings.TrimSpace(r.Apellidos) + " Co."
		}
		fmt.Fprintf(out, "  ('%s', '%s', '%s', '%s', '%s', '%s')",
			uuid.New().String(), orgID,
			escapeSQL(strings.TrimSpace(r.Nombres)),
			escapeSQL(strings.TrimSpace(r.Apellidos)),
			escapeSQL(company),
			escapeSQL(strings.TrimSpace(r.Email)))
		if i < len(valid)-1 {
			out.WriteString(",\n")
		} else {
			out.WriteString("\n")
		}
	}
	out.WriteString("ON CONFLICT (id) DO NOTHING;\n")

	fmt.Printf("Generado %s: %d leads\n", outPath, len(valid))
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
