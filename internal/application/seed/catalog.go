package seed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jhoicas/asoadmin-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// ReadCatalog lee un catálogo CSV "nombre;créditos" (una cabecera opcional).
// charset "latin1" decodifica archivos exportados en ISO-8859-1; cualquier otro valor se trata como UTF-8.
func ReadCatalog(r io.Reader, charset string) ([]CatalogItem, error) {
	switch strings.ToLower(strings.TrimSpace(charset)) {
	case "latin1", "iso-8859-1", "iso8859-1":
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}

	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true

	var (
		items []CatalogItem
		seen  = make(map[string]bool)
		line  int
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("catálogo: %w", err)
		}
		line++
		name := strings.TrimSpace(rec[0])
		credits, err := decimal.NewFromString(strings.TrimSpace(strings.ReplaceAll(rec[1], ",", ".")))
		if err != nil {
			if line == 1 {
				continue // cabecera
			}
			return nil, fmt.Errorf("catálogo línea %d: créditos inválidos %q", line, rec[1])
		}
		if name == "" {
			return nil, fmt.Errorf("catálogo línea %d: nombre vacío", line)
		}
		if credits.LessThan(entity.MinCredits) || credits.GreaterThan(entity.MaxCredits) {
			return nil, fmt.Errorf("catálogo línea %d: créditos fuera de rango (%s)", line, credits)
		}
		key := strings.ToLower(name)
		if seen[key] {
			return nil, fmt.Errorf("catálogo línea %d: producto duplicado %q", line, name)
		}
		seen[key] = true
		items = append(items, CatalogItem{Name: name, Credits: credits})
	}
	return items, nil
}
