package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/tempconv/internal/domain"
	"gopkg.in/yaml.v3"
)

// conversionRecord is the structured form of one conversion.
type conversionRecord struct {
	FromScale string  `json:"from_scale" yaml:"from_scale" toml:"from_scale"`
	ToScale   string  `json:"to_scale" yaml:"to_scale" toml:"to_scale"`
	From      float64 `json:"from" yaml:"from" toml:"from"`
	To        float64 `json:"to" yaml:"to" toml:"to"`
}

// conversionDocument wraps records so every format has a top-level table.
type conversionDocument struct {
	Conversions []conversionRecord `json:"conversions" yaml:"conversions" toml:"conversions"`
}

func newConversionDocument(rows []domain.Conversion) conversionDocument {
	doc := conversionDocument{Conversions: make([]conversionRecord, 0, len(rows))}
	for _, row := range rows {
		doc.Conversions = append(doc.Conversions, conversionRecord{
			From:      round2(row.From.Degrees),
			FromScale: row.From.Scale.String(),
			To:        round2(row.To.Degrees),
			ToScale:   row.To.Scale.String(),
		})
	}
	return doc
}

// writeConversions encodes rows in a structured format.
func writeConversions(w io.Writer, format string, rows []domain.Conversion) error {
	doc := newConversionDocument(rows)

	switch format {
	case domain.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case domain.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case domain.FormatTOML:
		return toml.NewEncoder(w).Encode(doc)
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownFormat, format)
	}
}

// round2 rounds to the two decimals shown in text output.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
