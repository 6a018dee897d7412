package output

import (
	"fmt"

	"github.com/benplan/benplan/internal/domain"
)

// Formatter renders a bundle response for one output medium.
type Formatter interface {
	Format(resp *domain.BundleResponse) (string, error)
}

// NewFormatter returns the formatter for a --format flag value.
func NewFormatter(format string) (Formatter, error) {
	switch format {
	case "table", "":
		return &TableFormatter{}, nil
	case "json":
		return &JSONFormatter{Pretty: true}, nil
	case "csv":
		return &CSVFormatter{}, nil
	}
	return nil, fmt.Errorf("unknown output format %q (expected table, json, or csv)", format)
}
