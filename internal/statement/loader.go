// Package statement composes the load pipeline: clean the raw export,
// normalize it into typed transactions and categorize them against the
// current rule set.
package statement

import (
	"fmt"
	"os"

	"bankstmt/internal/categorizer"
	"bankstmt/internal/cleaner"
	"bankstmt/internal/logging"
	"bankstmt/internal/models"
	"bankstmt/internal/normalizer"
)

// Loader runs the full statement load pipeline. The pipeline is
// all-or-nothing: a failure at any stage returns an error and no partial
// transaction set.
type Loader struct {
	categorizer *categorizer.Categorizer
	logger      logging.Logger
}

// NewLoader creates a Loader using the given categorizer.
func NewLoader(cat *categorizer.Categorizer, logger logging.Logger) *Loader {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Loader{
		categorizer: cat,
		logger:      logger,
	}
}

// Load runs clean, normalize and categorize over one raw export.
func (l *Loader) Load(raw []byte) (*models.TransactionSet, error) {
	cleaned, headerIndex, err := cleaner.Clean(raw, l.logger)
	if err != nil {
		return nil, err
	}

	set, err := normalizer.Normalize(cleaned, headerIndex, l.logger)
	if err != nil {
		return nil, err
	}

	l.categorizer.Categorize(set)
	return set, nil
}

// LoadFile reads and loads a statement export from disk.
func (l *Loader) LoadFile(path string) (*models.TransactionSet, error) {
	l.logger.WithField("file", path).Info("Loading statement file")

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading statement file: %w", err)
	}

	return l.Load(raw)
}
