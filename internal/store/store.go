// Package store provides loading and saving of the category rule document.
//
// The document is a single JSON object mapping category names to keyword
// lists. Key order is significant: the categorizer evaluates rules in stored
// order and the first match wins, so the store preserves document order on
// both load and save instead of round-tripping through a Go map.
package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"bankstmt/internal/logging"
	"bankstmt/internal/models"
	"bankstmt/internal/parsererror"
)

// CategoryStore owns the in-memory rule set and its durable JSON document.
// Persistence is a whole-document overwrite on every mutation; access is
// never concurrent (single-threaded session model), so there is no locking.
type CategoryStore struct {
	path   string
	logger logging.Logger
	rules  []models.CategoryRule
}

// NewCategoryStore creates a store bound to the given document path. The
// in-memory rule set starts with only the reserved "Uncategorized" category;
// Load replaces it if a document exists on disk.
func NewCategoryStore(path string, logger logging.Logger) *CategoryStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &CategoryStore{
		path:   path,
		logger: logger,
		rules:  defaultRules(),
	}
}

func defaultRules() []models.CategoryRule {
	return []models.CategoryRule{{Name: models.CategoryUncategorized}}
}

// Load reads the rule document from disk, overwriting the in-memory defaults.
// A missing document is not an error: the defaults stand until the first save.
func (s *CategoryStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.WithField("file", s.path).Debug("No category document found, using defaults")
			return nil
		}
		return &parsererror.StoreError{Path: s.path, Op: "read", Err: err}
	}

	rules, err := decodeOrdered(data)
	if err != nil {
		return &parsererror.StoreError{Path: s.path, Op: "parse", Err: err}
	}

	s.rules = ensureReserved(rules)
	s.logger.WithField("file", s.path).Debug("Loaded category rules",
		logging.Field{Key: "categories", Value: len(s.rules)})
	return nil
}

// Save writes the full rule set to disk, creating parent directories as
// needed. Last writer wins if the file were ever shared between processes.
func (s *CategoryStore) Save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &parsererror.StoreError{Path: s.path, Op: "mkdir", Err: err}
	}

	data, err := encodeOrdered(s.rules)
	if err != nil {
		return &parsererror.StoreError{Path: s.path, Op: "encode", Err: err}
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return &parsererror.StoreError{Path: s.path, Op: "write", Err: err}
	}

	s.logger.WithField("file", s.path).Debug("Saved category rules",
		logging.Field{Key: "categories", Value: len(s.rules)})
	return nil
}

// Rules returns the rule set in stored order. Callers must treat the result
// as read-only; mutations go through AddCategory and AddKeyword.
func (s *CategoryStore) Rules() []models.CategoryRule {
	return s.rules
}

// Has reports whether a category with the given name exists.
func (s *CategoryStore) Has(name string) bool {
	_, ok := s.find(name)
	return ok
}

// Rule returns the named category rule and whether it exists.
func (s *CategoryStore) Rule(name string) (models.CategoryRule, bool) {
	rule, ok := s.find(name)
	if !ok {
		return models.CategoryRule{}, false
	}
	return *rule, true
}

// AddCategory appends a new category with an empty keyword set. It returns
// false without mutating when the name already exists.
func (s *CategoryStore) AddCategory(name string) bool {
	if s.Has(name) {
		return false
	}
	s.rules = append(s.rules, models.CategoryRule{Name: name})
	return true
}

// AddKeyword appends a keyword to an existing category. A missing category is
// an invariant violation surfaced as UnknownCategoryError.
func (s *CategoryStore) AddKeyword(name, keyword string) error {
	rule, ok := s.find(name)
	if !ok {
		return &parsererror.UnknownCategoryError{Category: name}
	}
	rule.Keywords = append(rule.Keywords, keyword)
	return nil
}

func (s *CategoryStore) find(name string) (*models.CategoryRule, bool) {
	for i := range s.rules {
		if s.rules[i].Name == name {
			return &s.rules[i], true
		}
	}
	return nil, false
}

// ensureReserved guarantees the reserved category exists even when a
// hand-edited document dropped it.
func ensureReserved(rules []models.CategoryRule) []models.CategoryRule {
	for _, r := range rules {
		if r.Name == models.CategoryUncategorized {
			return rules
		}
	}
	return append(defaultRules(), rules...)
}

// decodeOrdered parses the JSON object token by token so that document order
// survives; json.Unmarshal into a map would lose it.
func decodeOrdered(data []byte) ([]models.CategoryRule, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected JSON object, got %v", tok)
	}

	var rules []models.CategoryRule
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("reading category name: %w", err)
		}
		name, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected category name, got %v", keyTok)
		}

		var keywords []string
		if err := dec.Decode(&keywords); err != nil {
			return nil, fmt.Errorf("reading keywords for '%s': %w", name, err)
		}

		rules = append(rules, models.CategoryRule{Name: name, Keywords: keywords})
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("reading document end: %w", err)
	}

	return rules, nil
}

// encodeOrdered renders the rule set as a JSON object in stored order.
func encodeOrdered(rules []models.CategoryRule) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("{\n")

	for i, rule := range rules {
		name, err := json.Marshal(rule.Name)
		if err != nil {
			return nil, err
		}

		keywords := rule.Keywords
		if keywords == nil {
			keywords = []string{}
		}
		list, err := json.Marshal(keywords)
		if err != nil {
			return nil, err
		}

		buf.WriteString("  ")
		buf.Write(name)
		buf.WriteString(": ")
		buf.Write(list)
		if i < len(rules)-1 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
	}

	buf.WriteString("}\n")
	return buf.Bytes(), nil
}
