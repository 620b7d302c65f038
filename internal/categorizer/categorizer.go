// Package categorizer assigns categories to transactions using the
// user-trainable keyword rule set, and grows that rule set from user
// corrections.
package categorizer

import (
	"strings"

	"bankstmt/internal/logging"
	"bankstmt/internal/models"
	"bankstmt/internal/parsererror"
	"bankstmt/internal/store"
)

// Categorizer matches transactions against the category rule set held by the
// store and persists rule mutations back through it.
type Categorizer struct {
	store  *store.CategoryStore
	logger logging.Logger
}

// NewCategorizer creates a Categorizer backed by the given store.
func NewCategorizer(st *store.CategoryStore, logger logging.Logger) *Categorizer {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Categorizer{
		store:  st,
		logger: logger,
	}
}

// Categorize assigns a category to every transaction in the set. Rules are
// evaluated in stored order and the first matching category wins: a
// transaction claimed by an earlier category is never reassigned by a later
// one. Transactions matching no rule keep "Uncategorized".
func (c *Categorizer) Categorize(set *models.TransactionSet) {
	matched := 0

	for _, rule := range c.store.Rules() {
		if rule.Name == models.CategoryUncategorized || len(rule.Keywords) == 0 {
			continue
		}

		// Lower and trim the keyword list once per category, not per row.
		keywords := make([]string, 0, len(rule.Keywords))
		for _, kw := range rule.Keywords {
			keywords = append(keywords, strings.ToLower(strings.TrimSpace(kw)))
		}

		for i := range set.Transactions {
			tx := &set.Transactions[i]
			if tx.Category != models.CategoryUncategorized {
				continue
			}
			if matchesAny(tx.SearchText(), keywords) {
				tx.Category = rule.Name
				matched++
			}
		}
	}

	c.logger.Info("Categorized transactions",
		logging.Field{Key: "total", Value: set.Len()},
		logging.Field{Key: "matched", Value: matched})
}

// LearnKeyword attaches a keyword to an existing category and persists the
// rule set. The keyword is trimmed first; an empty or exact-duplicate keyword
// is rejected with no mutation and no persistence. Existing transactions are
// not re-categorized.
func (c *Categorizer) LearnKeyword(category, keyword string) (bool, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		c.logger.WithField("category", category).Warn("Rejected empty keyword")
		return false, nil
	}

	rule, ok := c.store.Rule(category)
	if !ok {
		return false, &parsererror.UnknownCategoryError{Category: category}
	}
	if rule.HasKeyword(keyword) {
		c.logger.Warn("Rejected duplicate keyword",
			logging.Field{Key: "category", Value: category},
			logging.Field{Key: "keyword", Value: keyword})
		return false, nil
	}

	if err := c.store.AddKeyword(category, keyword); err != nil {
		return false, err
	}
	if err := c.store.Save(); err != nil {
		return false, err
	}

	c.logger.Info("Learned keyword",
		logging.Field{Key: "category", Value: category},
		logging.Field{Key: "keyword", Value: keyword})
	return true, nil
}

// CreateCategory adds a new category with an empty keyword set and persists
// the rule set. It returns false when the name already exists.
func (c *Categorizer) CreateCategory(name string) (bool, error) {
	if !c.store.AddCategory(name) {
		c.logger.WithField("category", name).Warn("Category already exists")
		return false, nil
	}
	if err := c.store.Save(); err != nil {
		return false, err
	}

	c.logger.WithField("category", name).Info("Created category")
	return true, nil
}

func matchesAny(search string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(search, kw) {
			return true
		}
	}
	return false
}
