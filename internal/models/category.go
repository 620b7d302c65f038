package models

// CategoryRule associates a category name with the keywords that map
// transactions into it. Keyword matching is case-insensitive substring
// matching against the transaction's reference fields.
type CategoryRule struct {
	Name     string
	Keywords []string
}

// HasKeyword reports whether the rule already contains the keyword
// (case-sensitive exact match, per the duplicate-rejection contract).
func (r CategoryRule) HasKeyword(keyword string) bool {
	for _, kw := range r.Keywords {
		if kw == keyword {
			return true
		}
	}
	return false
}
