package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasKeyword(t *testing.T) {
	rule := CategoryRule{Name: "Food", Keywords: []string{"ntuc", "fairprice"}}

	assert.True(t, rule.HasKeyword("ntuc"))
	assert.False(t, rule.HasKeyword("NTUC")) // duplicate check is case-sensitive
	assert.False(t, rule.HasKeyword("grab"))

	empty := CategoryRule{Name: CategoryUncategorized}
	assert.False(t, empty.HasKeyword("anything"))
}
