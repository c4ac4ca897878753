package types

import (
	"testing"

	"github.com/killallgit/searchpro-api/internal/services/search"
	"github.com/stretchr/testify/assert"
)

func TestDependencies(t *testing.T) {
	deps := &Dependencies{}

	// Test that we can create empty dependencies
	assert.NotNil(t, deps)
	assert.Nil(t, deps.SearchHandler)
	assert.Empty(t, deps.Provider.BaseURL)
}

func TestSearchHandlerSatisfiesEventHandler(t *testing.T) {
	var h EventHandler = search.NewHandler(nil)
	assert.NotNil(t, h)
}
