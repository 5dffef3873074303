package mcp_test

import (
	"testing"

	mcpadapter "github.com/ccwkit/ccwkit/internal/adapters/inbound/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCCWKitMCPServer(t *testing.T) {
	s := mcpadapter.NewCCWKitMCPServer("")
	require.NotNil(t, s)
}

func TestMCPServerHasTools(t *testing.T) {
	s := mcpadapter.NewCCWKitMCPServer("")
	require.NotNil(t, s)

	tools := s.ListTools()
	require.NotNil(t, tools)

	expectedTools := []string{
		"ccwkit_score",
		"ccwkit_resolve_profile",
		"ccwkit_get_catalog",
		"ccwkit_validate_catalog",
	}

	for _, name := range expectedTools {
		_, exists := tools[name]
		assert.True(t, exists, "tool %q should be registered", name)
	}

	assert.Len(t, tools, len(expectedTools), "should have exactly %d tools", len(expectedTools))
}
