package mcp_test

import (
	"testing"

	mcpadapter "github.com/abdidvp/easydelivery/internal/adapters/inbound/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEasyDeliveryMCPServer(t *testing.T) {
	s := mcpadapter.NewEasyDeliveryMCPServer("")
	require.NotNil(t, s)
}

func TestMCPServerHasTools(t *testing.T) {
	s := mcpadapter.NewEasyDeliveryMCPServer("")
	require.NotNil(t, s)

	tools := s.ListTools()
	require.NotNil(t, tools)

	expectedTools := []string{
		"easydelivery_build_payload",
		"easydelivery_generate_label",
		"easydelivery_list_attachments",
	}

	for _, name := range expectedTools {
		_, exists := tools[name]
		assert.True(t, exists, "tool %q should be registered", name)
	}

	assert.Len(t, tools, len(expectedTools), "should have exactly %d tools", len(expectedTools))
}
