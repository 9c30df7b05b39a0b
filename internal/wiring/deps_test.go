package wiring_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/require"

	"go.trai.ch/footprint/internal/app"
	_ "go.trai.ch/footprint/internal/wiring" // Register providers
)

// TestGraftWiring ensures the whole dependency graph can be constructed.
func TestGraftWiring(t *testing.T) {
	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)
}
