package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewJoyApp_Initializers(t *testing.T) {
	app := NewJoyApp()
	require.NotNil(t, app, "NewJoyApp should not return nil")
}
