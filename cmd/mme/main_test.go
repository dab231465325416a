package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/L-P/mme/config"
	"github.com/L-P/mme/internal/testutil"
)

func TestApplyArgs(t *testing.T) {
	cfg := config.AppConfig{ROM: config.ROMConfig{Path: "/from/env.z64"}}
	applyArgs(&cfg, nil)
	assert.Equal(t, "/from/env.z64", cfg.ROM.Path)

	applyArgs(&cfg, []string{"/from/args.z64"})
	assert.Equal(t, "/from/args.z64", cfg.ROM.Path)
}

func TestRun_RequiresROM(t *testing.T) {
	cfg := config.AppConfig{Services: "api,ui"}
	err := run(context.Background(), testutil.DiscardLogger(), &cfg, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ROM path is required")
}

func TestRun_InvalidServices(t *testing.T) {
	cfg := config.AppConfig{Services: "scheduler"}
	err := run(context.Background(), testutil.DiscardLogger(), &cfg, []string{"mm.z64"})
	require.Error(t, err)
}
