package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock-quote-bot/internal/infrastructure/config"
)

func unreachableConfig() *config.Config {
	return &config.Config{
		Database: config.DatabaseConfig{
			Host:         "127.0.0.1",
			Port:         1,
			User:         "bot",
			Name:         "quotes",
			SSLMode:      "disable",
			Enabled:      true,
			MaxOpenConns: 1,
			MaxIdleConns: 1,
		},
	}
}

func TestDatabaseService_StartFailsOnUnreachableHost(t *testing.T) {
	ds := NewDatabaseService(unreachableConfig())
	assert.Equal(t, StateStopped, ds.State())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := ds.Start(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to ping database")
	assert.Equal(t, StateError, ds.State())
	assert.Nil(t, ds.GetDB())

	require.NoError(t, ds.Stop())
}
