package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg := FromEnv()
	assert.Equal(t, ":3000", cfg.Addr)
	assert.Equal(t, StoreMemory, cfg.Store)
	assert.Equal(t, "http://localhost:3000", cfg.APIURL)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("FABLE_ADDR", ":9999")
	t.Setenv("FABLE_STORE", StoreMongo)
	t.Setenv("MONGODB_URI", "mongodb://db.example:27017")

	cfg := FromEnv()
	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, StoreMongo, cfg.Store)
	assert.Equal(t, "mongodb://db.example:27017", cfg.MongoURI)
}
