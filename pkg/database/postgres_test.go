package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/article-api/pkg/config"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.DatabaseConfig{
		Host:     "db",
		Port:     5433,
		User:     "cms",
		Password: "secret",
		Name:     "articles",
		SSLMode:  "disable",
	})
	assert.Equal(t, "host=db port=5433 user=cms password=secret dbname=articles sslmode=disable", dsn)
}
