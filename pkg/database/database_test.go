package database

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/simak-api/pkg/config"
)

func TestMySQLDSN(t *testing.T) {
	dsn := MySQLDSN(config.DatabaseConfig{Host: "db", Port: 3306, User: "siakad", Password: "secret", Name: "simak"})
	assert.True(t, strings.HasPrefix(dsn, "siakad:secret@tcp(db:3306)/simak?"))
	assert.Contains(t, dsn, "parseTime=true")
}

func TestBuilderPlaceholders(t *testing.T) {
	query, _, err := Builder(config.DriverMySQL).Select("1").From("t").Where("a = ?", 1).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1 FROM t WHERE a = ?", query)

	query, _, err = Builder(config.DriverPostgres).Select("1").From("t").Where("a = ?", 1).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1 FROM t WHERE a = $1", query)
}
