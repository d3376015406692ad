package database

import (
	"testing"

	"sitesearch/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDBSQLiteMemory(t *testing.T) {
	db, err := InitDB(&config.Config{DBDriver: "sqlite", DBPath: ":memory:"})
	require.NoError(t, err)
	defer db.Close()

	var one int
	require.NoError(t, db.DB.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
}

func TestInitDBRequiresURL(t *testing.T) {
	for _, driver := range []string{"postgres", "mysql"} {
		_, err := InitDB(&config.Config{DBDriver: driver})
		assert.Error(t, err, driver)
	}
}

func TestInitDBUnknownDriver(t *testing.T) {
	_, err := InitDB(&config.Config{DBDriver: "oracle"})
	assert.ErrorContains(t, err, "unsupported database driver")
}
