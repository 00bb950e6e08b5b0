package migrations

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscover(t *testing.T) {
	fsys := fstest.MapFS{
		"002_indexes.sql": {Data: []byte("CREATE INDEX ...")},
		"001_init.sql":    {Data: []byte("CREATE TABLE ...")},
		"README.md":       {Data: []byte("notes")},
		"seed/003_x.sql":  {Data: []byte("ignored, nested")},
	}

	got, err := Discover(fsys)
	require.NoError(t, err)
	assert.Equal(t, []Migration{
		{Version: "001", Name: "001_init.sql"},
		{Version: "002", Name: "002_indexes.sql"},
	}, got)
}

func TestDiscover_RejectsBadNames(t *testing.T) {
	_, err := Discover(fstest.MapFS{"init.sql": {}})
	assert.ErrorContains(t, err, "<version>_<name>.sql")

	_, err = Discover(fstest.MapFS{"001_a.sql": {}, "001_b.sql": {}})
	assert.ErrorContains(t, err, "share version 001")
}

func TestDiscover_RepositoryMigrations(t *testing.T) {
	got, err := Discover(Files)
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, "001", got[0].Version)
}
