package cli

import (
	"bytes"
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"customer-contract-portal/internal/platform/config"
	"customer-contract-portal/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "portal", cmd.Use)
	assert.NotNil(t, cmd.RunE, "root must serve by default")

	cfgFlag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, cfgFlag)
	assert.Equal(t, "c", cfgFlag.Shorthand)
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()

	for _, name := range []string{"serve", "seed", "version"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestSeedCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	seedCmd, _, err := cmd.Find([]string{"seed"})
	require.NoError(t, err)

	cases := map[string]string{
		"api-url":   "http://localhost:8080",
		"actor":     "seed",
		"seed":      "0",
		"customers": "5",
		"contracts": "10",
		"events":    "20",
		"notes":     "10",
		"actions":   "10",
	}
	for name, def := range cases {
		f := seedCmd.Flags().Lookup(name)
		require.NotNil(t, f, "flag %s", name)
		assert.Equal(t, def, f.DefValue, "flag %s", name)
	}
}

func TestVersionCommand(t *testing.T) {
	old := Version
	Version = "1.2.3"
	t.Cleanup(func() { Version = old })

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "1.2.3\n", out.String())
}

func TestSeedCommand_AgainstServer(t *testing.T) {
	srv := httptest.NewServer(router.NewRouter(router.Options{}))
	defer srv.Close()
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("DB_DSN", "")

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"seed", "--api-url", srv.URL, "--seed", "7",
		"--customers", "2", "--contracts", "2", "--events", "1", "--notes", "1", "--actions", "1"})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Contains(t, out.String(), "seeded 2 customers, 2 contracts, 1 events, 1 notes, 1 actions")
}

func TestOpenStorage(t *testing.T) {
	db, _, err := openStorage(config.Storage{Driver: config.DriverMemory})
	require.NoError(t, err)
	assert.Nil(t, db)

	db, dialect, err := openStorage(config.Storage{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "portal.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	assert.Equal(t, "sqlite", dialect.String())
	require.NoError(t, db.Ping())

	_, _, err = openStorage(config.Storage{Driver: "mongo"})
	assert.Error(t, err)
}
