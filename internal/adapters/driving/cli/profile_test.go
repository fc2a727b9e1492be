package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/aroma-cli/internal/core/domain"
)

func TestProfileCmd_HasSubcommands(t *testing.T) {
	var names []string
	for _, cmd := range profileCmd.Commands() {
		names = append(names, cmd.Name())
	}
	assert.ElementsMatch(t, []string{"list", "get", "delete"}, names)
}

func TestProfileListCmd_Empty(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand("profile", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "No profiles stored.")
}

func TestProfileListCmd_AfterFetch(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand("fetch", "https://shop.test/robusto")
	require.NoError(t, err)

	out, err := executeCommand("profile", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "Title: Test Robusto")
	assert.Contains(t, out, "Total: 1 profiles")
}

func TestProfileGetCmd(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	rec, err := ts.profiles.Fetch(context.Background(), "https://shop.test/robusto")
	require.NoError(t, err)

	out, err := executeCommand("profile", "get", rec.ID)

	require.NoError(t, err)
	assert.Contains(t, out, "Profile: "+rec.ID)
	assert.Contains(t, out, `Digits:   211 (rub "f")`)
}

func TestProfileGetCmd_JSON(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	rec, err := ts.profiles.Fetch(context.Background(), "https://shop.test/robusto")
	require.NoError(t, err)

	out, err := executeCommand("profile", "get", rec.ID, "--json")

	require.NoError(t, err)
	assert.Contains(t, out, `"id": "`+rec.ID+`"`)
	assert.Contains(t, out, `"votes": 3`)
}

func TestProfileGetCmd_NotFound(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand("profile", "get", "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProfileDeleteCmd(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	rec, err := ts.profiles.Fetch(context.Background(), "https://shop.test/robusto")
	require.NoError(t, err)

	out, err := executeCommand("profile", "delete", rec.ID)

	require.NoError(t, err)
	assert.Contains(t, out, "Deleted profile: "+rec.ID)

	_, err = ts.store.Get(context.Background(), rec.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProfileDeleteCmd_NotFound(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand("profile", "delete", "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProfileListCmd_ServiceNotConfigured(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	profileService = nil

	_, err := executeCommand("profile", "list")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "profile service not configured")
}
