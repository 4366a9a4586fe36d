// Package database provides a Postgres-backed ent client for integration
// tests.
package database

import (
	"testing"

	"github.com/regsentry/regsentry/pkg/database"
	"github.com/regsentry/regsentry/test/util"
)

// NewTestClient creates a test database client.
// In CI (when CI_DATABASE_URL is set): connects to the external PostgreSQL
// service container. In local dev: spins up a testcontainer. The schema and
// connections are cleaned up when the test ends.
func NewTestClient(t *testing.T) *database.Client {
	entClient, db := util.SetupTestDatabase(t)
	return database.NewClientFromEnt(entClient, db)
}
