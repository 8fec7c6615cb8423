package integration

import (
	"sync"
	"testing"

	"skillswap_backend/test/helpers"
)

var (
	serverOnce sync.Once
	server     *helpers.TestServer
	serverErr  error
)

// GetTestServer returns the shared test server. Tests run against a single
// database, so they isolate themselves through unique users and categories.
func GetTestServer(t *testing.T) *helpers.TestServer {
	t.Helper()

	serverOnce.Do(func() {
		server, serverErr = helpers.NewTestServer()
	})
	if serverErr != nil {
		t.Fatalf("failed to start test server: %v", serverErr)
	}
	return server
}
