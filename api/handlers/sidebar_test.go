package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHandleSidebar(t *testing.T) {
	assert := require.New(t)
	server := setupTestServer(t, assert)
	assert.NoError(os.Mkdir(filepath.Join(server.home, "Dropbox"), 0755))

	w := makeTestHTTPRequest(server.router, assert, http.MethodGet, "/sidebar", nil, nil, nil)
	assert.Equal(http.StatusOK, w.Code)

	locations := responseEntries(assert, w)
	assert.Len(locations, 9)
	assert.Equal(map[string]any{"name": "Home", "path": server.home}, locations[0])
	assert.Equal(map[string]any{"name": "Dropbox", "path": filepath.Join(server.home, "Dropbox")}, locations[8])
}
