// Common test helpers
package handlers

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/meghashyamc/finder/config"
	"github.com/meghashyamc/finder/db/kvdb"
	"github.com/meghashyamc/finder/logger"
	"github.com/meghashyamc/finder/services/recents"
	"github.com/meghashyamc/finder/validation"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

var defaultTestRequestHeaders = map[string]string{"Content-Type": "application/json"}

// testFiles are created under the temporary root of every test server. An empty
// value with a trailing slash creates a folder.
var testFiles = map[string]string{
	"Report.docx":       "quarterly report",
	"report_old.docx":   "old report",
	"Reports/":          "",
	"Reports/inner.txt": "nested file",
	"xyz.txt":           "unrelated",
}

type testCase struct {
	name             string
	requestHeaders   map[string]string
	requestBody      map[string]any
	queryParams      map[string]string
	expectedStatus   int
	expectedResponse map[string]any
}

type testServer struct {
	router  *gin.Engine
	root    string
	home    string
	recents *recents.Service
}

func newTestLogger() logger.Logger {

	opts := &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	}
	handler := slog.NewJSONHandler(os.Stderr, opts)
	return slog.New(handler)
}

func setupTestServer(t *testing.T, assert *require.Assertions) *testServer {

	t.Setenv("ENV", "test")
	t.Setenv("KVDB_PATH", filepath.Join(t.TempDir(), "kv.db"))

	cfg, err := config.Load()
	assert.NoError(err, "could not load config")

	root := t.TempDir()
	for relPath, content := range testFiles {
		fullPath := filepath.Join(root, relPath)
		if relPath[len(relPath)-1] == '/' {
			assert.NoError(os.MkdirAll(fullPath, 0755), "could not create test folder")
			continue
		}
		err := os.MkdirAll(filepath.Dir(fullPath), 0755)
		assert.NoError(err, "could not create test sub-directory")
		err = os.WriteFile(fullPath, []byte(content), 0644)
		assert.NoError(err, "could not write test file")
	}

	testLogger := newTestLogger()

	kvDB, err := kvdb.New(testLogger, cfg)
	assert.NoError(err, "could not create kv database")
	t.Cleanup(func() {
		assert.NoError(kvDB.Close(), "could not close kv database")
	})

	validator, err := validation.New(testLogger)
	assert.NoError(err, "could not create validator")

	recentsService := recents.New(testLogger, kvDB, cfg.GetRecentsLimit())
	fs := afero.NewOsFs()
	home := t.TempDir()

	gin.SetMode(gin.TestMode)
	router := gin.New()

	SetupDirectory(router, testLogger, fs, recentsService, validator)
	SetupItems(router, testLogger, fs, validator)
	SetupSidebar(router, testLogger, fs, home)
	SetupRecents(router, testLogger, recentsService, validator)

	return &testServer{router: router, root: root, home: home, recents: recentsService}
}

func makeTestHTTPRequest(router *gin.Engine, assert *require.Assertions, method string, endpoint string, headers map[string]string, requestBodyMap map[string]interface{}, queryParams map[string]string) *httptest.ResponseRecorder {

	var err error
	w := httptest.NewRecorder()

	if len(queryParams) > 0 {
		values := url.Values{}
		for key, value := range queryParams {
			values.Set(key, value)
		}
		endpoint = endpoint + "?" + values.Encode()
	}
	var jsonBody []byte
	var req *http.Request
	if requestBodyMap != nil {
		jsonBody, err = json.Marshal(requestBodyMap)
		assert.NoError(err)
	}

	slog.Info("Making test request", "method", method, "endpoint", endpoint, "headers", headers, "body", string(jsonBody))

	if len(jsonBody) > 0 {
		req, err = http.NewRequest(method, endpoint, bytes.NewBuffer(jsonBody))
	} else {
		req, err = http.NewRequest(method, endpoint, nil)
	}
	assert.NoError(err)

	for key, value := range headers {
		req.Header.Set(key, value)
	}
	router.ServeHTTP(w, req)

	return w
}

// decodeResponse unmarshals the response envelope into a generic map.
func decodeResponse(assert *require.Assertions, w *httptest.ResponseRecorder) map[string]any {
	var responseMap map[string]any
	assert.NoError(json.Unmarshal(w.Body.Bytes(), &responseMap), "response was %s", w.Body.String())
	return responseMap
}

func responseEntries(assert *require.Assertions, w *httptest.ResponseRecorder) []map[string]any {
	data, ok := decodeResponse(assert, w)["data"].([]any)
	assert.True(ok, "expected a list in data, got %s", w.Body.String())

	entries := make([]map[string]any, 0, len(data))
	for _, item := range data {
		entries = append(entries, item.(map[string]any))
	}
	return entries
}
