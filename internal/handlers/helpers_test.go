package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/portretcoach/overdracht-dashboard/internal/repository"
	"github.com/portretcoach/overdracht-dashboard/internal/testutil"
)

func setupDocuments(t *testing.T) *repository.SQLiteDocumentRepository {
	t.Helper()
	return repository.NewDocumentRepository(testutil.NewTestDatabase(t))
}

func formRequest(method, target string, values url.Values) *http.Request {
	request := httptest.NewRequest(method, target, strings.NewReader(values.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return request
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	if err := json.NewDecoder(recorder.Body).Decode(target); err != nil {
		t.Fatalf("decoding response: %v\nbody: %s", err, recorder.Body.String())
	}
}
