package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/teskilat/backend/internal/server/middleware"
)

// The handler must reject bad documents before the importer runs, so these
// cases need no database.
func TestImportSimulationHandlerRejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantError string
	}{
		{
			name:      "malformed json",
			body:      `{"people": [`,
			wantError: "Invalid request body",
		},
		{
			name:      "unknown relationship type",
			body:      `{"relationships": [{"type": "person-to-planet"}]}`,
			wantError: "Invalid request body",
		},
		{
			name:      "schema violation",
			body:      `{"organizations": [{"_ref": "o1"}]}`,
			wantError: "Validation failed",
		},
		{
			name:      "duplicate refs",
			body:      `{"people": [{"_ref": "x"}, {"_ref": "x"}]}`,
			wantError: "Duplicate _ref keys found",
		},
		{
			name:      "dangling ref",
			body:      `{"people": [{"_ref": "p1"}], "relationships": [{"type": "person-to-person", "source": "p1", "target": "ghost"}]}`,
			wantError: "Dangling _ref references in relationships",
		},
	}

	e := echo.New()
	app := &middleware.App{}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/simulation", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()

			c := e.NewContext(req, rec)
			cc := &middleware.AppContext{Context: c, App: app}

			if err := ImportSimulationHandler(cc); err != nil {
				t.Fatalf("unexpected handler error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("unexpected status: got %d, want %d", rec.Code, http.StatusBadRequest)
			}

			var resp struct {
				Error string `json:"error"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unexpected response body: %v", err)
			}
			if resp.Error != tt.wantError {
				t.Fatalf("unexpected error: got %q, want %q", resp.Error, tt.wantError)
			}
		})
	}
}
