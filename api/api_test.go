package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/devfolio/backend/database"
)

func newTestRouter(t *testing.T) (*chi.Mux, database.Database) {
	t.Helper()

	dsn := fmt.Sprintf("file:devfolio-api-%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	currentDB := database.New(db)
	router := chi.NewRouter()
	setupRoutes(router, initializeHandlers(currentDB))
	return router, currentDB
}

func doJSON(t *testing.T, router *chi.Mux, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	request := httptest.NewRequest(method, path, reader)
	if body != "" {
		request.Header.Set("Content-Type", "application/json")
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	var decoded map[string]any
	if recorder.Body.Len() > 0 && strings.HasPrefix(recorder.Body.String(), "{") {
		if err := json.Unmarshal(recorder.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("%s %s: bad response JSON %q: %v", method, path, recorder.Body.String(), err)
		}
	}
	return recorder, decoded
}

func assertStatus(t *testing.T, recorder *httptest.ResponseRecorder, want int) {
	t.Helper()
	if recorder.Code != want {
		t.Fatalf("expected status %d, got %d (body %s)", want, recorder.Code, recorder.Body.String())
	}
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
