package api

import (
	"net/http"
	"testing"
)

func TestContactSubmitReturnsID(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder, body := doJSON(t, router, http.MethodPost, "/api/contacts",
		`{"name":"Sam","email":"sam@example.com","subject":"Hi","message":"Nice work"}`)
	assertStatus(t, recorder, http.StatusOK)
	if body["ok"] != true || body["id"] == nil {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestContactSubmitEmptyMessagePerformsNoInsert(t *testing.T) {
	router, db := newTestRouter(t)

	recorder, body := doJSON(t, router, http.MethodPost, "/api/contacts",
		`{"name":"Sam","email":"sam@example.com","subject":"Hi","message":""}`)
	assertStatus(t, recorder, http.StatusBadRequest)
	if body["ok"] != false {
		t.Fatalf("expected ok:false, got %v", body)
	}

	count, err := db.ContactRepo().Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 0 {
		t.Fatalf("rejected submission must not insert a row, found %d", count)
	}
}
