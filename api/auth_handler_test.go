package api

import (
	"net/http"
	"strings"
	"testing"
)

func TestSignInSuccessShape(t *testing.T) {
	router, db := newTestRouter(t)
	if err := db.AdminRepo().EnsureAdmin("curator", "s3cret"); err != nil {
		t.Fatalf("EnsureAdmin: %v", err)
	}

	recorder, body := doJSON(t, router, http.MethodPost, "/api/admin/signin",
		`{"username":"curator","password":"s3cret"}`)
	assertStatus(t, recorder, http.StatusOK)

	if body["ok"] != true || body["username"] != "curator" || body["id"] == nil {
		t.Fatalf("unexpected signin body: %v", body)
	}
	// The password and its hash must never appear in the response.
	raw := recorder.Body.String()
	if strings.Contains(raw, "password") || strings.Contains(raw, "$2a$") || strings.Contains(raw, "hash") {
		t.Fatalf("signin response leaks credential material: %s", raw)
	}
}

func TestSignInFailuresReturn400WithUniformMessage(t *testing.T) {
	router, db := newTestRouter(t)
	if err := db.AdminRepo().EnsureAdmin("curator", "s3cret"); err != nil {
		t.Fatalf("EnsureAdmin: %v", err)
	}

	wrongRecorder, wrongBody := doJSON(t, router, http.MethodPost, "/api/admin/signin",
		`{"username":"curator","password":"bad"}`)
	assertStatus(t, wrongRecorder, http.StatusBadRequest)

	unknownRecorder, unknownBody := doJSON(t, router, http.MethodPost, "/api/admin/signin",
		`{"username":"nobody","password":"s3cret"}`)
	assertStatus(t, unknownRecorder, http.StatusBadRequest)

	for _, body := range []map[string]any{wrongBody, unknownBody} {
		if body["ok"] != false {
			t.Fatalf("failed signin must not carry partial success flags: %v", body)
		}
	}
	if wrongBody["message"] != unknownBody["message"] {
		t.Fatalf("failure messages must be identical: %v vs %v",
			wrongBody["message"], unknownBody["message"])
	}
}
