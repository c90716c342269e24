package api

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestAddImageReturnsFullRecordWithDefaults(t *testing.T) {
	router, _ := newTestRouter(t)

	_, created := doJSON(t, router, http.MethodPost, "/api/projects", `{"title":"Gallery"}`)
	id := itoa(int(created["id"].(float64)))

	recorder, body := doJSON(t, router, http.MethodPost, "/api/projects/"+id+"/images",
		`{"image_path":"shot.jpg"}`)
	assertStatus(t, recorder, http.StatusOK)

	if body["id"] == nil || body["image_path"] != "shot.jpg" {
		t.Fatalf("expected full record, got %v", body)
	}
	if body["sort_order"] != float64(0) {
		t.Fatalf("expected default sort_order 0, got %v", body["sort_order"])
	}
	if body["caption"] != nil {
		t.Fatalf("expected null caption, got %v", body["caption"])
	}
}

func TestAddImageRequiresPath(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder, body := doJSON(t, router, http.MethodPost, "/api/projects/1/images",
		`{"caption":"no path"}`)
	assertStatus(t, recorder, http.StatusBadRequest)
	if body["ok"] != false {
		t.Fatalf("expected ok:false, got %v", body)
	}
}

func TestImagesAreListedInSortKeyOrder(t *testing.T) {
	router, _ := newTestRouter(t)

	_, created := doJSON(t, router, http.MethodPost, "/api/projects", `{"title":"Ordered"}`)
	id := itoa(int(created["id"].(float64)))

	for _, payload := range []string{
		`{"image_path":"b.jpg","sort_order":2}`,
		`{"image_path":"a.jpg","sort_order":1}`,
		`{"image_path":"c.jpg","sort_order":2}`,
	} {
		recorder, _ := doJSON(t, router, http.MethodPost, "/api/projects/"+id+"/images", payload)
		assertStatus(t, recorder, http.StatusOK)
	}

	recorder, _ := doJSON(t, router, http.MethodGet, "/api/projects/"+id+"/images", "")
	assertStatus(t, recorder, http.StatusOK)

	var images []map[string]any
	if err := json.Unmarshal(recorder.Body.Bytes(), &images); err != nil {
		t.Fatalf("images response: %v", err)
	}
	want := []string{"a.jpg", "b.jpg", "c.jpg"}
	if len(images) != len(want) {
		t.Fatalf("expected %d images, got %d", len(want), len(images))
	}
	for i, path := range want {
		if images[i]["image_path"] != path {
			t.Fatalf("position %d: expected %q, got %v", i, path, images[i]["image_path"])
		}
	}
}

func TestDeleteImageReportsAffectedRows(t *testing.T) {
	router, _ := newTestRouter(t)

	_, created := doJSON(t, router, http.MethodPost, "/api/projects", `{"title":"Gallery"}`)
	id := itoa(int(created["id"].(float64)))

	_, image := doJSON(t, router, http.MethodPost, "/api/projects/"+id+"/images",
		`{"image_path":"gone.jpg"}`)
	imageID := itoa(int(image["id"].(float64)))

	recorder, body := doJSON(t, router, http.MethodDelete, "/api/project-images/"+imageID, "")
	assertStatus(t, recorder, http.StatusOK)
	if body["affectedRows"] != float64(1) {
		t.Fatalf("expected affectedRows 1, got %v", body)
	}

	// Deleting an already-deleted id is not an error.
	recorder, body = doJSON(t, router, http.MethodDelete, "/api/project-images/"+imageID, "")
	assertStatus(t, recorder, http.StatusOK)
	if body["affectedRows"] != float64(0) {
		t.Fatalf("expected affectedRows 0, got %v", body)
	}
}
