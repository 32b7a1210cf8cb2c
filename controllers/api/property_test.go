package api

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"

	"github.com/Haven-Estates/haven-api/media"
	"github.com/Haven-Estates/haven-api/models/property"
)

func newPropertyTestServer(t *testing.T) (*httptest.Server, *property.Mock) {
	t.Helper()

	mock := property.NewMock()
	propertyRepo = mock
	property.InvalidateListCache()

	router := httprouter.New()
	router.GET("/api/properties", ListProperties)
	router.GET("/api/properties/:id", GetProperty)
	router.POST("/api/properties", CreateProperty)
	router.PUT("/api/properties/:id", UpdateProperty)
	router.DELETE("/api/properties/:id", DeleteProperty)
	router.DELETE("/api/properties/:id/images/:index", DeletePropertyImage)
	router.DELETE("/api/properties/:id/video", DeletePropertyVideo)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	t.Cleanup(property.InvalidateListCache)
	return srv, mock
}

func multipartBody(t *testing.T, fields map[string]string, imageNames []string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		mw.WriteField(k, v)
	}
	for _, name := range imageNames {
		fw, err := mw.CreateFormFile("images", name)
		if err != nil {
			t.Fatal(err)
		}
		fw.Write([]byte("fake image bytes"))
	}
	mw.Close()
	return &buf, mw.FormDataContentType()
}

func TestCreateProperty(t *testing.T) {
	srv, _ := newPropertyTestServer(t)

	body, contentType := multipartBody(t, map[string]string{
		"title":       "Seaview Villa",
		"description": "Three bedrooms",
		"price":       "450000",
		"location":    "Goa",
	}, []string{"front.jpg", "garden.jpg"})

	resp, err := http.Post(srv.URL+"/api/properties", contentType, body)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %v, want 201", resp.StatusCode)
	}

	var p property.Property
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		t.Fatal(err)
	}
	if p.Title != "Seaview Villa" || p.Price != 450000 {
		t.Errorf("property = %+v", p)
	}
	if len(p.Images) != 2 {
		t.Fatalf("images = %d, want 2", len(p.Images))
	}
	for _, url := range p.Images {
		if !strings.Contains(url, "/uploads/properties/images/") {
			t.Errorf("image url = %v", url)
		}
	}
}

func TestCreateProperty_validation(t *testing.T) {
	srv, _ := newPropertyTestServer(t)

	tests := []struct {
		name   string
		fields map[string]string
	}{
		{"missing title", map[string]string{"price": "1"}},
		{"missing price", map[string]string{"title": "x"}},
		{"bad price", map[string]string{"title": "x", "price": "cheap"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, contentType := multipartBody(t, tt.fields, nil)
			resp, err := http.Post(srv.URL+"/api/properties", contentType, body)
			if err != nil {
				t.Fatal(err)
			}
			resp.Body.Close()
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %v, want 400", resp.StatusCode)
			}
		})
	}
}

func TestListProperties_cached(t *testing.T) {
	srv, mock := newPropertyTestServer(t)

	mock.Create(&property.Property{Title: "First", Price: 100})

	get := func() []*property.Property {
		resp, err := http.Get(srv.URL + "/api/properties")
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %v, want 200", resp.StatusCode)
		}
		var ps []*property.Property
		json.NewDecoder(resp.Body).Decode(&ps)
		return ps
	}

	if got := get(); len(got) != 1 {
		t.Fatalf("listing = %d properties, want 1", len(got))
	}

	// A write that bypasses the handlers is invisible until the cache
	// is invalidated.
	mock.Create(&property.Property{Title: "Second", Price: 200})
	if got := get(); len(got) != 1 {
		t.Fatalf("cached listing = %d properties, want 1", len(got))
	}

	property.InvalidateListCache()
	if got := get(); len(got) != 2 {
		t.Fatalf("listing after invalidation = %d properties, want 2", len(got))
	}
}

// Updating a listing that does not exist must not leave uploaded
// objects behind in the media store.
func TestUpdateProperty_notFound(t *testing.T) {
	srv, _ := newPropertyTestServer(t)

	dir := t.TempDir()
	store, err := media.NewDiskStore(dir, "http://localhost:9090")
	if err != nil {
		t.Fatal(err)
	}
	oldStore := mediaStore
	mediaStore = store
	t.Cleanup(func() { mediaStore = oldStore })

	body, contentType := multipartBody(t, map[string]string{
		"title": "Ghost Villa",
	}, []string{"front.jpg"})

	req, _ := http.NewRequest(http.MethodPut, srv.URL+"/api/properties/99", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %v, want 404", resp.StatusCode)
	}

	var saved []string
	filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err == nil && !d.IsDir() {
			saved = append(saved, path)
		}
		return nil
	})
	if len(saved) != 0 {
		t.Errorf("media store contains %v, want no uploads", saved)
	}
}

func TestDeletePropertyImage_bounds(t *testing.T) {
	srv, mock := newPropertyTestServer(t)

	created, _ := mock.Create(&property.Property{Title: "x", Price: 1, Images: []string{"http://localhost:9090/uploads/properties/images/a.jpg"}})

	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/api/properties/1/images/5", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("out-of-range index status = %v, want 400", resp.StatusCode)
	}

	req, _ = http.NewRequest(http.MethodDelete, srv.URL+"/api/properties/1/images/0", nil)
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("valid index status = %v, want 200", resp.StatusCode)
	}

	p, _ := mock.FindByID(created.ID)
	if len(p.Images) != 0 {
		t.Errorf("images = %v, want empty", p.Images)
	}
}

func TestGetProperty_notFound(t *testing.T) {
	srv, _ := newPropertyTestServer(t)

	resp, err := http.Get(srv.URL + "/api/properties/99")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %v, want 404", resp.StatusCode)
	}
}
