package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"

	"github.com/Haven-Estates/haven-api/models/contact"
)

func strPtr(s string) *string { return &s }

func newContactTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	contactRepo = contact.NewMock()
	contact.InvalidateCache()

	router := httprouter.New()
	router.GET("/api/contact", GetContact)
	router.POST("/api/contact", SetContact)
	router.DELETE("/api/contact", DeleteContact)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	t.Cleanup(contact.InvalidateCache)
	return srv
}

func TestContactFlow(t *testing.T) {
	srv := newContactTestServer(t)

	// unset record
	resp, err := http.Get(srv.URL + "/api/contact")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("get before set status = %v, want 404", resp.StatusCode)
	}

	// upsert
	req := ContactRequest{
		Phone:       []string{"+91 9876543210"},
		Email:       []string{"info@havenestates.com"},
		SocialLinks: []contact.SocialLink{{Platform: "instagram", URL: "https://instagram.com/havenestates"}},
		AboutText:   strPtr("Homes on the coast"),
	}
	data, _ := json.Marshal(req)
	resp, err = http.Post(srv.URL+"/api/contact", "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("set status = %v, want 200", resp.StatusCode)
	}

	// read back
	resp, err = http.Get(srv.URL + "/api/contact")
	if err != nil {
		t.Fatal(err)
	}
	var got contact.Info
	json.NewDecoder(resp.Body).Decode(&got)
	resp.Body.Close()
	if len(got.Phone) != 1 || got.AboutText != "Homes on the coast" {
		t.Errorf("contact = %+v", got)
	}

	// second upsert updates
	req.AboutText = strPtr("Homes everywhere")
	data, _ = json.Marshal(req)
	resp, err = http.Post(srv.URL+"/api/contact", "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	resp, err = http.Get(srv.URL + "/api/contact")
	if err != nil {
		t.Fatal(err)
	}
	json.NewDecoder(resp.Body).Decode(&got)
	resp.Body.Close()
	if got.AboutText != "Homes everywhere" {
		t.Errorf("aboutText = %v, want updated value", got.AboutText)
	}

	// a request naming only one field leaves the rest alone
	partial, _ := json.Marshal(ContactRequest{Phone: []string{"+91 1112223334"}})
	resp, err = http.Post(srv.URL+"/api/contact", "application/json", bytes.NewReader(partial))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("partial set status = %v, want 200", resp.StatusCode)
	}

	resp, err = http.Get(srv.URL + "/api/contact")
	if err != nil {
		t.Fatal(err)
	}
	json.NewDecoder(resp.Body).Decode(&got)
	resp.Body.Close()
	if len(got.Phone) != 1 || got.Phone[0] != "+91 1112223334" {
		t.Errorf("phone = %v, want the new number", got.Phone)
	}
	if got.AboutText != "Homes everywhere" {
		t.Errorf("aboutText = %v, want value kept from the full set", got.AboutText)
	}
	if len(got.Email) != 1 || len(got.SocialLinks) != 1 {
		t.Errorf("email = %v, socialLinks = %v, want both kept", got.Email, got.SocialLinks)
	}

	// delete
	delReq, _ := http.NewRequest(http.MethodDelete, srv.URL+"/api/contact", nil)
	resp, err = http.DefaultClient.Do(delReq)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete status = %v, want 200", resp.StatusCode)
	}

	resp, err = http.Get(srv.URL + "/api/contact")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("get after delete status = %v, want 404", resp.StatusCode)
	}
}
