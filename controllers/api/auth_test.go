package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"

	"github.com/Haven-Estates/haven-api/auth"
	"github.com/Haven-Estates/haven-api/models/account"
)

func newAuthTestServer(t *testing.T) (*httptest.Server, *http.Client, *account.Mock) {
	t.Helper()

	mock := account.NewMock()
	accountRepo = mock

	router := httprouter.New()
	router.POST("/api/auth/register", Register)
	router.POST("/api/auth/login", Login)
	router.POST("/api/auth/logout", Logout)
	router.GET("/api/auth/me", testAuthService.Middleware(Me))

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	return srv, &http.Client{Jar: jar}, mock
}

func postJSON(t *testing.T, c *http.Client, url string, body interface{}) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := c.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestAuthFlow(t *testing.T) {
	srv, c, _ := newAuthTestServer(t)
	creds := map[string]string{"email": "admin@example.com", "password": "Secret123!"}

	// register
	resp := postJSON(t, c, srv.URL+"/api/auth/register", creds)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register status = %v, want 201", resp.StatusCode)
	}
	var reg RegisterResponse
	json.NewDecoder(resp.Body).Decode(&reg)
	resp.Body.Close()
	if reg.ID == 0 || reg.Email != "admin@example.com" {
		t.Fatalf("register response = %+v", reg)
	}

	// me before login
	resp, err := c.Get(srv.URL + "/api/auth/me")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("me without cookie status = %v, want 401", resp.StatusCode)
	}

	// login
	resp = postJSON(t, c, srv.URL+"/api/auth/login", creds)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %v, want 200", resp.StatusCode)
	}
	if strings.Contains(string(body), "eyJ") {
		t.Error("login response body contains a token; it must travel only in the cookie")
	}

	var sessionCookie *http.Cookie
	for _, ck := range resp.Cookies() {
		if ck.Name == auth.CookieName {
			sessionCookie = ck
		}
	}
	if sessionCookie == nil {
		t.Fatal("login did not set the session cookie")
	}
	if !sessionCookie.HttpOnly {
		t.Error("session cookie HttpOnly = false, want true")
	}
	if sessionCookie.MaxAge != 3600 {
		t.Errorf("session cookie MaxAge = %v, want 3600", sessionCookie.MaxAge)
	}

	// me with cookie
	resp, err = c.Get(srv.URL + "/api/auth/me")
	if err != nil {
		t.Fatal(err)
	}
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("me status = %v, want 200", resp.StatusCode)
	}

	var me map[string]interface{}
	if err := json.Unmarshal(body, &me); err != nil {
		t.Fatal(err)
	}
	if me["email"] != "admin@example.com" || me["role"] != "admin" {
		t.Errorf("me = %v", me)
	}
	if strings.Contains(strings.ToLower(string(body)), "password") {
		t.Error("me response contains a password field")
	}

	// logout clears the cookie jar entry
	resp = postJSON(t, c, srv.URL+"/api/auth/logout", struct{}{})
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("logout status = %v, want 200", resp.StatusCode)
	}

	resp, err = c.Get(srv.URL + "/api/auth/me")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("me after logout status = %v, want 401", resp.StatusCode)
	}
}

func TestRegister_validation(t *testing.T) {
	srv, c, _ := newAuthTestServer(t)

	tests := []struct {
		name       string
		body       map[string]string
		wantStatus int
	}{
		{"missing email", map[string]string{"password": "x"}, http.StatusBadRequest},
		{"missing password", map[string]string{"email": "a@b.c"}, http.StatusBadRequest},
		{"ok", map[string]string{"email": "a@b.c", "password": "x"}, http.StatusCreated},
		{"duplicate email", map[string]string{"email": "a@b.c", "password": "y"}, http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, c, srv.URL+"/api/auth/register", tt.body)
			resp.Body.Close()
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %v, want %v", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

// Unknown email and wrong password must be indistinguishable.
func TestLogin_genericError(t *testing.T) {
	srv, c, _ := newAuthTestServer(t)

	resp := postJSON(t, c, srv.URL+"/api/auth/register", map[string]string{"email": "admin@example.com", "password": "Secret123!"})
	resp.Body.Close()

	readError := func(body map[string]string) (int, string) {
		resp := postJSON(t, c, srv.URL+"/api/auth/login", body)
		defer resp.Body.Close()
		var e ErrorResponse
		json.NewDecoder(resp.Body).Decode(&e)
		return resp.StatusCode, e.Error
	}

	unknownStatus, unknownBody := readError(map[string]string{"email": "nobody@example.com", "password": "Secret123!"})
	wrongStatus, wrongBody := readError(map[string]string{"email": "admin@example.com", "password": "wrong"})

	if unknownStatus != http.StatusUnauthorized || wrongStatus != http.StatusUnauthorized {
		t.Fatalf("statuses = %v, %v, want 401, 401", unknownStatus, wrongStatus)
	}
	if unknownBody != wrongBody {
		t.Errorf("error bodies differ: %q vs %q; enumeration leak", unknownBody, wrongBody)
	}
}

func TestLogin_validation(t *testing.T) {
	srv, c, _ := newAuthTestServer(t)

	tests := []struct {
		name string
		body map[string]string
	}{
		{"missing email", map[string]string{"password": "x"}},
		{"missing password", map[string]string{"email": "a@b.c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, c, srv.URL+"/api/auth/login", tt.body)
			resp.Body.Close()
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %v, want 400", resp.StatusCode)
			}
		})
	}
}

func TestMe_deletedAccount(t *testing.T) {
	srv, c, mock := newAuthTestServer(t)
	creds := map[string]string{"email": "admin@example.com", "password": "Secret123!"}

	resp := postJSON(t, c, srv.URL+"/api/auth/register", creds)
	var reg RegisterResponse
	json.NewDecoder(resp.Body).Decode(&reg)
	resp.Body.Close()

	resp = postJSON(t, c, srv.URL+"/api/auth/login", creds)
	resp.Body.Close()

	// account removed out-of-band, token still valid
	mock.Delete(reg.ID)

	resp, err := c.Get(srv.URL + "/api/auth/me")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("me status = %v, want 404", resp.StatusCode)
	}
}

func TestLogout_idempotent(t *testing.T) {
	srv, c, _ := newAuthTestServer(t)

	resp := postJSON(t, c, srv.URL+"/api/auth/logout", struct{}{})
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("logout without session status = %v, want 200", resp.StatusCode)
	}
}
