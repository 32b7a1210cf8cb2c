package client

import (
	"context"
	"testing"

	"gopkg.in/h2non/gock.v1"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	c, err := New("http://api.havenestates.test")
	if err != nil {
		t.Fatal(err)
	}
	gock.Intercept()
	gock.InterceptClient(c.http)
	return c
}

func TestGuardCheck(t *testing.T) {
	tests := []struct {
		name string
		mock func()
		want Decision
	}{
		{
			"admin allowed",
			func() {
				gock.New("http://api.havenestates.test").
					Get("/api/auth/me").
					Reply(200).
					JSON(map[string]interface{}{"id": 1, "email": "admin@example.com", "role": "admin"})
			},
			Allow,
		},
		{
			"unauthorized redirects",
			func() {
				gock.New("http://api.havenestates.test").
					Get("/api/auth/me").
					Reply(401).
					JSON(map[string]string{"error": "not authenticated"})
			},
			Redirect,
		},
		{
			"non-admin role redirects",
			func() {
				gock.New("http://api.havenestates.test").
					Get("/api/auth/me").
					Reply(200).
					JSON(map[string]interface{}{"id": 2, "email": "user@example.com", "role": "user"})
			},
			Redirect,
		},
		{
			"missing account redirects",
			func() {
				gock.New("http://api.havenestates.test").
					Get("/api/auth/me").
					Reply(404).
					JSON(map[string]string{"error": "account not found"})
			},
			Redirect,
		},
		{
			"network error redirects",
			func() {
				// no mock registered: the request fails outright
			},
			Redirect,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer gock.Off()
			tt.mock()

			c := newTestClient(t)
			guard := NewGuard(c)

			got, acc := guard.Check(context.Background())
			if got != tt.want {
				t.Errorf("Check() = %v, want %v", got, tt.want)
			}
			if tt.want == Allow && acc == nil {
				t.Error("Check() returned Allow without an account")
			}
			if tt.want == Redirect && acc != nil {
				t.Errorf("Check() returned an account %+v on Redirect", acc)
			}
		})
	}
}

func TestClientLogin(t *testing.T) {
	defer gock.Off()

	gock.New("http://api.havenestates.test").
		Post("/api/auth/login").
		Reply(200).
		JSON(map[string]string{"message": "logged in successfully"})

	c := newTestClient(t)
	if err := c.Login(context.Background(), "admin@example.com", "Secret123!"); err != nil {
		t.Errorf("Login() error = %v", err)
	}
}

func TestClientLogin_invalidCredentials(t *testing.T) {
	defer gock.Off()

	gock.New("http://api.havenestates.test").
		Post("/api/auth/login").
		Reply(401).
		JSON(map[string]string{"error": "invalid credentials"})

	c := newTestClient(t)
	if err := c.Login(context.Background(), "admin@example.com", "wrong"); err != ErrUnauthorized {
		t.Errorf("Login() error = %v, want ErrUnauthorized", err)
	}
}
