package auth

import (
	"net/http"
	"time"
)

// CookieName is the session cookie carrying the JWT.
const CookieName = "token"

// sessionCookie is the single source of cookie attributes so that set
// and clear can never drift apart.
func (s *Service) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}

// SetSessionCookie attaches the session token to the response. The
// cookie lifetime matches the token's expiry.
func (s *Service) SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, s.sessionCookie(token, int(s.lifetime/time.Second)))
}

// ClearSessionCookie instructs the browser to drop the session cookie.
// Attributes must match the ones used when setting it.
func (s *Service) ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, s.sessionCookie("", -1))
}

// TokenFromRequest extracts the session token from the request cookie.
func TokenFromRequest(r *http.Request) (string, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", ErrMissingToken
	}
	return cookie.Value, nil
}
