package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	// SessionCookie carries the signed session token.
	SessionCookie = "sc_session"

	userIDKey = "user_id"

	defaultSessionTTL = 12 * time.Hour
)

// Sessions issues and verifies the HS256-signed session cookie. The token
// subject is the user id.
type Sessions struct {
	secret []byte
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

func NewSessions(secret string, ttl time.Duration, secure bool) *Sessions {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &Sessions{secret: []byte(secret), ttl: ttl, secure: secure, now: time.Now}
}

// Login sets the session cookie for userID.
func (s *Sessions) Login(c echo.Context, userID int64) error {
	now := s.now()
	exp := now.Add(s.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return err
	}

	c.SetCookie(s.cookie(signed, exp, int(s.ttl.Seconds())))
	return nil
}

// Logout expires the session cookie. Calling it without a session is a no-op
// for the client.
func (s *Sessions) Logout(c echo.Context) {
	c.SetCookie(s.cookie("", time.Unix(0, 0), -1))
}

func (s *Sessions) cookie(value string, expires time.Time, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookie,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// Identify resolves the session cookie on every request. A missing, expired
// or tampered cookie leaves the request anonymous.
func (s *Sessions) Identify() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err == nil && cookie.Value != "" {
				if id, err := s.parse(cookie.Value); err == nil {
					c.Set(userIDKey, id)
				}
			}
			return next(c)
		}
	}
}

func (s *Sessions) parse(raw string) (int64, error) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil || !tkn.Valid {
		return 0, errors.New("invalid session")
	}
	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid session subject")
	}
	return id, nil
}

// RequireAuth redirects anonymous requests to the login page.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := UserID(c); !ok {
				return c.Redirect(http.StatusSeeOther, "/login")
			}
			return next(c)
		}
	}
}

// UserID returns the authenticated user id set by Identify.
func UserID(c echo.Context) (int64, bool) {
	id, ok := c.Get(userIDKey).(int64)
	return id, ok && id > 0
}
