package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"net/http"
	"time"

	"github.com/bkkdevs/seminar-registration-api/internal/config"
	"github.com/danielgtaylor/huma/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	CookieName    = "admin_token"
	TokenDuration = 24 * time.Hour
)

type AuthHandler struct {
	cfg *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// AuthInput is embedded by request structs of endpoints that authorize via
// the admin session cookie.
type AuthInput struct {
	Cookie string `header:"Cookie" doc:"Admin session cookie"`
}

type LoginRequest struct {
	Body struct {
		Password string `json:"password" doc:"Admin password"`
	}
}

type LoginResponse struct {
	SetCookie http.Cookie `header:"Set-Cookie"`
	Body      struct {
		Message string `json:"message"`
	}
}

func (h *AuthHandler) HandleLogin(ctx context.Context, input *LoginRequest) (*LoginResponse, error) {
	if input.Body.Password == "" {
		return nil, huma.Error400BadRequest("Password is required")
	}
	if subtle.ConstantTimeCompare([]byte(input.Body.Password), []byte(h.cfg.AdminPassword)) != 1 {
		return nil, huma.Error401Unauthorized("Invalid password")
	}

	token, err := h.GenerateToken()
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to generate token")
	}

	res := &LoginResponse{
		SetCookie: http.Cookie{
			Name:     CookieName,
			Value:    token,
			Expires:  time.Now().Add(TokenDuration),
			HttpOnly: true,
			Path:     "/",
		},
	}
	res.Body.Message = "Logged in"
	return res, nil
}

func (h *AuthHandler) GenerateToken() (string, error) {
	claims := jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(TokenDuration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.cfg.JWTSecret))
}

// Authorize validates the admin session cookie taken from a raw Cookie
// header. The returned error is a huma 401 suitable to return directly.
func (h *AuthHandler) Authorize(cookieHeader string) error {
	tokenString := cookieValue(cookieHeader, CookieName)
	if tokenString == "" {
		return huma.Error401Unauthorized("No session found")
	}
	if _, err := h.parseToken(tokenString); err != nil {
		return huma.Error401Unauthorized("Invalid session")
	}
	return nil
}

func (h *AuthHandler) parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(h.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}

func cookieValue(header, name string) string {
	req := http.Request{Header: http.Header{"Cookie": {header}}}
	cookie, err := req.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}
