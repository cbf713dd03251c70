package services

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"time"

	"educator-site/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AdminAuth checks the gallery admin secret and issues short-lived admin tokens.
type AdminAuth struct {
	password string
	hash     []byte
	secret   []byte
	ttl      time.Duration
}

// NewAdminAuth creates the admin checker. A bcrypt hash wins over a plaintext password.
// With no JWT secret a random one is generated, so tokens do not survive a restart.
func NewAdminAuth(password, passwordHash, jwtSecret string, ttl time.Duration) *AdminAuth {
	a := &AdminAuth{password: password, ttl: ttl}
	if passwordHash != "" {
		a.hash = []byte(passwordHash)
	}

	if jwtSecret != "" {
		a.secret = []byte(jwtSecret)
	} else {
		a.secret = make([]byte, 32)
		if _, err := rand.Read(a.secret); err != nil {
			panic(err)
		}
		log.Warnf("auth: JWT_SECRET not set, admin tokens are valid until restart")
	}

	return a
}

func (a *AdminAuth) Configured() bool {
	return a.password != "" || len(a.hash) > 0
}

func (a *AdminAuth) VerifyPassword(password string) bool {
	if password == "" {
		return false
	}
	if len(a.hash) > 0 {
		return bcrypt.CompareHashAndPassword(a.hash, []byte(password)) == nil
	}
	if a.password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a.password), []byte(password)) == 1
}

func (a *AdminAuth) Login(password string) (*models.LoginResponse, error) {
	if !a.Configured() {
		return nil, models.ErrAdminNotConfigured
	}
	if !a.VerifyPassword(password) {
		return nil, models.ErrUnauthorized
	}

	expires := time.Now().Add(a.ttl)
	token, err := a.GenerateJWT(expires)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{Token: token, ExpiresAt: expires}, nil
}

func (a *AdminAuth) GenerateJWT(expires time.Time) (string, error) {
	claims := jwt.MapClaims{
		"role": "admin",
		"iat":  time.Now().Unix(),
		"exp":  expires.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

func (a *AdminAuth) ValidateToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return a.secret, nil
	})
	if err != nil {
		return models.ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid || claims["role"] != "admin" {
		return models.ErrUnauthorized
	}

	return nil
}
