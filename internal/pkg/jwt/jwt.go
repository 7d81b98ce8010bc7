package jwt

import (
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Service issues and verifies the session tokens handed out after a
// successful PIN exchange. There are no per-user accounts; the subject
// identifies the terminal that authenticated.
type Service interface {
	GenerateAccessToken(terminal string) (token string, expiresAt int64, err error)
	ValidateAccessToken(tokenString string) (terminal string, err error)
	JWTAuth() *jwtauth.JWTAuth
	RevokeToken(token string)
	IsTokenRevoked(token string) bool
}

type JWTService struct {
	secretKey                 string
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
	revokedTokens             map[string]int64
	mu                        sync.RWMutex
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                 secretKey,
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:             make(map[string]int64),
	}
}

func (j *JWTService) GenerateAccessToken(terminal string) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"terminal": terminal,
		"type":     "access",
		"exp":      expiresAt,
	})
	return tokenString, expiresAt, err
}

func (j *JWTService) ValidateAccessToken(tokenString string) (terminal string, err error) {
	token, err := j.tokenAuth.Decode(tokenString)
	if err != nil {
		return "", err
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != "access" {
		return "", jwt.ErrInvalidJWT()
	}

	terminalVal, ok := token.Get("terminal")
	if !ok {
		return "", jwt.ErrInvalidJWT()
	}

	terminal, ok = terminalVal.(string)
	if !ok {
		return "", jwt.ErrInvalidJWT()
	}

	return terminal, nil
}

func (j *JWTService) RevokeToken(token string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.revokedTokens[token] = time.Now().Unix()
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[token]
	return revoked
}
