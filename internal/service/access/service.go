package access

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/gmt-app/puantaj-backend-go/internal/domain/access"
	"github.com/gmt-app/puantaj-backend-go/internal/pkg/jwt"
)

type AccessServiceImpl struct {
	pinHash []byte
	jwtSvc  jwt.Service
}

// IssueToken implements access.AccessService.
func (s *AccessServiceImpl) IssueToken(_ context.Context, req access.TokenRequest) (access.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return access.TokenResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword(s.pinHash, []byte(req.PIN)); err != nil {
		return access.TokenResponse{}, access.ErrInvalidPIN
	}

	terminal := req.Terminal
	if terminal == "" {
		terminal = "default"
	}

	token, expiresAt, err := s.jwtSvc.GenerateAccessToken(terminal)
	if err != nil {
		return access.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return access.TokenResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}

// RevokeToken implements access.AccessService.
func (s *AccessServiceImpl) RevokeToken(_ context.Context, token string) error {
	if token == "" {
		return access.ErrInvalidToken
	}
	if _, err := s.jwtSvc.ValidateAccessToken(token); err != nil {
		return access.ErrInvalidToken
	}

	s.jwtSvc.RevokeToken(token)
	return nil
}

func NewAccessService(pinHash string, jwtSvc jwt.Service) access.AccessService {
	return &AccessServiceImpl{
		pinHash: []byte(pinHash),
		jwtSvc:  jwtSvc,
	}
}
