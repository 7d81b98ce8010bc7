package access

import (
	"github.com/gmt-app/puantaj-backend-go/internal/pkg/validator"
)

type TokenRequest struct {
	PIN      string `json:"pin"`
	Terminal string `json:"terminal,omitempty"` // free-form label, e.g. "kapı-1"
}

func (r *TokenRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PIN) {
		errs = append(errs, validator.ValidationError{
			Field:   "pin",
			Message: "pin is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
}
