package http

import (
	"encoding/json"
	"net/http"

	"github.com/gmt-app/puantaj-backend-go/internal/domain/access"
	"github.com/gmt-app/puantaj-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

type AccessHandler interface {
	IssueToken(w http.ResponseWriter, r *http.Request)
	RevokeToken(w http.ResponseWriter, r *http.Request)
}

type AccessHandlerImpl struct {
	accessService access.AccessService
}

// IssueToken implements AccessHandler.
func (h *AccessHandlerImpl) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req access.TokenRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.accessService.IssueToken(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// RevokeToken implements AccessHandler. The bearer token on the request is
// the one being revoked.
func (h *AccessHandlerImpl) RevokeToken(w http.ResponseWriter, r *http.Request) {
	if err := h.accessService.RevokeToken(r.Context(), jwtauth.TokenFromHeader(r)); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Access token revoked", nil)
}

func NewAccessHandler(accessService access.AccessService) AccessHandler {
	return &AccessHandlerImpl{accessService: accessService}
}
