package middleware

import (
	"net/http"

	"github.com/gmt-app/puantaj-backend-go/internal/handler/http/response"
	"github.com/gmt-app/puantaj-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

func AuthRequired(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.Unauthorized(w, "Missing access token")
				return
			}

			if jwtService.IsTokenRevoked(jwtauth.TokenFromHeader(r)) {
				response.Unauthorized(w, "Access token has been revoked")
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.Unauthorized(w, "Invalid access token")
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.Unauthorized(w, "Invalid access token")
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
