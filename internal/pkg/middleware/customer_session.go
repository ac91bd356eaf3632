package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	internaljwt "github.com/pixfil/onm-formation/internal/pkg/jwt"
	"github.com/pixfil/onm-formation/internal/pkg/session"
	"github.com/pixfil/onm-formation/pkg/errors"
	"github.com/pixfil/onm-formation/pkg/response"
	"github.com/pixfil/onm-formation/pkg/status"
)

type CustomerSession struct {
	jsonWebToken *internaljwt.JSONWebToken
	store        session.Store
}

func NewCustomerSessionMiddleware(jsonWebToken *internaljwt.JSONWebToken, store session.Store) *CustomerSession {
	return &CustomerSession{
		jsonWebToken: jsonWebToken,
		store:        store,
	}
}

type customerClaims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// Verify authenticates the bearer token and loads the customer's account onto
// the request context.
func (m *CustomerSession) Verify(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authorization := r.Header.Get("Authorization")
		if !strings.HasPrefix(authorization, "Bearer ") {
			response.JSON(w, http.StatusUnauthorized, response.RESTEnvelope{
				Status:  status.UNAUTHORIZED,
				Message: "authorization header is missing or malformed",
			})

			return
		}

		token := strings.TrimPrefix(authorization, "Bearer ")

		claims := &customerClaims{}
		if err := m.jsonWebToken.Parse(token, claims); err != nil {
			ae := errors.Destruct(err)
			response.JSON(w, ae.HTTPStatusCode, response.RESTEnvelope{
				Status:  ae.Status,
				Message: ae.Message,
			})

			return
		}

		acc, err := m.store.Get(r.Context(), claims.SessionID)
		if err != nil {
			ae := errors.Destruct(err)
			response.JSON(w, ae.HTTPStatusCode, response.RESTEnvelope{
				Status:  ae.Status,
				Message: ae.Message,
			})

			return
		}

		ctx := session.SetAccountToCtx(r.Context(), acc)

		next(w, r.WithContext(ctx))
	}
}
