package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
)

// requestClaims pulls the identity fields out of the verified access token.
type requestClaims struct {
	UserID     string
	Email      string
	EmployeeID string
	IsAdmin    bool
}

func claimsFromRequest(r *http.Request) (requestClaims, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return requestClaims{}, err
	}

	rc := requestClaims{}
	if v, ok := claims["user_id"].(string); ok {
		rc.UserID = v
	}
	if v, ok := claims["email"].(string); ok {
		rc.Email = v
	}
	if v, ok := claims["employee_id"].(string); ok {
		rc.EmployeeID = v
	}
	if v, ok := claims["is_admin"].(bool); ok {
		rc.IsAdmin = v
	}

	return rc, nil
}
