package ports

import "github.com/jgmedellin/coffee-shop-api/internal/core/domain"

// TokenService issues and verifies signed bearer tokens carrying
// identity and role claims.
type TokenService interface {
	Issue(email string, role domain.Role) (string, error)
	// Verify checks signature and expiry and returns the subject email and
	// role claim. Any failure yields domain.ErrInvalidToken; a missing role
	// claim defaults to RoleUser.
	Verify(token string) (email string, role domain.Role, err error)
}
