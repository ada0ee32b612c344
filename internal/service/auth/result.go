package auth

import "github.com/limopeace/beatlenut-trails-sub002/internal/domain"

// AuthResult is returned by register, login and refresh operations.
type AuthResult struct {
	AccessToken  string
	RefreshToken string // raw token, NOT hash
	User         *domain.User
	Seller       *domain.Seller // set for seller accounts when known
}

// Profile is the current user with the seller profile, if any.
type Profile struct {
	User   *domain.User
	Seller *domain.Seller
}
