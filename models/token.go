package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set carried by a bearer credential.
//
// The user identifier travels in the standard "sub" claim; Email and Name
// are copied from the user record at issuance so that handlers can answer
// "who am I" without a store round-trip.
type Claims struct {
	jwt.RegisteredClaims

	// Email of the authenticated user.
	Email string `json:"email"`

	// Name is the display name of the authenticated user.
	Name string `json:"name"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token (header.payload.signature)
// ready to be transmitted in a cookie or in the Authorization header.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Identity is the caller decoded from the token claims.
	Identity Identity `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
