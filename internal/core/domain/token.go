package domain

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Audience identifies tokens minted by this service.
const Audience = "cartences"

var (
	// ErrTokenInvalid covers every verification failure: bad signature,
	// expired, not yet valid, wrong audience, malformed. Callers are not
	// told which check failed.
	ErrTokenInvalid = errors.New("invalid token")

	ErrRoleForbidden = errors.New("insufficient role")
)

// Claims is the signed payload carried by a bearer token. The registered
// claims hold sub (stringified user id), aud, iat, nbf and exp; username and
// role are snapshots of the user at issuance time.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}
