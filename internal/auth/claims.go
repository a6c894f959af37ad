package auth

import (
	"cometjet/crewdesk/internal/constants"

	"github.com/golang-jwt/jwt/v5"
)

// UserClaims is the identity attached to an authenticated request.
type UserClaims interface {
	UserID() string
	Role() string
	DisplayName() string
	IsAdmin() bool
}

// JWTClaims is the JWT payload for pilot sessions.
type JWTClaims struct {
	PilotID   string              `json:"pilot_id"`
	RoleValue constants.PilotRole `json:"role"`
	Name      string              `json:"name"`
	jwt.RegisteredClaims
}

var _ UserClaims = (*JWTClaims)(nil)

func (c *JWTClaims) UserID() string      { return c.PilotID }
func (c *JWTClaims) Role() string        { return string(c.RoleValue) }
func (c *JWTClaims) DisplayName() string { return c.Name }
func (c *JWTClaims) IsAdmin() bool       { return c.RoleValue == constants.RoleAdmin }
