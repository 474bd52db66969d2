// Package models - JwtToken for the auth domain.
package models

import "github.com/dgrijalva/jwt-go"

// JwtToken is the claim set encoded in the JWT.
type JwtToken struct {
	UserID       string `json:"userId"`
	Time         string `json:"time"`
	RandomNumber string `json:"randomNumber"`
	jwt.StandardClaims
}
