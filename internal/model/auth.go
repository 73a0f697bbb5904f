package model

import "github.com/golang-jwt/jwt/v5"

// AdminClaims are JWT claims for organization admin authentication
type AdminClaims struct {
	OrgID string `json:"orgId"`
	jwt.RegisteredClaims
}

// MemberClaims are JWT claims for org-scoped member tokens
type MemberClaims struct {
	OrgID    string `json:"orgId"`
	MemberID string `json:"memberId"`
	jwt.RegisteredClaims
}

// LoginRequest is the request body for admin login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned after successful login
type LoginResponse struct {
	Token string `json:"token"`
	OrgID string `json:"orgId"`
}
