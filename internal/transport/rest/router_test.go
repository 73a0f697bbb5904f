package rest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aicomply/internal/config"
	"aicomply/internal/service"
)

func testRouter(t *testing.T) (http.Handler, *service.AuthService) {
	t.Helper()
	authSvc := service.NewAuthService(&config.Config{
		AdminUsername: "admin",
		AdminPassword: "secret",
		JWTSecret:     "test-secret",
		OrgID:         "org_test",
	})
	return NewRouter(&Container{AuthService: authSvc}), authSvc
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestIssueMemberToken(t *testing.T) {
	router, authSvc := testRouter(t)

	rec := doJSON(t, router, "POST", "/v1/auth/login", "", map[string]string{
		"username": "admin",
		"password": "secret",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&login))

	rec = doJSON(t, router, "POST", "/v1/auth/member-tokens", login.Token, map[string]string{
		"memberId": "mem_1",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var issued struct {
		Token    string `json:"token"`
		OrgID    string `json:"orgId"`
		MemberID string `json:"memberId"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&issued))
	assert.Equal(t, "org_test", issued.OrgID)
	assert.Equal(t, "mem_1", issued.MemberID)

	// The issued token is a working member credential for the admin's org
	claims, err := authSvc.ValidateMemberToken(issued.Token)
	require.NoError(t, err)
	assert.Equal(t, "org_test", claims.OrgID)
	assert.Equal(t, "mem_1", claims.MemberID)
}

func TestIssueMemberTokenAdminOnly(t *testing.T) {
	router, authSvc := testRouter(t)

	rec := doJSON(t, router, "POST", "/v1/auth/member-tokens", "", map[string]string{
		"memberId": "mem_1",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// A member cannot mint tokens for other members
	memberToken, err := authSvc.GenerateMemberToken("org_test", "mem_1")
	require.NoError(t, err)
	rec = doJSON(t, router, "POST", "/v1/auth/member-tokens", memberToken, map[string]string{
		"memberId": "mem_2",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestIssueMemberTokenRequiresMemberID(t *testing.T) {
	router, _ := testRouter(t)

	rec := doJSON(t, router, "POST", "/v1/auth/login", "", map[string]string{
		"username": "admin",
		"password": "secret",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&login))

	rec = doJSON(t, router, "POST", "/v1/auth/member-tokens", login.Token, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
