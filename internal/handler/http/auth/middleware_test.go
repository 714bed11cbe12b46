package auth_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"newsdesk/internal/handler/http/auth"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func validClaims() jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"sub":  "admin",
		"role": "admin",
		"iat":  now.Unix(),
		"exp":  now.Add(time.Hour).Unix(),
	}
}

func TestRequireAuth_ValidToken(t *testing.T) {
	var gotClaims auth.Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims, _ = auth.UserFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	handler := auth.RequireAuth([]byte(testSecret), next)

	req := httptest.NewRequest(http.MethodPost, "/news", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, validClaims()))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusNoContent)
	}
	if gotClaims.Subject != "admin" || gotClaims.Role != "admin" {
		t.Errorf("claims = %+v, want subject and role admin", gotClaims)
	}
}

func TestRequireAuth_Rejections(t *testing.T) {
	expired := validClaims()
	expired["exp"] = time.Now().Add(-time.Minute).Unix()

	noSub := validClaims()
	delete(noSub, "sub")

	tests := []struct {
		name  string
		authz string
	}{
		{name: "missing header", authz: ""},
		{name: "basic scheme", authz: "Basic YWRtaW46cGFzc3dvcmQ="},
		{name: "bare token without scheme", authz: signToken(t, testSecret, validClaims())},
		{name: "malformed token", authz: "Bearer not.a.token"},
		{name: "wrong secret", authz: "Bearer " + signToken(t, "some-other-secret-entirely", validClaims())},
		{name: "expired token", authz: "Bearer " + signToken(t, testSecret, expired)},
		{name: "missing sub claim", authz: "Bearer " + signToken(t, testSecret, noSub)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				called = true
			})
			handler := auth.RequireAuth([]byte(testSecret), next)

			req := httptest.NewRequest(http.MethodPost, "/news", strings.NewReader(`{"text":"x"}`))
			if tt.authz != "" {
				req.Header.Set("Authorization", tt.authz)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if rr.Code != http.StatusUnauthorized {
				t.Fatalf("status code = %d, want %d", rr.Code, http.StatusUnauthorized)
			}
			if called {
				t.Error("wrapped handler was called, auth must reject before the body is touched")
			}

			body, _ := io.ReadAll(rr.Body)
			if !strings.Contains(string(body), `"ok":false`) {
				t.Errorf("body = %s, want ok:false envelope", body)
			}
		})
	}
}

func TestRequireAuth_NoneAlgorithmRejected(t *testing.T) {
	// Tokens signed with "none" must never pass, even with a valid claim set.
	tok := jwt.NewWithClaims(jwt.SigningMethodNone, validClaims())
	signed, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	handler := auth.RequireAuth([]byte(testSecret), http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("handler called with none-signed token")
	}))

	req := httptest.NewRequest(http.MethodPost, "/news", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusUnauthorized)
	}
}
