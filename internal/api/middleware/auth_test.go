package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adiweb12/Devwatsee/pkg/logger"
	"github.com/adiweb12/Devwatsee/pkg/utils"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := logger.Init("error", "console", "stdout", ""); err != nil {
		fmt.Fprintln(os.Stderr, "logger init:", err)
		os.Exit(1)
	}
	os.Exit(m.Run())
}

func testTokens() *utils.TokenManager {
	return utils.NewTokenManager("test-secret", "watsee-test", time.Hour)
}

func serve(r *gin.Engine, method, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func assertMessage(t *testing.T, rec *httptest.ResponseRecorder, want string) {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	if body["message"] != want {
		t.Fatalf("expected message %q, got %v", want, body["message"])
	}
	if body["success"] != false {
		t.Fatalf("expected success false, got %v", body["success"])
	}
}

func TestAuthRequired(t *testing.T) {
	tokens := testTokens()
	valid, err := tokens.GenerateForUser(42)
	if err != nil {
		t.Fatalf("GenerateForUser: %v", err)
	}
	expired, err := utils.NewTokenManager("test-secret", "watsee-test", -time.Minute).GenerateForUser(42)
	if err != nil {
		t.Fatalf("GenerateForUser: %v", err)
	}
	foreign, err := utils.NewTokenManager("other-secret", "watsee-test", time.Hour).GenerateForUser(42)
	if err != nil {
		t.Fatalf("GenerateForUser: %v", err)
	}

	r := gin.New()
	r.GET("/protected", AuthRequired(tokens), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	cases := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer garbage", http.StatusUnauthorized},
		{"foreign secret", "Bearer " + foreign, http.StatusUnauthorized},
		{"expired token", "Bearer " + expired, http.StatusUnauthorized},
		{"valid token", "Bearer " + valid, http.StatusNoContent},
		{"lowercase scheme", "bearer " + valid, http.StatusNoContent},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(r, http.MethodGet, "/protected", tc.header)
			if rec.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, rec.Code)
			}
			if tc.wantStatus == http.StatusUnauthorized {
				assertMessage(t, rec, "Missing or invalid token")
			}
		})
	}
}

func TestUserRequiredResolvesMemberID(t *testing.T) {
	tokens := testTokens()
	token, err := tokens.GenerateForUser(42)
	if err != nil {
		t.Fatalf("GenerateForUser: %v", err)
	}

	var gotID int64
	r := gin.New()
	r.GET("/member", AuthRequired(tokens), UserRequired(), func(c *gin.Context) {
		id, ok := GetCurrentUserID(c)
		if !ok {
			t.Error("expected a user id in the context")
		}
		gotID = id
		c.Status(http.StatusNoContent)
	})

	rec := serve(r, http.MethodGet, "/member", "Bearer "+token)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", rec.Code)
	}
	if gotID != 42 {
		t.Fatalf("expected user id 42, got %d", gotID)
	}
}

func TestUserRequiredRejectsAdminToken(t *testing.T) {
	tokens := testTokens()
	token, err := tokens.Generate(utils.AdminSubject)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	r := gin.New()
	r.GET("/member", AuthRequired(tokens), UserRequired(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	rec := serve(r, http.MethodGet, "/member", "Bearer "+token)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", rec.Code)
	}
	assertMessage(t, rec, "Forbidden")
}

func TestAdminRequired(t *testing.T) {
	tokens := testTokens()
	adminToken, err := tokens.Generate(utils.AdminSubject)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	memberToken, err := tokens.GenerateForUser(42)
	if err != nil {
		t.Fatalf("GenerateForUser: %v", err)
	}

	r := gin.New()
	r.GET("/admin", AuthRequired(tokens), AdminRequired(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	rec := serve(r, http.MethodGet, "/admin", "Bearer "+memberToken)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected status 403 for a member token, got %d", rec.Code)
	}
	assertMessage(t, rec, "Forbidden")

	rec = serve(r, http.MethodGet, "/admin", "Bearer "+adminToken)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status 204 for the admin token, got %d", rec.Code)
	}
}
