package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"tripdesk/internal/models/db_models"
	"tripdesk/pkg/utils"
)

const testCookie = "tripdesk_session"

func issueToken(t *testing.T, role db_models.Role, extras ...db_models.Permission) string {
	t.Helper()
	account := db_models.Account{Role: role}
	names := account.PermissionNames()
	for _, p := range extras {
		names = append(names, string(p))
	}
	token, err := utils.CreateToken(uuid.New(), string(role), names)
	if err != nil {
		t.Fatalf("token fixture: %v", err)
	}
	return token
}

func newAuthRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	token := issueToken(t, db_models.RoleApprover)

	r := gin.New()
	auth := r.Group("", SessionAuthMiddleware(testCookie))
	auth.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": c.GetString("role")})
	})
	auth.GET("/approve", RequirePermission(db_models.PermApproveRequest), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	auth.GET("/all", RequirePermission(db_models.PermViewAllRequests), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r, token
}

func TestSessionAuthAcceptsCookie(t *testing.T) {
	r, token := newAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestSessionAuthFallsBackToBearer(t *testing.T) {
	r, token := newAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestSessionAuthRejectsMissingAndBadTokens(t *testing.T) {
	r, _ := newAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("no credentials: status = %d, want 401", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: "not-a-jwt"})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("garbage token: status = %d, want 401", w.Code)
	}
}

func TestRequirePermission(t *testing.T) {
	r, token := newAuthRouter(t)

	// Approver role carries approve_request but not view_all_requests.
	req := httptest.NewRequest(http.MethodGet, "/approve", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("granted permission: status = %d, want 200", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/all", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: token})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("missing permission: status = %d, want 403", w.Code)
	}
}

func TestRequirePermissionHonorsAccountGrants(t *testing.T) {
	r, _ := newAuthRouter(t)

	// A requester-role session with a per-account approve_request grant
	// must pass the same gate its profile advertises.
	granted := issueToken(t, db_models.RoleRequester, db_models.PermApproveRequest)
	req := httptest.NewRequest(http.MethodGet, "/approve", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: granted})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("granted session: status = %d, want 200", w.Code)
	}

	plain := issueToken(t, db_models.RoleRequester)
	req = httptest.NewRequest(http.MethodGet, "/approve", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: plain})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("ungranted session: status = %d, want 403", w.Code)
	}
}

func TestSessionWithoutPermissionClaimFallsBackToRole(t *testing.T) {
	r, _ := newAuthRouter(t)

	legacy, err := utils.CreateToken(uuid.New(), string(db_models.RoleApprover), nil)
	if err != nil {
		t.Fatalf("token fixture: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/approve", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: legacy})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("legacy token: status = %d, want 200 via role fallback", w.Code)
	}
}
