package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/gigwork-ledger/internal/auth"
	"github.com/nurpe/gigwork-ledger/internal/model"
)

type stubProfileResolver struct {
	profiles map[uuid.UUID]*model.Profile
}

func (s *stubProfileResolver) GetProfile(_ context.Context, id uuid.UUID) (*model.Profile, error) {
	profile, ok := s.profiles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return profile, nil
}

func newAuthRouter(t *testing.T, parser *auth.Parser, resolver ProfileResolver) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/ping", Auth(parser, resolver), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestAuth_ResolvesPrincipal(t *testing.T) {
	parser := auth.NewParser("test-secret")
	profile := &model.Profile{ID: uuid.New(), Type: model.ProfileTypeClient, FirstName: "Ada", LastName: "L"}
	resolver := &stubProfileResolver{profiles: map[uuid.UUID]*model.Profile{profile.ID: profile}}

	gin.SetMode(gin.TestMode)
	var seen model.Principal
	router := gin.New()
	router.GET("/ping", Auth(parser, resolver), func(c *gin.Context) {
		principal, ok := MustPrincipal(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		seen = principal
		c.Status(http.StatusOK)
	})

	token, err := parser.Issue(profile.ID, time.Hour)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if seen.ProfileID != profile.ID {
		t.Errorf("principal profile id = %v, want %v", seen.ProfileID, profile.ID)
	}
	if !seen.IsClient() {
		t.Error("principal must carry the profile type")
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	parser := auth.NewParser("test-secret")
	router := newAuthRouter(t, parser, &stubProfileResolver{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAuth_UnknownProfile(t *testing.T) {
	parser := auth.NewParser("test-secret")
	router := newAuthRouter(t, parser, &stubProfileResolver{profiles: map[uuid.UUID]*model.Profile{}})

	token, err := parser.Issue(uuid.New(), time.Hour)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	parser := auth.NewParser("test-secret")
	router := newAuthRouter(t, parser, &stubProfileResolver{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Token abc")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}
