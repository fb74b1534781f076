package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/anand2468/easyeval/internal/util"
	"github.com/anand2468/easyeval/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func ownershipRouter(userID uint, resolve OwnerResolver) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID != 0 {
			c.Set("user", &util.Claims{UserID: userID})
		}
		c.Next()
	})
	r.GET("/exams/:id", RequireOwnership("id", resolve), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestRequireOwnership(t *testing.T) {
	resolveOwner42 := func(id uint) (uint, error) { return 42, nil }

	tests := []struct {
		name     string
		userID   uint
		path     string
		resolve  OwnerResolver
		wantCode int
	}{
		{
			name:     "owner passes",
			userID:   42,
			path:     "/exams/7",
			resolve:  resolveOwner42,
			wantCode: http.StatusOK,
		},
		{
			name:     "other user forbidden",
			userID:   9,
			path:     "/exams/7",
			resolve:  resolveOwner42,
			wantCode: http.StatusForbidden,
		},
		{
			name:     "missing claims unauthorized",
			userID:   0,
			path:     "/exams/7",
			resolve:  resolveOwner42,
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "non-numeric id rejected",
			userID:   42,
			path:     "/exams/abc",
			resolve:  resolveOwner42,
			wantCode: http.StatusBadRequest,
		},
		{
			name:   "unknown entity not found",
			userID: 42,
			path:   "/exams/7",
			resolve: func(id uint) (uint, error) {
				return 0, gorm.ErrRecordNotFound
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:   "resolver failure is internal",
			userID: 42,
			path:   "/exams/7",
			resolve: func(id uint) (uint, error) {
				return 0, errors.New("connection reset")
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ownershipRouter(tt.userID, tt.resolve)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			r.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.wantCode, w.Body.String())
			}
		})
	}
}

func TestRequireOwnershipResolverGetsParsedID(t *testing.T) {
	var got uint
	r := ownershipRouter(42, func(id uint) (uint, error) {
		got = id
		return 42, nil
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/exams/123", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got != 123 {
		t.Fatalf("resolver saw id %d, want 123", got)
	}
}
