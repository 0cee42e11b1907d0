package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"syncarea.app/api-server/internal/authz"
	"syncarea.app/api-server/internal/http/middleware"
)

type stubMemberships struct {
	isMemberFn func(ctx context.Context, userID, workspaceID int64) (bool, error)
}

func (s *stubMemberships) IsMember(ctx context.Context, userID, workspaceID int64) (bool, error) {
	if s.isMemberFn != nil {
		return s.isMemberFn(ctx, userID, workspaceID)
	}
	return false, nil
}

var _ = Describe("WorkspaceMember", func() {
	var (
		router      *gin.Engine
		memberships *stubMemberships
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		memberships = &stubMemberships{}
		evaluator := authz.NewEvaluator(memberships)

		group := router.Group("/workspaces/:workspace_id",
			middleware.Identity(),
			middleware.WorkspaceMember(evaluator),
		)
		group.GET("", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})
	})

	get := func(path string, headers map[string]string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("lets a member through", func() {
		memberships.isMemberFn = func(_ context.Context, userID, workspaceID int64) (bool, error) {
			Expect(userID).To(Equal(int64(10)))
			Expect(workspaceID).To(Equal(int64(1)))
			return true, nil
		}

		w := get("/workspaces/1", map[string]string{"X-User-ID": "10", "X-User-Role": "user"})

		Expect(w.Code).To(Equal(http.StatusOK))
	})

	It("denies a non-member with the reason", func() {
		w := get("/workspaces/1", map[string]string{"X-User-ID": "10", "X-User-Role": "user"})

		Expect(w.Code).To(Equal(http.StatusForbidden))
		var resp map[string]string
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["error"]).To(Equal("not a workspace member"))
	})

	It("lets an admin through without a membership row", func() {
		memberships.isMemberFn = func(_ context.Context, _, _ int64) (bool, error) {
			Fail("membership store must not be consulted for admins")
			return false, nil
		}

		w := get("/workspaces/1", map[string]string{"X-User-ID": "10", "X-User-Role": "admin"})

		Expect(w.Code).To(Equal(http.StatusOK))
	})

	It("fails closed when the membership lookup errors", func() {
		memberships.isMemberFn = func(_ context.Context, _, _ int64) (bool, error) {
			return false, errors.New("connection lost")
		}

		w := get("/workspaces/1", map[string]string{"X-User-ID": "10", "X-User-Role": "user"})

		Expect(w.Code).To(Equal(http.StatusForbidden))
	})

	It("denies an unparseable workspace id", func() {
		w := get("/workspaces/abc", map[string]string{"X-User-ID": "10", "X-User-Role": "user"})

		Expect(w.Code).To(Equal(http.StatusForbidden))
		var resp map[string]string
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["error"]).To(Equal("missing workspace identifier"))
	})

	It("rejects requests without identity headers before evaluating", func() {
		w := get("/workspaces/1", nil)

		Expect(w.Code).To(Equal(http.StatusUnauthorized))
	})

	It("rejects an unknown role claim", func() {
		w := get("/workspaces/1", map[string]string{"X-User-ID": "10", "X-User-Role": "owner"})

		Expect(w.Code).To(Equal(http.StatusUnauthorized))
	})
})
