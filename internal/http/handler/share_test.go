package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"syncarea.app/api-server/internal/http/handler"
	"syncarea.app/api-server/internal/model"
	"syncarea.app/api-server/internal/service"
)

var _ = Describe("ShareHandler", func() {
	var (
		router    *gin.Engine
		shares    *mockShareService
		workItems *mockWorkItemService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		shares = &mockShareService{}
		workItems = &mockWorkItemService{}
		h := handler.NewShareHandler(shares, workItems)

		router.POST("/shares", h.Create)
		router.POST("/shares/:id/revoke", h.Revoke)
		router.GET("/shared/:token", h.Resolve)
	})

	It("creates a share", func() {
		expiry := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
		shares.createFn = func(_ context.Context, workspaceID int64, expiresAt time.Time) (*model.Share, error) {
			Expect(workspaceID).To(Equal(int64(1)))
			Expect(expiresAt).To(BeTemporally("~", expiry, time.Second))
			return &model.Share{ID: 5, WorkspaceID: 1, Token: "tok", ExpiresAt: expiresAt, IsActive: true}, nil
		}

		body, _ := json.Marshal(map[string]interface{}{
			"workspace_id": "1",
			"expires_at":   expiry.Format(time.RFC3339),
		})
		req := httptest.NewRequest(http.MethodPost, "/shares", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusCreated))
		var resp map[string]interface{}
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["token"]).To(Equal("tok"))
	})

	It("returns 400 for a past expiry", func() {
		shares.createFn = func(_ context.Context, _ int64, _ time.Time) (*model.Share, error) {
			return nil, service.ErrPastExpiry
		}

		body, _ := json.Marshal(map[string]interface{}{
			"workspace_id": "1",
			"expires_at":   time.Now().Add(-time.Hour).Format(time.RFC3339),
		})
		req := httptest.NewRequest(http.MethodPost, "/shares", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("revokes a share", func() {
		revoked := false
		shares.revokeFn = func(_ context.Context, shareID int64) error {
			Expect(shareID).To(Equal(int64(5)))
			revoked = true
			return nil
		}

		req := httptest.NewRequest(http.MethodPost, "/shares/5/revoke", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(revoked).To(BeTrue())
	})

	Describe("Resolve", func() {
		It("returns the workspace and its work items for a live token", func() {
			shares.resolveFn = func(_ context.Context, token string) (*model.Workspace, error) {
				Expect(token).To(Equal("tok"))
				return &model.Workspace{ID: 1, Name: "Acme", RoomNumber: "101"}, nil
			}
			workItems.listFn = func(_ context.Context, workspaceID int64) ([]service.WorkItemView, error) {
				Expect(workspaceID).To(Equal(int64(1)))
				return []service.WorkItemView{{ID: 9, CreatorName: "Jo"}}, nil
			}

			req := httptest.NewRequest(http.MethodGet, "/shared/tok", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string]json.RawMessage
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp).To(HaveKey("workspace"))
			Expect(resp).To(HaveKey("work_items"))
		})

		It("returns 404 for a dead token", func() {
			shares.resolveFn = func(_ context.Context, _ string) (*model.Workspace, error) {
				return nil, service.ErrShareNotFound
			}

			req := httptest.NewRequest(http.MethodGet, "/shared/expired", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})
})
