package service_test

import (
	"context"
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"syncarea.app/api-server/core/config"
	"syncarea.app/api-server/internal/imagepath"
	"syncarea.app/api-server/internal/model"
	"syncarea.app/api-server/internal/service"
)

func strptr(s string) *string { return &s }

var _ = Describe("WorkspaceService", func() {
	var (
		ctx      context.Context
		provider *fakeProvider
		root     string
		resolver *imagepath.Resolver
		svc      service.WorkspaceService
	)

	BeforeEach(func() {
		ctx = context.Background()
		provider = newFakeProvider()
		root = GinkgoT().TempDir()
		resolver = imagepath.NewResolver(config.StorageConfig{
			ImageRoot:       root,
			PublicImageBase: "images",
		})
		svc = service.NewWorkspaceService(provider, provider, resolver)
	})

	seedWorkspace := func(id int64, name, room string) *model.Workspace {
		ws := &model.Workspace{
			ID:         id,
			Name:       name,
			RoomNumber: room,
			Password:   strptr("secret"),
			CreatedAt:  time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
		}
		provider.workspaces[id] = ws
		return ws
	}

	Describe("Create", func() {
		It("persists the workspace with a generated identifier", func() {
			ws, err := svc.Create(ctx, "Acme", "101", strptr("pw"))

			Expect(err).NotTo(HaveOccurred())
			Expect(ws.ID).NotTo(BeZero())
			Expect(provider.workspaces).To(HaveKey(ws.ID))
		})

		It("rejects a taken room number", func() {
			seedWorkspace(1, "Acme", "101")

			_, err := svc.Create(ctx, "Other", "101", nil)

			Expect(err).To(MatchError(service.ErrRoomNumberTaken))
		})

		It("requires a name and a room number", func() {
			_, err := svc.Create(ctx, "", "101", nil)
			Expect(err).To(MatchError(service.ErrValidation))

			_, err = svc.Create(ctx, "Acme", "", nil)
			Expect(err).To(MatchError(service.ErrValidation))
		})
	})

	Describe("Update", func() {
		It("moves the photo directory before committing the rename", func() {
			ws := seedWorkspace(1, "Acme", "101")
			oldDir := resolver.WorkspaceDir(ws)
			Expect(os.MkdirAll(filepath.Join(oldDir, "2024", "3"), 0o755)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(oldDir, "2024", "3", "a.jpg"), []byte("x"), 0o644)).To(Succeed())

			updated, err := svc.Update(ctx, 1, service.UpdateWorkspaceParams{
				Name: strptr("AcmeRenamed"),
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Name).To(Equal("AcmeRenamed"))
			Expect(filepath.Join(root, "AcmeRenamed", "101", "2024", "3", "a.jpg")).To(BeAnExistingFile())
			Expect(oldDir).NotTo(BeADirectory())
		})

		It("succeeds when no photo directory exists yet", func() {
			seedWorkspace(1, "Acme", "101")

			updated, err := svc.Update(ctx, 1, service.UpdateWorkspaceParams{
				RoomNumber: strptr("202"),
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.RoomNumber).To(Equal("202"))
		})

		It("treats empty strings as unchanged fields", func() {
			seedWorkspace(1, "Acme", "101")

			updated, err := svc.Update(ctx, 1, service.UpdateWorkspaceParams{
				Name:     strptr(""),
				Password: strptr(""),
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Name).To(Equal("Acme"))
			Expect(*updated.Password).To(Equal("secret"))
		})

		It("rejects a room number already held by another workspace", func() {
			seedWorkspace(1, "Acme", "101")
			seedWorkspace(2, "Other", "202")

			_, err := svc.Update(ctx, 1, service.UpdateWorkspaceParams{
				RoomNumber: strptr("202"),
			})

			Expect(err).To(MatchError(service.ErrRoomNumberTaken))
		})

		It("returns not found for an unknown workspace", func() {
			_, err := svc.Update(ctx, 99, service.UpdateWorkspaceParams{Name: strptr("x")})
			Expect(err).To(MatchError(service.ErrWorkspaceNotFound))
		})
	})

	Describe("Delete", func() {
		It("removes dependents, the row and the photo directory", func() {
			ws := seedWorkspace(1, "Acme", "101")
			provider.users[10] = &model.User{ID: 10, Username: "worker", Role: model.RoleUser}
			provider.memberships[membershipKey{userID: 10, workspaceID: 1}] = true
			provider.workItems[100] = &model.WorkItem{ID: 100, WorkspaceID: 1, UserID: 10, Date: time.Now()}
			provider.photos[1000] = &model.Photo{ID: 1000, WorkItemID: 100, FileName: "a.jpg"}
			provider.shares[10000] = &model.Share{ID: 10000, WorkspaceID: 1, Token: "t", IsActive: true, ExpiresAt: time.Now().Add(time.Hour)}

			dir := resolver.WorkspaceDir(ws)
			Expect(os.MkdirAll(filepath.Join(dir, "2024", "3"), 0o755)).To(Succeed())

			Expect(svc.Delete(ctx, 1)).To(Succeed())

			Expect(provider.workspaces).To(BeEmpty())
			Expect(provider.memberships).To(BeEmpty())
			Expect(provider.workItems).To(BeEmpty())
			Expect(provider.photos).To(BeEmpty())
			Expect(provider.shares).To(BeEmpty())
			Expect(dir).NotTo(BeADirectory())
		})

		It("leaves a same-name sibling's directory untouched", func() {
			ws := seedWorkspace(1, "Acme", "101")
			sibling := seedWorkspace(2, "Acme", "202")
			Expect(os.MkdirAll(resolver.WorkspaceDir(ws), 0o755)).To(Succeed())
			Expect(os.MkdirAll(resolver.WorkspaceDir(sibling), 0o755)).To(Succeed())

			Expect(svc.Delete(ctx, 1)).To(Succeed())

			Expect(resolver.WorkspaceDir(sibling)).To(BeADirectory())
		})

		It("returns not found for an unknown workspace", func() {
			Expect(svc.Delete(ctx, 99)).To(MatchError(service.ErrWorkspaceNotFound))
		})
	})
})
