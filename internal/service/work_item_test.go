package service_test

import (
	"context"
	"errors"
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

var _ = Describe("WorkItemService", func() {
	var (
		ctx      context.Context
		provider *fakeProvider
		root     string
		resolver *imagepath.Resolver
		svc      service.WorkItemService
		ws       *model.Workspace
	)

	BeforeEach(func() {
		ctx = context.Background()
		provider = newFakeProvider()
		root = GinkgoT().TempDir()
		resolver = imagepath.NewResolver(config.StorageConfig{
			ImageRoot:       root,
			PublicImageBase: "images",
		})
		svc = service.NewWorkItemService(provider, provider, resolver)

		ws = &model.Workspace{
			ID:         1,
			Name:       "Acme",
			RoomNumber: "101",
			CreatedAt:  time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		}
		provider.workspaces[1] = ws
		provider.users[10] = &model.User{
			ID:       10,
			Username: "worker",
			Name:     strptr("Jo Worker"),
			Role:     model.RoleUser,
		}
	})

	imageDir := func() string {
		return filepath.Join(root, "Acme", "101", "2024", "1")
	}

	filesIn := func(dir string) []os.DirEntry {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil
		}
		return entries
	}

	Describe("Create", func() {
		It("writes files and commits item and photo rows together", func() {
			view, err := svc.Create(ctx, service.CreateWorkItemParams{
				UserID:      10,
				WorkspaceID: 1,
				Remark:      strptr("tiling done"),
				Date:        time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
				Images: []service.ImageUpload{
					{FileName: "before.jpg", Data: []byte("img1")},
					{FileName: "after.png", Data: []byte("img2")},
				},
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(view.PhotoCount).To(Equal(2))
			Expect(view.CreatorName).To(Equal("Jo Worker"))
			Expect(view.PhotoURLs).To(HaveLen(2))
			for _, url := range view.PhotoURLs {
				Expect(url).To(HavePrefix("images/Acme/101/2024/1/"))
			}

			Expect(provider.workItems).To(HaveLen(1))
			Expect(provider.photos).To(HaveLen(2))
			Expect(filesIn(imageDir())).To(HaveLen(2))
		})

		It("stores files under generated names, keeping the upload's extension", func() {
			_, err := svc.Create(ctx, service.CreateWorkItemParams{
				UserID:      10,
				WorkspaceID: 1,
				Date:        time.Now(),
				Images: []service.ImageUpload{
					{FileName: "site photo.png", Data: []byte("x")},
					{FileName: "noext", Data: []byte("y")},
				},
			})

			Expect(err).NotTo(HaveOccurred())
			names := []string{}
			for _, e := range filesIn(imageDir()) {
				names = append(names, e.Name())
			}
			Expect(names).To(HaveLen(2))
			Expect(names).NotTo(ContainElement("site photo.png"))
			Expect(names).To(ContainElement(HaveSuffix(".png")))
			Expect(names).To(ContainElement(HaveSuffix(".jpg")))
		})

		It("accepts an item with no images", func() {
			view, err := svc.Create(ctx, service.CreateWorkItemParams{
				UserID:      10,
				WorkspaceID: 1,
				Date:        time.Now(),
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(view.PhotoCount).To(BeZero())
			Expect(provider.workItems).To(HaveLen(1))
		})

		It("commits nothing and removes written files when a photo row fails", func() {
			provider.photoCreateErr = errors.New("insert failed")
			provider.photoFailAfter = 1

			_, err := svc.Create(ctx, service.CreateWorkItemParams{
				UserID:      10,
				WorkspaceID: 1,
				Date:        time.Now(),
				Images: []service.ImageUpload{
					{FileName: "a.jpg", Data: []byte("1")},
					{FileName: "b.jpg", Data: []byte("2")},
				},
			})

			Expect(err).To(HaveOccurred())
			Expect(provider.workItems).To(BeEmpty())
			Expect(provider.photos).To(BeEmpty())
			Expect(filesIn(imageDir())).To(BeEmpty())
		})

		It("commits nothing and removes written files when the item row fails", func() {
			provider.workItemCreateErr = errors.New("insert failed")

			_, err := svc.Create(ctx, service.CreateWorkItemParams{
				UserID:      10,
				WorkspaceID: 1,
				Date:        time.Now(),
				Images:      []service.ImageUpload{{FileName: "a.jpg", Data: []byte("1")}},
			})

			Expect(err).To(HaveOccurred())
			Expect(provider.workItems).To(BeEmpty())
			Expect(filesIn(imageDir())).To(BeEmpty())
		})

		It("rejects an unknown workspace before touching the filesystem", func() {
			_, err := svc.Create(ctx, service.CreateWorkItemParams{
				UserID:      10,
				WorkspaceID: 99,
				Date:        time.Now(),
				Images:      []service.ImageUpload{{FileName: "a.jpg", Data: []byte("1")}},
			})

			Expect(err).To(MatchError(service.ErrWorkspaceNotFound))
			_, statErr := os.Stat(filepath.Join(root, "Acme"))
			Expect(os.IsNotExist(statErr)).To(BeTrue())
		})

		It("rejects an unknown creator", func() {
			_, err := svc.Create(ctx, service.CreateWorkItemParams{
				UserID:      99,
				WorkspaceID: 1,
				Date:        time.Now(),
			})

			Expect(err).To(MatchError(service.ErrUserNotFound))
		})

		It("requires a date", func() {
			_, err := svc.Create(ctx, service.CreateWorkItemParams{
				UserID:      10,
				WorkspaceID: 1,
			})

			Expect(err).To(MatchError(service.ErrValidation))
		})
	})

	Describe("ListByWorkspace", func() {
		BeforeEach(func() {
			provider.workItems[100] = &model.WorkItem{
				ID: 100, WorkspaceID: 1, UserID: 10,
				Date: time.Date(2024, time.June, 2, 0, 0, 0, 0, time.UTC),
			}
			provider.workItems[101] = &model.WorkItem{
				ID: 101, WorkspaceID: 1, UserID: 10,
				Date: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
			}
			provider.photos[1000] = &model.Photo{ID: 1000, WorkItemID: 100, FileName: "a.jpg"}
		})

		It("orders items by date ascending with photos grouped per item", func() {
			views, err := svc.ListByWorkspace(ctx, 1)

			Expect(err).NotTo(HaveOccurred())
			Expect(views).To(HaveLen(2))
			Expect(views[0].ID).To(Equal(int64(101)))
			Expect(views[0].PhotoCount).To(BeZero())
			Expect(views[1].ID).To(Equal(int64(100)))
			Expect(views[1].PhotoURLs).To(ConsistOf("images/Acme/101/2024/1/a.jpg"))
		})

		It("recomputes photo URLs from the workspace's current name", func() {
			ws.Name = "AcmeRenamed"

			views, err := svc.ListByWorkspace(ctx, 1)

			Expect(err).NotTo(HaveOccurred())
			Expect(views[1].PhotoURLs).To(ConsistOf("images/AcmeRenamed/101/2024/1/a.jpg"))
		})

		It("returns not found for an unknown workspace", func() {
			_, err := svc.ListByWorkspace(ctx, 99)
			Expect(err).To(MatchError(service.ErrWorkspaceNotFound))
		})
	})
})
