// Package imagepath derives where a workspace's photos live on disk and how
// they are addressed publicly. Both derivations share the same hierarchy,
// {root}/{name}/{roomNumber}/{year}/{month}, keyed off the workspace's
// creation timestamp. Partitioning by workspace and calendar month bounds
// per-directory file counts and keeps browsing time-ordered.
package imagepath

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"syncarea.app/api-server/core/config"
	"syncarea.app/api-server/internal/model"
)

type Resolver struct {
	root       string
	publicBase string
}

func NewResolver(cfg config.StorageConfig) *Resolver {
	return &Resolver{
		root:       cfg.ImageRoot,
		publicBase: cfg.PublicImageBase,
	}
}

// ImageDir returns the filesystem directory for the workspace's photos,
// creating it if absent. Repeated calls are no-ops once the directory exists.
func (r *Resolver) ImageDir(ws *model.Workspace) (string, error) {
	dir := filepath.Join(append([]string{r.root}, r.segments(ws)...)...)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating image directory %s: %w", dir, err)
	}
	return dir, nil
}

// WorkspaceDir returns the directory subtree owned by the workspace,
// {root}/{name}/{roomNumber}, without touching the filesystem. Removing it
// never affects a workspace with a different room number, even under the
// same name.
func (r *Resolver) WorkspaceDir(ws *model.Workspace) string {
	return filepath.Join(r.root, ws.Name, ws.RoomNumber)
}

// NameDir returns the directory shared by all workspaces with this name.
func (r *Resolver) NameDir(name string) string {
	return filepath.Join(r.root, name)
}

// WebPrefix mirrors ImageDir's hierarchy as a public URL prefix. Purely
// computational; no filesystem interaction.
func (r *Resolver) WebPrefix(ws *model.Workspace) string {
	return strings.Join(append([]string{r.publicBase}, r.segments(ws)...), "/")
}

// WebURL returns the public URL for one stored photo filename.
func (r *Resolver) WebURL(ws *model.Workspace, fileName string) string {
	return r.WebPrefix(ws) + "/" + fileName
}

// Month is deliberately not zero-padded ("2024/1"), matching the layout
// existing directories were created with.
func (r *Resolver) segments(ws *model.Workspace) []string {
	created := ws.CreatedAt
	return []string{
		ws.Name,
		ws.RoomNumber,
		strconv.Itoa(created.Year()),
		strconv.Itoa(int(created.Month())),
	}
}
