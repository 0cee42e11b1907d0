package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"syncarea.app/api-server/core/db/sqlc"
)

// Provider is the pool-backed StoreProvider and TxRunner used outside of
// explicit transactions.
type Provider struct {
	pool    *pgxpool.Pool
	queries *sqlc.Queries
}

var (
	_ StoreProvider = (*Provider)(nil)
	_ TxRunner      = (*Provider)(nil)
)

func NewProvider(pool *pgxpool.Pool) *Provider {
	return &Provider{
		pool:    pool,
		queries: sqlc.New(pool),
	}
}

func (p *Provider) Users() UserStore             { return newUserStore(p.queries) }
func (p *Provider) Workspaces() WorkspaceStore   { return newWorkspaceStore(p.queries) }
func (p *Provider) Memberships() MembershipStore { return newMembershipStore(p.queries) }
func (p *Provider) WorkItems() WorkItemStore     { return newWorkItemStore(p.queries) }
func (p *Provider) Photos() PhotoStore           { return newPhotoStore(p.queries) }
func (p *Provider) Shares() ShareStore           { return newShareStore(p.queries) }

func (p *Provider) WithTx(ctx context.Context, fn func(StoreProvider) error) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(&txProvider{queries: p.queries.WithTx(tx)}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

type txProvider struct {
	queries *sqlc.Queries
}

var _ StoreProvider = (*txProvider)(nil)

func (p *txProvider) Users() UserStore             { return newUserStore(p.queries) }
func (p *txProvider) Workspaces() WorkspaceStore   { return newWorkspaceStore(p.queries) }
func (p *txProvider) Memberships() MembershipStore { return newMembershipStore(p.queries) }
func (p *txProvider) WorkItems() WorkItemStore     { return newWorkItemStore(p.queries) }
func (p *txProvider) Photos() PhotoStore           { return newPhotoStore(p.queries) }
func (p *txProvider) Shares() ShareStore           { return newShareStore(p.queries) }
