package service

import (
	"syncarea.app/api-server/internal/imagepath"
	"syncarea.app/api-server/internal/store"
)

type Services struct {
	stores   store.StoreProvider
	tx       store.TxRunner
	resolver *imagepath.Resolver
}

func NewServices(stores store.StoreProvider, tx store.TxRunner, resolver *imagepath.Resolver) *Services {
	return &Services{
		stores:   stores,
		tx:       tx,
		resolver: resolver,
	}
}

func (s *Services) Workspaces() WorkspaceService {
	return NewWorkspaceService(s.stores, s.tx, s.resolver)
}

func (s *Services) WorkItems() WorkItemService {
	return NewWorkItemService(s.stores, s.tx, s.resolver)
}

func (s *Services) Memberships() MembershipService {
	return NewMembershipService(s.stores)
}

func (s *Services) Users() UserService {
	return NewUserService(s.stores, s.tx)
}

func (s *Services) Shares() ShareService {
	return NewShareService(s.stores)
}
