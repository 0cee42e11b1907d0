// Package authz decides, per request, whether a caller may act inside a
// workspace. The evaluator is pure and fail-closed: every internal failure
// resolves to Deny, and it never panics or propagates an error past this
// boundary.
package authz

import (
	"context"

	"syncarea.app/api-server/internal/model"
)

// Principal is the identity the external identity provider attached to the
// request: a caller identifier plus a role claim.
type Principal struct {
	UserID int64
	Role   model.Role
}

// Decision is an explicit tagged Allow/Deny value. Deny always carries a
// reason; Allow never does.
type Decision struct {
	Allowed bool
	Reason  string
}

func Allow() Decision {
	return Decision{Allowed: true}
}

func Deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// MembershipChecker is the one read the evaluator performs. It must respect
// ctx cancellation; a cancelled lookup resolves to Deny rather than hanging.
type MembershipChecker interface {
	IsMember(ctx context.Context, userID, workspaceID int64) (bool, error)
}

type Evaluator struct {
	memberships MembershipChecker
}

func NewEvaluator(memberships MembershipChecker) *Evaluator {
	return &Evaluator{memberships: memberships}
}

// Evaluate allows admins and superadmins unconditionally, then requires a
// parseable workspace identifier, a caller identifier, and a membership row
// for the pair. Read-only; no side effects.
func (e *Evaluator) Evaluate(ctx context.Context, p Principal, workspaceID int64) Decision {
	if p.Role.IsAdmin() {
		return Allow()
	}
	if workspaceID <= 0 {
		return Deny("missing workspace identifier")
	}
	if p.UserID <= 0 {
		return Deny("missing caller identifier")
	}
	if err := ctx.Err(); err != nil {
		return Deny("request cancelled")
	}

	isMember, err := e.memberships.IsMember(ctx, p.UserID, workspaceID)
	if err != nil {
		// Fail closed on any store failure, including cancellation.
		return Deny("membership lookup failed")
	}
	if !isMember {
		return Deny("not a workspace member")
	}
	return Allow()
}
