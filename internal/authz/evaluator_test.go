package authz_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"syncarea.app/api-server/internal/authz"
	"syncarea.app/api-server/internal/model"
)

type mockMembershipChecker struct {
	isMemberFn func(ctx context.Context, userID, workspaceID int64) (bool, error)
	calls      int
}

func (m *mockMembershipChecker) IsMember(ctx context.Context, userID, workspaceID int64) (bool, error) {
	m.calls++
	if m.isMemberFn != nil {
		return m.isMemberFn(ctx, userID, workspaceID)
	}
	return false, nil
}

var _ = Describe("Evaluator", func() {
	var (
		checker   *mockMembershipChecker
		evaluator *authz.Evaluator
		ctx       context.Context
	)

	BeforeEach(func() {
		checker = &mockMembershipChecker{}
		evaluator = authz.NewEvaluator(checker)
		ctx = context.Background()
	})

	It("allows admins without consulting memberships", func() {
		d := evaluator.Evaluate(ctx, authz.Principal{UserID: 1, Role: model.RoleAdmin}, 99)

		Expect(d.Allowed).To(BeTrue())
		Expect(checker.calls).To(BeZero())
	})

	It("allows superadmins even with no caller identifier", func() {
		d := evaluator.Evaluate(ctx, authz.Principal{Role: model.RoleSuperAdmin}, 99)

		Expect(d.Allowed).To(BeTrue())
	})

	It("allows a regular user with a membership row", func() {
		checker.isMemberFn = func(_ context.Context, userID, workspaceID int64) (bool, error) {
			Expect(userID).To(Equal(int64(7)))
			Expect(workspaceID).To(Equal(int64(42)))
			return true, nil
		}

		d := evaluator.Evaluate(ctx, authz.Principal{UserID: 7, Role: model.RoleUser}, 42)

		Expect(d.Allowed).To(BeTrue())
	})

	It("denies a regular user without a membership row", func() {
		d := evaluator.Evaluate(ctx, authz.Principal{UserID: 7, Role: model.RoleUser}, 42)

		Expect(d.Allowed).To(BeFalse())
		Expect(d.Reason).To(Equal("not a workspace member"))
	})

	It("denies when the workspace identifier is absent", func() {
		d := evaluator.Evaluate(ctx, authz.Principal{UserID: 7, Role: model.RoleUser}, 0)

		Expect(d.Allowed).To(BeFalse())
		Expect(d.Reason).To(Equal("missing workspace identifier"))
		Expect(checker.calls).To(BeZero())
	})

	It("denies when the caller identifier is absent", func() {
		d := evaluator.Evaluate(ctx, authz.Principal{Role: model.RoleUser}, 42)

		Expect(d.Allowed).To(BeFalse())
		Expect(d.Reason).To(Equal("missing caller identifier"))
		Expect(checker.calls).To(BeZero())
	})

	It("fails closed when the membership store errors", func() {
		checker.isMemberFn = func(context.Context, int64, int64) (bool, error) {
			return false, errors.New("connection refused")
		}

		d := evaluator.Evaluate(ctx, authz.Principal{UserID: 7, Role: model.RoleUser}, 42)

		Expect(d.Allowed).To(BeFalse())
		Expect(d.Reason).To(Equal("membership lookup failed"))
	})

	It("resolves to deny on a cancelled context instead of hanging", func() {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		d := evaluator.Evaluate(cancelled, authz.Principal{UserID: 7, Role: model.RoleUser}, 42)

		Expect(d.Allowed).To(BeFalse())
		Expect(checker.calls).To(BeZero())
	})

	It("never allows an unknown role without membership", func() {
		d := evaluator.Evaluate(ctx, authz.Principal{UserID: 7, Role: model.Role("owner")}, 42)

		Expect(d.Allowed).To(BeFalse())
	})
})
