package usecase

import (
	"context"
	"salon_api/internal/usecase/interfaces"
)

// StaticRoleResolver treats a configured set of role ids as employee roles.
// The ids come from configuration (EMPLOYEE_ROLE_IDS) so that deployments
// with different role tables need no code change.
type StaticRoleResolver struct {
	employeeRoles map[int64]struct{}
}

var _ interfaces.IRoleResolver = (*StaticRoleResolver)(nil)

func NewStaticRoleResolver(employeeRoleIDs []int64) *StaticRoleResolver {
	roles := make(map[int64]struct{}, len(employeeRoleIDs))
	for _, id := range employeeRoleIDs {
		roles[id] = struct{}{}
	}
	return &StaticRoleResolver{employeeRoles: roles}
}

func (r *StaticRoleResolver) IsEmployeeRole(_ context.Context, roleID int64) (bool, error) {
	_, ok := r.employeeRoles[roleID]
	return ok, nil
}
