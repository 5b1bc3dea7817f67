package visitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermittedActions_PendingHostAdmin(t *testing.T) {
	t.Parallel()
	for _, role := range []Role{RoleHost, RoleAdmin} {
		set := PermittedActions(role, StatusPending)
		assert.True(t, set.Has(ActionApprove), "role %s", role)
		assert.True(t, set.Has(ActionReject), "role %s", role)
		assert.Len(t, set, 2)
	}
}

func TestPermittedActions_SecurityCheckedIn(t *testing.T) {
	t.Parallel()
	set := PermittedActions(RoleSecurity, StatusCheckedIn)
	assert.True(t, set.Has(ActionCheckOut))
	assert.False(t, set.Has(ActionCheckIn))
	assert.True(t, set.Has(ActionFlag))
	assert.True(t, set.Has(ActionReport))
}

func TestPermittedActions_SecurityApproved(t *testing.T) {
	t.Parallel()
	set := PermittedActions(RoleSecurity, StatusApproved)
	assert.True(t, set.Has(ActionCheckIn))
	assert.False(t, set.Has(ActionCheckOut))
	// Monitoring of on-site-eligible visitors.
	assert.True(t, set.Has(ActionFlag))
	assert.True(t, set.Has(ActionReport))
}

func TestPermittedActions_HostCheckedInEmpty(t *testing.T) {
	t.Parallel()
	assert.Empty(t, PermittedActions(RoleHost, StatusCheckedIn))
}

func TestPermittedActions_NoActionsOutsideMatrix(t *testing.T) {
	t.Parallel()
	for _, s := range []Status{StatusRejected, StatusCheckedOut, StatusAlert} {
		assert.Empty(t, PermittedActions(RoleSecurity, s), "security on %s", s)
		assert.Empty(t, PermittedActions(RoleHost, s), "host on %s", s)
	}
	assert.Empty(t, PermittedActions(RoleSecurity, StatusPending))
	assert.Empty(t, PermittedActions(RoleVisitor, StatusPending))
}

func TestActionSet_List(t *testing.T) {
	t.Parallel()
	set := PermittedActions(RoleSecurity, StatusCheckedIn)
	list := set.List()
	assert.Len(t, list, len(set))
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1], list[i])
	}
}

func TestCanResolveFlag(t *testing.T) {
	t.Parallel()
	open := Flag{Status: FlagFlagged}
	closed := Flag{Status: FlagResolved}
	assert.True(t, CanResolveFlag(RoleSecurity, open))
	assert.False(t, CanResolveFlag(RoleSecurity, closed))
	assert.False(t, CanResolveFlag(RoleHost, open))
	assert.False(t, CanResolveFlag(RoleAdmin, open))
}

func TestCanAdvanceReport(t *testing.T) {
	t.Parallel()
	r := SuspiciousReport{Status: ReportReported}
	assert.True(t, CanAdvanceReport(RoleSecurity, r, ReportInvestigating))
	assert.False(t, CanAdvanceReport(RoleSecurity, r, ReportResolved), "no skipping")
	assert.False(t, CanAdvanceReport(RoleHost, r, ReportInvestigating))

	resolved := SuspiciousReport{Status: ReportResolved}
	assert.False(t, CanAdvanceReport(RoleSecurity, resolved, ReportInvestigating), "no backward transition")
}
