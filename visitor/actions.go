package visitor

import "sort"

// ActionSet is the set of actions a role may request against a record in a
// given state.
type ActionSet map[Action]struct{}

// Has reports membership.
func (s ActionSet) Has(a Action) bool {
	_, ok := s[a]
	return ok
}

// List returns the actions in a stable order.
func (s ActionSet) List() []Action {
	out := make([]Action, 0, len(s))
	for a := range s {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// PermittedActions computes the visitor-level actions a role may request
// given the visitor's current status.
//
//   - pending + host/admin: approve, reject
//   - approved + security: check-in, flag, report-suspicious
//   - checked-in + security: check-out, flag, report-suspicious
//
// Every other role/status combination yields an empty set; in particular a
// host can never check a visitor in or out.
func PermittedActions(role Role, status Status) ActionSet {
	set := ActionSet{}
	switch role {
	case RoleHost, RoleAdmin:
		if ValidTransition(ActionApprove, status) {
			set[ActionApprove] = struct{}{}
		}
		if ValidTransition(ActionReject, status) {
			set[ActionReject] = struct{}{}
		}
	case RoleSecurity:
		if ValidTransition(ActionCheckIn, status) {
			set[ActionCheckIn] = struct{}{}
		}
		if ValidTransition(ActionCheckOut, status) {
			set[ActionCheckOut] = struct{}{}
		}
		if ValidTransition(ActionFlag, status) {
			set[ActionFlag] = struct{}{}
		}
		if ValidTransition(ActionReport, status) {
			set[ActionReport] = struct{}{}
		}
	}
	return set
}

// CanResolveFlag reports whether role may resolve the flag. Only security may
// resolve, and only while the flag is still open.
func CanResolveFlag(role Role, f Flag) bool {
	return role == RoleSecurity && f.Status == FlagFlagged
}

// CanAdvanceReport reports whether role may move the report to next. Only
// security may advance a report, and only along the forward chain.
func CanAdvanceReport(role Role, r SuspiciousReport, next ReportStatus) bool {
	return role == RoleSecurity && ValidReportTransition(r.Status, next)
}
