package visitor

// Action is a requested transition or security operation on a visitor,
// a flag, or a report.
type Action string

const (
	ActionApprove      Action = "approve"
	ActionReject       Action = "reject"
	ActionCheckIn      Action = "check-in"
	ActionCheckOut     Action = "check-out"
	ActionFlag         Action = "flag"
	ActionReport       Action = "report-suspicious"
	ActionResolveFlag  Action = "resolve-flag"
	ActionUpdateReport Action = "update-report-status"
)

// transitionMap lists, per action, the visitor statuses the action may be
// requested from. The backend applies transitions authoritatively; this map
// is the local gate that stops invalid requests before any network call.
var transitionMap = map[Action][]Status{
	ActionApprove:  {StatusPending},
	ActionReject:   {StatusPending},
	ActionCheckIn:  {StatusApproved},
	ActionCheckOut: {StatusCheckedIn},
	ActionFlag:     {StatusApproved, StatusCheckedIn},
	ActionReport:   {StatusApproved, StatusCheckedIn},
}

// ValidTransition reports whether action may be requested while the visitor
// is in fromStatus.
func ValidTransition(action Action, fromStatus Status) bool {
	allowed, ok := transitionMap[action]
	if !ok {
		return false
	}
	for _, status := range allowed {
		if status == fromStatus {
			return true
		}
	}
	return false
}

// Terminal reports whether the status ends the current visit instance.
func Terminal(s Status) bool {
	return s == StatusRejected || s == StatusCheckedOut
}

// NextReportStatus returns the only permitted successor of a report status.
// The chain is forward-only; resolved has no successor and ok is false.
func NextReportStatus(s ReportStatus) (next ReportStatus, ok bool) {
	switch s {
	case ReportReported:
		return ReportInvestigating, true
	case ReportInvestigating:
		return ReportResolved, true
	default:
		return "", false
	}
}

// ValidReportTransition reports whether a report may move from its current
// status to next. Backward and skipping moves are never allowed.
func ValidReportTransition(from, next ReportStatus) bool {
	n, ok := NextReportStatus(from)
	return ok && n == next
}
