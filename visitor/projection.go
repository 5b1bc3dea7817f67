package visitor

import "time"

// Display labels produced by the status projections.
const (
	LabelPending    = "Pending"
	LabelScheduled  = "Scheduled"
	LabelCheckedIn  = "Checked-in"
	LabelCheckedOut = "Checked-out"
	LabelCompleted  = "Completed"
	LabelCancelled  = "Cancelled"
	LabelAlert      = "Alert: Mismatch"
)

// ScheduleStatus projects a visitor record into the label shown on schedule
// screens (host schedule, approvals). In this view a finished visit reads
// "Completed".
//
// A recorded check-in always wins over anything inferred from the visit date.
func ScheduleStatus(v Visitor, now time.Time) string {
	return displayStatus(v, now, LabelCompleted)
}

// ActivityStatus projects a visitor record into the label shown on
// activity-log screens (admin dashboard, security log). In this view a
// finished visit reads "Checked-out"; the projection is otherwise identical
// to ScheduleStatus.
func ActivityStatus(v Visitor, now time.Time) string {
	return displayStatus(v, now, LabelCheckedOut)
}

func displayStatus(v Visitor, now time.Time, checkedOutLabel string) string {
	switch v.Status {
	case StatusCheckedIn:
		return LabelCheckedIn
	case StatusCheckedOut:
		return checkedOutLabel
	case StatusApproved:
		// Check-in timestamp wins over date inference.
		if v.CheckInTime != nil {
			return LabelCheckedIn
		}
		if v.VisitAt().After(now) {
			return LabelScheduled
		}
		return LabelCompleted
	case StatusRejected:
		return LabelCancelled
	case StatusPending:
		return LabelPending
	case StatusAlert:
		return LabelAlert
	default:
		return string(v.Status)
	}
}
