package visitor

import "time"

// VisitingHours is the facility-wide window during which visits may be
// scheduled, as configured by an admin.
type VisitingHours struct {
	Start string `json:"start"` // "15:04"
	End   string `json:"end"`
}

// WithinVisitingHours reports whether t's clock time falls inside the
// configured window. Malformed hours reject nothing (the backend validates
// authoritatively).
func WithinVisitingHours(t time.Time, h VisitingHours) bool {
	start, err1 := time.Parse("15:04", h.Start)
	end, err2 := time.Parse("15:04", h.End)
	if err1 != nil || err2 != nil {
		return true
	}
	minutes := t.Hour()*60 + t.Minute()
	startMin := start.Hour()*60 + start.Minute()
	endMin := end.Hour()*60 + end.Minute()
	return minutes >= startMin && minutes <= endMin
}
