package facilities

import "strings"

// Badge is the display status rendered next to a record.
type Badge string

const (
	BadgeAvailable   Badge = "available"
	BadgeInUse       Badge = "in-use"
	BadgeInStore     Badge = "in-store"
	BadgePending     Badge = "pending"
	BadgeMaintenance Badge = "maintenance"
	BadgeBreakdown   Badge = "breakdown"
	BadgeCheckedIn   Badge = "checked-in"
	BadgeCheckedOut  Badge = "checked-out"
	BadgeApproved    Badge = "approved"
	BadgeRejected    Badge = "rejected"
)

// TicketStatus returns the raw ticket status, preferring status over
// complaint_status.name.
func TicketStatus(rec Record) string {
	if s := rec.String("status"); s != "" {
		return s
	}
	if s := rec.String("issue_status"); s != "" {
		return s
	}
	return rec.String("complaint_status", "name")
}

// TicketBadge maps a ticket's status onto a badge.
func TicketBadge(rec Record) Badge {
	status := strings.ToLower(rec.String("status"))
	if status == "" {
		status = strings.ToLower(rec.String("complaint_status", "name"))
	}
	switch {
	case strings.Contains(status, "open"), strings.Contains(status, "new"):
		return BadgePending
	case strings.Contains(status, "progress"), strings.Contains(status, "assigned"):
		return BadgeMaintenance
	case strings.Contains(status, "resolved"), strings.Contains(status, "closed"):
		return BadgeCheckedOut
	default:
		return BadgePending
	}
}

// PriorityBadge maps a ticket priority onto a badge.
func PriorityBadge(priority string) Badge {
	switch strings.ToLower(strings.TrimSpace(priority)) {
	case "high", "critical":
		return BadgeBreakdown
	case "medium":
		return BadgeMaintenance
	default:
		return BadgeInStore
	}
}

// AssetBadge maps an asset status onto a badge.
func AssetBadge(rec Record) Badge {
	switch strings.ToLower(rec.String("status")) {
	case "active", "in_use":
		return BadgeInUse
	case "maintenance", "under_maintenance":
		return BadgePending
	case "retired", "disposed":
		return BadgeBreakdown
	default:
		return BadgeAvailable
	}
}

// VisitorBadge derives a visitor's badge from check-in/out times, then status.
func VisitorBadge(rec Record) Badge {
	switch {
	case rec.String("check_out_time") != "":
		return BadgeCheckedOut
	case rec.String("check_in_time") != "":
		return BadgeCheckedIn
	}
	switch rec.String("status") {
	case "approved":
		return BadgeApproved
	case "rejected":
		return BadgeRejected
	default:
		return BadgePending
	}
}

// TaskBadge maps a task status onto a badge.
func TaskBadge(status string) Badge {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "completed", "closed":
		return BadgeInUse
	case "overdue":
		return BadgeBreakdown
	case "pending", "open":
		return BadgeMaintenance
	default:
		return BadgeInStore
	}
}
