package entity

import "time"

const (
	LeavePending   = "pending"
	LeaveApproved  = "approved"
	LeaveRejected  = "rejected"
	LeaveCancelled = "cancelled"
)

type LeaveRequest struct {
	ID          uint64     `json:"id"`
	UserID      uint64     `json:"userId"`
	Type        string     `json:"type"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     time.Time  `json:"endDate"`
	Reason      *string    `json:"reason"`
	Status      string     `json:"status"`
	RequestedOn time.Time  `json:"requestedOn"`
	ReviewedOn  *time.Time `json:"reviewedOn"`
	ReviewerID  *uint64    `json:"reviewerId"`
	Comments    *string    `json:"comments"`
}

type CreateLeaveRequestInput struct {
	Type      string    `json:"type" validate:"required,oneof=annual sick personal unpaid"`
	StartDate time.Time `json:"startDate" validate:"required"`
	EndDate   time.Time `json:"endDate" validate:"required"`
	Reason    *string   `json:"reason"`
}

// UpdateLeaveRequestInput is the PUT /api/leave-requests/{id} payload. The
// requested status selects the transition: cancelled goes through the
// owner cancel path, approved/rejected through the reviewer path.
type UpdateLeaveRequestInput struct {
	Status   string  `json:"status" validate:"required,oneof=approved rejected cancelled"`
	Comments *string `json:"comments"`
}

// LeaveReview carries the reviewer fields set on approve/reject. Decision
// must be LeaveApproved or LeaveRejected.
type LeaveReview struct {
	Decision   string
	ReviewerID uint64
	ReviewedOn time.Time
	Comments   *string
}
