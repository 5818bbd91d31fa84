package leave

import "time"

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type Request struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employeeId"`
	Category     Category  `json:"leaveType"`
	FromDate     time.Time `json:"fromDate"`
	ToDate       time.Time `json:"toDate"`
	Days         int       `json:"days"`
	Reason       string    `json:"reason"`
	Status       string    `json:"status"`
	AdminRemarks string    `json:"adminRemarks,omitempty"`
	ResolvedBy   string    `json:"resolvedBy,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Balance holds the remaining whole-day counts for one employee.
type Balance struct {
	EmployeeID string `json:"employeeId"`
	Sick       int    `json:"sick"`
	Casual     int    `json:"casual"`
	Paid       int    `json:"paid"`
	Maternity  int    `json:"maternity"`
}

func (b Balance) Remaining(category Category) int {
	switch category {
	case CategorySick:
		return b.Sick
	case CategoryCasual:
		return b.Casual
	case CategoryPaid:
		return b.Paid
	case CategoryMaternity:
		return b.Maternity
	}
	return 0
}

// ReviewRow is a request enriched for the admin review listing: who asked,
// and how many days the category currently has left.
type ReviewRow struct {
	Request
	EmployeeName string `json:"employeeName"`
	Available    int    `json:"availableLeaves"`
}
