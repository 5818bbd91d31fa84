package reports

// SummaryRow is one employee's line in the balance summary report:
// what is left per category, plus the approved days already taken.
type SummaryRow struct {
	EmployeeID string `json:"employeeId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Sick       int    `json:"sick"`
	Casual     int    `json:"casual"`
	Paid       int    `json:"paid"`
	Maternity  int    `json:"maternity"`
	UsedDays   int    `json:"usedDays"`
}
