package models

// DashboardStats holds grouped counts over a set of complaints.
type DashboardStats struct {
	TotalComplaints      int                       `json:"totalComplaints" yaml:"totalComplaints"`
	OpenComplaints       int                       `json:"openComplaints" yaml:"openComplaints"`
	InProgressComplaints int                       `json:"inProgressComplaints" yaml:"inProgressComplaints"`
	ResolvedComplaints   int                       `json:"resolvedComplaints" yaml:"resolvedComplaints"`
	CategoryStats        map[ComplaintCategory]int `json:"categoryStats" yaml:"categoryStats"`
	PriorityStats        map[ComplaintPriority]int `json:"priorityStats" yaml:"priorityStats"`
	DepartmentStats      map[Department]int        `json:"departmentStats" yaml:"departmentStats"`
}

// Bucket is one row of a chart breakdown.
type Bucket struct {
	Name       string `json:"name" yaml:"name"`
	Count      int    `json:"count" yaml:"count"`
	Percentage int    `json:"percentage" yaml:"percentage"`
}

// AnalyticsReport is DashboardStats plus the values the analytics views
// derive from it.
type AnalyticsReport struct {
	DashboardStats `yaml:",inline"`

	ResolutionRate      int      `json:"resolutionRate" yaml:"resolutionRate"`
	StatusBreakdown     []Bucket `json:"statusBreakdown" yaml:"statusBreakdown"`
	CategoryBreakdown   []Bucket `json:"categoryBreakdown" yaml:"categoryBreakdown"`
	PriorityBreakdown   []Bucket `json:"priorityBreakdown" yaml:"priorityBreakdown"`
	DepartmentBreakdown []Bucket `json:"departmentBreakdown" yaml:"departmentBreakdown"`
}
