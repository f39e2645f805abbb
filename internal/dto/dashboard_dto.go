package dto

// DashboardSummary is the joined result of the dashboard fan-out. The recent
// lists stay capped at five items for display; the counts come from dedicated
// count queries so they report true totals rather than page lengths.
type DashboardSummary struct {
	RecentNotes     []*NoteResponse `json:"recentNotes"`
	RecentTasks     []*TaskResponse `json:"recentTasks"`
	InboxCount      int64           `json:"inboxCount"`
	TotalNotes      int64           `json:"totalNotes"`
	ActiveTaskCount int64           `json:"activeTaskCount"`
}
