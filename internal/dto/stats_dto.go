package dto

type DashboardStatsResponse struct {
	TotalJobs         int64            `json:"total_jobs"`
	ByStatus          map[string]int64 `json:"by_status"`
	ResumesSubmitted  int64            `json:"resumes_submitted"`
	TrashedJobs       int64            `json:"trashed_jobs"`
	PendingTodos      int64            `json:"pending_todos"`
	UpcomingReminders int64            `json:"upcoming_reminders"`
}
