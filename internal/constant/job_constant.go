package constant

// Job application statuses. The LLM tool layer validates against this set
// before any write reaches the repository.
const (
	JobStatusPending   = "pending"
	JobStatusApplied   = "applied"
	JobStatusInterview = "interview"
	JobStatusOffer     = "offer"
	JobStatusRejected  = "rejected"
	JobStatusGhosted   = "ghosted"
)

var JobStatuses = []string{
	JobStatusPending,
	JobStatusApplied,
	JobStatusInterview,
	JobStatusOffer,
	JobStatusRejected,
	JobStatusGhosted,
}

func IsValidJobStatus(status string) bool {
	for _, s := range JobStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Reminder types.
const (
	ReminderTypeFollowUp  = "follow_up"
	ReminderTypeInterview = "interview"
	ReminderTypeDeadline  = "deadline"
	ReminderTypeCustom    = "custom"
)
