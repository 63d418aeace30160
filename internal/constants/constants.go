package constants

// Context keys
const (
	ContextKeyUser = "current_user"
)

// Pagination
const (
	MinPage         = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Auth
const (
	MinPasswordLength = 6
)

// Resume uploads
const (
	MaxResumeSize = 5 << 20 // 5MB
	ResumeBaseURL = "/uploads"
)

// Listing caps
const (
	FeaturedJobsLimit   = 6
	RecentActivityLimit = 5
)
