package dto

import (
	"github.com/aryankuttarmare14/job-board-app/internal/models"
	"github.com/aryankuttarmare14/job-board-app/internal/services"
)

// UserStatsDTO breaks down the user population by role.
type UserStatsDTO struct {
	Total      int64 `json:"total"`
	Jobseekers int64 `json:"jobseekers"`
	Employers  int64 `json:"employers"`
	Admins     int64 `json:"admins"`
}

// JobStatsDTO breaks down jobs by status.
type JobStatsDTO struct {
	Total  int64 `json:"total"`
	Active int64 `json:"active"`
	Closed int64 `json:"closed"`
	Draft  int64 `json:"draft"`
}

// ApplicationStatsDTO breaks down applications by status.
type ApplicationStatsDTO struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Reviewed int64 `json:"reviewed"`
	Accepted int64 `json:"accepted"`
	Rejected int64 `json:"rejected"`
}

// RecentActivityDTO carries the latest jobs and applications.
type RecentActivityDTO struct {
	Jobs         []JobDTO         `json:"jobs"`
	Applications []ApplicationDTO `json:"applications"`
}

// DashboardStatsDTO is the admin dashboard payload.
type DashboardStatsDTO struct {
	Users        UserStatsDTO        `json:"users"`
	Jobs         JobStatsDTO         `json:"jobs"`
	Applications ApplicationStatsDTO `json:"applications"`
	Recent       RecentActivityDTO   `json:"recent"`
}

// ToDashboardStatsDTO converts the aggregated stats read to its payload
func ToDashboardStatsDTO(stats services.DashboardStats) DashboardStatsDTO {
	return DashboardStatsDTO{
		Users: UserStatsDTO{
			Total:      stats.TotalUsers,
			Jobseekers: stats.UsersByRole[models.RoleJobseeker],
			Employers:  stats.UsersByRole[models.RoleEmployer],
			Admins:     stats.UsersByRole[models.RoleAdmin],
		},
		Jobs: JobStatsDTO{
			Total:  stats.TotalJobs,
			Active: stats.JobsByStatus[models.JobStatusActive],
			Closed: stats.JobsByStatus[models.JobStatusClosed],
			Draft:  stats.JobsByStatus[models.JobStatusDraft],
		},
		Applications: ApplicationStatsDTO{
			Total:    stats.TotalApplications,
			Pending:  stats.ApplicationsByStatus[models.ApplicationStatusPending],
			Reviewed: stats.ApplicationsByStatus[models.ApplicationStatusReviewed],
			Accepted: stats.ApplicationsByStatus[models.ApplicationStatusAccepted],
			Rejected: stats.ApplicationsByStatus[models.ApplicationStatusRejected],
		},
		Recent: RecentActivityDTO{
			Jobs:         ToJobDTOs(stats.RecentJobs),
			Applications: ToApplicationDTOs(stats.RecentApplications),
		},
	}
}
