package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/aryankuttarmare14/job-board-app/internal/dto"
	"github.com/aryankuttarmare14/job-board-app/internal/middleware"
	"github.com/aryankuttarmare14/job-board-app/internal/models"
	"github.com/aryankuttarmare14/job-board-app/internal/repository"
	"github.com/aryankuttarmare14/job-board-app/internal/services"
	"github.com/aryankuttarmare14/job-board-app/internal/storage"
)

type applicationTestEnv struct {
	db      *gorm.DB
	handler *ApplicationHandler
	resumes *storage.ResumeStore
}

func setupApplicationTestEnv(t *testing.T) applicationTestEnv {
	t.Helper()

	db := openTestDB(t)

	resumes, err := storage.NewResumeStore(t.TempDir())
	require.NoError(t, err)

	appRepo := repository.NewApplicationRepository(db)
	jobRepo := repository.NewJobRepository(db)
	appService := services.NewApplicationService(appRepo, jobRepo, resumes)
	handler := NewApplicationHandler(appService)

	return applicationTestEnv{
		db:      db,
		handler: handler,
		resumes: resumes,
	}
}

func (env applicationTestEnv) router() *gin.Engine {
	requireAuth := middleware.RequireAuth(testSecret)

	r := gin.New()
	apps := r.Group("/api/applications")
	apps.Use(requireAuth)
	{
		apps.GET("/me", middleware.RequireRole(models.RoleJobseeker), env.handler.ListMine)
		apps.GET("/job/:jobId", middleware.RequireRole(models.RoleEmployer, models.RoleAdmin), env.handler.ListForJob)
		apps.POST("/:jobId", middleware.RequireRole(models.RoleJobseeker), env.handler.Apply)
		apps.PUT("/:id", middleware.RequireRole(models.RoleEmployer, models.RoleAdmin), env.handler.UpdateStatus)
		apps.DELETE("/:id", middleware.RequireRole(models.RoleJobseeker), env.handler.Withdraw)
		apps.GET("/:id/resume", middleware.RequireRole(models.RoleEmployer, models.RoleAdmin), env.handler.DownloadResume)
	}
	return r
}

// doApply submits a multipart application with an attached PDF resume.
func doApply(t *testing.T, r *gin.Engine, path, coverLetter string, withResume bool, token string) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if coverLetter != "" {
		require.NoError(t, mw.WriteField("coverLetter", coverLetter))
	}
	if withResume {
		part, err := mw.CreateFormFile("resume", "resume.pdf")
		require.NoError(t, err)
		_, err = part.Write([]byte("%PDF-1.4 fake resume content"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestApplicationHandler_Apply(t *testing.T) {
	env := setupApplicationTestEnv(t)
	employer := createTestUser(t, env.db, "employer", models.RoleEmployer)
	seeker := createTestUser(t, env.db, "seeker", models.RoleJobseeker)
	job := createTestJob(t, env.db, employer.ID, nil)
	r := env.router()

	w := doApply(t, r, "/api/applications/1", "I am a great fit", true, bearerToken(t, seeker))

	require.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		Data dto.ApplicationDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, job.ID, response.Data.JobID)
	require.Equal(t, seeker.ID, response.Data.ApplicantID)
	require.Equal(t, models.ApplicationStatusPending, response.Data.Status)
	require.True(t, env.resumes.Exists(response.Data.ResumeURL))

	var reloaded models.Job
	require.NoError(t, env.db.First(&reloaded, job.ID).Error)
	require.EqualValues(t, 1, reloaded.Applications)
}

func TestApplicationHandler_Apply_Twice(t *testing.T) {
	env := setupApplicationTestEnv(t)
	employer := createTestUser(t, env.db, "employer", models.RoleEmployer)
	seeker := createTestUser(t, env.db, "seeker", models.RoleJobseeker)
	createTestJob(t, env.db, employer.ID, nil)
	r := env.router()

	w := doApply(t, r, "/api/applications/1", "First try", true, bearerToken(t, seeker))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doApply(t, r, "/api/applications/1", "Second try", true, bearerToken(t, seeker))
	require.Equal(t, http.StatusBadRequest, w.Code)

	var job models.Job
	require.NoError(t, env.db.First(&job, 1).Error)
	require.EqualValues(t, 1, job.Applications)
}

func TestApplicationHandler_Apply_ClosedJob(t *testing.T) {
	env := setupApplicationTestEnv(t)
	employer := createTestUser(t, env.db, "employer", models.RoleEmployer)
	seeker := createTestUser(t, env.db, "seeker", models.RoleJobseeker)
	createTestJob(t, env.db, employer.ID, func(j *models.Job) {
		j.Status = models.JobStatusClosed
	})
	r := env.router()

	w := doApply(t, r, "/api/applications/1", "Too late", true, bearerToken(t, seeker))

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApplicationHandler_Apply_DeadlinePassed(t *testing.T) {
	env := setupApplicationTestEnv(t)
	employer := createTestUser(t, env.db, "employer", models.RoleEmployer)
	seeker := createTestUser(t, env.db, "seeker", models.RoleJobseeker)
	createTestJob(t, env.db, employer.ID, func(j *models.Job) {
		j.Deadline = time.Now().Add(-24 * time.Hour)
	})
	r := env.router()

	w := doApply(t, r, "/api/applications/1", "Missed it", true, bearerToken(t, seeker))

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApplicationHandler_Apply_MissingResume(t *testing.T) {
	env := setupApplicationTestEnv(t)
	employer := createTestUser(t, env.db, "employer", models.RoleEmployer)
	seeker := createTestUser(t, env.db, "seeker", models.RoleJobseeker)
	createTestJob(t, env.db, employer.ID, nil)
	r := env.router()

	w := doApply(t, r, "/api/applications/1", "No file attached", false, bearerToken(t, seeker))

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApplicationHandler_Apply_MissingCoverLetter(t *testing.T) {
	env := setupApplicationTestEnv(t)
	employer := createTestUser(t, env.db, "employer", models.RoleEmployer)
	seeker := createTestUser(t, env.db, "seeker", models.RoleJobseeker)
	createTestJob(t, env.db, employer.ID, nil)
	r := env.router()

	w := doApply(t, r, "/api/applications/1", "", true, bearerToken(t, seeker))

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApplicationHandler_Apply_UnknownJob(t *testing.T) {
	env := setupApplicationTestEnv(t)
	seeker := createTestUser(t, env.db, "seeker", models.RoleJobseeker)
	r := env.router()

	w := doApply(t, r, "/api/applications/999", "Ghost job", true, bearerToken(t, seeker))

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestApplicationHandler_Apply_EmployerForbidden(t *testing.T) {
	env := setupApplicationTestEnv(t)
	employer := createTestUser(t, env.db, "employer", models.RoleEmployer)
	createTestJob(t, env.db, employer.ID, nil)
	r := env.router()

	w := doApply(t, r, "/api/applications/1", "Wrong hat", true, bearerToken(t, employer))

	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestApplicationHandler_ListMine(t *testing.T) {
	env := setupApplicationTestEnv(t)
	employer := createTestUser(t, env.db, "employer", models.RoleEmployer)
	seeker := createTestUser(t, env.db, "seeker", models.RoleJobseeker)
	createTestJob(t, env.db, employer.ID, nil)
	createTestJob(t, env.db, employer.ID, nil)
	r := env.router()

	token := bearerToken(t, seeker)
	require.Equal(t, http.StatusCreated, doApply(t, r, "/api/applications/1", "One", true, token).Code)
	require.Equal(t, http.StatusCreated, doApply(t, r, "/api/applications/2", "Two", true, token).Code)

	w := doJSON(t, r, http.MethodGet, "/api/applications/me", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Count int                  `json:"count"`
		Data  []dto.ApplicationDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, 2, response.Count)
	for _, app := range response.Data {
		require.NotNil(t, app.Job)
	}
}

func TestApplicationHandler_ListForJob(t *testing.T) {
	env := setupApplicationTestEnv(t)
	employer := createTestUser(t, env.db, "employer", models.RoleEmployer)
	seeker := createTestUser(t, env.db, "seeker", models.RoleJobseeker)
	createTestJob(t, env.db, employer.ID, nil)
	r := env.router()

	require.Equal(t, http.StatusCreated, doApply(t, r, "/api/applications/1", "Hi", true, bearerToken(t, seeker)).Code)

	w := doJSON(t, r, http.MethodGet, "/api/applications/job/1", nil, bearerToken(t, employer))
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Count int                  `json:"count"`
		Data  []dto.ApplicationDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, 1, response.Count)
	require.NotNil(t, response.Data[0].Applicant)
	require.Equal(t, seeker.ID, response.Data[0].Applicant.ID)
}

func TestApplicationHandler_ListForJob_NotOwner(t *testing.T) {
	env := setupApplicationTestEnv(t)
	employer := createTestUser(t, env.db, "employer", models.RoleEmployer)
	rival := createTestUser(t, env.db, "rival", models.RoleEmployer)
	seeker := createTestUser(t, env.db, "seeker", models.RoleJobseeker)
	createTestJob(t, env.db, employer.ID, nil)
	r := env.router()

	require.Equal(t, http.StatusCreated, doApply(t, r, "/api/applications/1", "Hi", true, bearerToken(t, seeker)).Code)

	w := doJSON(t, r, http.MethodGet, "/api/applications/job/1", nil, bearerToken(t, rival))
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestApplicationHandler_UpdateStatus(t *testing.T) {
	env := setupApplicationTestEnv(t)
	employer := createTestUser(t, env.db, "employer", models.RoleEmployer)
	seeker := createTestUser(t, env.db, "seeker", models.RoleJobseeker)
	createTestJob(t, env.db, employer.ID, nil)
	r := env.router()

	require.Equal(t, http.StatusCreated, doApply(t, r, "/api/applications/1", "Hi", true, bearerToken(t, seeker)).Code)

	w := doJSON(t, r, http.MethodPut, "/api/applications/1", map[string]any{
		"status":   "accepted",
		"feedback": "Welcome aboard",
	}, bearerToken(t, employer))

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data dto.ApplicationDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, models.ApplicationStatusAccepted, response.Data.Status)
	require.Equal(t, "Welcome aboard", response.Data.Feedback)
}

func TestApplicationHandler_UpdateStatus_NotOwner(t *testing.T) {
	env := setupApplicationTestEnv(t)
	employer := createTestUser(t, env.db, "employer", models.RoleEmployer)
	rival := createTestUser(t, env.db, "rival", models.RoleEmployer)
	seeker := createTestUser(t, env.db, "seeker", models.RoleJobseeker)
	createTestJob(t, env.db, employer.ID, nil)
	r := env.router()

	require.Equal(t, http.StatusCreated, doApply(t, r, "/api/applications/1", "Hi", true, bearerToken(t, seeker)).Code)

	w := doJSON(t, r, http.MethodPut, "/api/applications/1", map[string]any{
		"status": "rejected",
	}, bearerToken(t, rival))

	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestApplicationHandler_UpdateStatus_InvalidStatus(t *testing.T) {
	env := setupApplicationTestEnv(t)
	employer := createTestUser(t, env.db, "employer", models.RoleEmployer)
	seeker := createTestUser(t, env.db, "seeker", models.RoleJobseeker)
	createTestJob(t, env.db, employer.ID, nil)
	r := env.router()

	require.Equal(t, http.StatusCreated, doApply(t, r, "/api/applications/1", "Hi", true, bearerToken(t, seeker)).Code)

	w := doJSON(t, r, http.MethodPut, "/api/applications/1", map[string]any{
		"status": "hired",
	}, bearerToken(t, employer))

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApplicationHandler_Withdraw(t *testing.T) {
	env := setupApplicationTestEnv(t)
	employer := createTestUser(t, env.db, "employer", models.RoleEmployer)
	seeker := createTestUser(t, env.db, "seeker", models.RoleJobseeker)
	createTestJob(t, env.db, employer.ID, nil)
	r := env.router()

	token := bearerToken(t, seeker)
	w := doApply(t, r, "/api/applications/1", "Hi", true, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data dto.ApplicationDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, http.MethodDelete, "/api/applications/1", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var apps int64
	require.NoError(t, env.db.Model(&models.Application{}).Count(&apps).Error)
	require.EqualValues(t, 0, apps)

	var job models.Job
	require.NoError(t, env.db.First(&job, 1).Error)
	require.EqualValues(t, 0, job.Applications)

	require.False(t, env.resumes.Exists(created.Data.ResumeURL))
}

func TestApplicationHandler_Withdraw_NotOwn(t *testing.T) {
	env := setupApplicationTestEnv(t)
	employer := createTestUser(t, env.db, "employer", models.RoleEmployer)
	seeker := createTestUser(t, env.db, "seeker", models.RoleJobseeker)
	other := createTestUser(t, env.db, "other", models.RoleJobseeker)
	createTestJob(t, env.db, employer.ID, nil)
	r := env.router()

	require.Equal(t, http.StatusCreated, doApply(t, r, "/api/applications/1", "Hi", true, bearerToken(t, seeker)).Code)

	w := doJSON(t, r, http.MethodDelete, "/api/applications/1", nil, bearerToken(t, other))
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestApplicationHandler_DownloadResume(t *testing.T) {
	env := setupApplicationTestEnv(t)
	employer := createTestUser(t, env.db, "employer", models.RoleEmployer)
	seeker := createTestUser(t, env.db, "seeker", models.RoleJobseeker)
	createTestJob(t, env.db, employer.ID, nil)
	r := env.router()

	require.Equal(t, http.StatusCreated, doApply(t, r, "/api/applications/1", "Hi", true, bearerToken(t, seeker)).Code)

	w := doJSON(t, r, http.MethodGet, "/api/applications/1/resume", nil, bearerToken(t, employer))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	require.Contains(t, w.Body.String(), "%PDF")
}

func TestApplicationHandler_DownloadResume_NotOwner(t *testing.T) {
	env := setupApplicationTestEnv(t)
	employer := createTestUser(t, env.db, "employer", models.RoleEmployer)
	rival := createTestUser(t, env.db, "rival", models.RoleEmployer)
	seeker := createTestUser(t, env.db, "seeker", models.RoleJobseeker)
	createTestJob(t, env.db, employer.ID, nil)
	r := env.router()

	require.Equal(t, http.StatusCreated, doApply(t, r, "/api/applications/1", "Hi", true, bearerToken(t, seeker)).Code)

	w := doJSON(t, r, http.MethodGet, "/api/applications/1/resume", nil, bearerToken(t, rival))
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestApplicationHandler_DownloadResume_FileGone(t *testing.T) {
	env := setupApplicationTestEnv(t)
	employer := createTestUser(t, env.db, "employer", models.RoleEmployer)
	seeker := createTestUser(t, env.db, "seeker", models.RoleJobseeker)
	createTestJob(t, env.db, employer.ID, nil)
	r := env.router()

	w := doApply(t, r, "/api/applications/1", "Hi", true, bearerToken(t, seeker))
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data dto.ApplicationDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NoError(t, env.resumes.Delete(created.Data.ResumeURL))

	w = doJSON(t, r, http.MethodGet, "/api/applications/1/resume", nil, bearerToken(t, employer))
	require.Equal(t, http.StatusNotFound, w.Code)
}
