package routes_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"

	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/app/models"
	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/app/routes"
	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/app/store"
	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/bootstrap"
	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/config"
	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/pkg/auth"
)

// RoutesTestSuite drives the API end to end through the wired router.
type RoutesTestSuite struct {
	suite.Suite
	router *gin.Engine
	store  *store.Store
	jwt    *auth.JWTService
}

func (s *RoutesTestSuite) SetupTest() {
	snapshots, err := store.NewSnapshotStore(filepath.Join(s.T().TempDir(), "api.db"))
	s.Require().NoError(err)
	s.T().Cleanup(func() { snapshots.Close() })

	users := []models.User{
		{ID: "admin", Name: "Admin", Email: "admin@test", RoleType: models.RoleAdmin},
		{ID: "sup", Name: "Supervisor", Email: "sup@test", RoleType: models.RoleSupervisor},
		{ID: "stu", Name: "Student", Email: "stu@test", RoleType: models.RoleStudent},
	}
	projects := []models.Project{
		{ID: "p1", Title: "One", Status: models.ProjectAvailable, SupervisorID: "sup", MaxStudents: 1, IsActive: true},
	}
	s.Require().NoError(snapshots.Save(store.CollectionUsers, users))
	s.Require().NoError(snapshots.Save(store.CollectionProjects, projects))
	s.Require().NoError(snapshots.Save(store.CollectionAllocations, []models.Allocation{}))
	s.Require().NoError(snapshots.Save(store.CollectionReports, []models.ProgressReport{}))

	s.store = store.New(snapshots, zerolog.Nop())

	cfg := &config.Config{}
	cfg.Server.Port = "0"
	cfg.Server.Mode = "test"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.AccessTokenExpiration = "1h"
	cfg.JWT.Issuer = "spas.test"

	deps, err := bootstrap.BuildDependencies(cfg, s.store, zerolog.Nop())
	s.Require().NoError(err)
	s.jwt = deps.JWTService

	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	routes.SetupRouter(s.router,
		deps.AuthController,
		deps.UserController,
		deps.ProjectController,
		deps.AllocationController,
		deps.ReportController,
		deps.AuthMiddleware,
	)
}

func (s *RoutesTestSuite) tokenFor(id string) string {
	user, ok := s.store.UserByID(id)
	s.Require().True(ok)
	token, _, err := s.jwt.GenerateToken(&user)
	s.Require().NoError(err)
	return "Bearer " + token
}

func (s *RoutesTestSuite) request(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *RoutesTestSuite) TestHealthIsPublic() {
	w := s.request(http.MethodGet, "/api/v1/health", "", nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *RoutesTestSuite) TestProtectedRoutesRequireToken() {
	w := s.request(http.MethodGet, "/api/v1/projects", "", nil)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *RoutesTestSuite) TestRegisterAndLogin() {
	w := s.request(http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"name":     "Fresh Student",
		"email":    "fresh@test",
		"password": "password1",
	})
	s.Require().Equal(http.StatusCreated, w.Code)

	w = s.request(http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "fresh@test",
		"password": "password1",
	})
	s.Require().Equal(http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Token struct {
				AccessToken string `json:"accessToken"`
				TokenType   string `json:"tokenType"`
			} `json:"token"`
			User models.User `json:"user"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.NotEmpty(resp.Data.Token.AccessToken)
	s.Equal("Bearer", resp.Data.Token.TokenType)
	s.Equal(models.RoleStudent, resp.Data.User.RoleType)
	s.Empty(resp.Data.User.Password)

	// Duplicate registration conflicts
	w = s.request(http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"name":     "Copy",
		"email":    "fresh@test",
		"password": "password1",
	})
	s.Equal(http.StatusConflict, w.Code)
}

func (s *RoutesTestSuite) TestUserResponsesNeverCarryPasswordHashes() {
	// A registered account has a stored bcrypt hash; no user-facing payload
	// may include it.
	w := s.request(http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"name":     "Hashed Student",
		"email":    "hashed@test",
		"password": "password1",
	})
	s.Require().Equal(http.StatusCreated, w.Code)
	s.NotContains(w.Body.String(), "password")

	for _, path := range []string{"/api/v1/users", "/api/v1/users/students", "/api/v1/users/supervisors"} {
		w = s.request(http.MethodGet, path, s.tokenFor("admin"), nil)
		s.Require().Equal(http.StatusOK, w.Code, path)
		s.NotContains(w.Body.String(), "password", path)
	}
}

func (s *RoutesTestSuite) TestLoginInvalidCredentials() {
	w := s.request(http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "admin@test",
		"password": "whatever",
	})
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *RoutesTestSuite) TestAllocationRunIsAdminOnly() {
	w := s.request(http.MethodPost, "/api/v1/allocations/run", s.tokenFor("stu"), nil)
	s.Equal(http.StatusForbidden, w.Code)

	w = s.request(http.MethodPost, "/api/v1/allocations/run", s.tokenFor("sup"), nil)
	s.Equal(http.StatusForbidden, w.Code)

	w = s.request(http.MethodPost, "/api/v1/allocations/run", s.tokenFor("admin"), nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Created     int                 `json:"created"`
			Allocations []models.Allocation `json:"allocations"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(1, resp.Data.Created)
	s.Require().Len(resp.Data.Allocations, 1)
	s.Equal("stu", resp.Data.Allocations[0].StudentID)
	s.Equal("p1", resp.Data.Allocations[0].ProjectID)
}

func (s *RoutesTestSuite) TestProjectCreationIsSupervisorOnly() {
	body := gin.H{
		"title":       "New Project",
		"description": "desc",
		"objectives":  []string{"first objective"},
	}

	w := s.request(http.MethodPost, "/api/v1/projects", s.tokenFor("stu"), body)
	s.Equal(http.StatusForbidden, w.Code)

	w = s.request(http.MethodPost, "/api/v1/projects", s.tokenFor("sup"), body)
	s.Equal(http.StatusCreated, w.Code)
}

func (s *RoutesTestSuite) TestProjectValidationErrors() {
	// Missing objectives fails binding before the service runs
	w := s.request(http.MethodPost, "/api/v1/projects", s.tokenFor("sup"), gin.H{
		"title":       "No objectives",
		"description": "desc",
	})
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *RoutesTestSuite) TestUserDeletionIsAdminOnly() {
	w := s.request(http.MethodDelete, "/api/v1/users/stu", s.tokenFor("sup"), nil)
	s.Equal(http.StatusForbidden, w.Code)

	w = s.request(http.MethodDelete, "/api/v1/users/stu", s.tokenFor("admin"), nil)
	s.Equal(http.StatusOK, w.Code)

	// Self-deletion stays blocked even for admins
	w = s.request(http.MethodDelete, "/api/v1/users/admin", s.tokenFor("admin"), nil)
	s.Equal(http.StatusForbidden, w.Code)
}

func (s *RoutesTestSuite) TestReportLifecycleOverHTTP() {
	// Allocate the student first
	w := s.request(http.MethodPost, "/api/v1/allocations", s.tokenFor("admin"), gin.H{
		"studentId": "stu",
		"projectId": "p1",
	})
	s.Require().Equal(http.StatusCreated, w.Code)

	var allocResp struct {
		Data models.Allocation `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &allocResp))

	// Student submits a report
	w = s.request(http.MethodPost, "/api/v1/reports", s.tokenFor("stu"), gin.H{
		"allocationId": allocResp.Data.ID,
		"reportText":   "First progress update",
	})
	s.Require().Equal(http.StatusCreated, w.Code)

	var reportResp struct {
		Data models.ProgressReport `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &reportResp))
	s.Equal(models.ReportPending, reportResp.Data.Status)

	// Supervisor sees it pending and approves
	w = s.request(http.MethodGet, "/api/v1/reports/pending", s.tokenFor("sup"), nil)
	s.Require().Equal(http.StatusOK, w.Code)

	w = s.request(http.MethodPost, "/api/v1/reports/"+reportResp.Data.ID+"/feedback", s.tokenFor("sup"), gin.H{
		"feedback": "Approved, keep going",
		"status":   "APPROVED",
	})
	s.Require().Equal(http.StatusOK, w.Code)

	var feedbackResp struct {
		Data models.ProgressReport `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &feedbackResp))
	s.Equal(models.ReportApproved, feedbackResp.Data.Status)
	s.Require().NotNil(feedbackResp.Data.Feedback)
	s.Equal("Approved, keep going", *feedbackResp.Data.Feedback)
	s.WithinDuration(time.Now(), *feedbackResp.Data.FeedbackDate, time.Minute)
}

func TestRoutesTestSuite(t *testing.T) {
	suite.Run(t, new(RoutesTestSuite))
}
