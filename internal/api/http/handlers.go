package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/worktrack-io/workforce_service/internal/entity"
)

// Register creates a user account.
func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	var in entity.RegisterInput
	if err := s.decodeBody(r, &in); err != nil {
		s.errorResponse(w, err, "Invalid registration data")
		return
	}

	user, err := s.Controllers.Auth.Register(r.Context(), &in)
	if err != nil {
		s.deps.Logger.Error("Error registering user", slog.String("error", err.Error()))
		s.errorResponse(w, err, "Failed to register")
		return
	}

	s.httpResponse(w, http.StatusCreated, user, "success")
}

// Login authenticates a user and returns a token pair.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var req entity.LoginRequest
	if err := s.decodeBody(r, &req); err != nil {
		s.errorResponse(w, err, "Invalid login data")
		return
	}

	accessToken, refreshToken, err := s.Controllers.Auth.Login(r.Context(), &req)
	if err != nil {
		s.deps.Logger.Warn("Error logging in", slog.String("error", err.Error()))
		s.errorResponse(w, err, "Failed to login")
		return
	}

	s.httpResponse(w, http.StatusOK, entity.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, "success")
}

// Logout revokes the presented token.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	tokenStr := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

	if err := s.Controllers.Auth.Logout(r.Context(), tokenStr); err != nil {
		s.errorResponse(w, err, "Failed to logout")
		return
	}

	s.httpResponse(w, http.StatusOK, map[string]string{"message": "Logged out successfully"}, "success")
}

// GetCurrentUser returns the authenticated user's record.
func (s *Server) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	claims, err := s.currentUser(r)
	if err != nil {
		s.errorResponse(w, err, "Unauthorized")
		return
	}

	user, err := s.Controllers.Auth.CurrentUser(r.Context(), claims)
	if err != nil {
		s.errorResponse(w, err, "Failed to get user")
		return
	}

	s.httpResponse(w, http.StatusOK, user, "success")
}

// GetUsers returns the user directory visible to the actor.
func (s *Server) GetUsers(w http.ResponseWriter, r *http.Request) {
	claims, err := s.currentUser(r)
	if err != nil {
		s.errorResponse(w, err, "Unauthorized")
		return
	}

	users, err := s.Controllers.Users.List(r.Context(), claims)
	if err != nil {
		s.errorResponse(w, err, "Failed to get users")
		return
	}

	s.httpResponse(w, http.StatusOK, users, "success")
}

func (s *Server) GetProjects(w http.ResponseWriter, r *http.Request) {
	claims, err := s.currentUser(r)
	if err != nil {
		s.errorResponse(w, err, "Unauthorized")
		return
	}

	projects, err := s.Controllers.Projects.List(r.Context(), claims)
	if err != nil {
		s.errorResponse(w, err, "Failed to get projects")
		return
	}

	s.httpResponse(w, http.StatusOK, projects, "success")
}

func (s *Server) CreateProject(w http.ResponseWriter, r *http.Request) {
	claims, err := s.currentUser(r)
	if err != nil {
		s.errorResponse(w, err, "Unauthorized")
		return
	}

	var in entity.CreateProjectInput
	if err = s.decodeBody(r, &in); err != nil {
		s.errorResponse(w, err, "Invalid project data")
		return
	}

	project, err := s.Controllers.Projects.Create(r.Context(), claims, &in)
	if err != nil {
		s.errorResponse(w, err, "Failed to create project")
		return
	}

	s.httpResponse(w, http.StatusCreated, project, "success")
}

func (s *Server) UpdateProject(w http.ResponseWriter, r *http.Request) {
	claims, err := s.currentUser(r)
	if err != nil {
		s.errorResponse(w, err, "Unauthorized")
		return
	}

	id, err := idParam(r)
	if err != nil {
		s.errorResponse(w, err, "Invalid project ID")
		return
	}

	var in entity.UpdateProjectInput
	if err = s.decodeBody(r, &in); err != nil {
		s.errorResponse(w, err, "Invalid project data")
		return
	}

	project, err := s.Controllers.Projects.Update(r.Context(), claims, id, &in)
	if err != nil {
		s.errorResponse(w, err, "Failed to update project")
		return
	}

	s.httpResponse(w, http.StatusOK, project, "success")
}

func (s *Server) GetTasks(w http.ResponseWriter, r *http.Request) {
	claims, err := s.currentUser(r)
	if err != nil {
		s.errorResponse(w, err, "Unauthorized")
		return
	}

	tasks, err := s.Controllers.Tasks.List(r.Context(), claims)
	if err != nil {
		s.errorResponse(w, err, "Failed to get tasks")
		return
	}

	s.httpResponse(w, http.StatusOK, tasks, "success")
}

func (s *Server) CreateTask(w http.ResponseWriter, r *http.Request) {
	claims, err := s.currentUser(r)
	if err != nil {
		s.errorResponse(w, err, "Unauthorized")
		return
	}

	var in entity.CreateTaskInput
	if err = s.decodeBody(r, &in); err != nil {
		s.errorResponse(w, err, "Invalid task data")
		return
	}

	task, err := s.Controllers.Tasks.Create(r.Context(), claims, &in)
	if err != nil {
		s.errorResponse(w, err, "Failed to create task")
		return
	}

	s.httpResponse(w, http.StatusCreated, task, "success")
}

func (s *Server) UpdateTask(w http.ResponseWriter, r *http.Request) {
	claims, err := s.currentUser(r)
	if err != nil {
		s.errorResponse(w, err, "Unauthorized")
		return
	}

	id, err := idParam(r)
	if err != nil {
		s.errorResponse(w, err, "Invalid task ID")
		return
	}

	var in entity.UpdateTaskInput
	if err = s.decodeBody(r, &in); err != nil {
		s.errorResponse(w, err, "Invalid task data")
		return
	}

	task, err := s.Controllers.Tasks.Update(r.Context(), claims, id, &in)
	if err != nil {
		s.errorResponse(w, err, "Failed to update task")
		return
	}

	s.httpResponse(w, http.StatusOK, task, "success")
}

// GetTimeEntries returns the entries visible to the actor.
func (s *Server) GetTimeEntries(w http.ResponseWriter, r *http.Request) {
	claims, err := s.currentUser(r)
	if err != nil {
		s.errorResponse(w, err, "Unauthorized")
		return
	}

	entries, err := s.Controllers.TimeEntries.List(r.Context(), claims)
	if err != nil {
		s.errorResponse(w, err, "Failed to get time entries")
		return
	}

	s.httpResponse(w, http.StatusOK, entries, "success")
}

// GetCurrentTimeEntry returns the actor's open entry, or null.
func (s *Server) GetCurrentTimeEntry(w http.ResponseWriter, r *http.Request) {
	claims, err := s.currentUser(r)
	if err != nil {
		s.errorResponse(w, err, "Unauthorized")
		return
	}

	entry, err := s.Controllers.TimeEntries.Current(r.Context(), claims)
	if err != nil {
		s.errorResponse(w, err, "Failed to get current time entry")
		return
	}

	s.httpResponse(w, http.StatusOK, entry, "success")
}

// ClockIn opens a time entry for the actor.
func (s *Server) ClockIn(w http.ResponseWriter, r *http.Request) {
	claims, err := s.currentUser(r)
	if err != nil {
		s.errorResponse(w, err, "Unauthorized")
		return
	}

	entry, err := s.Controllers.TimeEntries.ClockIn(r.Context(), claims)
	if err != nil {
		s.errorResponse(w, err, "Failed to clock in")
		return
	}

	s.httpResponse(w, http.StatusCreated, entry, "success")
}

// ClockOut completes the actor's open time entry. The body is optional;
// it may carry notes.
func (s *Server) ClockOut(w http.ResponseWriter, r *http.Request) {
	claims, err := s.currentUser(r)
	if err != nil {
		s.errorResponse(w, err, "Unauthorized")
		return
	}

	in := entity.ClockOutInput{}
	if r.Body != nil && r.ContentLength != 0 {
		if err = s.decodeBody(r, &in); err != nil {
			s.errorResponse(w, err, "Invalid request body")
			return
		}
	}

	entry, err := s.Controllers.TimeEntries.ClockOut(r.Context(), claims, &in)
	if err != nil {
		s.errorResponse(w, err, "Failed to clock out")
		return
	}

	s.httpResponse(w, http.StatusOK, entry, "success")
}

// GetLeaveRequests lists the actor's requests, or the pending queue for
// managers and admins.
func (s *Server) GetLeaveRequests(w http.ResponseWriter, r *http.Request) {
	claims, err := s.currentUser(r)
	if err != nil {
		s.errorResponse(w, err, "Unauthorized")
		return
	}

	requests, err := s.Controllers.Leave.List(r.Context(), claims)
	if err != nil {
		s.errorResponse(w, err, "Failed to get leave requests")
		return
	}

	s.httpResponse(w, http.StatusOK, requests, "success")
}

// GetAllLeaveRequests lists every request; manager/admin only.
func (s *Server) GetAllLeaveRequests(w http.ResponseWriter, r *http.Request) {
	claims, err := s.currentUser(r)
	if err != nil {
		s.errorResponse(w, err, "Unauthorized")
		return
	}

	requests, err := s.Controllers.Leave.ListAll(r.Context(), claims)
	if err != nil {
		s.errorResponse(w, err, "Failed to get leave requests")
		return
	}

	s.httpResponse(w, http.StatusOK, requests, "success")
}

// CreateLeaveRequest submits a leave request for the actor.
func (s *Server) CreateLeaveRequest(w http.ResponseWriter, r *http.Request) {
	claims, err := s.currentUser(r)
	if err != nil {
		s.errorResponse(w, err, "Unauthorized")
		return
	}

	var in entity.CreateLeaveRequestInput
	if err = s.decodeBody(r, &in); err != nil {
		s.errorResponse(w, err, "Invalid leave request data")
		return
	}

	request, err := s.Controllers.Leave.Create(r.Context(), claims, &in)
	if err != nil {
		s.errorResponse(w, err, "Failed to create leave request")
		return
	}

	s.httpResponse(w, http.StatusCreated, request, "success")
}

// UpdateLeaveRequest dispatches on the requested status: cancelled goes
// through the owner cancel path, approved/rejected through review.
func (s *Server) UpdateLeaveRequest(w http.ResponseWriter, r *http.Request) {
	claims, err := s.currentUser(r)
	if err != nil {
		s.errorResponse(w, err, "Unauthorized")
		return
	}

	id, err := idParam(r)
	if err != nil {
		s.errorResponse(w, err, "Invalid leave request ID")
		return
	}

	var in entity.UpdateLeaveRequestInput
	if err = s.decodeBody(r, &in); err != nil {
		s.errorResponse(w, err, "Invalid leave request data")
		return
	}

	var request *entity.LeaveRequest
	if in.Status == entity.LeaveCancelled {
		request, err = s.Controllers.Leave.Cancel(r.Context(), claims, id)
	} else {
		request, err = s.Controllers.Leave.Review(r.Context(), claims, id, in.Status, in.Comments)
	}

	if err != nil {
		s.errorResponse(w, err, "Failed to update leave request")
		return
	}

	s.httpResponse(w, http.StatusOK, request, "success")
}
