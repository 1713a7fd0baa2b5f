package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/worktrack-io/workforce_service/internal/controllers"
	"github.com/worktrack-io/workforce_service/internal/entity"
)

type Server struct {
	deps        *controllers.Dependens
	Controllers *controllers.Controllers
	validate    *validator.Validate
}

func NewServer(deps *controllers.Dependens) *Server {
	return &Server{
		deps:        deps,
		Controllers: controllers.NewControllers(deps),
		validate:    validator.New(),
	}
}

// Routes registers every endpoint under /api on the given router.
func (s *Server) Routes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/register", s.Register)
		r.Post("/login", s.Login)
		r.Post("/logout", s.Logout)
		r.Get("/user", s.GetCurrentUser)
		r.Get("/users", s.GetUsers)

		r.Get("/projects", s.GetProjects)
		r.Post("/projects", s.CreateProject)
		r.Put("/projects/{id}", s.UpdateProject)

		r.Get("/tasks", s.GetTasks)
		r.Post("/tasks", s.CreateTask)
		r.Put("/tasks/{id}", s.UpdateTask)

		r.Get("/time-entries", s.GetTimeEntries)
		r.Get("/time-entries/current", s.GetCurrentTimeEntry)
		r.Post("/time-entries/clock-in", s.ClockIn)
		r.Post("/time-entries/clock-out", s.ClockOut)

		r.Get("/leave-requests", s.GetLeaveRequests)
		r.Get("/leave-requests/all", s.GetAllLeaveRequests)
		r.Post("/leave-requests", s.CreateLeaveRequest)
		r.Put("/leave-requests/{id}", s.UpdateLeaveRequest)
	})
}

// currentUser resolves the bearer token to claims; every protected
// handler starts here.
func (s *Server) currentUser(r *http.Request) (*entity.Claims, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, entity.ErrUnauthenticated
	}

	claims, err := s.Controllers.Auth.CheckUserToken(r.Context(), authHeader)
	if err != nil {
		return nil, err
	}

	return claims, nil
}

// decodeBody unmarshals and validates a JSON request payload.
func (s *Server) decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &entity.DomainError{Kind: entity.KindValidation, Code: "InvalidBody", Message: "Invalid request body"}
	}

	if err := s.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return &entity.DomainError{Kind: entity.KindValidation, Code: "InvalidBody", Message: verrs.Error()}
		}
		return err
	}

	return nil
}

func idParam(r *http.Request) (uint64, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, &entity.DomainError{Kind: entity.KindValidation, Code: "InvalidID", Message: "Invalid id"}
	}

	return id, nil
}

func statusForError(err error) int {
	var derr *entity.DomainError
	if errors.As(err, &derr) {
		switch derr.Kind {
		case entity.KindValidation, entity.KindConflict:
			return http.StatusBadRequest
		case entity.KindUnauthenticated:
			return http.StatusUnauthorized
		case entity.KindForbidden:
			return http.StatusForbidden
		case entity.KindNotFound:
			return http.StatusNotFound
		}
	}

	return http.StatusInternalServerError
}

// errorResponse maps a controller error onto the wire. Domain errors keep
// their message (the UI surfaces it verbatim); anything else becomes the
// fallback with a 500.
func (s *Server) errorResponse(w http.ResponseWriter, err error, fallback string) {
	status := statusForError(err)
	message := fallback
	var derr *entity.DomainError
	if errors.As(err, &derr) {
		message = derr.Message
	}

	s.httpResponse(w, status, map[string]string{"error": message}, "error")
}

func (s *Server) httpResponse(w http.ResponseWriter, status int, data any, respType string) {
	resp := map[string]any{
		"status": status,
		"type":   respType,
		"data":   data,
	}

	respData, marshalErr := json.Marshal(resp)
	if marshalErr != nil {
		s.deps.Logger.Error("Error marshaling response", slog.String("error", marshalErr.Error()))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if _, err := w.Write(respData); err != nil {
		s.deps.Logger.Error("Error writing response", slog.String("error", err.Error()))
	}
}
