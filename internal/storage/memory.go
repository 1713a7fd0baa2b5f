package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/worktrack-io/workforce_service/internal/entity"
)

// Memory is a mutex-guarded in-memory Store. It is the development
// backend (database.driver = "memory") and the test double; it enforces
// the same single-open-entry and pending-only transition rules as the
// Postgres store.
type Memory struct {
	mu sync.Mutex

	users         map[uint64]entity.User
	projects      map[uint64]entity.Project
	tasks         map[uint64]entity.Task
	timeEntries   map[uint64]entity.TimeEntry
	leaveRequests map[uint64]entity.LeaveRequest

	nextUserID      uint64
	nextProjectID   uint64
	nextTaskID      uint64
	nextTimeEntryID uint64
	nextLeaveID     uint64
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		users:           make(map[uint64]entity.User),
		projects:        make(map[uint64]entity.Project),
		tasks:           make(map[uint64]entity.Task),
		timeEntries:     make(map[uint64]entity.TimeEntry),
		leaveRequests:   make(map[uint64]entity.LeaveRequest),
		nextUserID:      1,
		nextProjectID:   1,
		nextTaskID:      1,
		nextTimeEntryID: 1,
		nextLeaveID:     1,
	}
}

func (m *Memory) GetUser(_ context.Context, id uint64) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return nil, entity.ErrNotFound
	}

	return &user, nil
}

func (m *Memory) GetUserByUsername(_ context.Context, username string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}

	return nil, entity.ErrNotFound
}

func (m *Memory) ListUsers(_ context.Context) ([]entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	users := make([]entity.User, 0, len(m.users))
	for _, user := range m.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })

	return users, nil
}

func (m *Memory) ListUsersByRole(_ context.Context, role entity.Role) ([]entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var users []entity.User
	for _, user := range m.users {
		if user.Role == role {
			users = append(users, user)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })

	return users, nil
}

func (m *Memory) CreateUser(_ context.Context, user *entity.User) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if existing.Username == user.Username {
			return nil, entity.ErrUsernameTaken
		}
	}

	created := *user
	created.ID = m.nextUserID
	m.nextUserID++
	m.users[created.ID] = created

	return &created, nil
}

func (m *Memory) GetProject(_ context.Context, id uint64) (*entity.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	project, ok := m.projects[id]
	if !ok {
		return nil, entity.ErrNotFound
	}

	return &project, nil
}

func (m *Memory) ListProjects(_ context.Context) ([]entity.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	projects := make([]entity.Project, 0, len(m.projects))
	for _, project := range m.projects {
		projects = append(projects, project)
	}
	sort.Slice(projects, func(i, j int) bool { return projects[i].ID < projects[j].ID })

	return projects, nil
}

func (m *Memory) ListProjectsByManager(_ context.Context, managerID uint64) ([]entity.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var projects []entity.Project
	for _, project := range m.projects {
		if project.ManagerID == managerID {
			projects = append(projects, project)
		}
	}
	sort.Slice(projects, func(i, j int) bool { return projects[i].ID < projects[j].ID })

	return projects, nil
}

func (m *Memory) CreateProject(_ context.Context, project *entity.Project) (*entity.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	created := *project
	created.ID = m.nextProjectID
	m.nextProjectID++
	m.projects[created.ID] = created

	return &created, nil
}

func (m *Memory) UpdateProject(_ context.Context, id uint64, in entity.UpdateProjectInput) (*entity.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	project, ok := m.projects[id]
	if !ok {
		return nil, entity.ErrNotFound
	}

	if in.Name != nil {
		project.Name = *in.Name
	}
	if in.Description != nil {
		project.Description = in.Description
	}
	if in.Deadline != nil {
		project.Deadline = in.Deadline
	}
	if in.Status != nil {
		project.Status = *in.Status
	}
	m.projects[id] = project

	return &project, nil
}

func (m *Memory) GetTask(_ context.Context, id uint64) (*entity.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	task, ok := m.tasks[id]
	if !ok {
		return nil, entity.ErrNotFound
	}

	return &task, nil
}

func (m *Memory) ListTasks(_ context.Context) ([]entity.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	tasks := make([]entity.Task, 0, len(m.tasks))
	for _, task := range m.tasks {
		tasks = append(tasks, task)
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })

	return tasks, nil
}

func (m *Memory) ListTasksByProject(_ context.Context, projectID uint64) ([]entity.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var tasks []entity.Task
	for _, task := range m.tasks {
		if task.ProjectID != nil && *task.ProjectID == projectID {
			tasks = append(tasks, task)
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })

	return tasks, nil
}

func (m *Memory) ListTasksByAssignee(_ context.Context, assigneeID uint64) ([]entity.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var tasks []entity.Task
	for _, task := range m.tasks {
		if task.AssigneeID != nil && *task.AssigneeID == assigneeID {
			tasks = append(tasks, task)
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })

	return tasks, nil
}

func (m *Memory) CreateTask(_ context.Context, task *entity.Task) (*entity.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	created := *task
	created.ID = m.nextTaskID
	m.nextTaskID++
	m.tasks[created.ID] = created

	return &created, nil
}

func (m *Memory) UpdateTask(_ context.Context, id uint64, in entity.UpdateTaskInput) (*entity.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	task, ok := m.tasks[id]
	if !ok {
		return nil, entity.ErrNotFound
	}

	if in.Title != nil {
		task.Title = *in.Title
	}
	if in.Description != nil {
		task.Description = in.Description
	}
	if in.ProjectID != nil {
		task.ProjectID = in.ProjectID
	}
	if in.AssigneeID != nil {
		task.AssigneeID = in.AssigneeID
	}
	if in.Status != nil {
		task.Status = *in.Status
	}
	if in.Priority != nil {
		task.Priority = *in.Priority
	}
	if in.DueDate != nil {
		task.DueDate = in.DueDate
	}
	m.tasks[id] = task

	return &task, nil
}

func (m *Memory) ListTimeEntries(_ context.Context) ([]entity.TimeEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries := make([]entity.TimeEntry, 0, len(m.timeEntries))
	for _, entry := range m.timeEntries {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ClockIn.After(entries[j].ClockIn) })

	return entries, nil
}

func (m *Memory) ListTimeEntriesByUser(_ context.Context, userID uint64) ([]entity.TimeEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var entries []entity.TimeEntry
	for _, entry := range m.timeEntries {
		if entry.UserID == userID {
			entries = append(entries, entry)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ClockIn.After(entries[j].ClockIn) })

	return entries, nil
}

func (m *Memory) GetOpenTimeEntry(_ context.Context, userID uint64) (*entity.TimeEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if entry := m.openEntryLocked(userID); entry != nil {
		e := *entry
		return &e, nil
	}

	return nil, nil
}

func (m *Memory) CreateTimeEntry(_ context.Context, entry *entity.TimeEntry) (*entity.TimeEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Check and insert under one lock so concurrent clock-ins cannot both
	// open an entry.
	if m.openEntryLocked(entry.UserID) != nil {
		return nil, entity.ErrAlreadyClockedIn
	}

	created := *entry
	created.ID = m.nextTimeEntryID
	m.nextTimeEntryID++
	m.timeEntries[created.ID] = created

	return &created, nil
}

func (m *Memory) CloseTimeEntry(_ context.Context, id uint64, close entity.TimeEntryClose) (*entity.TimeEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.timeEntries[id]
	if !ok || entry.Status != entity.TimeEntryInProgress {
		return nil, entity.ErrAlreadyCompleted
	}

	clockOut := close.ClockOut
	totalHours := close.TotalHours
	entry.ClockOut = &clockOut
	entry.TotalHours = &totalHours
	if close.Notes != "" {
		notes := close.Notes
		entry.Notes = &notes
	}
	entry.Status = entity.TimeEntryCompleted
	m.timeEntries[id] = entry

	return &entry, nil
}

func (m *Memory) openEntryLocked(userID uint64) *entity.TimeEntry {
	for id, entry := range m.timeEntries {
		if entry.UserID == userID && entry.Status == entity.TimeEntryInProgress {
			e := m.timeEntries[id]
			return &e
		}
	}

	return nil
}

func (m *Memory) GetLeaveRequest(_ context.Context, id uint64) (*entity.LeaveRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	req, ok := m.leaveRequests[id]
	if !ok {
		return nil, entity.ErrNotFound
	}

	return &req, nil
}

func (m *Memory) ListLeaveRequests(_ context.Context) ([]entity.LeaveRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	reqs := make([]entity.LeaveRequest, 0, len(m.leaveRequests))
	for _, req := range m.leaveRequests {
		reqs = append(reqs, req)
	}
	sortLeaveRequests(reqs)

	return reqs, nil
}

func (m *Memory) ListLeaveRequestsByUser(_ context.Context, userID uint64) ([]entity.LeaveRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var reqs []entity.LeaveRequest
	for _, req := range m.leaveRequests {
		if req.UserID == userID {
			reqs = append(reqs, req)
		}
	}
	sortLeaveRequests(reqs)

	return reqs, nil
}

func (m *Memory) ListPendingLeaveRequests(_ context.Context) ([]entity.LeaveRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var reqs []entity.LeaveRequest
	for _, req := range m.leaveRequests {
		if req.Status == entity.LeavePending {
			reqs = append(reqs, req)
		}
	}
	sortLeaveRequests(reqs)

	return reqs, nil
}

func (m *Memory) CreateLeaveRequest(_ context.Context, req *entity.LeaveRequest) (*entity.LeaveRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	created := *req
	created.ID = m.nextLeaveID
	m.nextLeaveID++
	m.leaveRequests[created.ID] = created

	return &created, nil
}

func (m *Memory) CancelLeaveRequest(_ context.Context, id uint64) (*entity.LeaveRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	req, ok := m.leaveRequests[id]
	if !ok || req.Status != entity.LeavePending {
		return nil, entity.ErrNotPending
	}

	req.Status = entity.LeaveCancelled
	m.leaveRequests[id] = req

	return &req, nil
}

func (m *Memory) ReviewLeaveRequest(_ context.Context, id uint64, review entity.LeaveReview) (*entity.LeaveRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	req, ok := m.leaveRequests[id]
	if !ok || req.Status != entity.LeavePending {
		return nil, entity.ErrNotPending
	}

	reviewedOn := review.ReviewedOn
	reviewerID := review.ReviewerID
	req.Status = review.Decision
	req.ReviewerID = &reviewerID
	req.ReviewedOn = &reviewedOn
	req.Comments = review.Comments
	m.leaveRequests[id] = req

	return &req, nil
}

func sortLeaveRequests(reqs []entity.LeaveRequest) {
	sort.Slice(reqs, func(i, j int) bool {
		return reqs[i].RequestedOn.Before(reqs[j].RequestedOn)
	})
}
