package domain

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/hariprasadd0/codora/internal/calendar"
	"github.com/hariprasadd0/codora/internal/entities"
	"github.com/hariprasadd0/codora/internal/events"
	"github.com/hariprasadd0/codora/internal/repository"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type repoMock struct{ mock.Mock }

var _ repository.Repository = (*repoMock)(nil)

func (m *repoMock) OnStart(_ context.Context) error { return nil }
func (m *repoMock) OnStop(_ context.Context) error  { return nil }

func (m *repoMock) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) GetUser(ctx context.Context, userID string) (*entities.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) EnableCalendar(ctx context.Context, userID string, creds entities.CalendarCredentials) (*entities.User, error) {
	args := m.Called(ctx, userID, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) DisableCalendar(ctx context.Context, userID string) (*entities.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	args := m.Called(ctx, team)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *repoMock) GetTeam(ctx context.Context, teamID string) (*entities.Team, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *repoMock) AddMember(ctx context.Context, member entities.TeamMember) (*entities.TeamMember, error) {
	args := m.Called(ctx, member)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.TeamMember), args.Error(1)
}

func (m *repoMock) RemoveMember(ctx context.Context, teamID, userID string) error {
	args := m.Called(ctx, teamID, userID)
	return args.Error(0)
}

func (m *repoMock) IsMember(ctx context.Context, userID, teamID string) (bool, error) {
	args := m.Called(ctx, userID, teamID)
	return args.Bool(0), args.Error(1)
}

func (m *repoMock) IsTeamLead(ctx context.Context, userID, teamID string) (bool, error) {
	args := m.Called(ctx, userID, teamID)
	return args.Bool(0), args.Error(1)
}

func (m *repoMock) CreateProject(ctx context.Context, project entities.Project) (*entities.Project, error) {
	args := m.Called(ctx, project)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Project), args.Error(1)
}

func (m *repoMock) GetProject(ctx context.Context, projectID string) (*entities.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Project), args.Error(1)
}

func (m *repoMock) ListProjects(ctx context.Context, creatorID string) ([]entities.Project, error) {
	args := m.Called(ctx, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Project), args.Error(1)
}

func (m *repoMock) UpdateProject(ctx context.Context, projectID string, name, description *string) (*entities.Project, error) {
	args := m.Called(ctx, projectID, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Project), args.Error(1)
}

func (m *repoMock) AttachTeam(ctx context.Context, projectID, teamID string) (*entities.Project, error) {
	args := m.Called(ctx, projectID, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Project), args.Error(1)
}

func (m *repoMock) DeleteProject(ctx context.Context, projectID string) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

func (m *repoMock) CreateTask(ctx context.Context, task entities.Task) (*entities.Task, error) {
	args := m.Called(ctx, task)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *repoMock) GetTask(ctx context.Context, taskID string) (*entities.Task, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *repoMock) ListTasks(ctx context.Context, projectID string) ([]entities.Task, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Task), args.Error(1)
}

func (m *repoMock) UpdateTask(ctx context.Context, taskID string, upd entities.TaskUpdate) (*entities.Task, error) {
	args := m.Called(ctx, taskID, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *repoMock) DeleteTask(ctx context.Context, taskID string) error {
	args := m.Called(ctx, taskID)
	return args.Error(0)
}

func (m *repoMock) AssignTask(ctx context.Context, taskID, assigneeID string) (*entities.Task, error) {
	args := m.Called(ctx, taskID, assigneeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *repoMock) CreateCalendarEvent(ctx context.Context, event entities.CalendarEvent) (*entities.CalendarEvent, error) {
	args := m.Called(ctx, event)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.CalendarEvent), args.Error(1)
}

func (m *repoMock) GetCalendarEvent(ctx context.Context, userID, eventID string) (*entities.CalendarEvent, error) {
	args := m.Called(ctx, userID, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.CalendarEvent), args.Error(1)
}

func (m *repoMock) ListCalendarEvents(ctx context.Context, userID string) ([]entities.CalendarEvent, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.CalendarEvent), args.Error(1)
}

func (m *repoMock) DeleteCalendarEvent(ctx context.Context, userID, eventID string) error {
	args := m.Called(ctx, userID, eventID)
	return args.Error(0)
}

type broadcastCall struct {
	scope   string
	event   string
	payload any
}

type broadcasterRecorder struct {
	mu    sync.Mutex
	calls []broadcastCall
}

func (b *broadcasterRecorder) Broadcast(scope, event string, payload any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, broadcastCall{scope: scope, event: event, payload: payload})
}

func (b *broadcasterRecorder) Calls() []broadcastCall {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]broadcastCall(nil), b.calls...)
}

type busRecorder struct {
	mu   sync.Mutex
	envs []events.TaskEnvelope
}

func (b *busRecorder) Publish(env events.TaskEnvelope) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.envs = append(b.envs, env)
}

func (b *busRecorder) Envelopes() []events.TaskEnvelope {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]events.TaskEnvelope(nil), b.envs...)
}

type providerMock struct{ mock.Mock }

func (m *providerMock) InsertEvent(ctx context.Context, creds entities.CalendarCredentials, event calendar.Event) (string, error) {
	args := m.Called(ctx, creds, event)
	return args.String(0), args.Error(1)
}

type fixture struct {
	repo        *repoMock
	broadcaster *broadcasterRecorder
	bus         *busRecorder
	provider    *providerMock
	uc          *Usecase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		repo:        &repoMock{},
		broadcaster: &broadcasterRecorder{},
		bus:         &busRecorder{},
		provider:    &providerMock{},
	}
	f.uc = New(zap.NewNop().Sugar(), context.Background(), f.repo, f.broadcaster, f.bus, f.provider, time.Second, time.Second)
	return f
}

func strPtr(s string) *string { return &s }

func TestAssignTaskValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.AssignTask(context.Background(), "", "u1")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = f.uc.AssignTask(context.Background(), "t1", "")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	f.repo.AssertNotCalled(t, "AssignTask", mock.Anything, mock.Anything, mock.Anything)
	require.Empty(t, f.broadcaster.Calls())
}

func TestAssignTaskBroadcastsAfterCommit(t *testing.T) {
	f := newFixture(t)

	assigned := &entities.Task{ID: "t1", ProjectID: "p1", Title: "demo", AssignedToID: strPtr("u1")}
	f.repo.On("AssignTask", mock.Anything, "t1", "u1").Return(assigned, nil)

	task, err := f.uc.AssignTask(context.Background(), "t1", "u1")
	require.NoError(t, err)
	require.Equal(t, assigned, task)

	calls := f.broadcaster.Calls()
	require.Len(t, calls, 1)
	require.Equal(t, "project-p1", calls[0].scope)
	require.Equal(t, events.TaskAssigned, calls[0].event)
	require.Equal(t, assigned, calls[0].payload)

	envs := f.bus.Envelopes()
	require.Len(t, envs, 1)
	require.Equal(t, events.TaskAssigned, envs[0].Event)
	require.Equal(t, "t1", envs[0].Task.ID)

	f.repo.AssertExpectations(t)
}

func TestAssignTaskRejectionEmitsNothing(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{name: "already_assigned", err: entities.ErrTaskAlreadyAssigned},
		{name: "not_team_member", err: entities.ErrNotTeamMember},
		{name: "solo_project", err: entities.ErrNotProjectCreator},
		{name: "task_missing", err: entities.ErrTaskNotFound},
		{name: "assignee_missing", err: entities.ErrAssigneeNotFound},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.repo.On("AssignTask", mock.Anything, "t1", "u1").Return(nil, tc.err)

			_, err := f.uc.AssignTask(context.Background(), "t1", "u1")
			require.ErrorIs(t, err, tc.err)
			require.Empty(t, f.broadcaster.Calls())
			require.Empty(t, f.bus.Envelopes())
		})
	}
}

func TestCreateTaskBroadcastsTaskCreated(t *testing.T) {
	f := newFixture(t)

	created := &entities.Task{ID: "t1", ProjectID: "p1", Title: "demo", Status: entities.StatusPending, Priority: entities.PriorityMedium}
	f.repo.On("CreateTask", mock.Anything, mock.MatchedBy(func(task entities.Task) bool {
		return task.ProjectID == "p1" && task.Title == "demo" &&
			task.Status == entities.StatusPending && task.Priority == entities.PriorityMedium && task.ID != ""
	})).Return(created, nil)

	task, err := f.uc.CreateTask(context.Background(), entities.Task{ProjectID: "p1", Title: "demo"})
	require.NoError(t, err)
	require.Equal(t, created, task)

	calls := f.broadcaster.Calls()
	require.Len(t, calls, 1)
	require.Equal(t, "project-p1", calls[0].scope)
	require.Equal(t, events.TaskCreated, calls[0].event)

	f.repo.AssertExpectations(t)
}

func TestCreateTaskValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.CreateTask(context.Background(), entities.Task{ProjectID: "p1"})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	f.repo.AssertNotCalled(t, "CreateTask", mock.Anything, mock.Anything)
}

func TestUpdateTaskRejectsUnknownStatus(t *testing.T) {
	f := newFixture(t)

	bad := entities.TaskStatus("ARCHIVED")
	_, err := f.uc.UpdateTask(context.Background(), "t1", entities.TaskUpdate{Status: &bad})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	f.repo.AssertNotCalled(t, "UpdateTask", mock.Anything, mock.Anything, mock.Anything)
}

func TestSyncTaskNotConnected(t *testing.T) {
	f := newFixture(t)

	f.repo.On("GetUser", mock.Anything, "u1").Return(&entities.User{ID: "u1", CalendarEnabled: false}, nil)

	_, err := f.uc.SyncTask(context.Background(), "t1", "u1")
	require.ErrorIs(t, err, entities.ErrCalendarNotConnected)
	f.provider.AssertNotCalled(t, "InsertEvent", mock.Anything, mock.Anything, mock.Anything)
	f.repo.AssertNotCalled(t, "CreateCalendarEvent", mock.Anything, mock.Anything)
}

func TestSyncTaskNoDeadline(t *testing.T) {
	f := newFixture(t)

	f.repo.On("GetUser", mock.Anything, "u1").Return(connectedUser("u1"), nil)
	f.repo.On("GetTask", mock.Anything, "t1").Return(&entities.Task{ID: "t1", ProjectID: "p1"}, nil)

	_, err := f.uc.SyncTask(context.Background(), "t1", "u1")
	require.ErrorIs(t, err, entities.ErrTaskNoDeadline)
	f.provider.AssertNotCalled(t, "InsertEvent", mock.Anything, mock.Anything, mock.Anything)
	f.repo.AssertNotCalled(t, "CreateCalendarEvent", mock.Anything, mock.Anything)
}

func TestSyncTaskProviderFailure(t *testing.T) {
	f := newFixture(t)

	deadline := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	f.repo.On("GetUser", mock.Anything, "u1").Return(connectedUser("u1"), nil)
	f.repo.On("GetTask", mock.Anything, "t1").Return(&entities.Task{ID: "t1", ProjectID: "p1", Title: "demo", Deadline: &deadline}, nil)
	f.provider.On("InsertEvent", mock.Anything, mock.Anything, mock.Anything).Return("", entities.ErrExternalService)

	_, err := f.uc.SyncTask(context.Background(), "t1", "u1")
	require.ErrorIs(t, err, entities.ErrExternalService)
	f.repo.AssertNotCalled(t, "CreateCalendarEvent", mock.Anything, mock.Anything)
}

func TestSyncTaskSuccess(t *testing.T) {
	f := newFixture(t)

	deadline := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	f.repo.On("GetUser", mock.Anything, "u1").Return(connectedUser("u1"), nil)
	f.repo.On("GetTask", mock.Anything, "t1").Return(&entities.Task{ID: "t1", ProjectID: "p1", Title: "demo", Description: "body", Deadline: &deadline}, nil)

	f.provider.On("InsertEvent", mock.Anything, mock.Anything, mock.MatchedBy(func(ev calendar.Event) bool {
		return ev.Title == "demo" && ev.Timezone == "UTC" &&
			ev.Start.Equal(deadline) && ev.End.Equal(deadline.Add(time.Hour))
	})).Return("prov-1", nil)

	stored := &entities.CalendarEvent{ID: "ce-1", UserID: "u1", TaskID: "t1", ProviderEventID: "prov-1"}
	f.repo.On("CreateCalendarEvent", mock.Anything, mock.MatchedBy(func(ev entities.CalendarEvent) bool {
		return ev.UserID == "u1" && ev.TaskID == "t1" && ev.ProviderEventID == "prov-1"
	})).Return(stored, nil)

	event, err := f.uc.SyncTask(context.Background(), "t1", "u1")
	require.NoError(t, err)
	require.Equal(t, stored, event)

	f.provider.AssertNumberOfCalls(t, "InsertEvent", 1)
	f.repo.AssertExpectations(t)
}

func TestAddMemberRequiresTeamLead(t *testing.T) {
	f := newFixture(t)

	f.repo.On("IsTeamLead", mock.Anything, "caller", "team1").Return(false, nil)

	_, err := f.uc.AddMember(context.Background(), "caller", "team1", "u1", entities.RoleMember)
	require.ErrorIs(t, err, entities.ErrNotTeamLead)
	f.repo.AssertNotCalled(t, "AddMember", mock.Anything, mock.Anything)
}

func TestAddMemberDelegates(t *testing.T) {
	f := newFixture(t)

	f.repo.On("IsTeamLead", mock.Anything, "caller", "team1").Return(true, nil)
	expected := &entities.TeamMember{TeamID: "team1", UserID: "u1", Role: entities.RoleMember}
	f.repo.On("AddMember", mock.Anything, *expected).Return(expected, nil)

	member, err := f.uc.AddMember(context.Background(), "caller", "team1", "u1", entities.RoleMember)
	require.NoError(t, err)
	require.Equal(t, expected, member)
	f.repo.AssertExpectations(t)
}

func TestAttachTeamRequiresCreator(t *testing.T) {
	f := newFixture(t)

	f.repo.On("GetProject", mock.Anything, "p1").Return(&entities.Project{ID: "p1", CreatorID: "owner"}, nil)

	_, err := f.uc.AttachTeam(context.Background(), "intruder", "p1", "team1")
	require.ErrorIs(t, err, entities.ErrNotProjectCreator)
	f.repo.AssertNotCalled(t, "AttachTeam", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateTeamValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.CreateTeam(context.Background(), "creator", "")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	f.repo.AssertNotCalled(t, "CreateTeam", mock.Anything, mock.Anything)
}

func connectedUser(id string) *entities.User {
	return &entities.User{
		ID:              id,
		CalendarEnabled: true,
		Credentials: &entities.CalendarCredentials{
			AccessToken:  "access",
			RefreshToken: "refresh",
		},
	}
}
