package postgres

import (
	"context"
	"database/sql"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/hariprasadd0/codora/config"
	"github.com/hariprasadd0/codora/internal/entities"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRepositoryIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	for _, u := range []entities.User{
		{ID: "alice", Email: "alice@example.com", Name: "Alice"},
		{ID: "bob", Email: "bob@example.com", Name: "Bob"},
		{ID: "carol", Email: "carol@example.com", Name: "Carol"},
		{ID: "dave", Email: "dave@example.com", Name: "Dave"},
	} {
		created, err := repo.CreateUser(ctx, u)
		require.NoError(t, err)
		require.Equal(t, u.ID, created.ID)
		require.False(t, created.CalendarEnabled)
	}

	_, err := repo.CreateUser(ctx, entities.User{ID: "alice2", Email: "alice@example.com", Name: "Dup"})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	team, err := repo.CreateTeam(ctx, entities.Team{ID: "eng", Name: "Engineering", CreatorID: "alice"})
	require.NoError(t, err)
	require.Len(t, team.Members, 1)
	require.Equal(t, entities.RoleTeamLead, team.Members[0].Role)

	_, err = repo.AddMember(ctx, entities.TeamMember{TeamID: "eng", UserID: "bob", Role: entities.RoleMember})
	require.NoError(t, err)
	_, err = repo.AddMember(ctx, entities.TeamMember{TeamID: "eng", UserID: "bob", Role: entities.RoleMember})
	require.ErrorIs(t, err, entities.ErrMemberExists)
	_, err = repo.AddMember(ctx, entities.TeamMember{TeamID: "ghost", UserID: "bob", Role: entities.RoleMember})
	require.ErrorIs(t, err, entities.ErrTeamNotFound)
	_, err = repo.AddMember(ctx, entities.TeamMember{TeamID: "eng", UserID: "ghost", Role: entities.RoleMember})
	require.ErrorIs(t, err, entities.ErrUserNotFound)

	isMember, err := repo.IsMember(ctx, "bob", "eng")
	require.NoError(t, err)
	require.True(t, isMember)
	isLead, err := repo.IsTeamLead(ctx, "bob", "eng")
	require.NoError(t, err)
	require.False(t, isLead)
	isLead, err = repo.IsTeamLead(ctx, "alice", "eng")
	require.NoError(t, err)
	require.True(t, isLead)

	project, err := repo.CreateProject(ctx, entities.Project{ID: "proj", Name: "Launch", Description: "launch plan", CreatorID: "alice"})
	require.NoError(t, err)
	require.Nil(t, project.TeamID)

	project, err = repo.AttachTeam(ctx, "proj", "eng")
	require.NoError(t, err)
	require.NotNil(t, project.TeamID)
	require.Equal(t, "eng", *project.TeamID)

	_, err = repo.AttachTeam(ctx, "proj", "eng")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	task, err := repo.CreateTask(ctx, entities.Task{
		ID: "t1", ProjectID: "proj", Title: "ship it",
		Status: entities.StatusPending, Priority: entities.PriorityHigh,
	})
	require.NoError(t, err)
	require.Nil(t, task.AssignedToID)
	require.NotNil(t, task.CreatedAt)

	assigned, err := repo.AssignTask(ctx, "t1", "bob")
	require.NoError(t, err)
	require.NotNil(t, assigned.AssignedToID)
	require.Equal(t, "bob", *assigned.AssignedToID)

	_, err = repo.AssignTask(ctx, "t1", "bob")
	require.ErrorIs(t, err, entities.ErrTaskAlreadyAssigned)

	_, err = repo.AssignTask(ctx, "t1", "carol")
	require.ErrorIs(t, err, entities.ErrNotTeamMember)

	_, err = repo.AssignTask(ctx, "t1", "ghost")
	require.ErrorIs(t, err, entities.ErrAssigneeNotFound)

	_, err = repo.AssignTask(ctx, "missing", "bob")
	require.ErrorIs(t, err, entities.ErrTaskNotFound)

	reassigned, err := repo.AssignTask(ctx, "t1", "alice")
	require.NoError(t, err)
	require.Equal(t, "alice", *reassigned.AssignedToID)

	solo, err := repo.CreateProject(ctx, entities.Project{ID: "solo", Name: "Side", CreatorID: "dave"})
	require.NoError(t, err)
	require.Nil(t, solo.TeamID)

	_, err = repo.CreateTask(ctx, entities.Task{
		ID: "t2", ProjectID: "solo", Title: "write notes",
		Status: entities.StatusPending, Priority: entities.PriorityLow,
	})
	require.NoError(t, err)

	_, err = repo.AssignTask(ctx, "t2", "bob")
	require.ErrorIs(t, err, entities.ErrNotProjectCreator)

	soloAssigned, err := repo.AssignTask(ctx, "t2", "dave")
	require.NoError(t, err)
	require.Equal(t, "dave", *soloAssigned.AssignedToID)

	dep := "t2"
	_, err = repo.CreateTask(ctx, entities.Task{
		ID: "t3", ProjectID: "proj", Title: "cross dep",
		Status: entities.StatusPending, Priority: entities.PriorityMedium,
		DependencyTaskID: &dep,
	})
	require.ErrorIs(t, err, entities.ErrDependencyInvalid)

	sameDep := "t1"
	withDep, err := repo.CreateTask(ctx, entities.Task{
		ID: "t4", ProjectID: "proj", Title: "follow up",
		Status: entities.StatusPending, Priority: entities.PriorityMedium,
		DependencyTaskID: &sameDep,
	})
	require.NoError(t, err)
	require.Equal(t, "t1", *withDep.DependencyTaskID)

	tasks, err := repo.ListTasks(ctx, "proj")
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	newStatus := entities.StatusInProgress
	updated, err := repo.UpdateTask(ctx, "t4", entities.TaskUpdate{Status: &newStatus})
	require.NoError(t, err)
	require.Equal(t, entities.StatusInProgress, updated.Status)
	require.Equal(t, "follow up", updated.Title)

	require.NoError(t, repo.RemoveMember(ctx, "eng", "bob"))
	require.ErrorIs(t, repo.RemoveMember(ctx, "eng", "bob"), entities.ErrNotTeamMember)
}

func TestCalendarIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	_, err := repo.CreateUser(ctx, entities.User{ID: "erin", Email: "erin@example.com", Name: "Erin"})
	require.NoError(t, err)

	user, err := repo.EnableCalendar(ctx, "erin", entities.CalendarCredentials{
		AccessToken:  "access",
		RefreshToken: "refresh",
		CalendarID:   "primary",
	})
	require.NoError(t, err)
	require.True(t, user.Connected())

	fetched, err := repo.GetUser(ctx, "erin")
	require.NoError(t, err)
	require.True(t, fetched.Connected())
	require.Equal(t, "refresh", fetched.Credentials.RefreshToken)

	_, err = repo.CreateProject(ctx, entities.Project{ID: "p", Name: "Plan", CreatorID: "erin"})
	require.NoError(t, err)
	_, err = repo.CreateTask(ctx, entities.Task{
		ID: "t", ProjectID: "p", Title: "deadline work",
		Status: entities.StatusPending, Priority: entities.PriorityMedium,
	})
	require.NoError(t, err)

	start := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	event, err := repo.CreateCalendarEvent(ctx, entities.CalendarEvent{
		ID: "ce1", UserID: "erin", TaskID: "t", ProviderEventID: "gcal-1",
		Title: "deadline work", Start: start, End: start.Add(time.Hour),
	})
	require.NoError(t, err)
	require.Equal(t, "gcal-1", event.ProviderEventID)

	got, err := repo.GetCalendarEvent(ctx, "erin", "ce1")
	require.NoError(t, err)
	require.Equal(t, "t", got.TaskID)

	_, err = repo.GetCalendarEvent(ctx, "someone-else", "ce1")
	require.ErrorIs(t, err, entities.ErrEventNotFound)

	list, err := repo.ListCalendarEvents(ctx, "erin")
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, repo.DeleteCalendarEvent(ctx, "erin", "ce1"))
	require.ErrorIs(t, repo.DeleteCalendarEvent(ctx, "erin", "ce1"), entities.ErrEventNotFound)

	disabled, err := repo.DisableCalendar(ctx, "erin")
	require.NoError(t, err)
	require.False(t, disabled.CalendarEnabled)
	require.False(t, disabled.Connected())
}

func TestAssignTaskConcurrentIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	_, err := repo.CreateUser(ctx, entities.User{ID: "alice", Email: "alice@example.com", Name: "Alice"})
	require.NoError(t, err)
	_, err = repo.CreateTeam(ctx, entities.Team{ID: "eng", Name: "Engineering", CreatorID: "alice"})
	require.NoError(t, err)
	_, err = repo.CreateProject(ctx, entities.Project{ID: "proj", Name: "Race", CreatorID: "alice"})
	require.NoError(t, err)
	_, err = repo.AttachTeam(ctx, "proj", "eng")
	require.NoError(t, err)
	_, err = repo.CreateTask(ctx, entities.Task{
		ID: "t1", ProjectID: "proj", Title: "contested",
		Status: entities.StatusPending, Priority: entities.PriorityHigh,
	})
	require.NoError(t, err)

	// Same user from many goroutines: the row lock serializes them, so
	// exactly one transaction sees the task unassigned.
	const workers = 8
	var wg sync.WaitGroup
	results := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.AssignTask(ctx, "t1", "alice")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var wins, conflicts int
	for err := range results {
		switch {
		case err == nil:
			wins++
		default:
			require.ErrorIs(t, err, entities.ErrTaskAlreadyAssigned)
			conflicts++
		}
	}
	require.Equal(t, 1, wins)
	require.Equal(t, workers-1, conflicts)

	task, err := repo.GetTask(ctx, "t1")
	require.NoError(t, err)
	require.NotNil(t, task.AssignedToID)
	require.Equal(t, "alice", *task.AssignedToID)
}

func setupPostgres(t *testing.T) (*config.Config, func()) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=codora_db",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)

	hostPort := resource.GetPort("5432/tcp")

	port, err := strconv.Atoi(hostPort)
	require.NoError(t, err)
	migrationsDir, err := filepath.Abs(filepath.Join("..", "..", "..", "db", "migrations"))
	require.NoError(t, err)
	require.DirExists(t, migrationsDir)

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "0.0.0.0", Port: 8080, ShutdownTimeout: 5 * time.Second},
		HTTP:   config.HTTPConfig{RequestTimeout: 5 * time.Second},
		Postgres: config.PostgresConfig{
			Host:           "localhost",
			Port:           port,
			User:           "postgres",
			Password:       "postgres",
			DBName:         "codora_db",
			SSLMode:        "disable",
			MigrationsDir:  migrationsDir,
			QueryTimeout:   10 * time.Second,
			MigrateTimeout: 20 * time.Second,
			MaxConns:       8,
			MinConns:       1,
		},
	}

	require.NoError(t, pool.Retry(func() error {
		db, err := sql.Open("postgres", "host=localhost port="+hostPort+" user=postgres password=postgres dbname=codora_db sslmode=disable")
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		return db.Ping()
	}))

	cleanup := func() {
		_ = pool.Purge(resource)
	}

	return cfg, cleanup
}

func testLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()

	l, _ := zap.NewDevelopment()
	t.Cleanup(func() { _ = l.Sync() })
	return l.Sugar()
}
