package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	authdomain "taskboard-backend/internal/auth/domain"
	authRepo "taskboard-backend/internal/auth/repository"
	authUsecase "taskboard-backend/internal/auth/usecase"
	taskdomain "taskboard-backend/internal/task/domain"
	taskRepo "taskboard-backend/internal/task/repository"
	taskUsecasePkg "taskboard-backend/internal/task/usecase"
	"taskboard-backend/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&authdomain.User{}, &taskdomain.Task{}))

	cfg := &config.Config{
		JWTSecret:    "test-secret",
		JWTExpiry:    24 * time.Hour,
		CookieDomain: "localhost",
	}
	authUc := authUsecase.NewAuthUsecase(authRepo.NewUserRepository(db), cfg)
	taskUc := taskUsecasePkg.NewTaskUsecase(taskRepo.NewGormTaskRepository(db))

	r := gin.New()
	SetupRoutes(r, authUc, taskUc, cfg, nil)
	return r
}

func request(t *testing.T, r *gin.Engine, method, path string, body interface{}, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := newTestServer(t)

	w := request(t, r, http.MethodGet, "/api/v1/health", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestTasks_RequireSession(t *testing.T) {
	r := newTestServer(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/v1/tasks"},
		{http.MethodPost, "/api/v1/tasks"},
		{http.MethodPut, "/api/v1/tasks/some-id"},
		{http.MethodDelete, "/api/v1/tasks/some-id"},
	} {
		w := request(t, r, tc.method, tc.path, nil, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s without a cookie", tc.method, tc.path)
	}
}

// The full board scenario: signup, login, create a task, drag it to the
// in-progress lane, confirm the move, then delete it.
func TestBoardScenario(t *testing.T) {
	r := newTestServer(t)

	w := request(t, r, http.MethodPost, "/api/v1/user/signup", map[string]string{
		"firstname": "Ada",
		"lastname":  "Lovelace",
		"email":     "ada@example.com",
		"password":  "Str0ng!Pass",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = request(t, r, http.MethodPost, "/api/v1/user/login", map[string]string{
		"email":    "ada@example.com",
		"password": "Str0ng!Pass",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var identity map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &identity))
	assert.Equal(t, "Ada", identity["firstname"])
	assert.Equal(t, "Lovelace", identity["lastname"])
	assert.Equal(t, "ada@example.com", identity["email"])
	assert.NotContains(t, identity, "password")

	session := w.Result().Cookies()
	require.NotEmpty(t, session)

	// create
	w = request(t, r, http.MethodPost, "/api/v1/tasks", map[string]interface{}{
		"title":    "Write spec",
		"status":   "To Do",
		"priority": "High",
	}, session)
	require.Equal(t, http.StatusCreated, w.Code)

	var created taskdomain.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)

	// drag to the inProgress column
	w = request(t, r, http.MethodPut, "/api/v1/tasks/"+created.ID, map[string]interface{}{
		"status": "inProgress",
	}, session)
	require.Equal(t, http.StatusOK, w.Code)

	// list shows the moved task, title unchanged
	w = request(t, r, http.MethodGet, "/api/v1/tasks", nil, session)
	require.Equal(t, http.StatusOK, w.Code)

	var tasks []taskdomain.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, taskdomain.StatusInProgress, tasks[0].Status)
	assert.Equal(t, "Write spec", tasks[0].Title)

	// delete, then the id is gone
	w = request(t, r, http.MethodDelete, "/api/v1/tasks/"+created.ID, nil, session)
	require.Equal(t, http.StatusOK, w.Code)

	w = request(t, r, http.MethodDelete, "/api/v1/tasks/"+created.ID, nil, session)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBoards_AreIsolatedPerUser(t *testing.T) {
	r := newTestServer(t)

	login := func(first, email string) []*http.Cookie {
		w := request(t, r, http.MethodPost, "/api/v1/user/signup", map[string]string{
			"firstname": first,
			"lastname":  "User",
			"email":     email,
			"password":  "Str0ng!Pass",
		}, nil)
		require.Equal(t, http.StatusCreated, w.Code)
		return w.Result().Cookies()
	}

	alice := login("Alice", "alice@example.com")
	bob := login("Bob", "bob@example.com")

	w := request(t, r, http.MethodPost, "/api/v1/tasks", map[string]interface{}{
		"title": "alice's task",
	}, alice)
	require.Equal(t, http.StatusCreated, w.Code)

	var created taskdomain.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	// Bob sees an empty board
	w = request(t, r, http.MethodGet, "/api/v1/tasks", nil, bob)
	require.Equal(t, http.StatusOK, w.Code)
	var tasks []taskdomain.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tasks))
	assert.Empty(t, tasks)

	// and cannot touch Alice's task
	w = request(t, r, http.MethodPut, "/api/v1/tasks/"+created.ID, map[string]interface{}{
		"title": "hijacked",
	}, bob)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = request(t, r, http.MethodDelete, "/api/v1/tasks/"+created.ID, nil, bob)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
