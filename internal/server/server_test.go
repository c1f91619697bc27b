package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"legalcase/internal/config"
	"legalcase/internal/database"
	"legalcase/internal/repositories"
)

var (
	setupOnce  sync.Once
	setupErr   error
	testEngine *gin.Engine
	testPool   *pgxpool.Pool
)

// testRouter starts a throwaway Postgres container, runs the migrations and
// builds the full router once per test binary. Redis and Kafka stay nil, so
// throttling and change events are disabled.
func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	setupOnce.Do(func() {
		ctx := context.Background()

		container, err := postgres.Run(ctx, "postgres:16-alpine",
			postgres.WithDatabase("legalcase_test"),
			postgres.WithUsername("testuser"),
			postgres.WithPassword("testpass"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).WithStartupTimeout(60*time.Second)),
		)
		if err != nil {
			setupErr = fmt.Errorf("start postgres container: %w", err)
			return
		}

		dsn, err := container.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			setupErr = fmt.Errorf("container connection string: %w", err)
			return
		}

		pool, err := database.Connect(ctx, dsn)
		if err != nil {
			setupErr = fmt.Errorf("connect pool: %w", err)
			return
		}

		if err := database.RunMigrations(ctx, pool); err != nil {
			setupErr = fmt.Errorf("run migrations: %w", err)
			return
		}

		gin.SetMode(gin.TestMode)
		testPool = pool
		testEngine = NewRouter(pool, nil, nil, &config.Config{
			JWTSecret:   []byte("integration-test-secret"),
			CORSOrigins: []string{"*"},
		})
	})

	require.NoError(t, setupErr)
	return testEngine
}

// do sends a JSON request and decodes the JSON response body into a map.
func do(t *testing.T, router *gin.Engine, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	resp := map[string]any{}
	if len(w.Body.Bytes()) > 0 && w.Body.Bytes()[0] == '{' {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w.Code, resp
}

// doList is do for endpoints whose body is a JSON array.
func doList(t *testing.T, router *gin.Engine, method, path, token string) (int, []map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp []map[string]any
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w.Code, resp
}

func registerAndLogin(t *testing.T, router *gin.Engine, name, email, password string) (string, int64) {
	t.Helper()

	code, resp := do(t, router, http.MethodPost, "/admin/register", "", gin.H{
		"name": name, "email": email, "password": password,
	})
	require.Equal(t, http.StatusCreated, code, "register response: %v", resp)

	code, resp = do(t, router, http.MethodPost, "/admin/login", "", gin.H{
		"email": email, "password": password,
	})
	require.Equal(t, http.StatusOK, code, "login response: %v", resp)
	require.NotEmpty(t, resp["token"])

	return resp["token"].(string), int64(resp["admin_id"].(float64))
}

func createLawyer(t *testing.T, router *gin.Engine, name, email string) int64 {
	t.Helper()

	code, resp := do(t, router, http.MethodPost, "/lawyers", "", gin.H{
		"name":             name,
		"email":            email,
		"experience_years": 10,
		"cases_won":        25,
		"cases_lost":       5,
		"phone":            "555-0100",
		"address":          "12 Court St",
		"date_of_birth":    "1980-06-15",
		"specialization":   "Criminal Law",
	})
	require.Equal(t, http.StatusCreated, code, "create lawyer response: %v", resp)

	lawyer := resp["lawyer"].(map[string]any)
	return int64(lawyer["lawyer_id"].(float64))
}

func createClient(t *testing.T, router *gin.Engine, name string, lawyerID *int64) int64 {
	t.Helper()

	body := gin.H{"name": name}
	if lawyerID != nil {
		body["lawyer_id"] = *lawyerID
	}
	code, resp := do(t, router, http.MethodPost, "/clients", "", body)
	require.Equal(t, http.StatusCreated, code, "create client response: %v", resp)

	client := resp["client"].(map[string]any)
	return int64(client["client_id"].(float64))
}

func TestAuthFlow(t *testing.T) {
	router := testRouter(t)

	token, adminID := registerAndLogin(t, router, "A", "a@x.com", "p")

	code, resp := do(t, router, http.MethodGet, "/admin/protected", token, nil)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "You have access to your data", resp["message"])
	require.Equal(t, "A", resp["admin_name"])

	code, _ = do(t, router, http.MethodGet, "/admin/protected", token[:len(token)-8], nil)
	require.Equal(t, http.StatusUnauthorized, code)

	code, resp = do(t, router, http.MethodGet, "/verify-token", token, nil)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, true, resp["valid"])
	require.Equal(t, adminID, int64(resp["admin_id"].(float64)))

	code, _ = do(t, router, http.MethodPost, "/admin/logout", token, nil)
	require.Equal(t, http.StatusOK, code)

	// No server-side revocation: the token keeps working until expiry.
	code, _ = do(t, router, http.MethodGet, "/admin/protected", token, nil)
	require.Equal(t, http.StatusOK, code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	router := testRouter(t)

	registerAndLogin(t, router, "Dup One", "dup@x.com", "pw1")

	code, resp := do(t, router, http.MethodPost, "/admin/register", "", gin.H{
		"name": "Dup Two", "email": "dup@x.com", "password": "pw2",
	})
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "Email already exists", resp["message"])
}

func TestLoginFailures(t *testing.T) {
	router := testRouter(t)

	registerAndLogin(t, router, "Login Admin", "login@x.com", "right-pw")

	// Wrong password and unknown email are indistinguishable.
	for _, body := range []gin.H{
		{"email": "login@x.com", "password": "wrong-pw"},
		{"email": "nobody@x.com", "password": "right-pw"},
	} {
		code, resp := do(t, router, http.MethodPost, "/admin/login", "", body)
		require.Equal(t, http.StatusUnauthorized, code)
		require.Equal(t, "Invalid email or password", resp["message"])
	}

	code, resp := do(t, router, http.MethodPost, "/admin/login", "", gin.H{"email": "login@x.com"})
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "Missing required fields", resp["message"])
}

func TestProfileOwnerCheck(t *testing.T) {
	router := testRouter(t)

	tokenA, idA := registerAndLogin(t, router, "Owner A", "owner-a@x.com", "pw-a")
	_, idB := registerAndLogin(t, router, "Owner B", "owner-b@x.com", "pw-b")

	code, resp := do(t, router, http.MethodGet, fmt.Sprintf("/profile/%d", idA), tokenA, nil)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "owner-a@x.com", resp["email"])

	code, _ = do(t, router, http.MethodGet, fmt.Sprintf("/profile/%d", idB), tokenA, nil)
	require.Equal(t, http.StatusForbidden, code)

	code, _ = do(t, router, http.MethodGet, fmt.Sprintf("/profile/%d", idA), "", nil)
	require.Equal(t, http.StatusUnauthorized, code)

	// Partial update: only the name changes, the email stays.
	code, resp = do(t, router, http.MethodPut, fmt.Sprintf("/profile/%d", idA), tokenA, gin.H{
		"name": "Owner A Renamed",
	})
	require.Equal(t, http.StatusOK, code)
	admin := resp["admin"].(map[string]any)
	require.Equal(t, "Owner A Renamed", admin["name"])
	require.Equal(t, "owner-a@x.com", admin["email"])
}

func TestLawyerCRUD(t *testing.T) {
	router := testRouter(t)

	lawyerID := createLawyer(t, router, "Saul Goodman", "saul@example.com")

	code, resp := do(t, router, http.MethodPost, "/lawyers", "", gin.H{
		"name": "Incomplete Lawyer",
	})
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "Missing required fields", resp["message"])

	code, resp = do(t, router, http.MethodPost, "/lawyers", "", gin.H{
		"name":             "Bad Date",
		"email":            "bad-date@example.com",
		"experience_years": 1,
		"cases_won":        0,
		"cases_lost":       0,
		"phone":            "555-0101",
		"address":          "nowhere",
		"date_of_birth":    "15-06-1980",
		"specialization":   "None",
	})
	require.Equal(t, http.StatusBadRequest, code, "bad date response: %v", resp)

	code, lawyers := doList(t, router, http.MethodGet, "/lawyers", "")
	require.Equal(t, http.StatusOK, code)
	require.NotEmpty(t, lawyers)

	code, resp = do(t, router, http.MethodGet, fmt.Sprintf("/lawyers/%d", lawyerID), "", nil)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "Saul Goodman", resp["name"])

	// Partial update touches only the phone.
	code, resp = do(t, router, http.MethodPut, fmt.Sprintf("/lawyers/%d", lawyerID), "", gin.H{
		"phone": "555-9999",
	})
	require.Equal(t, http.StatusOK, code)
	updated := resp["lawyer"].(map[string]any)
	require.Equal(t, "555-9999", updated["phone"])
	require.Equal(t, "Saul Goodman", updated["name"])
	require.Equal(t, "1980-06-15", updated["date_of_birth"])

	// Empty body is a no-op update.
	code, resp = do(t, router, http.MethodPut, fmt.Sprintf("/lawyers/%d", lawyerID), "", gin.H{})
	require.Equal(t, http.StatusOK, code)
	noop := resp["lawyer"].(map[string]any)
	require.Equal(t, "555-9999", noop["phone"])

	code, _ = do(t, router, http.MethodDelete, fmt.Sprintf("/lawyers/%d", lawyerID), "", nil)
	require.Equal(t, http.StatusOK, code)

	code, _ = do(t, router, http.MethodGet, fmt.Sprintf("/lawyers/%d", lawyerID), "", nil)
	require.Equal(t, http.StatusNotFound, code)

	code, _ = do(t, router, http.MethodDelete, fmt.Sprintf("/lawyers/%d", lawyerID), "", nil)
	require.Equal(t, http.StatusNotFound, code)

	code, _ = do(t, router, http.MethodGet, "/lawyers/abc", "", nil)
	require.Equal(t, http.StatusBadRequest, code)
}

func TestClientLawyerReferenceCleared(t *testing.T) {
	router := testRouter(t)

	lawyerID := createLawyer(t, router, "Ref Lawyer", "ref-lawyer@example.com")
	clientID := createClient(t, router, "Ref Client", &lawyerID)

	code, _ := do(t, router, http.MethodDelete, fmt.Sprintf("/lawyers/%d", lawyerID), "", nil)
	require.Equal(t, http.StatusOK, code)

	// The client survives with its lawyer reference cleared.
	code, resp := do(t, router, http.MethodGet, fmt.Sprintf("/clients/%d", clientID), "", nil)
	require.Equal(t, http.StatusOK, code)
	require.Nil(t, resp["lawyer_id"])
}

func TestCaseValidationAndReferences(t *testing.T) {
	router := testRouter(t)

	clientID := createClient(t, router, "Case Client", nil)

	code, resp := do(t, router, http.MethodPost, "/cases", "", gin.H{
		"title":       "Bad Status Case",
		"description": "status outside the enum",
		"status":      "Pending",
	})
	require.Equal(t, http.StatusBadRequest, code, "bad status response: %v", resp)

	code, resp = do(t, router, http.MethodPost, "/cases", "", gin.H{
		"title":       "Estate Dispute",
		"description": "contested will",
		"status":      "Open",
		"client_id":   clientID,
	})
	require.Equal(t, http.StatusCreated, code, "create case response: %v", resp)
	caseID := int64(resp["case"].(map[string]any)["case_id"].(float64))

	// Deleting the client clears the case's client reference.
	code, _ = do(t, router, http.MethodDelete, fmt.Sprintf("/clients/%d", clientID), "", nil)
	require.Equal(t, http.StatusOK, code)

	code, resp = do(t, router, http.MethodGet, fmt.Sprintf("/cases/%d", caseID), "", nil)
	require.Equal(t, http.StatusOK, code)
	require.Nil(t, resp["client_id"])
	require.Equal(t, "Estate Dispute", resp["title"])
}

func TestAppointmentLifecycle(t *testing.T) {
	router := testRouter(t)

	lawyerID := createLawyer(t, router, "Appt Lawyer", "appt-lawyer@example.com")
	clientID := createClient(t, router, "Appt Client", nil)

	code, resp := do(t, router, http.MethodPost, "/appointments", "", gin.H{
		"client_id":        clientID,
		"lawyer_id":        lawyerID,
		"appointment_date": "2026-10-01",
		"appointment_time": "14:30:00",
	})
	require.Equal(t, http.StatusCreated, code, "create appointment response: %v", resp)
	appt := resp["appointment"].(map[string]any)
	apptID := int64(appt["appointment_id"].(float64))
	require.Equal(t, "Scheduled", appt["appointment_status"])
	require.Equal(t, "2026-10-01", appt["appointment_date"])
	require.Equal(t, "14:30:00", appt["appointment_time"])

	code, resp = do(t, router, http.MethodPost, "/appointments", "", gin.H{
		"client_id":        clientID,
		"lawyer_id":        lawyerID,
		"appointment_date": "2026-10-01",
		"appointment_time": "half past two",
	})
	require.Equal(t, http.StatusBadRequest, code, "bad time response: %v", resp)

	// A dangling reference is rejected by the store and leaves no row.
	code, resp = do(t, router, http.MethodPost, "/appointments", "", gin.H{
		"client_id":        int64(999999),
		"lawyer_id":        lawyerID,
		"appointment_date": "2026-10-02",
		"appointment_time": "09:00:00",
	})
	require.Equal(t, http.StatusInternalServerError, code)
	require.Equal(t, "Integrity error occurred, check for constraints", resp["message"])

	code, resp = do(t, router, http.MethodPut, fmt.Sprintf("/appointments/%d", apptID), "", gin.H{
		"appointment_status": "Completed",
	})
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "Completed", resp["appointment"].(map[string]any)["appointment_status"])

	// Deleting the client cascades to its appointments.
	code, _ = do(t, router, http.MethodDelete, fmt.Sprintf("/clients/%d", clientID), "", nil)
	require.Equal(t, http.StatusOK, code)

	code, _ = do(t, router, http.MethodGet, fmt.Sprintf("/appointments/%d", apptID), "", nil)
	require.Equal(t, http.StatusNotFound, code)
}

func TestAppointmentCaseReferenceCleared(t *testing.T) {
	router := testRouter(t)

	lawyerID := createLawyer(t, router, "Case Ref Lawyer", "case-ref-lawyer@example.com")
	clientID := createClient(t, router, "Case Ref Client", nil)

	code, resp := do(t, router, http.MethodPost, "/cases", "", gin.H{
		"title":       "Hearing Prep",
		"description": "appointment linked to this case",
		"status":      "Open",
		"client_id":   clientID,
		"lawyer_id":   lawyerID,
	})
	require.Equal(t, http.StatusCreated, code, "create case response: %v", resp)
	caseID := int64(resp["case"].(map[string]any)["case_id"].(float64))

	code, resp = do(t, router, http.MethodPost, "/appointments", "", gin.H{
		"client_id":        clientID,
		"lawyer_id":        lawyerID,
		"case_id":          caseID,
		"appointment_date": "2026-11-05",
		"appointment_time": "10:00:00",
	})
	require.Equal(t, http.StatusCreated, code, "create appointment response: %v", resp)
	apptID := int64(resp["appointment"].(map[string]any)["appointment_id"].(float64))

	code, _ = do(t, router, http.MethodDelete, fmt.Sprintf("/cases/%d", caseID), "", nil)
	require.Equal(t, http.StatusOK, code)

	// The appointment survives the case deletion with its case reference
	// cleared; only client and lawyer deletions cascade.
	code, resp = do(t, router, http.MethodGet, fmt.Sprintf("/appointments/%d", apptID), "", nil)
	require.Equal(t, http.StatusOK, code)
	require.Nil(t, resp["case_id"])
	require.Equal(t, "Scheduled", resp["appointment_status"])
}

func TestReportViews(t *testing.T) {
	router := testRouter(t)

	token, _ := registerAndLogin(t, router, "Report Admin", "report@x.com", "pw")

	lawyerID := createLawyer(t, router, "Report Lawyer", "report-lawyer@example.com")
	clientID := createClient(t, router, "Report Client", &lawyerID)

	code, resp := do(t, router, http.MethodPost, "/cases", "", gin.H{
		"title":       "Report Case",
		"description": "for the joined view",
		"status":      "In Progress",
		"client_id":   clientID,
		"lawyer_id":   lawyerID,
	})
	require.Equal(t, http.StatusCreated, code, "create case response: %v", resp)

	for _, table := range []string{"cases", "appointments", "clients", "lawyers"} {
		code, resp := do(t, router, http.MethodGet, "/view/"+table, token, nil)
		require.Equal(t, http.StatusOK, code, "view %s response: %v", table, resp)
		require.Equal(t, table, resp["table"])
		require.NotNil(t, resp["rows"])
	}

	code, viewResp := do(t, router, http.MethodGet, "/view/cases", token, nil)
	require.Equal(t, http.StatusOK, code)
	found := false
	for _, row := range viewResp["rows"].([]any) {
		m := row.(map[string]any)
		if m["title"] == "Report Case" {
			found = true
			require.Equal(t, "Report Client", m["client_name"])
			require.Equal(t, "Report Lawyer", m["lawyer_name"])
		}
	}
	require.True(t, found, "created case missing from joined view")

	code, resp = do(t, router, http.MethodGet, "/view/admins", token, nil)
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "Unknown table name", resp["message"])

	code, _ = do(t, router, http.MethodGet, "/view/cases", "", nil)
	require.Equal(t, http.StatusUnauthorized, code)
}

func TestDashboardCounts(t *testing.T) {
	router := testRouter(t)

	createLawyer(t, router, "Dash Lawyer", "dash-lawyer@example.com")

	code, resp := do(t, router, http.MethodGet, "/dashboard", "", nil)
	require.Equal(t, http.StatusOK, code)
	for _, key := range []string{"lawyers", "clients", "cases", "appointments"} {
		require.Contains(t, resp, key)
	}
	require.GreaterOrEqual(t, resp["lawyers"].(float64), float64(1))
}

func TestLoginThrottling(t *testing.T) {
	testRouter(t)

	ctx := context.Background()
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = redisC.Terminate(ctx) })

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{Addr: host + ":" + port.Port()})
	require.NoError(t, rdb.Ping(ctx).Err())

	// Counter mechanics straight against the repository.
	redisRepo := repositories.NewRedisRepository(rdb)
	count, err := redisRepo.RecordFailedLogin(ctx, "counter@x.com")
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
	count, err = redisRepo.RecordFailedLogin(ctx, "counter@x.com")
	require.NoError(t, err)
	require.Equal(t, int64(2), count)
	require.NoError(t, redisRepo.ResetFailedLogins(ctx, "counter@x.com"))
	count, err = redisRepo.FailedLoginCount(ctx, "counter@x.com")
	require.NoError(t, err)
	require.Zero(t, count)

	router := NewRouter(testPool, rdb, nil, &config.Config{
		JWTSecret:   []byte("integration-test-secret"),
		CORSOrigins: []string{"*"},
	})

	code, resp := do(t, router, http.MethodPost, "/admin/register", "", gin.H{
		"name": "Throttle Admin", "email": "throttle@x.com", "password": "right-pw",
	})
	require.Equal(t, http.StatusCreated, code, "register response: %v", resp)

	badLogin := gin.H{"email": "throttle@x.com", "password": "wrong-pw"}
	goodLogin := gin.H{"email": "throttle@x.com", "password": "right-pw"}

	// Four failures stay under the limit and a success resets the counter.
	for i := 0; i < 4; i++ {
		code, _ = do(t, router, http.MethodPost, "/admin/login", "", badLogin)
		require.Equal(t, http.StatusUnauthorized, code, "attempt %d", i+1)
	}
	code, _ = do(t, router, http.MethodPost, "/admin/login", "", goodLogin)
	require.Equal(t, http.StatusOK, code)

	// Five failures in a row trip the limit; even the right password is
	// rejected until the counter expires.
	for i := 0; i < 5; i++ {
		code, _ = do(t, router, http.MethodPost, "/admin/login", "", badLogin)
		require.Equal(t, http.StatusUnauthorized, code, "attempt %d", i+1)
	}
	code, resp = do(t, router, http.MethodPost, "/admin/login", "", goodLogin)
	require.Equal(t, http.StatusTooManyRequests, code)
	require.Equal(t, "Too many failed login attempts", resp["message"])

	// Throttling is advisory: with redis unreachable a valid login still
	// goes through.
	require.NoError(t, rdb.Close())
	code, _ = do(t, router, http.MethodPost, "/admin/login", "", goodLogin)
	require.Equal(t, http.StatusOK, code)
}

func TestReleaseResources(t *testing.T) {
	// Must not panic when no optional integration was configured.
	releaseResources(nil, nil, nil)

	// A closed redis client is tolerated on a second release.
	rdb := redis.NewClient(&redis.Options{Addr: "localhost:0"})
	require.NoError(t, rdb.Close())
	releaseResources(nil, rdb, nil)
}

func TestHealthEndpoint(t *testing.T) {
	router := testRouter(t)

	code, resp := do(t, router, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "ok", resp["status"])
}
