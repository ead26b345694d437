// Package steps provides step definitions for the BDD integration suite.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ekajy/backend/config"
	"github.com/ekajy/backend/internal/infra/dependency"
	"github.com/ekajy/backend/internal/integration/persistence/model"
	"github.com/ekajy/backend/test/integration/mock"
)

const (
	testJWTSecret     = "test-jwt-secret-key-for-testing-purposes"
	testAdminPassword = "test-admin-password"
)

// testContext carries per-scenario state: the HTTP client, the captured
// response, and identifiers created by the Given steps.
type testContext struct {
	uri      string
	headers  map[string]string
	client   *http.Client
	response *response
	db       *mock.Db

	adminToken      string
	currentClientID uuid.UUID
	lastID          uuid.UUID
}

type response struct {
	status int
	body   any
}

var (
	serverOnce sync.Once
	testDB     *mock.Db
	testServer *httptest.Server
)

// InitializeTestSuite sets up process-wide state before any scenario runs.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		_ = os.Setenv("ENV", "test")
	})

	ctx.AfterSuite(func() {
		if testServer != nil {
			testServer.Close()
		}
	})
}

// InitializeScenario registers all step definitions and resets the shared
// database before each scenario.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
		db: mock.NewDb(map[string]any{
			"clients":    &model.ClientModel{},
			"budgets":    &model.BudgetModel{},
			"expenses":   &model.ExpenseModel{},
			"debts":      &model.DebtModel{},
			"repayments": &model.RepaymentModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Ledger setup steps
	ctx.Given(`^a client exists with name "([^"]*)"$`, test.aClientExistsWithName)
	ctx.Given(`^the client has a budget of "([^"]*)" on "([^"]*)"$`, test.theClientHasABudgetOfOn)
	ctx.Given(`^the client has a debt of "([^"]*)" on "([^"]*)"$`, test.theClientHasADebtOfOn)
	ctx.Given(`^the client has a repayment of "([^"]*)" on "([^"]*)"$`, test.theClientHasARepaymentOfOn)
	ctx.Given(`^an expense of "([^"]*)" exists on "([^"]*)"$`, test.anExpenseOfExistsOn)

	// Auth setup steps
	ctx.Given(`^I am logged in as admin$`, test.iAmLoggedInAsAdmin)
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.response = nil
	t.adminToken = ""
	t.currentClientID = uuid.Nil
	t.lastID = uuid.Nil

	if t.db != nil {
		if err := t.db.ClearDB(); err != nil {
			panic(fmt.Sprintf("failed to clear database: %v", err))
		}
	}
}

// startServer boots a single shared test server backed by the mock
// database. The admin password hash and JWT secret are fixed so the auth
// scenarios can log in with known credentials.
func (t *testContext) startServer() {
	serverOnce.Do(func() {
		cfg := config.Load()
		cfg.Server.Environment = "test"
		cfg.JWT.Secret = testJWTSecret
		cfg.Admin.PasswordHash = hashPassword(testAdminPassword)

		injector := dependency.NewInjector(cfg, testDB.DbConn)
		engine := injector.Router.Setup("test")

		testServer = httptest.NewServer(engine)
	})

	t.uri = testServer.URL
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}
