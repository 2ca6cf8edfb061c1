//go:build integration

package integration

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/transaction-categorizer/backend/internal/application/usecase/transaction"
	"github.com/transaction-categorizer/backend/internal/domain/entity"
	"github.com/transaction-categorizer/backend/internal/infra/server/router"
	"github.com/transaction-categorizer/backend/internal/integration/entrypoint/controller"
	"github.com/transaction-categorizer/backend/internal/integration/persistence"
	"github.com/transaction-categorizer/backend/internal/integration/persistence/model"
)

// stubClassifier resolves a fixed set of descriptions and falls back to
// Miscellaneous, standing in for the Gemini-backed classifier.
type stubClassifier struct {
	categories map[string]string
}

func (s *stubClassifier) Categorize(_ context.Context, descriptions []string) map[string]string {
	result := make(map[string]string, len(descriptions))
	for _, description := range descriptions {
		if category, ok := s.categories[description]; ok {
			result[description] = category
			continue
		}
		result[description] = entity.CategoryMiscellaneous
	}
	return result
}

// TestContext holds the test state for each scenario.
type TestContext struct {
	server       *httptest.Server
	sqlDB        *sql.DB
	response     *http.Response
	responseBody []byte
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

func getTestContext(ctx context.Context) (*TestContext, error) {
	tc, ok := ctx.Value(contextKey{}).(*TestContext)
	if !ok {
		return nil, fmt.Errorf("test context not initialized")
	}
	return tc, nil
}

// newTestServer builds the full application stack on an in-memory
// database with the stubbed classifier.
func newTestServer() (*httptest.Server, *sql.DB, error) {
	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open sqlite: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	db, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open gorm: %w", err)
	}
	if err := db.AutoMigrate(&model.TransactionModel{}, &model.CategoryMappingModel{}); err != nil {
		return nil, nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	transactionRepo := persistence.NewTransactionRepository(db)
	classifier := &stubClassifier{categories: map[string]string{
		"Grocery store purchase": "Groceries",
		"Municipal Tax Payment":  "Utilities",
	}}

	saveUseCase := transaction.NewSaveTransactionsUseCase(transactionRepo, classifier)
	listUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	getUseCase := transaction.NewGetTransactionUseCase(transactionRepo)

	healthController := controller.NewHealthController(func() bool { return true })
	transactionController := controller.NewTransactionController(saveUseCase, listUseCase, getUseCase)

	r := router.NewRouter(healthController, transactionController)
	engine := r.Setup("test")

	return httptest.NewServer(engine), sqlDB, nil
}

// InitializeScenario registers hooks and step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		gin.SetMode(gin.TestMode)

		server, sqlDB, err := newTestServer()
		if err != nil {
			return ctx, err
		}
		return context.WithValue(ctx, contextKey{}, &TestContext{
			server: server,
			sqlDB:  sqlDB,
		}), nil
	})

	ctx.After(func(ctx context.Context, _ *godog.Scenario, err error) (context.Context, error) {
		if tc, tcErr := getTestContext(ctx); tcErr == nil {
			tc.server.Close()
			_ = tc.sqlDB.Close()
		}
		return ctx, err
	})

	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I upload a CSV file to "([^"]*)" with content:$`, iUploadACSVFileToWithContent)
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response should contain (\d+) transactions$`, theResponseShouldContainTransactions)
	ctx.Step(`^the listed transaction "([^"]*)" should have category "([^"]*)"$`, theListedTransactionShouldHaveCategory)
	ctx.Step(`^the listed transaction "([^"]*)" should have amount "([^"]*)"$`, theListedTransactionShouldHaveAmount)
}

func (tc *TestContext) doRequest(req *http.Request) error {
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	tc.response = resp
	tc.responseBody = body
	return nil
}

func iSendARequestTo(ctx context.Context, method, path string) error {
	tc, err := getTestContext(ctx)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(method, tc.server.URL+path, nil)
	if err != nil {
		return err
	}
	return tc.doRequest(req)
}

func iSendARequestToWithBody(ctx context.Context, method, path string, body *godog.DocString) error {
	tc, err := getTestContext(ctx)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(method, tc.server.URL+path, strings.NewReader(body.Content))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return tc.doRequest(req)
}

func iUploadACSVFileToWithContent(ctx context.Context, path string, content *godog.DocString) error {
	tc, err := getTestContext(ctx)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "transactions.csv")
	if err != nil {
		return err
	}
	if _, err := part.Write([]byte(content.Content)); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, tc.server.URL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return tc.doRequest(req)
}

func theResponseStatusShouldBe(ctx context.Context, expected int) error {
	tc, err := getTestContext(ctx)
	if err != nil {
		return err
	}
	if tc.response.StatusCode != expected {
		return fmt.Errorf("expected status %d, got %d (body: %s)", expected, tc.response.StatusCode, tc.responseBody)
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc, err := getTestContext(ctx)
	if err != nil {
		return err
	}

	var payload map[string]any
	if err := json.Unmarshal(tc.responseBody, &payload); err != nil {
		return fmt.Errorf("response is not a JSON object: %w (body: %s)", err, tc.responseBody)
	}

	value, ok := payload[field]
	if !ok {
		return fmt.Errorf("field %q not found in response: %s", field, tc.responseBody)
	}
	if fmt.Sprintf("%v", value) != expected {
		return fmt.Errorf("expected field %q to be %q, got %v", field, expected, value)
	}
	return nil
}

func (tc *TestContext) listedTransactions() ([]map[string]any, error) {
	var payload []map[string]any
	if err := json.Unmarshal(tc.responseBody, &payload); err != nil {
		return nil, fmt.Errorf("response is not a JSON array: %w (body: %s)", err, tc.responseBody)
	}
	return payload, nil
}

func (tc *TestContext) listedTransaction(transactionID string) (map[string]any, error) {
	transactions, err := tc.listedTransactions()
	if err != nil {
		return nil, err
	}
	for _, transaction := range transactions {
		if transaction["transactionId"] == transactionID {
			return transaction, nil
		}
	}
	return nil, fmt.Errorf("transaction %q not found in response: %s", transactionID, tc.responseBody)
}

func theResponseShouldContainTransactions(ctx context.Context, expected int) error {
	tc, err := getTestContext(ctx)
	if err != nil {
		return err
	}
	transactions, err := tc.listedTransactions()
	if err != nil {
		return err
	}
	if len(transactions) != expected {
		return fmt.Errorf("expected %d transactions, got %d", expected, len(transactions))
	}
	return nil
}

func theListedTransactionShouldHaveCategory(ctx context.Context, transactionID, category string) error {
	tc, err := getTestContext(ctx)
	if err != nil {
		return err
	}
	transaction, err := tc.listedTransaction(transactionID)
	if err != nil {
		return err
	}
	if transaction["category"] != category {
		return fmt.Errorf("expected category %q, got %v", category, transaction["category"])
	}
	return nil
}

func theListedTransactionShouldHaveAmount(ctx context.Context, transactionID, amount string) error {
	tc, err := getTestContext(ctx)
	if err != nil {
		return err
	}
	transaction, err := tc.listedTransaction(transactionID)
	if err != nil {
		return err
	}
	if transaction["amount"] != amount {
		return fmt.Errorf("expected amount %q, got %v", amount, transaction["amount"])
	}
	return nil
}
