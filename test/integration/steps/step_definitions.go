package steps

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ekajy/backend/internal/integration/persistence/model"
)

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) aClientExistsWithName(name string) error {
	clientID := uuid.New()
	t.currentClientID = clientID

	now := time.Now().UTC()
	client := &model.ClientModel{
		ID:        clientID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return t.db.DbConn.Create(client).Error
}

func (t *testContext) theClientHasABudgetOfOn(amount, date string) error {
	parsedAmount, parsedDate, err := t.parseLedgerEntry(amount, date)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	budget := &model.BudgetModel{
		ID:        uuid.New(),
		ClientID:  t.currentClientID,
		Amount:    parsedAmount,
		Date:      parsedDate,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return t.db.DbConn.Create(budget).Error
}

func (t *testContext) theClientHasADebtOfOn(amount, date string) error {
	parsedAmount, parsedDate, err := t.parseLedgerEntry(amount, date)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	debt := &model.DebtModel{
		ID:        uuid.New(),
		ClientID:  t.currentClientID,
		Amount:    parsedAmount,
		Date:      parsedDate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	t.lastID = debt.ID

	return t.db.DbConn.Create(debt).Error
}

func (t *testContext) theClientHasARepaymentOfOn(amount, date string) error {
	parsedAmount, parsedDate, err := t.parseLedgerEntry(amount, date)
	if err != nil {
		return err
	}

	repayment := &model.RepaymentModel{
		ID:        uuid.New(),
		ClientID:  t.currentClientID,
		Amount:    parsedAmount,
		Date:      parsedDate,
		CreatedAt: time.Now().UTC(),
	}

	return t.db.DbConn.Create(repayment).Error
}

func (t *testContext) anExpenseOfExistsOn(amount, date string) error {
	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	parsedDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}

	expense := &model.ExpenseModel{
		ID:        uuid.New(),
		Amount:    parsedAmount,
		Date:      parsedDate,
		CreatedAt: time.Now().UTC(),
	}

	return t.db.DbConn.Create(expense).Error
}

func (t *testContext) parseLedgerEntry(amount, date string) (decimal.Decimal, time.Time, error) {
	if t.currentClientID == uuid.Nil {
		return decimal.Zero, time.Time{}, errors.New("no client created in this scenario")
	}

	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, time.Time{}, fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	parsedDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return decimal.Zero, time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}

	return parsedAmount, parsedDate, nil
}

func (t *testContext) iAmLoggedInAsAdmin() error {
	t.startServer()

	payload := fmt.Sprintf(`{"password": %q}`, testAdminPassword)
	if err := t.executeRequest(http.MethodPost, "/api/v1/admin/login", []byte(payload)); err != nil {
		return err
	}

	if t.response.status != http.StatusOK {
		return fmt.Errorf("admin login failed with status %d: %v", t.response.status, t.response.body)
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("admin login returned a non-JSON body: %v", t.response.body)
	}

	token, ok := body["token"].(string)
	if !ok || token == "" {
		return fmt.Errorf("admin login returned no token: %v", body)
	}

	t.adminToken = token
	return nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.adminToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{client_id}}", t.currentClientID.String())
	content = strings.ReplaceAll(content, "{{last_id}}", t.lastID.String())
	content = strings.ReplaceAll(content, "{{admin_token}}", t.adminToken)
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	url := t.uri + path

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.adminToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.adminToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody

	// Capture the created resource ID so later steps can reference it.
	if idStr, ok := responseBody["id"].(string); ok {
		if id, err := uuid.Parse(idStr); err == nil {
			t.lastID = id
		}
	}
	if repayment, ok := responseBody["repayment"].(map[string]any); ok {
		if idStr, ok := repayment["id"].(string); ok {
			if id, err := uuid.Parse(idStr); err == nil {
				t.lastID = id
			}
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if getFieldValue(body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
	if result.Error != nil {
		return result.Error
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(content.Content), &criteria); err != nil {
		return err
	}

	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	query := t.db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	result := query.Find(entitySlicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

// getFieldValue resolves a dot-separated path through nested JSON objects
// and arrays, e.g. "debtors.0.outstanding".
func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var field any = object
	for _, currentField := range strings.Split(dotSeparatedField, ".") {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			arr, ok := field.([]any)
			if !ok || i >= len(arr) {
				return nil
			}
			field = arr[i]
			continue
		}

		m, ok := field.(map[string]any)
		if !ok {
			return nil
		}
		field = m[currentField]
	}

	return field
}
