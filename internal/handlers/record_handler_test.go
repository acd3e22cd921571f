package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rmacedo/registros-api/internal/models"
	"github.com/rmacedo/registros-api/internal/repository"
	"github.com/rmacedo/registros-api/internal/services"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type mockRecordRepo struct {
	repository.RecordRepository[models.FinancialHistory, *models.FinancialHistory]
	mockCreate   func(ctx context.Context, rec *models.FinancialHistory) error
	mockFindByID func(ctx context.Context, id uint) (*models.FinancialHistory, error)
	mockFindAll  func(ctx context.Context) ([]models.FinancialHistory, error)
	mockSave     func(ctx context.Context, rec *models.FinancialHistory) error
}

func (m *mockRecordRepo) Create(ctx context.Context, rec *models.FinancialHistory) error {
	return m.mockCreate(ctx, rec)
}

func (m *mockRecordRepo) FindByID(ctx context.Context, id uint) (*models.FinancialHistory, error) {
	return m.mockFindByID(ctx, id)
}

func (m *mockRecordRepo) FindAll(ctx context.Context) ([]models.FinancialHistory, error) {
	return m.mockFindAll(ctx)
}

func (m *mockRecordRepo) Save(ctx context.Context, rec *models.FinancialHistory) error {
	if m.mockSave != nil {
		return m.mockSave(ctx, rec)
	}
	return nil
}

func newTestRecordHandler(repo *mockRecordRepo) *RecordHandler[models.FinancialHistory, *models.FinancialHistory] {
	service := services.NewRecordService[models.FinancialHistory, *models.FinancialHistory](repo, nil, "FinancialHistory")
	return NewRecordHandler(
		service,
		services.NewExportService(),
		bindRecordRequest[FinancialHistoryRequest, *models.FinancialHistory]("financial_history"),
		recordHeaders("financial_id"),
		financialHistoryRow,
	)
}

type envelopeResponse struct {
	Status  bool                   `json:"status"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelopeResponse {
	t.Helper()
	var resp envelopeResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func testContext(t *testing.T, method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
		c.Request = httptest.NewRequest(method, target, reader)
		c.Request.Header.Set("Content-Type", "application/json")
	} else {
		c.Request = httptest.NewRequest(method, target, nil)
	}
	return c, w
}

func TestRecordHandler_Create_StampsActingUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockRepo := &mockRecordRepo{}
	handler := newTestRecordHandler(mockRepo)

	mockRepo.mockCreate = func(ctx context.Context, rec *models.FinancialHistory) error {
		rec.ID = 7
		return nil
	}

	body := `{"financial_history": {"financial_id": 1, "document": "Mensalidade de agosto"}}`
	c, w := testContext(t, "POST", "/financial_histories", body)
	c.Set("actingUser", "Ana")

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeEnvelope(t, w)
	assert.True(t, resp.Status)
	assert.Equal(t, MsgRecordCreated, resp.Message)
	assert.Equal(t, float64(7), resp.Data["id"])
	assert.Equal(t, "Ana", resp.Data["created_by"])
	assert.Equal(t, true, resp.Data["active"])
	assert.Nil(t, resp.Data["updated_by"])
}

func TestRecordHandler_Create_FlatBodyAlsoBinds(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockRepo := &mockRecordRepo{}
	handler := newTestRecordHandler(mockRepo)

	var created *models.FinancialHistory
	mockRepo.mockCreate = func(ctx context.Context, rec *models.FinancialHistory) error {
		created = rec
		return nil
	}

	c, w := testContext(t, "POST", "/financial_histories", `{"financial_id": 3, "document": "Anuidade"}`)
	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	if assert.NotNil(t, created) {
		assert.Equal(t, uint(3), created.FinancialID)
		assert.Equal(t, "Anuidade", created.Document)
	}
}

func TestRecordHandler_Create_MissingDocument(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockRepo := &mockRecordRepo{}
	handler := newTestRecordHandler(mockRepo)

	c, w := testContext(t, "POST", "/financial_histories", `{"financial_id": 1}`)
	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	assert.False(t, resp.Status)
	assert.NotEmpty(t, resp.Message)
}

func TestRecordHandler_Update_MissingRecordBeatsInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockRepo := &mockRecordRepo{}
	handler := newTestRecordHandler(mockRepo)

	mockRepo.mockFindByID = func(ctx context.Context, id uint) (*models.FinancialHistory, error) {
		return nil, gorm.ErrRecordNotFound
	}

	// body is invalid too; the missing record must win with a 404
	c, w := testContext(t, "PUT", "/financial_histories/42", `{}`)
	c.Params = gin.Params{{Key: "id", Value: "42"}}
	handler.Update(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeEnvelope(t, w)
	assert.False(t, resp.Status)
	assert.Equal(t, "Registro não encontrado", resp.Message)
}

func TestRecordHandler_Update_ReplacesFields(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockRepo := &mockRecordRepo{}
	handler := newTestRecordHandler(mockRepo)

	ana := "Ana"
	existing := &models.FinancialHistory{FinancialID: 1}
	existing.ID = 7
	existing.Document = "Texto antigo"
	existing.Active = true
	existing.CreatedBy = &ana

	mockRepo.mockFindByID = func(ctx context.Context, id uint) (*models.FinancialHistory, error) {
		return existing, nil
	}

	body := `{"financial_history": {"financial_id": 2, "document": "Texto novo"}}`
	c, w := testContext(t, "PUT", "/financial_histories/7", body)
	c.Params = gin.Params{{Key: "id", Value: "7"}}
	c.Set("actingUser", "Bruno")
	handler.Update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	assert.True(t, resp.Status)
	assert.Equal(t, MsgRecordUpdated, resp.Message)
	assert.Equal(t, "Texto novo", resp.Data["document"])
	assert.Equal(t, "Ana", resp.Data["created_by"])
	assert.Equal(t, "Bruno", resp.Data["updated_by"])
	assert.Equal(t, true, resp.Data["active"])
}

func TestRecordHandler_Update_InvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockRepo := &mockRecordRepo{}
	handler := newTestRecordHandler(mockRepo)

	mockRepo.mockFindByID = func(ctx context.Context, id uint) (*models.FinancialHistory, error) {
		return &models.FinancialHistory{}, nil
	}

	c, w := testContext(t, "PUT", "/financial_histories/7", `{"financial_history": {"financial_id": 2}}`)
	c.Params = gin.Params{{Key: "id", Value: "7"}}
	handler.Update(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	assert.False(t, resp.Status)
}

func TestRecordHandler_ToggleActive_Messages(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockRepo := &mockRecordRepo{}
	handler := newTestRecordHandler(mockRepo)

	rec := &models.FinancialHistory{}
	rec.ID = 5
	rec.Active = true

	mockRepo.mockFindByID = func(ctx context.Context, id uint) (*models.FinancialHistory, error) {
		return rec, nil
	}

	c, w := testContext(t, "PATCH", "/financial_histories/5/ativar", "")
	c.Params = gin.Params{{Key: "id", Value: "5"}}
	handler.ToggleActive(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, MsgRecordDeactivated, resp.Message)
	assert.Equal(t, false, resp.Data["active"])

	c, w = testContext(t, "PATCH", "/financial_histories/5/ativar", "")
	c.Params = gin.Params{{Key: "id", Value: "5"}}
	handler.ToggleActive(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp = decodeEnvelope(t, w)
	assert.Equal(t, MsgRecordActivated, resp.Message)
	assert.Equal(t, true, resp.Data["active"])
}

func TestRecordHandler_Index_EmptyIs404(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockRepo := &mockRecordRepo{}
	handler := newTestRecordHandler(mockRepo)

	mockRepo.mockFindAll = func(ctx context.Context) ([]models.FinancialHistory, error) {
		return nil, nil
	}

	c, w := testContext(t, "GET", "/financial_histories", "")
	handler.Index(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeEnvelope(t, w)
	assert.False(t, resp.Status)
	assert.Equal(t, "Nenhum registro encontrado", resp.Message)
}

func TestRecordHandler_Show_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockRepo := &mockRecordRepo{}
	handler := newTestRecordHandler(mockRepo)

	mockRepo.mockFindByID = func(ctx context.Context, id uint) (*models.FinancialHistory, error) {
		return nil, gorm.ErrRecordNotFound
	}

	c, w := testContext(t, "GET", "/financial_histories/99", "")
	c.Params = gin.Params{{Key: "id", Value: "99"}}
	handler.Show(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeEnvelope(t, w)
	assert.False(t, resp.Status)
	assert.Equal(t, "Registro não encontrado", resp.Message)
}

func TestRecordHandler_CreateThenShow_RoundTrip(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockRepo := &mockRecordRepo{}
	handler := newTestRecordHandler(mockRepo)

	var stored *models.FinancialHistory
	mockRepo.mockCreate = func(ctx context.Context, rec *models.FinancialHistory) error {
		rec.ID = 11
		stored = rec
		return nil
	}
	mockRepo.mockFindByID = func(ctx context.Context, id uint) (*models.FinancialHistory, error) {
		if stored != nil && stored.ID == id {
			return stored, nil
		}
		return nil, gorm.ErrRecordNotFound
	}

	body := `{"financial_history": {"financial_id": 7, "document": "abc"}}`
	c, w := testContext(t, "POST", "/financial_histories", body)
	c.Set("actingUser", "Ana")
	handler.Create(c)
	assert.Equal(t, http.StatusCreated, w.Code)
	created := decodeEnvelope(t, w)

	c, w = testContext(t, "GET", "/financial_histories/11", "")
	c.Params = gin.Params{{Key: "id", Value: "11"}}
	handler.Show(c)

	assert.Equal(t, http.StatusOK, w.Code)
	shown := decodeEnvelope(t, w)
	assert.Equal(t, MsgRecordReturned, shown.Message)
	assert.Equal(t, created.Data, shown.Data)
}

func TestRecordHandler_Export_CSV(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockRepo := &mockRecordRepo{}
	handler := newTestRecordHandler(mockRepo)

	ana := "Ana"
	rec := models.FinancialHistory{FinancialID: 1}
	rec.ID = 7
	rec.Document = "Mensalidade"
	rec.Active = true
	rec.CreatedBy = &ana

	mockRepo.mockFindAll = func(ctx context.Context) ([]models.FinancialHistory, error) {
		return []models.FinancialHistory{rec}, nil
	}

	c, w := testContext(t, "GET", "/financial_histories/exportar?format=csv", "")
	handler.Export(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".csv")

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, "id,financial_id,document,active,created_by,updated_by,created_at,updated_at", lines[0])
	assert.Contains(t, lines[1], "7,1,Mensalidade,true,Ana")
}

func TestRecordHandler_Export_UnknownFormat(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockRepo := &mockRecordRepo{}
	handler := newTestRecordHandler(mockRepo)

	mockRepo.mockFindAll = func(ctx context.Context) ([]models.FinancialHistory, error) {
		return []models.FinancialHistory{{FinancialID: 1}}, nil
	}

	c, w := testContext(t, "GET", "/financial_histories/exportar?format=pdf", "")
	handler.Export(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	assert.False(t, resp.Status)
	assert.Equal(t, "formato de exportação inválido", resp.Message)
}
