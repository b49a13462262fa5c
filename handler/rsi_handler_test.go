package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aashish23092/rsi-career-extraction/dto"
	"github.com/Aashish23092/rsi-career-extraction/service"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewRSIHandler(service.NewRSIService(nil, nil, 0), 1024*1024)
	h.Register(router.Group("/api/v1"))
	return router
}

func multipartBody(t *testing.T, field string, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for name, content := range files {
		part, err := w.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func TestParseTextEndpoint(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/rsi/parse-text",
		strings.NewReader(`{"text":"2024 4 trim. Agirc-Arrco 70,9 pts"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.RSIParseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Result.Years, 1)
	assert.Equal(t, 2024, resp.Result.Years[0].Year)
	assert.Equal(t, 70.9, resp.Result.Years[0].PointsByScheme["agircArrco"])
}

func TestParseTextEndpointRejectsMissingText(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/rsi/parse-text", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "RSI_PARSE_FAILED", resp.Error)
}

func TestYearMapEndpoint(t *testing.T) {
	router := newTestRouter()

	body := `{"employments":[
		{"endDate":"31/12/2020","income":"10 000","regime":"AGIRC-ARRCO"},
		{"endDate":"31/12/2020","income":"5 000"}
	]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/rsi/year-map", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"years":{"2020":{"income":15000,"activityType":"private"}}}`, rec.Body.String())
}

func TestParseStatementsEndpoint(t *testing.T) {
	router := newTestRouter()

	body, contentType := multipartBody(t, "files[]", map[string]string{
		"releve.txt": "2023 3 trim. 2024 4 trim. Agirc-Arrco 12 pts",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/rsi/parse", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp []dto.RSIParseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "releve.txt", resp[0].Filename)
	assert.Len(t, resp[0].Result.Years, 2)
}

func TestParseStatementsEndpointRejectsUnsupportedFile(t *testing.T) {
	router := newTestRouter()

	body, contentType := multipartBody(t, "file", map[string]string{"releve.docx": "x"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/rsi/parse", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestParseStatementsEndpointRequiresFiles(t *testing.T) {
	router := newTestRouter()

	body, contentType := multipartBody(t, "files[]", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/rsi/parse", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
