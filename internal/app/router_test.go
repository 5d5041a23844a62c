package app

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/avc-dev/brevly/internal/config"
	"github.com/avc-dev/brevly/internal/model"
	"github.com/avc-dev/brevly/internal/service"
	"github.com/avc-dev/brevly/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testJWTSecret = "router-test-secret"

// newTestRouter собирает приложение поверх памяти процесса и временного каталога отчётов
func newTestRouter(t *testing.T) (http.Handler, *config.Config) {
	t.Helper()

	cfg := config.NewDefaultConfig()
	cfg.JWTSecret = testJWTSecret
	cfg.ReportsDir = t.TempDir()

	objectStorage, filesRoot, err := initObjectStorage(cfg, zap.NewNop())
	require.NoError(t, err)

	deps := wireDependencies(cfg, zap.NewNop(), store.NewStore(), objectStorage, nil)
	deps.filesRoot = filesRoot

	return newRouter(deps, zap.NewNop(), cfg), cfg
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

func doRequest(t *testing.T, router http.Handler, method, target, body string, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func adminHeaders(t *testing.T) map[string]string {
	t.Helper()

	token, err := service.NewAuthService(testJWTSecret).GenerateAdminToken("router-test", time.Hour)
	require.NoError(t, err)

	return map[string]string{"Authorization": "Bearer " + token}
}

func TestRouter_LinkLifecycle(t *testing.T) {
	router, cfg := newTestRouter(t)

	// Создание с пользовательским кодом
	rec, env := doRequest(t, router, http.MethodPost, "/api/links", `{"originalUrl":"example.com/page","shortUrl":"mylink"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "link created", env.Message)

	var created model.Link
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "https://example.com/page", created.OriginalURL)
	assert.Equal(t, "mylink", created.ShortURL)
	assert.Zero(t, created.AccessCount)

	// Повторное создание возвращает существующую ссылку
	rec, env = doRequest(t, router, http.MethodPost, "/api/links", `{"originalUrl":"https://example.com/page"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "link already exists", env.Message)

	// Занятый код
	rec, env = doRequest(t, router, http.MethodPost, "/api/links", `{"originalUrl":"https://other.example","shortUrl":"mylink"}`, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "short URL already in use", env.Error)

	// Зарезервированный код
	rec, env = doRequest(t, router, http.MethodPost, "/api/links", `{"originalUrl":"https://other.example","shortUrl":"admin"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "short URL is a reserved word", env.Error)

	// Редирект засчитывает переход
	rec, _ = doRequest(t, router, http.MethodGet, "/mylink", "", nil)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://example.com/page", rec.Header().Get("Location"))

	rec, env = doRequest(t, router, http.MethodGet, "/api/links/short/mylink", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var fetched model.Link
	require.NoError(t, json.Unmarshal(env.Data, &fetched))
	assert.EqualValues(t, 1, fetched.AccessCount)

	// Неизвестный код уходит на страницу 404 фронтенда
	rec, _ = doRequest(t, router, http.MethodGet, "/unknown1", "", nil)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, cfg.NotFoundPageURL(), rec.Header().Get("Location"))

	// Несопоставленный путь пробуется как короткий код
	rec, _ = doRequest(t, router, http.MethodGet, "/share/mylink", "", nil)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://example.com/page", rec.Header().Get("Location"))

	rec, env = doRequest(t, router, http.MethodGet, "/share/nothing", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "route not found", env.Error)

	// Получение по id
	rec, env = doRequest(t, router, http.MethodGet, "/api/links/"+created.ID, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(env.Data, &fetched))
	assert.EqualValues(t, 2, fetched.AccessCount)

	rec, env = doRequest(t, router, http.MethodGet, "/api/links/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid link id", env.Error)

	// Удаление требует токен администратора
	rec, _ = doRequest(t, router, http.MethodDelete, "/api/links/"+created.ID, "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, env = doRequest(t, router, http.MethodDelete, "/api/links/"+created.ID, "", adminHeaders(t))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "link deleted", env.Message)

	rec, env = doRequest(t, router, http.MethodDelete, "/api/links/"+created.ID, "", adminHeaders(t))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "link not found", env.Error)
}

func TestRouter_ListLinks(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, target := range []string{"https://a.example", "https://b.example", "https://c.example"} {
		rec, _ := doRequest(t, router, http.MethodPost, "/api/links", `{"originalUrl":"`+target+`"}`, nil)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec, env := doRequest(t, router, http.MethodGet, "/api/links?page=1&limit=2", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var page model.LinksPage
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Links, 2)
	assert.Equal(t, "https://c.example", page.Links[0].OriginalURL)
	assert.Equal(t, "https://b.example", page.Links[1].OriginalURL)

	rec, _ = doRequest(t, router, http.MethodGet, "/api/links?page=zero", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_Reports(t *testing.T) {
	router, cfg := newTestRouter(t)

	// Без ссылок отчёт не создаётся
	rec, env := doRequest(t, router, http.MethodPost, "/api/reports/csv", "", adminHeaders(t))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "no links found to generate report", env.Error)

	rec, _ = doRequest(t, router, http.MethodPost, "/api/links", `{"originalUrl":"https://example.com","shortUrl":"report-me"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, _ = doRequest(t, router, http.MethodPost, "/api/reports/csv", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, env = doRequest(t, router, http.MethodPost, "/api/reports/csv", "", adminHeaders(t))
	require.Equal(t, http.StatusOK, rec.Code)

	var report model.Report
	require.NoError(t, json.Unmarshal(env.Data, &report))
	assert.True(t, strings.HasPrefix(report.FileName, "brevly-report-"))
	assert.True(t, strings.HasPrefix(report.PublicURL, cfg.BaseURL.Join("files", "reports")))
	assert.Positive(t, report.FileSize)

	// Файл отчёта раздаётся по публичному адресу
	publicURL, err := url.Parse(report.PublicURL)
	require.NoError(t, err)

	rec, _ = doRequest(t, router, http.MethodGet, publicURL.Path, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, report.FileSize, rec.Body.Len())

	records, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, service.ReportHeader, records[0])
	assert.Equal(t, "report-me", records[1][2])

	rec, env = doRequest(t, router, http.MethodGet, "/api/reports", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var reports []model.Report
	require.NoError(t, json.Unmarshal(env.Data, &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, report.FileName, reports[0].FileName)
}

func TestRouter_ConcurrentRedirects(t *testing.T) {
	router, _ := newTestRouter(t)

	rec, _ := doRequest(t, router, http.MethodPost, "/api/links", `{"originalUrl":"https://example.com","shortUrl":"busy"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	const visits = 50
	var wg sync.WaitGroup
	for range visits {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodGet, "/busy", nil)
			router.ServeHTTP(httptest.NewRecorder(), req)
		}()
	}
	wg.Wait()

	rec, env := doRequest(t, router, http.MethodGet, "/api/links/short/busy", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var link model.Link
	require.NoError(t, json.Unmarshal(env.Data, &link))
	assert.EqualValues(t, visits, link.AccessCount)
}

func TestRouter_Ambient(t *testing.T) {
	router, _ := newTestRouter(t)

	t.Run("health", func(t *testing.T) {
		rec, env := doRequest(t, router, http.MethodGet, "/health", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var status model.HealthStatus
		require.NoError(t, json.Unmarshal(env.Data, &status))
		assert.Equal(t, "ok", status.Status)
		assert.Equal(t, "not configured", status.Database)
		assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
		assert.NotEmpty(t, rec.Header().Get("Content-Security-Policy"))
	})

	t.Run("cors preflight", func(t *testing.T) {
		rec, _ := doRequest(t, router, http.MethodOptions, "/api/links", "", map[string]string{
			"Origin":                        "http://localhost:5173",
			"Access-Control-Request-Method": http.MethodPost,
		})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("method not allowed uses envelope", func(t *testing.T) {
		rec, env := doRequest(t, router, http.MethodPost, "/abc", "", nil)
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.False(t, env.Success)
		assert.Equal(t, "method not allowed", env.Error)

		rec, env = doRequest(t, router, http.MethodPut, "/api/links/some-id", "", nil)
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Equal(t, "method not allowed", env.Error)
	})

	t.Run("head redirect", func(t *testing.T) {
		rec, _ := doRequest(t, router, http.MethodPost, "/api/links", `{"originalUrl":"https://example.com/head","shortUrl":"headlink"}`, nil)
		require.Equal(t, http.StatusCreated, rec.Code)

		rec, _ = doRequest(t, router, http.MethodHead, "/headlink", "", nil)
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "https://example.com/head", rec.Header().Get("Location"))
	})

	t.Run("malformed body", func(t *testing.T) {
		rec, env := doRequest(t, router, http.MethodPost, "/api/links", `{"originalUrl":`, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid request body", env.Error)
	})
}
