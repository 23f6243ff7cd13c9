// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/plant-pal/internal/config"
	"github.com/MKhiriev/plant-pal/internal/logger"
	"github.com/MKhiriev/plant-pal/internal/mock"
	"github.com/MKhiriev/plant-pal/internal/service"
	"github.com/MKhiriev/plant-pal/models"
)

const testCookie = "token"

// testServices holds the mocks behind a test Handler.
type testServices struct {
	auth      *mock.MockAuthService
	plants    *mock.MockPlantService
	directory *mock.MockDirectoryService
	advisor   *mock.MockAdvisorService
	appInfo   *mock.MockAppInfoService
}

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{
			CookieName:    testCookie,
			TokenDuration: 7 * 24 * time.Hour,
			Environment:   "development",
		},
	}
}

func newTestHandler(t *testing.T, opts ...Option) (*Handler, *testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mocks := &testServices{
		auth:      mock.NewMockAuthService(ctrl),
		plants:    mock.NewMockPlantService(ctrl),
		directory: mock.NewMockDirectoryService(ctrl),
		advisor:   mock.NewMockAdvisorService(ctrl),
		appInfo:   mock.NewMockAppInfoService(ctrl),
	}
	services := &service.Services{
		AuthService:      mocks.auth,
		PlantService:     mocks.plants,
		DirectoryService: mocks.directory,
		AdvisorService:   mocks.advisor,
		AppInfoService:   mocks.appInfo,
	}

	return NewHandler(services, testConfig(), logger.Nop(), opts...), mocks
}

// expectSession makes the auth mock accept raw as the token of identity.
func (m *testServices) expectSession(raw string, identity models.Identity) {
	token := models.Token{SignedString: raw}
	token.Claims.Email = identity.Email
	token.Claims.Subject = strconv.FormatInt(identity.UserID, 10)
	m.auth.EXPECT().ParseToken(gomock.Any(), raw).Return(token, nil).AnyTimes()
}

func serve(router http.Handler, method, target, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(value string) *http.Cookie {
	return &http.Cookie{Name: testCookie, Value: value}
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func assertError(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	assert.Equal(t, status, rec.Code, rec.Body.String())
	body := decodeBody[models.ErrorResponse](t, rec)
	assert.False(t, body.Success)
	assert.Equal(t, message, body.Error)
}

func TestNewHandler(t *testing.T) {
	cfg := testConfig()
	cfg.App.Environment = "production"
	cfg.Server.StaticDir = "/srv/www"

	h := NewHandler(&service.Services{}, cfg, logger.Nop())

	require.NotNil(t, h)
	assert.Equal(t, testCookie, h.session.cookieName)
	assert.True(t, h.session.secure)
	assert.Equal(t, 7*24*time.Hour, h.session.maxAge)
	assert.Equal(t, "/srv/www", h.staticDir)
	assert.Nil(t, h.limiter)
	assert.Nil(t, h.metricsHandler)
	assert.NotNil(t, h.recorder)
}

func TestHealth(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rec := serve(h.Init(), http.MethodGet, "/api/health", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.VersionResponse{Status: "ok", Version: "1.2.3"}, decodeBody[models.VersionResponse](t, rec))
}
