package cmd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"

	"ecommerce/config"
	mysqlstore "ecommerce/infrastructure/persistence/mysql"
)

func testConfig() *config.Config {
	return &config.Config{
		App:      config.AppConfig{Name: "ecommerce", Version: "test", Env: "test"},
		Server:   config.ServerConfig{Port: "0"},
		Database: config.DatabaseConfig{LogLevel: "silent"},
		Worker:   config.WorkerConfig{Publisher: "log", BatchSize: 10},
		Import:   config.ImportConfig{BatchSize: 1000},
	}
}

func TestBuildWiresEveryEndpoint(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := mysqlstore.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}),
		&mysqlstore.Config{LogLevel: "silent"})
	require.NoError(t, err)

	app, err := NewBuilder(testConfig()).WithDB(db).Build(context.Background())
	require.NoError(t, err)
	engine := app.GetServer()

	mock.ExpectQuery("SELECT \\* FROM `Brokers`").
		WillReturnRows(sqlmock.NewRows([]string{"IdBroker", "NmBroker", "CreatedAt", "CreatedBy", "IsActive"}))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/brokers", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":0`)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/vinculos", strings.NewReader(`{"id_broker":0}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health/live", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNewServicesRequiresLogger(t *testing.T) {
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := mysqlstore.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}),
		&mysqlstore.Config{LogLevel: "silent"})
	require.NoError(t, err)

	services, err := NewServices(db, testConfig(), nil)
	assert.Error(t, err)
	assert.Nil(t, services)
}
