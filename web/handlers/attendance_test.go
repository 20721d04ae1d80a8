package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"ambe.com/fieldops/fieldops/model"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDatabase runs handler units of work against a throwaway sqlite file.
type testDatabase struct {
	db *gorm.DB
}

func (t *testDatabase) Exec(ctx context.Context, fn func(db *gorm.DB) error) error {
	return fn(t.db.WithContext(ctx))
}

func newTestDatabase(t *testing.T) *testDatabase {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "central.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.AttendanceRecord{}, &model.RangeLogEvent{}))
	return &testDatabase{db: db}
}

func newAttendanceRouter(h *AttendanceHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/attendance/sync", h.Sync)
	r.GET("/attendance", h.Search)
	return r
}

func record(id, employeeID string) model.AttendanceRecord {
	return model.AttendanceRecord{
		ID:         id,
		EmployeeID: employeeID,
		SiteID:     "site-mumbai-01",
		Date:       "2025-11-05",
		Status:     model.StatusPresent,
	}
}

func postBatch(t *testing.T, r *gin.Engine, batch []model.AttendanceRecord) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(batch)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/attendance/sync", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeSummary(t *testing.T, w *httptest.ResponseRecorder) SyncSummary {
	t.Helper()
	var resp struct {
		Status bool        `json:"status"`
		Data   SyncSummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Status)
	return resp.Data
}

func TestSyncDedupsByRecordID(t *testing.T) {
	db := newTestDatabase(t)
	r := newAttendanceRouter(&AttendanceHandler{DB: db})

	batch := []model.AttendanceRecord{record("r1", "emp-001"), record("r2", "emp-002")}

	w := postBatch(t, r, batch)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, SyncSummary{Accepted: 2, Duplicates: 0}, decodeSummary(t, w))

	// The device resubmits the identical batch after an ambiguous timeout.
	w = postBatch(t, r, batch)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, SyncSummary{Accepted: 0, Duplicates: 2}, decodeSummary(t, w))

	// A later batch overlapping the first only lands the new record.
	w = postBatch(t, r, append(batch, record("r3", "emp-003")))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, SyncSummary{Accepted: 1, Duplicates: 2}, decodeSummary(t, w))

	var count int64
	require.NoError(t, db.db.Model(&model.AttendanceRecord{}).Count(&count).Error)
	assert.EqualValues(t, 3, count)

	var stored model.AttendanceRecord
	require.NoError(t, db.db.First(&stored, "id = ?", "r1").Error)
	assert.True(t, stored.IsSynced)
	assert.True(t, stored.IsLocked)
}

func TestSyncRejectsIncompleteRecords(t *testing.T) {
	db := newTestDatabase(t)
	r := newAttendanceRouter(&AttendanceHandler{DB: db})

	bad := record("r1", "emp-001")
	bad.Status = ""
	w := postBatch(t, r, []model.AttendanceRecord{bad})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, db.db.Model(&model.AttendanceRecord{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestSearchBindsQueryParameters(t *testing.T) {
	db := newTestDatabase(t)
	r := newAttendanceRouter(&AttendanceHandler{DB: db})

	require.Equal(t, http.StatusOK, postBatch(t, r, []model.AttendanceRecord{record("r1", "emp-001")}).Code)

	tests := []struct {
		name     string
		target   string
		wantCode int
	}{
		{name: "Valid query", target: "/attendance?siteId=site-mumbai-01&date=2025-11-05", wantCode: http.StatusOK},
		{name: "Missing siteId", target: "/attendance?date=2025-11-05", wantCode: http.StatusBadRequest},
		{name: "Missing date", target: "/attendance?siteId=site-mumbai-01", wantCode: http.StatusBadRequest},
		{name: "Malformed date", target: "/attendance?siteId=site-mumbai-01&date=05-11-2025", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestSearchReturnsMatchingRecords(t *testing.T) {
	db := newTestDatabase(t)
	r := newAttendanceRouter(&AttendanceHandler{DB: db})

	other := record("r2", "emp-002")
	other.SiteID = "site-pune-02"
	require.Equal(t, http.StatusOK, postBatch(t, r, []model.AttendanceRecord{record("r1", "emp-001"), other}).Code)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/attendance?siteId=site-mumbai-01&date=2025-11-05", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status bool                     `json:"status"`
		Data   []model.AttendanceRecord `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "r1", resp.Data[0].ID)
}
