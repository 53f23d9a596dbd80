package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/studio-scheduler/internal/audit"
	"github.com/BruksfildServices01/studio-scheduler/internal/middleware"
)

type recordedEvents struct {
	events []audit.Event
}

func (r *recordedEvents) Dispatch(ev audit.Event) {
	r.events = append(r.events, ev)
}

func studioRouter(h *StudioHandler) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextStudioID, uint(2))
		c.Set(middleware.ContextUserID, uint(7))
		c.Next()
	})
	r.GET("/studio", h.Get)
	r.PATCH("/studio", h.Update)
	return r
}

func studioRow() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "slug", "opening_time", "closing_time"}).
		AddRow(2, "Studio A", "studio-a", "09:00", "18:00")
}

func TestStudioHandler_Get(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "studios"`).WillReturnRows(studioRow())

	w := send(studioRouter(NewStudioHandler(db, &recordedEvents{})), http.MethodGet, "/studio", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"opening_time":"09:00"`)
}

func TestStudioHandler_UpdateRejectsInvertedHours(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "studios"`).WillReturnRows(studioRow())

	events := &recordedEvents{}
	w := send(studioRouter(NewStudioHandler(db, events)), http.MethodPatch, "/studio", map[string]string{
		"opening_time": "19:00",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_hours", errorCode(t, w))
	assert.Empty(t, events.events)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudioHandler_UpdateRejectsMalformedClock(t *testing.T) {
	db, _ := newMockDB(t)

	w := send(studioRouter(NewStudioHandler(db, &recordedEvents{})), http.MethodPatch, "/studio", map[string]string{
		"closing_time": "9pm",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_request", errorCode(t, w))
}

func TestStudioHandler_UpdateSavesAndAudits(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "studios"`).WillReturnRows(studioRow())
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "studios"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	events := &recordedEvents{}
	w := send(studioRouter(NewStudioHandler(db, events)), http.MethodPatch, "/studio", map[string]string{
		"closing_time": "22:00",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"closing_time":"22:00"`)
	if assert.Len(t, events.events, 1) {
		assert.Equal(t, audit.ActionStudioUpdated, events.events[0].Action)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func sendWithToken(r http.Handler, url, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
