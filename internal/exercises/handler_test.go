package exercises_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/exercises"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testUser = auth.User{
	ID:       "d26529bf-6215-4e92-a835-cf64b7b77a9c",
	Username: "lena",
}

func TestHandler_HandleList(t *testing.T) {
	ctrl := gomock.NewController(t)
	listerMock := NewMockexercisesLister(ctrl)
	h := exercises.NewHandler(listerMock)

	listerMock.EXPECT().
		List(gomock.Any(), exercises.Filters{
			Category:    "strength",
			MuscleGroup: "chest",
			Search:      "press",
		}).
		Return([]exercises.Exercise{
			{ID: 1, Name: "Bench Press", Category: "strength", MuscleGroup: "chest", Description: "Barbell press on a flat bench"},
			{ID: 2, Name: "Incline Press", Category: "strength", MuscleGroup: "chest", Description: "Press on an inclined bench"},
		}, nil)

	req := httptest.NewRequest("GET", "/api/exercises?category=strength&muscle_group=chest&search=press", nil)
	req = req.WithContext(auth.WithUser(req.Context(), &testUser))
	rec := httptest.NewRecorder()

	h.HandleList(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp exercises.ListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Exercises, 2)
	assert.Equal(t, "Bench Press", resp.Exercises[0].Name)
}

func TestHandler_HandleList_NoFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	listerMock := NewMockexercisesLister(ctrl)
	h := exercises.NewHandler(listerMock)

	listerMock.EXPECT().
		List(gomock.Any(), exercises.Filters{}).
		Return(nil, nil)

	req := httptest.NewRequest("GET", "/api/exercises", nil)
	req = req.WithContext(auth.WithUser(req.Context(), &testUser))
	rec := httptest.NewRecorder()

	h.HandleList(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"exercises":[]}`, rec.Body.String())
}

func TestHandler_HandleList_Unauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := exercises.NewHandler(NewMockexercisesLister(ctrl))

	req := httptest.NewRequest("GET", "/api/exercises", nil)
	rec := httptest.NewRecorder()

	h.HandleList(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
