package exercises_test

import (
	"context"
	"testing"

	"github.com/2beens/fittrack/internal/exercises"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCachedRepo_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	listerMock := NewMockexercisesLister(ctrl)
	cached := exercises.NewCachedRepo(listerMock)

	ctx := context.Background()
	chestFilters := exercises.Filters{MuscleGroup: "chest"}
	legsFilters := exercises.Filters{MuscleGroup: "legs"}

	chestCatalog := []exercises.Exercise{
		{ID: 1, Name: "Bench Press", Category: "strength", MuscleGroup: "chest"},
	}
	legsCatalog := []exercises.Exercise{
		{ID: 2, Name: "Squat", Category: "strength", MuscleGroup: "legs"},
		{ID: 3, Name: "Leg Press", Category: "strength", MuscleGroup: "legs"},
	}

	// one repo hit per distinct filter tuple
	listerMock.EXPECT().List(gomock.Any(), chestFilters).Return(chestCatalog, nil).Times(1)
	listerMock.EXPECT().List(gomock.Any(), legsFilters).Return(legsCatalog, nil).Times(1)

	got, err := cached.List(ctx, chestFilters)
	require.NoError(t, err)
	assert.Equal(t, chestCatalog, got)

	// same tuple again, served from cache
	got, err = cached.List(ctx, chestFilters)
	require.NoError(t, err)
	assert.Equal(t, chestCatalog, got)

	got, err = cached.List(ctx, legsFilters)
	require.NoError(t, err)
	assert.Equal(t, legsCatalog, got)

	got, err = cached.List(ctx, legsFilters)
	require.NoError(t, err)
	assert.Equal(t, legsCatalog, got)
}

func TestCachedRepo_List_ErrorNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	listerMock := NewMockexercisesLister(ctrl)
	cached := exercises.NewCachedRepo(listerMock)

	ctx := context.Background()
	filters := exercises.Filters{Search: "press"}

	listerMock.EXPECT().List(gomock.Any(), filters).Return(nil, assert.AnError)
	_, err := cached.List(ctx, filters)
	require.ErrorIs(t, err, assert.AnError)

	// the failed read left nothing behind, repo is hit again
	catalog := []exercises.Exercise{{ID: 1, Name: "Bench Press"}}
	listerMock.EXPECT().List(gomock.Any(), filters).Return(catalog, nil)
	got, err := cached.List(ctx, filters)
	require.NoError(t, err)
	assert.Equal(t, catalog, got)
}
