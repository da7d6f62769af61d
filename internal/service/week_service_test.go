package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/tempo/internal/domain"
	"github.com/alexanderramin/tempo/internal/layout"
	"github.com/alexanderramin/tempo/internal/repository"
	"github.com/alexanderramin/tempo/internal/testutil"
)

func setupWeekService(t *testing.T) (context.Context, *repository.SQLiteItemRepo, WeekService) {
	t.Helper()
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteItemRepo(db)
	return context.Background(), repo, NewWeekService(repo)
}

func testWeekOptions() WeekOptions {
	return WeekOptions{
		DayStartHour:    8,
		DayEndHour:      21,
		PixelsPerMinute: 1.0,
		MaxVisibleLanes: 4,
		WeekStart:       time.Monday,
	}
}

func TestWeekStartDate(t *testing.T) {
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name      string
		anchor    time.Time
		weekStart time.Weekday
		want      time.Time
	}{
		{"midweek anchor", monday.AddDate(0, 0, 3).Add(15 * time.Hour), time.Monday, monday},
		{"anchor on week start", monday.Add(9 * time.Hour), time.Monday, monday},
		{"sunday belongs to previous monday week", monday.AddDate(0, 0, 6), time.Monday, monday},
		{"sunday start", monday.AddDate(0, 0, 3), time.Sunday, monday.AddDate(0, 0, -1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := WeekStartDate(tc.anchor, tc.weekStart)
			assert.True(t, got.Equal(tc.want), "got %v, want %v", got, tc.want)
		})
	}
}

func TestWeekService_GetWeekPlacesStoredItems(t *testing.T) {
	ctx, repo, svc := setupWeekService(t)

	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	meeting := testutil.NewTestItem("Standup",
		testutil.WithSchedule(monday.Add(9*time.Hour), monday.Add(10*time.Hour)),
		testutil.WithColor("aqua"),
		testutil.WithPriority(domain.PriorityHigh),
	)
	offsite := testutil.NewTestItem("Offsite", testutil.WithAllDayOn(monday.AddDate(0, 0, 2)))
	require.NoError(t, repo.Create(ctx, meeting))
	require.NoError(t, repo.Create(ctx, offsite))

	view, err := svc.GetWeek(ctx, monday.AddDate(0, 0, 3), testWeekOptions())
	require.NoError(t, err)

	require.Len(t, view.Layout.Days[0].Blocks, 1)
	block := view.Layout.Days[0].Blocks[0]
	assert.Equal(t, layout.KindRect, block.Kind)
	assert.Equal(t, meeting.ID, block.ItemID)
	assert.Equal(t, 60.0, block.TopPx)
	assert.Equal(t, 60.0, block.HeightPx)
	assert.Equal(t, "high", block.Priority)
	assert.Equal(t, "aqua", block.ColorKey)

	assert.Equal(t, []string{offsite.ID}, view.Layout.Days[2].AllDayIDs)

	assert.Equal(t, "Standup", view.Items[meeting.ID].Title)
	assert.Equal(t, "Offsite", view.Items[offsite.ID].Title)
}

func TestWeekService_GetWeekExcludesDroppedItems(t *testing.T) {
	ctx, repo, svc := setupWeekService(t)

	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	dropped := testutil.NewTestItem("Cancelled",
		testutil.WithSchedule(monday.Add(9*time.Hour), monday.Add(10*time.Hour)),
		testutil.WithStatus(domain.ItemDropped),
	)
	require.NoError(t, repo.Create(ctx, dropped))

	view, err := svc.GetWeek(ctx, monday, testWeekOptions())
	require.NoError(t, err)
	assert.Empty(t, view.Layout.Days[0].Blocks)
	assert.NotContains(t, view.Items, dropped.ID)
}

func TestWeekService_GetWeekEmptyDatabase(t *testing.T) {
	ctx, _, svc := setupWeekService(t)

	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	view, err := svc.GetWeek(ctx, monday, testWeekOptions())
	require.NoError(t, err)
	for d := 0; d < layout.DaysPerWeek; d++ {
		assert.Empty(t, view.Layout.Days[d].Blocks)
		assert.Empty(t, view.Layout.Days[d].AllDayIDs)
	}
	assert.True(t, view.Layout.Days[0].Date.Equal(monday))
}

func TestWeekService_GetWeekInvalidOptions(t *testing.T) {
	ctx, _, svc := setupWeekService(t)

	opts := testWeekOptions()
	opts.DayEndHour = opts.DayStartHour
	_, err := svc.GetWeek(ctx, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), opts)
	require.Error(t, err)
}
