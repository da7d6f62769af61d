package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/tempo/internal/domain"
	"github.com/alexanderramin/tempo/internal/testutil"
)

func setupItemRepo(t *testing.T) (context.Context, *SQLiteItemRepo) {
	t.Helper()
	db := testutil.NewTestDB(t)
	return context.Background(), NewSQLiteItemRepo(db)
}

func itemIDs(items []*domain.Item) map[string]bool {
	ids := make(map[string]bool, len(items))
	for _, i := range items {
		ids[i.ID] = true
	}
	return ids
}

func TestItemRepo_CreateAndGet(t *testing.T) {
	ctx, repo := setupItemRepo(t)

	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Minute)
	item := testutil.NewTestItem("Write report",
		testutil.WithSchedule(start, end),
		testutil.WithPriority(domain.PriorityHigh),
		testutil.WithColor("teal"),
		testutil.WithNotes("quarterly numbers"),
	)
	require.NoError(t, repo.Create(ctx, item))

	got, err := repo.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.ID, got.ID)
	assert.Equal(t, "Write report", got.Title)
	assert.Equal(t, "quarterly numbers", got.Notes)
	assert.Equal(t, domain.KindTask, got.Kind)
	assert.Equal(t, domain.ItemOpen, got.Status)
	assert.Equal(t, domain.PriorityHigh, got.Priority)
	assert.Equal(t, "teal", got.Color)
	require.NotNil(t, got.StartAt)
	require.NotNil(t, got.EndAt)
	assert.True(t, got.StartAt.Equal(start))
	assert.True(t, got.EndAt.Equal(end))
	assert.False(t, got.AllDay)
	assert.Nil(t, got.CompletedAt)
	assert.True(t, got.CreatedAt.Equal(item.CreatedAt))
}

func TestItemRepo_GetByID_NotFound(t *testing.T) {
	ctx, repo := setupItemRepo(t)

	_, err := repo.GetByID(ctx, "no-such-id")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestItemRepo_CreateStoresNonUTCAsUTC(t *testing.T) {
	ctx, repo := setupItemRepo(t)

	tokyo := time.FixedZone("UTC+9", 9*60*60)
	start := time.Date(2026, 3, 2, 18, 0, 0, 0, tokyo)
	end := start.Add(time.Hour)
	item := testutil.NewTestItem("Evening call", testutil.WithSchedule(start, end))
	require.NoError(t, repo.Create(ctx, item))

	got, err := repo.GetByID(ctx, item.ID)
	require.NoError(t, err)
	require.NotNil(t, got.StartAt)
	assert.True(t, got.StartAt.Equal(start))
	assert.Equal(t, time.UTC, got.StartAt.Location())
}

func TestItemRepo_ListRange_IntersectionSemantics(t *testing.T) {
	ctx, repo := setupItemRepo(t)

	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	nextMonday := monday.AddDate(0, 0, 7)

	inside := testutil.NewTestItem("Inside",
		testutil.WithSchedule(monday.Add(9*time.Hour), monday.Add(10*time.Hour)))
	spansStart := testutil.NewTestItem("Spans week start",
		testutil.WithSchedule(monday.Add(-2*time.Hour), monday.Add(2*time.Hour)))
	spansEnd := testutil.NewTestItem("Spans week end",
		testutil.WithSchedule(nextMonday.Add(-time.Hour), nextMonday.Add(time.Hour)))
	before := testutil.NewTestItem("Previous week",
		testutil.WithSchedule(monday.Add(-24*time.Hour), monday.Add(-23*time.Hour)))
	after := testutil.NewTestItem("Next week",
		testutil.WithSchedule(nextMonday.Add(time.Hour), nextMonday.Add(2*time.Hour)))
	touchesStart := testutil.NewTestItem("Ends at week start",
		testutil.WithSchedule(monday.Add(-time.Hour), monday))
	floating := testutil.NewTestItem("Floating")

	for _, i := range []*domain.Item{inside, spansStart, spansEnd, before, after, touchesStart, floating} {
		require.NoError(t, repo.Create(ctx, i))
	}

	got, err := repo.ListRange(ctx, monday, nextMonday)
	require.NoError(t, err)
	ids := itemIDs(got)

	assert.True(t, ids[inside.ID])
	assert.True(t, ids[spansStart.ID], "items overlapping the range start are included")
	assert.True(t, ids[spansEnd.ID], "items overlapping the range end are included")
	assert.False(t, ids[before.ID])
	assert.False(t, ids[after.ID])
	assert.False(t, ids[touchesStart.ID], "touching the range boundary is not intersecting")
	assert.False(t, ids[floating.ID], "unscheduled items are never in a range")
}

func TestItemRepo_ListRange_IncludesAllDayWithoutEnd(t *testing.T) {
	ctx, repo := setupItemRepo(t)

	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	allDay := testutil.NewTestItem("Conference day", testutil.WithAllDayOn(monday.AddDate(0, 0, 2)))
	require.NoError(t, repo.Create(ctx, allDay))

	got, err := repo.ListRange(ctx, monday, monday.AddDate(0, 0, 7))
	require.NoError(t, err)
	assert.True(t, itemIDs(got)[allDay.ID], "end-less all-day items in the range are included")

	got, err = repo.ListRange(ctx, monday.AddDate(0, 0, 7), monday.AddDate(0, 0, 14))
	require.NoError(t, err)
	assert.False(t, itemIDs(got)[allDay.ID])
}

func TestItemRepo_ListRange_OrderedByStart(t *testing.T) {
	ctx, repo := setupItemRepo(t)

	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	late := testutil.NewTestItem("Late",
		testutil.WithSchedule(monday.Add(15*time.Hour), monday.Add(16*time.Hour)))
	early := testutil.NewTestItem("Early",
		testutil.WithSchedule(monday.Add(9*time.Hour), monday.Add(10*time.Hour)))
	require.NoError(t, repo.Create(ctx, late))
	require.NoError(t, repo.Create(ctx, early))

	got, err := repo.ListRange(ctx, monday, monday.AddDate(0, 0, 7))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, early.ID, got[0].ID)
	assert.Equal(t, late.ID, got[1].ID)
}

func TestItemRepo_ListAll_FiltersClosed(t *testing.T) {
	ctx, repo := setupItemRepo(t)

	open := testutil.NewTestItem("Open")
	done := testutil.NewTestItem("Done", testutil.WithStatus(domain.ItemDone))
	dropped := testutil.NewTestItem("Dropped", testutil.WithStatus(domain.ItemDropped))
	for _, i := range []*domain.Item{open, done, dropped} {
		require.NoError(t, repo.Create(ctx, i))
	}

	openOnly, err := repo.ListAll(ctx, false)
	require.NoError(t, err)
	ids := itemIDs(openOnly)
	assert.True(t, ids[open.ID])
	assert.False(t, ids[done.ID])
	assert.False(t, ids[dropped.ID])

	all, err := repo.ListAll(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestItemRepo_Update(t *testing.T) {
	ctx, repo := setupItemRepo(t)

	item := testutil.NewTestItem("Draft")
	require.NoError(t, repo.Create(ctx, item))

	now := time.Now().UTC().Truncate(time.Second)
	item.Title = "Final"
	item.Status = domain.ItemDone
	item.CompletedAt = &now
	item.UpdatedAt = now
	require.NoError(t, repo.Update(ctx, item))

	got, err := repo.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Final", got.Title)
	assert.Equal(t, domain.ItemDone, got.Status)
	require.NotNil(t, got.CompletedAt)
	assert.True(t, got.CompletedAt.Equal(now))
}

func TestItemRepo_Update_NotFound(t *testing.T) {
	ctx, repo := setupItemRepo(t)

	ghost := testutil.NewTestItem("Ghost")
	err := repo.Update(ctx, ghost)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestItemRepo_Delete(t *testing.T) {
	ctx, repo := setupItemRepo(t)

	item := testutil.NewTestItem("Doomed")
	require.NoError(t, repo.Create(ctx, item))
	require.NoError(t, repo.Delete(ctx, item.ID))

	_, err := repo.GetByID(ctx, item.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = repo.Delete(ctx, item.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
