package services

import (
	"testing"
	"time"

	"renotrack/internal/models"
)

func day(year int, month time.Month, dayOfMonth int) time.Time {
	return time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)
}

func minutePtr(minute int) *int {
	return &minute
}

func TestBuildCategoryTotalsOrdersByTotalDescending(t *testing.T) {
	purchases := []models.Purchase{
		{Category: "paint", AmountCents: 500, Date: day(2026, 8, 1)},
		{Category: "electrical", AmountCents: 700, Date: day(2026, 8, 2)},
		{Category: "paint", AmountCents: 1000, Date: day(2026, 8, 3)},
	}
	labels := map[string]string{"paint": "Farby", "electrical": "Elektryka"}

	totals := BuildCategoryTotals(purchases, labels)
	if len(totals) != 2 {
		t.Fatalf("got %d categories, want 2", len(totals))
	}
	if totals[0].Value != "paint" || totals[0].TotalCents != 1500 {
		t.Errorf("totals[0] = %q/%d, want paint/1500", totals[0].Value, totals[0].TotalCents)
	}
	if totals[1].Value != "electrical" || totals[1].TotalCents != 700 {
		t.Errorf("totals[1] = %q/%d, want electrical/700", totals[1].Value, totals[1].TotalCents)
	}
	if totals[0].Label != "Farby" {
		t.Errorf("totals[0].Label = %q, want Farby", totals[0].Label)
	}
}

func TestBuildCategoryTotalsKeepsValueWhenLabelMissing(t *testing.T) {
	purchases := []models.Purchase{{Category: "retired_category", AmountCents: 100}}

	totals := BuildCategoryTotals(purchases, map[string]string{})
	if totals[0].Label != "retired_category" {
		t.Errorf("Label = %q, want raw value fallback", totals[0].Label)
	}
}

func TestBuildMonthlyTrendGroupsByMonthStart(t *testing.T) {
	today := day(2026, 9, 1)
	purchases := []models.Purchase{
		{AmountCents: 100, Date: day(2026, 8, 3)},
		{AmountCents: 250, Date: day(2026, 8, 28)},
		{AmountCents: 400, Date: day(2026, 6, 15)},
		// Outside the 180-day window.
		{AmountCents: 9999, Date: day(2025, 12, 1)},
	}

	points := BuildMonthlyTrend(purchases, today)
	if len(points) != 2 {
		t.Fatalf("got %d points, want 2", len(points))
	}
	if !points[0].Month.Equal(day(2026, 6, 1)) || points[0].TotalCents != 400 {
		t.Errorf("points[0] = %v/%d, want Jun 2026/400", points[0].Month, points[0].TotalCents)
	}
	if !points[1].Month.Equal(day(2026, 8, 1)) || points[1].TotalCents != 350 {
		t.Errorf("points[1] = %v/%d, want Aug 2026/350", points[1].Month, points[1].TotalCents)
	}
	if points[1].Label != "Aug 2026" {
		t.Errorf("Label = %q, want %q", points[1].Label, "Aug 2026")
	}
}

func TestBuildWorkHourTotalsHandlesMidnightAndOpenSessions(t *testing.T) {
	today := day(2026, 9, 15)
	sessions := []models.WorkSession{
		// 22:00 to 02:00 across midnight.
		{Date: day(2026, 9, 2), StartMinute: 22 * 60, EndMinute: minutePtr(2 * 60)},
		// Open session contributes nothing.
		{Date: day(2026, 9, 3), StartMinute: 10 * 60},
		// Last month, 2.5 hours.
		{Date: day(2026, 8, 20), StartMinute: 9 * 60, EndMinute: minutePtr(11*60 + 30)},
	}

	totals := BuildWorkHourTotals(sessions, today)
	if totals.TotalHours != 6.5 {
		t.Errorf("TotalHours = %v, want 6.5", totals.TotalHours)
	}
	if totals.MonthHours != 4 {
		t.Errorf("MonthHours = %v, want 4", totals.MonthHours)
	}
	if totals.SessionCount != 3 || totals.MonthSessionCount != 2 {
		t.Errorf("counts = %d/%d, want 3/2", totals.SessionCount, totals.MonthSessionCount)
	}
}

func TestBuildVendorTotalsLimitsToTopFive(t *testing.T) {
	purchases := []models.Purchase{
		{Vendor: "Castorama", AmountCents: 600},
		{Vendor: "Leroy Merlin", AmountCents: 500},
		{Vendor: "OBI", AmountCents: 400},
		{Vendor: "Allegro", AmountCents: 300},
		{Vendor: "IKEA", AmountCents: 200},
		{Vendor: "Bricomarche", AmountCents: 100},
		{Vendor: "Castorama", AmountCents: 50},
	}

	totals := BuildVendorTotals(purchases, 5)
	if len(totals) != 5 {
		t.Fatalf("got %d vendors, want 5", len(totals))
	}
	if totals[0].Vendor != "Castorama" || totals[0].TotalCents != 650 || totals[0].Count != 2 {
		t.Errorf("totals[0] = %+v, want Castorama/650/2", totals[0])
	}
	for _, total := range totals {
		if total.Vendor == "Bricomarche" {
			t.Error("smallest vendor should have been cut by the limit")
		}
	}
}

func TestProgressPercentFromCountCapsAtHundred(t *testing.T) {
	cases := map[int]int{0: 0, 1: 10, 7: 70, 10: 100, 12: 100}
	for count, want := range cases {
		if got := ProgressPercentFromCount(count); got != want {
			t.Errorf("ProgressPercentFromCount(%d) = %d, want %d", count, got, want)
		}
	}
}

type stubProgressReader struct {
	counts map[uint]int64
	latest map[uint]models.RoomProgress
}

func (reader *stubProgressReader) CountByRoom(roomID uint) (int64, error) {
	return reader.counts[roomID], nil
}

func (reader *stubProgressReader) LatestByRoom(roomID uint) (models.RoomProgress, bool, error) {
	entry, ok := reader.latest[roomID]
	return entry, ok, nil
}

type stubRoomReader struct {
	rooms []models.Room
}

func (reader *stubRoomReader) ListByProperty(propertyID uint) ([]models.Room, error) {
	return reader.rooms, nil
}

func TestRoomStatusesUsesLatestEntryAndFirstPhoto(t *testing.T) {
	rooms := &stubRoomReader{rooms: []models.Room{
		{ID: 1, RoomType: "kitchen"},
		{ID: 2, RoomType: "bathroom"},
	}}
	progress := &stubProgressReader{
		counts: map[uint]int64{1: 12, 2: 3},
		latest: map[uint]models.RoomProgress{
			1: {
				ID:          40,
				RoomID:      1,
				Description: "cabinets mounted",
				Photos: []models.RoomProgressPhoto{
					{PhotoPath: "progress/first.jpg"},
					{PhotoPath: "progress/second.jpg"},
				},
			},
		},
	}
	service := NewStatsService(nil, nil, rooms, progress)

	statuses, err := service.RoomStatuses(7)
	if err != nil {
		t.Fatalf("RoomStatuses: %v", err)
	}
	if len(statuses) != 2 {
		t.Fatalf("got %d statuses, want 2", len(statuses))
	}
	if statuses[0].ProgressPercent != 100 {
		t.Errorf("kitchen percent = %d, want 100", statuses[0].ProgressPercent)
	}
	if statuses[0].LatestPhotoPath != "progress/first.jpg" {
		t.Errorf("LatestPhotoPath = %q, want first photo", statuses[0].LatestPhotoPath)
	}
	if statuses[1].ProgressPercent != 30 || statuses[1].Latest != nil {
		t.Errorf("bathroom = %d%%/%v, want 30%% and no latest entry", statuses[1].ProgressPercent, statuses[1].Latest)
	}
}
