package services

import (
	"sort"
	"time"

	"renotrack/internal/models"
)

const (
	trendWindowDays = 180
	topVendorLimit  = 5
	// Ten logged progress entries count as a fully renovated room.
	progressEntriesForComplete = 10
)

type StatsPurchaseReader interface {
	ListByProperty(propertyID uint) ([]models.Purchase, error)
	ListByPropertySince(propertyID uint, from time.Time) ([]models.Purchase, error)
}

type StatsSessionReader interface {
	ListByProperty(propertyID uint) ([]models.WorkSession, error)
}

type StatsRoomReader interface {
	ListByProperty(propertyID uint) ([]models.Room, error)
}

type StatsProgressReader interface {
	CountByRoom(roomID uint) (int64, error)
	LatestByRoom(roomID uint) (models.RoomProgress, bool, error)
}

type StatsService struct {
	purchases StatsPurchaseReader
	sessions  StatsSessionReader
	rooms     StatsRoomReader
	progress  StatsProgressReader
}

func NewStatsService(purchases StatsPurchaseReader, sessions StatsSessionReader, rooms StatsRoomReader, progress StatsProgressReader) *StatsService {
	return &StatsService{
		purchases: purchases,
		sessions:  sessions,
		rooms:     rooms,
		progress:  progress,
	}
}

type SpendSummary struct {
	TotalCents    int64
	PurchaseCount int
}

type CategoryTotal struct {
	Value      string
	Label      string
	TotalCents int64
	Count      int
}

type MonthPoint struct {
	Month      time.Time
	Label      string
	TotalCents int64
}

type WorkHourTotals struct {
	TotalHours        float64
	MonthHours        float64
	SessionCount      int
	MonthSessionCount int
}

type RoomStatus struct {
	Room            models.Room
	ProgressCount   int
	ProgressPercent int
	Latest          *models.RoomProgress
	LatestPhotoPath string
}

type VendorTotal struct {
	Vendor     string
	TotalCents int64
	Count      int
}

func (service *StatsService) SpendSummary(propertyID uint) (SpendSummary, error) {
	purchases, err := service.purchases.ListByProperty(propertyID)
	if err != nil {
		return SpendSummary{}, err
	}
	return BuildSpendSummary(purchases), nil
}

func (service *StatsService) CategoryBreakdown(propertyID uint, labels map[string]string) ([]CategoryTotal, error) {
	purchases, err := service.purchases.ListByProperty(propertyID)
	if err != nil {
		return nil, err
	}
	return BuildCategoryTotals(purchases, labels), nil
}

func (service *StatsService) MonthlyTrend(propertyID uint, today time.Time) ([]MonthPoint, error) {
	from := DateOnly(today).AddDate(0, 0, -trendWindowDays)
	purchases, err := service.purchases.ListByPropertySince(propertyID, from)
	if err != nil {
		return nil, err
	}
	return BuildMonthlyTrend(purchases, today), nil
}

func (service *StatsService) WorkHours(propertyID uint, today time.Time) (WorkHourTotals, error) {
	sessions, err := service.sessions.ListByProperty(propertyID)
	if err != nil {
		return WorkHourTotals{}, err
	}
	return BuildWorkHourTotals(sessions, today), nil
}

func (service *StatsService) TopVendors(propertyID uint) ([]VendorTotal, error) {
	purchases, err := service.purchases.ListByProperty(propertyID)
	if err != nil {
		return nil, err
	}
	return BuildVendorTotals(purchases, topVendorLimit), nil
}

func (service *StatsService) RoomStatuses(propertyID uint) ([]RoomStatus, error) {
	rooms, err := service.rooms.ListByProperty(propertyID)
	if err != nil {
		return nil, err
	}

	statuses := make([]RoomStatus, 0, len(rooms))
	for _, room := range rooms {
		count, err := service.progress.CountByRoom(room.ID)
		if err != nil {
			return nil, err
		}

		status := RoomStatus{
			Room:            room,
			ProgressCount:   int(count),
			ProgressPercent: ProgressPercentFromCount(int(count)),
		}

		latest, found, err := service.progress.LatestByRoom(room.ID)
		if err != nil {
			return nil, err
		}
		if found {
			entry := latest
			status.Latest = &entry
			if len(entry.Photos) > 0 {
				status.LatestPhotoPath = entry.Photos[0].PhotoPath
			}
		}

		statuses = append(statuses, status)
	}
	return statuses, nil
}

func BuildSpendSummary(purchases []models.Purchase) SpendSummary {
	summary := SpendSummary{PurchaseCount: len(purchases)}
	for _, purchase := range purchases {
		summary.TotalCents += purchase.AmountCents
	}
	return summary
}

// BuildCategoryTotals groups purchases by category, drops categories with no
// purchases and orders the result by total descending.
func BuildCategoryTotals(purchases []models.Purchase, labels map[string]string) []CategoryTotal {
	byCategory := make(map[string]*CategoryTotal)
	order := make([]string, 0)
	for _, purchase := range purchases {
		total, ok := byCategory[purchase.Category]
		if !ok {
			total = &CategoryTotal{Value: purchase.Category, Label: purchase.Category}
			if label, ok := labels[purchase.Category]; ok {
				total.Label = label
			}
			byCategory[purchase.Category] = total
			order = append(order, purchase.Category)
		}
		total.TotalCents += purchase.AmountCents
		total.Count++
	}

	totals := make([]CategoryTotal, 0, len(order))
	for _, value := range order {
		totals = append(totals, *byCategory[value])
	}
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].TotalCents > totals[j].TotalCents
	})
	return totals
}

// BuildMonthlyTrend keeps purchases from the trailing 180-day window, groups
// them by calendar month start and orders the points chronologically.
func BuildMonthlyTrend(purchases []models.Purchase, today time.Time) []MonthPoint {
	cutoff := DateOnly(today).AddDate(0, 0, -trendWindowDays)

	byMonth := make(map[time.Time]int64)
	for _, purchase := range purchases {
		day := DateOnly(purchase.Date)
		if day.Before(cutoff) {
			continue
		}
		byMonth[MonthStart(day)] += purchase.AmountCents
	}

	points := make([]MonthPoint, 0, len(byMonth))
	for month, total := range byMonth {
		points = append(points, MonthPoint{
			Month:      month,
			Label:      month.Format("Jan 2006"),
			TotalCents: total,
		})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Month.Before(points[j].Month)
	})
	return points
}

// BuildWorkHourTotals sums session durations in fractional hours, both over
// all time and over sessions dated on or after the first of the current
// month. Sessions without an end time contribute zero.
func BuildWorkHourTotals(sessions []models.WorkSession, today time.Time) WorkHourTotals {
	monthStart := MonthStart(DateOnly(today))

	totals := WorkHourTotals{SessionCount: len(sessions)}
	var totalMinutes, monthMinutes int
	for _, session := range sessions {
		minutes := session.DurationMinutes()
		totalMinutes += minutes
		if !DateOnly(session.Date).Before(monthStart) {
			monthMinutes += minutes
			totals.MonthSessionCount++
		}
	}
	totals.TotalHours = float64(totalMinutes) / 60
	totals.MonthHours = float64(monthMinutes) / 60
	return totals
}

// BuildVendorTotals groups purchases by exact vendor string and returns the
// top entries by total descending.
func BuildVendorTotals(purchases []models.Purchase, limit int) []VendorTotal {
	byVendor := make(map[string]*VendorTotal)
	order := make([]string, 0)
	for _, purchase := range purchases {
		total, ok := byVendor[purchase.Vendor]
		if !ok {
			total = &VendorTotal{Vendor: purchase.Vendor}
			byVendor[purchase.Vendor] = total
			order = append(order, purchase.Vendor)
		}
		total.TotalCents += purchase.AmountCents
		total.Count++
	}

	totals := make([]VendorTotal, 0, len(order))
	for _, vendor := range order {
		totals = append(totals, *byVendor[vendor])
	}
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].TotalCents > totals[j].TotalCents
	})
	if limit > 0 && len(totals) > limit {
		totals = totals[:limit]
	}
	return totals
}

// ProgressPercentFromCount maps logged progress entries to a naive completion
// percentage, capped at 100.
func ProgressPercentFromCount(count int) int {
	percent := count * 100 / progressEntriesForComplete
	if percent > 100 {
		return 100
	}
	return percent
}
