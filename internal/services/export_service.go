package services

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"renotrack/internal/models"
)

// ExportService turns a property's purchase and work history into
// downloadable spreadsheets for contractors and tax paperwork.
type ExportService struct {
	purchases StatsPurchaseReader
	sessions  StatsSessionReader
}

func NewExportService(purchases StatsPurchaseReader, sessions StatsSessionReader) *ExportService {
	return &ExportService{purchases: purchases, sessions: sessions}
}

var purchaseExportHeader = []string{"Date", "Category", "Vendor", "Description", "Amount", "Notes"}

type purchaseExportEntry struct {
	Date        string `json:"date"`
	Category    string `json:"category"`
	Vendor      string `json:"vendor"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Notes       string `json:"notes"`
}

// BuildPurchaseRows maps purchases to export rows, category labels localized
// through the supplied label map.
func BuildPurchaseRows(purchases []models.Purchase, labels map[string]string) []purchaseExportEntry {
	rows := make([]purchaseExportEntry, 0, len(purchases))
	for _, purchase := range purchases {
		category := purchase.Category
		if label, ok := labels[purchase.Category]; ok {
			category = label
		}
		rows = append(rows, purchaseExportEntry{
			Date:        purchase.Date.Format("2006-01-02"),
			Category:    category,
			Vendor:      purchase.Vendor,
			Description: purchase.Description,
			Amount:      models.FormatCents(purchase.AmountCents),
			Notes:       purchase.Notes,
		})
	}
	return rows
}

func (service *ExportService) PurchasesCSV(propertyID uint, labels map[string]string) ([]byte, error) {
	purchases, err := service.purchases.ListByProperty(propertyID)
	if err != nil {
		return nil, err
	}

	var buffer bytes.Buffer
	writer := csv.NewWriter(&buffer)
	if err := writer.Write(purchaseExportHeader); err != nil {
		return nil, err
	}
	for _, row := range BuildPurchaseRows(purchases, labels) {
		record := []string{row.Date, row.Category, row.Vendor, row.Description, row.Amount, row.Notes}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func (service *ExportService) PurchasesJSON(propertyID uint, labels map[string]string) ([]byte, error) {
	purchases, err := service.purchases.ListByProperty(propertyID)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(BuildPurchaseRows(purchases, labels), "", "  ")
}

func (service *ExportService) PurchasesXLSX(propertyID uint, labels map[string]string) ([]byte, error) {
	purchases, err := service.purchases.ListByProperty(propertyID)
	if err != nil {
		return nil, err
	}

	file := excelize.NewFile()
	defer file.Close()
	sheetName := "Purchases"
	index, err := file.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	file.SetActiveSheet(index)
	file.DeleteSheet("Sheet1")

	headerStyle, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	for column, header := range purchaseExportHeader {
		cell, err := excelize.CoordinatesToCellName(column+1, 1)
		if err != nil {
			return nil, err
		}
		file.SetCellValue(sheetName, cell, header)
		file.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	rows := BuildPurchaseRows(purchases, labels)
	for rowIndex, row := range rows {
		values := []string{row.Date, row.Category, row.Vendor, row.Description, row.Amount, row.Notes}
		for column, value := range values {
			cell, err := excelize.CoordinatesToCellName(column+1, rowIndex+2)
			if err != nil {
				return nil, err
			}
			file.SetCellValue(sheetName, cell, value)
		}
	}

	var total int64
	for _, purchase := range purchases {
		total += purchase.AmountCents
	}
	totalCell, err := excelize.CoordinatesToCellName(5, len(rows)+3)
	if err != nil {
		return nil, err
	}
	file.SetCellValue(sheetName, totalCell, fmt.Sprintf("Total: %s", models.FormatCents(total)))

	buffer, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

var sessionExportHeader = []string{"Date", "Start", "End", "Hours", "Rooms", "Notes"}

type sessionExportEntry struct {
	Date  string `json:"date"`
	Start string `json:"start"`
	End   string `json:"end"`
	Hours string `json:"hours"`
	Rooms string `json:"rooms"`
	Notes string `json:"notes"`
}

// BuildSessionRows maps work sessions to export rows. Open sessions get an
// empty end time and zero hours.
func BuildSessionRows(sessions []models.WorkSession) []sessionExportEntry {
	rows := make([]sessionExportEntry, 0, len(sessions))
	for _, session := range sessions {
		end := ""
		if session.EndMinute != nil {
			end = FormatMinuteOfDay(*session.EndMinute)
		}
		roomNames := make([]string, 0, len(session.Rooms))
		for _, room := range session.Rooms {
			name := room.RoomType
			if room.ShortName != "" {
				name = room.ShortName
			}
			roomNames = append(roomNames, name)
		}
		rows = append(rows, sessionExportEntry{
			Date:  session.Date.Format("2006-01-02"),
			Start: FormatMinuteOfDay(session.StartMinute),
			End:   end,
			Hours: fmt.Sprintf("%.2f", session.DurationHours()),
			Rooms: strings.Join(roomNames, ", "),
			Notes: session.Notes,
		})
	}
	return rows
}

func (service *ExportService) SessionsCSV(propertyID uint) ([]byte, error) {
	sessions, err := service.sessions.ListByProperty(propertyID)
	if err != nil {
		return nil, err
	}

	var buffer bytes.Buffer
	writer := csv.NewWriter(&buffer)
	if err := writer.Write(sessionExportHeader); err != nil {
		return nil, err
	}
	for _, row := range BuildSessionRows(sessions) {
		record := []string{row.Date, row.Start, row.End, row.Hours, row.Rooms, row.Notes}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func (service *ExportService) SessionsJSON(propertyID uint) ([]byte, error) {
	sessions, err := service.sessions.ListByProperty(propertyID)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(BuildSessionRows(sessions), "", "  ")
}

func (service *ExportService) SessionsXLSX(propertyID uint) ([]byte, error) {
	sessions, err := service.sessions.ListByProperty(propertyID)
	if err != nil {
		return nil, err
	}

	file := excelize.NewFile()
	defer file.Close()
	sheetName := "Work sessions"
	index, err := file.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	file.SetActiveSheet(index)
	file.DeleteSheet("Sheet1")

	headerStyle, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	for column, header := range sessionExportHeader {
		cell, err := excelize.CoordinatesToCellName(column+1, 1)
		if err != nil {
			return nil, err
		}
		file.SetCellValue(sheetName, cell, header)
		file.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	rows := BuildSessionRows(sessions)
	var totalMinutes int
	for _, session := range sessions {
		totalMinutes += session.DurationMinutes()
	}
	for rowIndex, row := range rows {
		values := []string{row.Date, row.Start, row.End, row.Hours, row.Rooms, row.Notes}
		for column, value := range values {
			cell, err := excelize.CoordinatesToCellName(column+1, rowIndex+2)
			if err != nil {
				return nil, err
			}
			file.SetCellValue(sheetName, cell, value)
		}
	}

	totalCell, err := excelize.CoordinatesToCellName(4, len(rows)+3)
	if err != nil {
		return nil, err
	}
	file.SetCellValue(sheetName, totalCell, fmt.Sprintf("Total: %.2f h", float64(totalMinutes)/60))

	buffer, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
