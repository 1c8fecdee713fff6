package models

import "time"

const minutesPerDay = 24 * 60

type WorkSession struct {
	ID          uint      `gorm:"primaryKey"`
	PropertyID  uint      `gorm:"not null;index"`
	Date        time.Time `gorm:"type:date;not null"`
	StartMinute int       `gorm:"not null"`
	EndMinute   *int
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Rooms []Room `gorm:"many2many:work_session_rooms"`
}

// DurationMinutes treats an end time earlier than the start time as a
// session that crossed midnight.
func (session *WorkSession) DurationMinutes() int {
	if session.EndMinute == nil {
		return 0
	}
	minutes := *session.EndMinute - session.StartMinute
	if minutes < 0 {
		minutes += minutesPerDay
	}
	return minutes
}

func (session *WorkSession) DurationHours() float64 {
	return float64(session.DurationMinutes()) / 60
}
