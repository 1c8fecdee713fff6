package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"renotrack/internal/models"
)

var ErrInvalidSessionDate = errors.New("invalid session date")

type WorkSessionRepository interface {
	ListByProperty(propertyID uint) ([]models.WorkSession, error)
	FindByIDForProperty(sessionID uint, propertyID uint) (models.WorkSession, error)
	Create(session *models.WorkSession) error
	Save(session *models.WorkSession) error
	ReplaceRooms(session *models.WorkSession, rooms []models.Room) error
}

type SessionRoomLookup interface {
	FindByIDForProperty(roomID uint, propertyID uint) (models.Room, error)
}

type WorkSessionService struct {
	sessions WorkSessionRepository
	rooms    SessionRoomLookup
}

func NewWorkSessionService(sessions WorkSessionRepository, rooms SessionRoomLookup) *WorkSessionService {
	return &WorkSessionService{sessions: sessions, rooms: rooms}
}

// WorkSessionForm carries raw form input. EndTime may be empty for a session
// still in progress.
type WorkSessionForm struct {
	Date      string
	StartTime string
	EndTime   string
	RoomIDs   []uint
	Notes     string
}

func (service *WorkSessionService) ListByProperty(propertyID uint) ([]models.WorkSession, error) {
	return service.sessions.ListByProperty(propertyID)
}

func (service *WorkSessionService) FindByIDForProperty(sessionID uint, propertyID uint) (models.WorkSession, error) {
	return service.sessions.FindByIDForProperty(sessionID, propertyID)
}

func (service *WorkSessionService) CreateFromForm(propertyID uint, form WorkSessionForm) (models.WorkSession, error) {
	session := models.WorkSession{PropertyID: propertyID}
	if err := applySessionForm(&session, form); err != nil {
		return models.WorkSession{}, err
	}
	if err := service.sessions.Create(&session); err != nil {
		return models.WorkSession{}, fmt.Errorf("create work session: %w", err)
	}
	if err := service.attachRooms(&session, propertyID, form.RoomIDs); err != nil {
		return models.WorkSession{}, err
	}
	return session, nil
}

func (service *WorkSessionService) UpdateFromForm(session *models.WorkSession, form WorkSessionForm) error {
	if err := applySessionForm(session, form); err != nil {
		return err
	}
	if err := service.sessions.Save(session); err != nil {
		return fmt.Errorf("save work session: %w", err)
	}
	return service.attachRooms(session, session.PropertyID, form.RoomIDs)
}

// attachRooms replaces the room links, silently skipping rooms that do not
// belong to the session's property.
func (service *WorkSessionService) attachRooms(session *models.WorkSession, propertyID uint, roomIDs []uint) error {
	rooms := make([]models.Room, 0, len(roomIDs))
	for _, roomID := range roomIDs {
		room, err := service.rooms.FindByIDForProperty(roomID, propertyID)
		if err != nil {
			continue
		}
		rooms = append(rooms, room)
	}
	if err := service.sessions.ReplaceRooms(session, rooms); err != nil {
		return fmt.Errorf("link session rooms: %w", err)
	}
	session.Rooms = rooms
	return nil
}

func applySessionForm(session *models.WorkSession, form WorkSessionForm) error {
	date, err := time.Parse("2006-01-02", strings.TrimSpace(form.Date))
	if err != nil {
		return ErrInvalidSessionDate
	}

	startMinute, err := ParseMinuteOfDay(form.StartTime)
	if err != nil {
		return err
	}

	session.Date = date
	session.StartMinute = startMinute
	session.EndMinute = nil
	if strings.TrimSpace(form.EndTime) != "" {
		endMinute, err := ParseMinuteOfDay(form.EndTime)
		if err != nil {
			return err
		}
		session.EndMinute = &endMinute
	}
	session.Notes = strings.TrimSpace(form.Notes)
	return nil
}
