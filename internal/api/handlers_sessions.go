package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"renotrack/internal/models"
	"renotrack/internal/services"
)

func (handler *Handler) ShowWorkSessions(c *fiber.Ctx) error {
	property, _ := currentProperty(c)

	sessions, err := handler.workSessions.ListByProperty(property.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load work sessions")
	}
	totals := services.BuildWorkHourTotals(sessions, time.Now())

	return handler.render(c, "sessions", fiber.Map{
		"Title":    handler.i18n.Translate(currentLanguage(c), "meta.title.sessions"),
		"Sessions": sessions,
		"Totals":   totals,
	})
}

func (handler *Handler) ShowWorkSessionForm(c *fiber.Ctx) error {
	return handler.renderWorkSessionForm(c, nil)
}

func (handler *Handler) ShowWorkSessionEditForm(c *fiber.Ctx) error {
	property, _ := currentProperty(c)
	session, err := handler.findPropertySession(c, property.ID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "work session not found")
	}
	return handler.renderWorkSessionForm(c, &session)
}

func (handler *Handler) renderWorkSessionForm(c *fiber.Ctx, session *models.WorkSession) error {
	property, _ := currentProperty(c)
	rooms, err := handler.rooms.ListByProperty(property.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load rooms")
	}

	data := fiber.Map{
		"Title": handler.i18n.Translate(currentLanguage(c), "meta.title.session_form"),
		"Rooms": rooms,
	}
	if session != nil {
		selected := make(map[uint]bool, len(session.Rooms))
		for _, room := range session.Rooms {
			selected[room.ID] = true
		}
		data["Editing"] = true
		data["Session"] = session
		data["SelectedRooms"] = selected
	}
	return handler.render(c, "session_form", data)
}

func (handler *Handler) CreateWorkSession(c *fiber.Ctx) error {
	property, _ := currentProperty(c)

	if _, err := handler.workSessions.CreateFromForm(property.ID, sessionFormInput(c)); err != nil {
		return handler.flashError(c, "/sessions/new", sessionErrorKey(err))
	}
	return handler.flashSuccess(c, "/sessions", "flash.session_created")
}

func (handler *Handler) UpdateWorkSession(c *fiber.Ctx) error {
	property, _ := currentProperty(c)
	session, err := handler.findPropertySession(c, property.ID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "work session not found")
	}

	if err := handler.workSessions.UpdateFromForm(&session, sessionFormInput(c)); err != nil {
		return handler.flashError(c, "/sessions", sessionErrorKey(err))
	}
	return handler.flashSuccess(c, "/sessions", "flash.session_updated")
}

func (handler *Handler) findPropertySession(c *fiber.Ctx, propertyID uint) (models.WorkSession, error) {
	sessionID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return models.WorkSession{}, err
	}
	return handler.workSessions.FindByIDForProperty(uint(sessionID), propertyID)
}

func sessionFormInput(c *fiber.Ctx) services.WorkSessionForm {
	form := services.WorkSessionForm{
		Date:      c.FormValue("date"),
		StartTime: c.FormValue("start_time"),
		EndTime:   c.FormValue("end_time"),
		Notes:     c.FormValue("notes"),
	}

	if multipart, err := c.MultipartForm(); err == nil && multipart != nil {
		for _, raw := range multipart.Value["room_ids"] {
			if roomID, err := strconv.ParseUint(raw, 10, 64); err == nil {
				form.RoomIDs = append(form.RoomIDs, uint(roomID))
			}
		}
	} else if raw := c.FormValue("room_ids"); raw != "" {
		if roomID, err := strconv.ParseUint(raw, 10, 64); err == nil {
			form.RoomIDs = append(form.RoomIDs, uint(roomID))
		}
	}
	return form
}

func sessionErrorKey(err error) string {
	switch {
	case errors.Is(err, services.ErrInvalidSessionDate):
		return "flash.invalid_date"
	case errors.Is(err, services.ErrInvalidTimeOfDay):
		return "flash.invalid_time"
	default:
		return "flash.invalid_input"
	}
}
