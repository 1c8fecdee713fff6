package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"renotrack/internal/models"
)

func (handler *Handler) ShowProgressForm(c *fiber.Ctx) error {
	property, _ := currentProperty(c)
	room, err := handler.findPropertyRoom(c, property.ID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "room not found")
	}
	return handler.render(c, "progress_form", fiber.Map{
		"Title": handler.i18n.Translate(currentLanguage(c), "meta.title.progress_form"),
		"Room":  &room,
	})
}

// CreateProgress logs a progress entry with any number of attached photos.
func (handler *Handler) CreateProgress(c *fiber.Ctx) error {
	property, _ := currentProperty(c)
	room, err := handler.findPropertyRoom(c, property.ID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "room not found")
	}
	roomPath := "/rooms/" + c.Params("id")

	description := strings.TrimSpace(c.FormValue("description"))
	if description == "" {
		return handler.flashError(c, roomPath+"/progress/new", "flash.invalid_input")
	}

	date, err := time.Parse("2006-01-02", strings.TrimSpace(c.FormValue("date")))
	if err != nil {
		return handler.flashError(c, roomPath+"/progress/new", "flash.invalid_input")
	}

	entry := models.RoomProgress{
		RoomID:      room.ID,
		Date:        date,
		Description: description,
		Notes:       strings.TrimSpace(c.FormValue("notes")),
	}
	if err := handler.repos.Progress.Create(&entry); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save progress")
	}

	form, err := c.MultipartForm()
	if err == nil && form != nil {
		for _, header := range form.File["photos"] {
			path, err := handler.uploads.Save(header, "progress")
			if err != nil {
				continue
			}
			photo := models.RoomProgressPhoto{
				ProgressID: entry.ID,
				PhotoPath:  path,
				Caption:    strings.TrimSpace(c.FormValue("caption")),
				UploadedAt: time.Now(),
			}
			if err := handler.repos.Progress.CreatePhoto(&photo); err != nil {
				handler.uploads.Remove(path)
			}
		}
	}

	return handler.flashSuccess(c, roomPath, "flash.progress_created")
}
