package api

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	"renotrack/internal/models"
	"renotrack/internal/services"
)

type roomInput struct {
	RoomType        string   `form:"room_type"`
	ShortName       string   `form:"short_name"`
	Description     string   `form:"description"`
	SquareMeters    float64  `form:"square_meters"`
	FloorType       string   `form:"floor_type"`
	WallFinishes    []string `form:"wall_finishes"`
	StatusNotes     string   `form:"status_notes"`
	Plan            string   `form:"plan"`
	Notes           string   `form:"notes"`
	ProgressPercent int      `form:"progress_percent"`
}

func (handler *Handler) ShowRooms(c *fiber.Ctx) error {
	property, _ := currentProperty(c)
	language := currentLanguage(c)

	statuses, err := handler.stats.RoomStatuses(property.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load rooms")
	}
	return handler.render(c, "rooms", fiber.Map{
		"Title":          handler.i18n.Translate(language, "meta.title.rooms"),
		"RoomStatuses":   statuses,
		"RoomTypeLabels": handler.choices.LabelMap(models.ChoiceTypeRoomType, language),
	})
}

func (handler *Handler) ShowRoomDetail(c *fiber.Ctx) error {
	property, _ := currentProperty(c)
	language := currentLanguage(c)

	room, err := handler.findPropertyRoom(c, property.ID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "room not found")
	}

	progress, err := handler.repos.Progress.ListByRoom(room.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load progress")
	}
	circuits, err := handler.repos.Circuits.ListByRoom(room.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load circuits")
	}

	return handler.render(c, "room_detail", fiber.Map{
		"Title":           handler.i18n.Translate(language, "meta.title.room_detail"),
		"Room":            &room,
		"ProgressEntries": progress,
		"Circuits":        circuits,
		"ProgressPercent": services.ProgressPercentFromCount(len(progress)),
		"RoomTypeLabels":  handler.choices.LabelMap(models.ChoiceTypeRoomType, language),
		"FloorLabels":     handler.choices.LabelMap(models.ChoiceTypeFloorType, language),
		"WallLabels":      handler.choices.LabelMap(models.ChoiceTypeWallFinish, language),
	})
}

func (handler *Handler) ShowRoomForm(c *fiber.Ctx) error {
	return handler.renderRoomForm(c, nil)
}

func (handler *Handler) ShowRoomEditForm(c *fiber.Ctx) error {
	property, _ := currentProperty(c)
	room, err := handler.findPropertyRoom(c, property.ID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "room not found")
	}
	return handler.renderRoomForm(c, &room)
}

func (handler *Handler) renderRoomForm(c *fiber.Ctx, room *models.Room) error {
	language := currentLanguage(c)
	data := fiber.Map{
		"Title":        handler.i18n.Translate(language, "meta.title.room_form"),
		"RoomTypes":    handler.choices.ChoicesFor(models.ChoiceTypeRoomType, language),
		"FloorTypes":   handler.choices.ChoicesFor(models.ChoiceTypeFloorType, language),
		"WallFinishes": handler.choices.ChoicesFor(models.ChoiceTypeWallFinish, language),
	}
	if room != nil {
		data["Editing"] = true
		data["Room"] = room
	}
	return handler.render(c, "room_form", data)
}

func (handler *Handler) CreateRoom(c *fiber.Ctx) error {
	property, _ := currentProperty(c)

	room := models.Room{PropertyID: property.ID}
	if err := applyRoomInput(c, &room); err != nil {
		return handler.flashError(c, "/rooms/new", "flash.invalid_input")
	}

	if err := handler.rooms.CreateRoom(&room); err != nil {
		if errors.Is(err, services.ErrDuplicateRoom) {
			return handler.flashError(c, "/rooms/new", "flash.duplicate_room")
		}
		return handler.flashError(c, "/rooms/new", "flash.invalid_input")
	}
	return handler.flashSuccess(c, "/rooms", "flash.room_created")
}

func (handler *Handler) UpdateRoom(c *fiber.Ctx) error {
	property, _ := currentProperty(c)
	room, err := handler.findPropertyRoom(c, property.ID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "room not found")
	}

	if err := applyRoomInput(c, &room); err != nil {
		return handler.flashError(c, "/rooms", "flash.invalid_input")
	}
	if err := handler.rooms.UpdateRoom(&room); err != nil {
		if errors.Is(err, services.ErrDuplicateRoom) {
			return handler.flashError(c, "/rooms", "flash.duplicate_room")
		}
		return handler.flashError(c, "/rooms", "flash.invalid_input")
	}
	return handler.flashSuccess(c, "/rooms", "flash.room_updated")
}

func (handler *Handler) findPropertyRoom(c *fiber.Ctx, propertyID uint) (models.Room, error) {
	roomID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return models.Room{}, err
	}
	return handler.repos.Rooms.FindByIDForProperty(uint(roomID), propertyID)
}

func applyRoomInput(c *fiber.Ctx, room *models.Room) error {
	input := roomInput{}
	if err := c.BodyParser(&input); err != nil {
		return err
	}

	finishes := make([]string, 0, len(input.WallFinishes))
	for _, finish := range input.WallFinishes {
		if trimmed := strings.TrimSpace(finish); trimmed != "" {
			finishes = append(finishes, trimmed)
		}
	}

	room.RoomType = strings.TrimSpace(input.RoomType)
	room.ShortName = strings.TrimSpace(input.ShortName)
	room.Description = strings.TrimSpace(input.Description)
	room.SquareMeters = input.SquareMeters
	room.FloorType = strings.TrimSpace(input.FloorType)
	room.WallFinishes = datatypes.JSONSlice[string](finishes)
	room.StatusNotes = strings.TrimSpace(input.StatusNotes)
	room.Plan = strings.TrimSpace(input.Plan)
	room.Notes = strings.TrimSpace(input.Notes)
	room.ProgressPercent = clampPercent(input.ProgressPercent)
	return nil
}

func clampPercent(value int) int {
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return value
}
