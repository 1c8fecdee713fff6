package api

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"renotrack/internal/models"
)

type circuitInput struct {
	RoomID              uint   `form:"room_id"`
	CircuitName         string `form:"circuit_name"`
	BreakerNumber       string `form:"breaker_number"`
	ConnectedAppliances string `form:"connected_appliances"`
	Amperage            int    `form:"amperage"`
	Notes               string `form:"notes"`
}

func (handler *Handler) ShowCircuits(c *fiber.Ctx) error {
	property, _ := currentProperty(c)
	language := currentLanguage(c)

	circuits, err := handler.repos.Circuits.ListByProperty(property.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load circuits")
	}
	rooms, err := handler.rooms.ListByProperty(property.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load rooms")
	}

	roomNames := make(map[uint]string, len(rooms))
	labels := handler.choices.LabelMap(models.ChoiceTypeRoomType, language)
	for _, room := range rooms {
		name := labels[room.RoomType]
		if name == "" {
			name = room.RoomType
		}
		if room.ShortName != "" {
			name += " (" + room.ShortName + ")"
		}
		roomNames[room.ID] = name
	}

	return handler.render(c, "circuits", fiber.Map{
		"Title":     handler.i18n.Translate(language, "meta.title.circuits"),
		"Circuits":  circuits,
		"RoomNames": roomNames,
	})
}

func (handler *Handler) ShowCircuitForm(c *fiber.Ctx) error {
	return handler.renderCircuitForm(c, nil)
}

func (handler *Handler) ShowCircuitEditForm(c *fiber.Ctx) error {
	property, _ := currentProperty(c)
	circuit, err := handler.findPropertyCircuit(c, property.ID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "circuit not found")
	}
	return handler.renderCircuitForm(c, &circuit)
}

func (handler *Handler) renderCircuitForm(c *fiber.Ctx, circuit *models.ElectricalCircuit) error {
	property, _ := currentProperty(c)
	rooms, err := handler.rooms.ListByProperty(property.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load rooms")
	}

	data := fiber.Map{
		"Title": handler.i18n.Translate(currentLanguage(c), "meta.title.circuit_form"),
		"Rooms": rooms,
	}
	if circuit != nil {
		data["Editing"] = true
		data["Circuit"] = circuit
	}
	return handler.render(c, "circuit_form", data)
}

func (handler *Handler) CreateCircuit(c *fiber.Ctx) error {
	property, _ := currentProperty(c)

	circuit := models.ElectricalCircuit{}
	if err := handler.applyCircuitInput(c, &circuit, property.ID); err != nil {
		return handler.flashError(c, "/circuits/new", "flash.invalid_input")
	}
	if err := handler.repos.Circuits.Create(&circuit); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create circuit")
	}
	return handler.flashSuccess(c, "/circuits", "flash.circuit_created")
}

func (handler *Handler) UpdateCircuit(c *fiber.Ctx) error {
	property, _ := currentProperty(c)
	circuit, err := handler.findPropertyCircuit(c, property.ID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "circuit not found")
	}

	if err := handler.applyCircuitInput(c, &circuit, property.ID); err != nil {
		return handler.flashError(c, "/circuits", "flash.invalid_input")
	}
	if err := handler.repos.Circuits.Save(&circuit); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save circuit")
	}
	return handler.flashSuccess(c, "/circuits", "flash.circuit_updated")
}

func (handler *Handler) findPropertyCircuit(c *fiber.Ctx, propertyID uint) (models.ElectricalCircuit, error) {
	circuitID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return models.ElectricalCircuit{}, err
	}
	return handler.repos.Circuits.FindByIDForProperty(uint(circuitID), propertyID)
}

func (handler *Handler) applyCircuitInput(c *fiber.Ctx, circuit *models.ElectricalCircuit, propertyID uint) error {
	input := circuitInput{}
	if err := c.BodyParser(&input); err != nil {
		return err
	}

	// The room must belong to the working property.
	room, err := handler.repos.Rooms.FindByIDForProperty(input.RoomID, propertyID)
	if err != nil {
		return err
	}

	input.CircuitName = strings.TrimSpace(input.CircuitName)
	input.BreakerNumber = strings.TrimSpace(input.BreakerNumber)
	if input.CircuitName == "" || input.BreakerNumber == "" {
		return fiber.ErrBadRequest
	}

	circuit.RoomID = room.ID
	circuit.CircuitName = input.CircuitName
	circuit.BreakerNumber = input.BreakerNumber
	circuit.ConnectedAppliances = strings.TrimSpace(input.ConnectedAppliances)
	circuit.Amperage = nil
	if input.Amperage > 0 {
		amperage := input.Amperage
		circuit.Amperage = &amperage
	}
	circuit.Notes = strings.TrimSpace(input.Notes)
	return nil
}
