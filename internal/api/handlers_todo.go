package api

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"renotrack/internal/models"
)

func (handler *Handler) ShowTodo(c *fiber.Ctx) error {
	property, _ := currentProperty(c)
	language := currentLanguage(c)

	tasks, err := handler.repos.Todo.ListTasksByProperty(property.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load tasks")
	}
	items, err := handler.repos.Todo.ListItemsByProperty(property.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load shopping items")
	}
	rooms, err := handler.rooms.ListByProperty(property.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load rooms")
	}

	return handler.render(c, "todo", fiber.Map{
		"Title":         handler.i18n.Translate(language, "meta.title.todo"),
		"Tasks":         tasks,
		"ShoppingItems": items,
		"Rooms":         rooms,
	})
}

func (handler *Handler) CreateTask(c *fiber.Ctx) error {
	property, _ := currentProperty(c)

	title := strings.TrimSpace(c.FormValue("title"))
	if title == "" {
		return handler.flashError(c, "/todo", "flash.invalid_input")
	}

	task := models.RenovationTask{
		PropertyID:  property.ID,
		Title:       title,
		Description: strings.TrimSpace(c.FormValue("description")),
		Priority:    models.PriorityMedium,
		DueDate:     parseOptionalDate(c.FormValue("due_date")),
	}
	if priority := c.FormValue("priority"); models.ValidPriority(priority) {
		task.Priority = priority
	}
	if roomID, err := strconv.ParseUint(c.FormValue("room_id"), 10, 64); err == nil && roomID > 0 {
		if room, err := handler.repos.Rooms.FindByIDForProperty(uint(roomID), property.ID); err == nil {
			task.RoomID = &room.ID
		}
	}

	if err := handler.repos.Todo.CreateTask(&task); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create task")
	}
	return handler.flashSuccess(c, "/todo", "flash.task_created")
}

// ToggleTask flips a task between done and pending.
func (handler *Handler) ToggleTask(c *fiber.Ctx) error {
	property, _ := currentProperty(c)
	taskID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid task id")
	}

	task, err := handler.repos.Todo.FindTaskForProperty(uint(taskID), property.ID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "task not found")
	}
	task.IsDone = !task.IsDone
	if err := handler.repos.Todo.SaveTask(&task); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save task")
	}
	return redirectOrJSON(c, "/todo")
}

func (handler *Handler) DeleteTask(c *fiber.Ctx) error {
	property, _ := currentProperty(c)
	taskID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid task id")
	}

	task, err := handler.repos.Todo.FindTaskForProperty(uint(taskID), property.ID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "task not found")
	}
	if err := handler.repos.Todo.DeleteTask(&task); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete task")
	}
	return redirectOrJSON(c, "/todo")
}

func (handler *Handler) CreateShoppingItem(c *fiber.Ctx) error {
	property, _ := currentProperty(c)

	name := strings.TrimSpace(c.FormValue("name"))
	if name == "" {
		return handler.flashError(c, "/todo", "flash.invalid_input")
	}

	item := models.ShoppingItem{
		PropertyID: property.ID,
		Name:       name,
		Quantity:   1,
		Notes:      strings.TrimSpace(c.FormValue("notes")),
	}
	if quantity, err := strconv.Atoi(c.FormValue("quantity")); err == nil && quantity > 0 {
		item.Quantity = quantity
	}
	if raw := strings.TrimSpace(c.FormValue("estimated_price")); raw != "" {
		if cents, err := models.ParseAmountCents(raw); err == nil {
			item.EstimatedPriceCents = &cents
		}
	}

	if err := handler.repos.Todo.CreateItem(&item); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create shopping item")
	}
	return handler.flashSuccess(c, "/todo", "flash.item_created")
}

// ToggleShoppingItem flips an item between bought and pending.
func (handler *Handler) ToggleShoppingItem(c *fiber.Ctx) error {
	property, _ := currentProperty(c)
	itemID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid item id")
	}

	item, err := handler.repos.Todo.FindItemForProperty(uint(itemID), property.ID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "shopping item not found")
	}
	item.IsBought = !item.IsBought
	if err := handler.repos.Todo.SaveItem(&item); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save shopping item")
	}
	return redirectOrJSON(c, "/todo")
}

func (handler *Handler) DeleteShoppingItem(c *fiber.Ctx) error {
	property, _ := currentProperty(c)
	itemID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid item id")
	}

	item, err := handler.repos.Todo.FindItemForProperty(uint(itemID), property.ID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "shopping item not found")
	}
	if err := handler.repos.Todo.DeleteItem(&item); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete shopping item")
	}
	return redirectOrJSON(c, "/todo")
}
