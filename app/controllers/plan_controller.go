package controllers

import (
	"errors"
	"log"
	"sort"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/larder-app/larder/app/models"
	"github.com/larder-app/larder/app/repository"
	metrics "github.com/larder-app/larder/internal/pkg/metrics/counter"
	"github.com/larder-app/larder/internal/pkg/middleware"
	"github.com/larder-app/larder/internal/pkg/planner"
)

type addPlanEntryRequest struct {
	Date     string `json:"date"`
	Slot     string `json:"slot"`
	RecipeID uint   `json:"recipe_id"`
	Notes    string `json:"notes"`
}

type movePlanEntryRequest struct {
	Date string `json:"date"`
	Slot string `json:"slot"`
}

type reorderCellRequest struct {
	Date      string `json:"date"`
	Slot      string `json:"slot"`
	FromIndex int    `json:"from_index"`
	ToIndex   int    `json:"to_index"`
}

type updateNotesRequest struct {
	Notes string `json:"notes"`
}

// HandleGetPlanWeek returns the household's plan for a date range
// grouped date → slot → entries, plus the range label the grid header
// shows.
func HandleGetPlanWeek(c *fiber.Ctx) error {
	householdID := middleware.GetHouseholdID(c)

	start, end, err := parseDateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": err.Error()})
	}

	repo := repository.GetGlobalFactory().GetPlanRepository()
	entries, err := repo.ListEntries(householdID, start, end)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load plan"})
	}

	grouped := make(map[string]map[string][]models.PlanEntry)
	for _, e := range entries {
		date := e.DateYMD()
		if grouped[date] == nil {
			grouped[date] = make(map[string][]models.PlanEntry)
		}
		grouped[date][e.Slot] = append(grouped[date][e.Slot], e)
	}
	for _, slots := range grouped {
		for slot := range slots {
			cell := slots[slot]
			sort.SliceStable(cell, func(i, j int) bool { return cell[i].Position < cell[j].Position })
		}
	}

	return c.JSON(fiber.Map{
		"start":       planner.FormatYMD(start),
		"end":         planner.FormatYMD(end),
		"range_label": planner.FormatRangeLabel(start, end),
		"slots":       planner.SlotOrder,
		"days":        grouped,
	})
}

// HandleAddPlanEntry schedules a recipe into a cell, appending it
// after the cell's current entries.
func HandleAddPlanEntry(c *fiber.Ctx) error {
	householdID := middleware.GetHouseholdID(c)

	var req addPlanEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Invalid JSON body"})
	}
	if !planner.IsValidSlot(req.Slot) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Unknown slot " + req.Slot})
	}
	date, err := planner.ParseYMD(req.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": err.Error()})
	}

	entry := &models.PlanEntry{
		HouseholdID: householdID,
		Date:        date,
		Slot:        req.Slot,
		RecipeID:    req.RecipeID,
		Notes:       req.Notes,
	}
	repo := repository.GetGlobalFactory().GetPlanRepository()
	if err := repo.Insert(entry); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to add to plan"})
	}

	if err := metrics.AddRecipePlanned(entry.RecipeID); err != nil {
		log.Printf("plan: times-planned counter failed for recipe %d: %v", entry.RecipeID, err)
	}

	return c.Status(fiber.StatusCreated).JSON(entry)
}

// HandleMovePlanEntry drags an entry to another cell. The repository
// performs the append-then-renumber-source sequence in one
// transaction and the whole outcome is returned as a single value.
func HandleMovePlanEntry(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Invalid entry id"})
	}

	var req movePlanEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Invalid JSON body"})
	}
	if !planner.IsValidSlot(req.Slot) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Unknown slot " + req.Slot})
	}
	date, err := planner.ParseYMD(req.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": err.Error()})
	}

	repo := repository.GetGlobalFactory().GetPlanRepository()
	result, err := repo.Move(uint(id), date, req.Slot)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found", "message": "Plan entry not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to move entry"})
	}
	return c.JSON(result)
}

// HandleReorderPlanCell drags an entry to a new index among its cell
// siblings; the whole cell is rewritten to dense positions.
func HandleReorderPlanCell(c *fiber.Ctx) error {
	householdID := middleware.GetHouseholdID(c)

	var req reorderCellRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Invalid JSON body"})
	}
	if !planner.IsValidSlot(req.Slot) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Unknown slot " + req.Slot})
	}
	date, err := planner.ParseYMD(req.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": err.Error()})
	}

	repo := repository.GetGlobalFactory().GetPlanRepository()
	entries, err := repo.ListEntries(householdID, date, date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load cell"})
	}

	var cell []models.PlanEntry
	for _, e := range entries {
		if e.Slot == req.Slot {
			cell = append(cell, e)
		}
	}
	if req.FromIndex < 0 || req.FromIndex >= len(cell) || req.ToIndex < 0 || req.ToIndex >= len(cell) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Index outside the cell"})
	}

	reordered := planner.ApplyMove(cell, req.FromIndex, req.ToIndex)
	orderedIDs := make([]uint, len(reordered))
	for i, e := range reordered {
		orderedIDs[i] = e.ID
	}

	if err := repo.Reorder(householdID, date, req.Slot, orderedIDs); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to reorder cell"})
	}
	return c.JSON(fiber.Map{"ordered_ids": orderedIDs})
}

// HandleUpdatePlanNotes updates the free-text notes of an entry.
func HandleUpdatePlanNotes(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Invalid entry id"})
	}

	var req updateNotesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Invalid JSON body"})
	}

	repo := repository.GetGlobalFactory().GetPlanRepository()
	if err := repo.UpdateNotes(uint(id), req.Notes); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to update notes"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleDeletePlanEntry removes an entry from the plan. Sibling
// positions keep any resulting gap; ordering is unaffected.
func HandleDeletePlanEntry(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Invalid entry id"})
	}

	repo := repository.GetGlobalFactory().GetPlanRepository()
	if err := repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to delete entry"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
