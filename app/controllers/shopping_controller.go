package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/larder-app/larder/app/repository"
	"github.com/larder-app/larder/internal/pkg/middleware"
	"github.com/larder-app/larder/internal/pkg/planner"
	"github.com/larder-app/larder/internal/pkg/shopping"
)

type togglePantryRequest struct {
	Name string `json:"name"`
	Have bool   `json:"have"`
}

type clearChecksRequest struct {
	Names []string `json:"names"`
}

func newGenerator() *shopping.Generator {
	repos := repository.GetGlobalRepositories()
	return shopping.NewGenerator(repos.Plan, repos.Recipe, repos.Category, repos.Pantry)
}

// HandleGetShoppingList generates the shopping list for a date range
// (default: current week). Per category, unchecked items come before
// checked ones, each half alphabetical, matching how the list screen
// renders.
func HandleGetShoppingList(c *fiber.Ctx) error {
	householdID := middleware.GetHouseholdID(c)

	start, end, err := parseDateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": err.Error()})
	}

	list, err := newGenerator().Generate(householdID, start, end)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "generation_failed", "message": "Failed to generate shopping list"})
	}

	display := make(map[string][]shopping.ShoppingItem, len(list))
	for category, items := range list {
		ordered := make([]shopping.ShoppingItem, 0, len(items))
		for _, item := range items {
			if !item.Have {
				ordered = append(ordered, item)
			}
		}
		for _, item := range items {
			if item.Have {
				ordered = append(ordered, item)
			}
		}
		display[category] = ordered
	}

	checked, unchecked := shopping.Counts(list)
	return c.JSON(fiber.Map{
		"start":           planner.FormatYMD(start),
		"end":             planner.FormatYMD(end),
		"range_label":     planner.FormatRangeLabel(start, end),
		"category_order":  shopping.CategoryOrder,
		"categories":      display,
		"checked_count":   checked,
		"unchecked_count": unchecked,
	})
}

// HandleTogglePantryItem records a checkbox toggle. Safe under rapid
// repeated toggles; last write wins.
func HandleTogglePantryItem(c *fiber.Ctx) error {
	householdID := middleware.GetHouseholdID(c)

	var req togglePantryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Invalid JSON body"})
	}
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "name is required"})
	}

	repo := repository.GetGlobalFactory().GetPantryRepository()
	if err := repo.SetHave(householdID, req.Name, req.Have); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to update pantry"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleClearChecks unchecks items in bulk. With an explicit name
// list only those are cleared; otherwise the checked names of the
// requested range's list are used. Unrelated pantry rows stay put.
func HandleClearChecks(c *fiber.Ctx) error {
	householdID := middleware.GetHouseholdID(c)

	var req clearChecksRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Invalid JSON body"})
	}

	names := req.Names
	if len(names) == 0 {
		start, end, err := parseDateRange(c)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": err.Error()})
		}
		list, err := newGenerator().Generate(householdID, start, end)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "generation_failed", "message": "Failed to generate shopping list"})
		}
		names = shopping.CheckedNames(list)
	}
	if len(names) == 0 {
		return c.SendStatus(fiber.StatusNoContent)
	}

	repo := repository.GetGlobalFactory().GetPantryRepository()
	if err := repo.ClearChecked(householdID, names); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to clear checks"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleExportShoppingList renders the list as plain text for the
// clipboard, unchecked items only.
func HandleExportShoppingList(c *fiber.Ctx) error {
	householdID := middleware.GetHouseholdID(c)

	start, end, err := parseDateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": err.Error()})
	}

	list, err := newGenerator().Generate(householdID, start, end)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "generation_failed", "message": "Failed to generate shopping list"})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(shopping.FormatForExport(list, start, end))
}

// HandleShareShoppingList renders the list in the share-sheet format:
// no title, natural-case headers, blank line between categories.
func HandleShareShoppingList(c *fiber.Ctx) error {
	householdID := middleware.GetHouseholdID(c)

	start, end, err := parseDateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": err.Error()})
	}

	list, err := newGenerator().Generate(householdID, start, end)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "generation_failed", "message": "Failed to generate shopping list"})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(shopping.FormatForShare(list))
}
