package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/larder-app/larder/app/models"
	"github.com/larder-app/larder/app/repository"
	"github.com/larder-app/larder/internal/pkg/middleware"
)

type createHouseholdRequest struct {
	Name string `json:"name"`
}

type joinHouseholdRequest struct {
	InviteCode string `json:"invite_code"`
}

// HandleCreateHousehold creates a household and remembers it as the
// caller's selection.
func HandleCreateHousehold(c *fiber.Ctx) error {
	var req createHouseholdRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Invalid JSON body"})
	}

	household := &models.Household{Name: req.Name}
	if err := household.Validate(); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "validation_failed", "message": err.Error()})
	}

	repo := repository.GetGlobalFactory().GetHouseholdRepository()
	if err := repo.Create(household); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to create household"})
	}

	middleware.RememberHousehold(c, household.ID)
	return c.Status(fiber.StatusCreated).JSON(household)
}

// HandleJoinHousehold resolves an invite code and selects that
// household for the caller.
func HandleJoinHousehold(c *fiber.Ctx) error {
	var req joinHouseholdRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Invalid JSON body"})
	}
	if req.InviteCode == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "invite_code is required"})
	}

	repo := repository.GetGlobalFactory().GetHouseholdRepository()
	household, err := repo.GetByInviteCode(req.InviteCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found", "message": "No household with that invite code"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to look up invite code"})
	}

	middleware.RememberHousehold(c, household.ID)
	return c.JSON(household)
}

// HandleGetHousehold returns the acting household.
func HandleGetHousehold(c *fiber.Ctx) error {
	householdID := middleware.GetHouseholdID(c)

	repo := repository.GetGlobalFactory().GetHouseholdRepository()
	household, err := repo.GetByID(householdID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found", "message": "Household not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load household"})
	}
	return c.JSON(household)
}

// HandleRotateInviteCode replaces the household's invite code, e.g.
// after it leaked.
func HandleRotateInviteCode(c *fiber.Ctx) error {
	householdID := middleware.GetHouseholdID(c)

	repo := repository.GetGlobalFactory().GetHouseholdRepository()
	household, err := repo.GetByID(householdID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load household"})
	}

	if err := household.RotateInviteCode(databaseHandle()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to rotate invite code"})
	}
	return c.JSON(fiber.Map{"invite_code": household.InviteCode})
}
