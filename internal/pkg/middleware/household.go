package middleware

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/larder-app/larder/internal/pkg/session"
)

const (
	// HouseholdContextKey is the fiber locals key carrying the acting
	// household id.
	HouseholdContextKey = "HOUSEHOLD_ID"
	// HouseholdHeader lets API clients pick the household explicitly;
	// browser clients rely on the session instead.
	HouseholdHeader = "X-Household-ID"
	// householdSessionKey is where the last selected household is
	// remembered between visits.
	householdSessionKey = "household_id"
)

// HouseholdContext resolves the acting household for every request,
// header first, then session, and stores it in locals. Requests
// without a household still pass through; handlers that need one use
// RequireHousehold.
func HouseholdContext(c *fiber.Ctx) error {
	if raw := c.Get(HouseholdHeader); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil && id > 0 {
			c.Locals(HouseholdContextKey, uint(id))
			return c.Next()
		}
	}

	if raw := session.GetSessionValue(c, householdSessionKey); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil && id > 0 {
			c.Locals(HouseholdContextKey, uint(id))
		}
	}

	return c.Next()
}

// RequireHousehold rejects requests that did not resolve a household.
func RequireHousehold(c *fiber.Ctx) error {
	if GetHouseholdID(c) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "household_required",
			"message": "Select a household via the " + HouseholdHeader + " header or the join endpoint",
		})
	}
	return c.Next()
}

// GetHouseholdID returns the acting household id, or 0 when none was
// resolved.
func GetHouseholdID(c *fiber.Ctx) uint {
	if id, ok := c.Locals(HouseholdContextKey).(uint); ok {
		return id
	}
	return 0
}

// RememberHousehold stores the household selection in the session so
// later requests need no header.
func RememberHousehold(c *fiber.Ctx, householdID uint) {
	_ = session.SetSessionValue(c, householdSessionKey, strconv.FormatUint(uint64(householdID), 10))
}
