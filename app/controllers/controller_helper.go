package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/larder-app/larder/internal/pkg/database"
	"github.com/larder-app/larder/internal/pkg/planner"
)

func databaseHandle() *gorm.DB {
	return database.GetDB()
}

// parseDateRange reads the start/end query parameters as inclusive
// calendar days, defaulting to the current Monday-to-Sunday week when
// both are absent.
func parseDateRange(c *fiber.Ctx) (start, end time.Time, err error) {
	startRaw := c.Query("start")
	endRaw := c.Query("end")

	if startRaw == "" && endRaw == "" {
		week := planner.WeekDates(time.Now().UTC(), 0)
		return week[0], week[6], nil
	}

	start, err = planner.ParseYMD(startRaw)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err = planner.ParseYMD(endRaw)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if end.Before(start) {
		start, end = end, start
	}
	return start, end, nil
}
