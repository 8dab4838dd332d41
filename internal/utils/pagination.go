package utils

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Pagination holds pagination parameters.
type Pagination struct {
	Page   int
	Limit  int
	Offset int
}

// ParsePagination reads the page query param against a fixed page size.
func ParsePagination(c *fiber.Ctx, perPage int) Pagination {
	page := parseInt(c.Query("page", "1"), 1)
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 20
	}

	return Pagination{
		Page:   page,
		Limit:  perPage,
		Offset: (page - 1) * perPage,
	}
}

// PageCount returns the number of pages needed for total records.
func PageCount(total int64, perPage int) int {
	if perPage <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

func parseInt(value string, fallback int) int {
	if parsed, err := strconv.Atoi(value); err == nil {
		return parsed
	}
	return fallback
}
