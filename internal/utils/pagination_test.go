package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOn(t *testing.T, target string, perPage int) Pagination {
	t.Helper()

	var got Pagination
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		got = ParsePagination(c, perPage)
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestParsePagination(t *testing.T) {
	pg := parseOn(t, "/?page=3", 10)
	assert.Equal(t, 3, pg.Page)
	assert.Equal(t, 10, pg.Limit)
	assert.Equal(t, 20, pg.Offset)
}

func TestParsePaginationDefaults(t *testing.T) {
	pg := parseOn(t, "/", 10)
	assert.Equal(t, 1, pg.Page)
	assert.Equal(t, 0, pg.Offset)

	pg = parseOn(t, "/?page=-2", 10)
	assert.Equal(t, 1, pg.Page)

	pg = parseOn(t, "/?page=junk", 10)
	assert.Equal(t, 1, pg.Page)
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 0, PageCount(0, 10))
	assert.Equal(t, 1, PageCount(1, 10))
	assert.Equal(t, 1, PageCount(10, 10))
	assert.Equal(t, 2, PageCount(11, 10))
}
