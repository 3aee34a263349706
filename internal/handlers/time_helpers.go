package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bookmycut/salon-scheduler/internal/domain/booking"
	"github.com/bookmycut/salon-scheduler/internal/httperr"
)

const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, time.Local)
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// parsePageQuery reads ?page= and ?size=; absent or invalid values yield an
// unpaginated request. Pages are 1-based across the API.
func parsePageQuery(c *gin.Context) booking.PageRequest {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "0"))
	if page < 1 {
		page = 1
	}
	return booking.PageRequest{Page: page, Size: size}
}

// fetchByID loads dest by primary key. A missing row writes 404 with the
// given code; any other database failure writes 500. Returns false when a
// response was already written.
func fetchByID(c *gin.Context, db *gorm.DB, dest any, id uint, code, message string) bool {
	if err := db.First(dest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, code, message)
		} else {
			httperr.FromError(c, err)
		}
		return false
	}
	return true
}
