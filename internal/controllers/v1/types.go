package v1

import (
	"time"

	"github.com/budgetbook/backend/internal/httputil"
	bb_uuid "github.com/budgetbook/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type URIID struct {
	ID bb_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type QueryMonth struct {
	Month time.Time `form:"month" time_format:"2006-01" time_utc:"1" example:"2025-06"` // Year and month in YYYY-MM format
}

type QueryWindow struct {
	Months int `form:"months"` // Number of months to aggregate over
}

// requestOwner returns the owner the request acts for, taken from the
// X-Owner-ID header. Requests without the header act for the nil owner.
func requestOwner(c *gin.Context) (uuid.UUID, error) {
	return httputil.UUIDFromString(c.GetHeader("X-Owner-ID"))
}
