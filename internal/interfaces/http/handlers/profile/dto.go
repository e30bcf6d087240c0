package profile

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"caseline/internal/domain/records"
	"caseline/internal/shared/errors"
)

// bindRecord decodes the request body as a loose field record. Profiles carry
// role-dependent field sets, so there is no fixed request struct; field-level
// restrictions happen in the use cases.
func bindRecord(c *gin.Context) (records.Record, error) {
	var rec records.Record
	if err := c.ShouldBindJSON(&rec); err != nil {
		return nil, errors.NewBadRequestError("Invalid request body", err.Error())
	}
	if rec == nil {
		rec = records.Record{}
	}
	return rec, nil
}

func parseProfileID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, errors.NewBadRequestError("Invalid profile ID")
	}
	return uint(id), nil
}
