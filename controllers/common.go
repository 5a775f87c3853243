package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"restaurant-manager/services"
	"restaurant-manager/utils"
)

var errInvalidID = errors.New("invalid id parameter")

// parseID membaca path param sebagai id numerik; merespon 400 dan
// mengembalikan false bila bukan angka positif.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		utils.RespondError(c, http.StatusBadRequest, errInvalidID)
		return 0, false
	}
	return uint(id), true
}

// respondFlowError memetakan error dari lapisan service: validasi ke
// 400, sisanya 500.
func respondFlowError(c *gin.Context, err error) {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		utils.RespondError(c, http.StatusBadRequest, verr)
		return
	}
	utils.ErrorLogger.Printf("storage error: %v", err)
	utils.RespondError(c, http.StatusInternalServerError, err)
}
