package mazeapi

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
)

var errorStatuses = []struct {
	err    error
	status int
}{
	{i.ErrMazeNotFound, http.StatusNotFound},
	{maze.ErrInvalidDimensions, http.StatusBadRequest},
	{service.ErrMazeTooLarge, http.StatusBadRequest},
	{maze.ErrOutOfBounds, http.StatusBadRequest},
	{maze.ErrOnExteriorBoundary, http.StatusBadRequest},
	{maze.ErrNotAdjacent, http.StatusBadRequest},
	{maze.ErrSamePosition, http.StatusBadRequest},
	{maze.ErrCannotMove, http.StatusBadRequest},
	{maze.ErrSameStartEnd, http.StatusConflict},
	{maze.ErrUnsolvable, http.StatusConflict},
	{maze.ErrDuplicateWall, http.StatusConflict},
	{maze.ErrWallNotFound, http.StatusNotFound},
	{maze.ErrWouldMakeUnsolvable, http.StatusConflict},
}

// statusFor maps a service error to the HTTP status reported to the client.
func statusFor(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// abortWithError writes err as a JSON body. Internal errors are not echoed back.
func abortWithError(ctx *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		ctx.JSON(status, gin.H{"error": "internal error"})
		return
	}
	ctx.JSON(status, gin.H{"error": err.Error()})
}
