package mazeapi

import (
	"context"
	"net/http"
	"strconv"

	"github.com/beka-birhanu/vinom-maze/api/identity"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MazeController serves maze reads publicly and mutations to edit token holders.
type MazeController struct {
	mazeService i.MazeService
}

// NewMazeController initializes a MazeController.
func NewMazeController(ms i.MazeService) *MazeController {
	return &MazeController{
		mazeService: ms,
	}
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.create)
		mazes.GET("/:ID", mc.get)
		mazes.GET("/:ID/solution", mc.solution)
		mazes.GET("/:ID/events", mc.events)
	}
}

// RegisterProtected registers routes that require an edit token scoped to the maze.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	mazes.Use(identity.RequireMazeScope())
	{
		mazes.POST("/:ID/walls", mc.addWall)
		mazes.DELETE("/:ID/walls", mc.removeWall)
		mazes.PUT("/:ID/start", mc.moveStart)
		mazes.PUT("/:ID/end", mc.moveEnd)
		mazes.POST("/:ID/flip", mc.flip)
		mazes.DELETE("/:ID", mc.delete)
	}
}

// create handles maze creation requests.
func (mc *MazeController) create(ctx *gin.Context) {
	var request CreateMazeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	walls := make([]maze.Wall, 0, len(request.Walls))
	for _, w := range request.Walls {
		wall, err := w.wall()
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		walls = append(walls, wall)
	}

	record, token, err := mc.mazeService.Create(ctx, i.CreateMaze{
		Width:  request.Width,
		Height: request.Height,
		Start:  request.Start.position(),
		End:    request.End.position(),
		Walls:  walls,
	})
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, &CreateMazeResponse{
		ID:        record.ID,
		EditToken: token,
		Maze:      newMazeResponse(record),
	})
}

// get returns the current state of a maze.
func (mc *MazeController) get(ctx *gin.Context) {
	id, ok := mazeID(ctx)
	if !ok {
		return
	}

	record, err := mc.mazeService.Get(ctx, id)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newMazeResponse(record))
}

// solution returns a shortest path through a maze.
func (mc *MazeController) solution(ctx *gin.Context) {
	id, ok := mazeID(ctx)
	if !ok {
		return
	}

	record, path, err := mc.mazeService.Solve(ctx, id)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, &SolutionResponse{
		ID:      record.ID,
		Version: record.Version,
		Length:  len(path),
		Path:    path,
		ASCII:   record.Maze.Render(path),
	})
}

// events returns the recent history of a maze.
func (mc *MazeController) events(ctx *gin.Context) {
	id, ok := mazeID(ctx)
	if !ok {
		return
	}

	var limit int64
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	events, err := mc.mazeService.Events(ctx, id, limit)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, &EventsResponse{ID: id, Events: events})
}

// addWall places a wall.
func (mc *MazeController) addWall(ctx *gin.Context) {
	mc.wallChange(ctx, mc.mazeService.AddWall)
}

// removeWall removes a wall.
func (mc *MazeController) removeWall(ctx *gin.Context) {
	mc.wallChange(ctx, mc.mazeService.RemoveWall)
}

func (mc *MazeController) wallChange(ctx *gin.Context, change func(ctx context.Context, id uuid.UUID, w maze.Wall) (*i.MazeRecord, error)) {
	id, ok := mazeID(ctx)
	if !ok {
		return
	}

	var request WallRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	wall, err := request.wall()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := change(ctx, id, wall)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newMazeResponse(record))
}

// moveStart moves the start cell.
func (mc *MazeController) moveStart(ctx *gin.Context) {
	mc.positionChange(ctx, mc.mazeService.MoveStart)
}

// moveEnd moves the end cell.
func (mc *MazeController) moveEnd(ctx *gin.Context) {
	mc.positionChange(ctx, mc.mazeService.MoveEnd)
}

func (mc *MazeController) positionChange(ctx *gin.Context, change func(ctx context.Context, id uuid.UUID, p maze.Position) (*i.MazeRecord, error)) {
	id, ok := mazeID(ctx)
	if !ok {
		return
	}

	var request PositionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := change(ctx, id, request.position())
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newMazeResponse(record))
}

// flip swaps the start and end cells.
func (mc *MazeController) flip(ctx *gin.Context) {
	id, ok := mazeID(ctx)
	if !ok {
		return
	}

	record, err := mc.mazeService.Flip(ctx, id)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newMazeResponse(record))
}

// delete removes a maze.
func (mc *MazeController) delete(ctx *gin.Context) {
	id, ok := mazeID(ctx)
	if !ok {
		return
	}

	if err := mc.mazeService.Delete(ctx, id); err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// mazeID parses the ID path parameter, answering 400 when it is not a UUID.
func mazeID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return uuid.Nil, false
	}
	return id, true
}
