// Command pathserver exposes gridpath searches over HTTP as a demo
// surface for frontends and quick experiments. The core library stays
// synchronous and transport-free; this binary builds one Graph per
// request, so concurrent requests never share search state.
package main

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/gridgen"
)

const listenAddr = ":8080"

// PathRequest describes one search: a weight matrix (0 = impassable),
// start/end coordinates as (row, column), and search options.
type PathRequest struct {
	Grid      [][]float64 `json:"grid" binding:"required"`
	StartX    int         `json:"startX"`
	StartY    int         `json:"startY"`
	EndX      int         `json:"endX"`
	EndY      int         `json:"endY"`
	Diagonal  bool        `json:"diagonal"`
	Heuristic string      `json:"heuristic"` // "manhattan" (default) or "octile"
	Closest   bool        `json:"closest"`
}

// PathNode mirrors one path cell with its resulting search-state fields.
type PathNode struct {
	X      int     `json:"x"`
	Y      int     `json:"y"`
	Weight float64 `json:"weight"`
	G      float64 `json:"g"`
	H      float64 `json:"h"`
	F      float64 `json:"f"`
}

// PathResponse is the search outcome sent back to the client.
type PathResponse struct {
	Path            []PathNode `json:"path"`
	Cost            float64    `json:"cost"`
	Found           bool       `json:"found"`
	ExecutionTimeMs float64    `json:"executionTimeMs"`
}

// CORSMiddleware mirrors the permissive headers a demo frontend needs.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept, Origin")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// resolveHeuristic maps a request's heuristic name onto a function.
func resolveHeuristic(name string) (astar.Heuristic, bool) {
	switch name {
	case "", "manhattan":
		return astar.Manhattan, true
	case "octile":
		return astar.Octile, true
	default:
		return nil, false
	}
}

// pathHandler runs one search over the submitted grid.
func pathHandler(c *gin.Context) {
	var req PathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	h, ok := resolveHeuristic(req.Heuristic)
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "unknown heuristic: " + req.Heuristic})
		return
	}

	var gridOpts []grid.Option
	if req.Diagonal {
		gridOpts = append(gridOpts, grid.WithDiagonal())
	}
	g, err := grid.New(req.Grid, gridOpts...)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start, ok := g.NodeAt(req.StartX, req.StartY)
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "start coordinates out of bounds"})
		return
	}
	end, ok := g.NodeAt(req.EndX, req.EndY)
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "end coordinates out of bounds"})
		return
	}

	searchOpts := []astar.Option{astar.WithHeuristic(h)}
	if req.Closest {
		searchOpts = append(searchOpts, astar.WithClosest())
	}

	startTime := time.Now()
	path, err := astar.Search(g, start, end, searchOpts...)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := PathResponse{
		Path:            make([]PathNode, 0, len(path)),
		Cost:            astar.Cost(path),
		Found:           len(path) > 0 || start == end,
		ExecutionTimeMs: float64(time.Since(startTime).Microseconds()) / 1000.0,
	}
	for _, n := range path {
		resp.Path = append(resp.Path, PathNode{
			X: n.X, Y: n.Y, Weight: n.Weight, G: n.G, H: n.H, F: n.F,
		})
	}

	c.IndentedJSON(http.StatusOK, resp)
}

// terrainHandler serves a generated demo grid.
func terrainHandler(c *gin.Context) {
	rows, err := strconv.Atoi(c.DefaultQuery("rows", "32"))
	if err != nil || rows < 1 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "rows must be a positive integer"})
		return
	}
	cols, err := strconv.Atoi(c.DefaultQuery("cols", "32"))
	if err != nil || cols < 1 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "cols must be a positive integer"})
		return
	}
	seed, err := strconv.ParseInt(c.DefaultQuery("seed", "42"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "seed must be an integer"})
		return
	}

	m, err := gridgen.Terrain(rows, cols, seed, 0.1, 5)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"grid": m, "rows": rows, "cols": cols, "seed": seed})
}

func main() {
	router := gin.Default()
	router.Use(CORSMiddleware())

	router.POST("/api/path", pathHandler)
	router.GET("/api/terrain", terrainHandler)

	log.Printf("[INFO] pathserver listening on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatalf("[FATAL] pathserver: %v", err)
	}
}
