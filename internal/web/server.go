package web

import (
	"bytes"
	_ "embed"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mazepath/internal/config"
	"mazepath/internal/logging"
	"mazepath/internal/maze"
	"mazepath/internal/model"
	"mazepath/internal/render"
)

// maxCells bounds the size of a maze a single request may ask for.
const maxCells = 200 * 200

// maxPixels bounds the decorated PNG, arrow columns included.
const maxPixels = 4 << 20

//go:embed static/index.html
var indexHTML []byte

// NewRouter builds the read-only viewer routes. Every request carves and
// solves its own maze; nothing is shared between requests.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
	})
	r.GET("/api/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"version": model.Version})
	})
	r.GET("/api/maze", func(c *gin.Context) {
		s, ok := buildSession(c, cfg)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, s.Snapshot())
	})
	r.GET("/api/maze.png", func(c *gin.Context) {
		s, ok := buildSession(c, cfg)
		if !ok {
			return
		}
		tile, err := intQuery(c, "tile", cfg.Tile)
		if err != nil || tile < 1 || tile > 64 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "tile must be between 1 and 64"})
			return
		}
		g := s.Grid()
		if (g.Cols()+2)*tile*g.Rows()*tile > maxPixels {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("image would exceed %d pixels, use a smaller tile or maze", maxPixels),
			})
			return
		}
		gradient := c.Query("gradient") != ""
		var buf bytes.Buffer
		if err := render.WritePNG(&buf, s.Snapshot(), tile, render.DefaultPalette, gradient); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Data(http.StatusOK, "image/png", buf.Bytes())
	})
	return r
}

// buildSession creates the maze described by the request's cols, rows, seed
// and ticks parameters. Without ticks the maze is run to completion;
// otherwise it is stopped after that many ticks, mid-animation. Writes an
// error response and returns false on bad input.
func buildSession(c *gin.Context, cfg config.Config) (*maze.Session, bool) {
	cols, err := intQuery(c, "cols", cfg.Cols())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	rows, err := intQuery(c, "rows", cfg.Rows())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	if cols < 1 || rows < 1 || cols > maxCells || rows > maxCells || cols*rows > maxCells {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("maze must have between 1 and %d cells", maxCells),
		})
		return nil, false
	}
	seed, err := strconv.ParseInt(c.DefaultQuery("seed", strconv.FormatInt(cfg.Seed, 10)), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid seed"})
		return nil, false
	}
	ticks, err := intQuery(c, "ticks", -1)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	s, err := maze.NewSeededSession(cols, rows, seed)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	if ticks < 0 {
		err = s.Finish()
	} else {
		for i := 0; i < ticks && s.Phase() != maze.PhaseSolved && err == nil; i++ {
			err = s.Tick()
		}
	}
	if err != nil {
		logging.Log.WithError(err).Error("maze generation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, false
	}
	return s, true
}

func intQuery(c *gin.Context, name string, defaultValue int) (int, error) {
	v := c.Query(name)
	if v == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, v)
	}
	return n, nil
}

// StartServer serves the viewer until the listener fails.
func StartServer(cfg config.Config) error {
	fmt.Printf("Starting mazepath web server at http://localhost%s\n", cfg.Addr)
	logging.Log.WithField("addr", cfg.Addr).Info("web server listening")
	return NewRouter(cfg).Run(cfg.Addr)
}
