// Package server exposes the calculation over HTTP: download the default
// parameter file, upload an edited one, get results back in any format.
package server

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"dampedfilter"
	"dampedfilter/internal/params"
	"dampedfilter/internal/report"
)

const (
	runIDHeader = "X-Run-ID"

	// room for multipart boundaries and part headers around the file
	multipartOverhead = 4 << 10
)

// Handler serves calculation requests. It keeps no state between requests.
type Handler struct {
	log       logrus.FieldLogger
	maxUpload int64
}

func NewHandler(log logrus.FieldLogger, maxUpload int64) *Handler {
	return &Handler{log: log, maxUpload: maxUpload}
}

// NewRouter wires the routes onto a fresh gin engine.
func NewRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(h.runID())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.GET("/parameters", h.DefaultParameters)
		api.POST("/calculate", h.Calculate)
		api.POST("/results/:format", h.Results)
	}

	return router
}

func (h *Handler) runID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.New().String()
		c.Set("run_id", id)
		c.Header(runIDHeader, id)
		c.Next()

		h.entry(c).WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.FullPath(),
			"status": c.Writer.Status(),
		}).Info("request")
	}
}

func (h *Handler) entry(c *gin.Context) *logrus.Entry {
	return h.log.WithField("run_id", c.GetString("run_id"))
}

func attachment(c *gin.Context, name, contentType string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, contentType, data)
}

// DefaultParameters sends the default parameters.txt.
func (h *Handler) DefaultParameters(c *gin.Context) {
	attachment(c, "parameters.txt", "text/plain; charset=utf-8", params.Default())
}

// solve reads the uploaded "file" field and runs the calculation. On failure
// it has already written the error response.
func (h *Handler) solve(c *gin.Context) (*params.File, *dampedfilter.Solution, bool) {
	tooLarge := func() (*params.File, *dampedfilter.Solution, bool) {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": fmt.Sprintf("file larger than %d bytes", h.maxUpload)})
		return nil, nil, false
	}

	limit := h.maxUpload + multipartOverhead
	if c.Request.ContentLength > limit {
		return tooLarge()
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)

	header, err := c.FormFile("file")
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			return tooLarge()
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file provided"})
		return nil, nil, false
	}
	if header.Size > h.maxUpload {
		return tooLarge()
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read upload"})
		return nil, nil, false
	}
	defer file.Close()

	pf, err := params.Load(io.LimitReader(file, h.maxUpload))
	if err != nil {
		h.entry(c).WithError(err).Warn("rejected parameter file")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, nil, false
	}
	for _, key := range pf.Unknown {
		h.entry(c).WithField("key", key).Warn("unknown parameter ignored")
	}

	s, err := dampedfilter.Calculate(pf.Parameters)
	if err != nil {
		status := http.StatusUnprocessableEntity
		var verr *dampedfilter.ValidationError
		if errors.As(err, &verr) {
			status = http.StatusBadRequest
		}
		h.entry(c).WithError(err).Warn("calculation failed")
		c.JSON(status, gin.H{"error": err.Error()})
		return nil, nil, false
	}

	return pf, s, true
}

// Calculate returns the loaded parameters and formatted results as JSON.
func (h *Handler) Calculate(c *gin.Context) {
	pf, s, ok := h.solve(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"run_id":     c.GetString("run_id"),
		"encoding":   pf.Encoding,
		"parameters": pf.Parameters,
		"results":    s.Results(),
	})
}

// Results returns the results rendered in the requested format as a download.
func (h *Handler) Results(c *gin.Context) {
	format, err := report.ParseFormat(c.Param("format"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	_, s, ok := h.solve(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := report.Write(&buf, format, s); err != nil {
		h.entry(c).WithError(err).WithField("format", format).Error("rendering failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "rendering failed"})
		return
	}

	attachment(c, format.FileName(), format.ContentType(), buf.Bytes())
}
