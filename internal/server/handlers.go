package server

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/wayfinder/internal/render"
	"github.com/katalvlaran/wayfinder/routes"
)

// ErrorResponse is the JSON body of every failed /api request.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type pathQuery struct {
	Start string `form:"start" binding:"required"`
	End   string `form:"end" binding:"required"`
}

type startQuery struct {
	Start string `form:"start" binding:"required"`
}

type reachableQuery struct {
	Start   string `form:"start" binding:"required"`
	MaxHops int    `form:"max_hops" binding:"gte=0"`
}

// errorStatus maps service errors to an HTTP status and a stable code.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, routes.ErrNodeNotFound):
		return http.StatusNotFound, "LOCATION_NOT_FOUND"
	case errors.Is(err, routes.ErrNoPathFound):
		return http.StatusNotFound, "NO_PATH"
	case errors.Is(err, routes.ErrNoReachableDestination):
		return http.StatusNotFound, "NO_DESTINATION"
	case errors.Is(err, render.ErrMissingInput):
		return http.StatusBadRequest, "INVALID_REQUEST"
	default:
		return http.StatusInternalServerError, "INTERNAL"
	}
}

func (s *Server) fail(c *gin.Context, err error) {
	status, code := errorStatus(err)
	if status >= http.StatusInternalServerError {
		s.log.WithError(err).WithField("request_id", c.GetString(requestIDHeader)).Error("request error")
	}
	c.JSON(status, ErrorResponse{Error: err.Error(), Code: code})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "INVALID_REQUEST"})
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "locations": s.svc.Stats().Locations})
}

func (s *Server) stats(c *gin.Context) {
	c.JSON(http.StatusOK, s.svc.Stats())
}

func (s *Server) locations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"locations": s.svc.Locations()})
}

func (s *Server) path(c *gin.Context) {
	var q pathQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	r, err := s.svc.Route(q.Start, q.End)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (s *Server) furthest(c *gin.Context) {
	var q startQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	d, err := s.svc.Furthest(q.Start)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (s *Server) reachable(c *gin.Context) {
	var q reachableQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	hops, err := s.svc.Reachable(c.Request.Context(), q.Start, q.MaxHops)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"start": q.Start, "reachable": hops})
}

func (s *Server) reloadGraph(c *gin.Context) {
	if s.reload == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "reload is not configured", Code: "RELOAD_DISABLED"})
		return
	}
	stats, err := s.reload(c.Request.Context())
	if err != nil {
		s.log.WithError(err).Warn("reload via api failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error(), Code: "RELOAD_FAILED"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// writeHTML buffers the fragment and only then writes status and body.
func (s *Server) writeHTML(c *gin.Context, status int, fn func(*bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		s.log.WithError(err).Error("render failed")
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

func (s *Server) pathPrompt(c *gin.Context) {
	s.writeHTML(c, http.StatusOK, func(b *bytes.Buffer) error { return render.PathPrompt(b) })
}

func (s *Server) furthestPrompt(c *gin.Context) {
	s.writeHTML(c, http.StatusOK, func(b *bytes.Buffer) error { return render.FurthestPrompt(b) })
}

func (s *Server) pathHTML(c *gin.Context) {
	start, end := c.Query("start"), c.Query("end")

	var (
		r   *routes.Route
		err error
	)
	if start == "" || end == "" {
		err = render.ErrMissingInput
	} else {
		r, err = s.svc.Route(start, end)
	}

	status := http.StatusOK
	if err != nil {
		status, _ = errorStatus(err)
	}
	s.writeHTML(c, status, func(b *bytes.Buffer) error { return render.PathResponse(b, start, end, r, err) })
}

func (s *Server) furthestHTML(c *gin.Context) {
	start := c.Query("start")

	var (
		d   *routes.Destination
		err error
	)
	if start == "" {
		err = render.ErrMissingInput
	} else {
		d, err = s.svc.Furthest(start)
	}

	status := http.StatusOK
	if err != nil {
		status, _ = errorStatus(err)
	}
	s.writeHTML(c, status, func(b *bytes.Buffer) error { return render.FurthestResponse(b, start, d, err) })
}
