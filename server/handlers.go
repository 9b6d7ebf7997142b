package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/graphplay/ctxlog"
	"github.com/katalvlaran/graphplay/playback"
)

// GET /health
func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, success(gin.H{
		"status": "healthy",
		"uptime": time.Since(s.started).Round(time.Second).String(),
	}))
}

// GET /api/v1/state
func (s *Server) state(c *gin.Context) {
	c.JSON(http.StatusOK, success(StateOf(s.ctrl)))
}

// GET /api/v1/trace
func (s *Server) trace(c *gin.Context) {
	history, steps := s.ctrl.Ops()
	resp := TraceResponse{
		History: make([]OpDTO, 0, len(history)),
		Steps:   make([]OpDTO, 0, len(steps)),
	}
	for _, op := range history {
		resp.History = append(resp.History, newOpDTO(op))
	}
	for _, op := range steps {
		resp.Steps = append(resp.Steps, newOpDTO(op))
	}
	c.JSON(http.StatusOK, success(resp))
}

// GET /api/v1/algorithms
func (s *Server) algorithms(c *gin.Context) {
	c.JSON(http.StatusOK, success(playback.Algorithms()))
}

// PUT /api/v1/algorithm
func (s *Server) setAlgorithm(c *gin.Context) {
	var req AlgorithmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, err)
		return
	}
	if err := s.ctrl.SetAlgorithm(req.Name); err != nil {
		abort(c, statusOf(err), err)
		return
	}
	c.JSON(http.StatusOK, success(StateOf(s.ctrl)))
}

// PUT /api/v1/interval
func (s *Server) setInterval(c *gin.Context) {
	var req IntervalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, err)
		return
	}
	s.ctrl.SetInterval(time.Duration(req.IntervalMs) * time.Millisecond)
	c.JSON(http.StatusOK, success(StateOf(s.ctrl)))
}

// POST /api/v1/commands/:name
func (s *Server) command(c *gin.Context) {
	cmd, err := playback.ParseCommand(c.Param("name"))
	if err != nil {
		abort(c, statusOf(err), err)
		return
	}
	if err := s.ctrl.Do(cmd); err != nil {
		abort(c, statusOf(err), err)
		return
	}
	ctxlog.FromContext(c.Request.Context()).Debug("command queued", "command", cmd)
	c.JSON(http.StatusAccepted, success(StateOf(s.ctrl)))
}

// GET /api/v1/graph
func (s *Server) graph(c *gin.Context) {
	c.JSON(http.StatusOK, success(GraphResponse{
		Directed: s.store.Directed(),
		Version:  s.store.Version(),
		Selected: s.store.Selected(),
		Vertices: s.store.Vertices(),
		Edges:    s.store.Edges(),
	}))
}

// POST /api/v1/graph/vertices
func (s *Server) addVertex(c *gin.Context) {
	var req VertexRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, err)
		return
	}
	id := s.store.AddVertex(req.X, req.Y)
	c.JSON(http.StatusCreated, success(IDResponse{ID: id}))
}

// DELETE /api/v1/graph/vertices/:id
func (s *Server) removeVertex(c *gin.Context) {
	if err := s.store.RemoveVertex(c.Param("id")); err != nil {
		abort(c, statusOf(err), err)
		return
	}
	c.Status(http.StatusNoContent)
}

// PUT /api/v1/graph/vertices/:id/pin
func (s *Server) pin(c *gin.Context) {
	var req VertexRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, err)
		return
	}
	if err := s.store.Pin(c.Param("id"), req.X, req.Y); err != nil {
		abort(c, statusOf(err), err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DELETE /api/v1/graph/vertices/:id/pin
func (s *Server) unpin(c *gin.Context) {
	if err := s.store.Unpin(c.Param("id")); err != nil {
		abort(c, statusOf(err), err)
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /api/v1/graph/vertices/:id/click
func (s *Server) click(c *gin.Context) {
	eid, created, err := s.store.Click(c.Param("id"))
	if err != nil {
		abort(c, statusOf(err), err)
		return
	}
	c.JSON(http.StatusOK, success(ClickResponse{
		Selected: s.store.Selected(),
		Edge:     eid,
		Created:  created,
	}))
}

// POST /api/v1/graph/edges
func (s *Server) addEdge(c *gin.Context) {
	var req EdgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, err)
		return
	}
	w := s.store.DefaultWeight()
	if req.Weight != nil {
		w = *req.Weight
	}
	eid, err := s.store.AddEdge(req.Source, req.Target, w)
	if err != nil {
		abort(c, statusOf(err), err)
		return
	}
	c.JSON(http.StatusCreated, success(IDResponse{ID: eid}))
}

// DELETE /api/v1/graph/edges/:id
func (s *Server) removeEdge(c *gin.Context) {
	if err := s.store.RemoveEdge(c.Param("id")); err != nil {
		abort(c, statusOf(err), err)
		return
	}
	c.Status(http.StatusNoContent)
}
