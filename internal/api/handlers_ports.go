package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rackd/rackd/models"
)

// listPortAssignments handles GET /api/v1/port-assignments. An optional
// device query parameter filters by owning device.
func (s *Server) listPortAssignments(c echo.Context) error {
	limit, offset := parsePagination(c)

	ports, err := s.storage.ListPortAssignments(c.QueryParam("device"))
	if err != nil {
		return storageError("port assignments", err)
	}

	return c.JSON(http.StatusOK, paginate(ports, limit, offset))
}

// getPortAssignment handles GET /api/v1/port-assignments/:id
func (s *Server) getPortAssignment(c echo.Context) error {
	p, err := s.storage.GetPortAssignment(c.Param("id"))
	if err != nil {
		return storageError("port assignment", err)
	}

	return c.JSON(http.StatusOK, p)
}

// createPortAssignment handles POST /api/v1/port-assignments. The owning
// device must be port-bearing and both port numbers must be in range (400);
// a port already carrying a cable answers 409.
func (s *Server) createPortAssignment(c echo.Context) error {
	var req PortAssignmentRequest
	if err := s.bindAndValidate(c, &req); err != nil {
		return err
	}

	p := &models.PortAssignment{
		DeviceID:            req.DeviceID,
		DevicePort:          req.DevicePort,
		ConnectedDeviceID:   req.ConnectedDeviceID,
		ConnectedDevicePort: req.ConnectedDevicePort,
	}

	if err := s.storage.CreatePortAssignment(p); err != nil {
		return storageError("port assignment", err)
	}

	s.broadcast(EventPortConnected, p)

	return c.JSON(http.StatusCreated, p)
}

// updatePortAssignment handles PUT /api/v1/port-assignments/:id
func (s *Server) updatePortAssignment(c echo.Context) error {
	p, err := s.storage.GetPortAssignment(c.Param("id"))
	if err != nil {
		return storageError("port assignment", err)
	}

	var req PortAssignmentRequest
	if err := s.bindAndValidate(c, &req); err != nil {
		return err
	}

	p.DeviceID = req.DeviceID
	p.DevicePort = req.DevicePort
	p.ConnectedDeviceID = req.ConnectedDeviceID
	p.ConnectedDevicePort = req.ConnectedDevicePort

	if err := s.storage.UpdatePortAssignment(p); err != nil {
		return storageError("port assignment", err)
	}

	s.broadcast(EventPortConnected, p)

	return c.JSON(http.StatusOK, p)
}

// deletePortAssignment handles DELETE /api/v1/port-assignments/:id
func (s *Server) deletePortAssignment(c echo.Context) error {
	id := c.Param("id")

	if err := s.storage.DeletePortAssignment(id); err != nil {
		return storageError("port assignment", err)
	}

	s.broadcast(EventPortDisconnected, map[string]string{"id": id})

	return c.JSON(http.StatusOK, MessageResponse{
		Message: "port assignment deleted successfully",
		ID:      id,
	})
}
