package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rackd/rackd/models"
)

// listCabinetAssignments handles GET /api/v1/cabinet-assignments. An
// optional cabinet query parameter filters by cabinet.
func (s *Server) listCabinetAssignments(c echo.Context) error {
	limit, offset := parsePagination(c)

	assignments, err := s.storage.ListCabinetAssignments(c.QueryParam("cabinet"))
	if err != nil {
		return storageError("cabinet assignments", err)
	}

	views := make([]AssignmentView, 0, len(assignments))
	for i := range assignments {
		view, err := s.renderAssignment(&assignments[i])
		if err != nil {
			return storageError("cabinet assignment", err)
		}
		views = append(views, *view)
	}

	return c.JSON(http.StatusOK, paginate(views, limit, offset))
}

// getCabinetAssignment handles GET /api/v1/cabinet-assignments/:id
func (s *Server) getCabinetAssignment(c echo.Context) error {
	a, err := s.storage.GetCabinetAssignment(c.Param("id"))
	if err != nil {
		return storageError("cabinet assignment", err)
	}

	view, err := s.renderAssignment(a)
	if err != nil {
		return storageError("cabinet assignment", err)
	}

	return c.JSON(http.StatusOK, view)
}

// createCabinetAssignment handles POST /api/v1/cabinet-assignments. A
// device already placed elsewhere answers 409; the losing side of a
// concurrent claim sees the same 409 and may retry after the winning
// placement is removed.
func (s *Server) createCabinetAssignment(c echo.Context) error {
	var req CabinetAssignmentRequest
	if err := s.bindAndValidate(c, &req); err != nil {
		return err
	}

	a := &models.CabinetAssignment{
		CabinetID:   req.CabinetID,
		DeviceID:    req.DeviceID,
		Position:    req.Position,
		Orientation: models.RackOrientation(req.Orientation),
		Depth:       models.RackDepth(req.Depth),
	}

	if err := s.storage.CreateCabinetAssignment(a, s.config.Inventory.EnforceOverlap); err != nil {
		return storageError("cabinet assignment", err)
	}

	view, err := s.renderAssignment(a)
	if err != nil {
		return storageError("cabinet assignment", err)
	}

	s.broadcast(EventDevicePlaced, view)

	return c.JSON(http.StatusCreated, view)
}

// updateCabinetAssignment handles PUT /api/v1/cabinet-assignments/:id
func (s *Server) updateCabinetAssignment(c echo.Context) error {
	a, err := s.storage.GetCabinetAssignment(c.Param("id"))
	if err != nil {
		return storageError("cabinet assignment", err)
	}

	var req CabinetAssignmentRequest
	if err := s.bindAndValidate(c, &req); err != nil {
		return err
	}

	a.CabinetID = req.CabinetID
	a.DeviceID = req.DeviceID
	a.Position = req.Position
	a.Orientation = models.RackOrientation(req.Orientation)
	a.Depth = models.RackDepth(req.Depth)

	if err := s.storage.UpdateCabinetAssignment(a, s.config.Inventory.EnforceOverlap); err != nil {
		return storageError("cabinet assignment", err)
	}

	view, err := s.renderAssignment(a)
	if err != nil {
		return storageError("cabinet assignment", err)
	}

	s.broadcast(EventDevicePlaced, view)

	return c.JSON(http.StatusOK, view)
}

// deleteCabinetAssignment handles DELETE /api/v1/cabinet-assignments/:id
func (s *Server) deleteCabinetAssignment(c echo.Context) error {
	id := c.Param("id")

	if err := s.storage.DeleteCabinetAssignment(id); err != nil {
		return storageError("cabinet assignment", err)
	}

	s.broadcast(EventDeviceUnplaced, map[string]string{"id": id})

	return c.JSON(http.StatusOK, MessageResponse{
		Message: "cabinet assignment deleted successfully",
		ID:      id,
	})
}
