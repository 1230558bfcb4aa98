package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"

	"github.com/rackd/rackd/internal/inventory"
	"github.com/rackd/rackd/models"
)

// listCabinets handles GET /api/v1/cabinets. An optional datacenter query
// parameter filters by owning datacenter. List views omit the derived power
// figures; fetch a single cabinet to get them.
func (s *Server) listCabinets(c echo.Context) error {
	limit, offset := parsePagination(c)

	cabinets, err := s.storage.ListCabinets(c.QueryParam("datacenter"))
	if err != nil {
		return storageError("cabinets", err)
	}

	views := make([]CabinetView, 0, len(cabinets))
	for i := range cabinets {
		view, err := s.renderCabinet(&cabinets[i], false)
		if err != nil {
			return storageError("cabinet", err)
		}
		views = append(views, *view)
	}

	return c.JSON(http.StatusOK, paginate(views, limit, offset))
}

// getCabinet handles GET /api/v1/cabinets/:id. The detail view carries the
// cabinet's power supply, allocation and headroom, derived from the current
// assignments on every read.
func (s *Server) getCabinet(c echo.Context) error {
	cab, err := s.storage.GetCabinet(c.Param("id"))
	if err != nil {
		return storageError("cabinet", err)
	}

	view, err := s.renderCabinet(cab, true)
	if err != nil {
		return storageError("cabinet", err)
	}

	return c.JSON(http.StatusOK, view)
}

// listCabinetDevices handles GET /api/v1/cabinets/:id/devices, returning the
// cabinet's placements ordered by position.
func (s *Server) listCabinetDevices(c echo.Context) error {
	id := c.Param("id")

	if _, err := s.storage.GetCabinet(id); err != nil {
		return storageError("cabinet", err)
	}

	assigned, err := s.storage.CabinetDevices(id)
	if err != nil {
		return storageError("cabinet devices", err)
	}

	views := make([]AssignedDeviceView, 0, len(assigned))
	for i := range assigned {
		view, err := s.renderAssignment(&assigned[i].Assignment)
		if err != nil {
			return storageError("cabinet devices", err)
		}
		views = append(views, AssignedDeviceView{
			Assignment: *view,
			RackUnits:  assigned[i].Device.RackUnits(),
			Draw:       assigned[i].Device.Draw(),
		})
	}

	return c.JSON(http.StatusOK, views)
}

// createCabinet handles POST /api/v1/cabinets
func (s *Server) createCabinet(c echo.Context) error {
	var req CabinetRequest
	if err := s.bindAndValidate(c, &req); err != nil {
		return err
	}

	cab := &models.Cabinet{
		Name:         req.Name,
		DatacenterID: req.DatacenterID,
		RackUnits:    req.RackUnits,
		Depth:        req.Depth,
		Width:        req.Width,
		Attachment:   models.CabinetAttachment(req.Attachment),
		Fasteners:    models.CabinetFastener(req.Fasteners),
	}

	if err := s.storage.CreateCabinet(cab); err != nil {
		return storageError("cabinet", err)
	}

	view, err := s.renderCabinet(cab, false)
	if err != nil {
		return storageError("cabinet", err)
	}

	s.broadcast(EventCabinetCreated, view)

	return c.JSON(http.StatusCreated, view)
}

// updateCabinet handles PUT /api/v1/cabinets/:id
func (s *Server) updateCabinet(c echo.Context) error {
	cab, err := s.storage.GetCabinet(c.Param("id"))
	if err != nil {
		return storageError("cabinet", err)
	}

	var req CabinetRequest
	if err := s.bindAndValidate(c, &req); err != nil {
		return err
	}

	cab.Name = req.Name
	cab.DatacenterID = req.DatacenterID
	cab.RackUnits = req.RackUnits
	cab.Depth = req.Depth
	cab.Width = req.Width
	cab.Attachment = models.CabinetAttachment(req.Attachment)
	cab.Fasteners = models.CabinetFastener(req.Fasteners)

	if err := s.storage.UpdateCabinet(cab); err != nil {
		return storageError("cabinet", err)
	}

	view, err := s.renderCabinet(cab, false)
	if err != nil {
		return storageError("cabinet", err)
	}

	s.broadcast(EventCabinetUpdated, view)

	return c.JSON(http.StatusOK, view)
}

// deleteCabinet handles DELETE /api/v1/cabinets/:id. The cabinet's
// assignments are removed with it; the devices survive unplaced.
func (s *Server) deleteCabinet(c echo.Context) error {
	id := c.Param("id")

	if err := s.storage.DeleteCabinet(id); err != nil {
		return storageError("cabinet", err)
	}

	s.broadcast(EventCabinetDeleted, map[string]string{"id": id})

	return c.JSON(http.StatusOK, MessageResponse{
		Message: "cabinet deleted successfully",
		ID:      id,
	})
}

// exportCabinet handles GET /api/v1/cabinets/:id/export, producing an xlsx
// rack sheet: one row per placement plus a power summary.
func (s *Server) exportCabinet(c echo.Context) error {
	cab, err := s.storage.GetCabinet(c.Param("id"))
	if err != nil {
		return storageError("cabinet", err)
	}

	assigned, err := s.storage.CabinetDevices(cab.ID)
	if err != nil {
		return storageError("cabinet devices", err)
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := "Rack Sheet"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return InternalError("failed to build export", err.Error())
	}

	headers := []string{"Position", "Device", "Type", "Serial", "Rack Units", "Orientation", "Depth", "Draw (W)"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return InternalError("failed to build export", err.Error())
		}
	}

	devices := make([]models.ResolvedDevice, 0, len(assigned))
	for row, ad := range assigned {
		devices = append(devices, ad.Device)
		values := []interface{}{
			ad.Assignment.Position,
			ad.Device.DisplayName(),
			string(ad.Device.Type),
			ad.Device.Details().Serial,
			ad.Device.RackUnits(),
			string(ad.Assignment.Orientation),
			string(ad.Assignment.Depth),
			ad.Device.Draw(),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return InternalError("failed to build export", err.Error())
			}
		}
	}

	summary := inventory.CabinetPower(devices)
	summaryRow := len(assigned) + 3
	summaryLines := []struct {
		label string
		value int
	}{
		{"Power supply (W)", summary.Power},
		{"Power allocated (W)", summary.PowerAllocated},
		{"Power available (W)", summary.PowerAvailable},
	}
	for i, line := range summaryLines {
		if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", summaryRow+i), line.label); err != nil {
			return InternalError("failed to build export", err.Error())
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", summaryRow+i), line.value); err != nil {
			return InternalError("failed to build export", err.Error())
		}
	}

	c.Response().Header().Set(echo.HeaderContentType,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s.xlsx"`, cab.Name))
	c.Response().WriteHeader(http.StatusOK)

	if err := f.Write(c.Response()); err != nil {
		return InternalError("failed to write export", err.Error())
	}
	return nil
}
