package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rackd/rackd/models"
)

// listDatacenters handles GET /api/v1/datacenters
func (s *Server) listDatacenters(c echo.Context) error {
	limit, offset := parsePagination(c)

	datacenters, err := s.storage.ListDatacenters()
	if err != nil {
		return storageError("datacenters", err)
	}

	return c.JSON(http.StatusOK, paginate(datacenters, limit, offset))
}

// getDatacenter handles GET /api/v1/datacenters/:id
func (s *Server) getDatacenter(c echo.Context) error {
	dc, err := s.storage.GetDatacenter(c.Param("id"))
	if err != nil {
		return storageError("datacenter", err)
	}

	return c.JSON(http.StatusOK, dc)
}

// createDatacenter handles POST /api/v1/datacenters
func (s *Server) createDatacenter(c echo.Context) error {
	var req DatacenterRequest
	if err := s.bindAndValidate(c, &req); err != nil {
		return err
	}

	dc := &models.Datacenter{
		Name:     req.Name,
		Vendor:   req.Vendor,
		Address:  req.Address,
		NOCPhone: req.NOCPhone,
		NOCEmail: req.NOCEmail,
		NOCURL:   req.NOCURL,
	}

	if err := s.storage.CreateDatacenter(dc); err != nil {
		return storageError("datacenter", err)
	}

	s.broadcast(EventDatacenterCreated, dc)

	return c.JSON(http.StatusCreated, dc)
}

// updateDatacenter handles PUT /api/v1/datacenters/:id
func (s *Server) updateDatacenter(c echo.Context) error {
	dc, err := s.storage.GetDatacenter(c.Param("id"))
	if err != nil {
		return storageError("datacenter", err)
	}

	var req DatacenterRequest
	if err := s.bindAndValidate(c, &req); err != nil {
		return err
	}

	dc.Name = req.Name
	dc.Vendor = req.Vendor
	dc.Address = req.Address
	dc.NOCPhone = req.NOCPhone
	dc.NOCEmail = req.NOCEmail
	dc.NOCURL = req.NOCURL

	if err := s.storage.UpdateDatacenter(dc); err != nil {
		return storageError("datacenter", err)
	}

	s.broadcast(EventDatacenterUpdated, dc)

	return c.JSON(http.StatusOK, dc)
}

// deleteDatacenter handles DELETE /api/v1/datacenters/:id. Deletion is
// blocked with 409 while the datacenter still hosts cabinets.
func (s *Server) deleteDatacenter(c echo.Context) error {
	id := c.Param("id")

	if err := s.storage.DeleteDatacenter(id); err != nil {
		return storageError("datacenter", err)
	}

	s.broadcast(EventDatacenterDeleted, map[string]string{"id": id})

	return c.JSON(http.StatusOK, MessageResponse{
		Message: "datacenter deleted successfully",
		ID:      id,
	})
}
