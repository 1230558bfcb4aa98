package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rackd/rackd/models"
)

func detailsFromRequest(req DeviceDetailsRequest) models.DeviceDetails {
	return models.DeviceDetails{
		Manufacturer: req.Manufacturer,
		Model:        req.Model,
		Serial:       req.Serial,
		AssetID:      req.AssetID,
		AssetTag:     req.AssetTag,
		RackUnits:    req.RackUnits,
		Draw:         req.Draw,
	}
}

// listServers handles GET /api/v1/servers
func (s *Server) listServers(c echo.Context) error {
	limit, offset := parsePagination(c)

	servers, err := s.storage.ListServers()
	if err != nil {
		return storageError("servers", err)
	}

	views := make([]ServerView, 0, len(servers))
	for i := range servers {
		view, err := s.renderServer(&servers[i], false)
		if err != nil {
			return storageError("server", err)
		}
		views = append(views, *view)
	}

	return c.JSON(http.StatusOK, paginate(views, limit, offset))
}

// getServer handles GET /api/v1/servers/:id. The detail view resolves the
// server's location plus its power strips and switch uplinks through the
// cable graph.
func (s *Server) getServer(c echo.Context) error {
	srv, err := s.storage.GetServer(c.Param("id"))
	if err != nil {
		return storageError("server", err)
	}

	view, err := s.renderServer(srv, true)
	if err != nil {
		return storageError("server", err)
	}

	return c.JSON(http.StatusOK, view)
}

// createServer handles POST /api/v1/servers
func (s *Server) createServer(c echo.Context) error {
	var req ServerRequest
	if err := s.bindAndValidate(c, &req); err != nil {
		return err
	}

	srv := &models.Server{
		DeviceDetails: detailsFromRequest(req.DeviceDetailsRequest),
		Memory:        req.Memory,
		Cores:         req.Cores,
	}

	if err := s.storage.CreateServer(srv); err != nil {
		return storageError("server", err)
	}

	view, err := s.renderServer(srv, false)
	if err != nil {
		return storageError("server", err)
	}

	s.broadcast(EventDeviceCreated, view)

	return c.JSON(http.StatusCreated, view)
}

// updateServer handles PUT /api/v1/servers/:id
func (s *Server) updateServer(c echo.Context) error {
	srv, err := s.storage.GetServer(c.Param("id"))
	if err != nil {
		return storageError("server", err)
	}

	var req ServerRequest
	if err := s.bindAndValidate(c, &req); err != nil {
		return err
	}

	srv.DeviceDetails = detailsFromRequest(req.DeviceDetailsRequest)
	srv.Memory = req.Memory
	srv.Cores = req.Cores

	if err := s.storage.UpdateServer(srv); err != nil {
		return storageError("server", err)
	}

	view, err := s.renderServer(srv, false)
	if err != nil {
		return storageError("server", err)
	}

	s.broadcast(EventDeviceUpdated, view)

	return c.JSON(http.StatusOK, view)
}

// deleteServer handles DELETE /api/v1/servers/:id
func (s *Server) deleteServer(c echo.Context) error {
	id := c.Param("id")

	if err := s.storage.DeleteServer(id); err != nil {
		return storageError("server", err)
	}

	s.broadcast(EventDeviceDeleted, map[string]string{"id": id})

	return c.JSON(http.StatusOK, MessageResponse{
		Message: "server deleted successfully",
		ID:      id,
	})
}

// listPDUs handles GET /api/v1/pdus
func (s *Server) listPDUs(c echo.Context) error {
	limit, offset := parsePagination(c)

	pdus, err := s.storage.ListPDUs()
	if err != nil {
		return storageError("pdus", err)
	}

	views := make([]PDUView, 0, len(pdus))
	for i := range pdus {
		view, err := s.renderPDU(&pdus[i], false)
		if err != nil {
			return storageError("pdu", err)
		}
		views = append(views, *view)
	}

	return c.JSON(http.StatusOK, paginate(views, limit, offset))
}

// getPDU handles GET /api/v1/pdus/:id. The detail view carries the derived
// port usage and the devices fed from each cabled port.
func (s *Server) getPDU(c echo.Context) error {
	pdu, err := s.storage.GetPDU(c.Param("id"))
	if err != nil {
		return storageError("pdu", err)
	}

	view, err := s.renderPDU(pdu, true)
	if err != nil {
		return storageError("pdu", err)
	}

	return c.JSON(http.StatusOK, view)
}

// createPDU handles POST /api/v1/pdus
func (s *Server) createPDU(c echo.Context) error {
	var req PDURequest
	if err := s.bindAndValidate(c, &req); err != nil {
		return err
	}

	pdu := &models.PowerDistributionUnit{
		DeviceDetails: detailsFromRequest(req.DeviceDetailsRequest),
		PortDetails:   models.PortDetails{Ports: req.Ports},
		Volts:         req.Volts,
		Amps:          req.Amps,
	}

	if err := s.storage.CreatePDU(pdu); err != nil {
		return storageError("pdu", err)
	}

	view, err := s.renderPDU(pdu, false)
	if err != nil {
		return storageError("pdu", err)
	}

	s.broadcast(EventDeviceCreated, view)

	return c.JSON(http.StatusCreated, view)
}

// updatePDU handles PUT /api/v1/pdus/:id
func (s *Server) updatePDU(c echo.Context) error {
	pdu, err := s.storage.GetPDU(c.Param("id"))
	if err != nil {
		return storageError("pdu", err)
	}

	var req PDURequest
	if err := s.bindAndValidate(c, &req); err != nil {
		return err
	}

	pdu.DeviceDetails = detailsFromRequest(req.DeviceDetailsRequest)
	pdu.Ports = req.Ports
	pdu.Volts = req.Volts
	pdu.Amps = req.Amps

	if err := s.storage.UpdatePDU(pdu); err != nil {
		return storageError("pdu", err)
	}

	view, err := s.renderPDU(pdu, false)
	if err != nil {
		return storageError("pdu", err)
	}

	s.broadcast(EventDeviceUpdated, view)

	return c.JSON(http.StatusOK, view)
}

// deletePDU handles DELETE /api/v1/pdus/:id
func (s *Server) deletePDU(c echo.Context) error {
	id := c.Param("id")

	if err := s.storage.DeletePDU(id); err != nil {
		return storageError("pdu", err)
	}

	s.broadcast(EventDeviceDeleted, map[string]string{"id": id})

	return c.JSON(http.StatusOK, MessageResponse{
		Message: "pdu deleted successfully",
		ID:      id,
	})
}

// listNetworkDevices handles GET /api/v1/network-devices
func (s *Server) listNetworkDevices(c echo.Context) error {
	limit, offset := parsePagination(c)

	devices, err := s.storage.ListNetworkDevices()
	if err != nil {
		return storageError("network devices", err)
	}

	views := make([]NetworkDeviceView, 0, len(devices))
	for i := range devices {
		view, err := s.renderNetworkDevice(&devices[i], false)
		if err != nil {
			return storageError("network device", err)
		}
		views = append(views, *view)
	}

	return c.JSON(http.StatusOK, paginate(views, limit, offset))
}

// getNetworkDevice handles GET /api/v1/network-devices/:id
func (s *Server) getNetworkDevice(c echo.Context) error {
	nd, err := s.storage.GetNetworkDevice(c.Param("id"))
	if err != nil {
		return storageError("network device", err)
	}

	view, err := s.renderNetworkDevice(nd, true)
	if err != nil {
		return storageError("network device", err)
	}

	return c.JSON(http.StatusOK, view)
}

// createNetworkDevice handles POST /api/v1/network-devices
func (s *Server) createNetworkDevice(c echo.Context) error {
	var req NetworkDeviceRequest
	if err := s.bindAndValidate(c, &req); err != nil {
		return err
	}

	nd := &models.NetworkDevice{
		DeviceDetails: detailsFromRequest(req.DeviceDetailsRequest),
		PortDetails:   models.PortDetails{Ports: req.Ports},
		Speed:         models.NetworkSpeed(req.Speed),
		Interconnect:  models.NetworkInterconnect(req.Interconnect),
	}

	if err := s.storage.CreateNetworkDevice(nd); err != nil {
		return storageError("network device", err)
	}

	view, err := s.renderNetworkDevice(nd, false)
	if err != nil {
		return storageError("network device", err)
	}

	s.broadcast(EventDeviceCreated, view)

	return c.JSON(http.StatusCreated, view)
}

// updateNetworkDevice handles PUT /api/v1/network-devices/:id
func (s *Server) updateNetworkDevice(c echo.Context) error {
	nd, err := s.storage.GetNetworkDevice(c.Param("id"))
	if err != nil {
		return storageError("network device", err)
	}

	var req NetworkDeviceRequest
	if err := s.bindAndValidate(c, &req); err != nil {
		return err
	}

	nd.DeviceDetails = detailsFromRequest(req.DeviceDetailsRequest)
	nd.Ports = req.Ports
	nd.Speed = models.NetworkSpeed(req.Speed)
	nd.Interconnect = models.NetworkInterconnect(req.Interconnect)

	if err := s.storage.UpdateNetworkDevice(nd); err != nil {
		return storageError("network device", err)
	}

	view, err := s.renderNetworkDevice(nd, false)
	if err != nil {
		return storageError("network device", err)
	}

	s.broadcast(EventDeviceUpdated, view)

	return c.JSON(http.StatusOK, view)
}

// deleteNetworkDevice handles DELETE /api/v1/network-devices/:id
func (s *Server) deleteNetworkDevice(c echo.Context) error {
	id := c.Param("id")

	if err := s.storage.DeleteNetworkDevice(id); err != nil {
		return storageError("network device", err)
	}

	s.broadcast(EventDeviceDeleted, map[string]string{"id": id})

	return c.JSON(http.StatusOK, MessageResponse{
		Message: "network device deleted successfully",
		ID:      id,
	})
}

// getDevice handles GET /api/v1/devices/:id, resolving the id through the
// identity table and answering with the concrete variant's detail view.
func (s *Server) getDevice(c echo.Context) error {
	resolved, err := s.storage.ResolveDevice(c.Param("id"))
	if err != nil {
		return storageError("device", err)
	}

	switch resolved.Type {
	case models.DeviceTypeServer:
		view, err := s.renderServer(resolved.Server, true)
		if err != nil {
			return storageError("device", err)
		}
		return c.JSON(http.StatusOK, view)
	case models.DeviceTypePDU:
		view, err := s.renderPDU(resolved.PDU, true)
		if err != nil {
			return storageError("device", err)
		}
		return c.JSON(http.StatusOK, view)
	default:
		view, err := s.renderNetworkDevice(resolved.NetworkDevice, true)
		if err != nil {
			return storageError("device", err)
		}
		return c.JSON(http.StatusOK, view)
	}
}
