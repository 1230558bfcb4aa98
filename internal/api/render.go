package api

import (
	"github.com/rackd/rackd/internal/inventory"
	"github.com/rackd/rackd/models"
)

// View types returned by the API. Derived figures (power, port usage,
// location, feeds) are computed from the live assignment graph while
// rendering; nothing here is read from a stored column.

// RefView is an embedded id/name stub for a related resource.
type RefView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DeviceRef is an embedded stub for a related device.
type DeviceRef struct {
	ID   string            `json:"id"`
	Type models.DeviceType `json:"type"`
	Name string            `json:"name"`
}

// LocationView is where a device currently sits.
type LocationView struct {
	Cabinet  RefView `json:"cabinet"`
	Position int     `json:"position"`
}

// CabinetView is a cabinet with its owning datacenter embedded. The power
// figures are present on detail reads only.
type CabinetView struct {
	ID         string                   `json:"id"`
	Name       string                   `json:"name"`
	Datacenter RefView                  `json:"datacenter"`
	RackUnits  int                      `json:"rack_units"`
	Depth      float64                  `json:"depth"`
	Width      float64                  `json:"width"`
	Attachment models.CabinetAttachment `json:"attachment"`
	Fasteners  models.CabinetFastener   `json:"fasteners"`

	Power          *int `json:"power,omitempty"`
	PowerAllocated *int `json:"power_allocated,omitempty"`
	PowerAvailable *int `json:"power_available,omitempty"`
}

// ServerView is a server with its placement and feeds. Location, PDUs and
// Uplinks are present on detail reads only.
type ServerView struct {
	ID   string            `json:"id"`
	Type models.DeviceType `json:"type"`
	models.DeviceDetails
	Memory int `json:"memory"`
	Cores  int `json:"cores"`

	Location *LocationView `json:"location,omitempty"`
	PDUs     []DeviceRef   `json:"pdus,omitempty"`
	Uplinks  []DeviceRef   `json:"uplinks,omitempty"`
}

// ConnectionView is one cabled port on a port-bearing device.
type ConnectionView struct {
	Port   int       `json:"port"`
	Device DeviceRef `json:"device"`
}

// PDUView is a power distribution unit with its derived capacity and port
// usage. Usage fields and connections are present on detail reads only.
type PDUView struct {
	ID   string            `json:"id"`
	Type models.DeviceType `json:"type"`
	models.DeviceDetails
	Ports int `json:"ports"`
	Volts int `json:"volts"`
	Amps  int `json:"amps"`
	Watts int `json:"watts"`

	Location         *LocationView    `json:"location,omitempty"`
	PortsUsed        []int            `json:"ports_used,omitempty"`
	PortsAvailable   *int             `json:"ports_available,omitempty"`
	ConnectedDevices []ConnectionView `json:"connected_devices,omitempty"`
}

// NetworkDeviceView is a network device with its derived port usage.
type NetworkDeviceView struct {
	ID   string            `json:"id"`
	Type models.DeviceType `json:"type"`
	models.DeviceDetails
	Ports        int                        `json:"ports"`
	Speed        models.NetworkSpeed        `json:"speed"`
	SpeedLabel   string                     `json:"speed_label"`
	Interconnect models.NetworkInterconnect `json:"interconnect"`

	Location         *LocationView    `json:"location,omitempty"`
	PortsUsed        []int            `json:"ports_used,omitempty"`
	PortsAvailable   *int             `json:"ports_available,omitempty"`
	ConnectedDevices []ConnectionView `json:"connected_devices,omitempty"`
}

// AssignmentView is a cabinet assignment with both sides embedded.
type AssignmentView struct {
	ID          string                 `json:"id"`
	Cabinet     RefView                `json:"cabinet"`
	Device      DeviceRef              `json:"device"`
	Position    int                    `json:"position"`
	Orientation models.RackOrientation `json:"orientation"`
	Depth       models.RackDepth       `json:"depth"`
}

// AssignedDeviceView is one slot in a cabinet's device listing.
type AssignedDeviceView struct {
	Assignment AssignmentView `json:"assignment"`
	RackUnits  int            `json:"rack_units"`
	Draw       int            `json:"draw"`
}

func deviceRef(d *models.ResolvedDevice) DeviceRef {
	return DeviceRef{ID: d.ID, Type: d.Type, Name: d.DisplayName()}
}

func deviceRefs(links []models.PortLink) []DeviceRef {
	refs := make([]DeviceRef, 0, len(links))
	for i := range links {
		refs = append(refs, deviceRef(&links[i].Peer))
	}
	return refs
}

// renderCabinet builds a cabinet view. With detail set, the power figures
// are computed from the cabinet's current assignments.
func (s *Server) renderCabinet(cab *models.Cabinet, detail bool) (*CabinetView, error) {
	dc, err := s.storage.GetDatacenter(cab.DatacenterID)
	if err != nil {
		return nil, err
	}

	view := &CabinetView{
		ID:         cab.ID,
		Name:       cab.Name,
		Datacenter: RefView{ID: dc.ID, Name: dc.Name},
		RackUnits:  cab.RackUnits,
		Depth:      cab.Depth,
		Width:      cab.Width,
		Attachment: cab.Attachment,
		Fasteners:  cab.Fasteners,
	}

	if detail {
		assigned, err := s.storage.CabinetDevices(cab.ID)
		if err != nil {
			return nil, err
		}
		devices := make([]models.ResolvedDevice, 0, len(assigned))
		for _, ad := range assigned {
			devices = append(devices, ad.Device)
		}
		summary := inventory.CabinetPower(devices)
		view.Power = &summary.Power
		view.PowerAllocated = &summary.PowerAllocated
		view.PowerAvailable = &summary.PowerAvailable
	}

	return view, nil
}

func (s *Server) renderLocation(deviceID string) (*LocationView, error) {
	cab, pos, err := s.storage.DeviceLocation(deviceID)
	if err != nil {
		return nil, err
	}
	if cab == nil {
		return nil, nil
	}
	return &LocationView{Cabinet: RefView{ID: cab.ID, Name: cab.Name}, Position: pos}, nil
}

// renderServer builds a server view. With detail set, location and the
// power and network feeds are resolved through the cable graph.
func (s *Server) renderServer(srv *models.Server, detail bool) (*ServerView, error) {
	view := &ServerView{
		ID:            srv.DeviceID,
		Type:          models.DeviceTypeServer,
		DeviceDetails: srv.DeviceDetails,
		Memory:        srv.Memory,
		Cores:         srv.Cores,
	}
	if !detail {
		return view, nil
	}

	location, err := s.renderLocation(srv.DeviceID)
	if err != nil {
		return nil, err
	}
	view.Location = location

	links, err := s.storage.AttachedLinks(srv.DeviceID)
	if err != nil {
		return nil, err
	}
	view.PDUs = deviceRefs(inventory.PowerFeeds(links))
	view.Uplinks = deviceRefs(inventory.Uplinks(links))

	return view, nil
}

// portUsage computes used and available port lists for a port-bearing device.
func (s *Server) portUsage(deviceID string, total int) (used []int, available int, connections []ConnectionView, err error) {
	rows, err := s.storage.DevicePortAssignments(deviceID)
	if err != nil {
		return nil, 0, nil, err
	}

	used = inventory.PortsUsed(rows)
	available = len(inventory.PortsAvailable(total, used))

	connections = make([]ConnectionView, 0, len(rows))
	for _, row := range rows {
		peer, err := s.storage.ResolveDevice(row.ConnectedDeviceID)
		if err != nil {
			return nil, 0, nil, err
		}
		connections = append(connections, ConnectionView{Port: row.DevicePort, Device: deviceRef(peer)})
	}
	return used, available, connections, nil
}

// renderPDU builds a PDU view. Watts is always derived; port usage only on
// detail reads.
func (s *Server) renderPDU(pdu *models.PowerDistributionUnit, detail bool) (*PDUView, error) {
	view := &PDUView{
		ID:            pdu.DeviceID,
		Type:          models.DeviceTypePDU,
		DeviceDetails: pdu.DeviceDetails,
		Ports:         pdu.Ports,
		Volts:         pdu.Volts,
		Amps:          pdu.Amps,
		Watts:         pdu.Watts(),
	}
	if !detail {
		return view, nil
	}

	location, err := s.renderLocation(pdu.DeviceID)
	if err != nil {
		return nil, err
	}
	view.Location = location

	used, available, connections, err := s.portUsage(pdu.DeviceID, pdu.Ports)
	if err != nil {
		return nil, err
	}
	view.PortsUsed = used
	view.PortsAvailable = &available
	view.ConnectedDevices = connections

	return view, nil
}

// renderNetworkDevice builds a network device view.
func (s *Server) renderNetworkDevice(nd *models.NetworkDevice, detail bool) (*NetworkDeviceView, error) {
	view := &NetworkDeviceView{
		ID:            nd.DeviceID,
		Type:          models.DeviceTypeNetworkDevice,
		DeviceDetails: nd.DeviceDetails,
		Ports:         nd.Ports,
		Speed:         nd.Speed,
		SpeedLabel:    nd.Speed.Label(),
		Interconnect:  nd.Interconnect,
	}
	if !detail {
		return view, nil
	}

	location, err := s.renderLocation(nd.DeviceID)
	if err != nil {
		return nil, err
	}
	view.Location = location

	used, available, connections, err := s.portUsage(nd.DeviceID, nd.Ports)
	if err != nil {
		return nil, err
	}
	view.PortsUsed = used
	view.PortsAvailable = &available
	view.ConnectedDevices = connections

	return view, nil
}

// renderAssignment builds an assignment view with both sides embedded.
func (s *Server) renderAssignment(a *models.CabinetAssignment) (*AssignmentView, error) {
	cab, err := s.storage.GetCabinet(a.CabinetID)
	if err != nil {
		return nil, err
	}
	device, err := s.storage.ResolveDevice(a.DeviceID)
	if err != nil {
		return nil, err
	}
	return &AssignmentView{
		ID:          a.ID,
		Cabinet:     RefView{ID: cab.ID, Name: cab.Name},
		Device:      deviceRef(device),
		Position:    a.Position,
		Orientation: a.Orientation,
		Depth:       a.Depth,
	}, nil
}
