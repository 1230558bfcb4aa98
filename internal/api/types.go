package api

// Request types for the inventory API. Constraint tags are enforced by the
// validation package; enum tags accept the symbolic names the API serializes
// (CAGE_NUT_95, TEN_GIGABIT, ...).

// DatacenterRequest is the create/update payload for a datacenter.
type DatacenterRequest struct {
	Name     string `json:"name" validate:"required,max=64"`
	Vendor   string `json:"vendor" validate:"required,max=64"`
	Address  string `json:"address" validate:"required,max=255"`
	NOCPhone string `json:"noc_phone" validate:"required,max=15"`
	NOCEmail string `json:"noc_email" validate:"omitempty,email"`
	NOCURL   string `json:"noc_url" validate:"omitempty,url"`
}

// CabinetRequest is the create/update payload for a cabinet.
type CabinetRequest struct {
	Name         string  `json:"name" validate:"required,max=64"`
	DatacenterID string  `json:"datacenter_id" validate:"required,uuid"`
	RackUnits    int     `json:"rack_units" validate:"required,min=1,max=100"`
	Depth        float64 `json:"depth" validate:"required,gt=0"`
	Width        float64 `json:"width" validate:"required,gt=0"`
	Attachment   string  `json:"attachment" validate:"required,cabinet_attachment"`
	Fasteners    string  `json:"fasteners" validate:"required,cabinet_fastener"`
}

// DeviceDetailsRequest is the field set shared by every device payload.
type DeviceDetailsRequest struct {
	Manufacturer string `json:"manufacturer" validate:"required,max=128"`
	Model        string `json:"model" validate:"required,max=128"`
	Serial       string `json:"serial" validate:"required,max=128"`
	AssetID      string `json:"asset_id" validate:"omitempty,max=36"`
	AssetTag     string `json:"asset_tag" validate:"omitempty,max=36"`
	RackUnits    int    `json:"rack_units" validate:"gte=0"`
	Draw         int    `json:"draw" validate:"gte=0"`
}

// ServerRequest is the create/update payload for a server.
type ServerRequest struct {
	DeviceDetailsRequest
	Memory int `json:"memory" validate:"required,gt=0"`
	Cores  int `json:"cores" validate:"required,gt=0"`
}

// PDURequest is the create/update payload for a power distribution unit.
type PDURequest struct {
	DeviceDetailsRequest
	Ports int `json:"ports" validate:"required,gt=0"`
	Volts int `json:"volts" validate:"gte=0"`
	Amps  int `json:"amps" validate:"gte=0"`
}

// NetworkDeviceRequest is the create/update payload for a network device.
type NetworkDeviceRequest struct {
	DeviceDetailsRequest
	Ports        int    `json:"ports" validate:"required,gt=0"`
	Speed        string `json:"speed" validate:"required,network_speed"`
	Interconnect string `json:"interconnect" validate:"required,network_interconnect"`
}

// CabinetAssignmentRequest places a device into a cabinet.
type CabinetAssignmentRequest struct {
	CabinetID   string `json:"cabinet_id" validate:"required,uuid"`
	DeviceID    string `json:"device_id" validate:"required,uuid"`
	Position    int    `json:"position" validate:"required,min=1"`
	Orientation string `json:"orientation" validate:"required,rack_orientation"`
	Depth       string `json:"depth" validate:"required,rack_depth"`
}

// PortAssignmentRequest cables a port on one device to a port on another.
type PortAssignmentRequest struct {
	DeviceID            string `json:"device_id" validate:"required,uuid"`
	DevicePort          int    `json:"device_port" validate:"required,min=1"`
	ConnectedDeviceID   string `json:"connected_device_id" validate:"required,uuid"`
	ConnectedDevicePort int    `json:"connected_device_port" validate:"required,min=1"`
}

// MessageResponse is a simple acknowledgement payload.
type MessageResponse struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}
