package models

// CabinetAssignment places one device into one cabinet at a starting rack
// unit. DeviceID is unique across all assignments: a device occupies at most
// one cabinet at a time, and the store arbitrates concurrent claims through
// that constraint.
type CabinetAssignment struct {
	// ID is the unique assignment identifier (UUID)
	ID string `json:"id" gorm:"type:uuid;primaryKey"`

	// CabinetID references the hosting cabinet
	CabinetID string `json:"cabinet_id" gorm:"type:uuid;not null;index"`

	// Cabinet owns its assignments; deleting a cabinet removes them.
	Cabinet *Cabinet `json:"-" gorm:"foreignKey:CabinetID;references:ID;constraint:OnDelete:CASCADE"`

	// DeviceID references the placed device (unique: one active placement)
	DeviceID string `json:"device_id" gorm:"type:uuid;not null;uniqueIndex"`

	Device *Device `json:"-" gorm:"foreignKey:DeviceID;references:ID;constraint:OnDelete:CASCADE"`

	// Position is the starting rack unit, counted from 1
	Position int `json:"position" gorm:"not null"`

	// Orientation is the cabinet face the device mounts on
	Orientation RackOrientation `json:"orientation" gorm:"size:16;not null"`

	// Depth is how much of the cabinet depth the device occupies
	Depth RackDepth `json:"depth" gorm:"size:16;not null"`
}

// PortAssignment records a cable from one port on a device to a port on
// another device. The row is directed: the reverse view ("who is plugged
// into X") is computed by querying ConnectedDeviceID, never by a mirrored
// row. (DeviceID, DevicePort) is unique so a port carries at most one cable.
type PortAssignment struct {
	// ID is the unique assignment identifier (UUID)
	ID string `json:"id" gorm:"type:uuid;primaryKey"`

	// DeviceID references the device owning the cabled port
	DeviceID string `json:"device_id" gorm:"type:uuid;not null;uniqueIndex:idx_port_assignments_device_port"`

	Device *Device `json:"-" gorm:"foreignKey:DeviceID;references:ID;constraint:OnDelete:CASCADE"`

	// DevicePort is the port number on the owning device (1-based)
	DevicePort int `json:"device_port" gorm:"not null;uniqueIndex:idx_port_assignments_device_port"`

	// ConnectedDeviceID references the device at the far end of the cable
	ConnectedDeviceID string `json:"connected_device_id" gorm:"type:uuid;not null;index"`

	ConnectedDevice *Device `json:"-" gorm:"foreignKey:ConnectedDeviceID;references:ID;constraint:OnDelete:CASCADE"`

	// ConnectedDevicePort is the port number on the far device (1-based)
	ConnectedDevicePort int `json:"connected_device_port" gorm:"not null"`
}

// AssignedDevice is a cabinet assignment joined with its resolved device.
// The storage layer produces these for derived computations and views.
type AssignedDevice struct {
	Assignment CabinetAssignment
	Device     ResolvedDevice
}

// PortLink is one end of a cable seen from a device of interest: the port
// number on the peer and the resolved peer device. For a device's own
// cabling the peer is the connected device; for the reverse view the peer is
// the device owning the cable.
type PortLink struct {
	// Port is the port number on the peer device
	Port int

	// Peer is the device on the other side of the relationship
	Peer ResolvedDevice
}
