package models

import "fmt"

// DeviceType discriminates the concrete variant behind a device identity.
type DeviceType string

const (
	DeviceTypeServer        DeviceType = "server"
	DeviceTypePDU           DeviceType = "power_distribution_unit"
	DeviceTypeNetworkDevice DeviceType = "network_device"
)

func (t DeviceType) Valid() bool {
	switch t {
	case DeviceTypeServer, DeviceTypePDU, DeviceTypeNetworkDevice:
		return true
	}
	return false
}

// Device is the identity row of the polymorphic device union. Every piece of
// hardware has exactly one identity row and exactly one variant row (Server,
// PowerDistributionUnit or NetworkDevice) sharing its primary key. Placement
// and cabling always reference the identity, never a variant directly.
type Device struct {
	// ID is the unique device identifier (UUID), shared with the variant row
	ID string `json:"id" gorm:"type:uuid;primaryKey"`

	// Type names the variant table holding the rest of this device's fields
	Type DeviceType `json:"type" gorm:"size:50;not null"`
}

// DeviceDetails is the field set shared by every device variant, embedded
// into each variant table. (Manufacturer, Model, Serial) is unique per
// variant; the index is created during migration since the embedded tag
// cannot carry a per-table index name.
type DeviceDetails struct {
	// Manufacturer is the hardware vendor
	Manufacturer string `json:"manufacturer" gorm:"size:128;not null"`

	// Model is the vendor model designation
	Model string `json:"model" gorm:"size:128;not null"`

	// Serial is the vendor serial number
	Serial string `json:"serial" gorm:"size:128;not null"`

	// AssetID is an internal asset identifier
	AssetID string `json:"asset_id,omitempty" gorm:"size:36"`

	// AssetTag is the physical asset tag on the chassis
	AssetTag string `json:"asset_tag,omitempty" gorm:"size:36"`

	// RackUnits is the physical height of the device
	RackUnits int `json:"rack_units" gorm:"not null"`

	// Draw is the power consumption in watts (0 when unknown)
	Draw int `json:"draw" gorm:"default:0"`
}

// DisplayName is the human-readable device name used in embedded views.
func (d DeviceDetails) DisplayName() string {
	return fmt.Sprintf("%s %s", d.Manufacturer, d.Model)
}

// PortDetails is the field set shared by port-bearing variants. Ports are
// numbered 1..Ports.
type PortDetails struct {
	// Ports is the number of physical ports
	Ports int `json:"ports"`
}

// Server is a compute device variant.
type Server struct {
	// DeviceID is the shared primary key referencing the identity row
	DeviceID string `json:"id" gorm:"type:uuid;primaryKey"`

	Device *Device `json:"-" gorm:"foreignKey:DeviceID;references:ID;constraint:OnDelete:CASCADE"`

	DeviceDetails `gorm:"embedded"`

	// Memory is the installed memory in megabytes
	Memory int `json:"memory" gorm:"not null"`

	// Cores is the installed CPU core count
	Cores int `json:"cores" gorm:"not null"`
}

// PowerDistributionUnit is a power strip variant feeding devices in a cabinet.
type PowerDistributionUnit struct {
	// DeviceID is the shared primary key referencing the identity row
	DeviceID string `json:"id" gorm:"type:uuid;primaryKey"`

	Device *Device `json:"-" gorm:"foreignKey:DeviceID;references:ID;constraint:OnDelete:CASCADE"`

	DeviceDetails `gorm:"embedded"`
	PortDetails   `gorm:"embedded"`

	// Volts is the supply voltage
	Volts int `json:"volts"`

	// Amps is the rated amperage
	Amps int `json:"amps"`
}

// Watts is the PDU's supply capacity, volts times amps. Zero when either
// rating is unset.
func (p *PowerDistributionUnit) Watts() int {
	return p.Volts * p.Amps
}

// NetworkDevice is a switch/router variant.
type NetworkDevice struct {
	// DeviceID is the shared primary key referencing the identity row
	DeviceID string `json:"id" gorm:"type:uuid;primaryKey"`

	Device *Device `json:"-" gorm:"foreignKey:DeviceID;references:ID;constraint:OnDelete:CASCADE"`

	DeviceDetails `gorm:"embedded"`
	PortDetails   `gorm:"embedded"`

	// Speed is the per-port speed
	Speed NetworkSpeed `json:"speed" gorm:"size:32"`

	// Interconnect is the physical port standard
	Interconnect NetworkInterconnect `json:"interconnect" gorm:"size:32"`
}

// ResolvedDevice pairs a device identity with its concrete variant. Exactly
// one of Server, PDU and NetworkDevice is non-nil, matching Type. All
// device-dispatch logic switches on Type through the accessors below.
type ResolvedDevice struct {
	ID            string
	Type          DeviceType
	Server        *Server
	PDU           *PowerDistributionUnit
	NetworkDevice *NetworkDevice
}

// Details returns the shared field set of the underlying variant.
func (d *ResolvedDevice) Details() *DeviceDetails {
	switch d.Type {
	case DeviceTypeServer:
		return &d.Server.DeviceDetails
	case DeviceTypePDU:
		return &d.PDU.DeviceDetails
	case DeviceTypeNetworkDevice:
		return &d.NetworkDevice.DeviceDetails
	}
	return nil
}

// Draw is the device's power consumption in watts.
func (d *ResolvedDevice) Draw() int {
	if det := d.Details(); det != nil {
		return det.Draw
	}
	return 0
}

// RackUnits is the device's physical height.
func (d *ResolvedDevice) RackUnits() int {
	if det := d.Details(); det != nil {
		return det.RackUnits
	}
	return 0
}

// PortCount reports the device's port count. ok is false for variants that
// have no ports (servers).
func (d *ResolvedDevice) PortCount() (count int, ok bool) {
	switch d.Type {
	case DeviceTypePDU:
		return d.PDU.Ports, true
	case DeviceTypeNetworkDevice:
		return d.NetworkDevice.Ports, true
	}
	return 0, false
}

// DisplayName is the human-readable device name.
func (d *ResolvedDevice) DisplayName() string {
	if det := d.Details(); det != nil {
		return det.DisplayName()
	}
	return d.ID
}
