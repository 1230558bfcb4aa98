package models

// Cabinet is a rack enclosure located in exactly one datacenter.
//
// Power figures (supply, allocation, headroom) are never stored on the
// cabinet; they are derived from the current assignment graph at read time.
// See the inventory package.
type Cabinet struct {
	// ID is the unique cabinet identifier (UUID)
	ID string `json:"id" gorm:"type:uuid;primaryKey"`

	// Name is the human-readable cabinet name (unique)
	Name string `json:"name" gorm:"size:64;not null;uniqueIndex"`

	// DatacenterID references the owning datacenter
	DatacenterID string `json:"datacenter_id" gorm:"type:uuid;not null;index"`

	// Datacenter is the owning facility. Deletion of a datacenter with
	// cabinets is blocked, at the store level and in the storage layer.
	Datacenter *Datacenter `json:"-" gorm:"foreignKey:DatacenterID;references:ID;constraint:OnDelete:RESTRICT"`

	// RackUnits is the vertical capacity in rack units
	RackUnits int `json:"rack_units" gorm:"not null"`

	// Depth is the usable depth in inches
	Depth float64 `json:"depth" gorm:"type:numeric(4,2);not null"`

	// Width is the usable width in inches
	Width float64 `json:"width" gorm:"type:numeric(4,2);not null"`

	// Attachment is the rail attachment method
	Attachment CabinetAttachment `json:"attachment" gorm:"size:32;not null"`

	// Fasteners is the fastener standard used with the attachment method
	Fasteners CabinetFastener `json:"fasteners" gorm:"size:32;not null"`
}
