package models

// Datacenter is a physical facility that hosts cabinets.
//
// Name is unique on its own; (Vendor, Address) is unique as a pair so the
// same street address can appear once per colocation vendor.
type Datacenter struct {
	// ID is the unique datacenter identifier (UUID)
	ID string `json:"id" gorm:"type:uuid;primaryKey"`

	// Name is the human-readable facility name (unique)
	Name string `json:"name" gorm:"size:64;not null;uniqueIndex"`

	// Vendor is the colocation or facility operator
	Vendor string `json:"vendor" gorm:"size:64;not null;uniqueIndex:idx_datacenters_vendor_address"`

	// Address is the facility street address
	Address string `json:"address" gorm:"size:255;not null;uniqueIndex:idx_datacenters_vendor_address"`

	// NOCPhone is the network operations center phone number
	NOCPhone string `json:"noc_phone" gorm:"size:15;not null"`

	// NOCEmail is the network operations center email address
	NOCEmail string `json:"noc_email,omitempty" gorm:"size:255"`

	// NOCURL is the network operations center support portal
	NOCURL string `json:"noc_url,omitempty" gorm:"size:255"`
}
