// Package inventory implements the derived computations of the hardware
// model: cabinet power accounting, port usage and availability, uplink and
// power-feed resolution, and rack-unit placement checking.
//
// Everything here is a plain function over freshly queried rows. Results are
// deliberately never cached: available power is a safety-relevant figure for
// physical installs and must reflect the assignment graph at query time.
package inventory

import "github.com/rackd/rackd/models"

// PowerSummary is the derived power accounting for one cabinet, in watts.
type PowerSummary struct {
	// Power is the supply capacity: the summed watts of every PDU
	// assigned into the cabinet
	Power int `json:"power"`

	// PowerAllocated is the summed draw of every device assigned into
	// the cabinet, PDUs included
	PowerAllocated int `json:"power_allocated"`

	// PowerAvailable is the remaining headroom, clamped at zero
	PowerAvailable int `json:"power_available"`
}

// CabinetPower computes the power summary for the devices currently assigned
// to a cabinet. A cabinet without a PDU reports zero supply and zero
// headroom regardless of allocated draw; over-allocation clamps headroom at
// zero rather than reporting a negative figure.
func CabinetPower(devices []models.ResolvedDevice) PowerSummary {
	var sum PowerSummary
	for i := range devices {
		d := &devices[i]
		if d.Type == models.DeviceTypePDU {
			sum.Power += d.PDU.Watts()
		}
		sum.PowerAllocated += d.Draw()
	}
	if delta := sum.Power - sum.PowerAllocated; delta > 0 {
		sum.PowerAvailable = delta
	}
	return sum
}
