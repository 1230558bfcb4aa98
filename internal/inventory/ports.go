package inventory

import (
	"sort"

	"github.com/rackd/rackd/models"
)

// PortsUsed returns the sorted port numbers carrying a cable on a device,
// given its own port assignment rows.
func PortsUsed(assignments []models.PortAssignment) []int {
	used := make([]int, 0, len(assignments))
	for _, a := range assignments {
		used = append(used, a.DevicePort)
	}
	sort.Ints(used)
	return used
}

// PortsAvailable returns the free ports of a device with the given port
// count: {1..count} minus the used set.
func PortsAvailable(count int, used []int) []int {
	taken := make(map[int]bool, len(used))
	for _, p := range used {
		taken[p] = true
	}
	free := make([]int, 0, count)
	for port := 1; port <= count; port++ {
		if !taken[port] {
			free = append(free, port)
		}
	}
	return free
}

// Uplinks filters the cables attached to a device down to those owned by
// network devices: the switches this device hangs off, with the switch port.
func Uplinks(attached []models.PortLink) []models.PortLink {
	return filterLinks(attached, models.DeviceTypeNetworkDevice)
}

// PowerFeeds filters the cables attached to a device down to those owned by
// PDUs: the power strips feeding this device, with the outlet number.
func PowerFeeds(attached []models.PortLink) []models.PortLink {
	return filterLinks(attached, models.DeviceTypePDU)
}

func filterLinks(links []models.PortLink, t models.DeviceType) []models.PortLink {
	out := make([]models.PortLink, 0, len(links))
	for _, l := range links {
		if l.Peer.Type == t {
			out = append(out, l)
		}
	}
	return out
}
