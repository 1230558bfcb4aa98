package models

// Enum fields are stored and serialized by their symbolic name (the string
// constant below), never by the human-readable label. Labels exist only for
// presentation.

// CabinetAttachment describes how rails fasten to a cabinet's mounting posts.
type CabinetAttachment string

const (
	AttachmentCageNut95    CabinetAttachment = "CAGE_NUT_95"
	AttachmentDirectAttach CabinetAttachment = "DIRECT_ATTACH"
	AttachmentOther        CabinetAttachment = "OTHER"
)

// CabinetAttachments lists all valid attachment methods.
var CabinetAttachments = []CabinetAttachment{
	AttachmentCageNut95,
	AttachmentDirectAttach,
	AttachmentOther,
}

func (a CabinetAttachment) Valid() bool {
	switch a {
	case AttachmentCageNut95, AttachmentDirectAttach, AttachmentOther:
		return true
	}
	return false
}

func (a CabinetAttachment) Label() string {
	switch a {
	case AttachmentCageNut95:
		return "95mm cage nut"
	case AttachmentDirectAttach:
		return "direct attachment"
	case AttachmentOther:
		return "other"
	}
	return string(a)
}

// CabinetFastener is the screw standard used with the attachment method.
type CabinetFastener string

const (
	FastenerUNF1032 CabinetFastener = "UNF_10_32"
	FastenerUNC1224 CabinetFastener = "UNC_12_24"
	FastenerM5      CabinetFastener = "M5"
	FastenerM6      CabinetFastener = "M6"
	FastenerOther   CabinetFastener = "OTHER"
)

// CabinetFasteners lists all valid fastener types.
var CabinetFasteners = []CabinetFastener{
	FastenerUNF1032,
	FastenerUNC1224,
	FastenerM5,
	FastenerM6,
	FastenerOther,
}

func (f CabinetFastener) Valid() bool {
	switch f {
	case FastenerUNF1032, FastenerUNC1224, FastenerM5, FastenerM6, FastenerOther:
		return true
	}
	return false
}

func (f CabinetFastener) Label() string {
	switch f {
	case FastenerUNF1032:
		return "UNF 10-32"
	case FastenerUNC1224:
		return "UNC 12-24"
	case FastenerM5:
		return "M5"
	case FastenerM6:
		return "M6"
	case FastenerOther:
		return "other"
	}
	return string(f)
}

// RackOrientation is the cabinet face a device mounts on.
type RackOrientation string

const (
	OrientationFront RackOrientation = "FRONT"
	OrientationRear  RackOrientation = "REAR"
)

// RackOrientations lists all valid orientations.
var RackOrientations = []RackOrientation{OrientationFront, OrientationRear}

func (o RackOrientation) Valid() bool {
	return o == OrientationFront || o == OrientationRear
}

func (o RackOrientation) Label() string {
	switch o {
	case OrientationFront:
		return "front"
	case OrientationRear:
		return "rear"
	}
	return string(o)
}

// RackDepth is how much of the cabinet's depth a mounted device occupies.
// A FULL-depth device blocks the rack units on both faces.
type RackDepth string

const (
	DepthHalf RackDepth = "HALF"
	DepthFull RackDepth = "FULL"
)

// RackDepths lists all valid depths.
var RackDepths = []RackDepth{DepthHalf, DepthFull}

func (d RackDepth) Valid() bool {
	return d == DepthHalf || d == DepthFull
}

func (d RackDepth) Label() string {
	switch d {
	case DepthHalf:
		return "half"
	case DepthFull:
		return "full"
	}
	return string(d)
}

// NetworkSpeed is the per-port speed of a network device.
type NetworkSpeed string

const (
	SpeedTen          NetworkSpeed = "TEN"
	SpeedOneHundred   NetworkSpeed = "ONE_HUNDRED"
	SpeedGigabit      NetworkSpeed = "GIGABIT"
	SpeedTenGigabit   NetworkSpeed = "TEN_GIGABIT"
	SpeedFortyGigabit NetworkSpeed = "FORTY_GIGABIT"
)

// NetworkSpeeds lists all valid network speeds.
var NetworkSpeeds = []NetworkSpeed{
	SpeedTen,
	SpeedOneHundred,
	SpeedGigabit,
	SpeedTenGigabit,
	SpeedFortyGigabit,
}

func (s NetworkSpeed) Valid() bool {
	switch s {
	case SpeedTen, SpeedOneHundred, SpeedGigabit, SpeedTenGigabit, SpeedFortyGigabit:
		return true
	}
	return false
}

func (s NetworkSpeed) Label() string {
	switch s {
	case SpeedTen:
		return "10 Mbps"
	case SpeedOneHundred:
		return "100 Mbps"
	case SpeedGigabit:
		return "1 Gbps"
	case SpeedTenGigabit:
		return "10 Gbps"
	case SpeedFortyGigabit:
		return "40 Gbps"
	}
	return string(s)
}

// NetworkInterconnect is the physical port/cabling standard of a network device.
type NetworkInterconnect string

const (
	InterconnectRJ45   NetworkInterconnect = "RJ45"
	InterconnectTwinax NetworkInterconnect = "TWINAX"
	InterconnectOther  NetworkInterconnect = "OTHER"
)

// NetworkInterconnects lists all valid interconnect types.
var NetworkInterconnects = []NetworkInterconnect{
	InterconnectRJ45,
	InterconnectTwinax,
	InterconnectOther,
}

func (i NetworkInterconnect) Valid() bool {
	switch i {
	case InterconnectRJ45, InterconnectTwinax, InterconnectOther:
		return true
	}
	return false
}

func (i NetworkInterconnect) Label() string {
	switch i {
	case InterconnectRJ45:
		return "RJ-45"
	case InterconnectTwinax:
		return "Twinaxial"
	case InterconnectOther:
		return "other"
	}
	return string(i)
}
