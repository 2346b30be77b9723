package domain

// Device represents the hardware or source a sample originated from
// Known devices are process-wide values shared by every sample that references them
type Device struct {
	ID   string
	Name string
}

var (
	DeviceIPhone     = Device{ID: "iPhone", Name: "iPhone"}
	DeviceAppleWatch = Device{ID: "appleWatch", Name: "Apple Watch"}
	DeviceSmartBand  = Device{ID: "smartBand", Name: "Smart Band"}
	DeviceUnknown    = Device{ID: "unknown", Name: "Unknown"}
)

// Devices returns the known devices
func Devices() []Device {
	return []Device{
		DeviceIPhone,
		DeviceAppleWatch,
		DeviceSmartBand,
		DeviceUnknown,
	}
}

// LookupDevice resolves a known device by ID
// Unknown IDs produce a custom device named after its ID
func LookupDevice(id string) Device {
	for _, d := range Devices() {
		if d.ID == id {
			return d
		}
	}
	return Device{ID: id, Name: id}
}

// FirstParty reports whether the device is the phone or the watch
func (d Device) FirstParty() bool {
	return d.ID == DeviceIPhone.ID || d.ID == DeviceAppleWatch.ID
}
