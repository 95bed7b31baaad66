package descriptor

// Hooks is the capability interface for device lifecycle events. The
// external device-stack glue invokes these callbacks as the bus state
// changes; the descriptor core only stores the capability (see
// Device.SetHooks) and never calls it itself.
type Hooks interface {
	// Mounted is invoked when the host has configured the device.
	Mounted()

	// Unmounted is invoked when the device is disconnected.
	Unmounted()

	// Suspended is invoked when the bus is suspended. Within 7 ms the
	// device must draw no more than suspend current from the bus.
	Suspended(remoteWakeupEnabled bool)

	// Resumed is invoked when the bus is resumed.
	Resumed()
}
