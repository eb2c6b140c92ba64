package driver

import (
	"github.com/puzpuzpuz/xsync/v3"
)

// Registry tracks the drivers of currently attached devices, keyed by device
// ID. All methods are safe for concurrent use.
type Registry struct {
	drivers *xsync.MapOf[string, *Driver]
}

// NewRegistry creates an empty driver registry.
func NewRegistry() *Registry {
	return &Registry{
		drivers: xsync.NewMapOf[string, *Driver](),
	}
}

// Register adds the driver under its device ID. It reports whether the ID was
// not registered before; an already-registered ID keeps its existing driver.
func (r *Registry) Register(d *Driver) bool {
	_, loaded := r.drivers.LoadOrStore(d.DeviceID(), d)
	return !loaded
}

// Get returns the driver registered under deviceID, if any.
func (r *Registry) Get(deviceID string) (*Driver, bool) {
	return r.drivers.Load(deviceID)
}

// Remove drops the driver registered under deviceID.
func (r *Registry) Remove(deviceID string) {
	r.drivers.Delete(deviceID)
}

// Range calls fn for each registered driver until fn returns false.
func (r *Registry) Range(fn func(deviceID string, d *Driver) bool) {
	r.drivers.Range(fn)
}

// Len returns the number of registered drivers.
func (r *Registry) Len() int {
	return r.drivers.Size()
}
