// Package binding resolves a bound network interface back to the device
// allocation request that produced its backing device.
package binding

import (
	"context"
	"errors"
	"fmt"

	"github.com/virt-d/passthrough-alias-resolver/pkg/request"
)

// ProfileDeviceAddressKey is the binding profile key carrying the PCI
// address of the device backing an interface. An interface without it is
// not backed by a passthrough device.
const ProfileDeviceAddressKey = "pci_slot"

// ErrNotFound is returned by NodeDirectory implementations when no compute
// node matches the given host and node name.
var ErrNotFound = errors.New("compute node not found")

// NodeDirectory resolves a (host, node name) pair to a compute node
// identifier. It is implemented by the external compute inventory.
type NodeDirectory interface {
	ComputeNodeID(ctx context.Context, host, node string) (string, error)
}

// Device is a passthrough device already bound to an instance.
type Device struct {
	// Address is the PCI address of the device.
	Address string

	// ComputeNodeID identifies the compute node owning the device.
	ComputeNodeID string

	// RequestID links the device to the allocation request that caused
	// its allocation.
	RequestID string
}

// Interface is the bound network interface the resolver inspects.
// Read-only to this package.
type Interface struct {
	ID      string
	Profile map[string]string
}

// DeviceAddress returns the PCI address in the binding profile, or empty
// when the interface carries none.
func (i *Interface) DeviceAddress() string {
	if i == nil || i.Profile == nil {
		return ""
	}
	return i.Profile[ProfileDeviceAddressKey]
}

// Instance carries the already-recorded allocation state the resolver
// scans: the devices bound to the instance and the requests that produced
// them.
type Instance struct {
	Host     string
	Node     string
	Devices  []Device
	Requests []request.Request
}

// RequestNotFoundError reports a bound device whose request id has no
// matching allocation request on the instance. A bound device must always
// trace back to the request that caused its allocation, so this is an
// internal consistency fault.
type RequestNotFoundError struct {
	Address string
	NodeID  string
}

func (e *RequestNotFoundError) Error() string {
	return fmt.Sprintf(
		"no allocation request found for device %s on compute node %s",
		e.Address, e.NodeID)
}
