/*
Copyright 2026 The virt-d Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package binding

import (
	"context"
	"errors"

	ctrl "sigs.k8s.io/controller-runtime"

	"github.com/virt-d/passthrough-alias-resolver/pkg/request"
)

// RequestForInterface returns the allocation request that produced the
// device backing the given interface on the compute node the instance
// currently runs on. A nil request with a nil error means the interface is
// not backed by a passthrough device on this node, which is a normal case.
//
// A directory miss for the instance's compute node is downgraded to "no
// request" with a diagnostic log entry: the binding may belong to a
// different node context, and a transient lookup miss must not abort
// interface processing. A matching bound device without a corresponding
// request fails with RequestNotFoundError.
func RequestForInterface(ctx context.Context, dir NodeDirectory, inst *Instance, iface *Interface) (*request.Request, error) {
	addr := iface.DeviceAddress()
	if addr == "" {
		return nil, nil
	}

	nodeID, err := dir.ComputeNodeID(ctx, inst.Host, inst.Node)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			ctrl.LoggerFrom(ctx).Info(
				"expected to find compute node when resolving interface binding",
				"host", inst.Host, "node", inst.Node)
			return nil, nil
		}
		return nil, err
	}

	var device *Device
	for i := range inst.Devices {
		d := &inst.Devices[i]
		if d.ComputeNodeID == nodeID && d.Address == addr {
			device = d
			break
		}
	}
	if device == nil {
		return nil, nil
	}

	for i := range inst.Requests {
		if inst.Requests[i].RequestID == device.RequestID {
			return &inst.Requests[i], nil
		}
	}
	return nil, &RequestNotFoundError{Address: addr, NodeID: nodeID}
}
