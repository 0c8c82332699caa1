package binding

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/virt-d/passthrough-alias-resolver/pkg/request"
)

type fakeDirectory struct {
	nodes map[string]string
	err   error
	calls int
}

func (f *fakeDirectory) ComputeNodeID(_ context.Context, host, node string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	id, ok := f.nodes[host+"/"+node]
	if !ok {
		return "", ErrNotFound
	}
	return id, nil
}

var _ = Describe("RequestForInterface", func() {
	var (
		ctx  context.Context
		dir  *fakeDirectory
		inst *Instance
	)

	BeforeEach(func() {
		ctx = context.Background()
		dir = &fakeDirectory{nodes: map[string]string{"host1/node1": "cn-42"}}
		inst = &Instance{
			Host: "host1",
			Node: "node1",
			Devices: []Device{
				{Address: "0000:81:00.1", ComputeNodeID: "cn-42", RequestID: "req-a"},
				{Address: "0000:81:00.2", ComputeNodeID: "cn-42", RequestID: "req-missing"},
				{Address: "0000:81:00.3", ComputeNodeID: "cn-7", RequestID: "req-a"},
			},
			Requests: []request.Request{
				{AliasName: "nic", Count: 1, RequestID: "req-a"},
				{AliasName: "gpu", Count: 2, RequestID: "req-b"},
			},
		}
	})

	Context("when the interface carries no device address", func() {
		It("returns no request without consulting the directory", func() {
			iface := &Interface{ID: "vif-1", Profile: map[string]string{"physical_network": "physnet1"}}
			req, err := RequestForInterface(ctx, dir, inst, iface)
			Expect(err).NotTo(HaveOccurred())
			Expect(req).To(BeNil())
			Expect(dir.calls).To(BeZero())
		})

		It("handles a nil profile", func() {
			req, err := RequestForInterface(ctx, dir, inst, &Interface{ID: "vif-1"})
			Expect(err).NotTo(HaveOccurred())
			Expect(req).To(BeNil())
		})
	})

	Context("when the compute node is not in the directory", func() {
		It("downgrades the miss to no request", func() {
			inst.Node = "node-gone"
			iface := &Interface{Profile: map[string]string{ProfileDeviceAddressKey: "0000:81:00.1"}}
			req, err := RequestForInterface(ctx, dir, inst, iface)
			Expect(err).NotTo(HaveOccurred())
			Expect(req).To(BeNil())
		})
	})

	Context("when the directory fails", func() {
		It("propagates errors other than a miss", func() {
			dir.err = errors.New("directory unavailable")
			iface := &Interface{Profile: map[string]string{ProfileDeviceAddressKey: "0000:81:00.1"}}
			_, err := RequestForInterface(ctx, dir, inst, iface)
			Expect(err).To(MatchError("directory unavailable"))
		})
	})

	Context("when a bound device matches", func() {
		It("returns the originating request", func() {
			iface := &Interface{Profile: map[string]string{ProfileDeviceAddressKey: "0000:81:00.1"}}
			req, err := RequestForInterface(ctx, dir, inst, iface)
			Expect(err).NotTo(HaveOccurred())
			Expect(req).NotTo(BeNil())
			Expect(req.RequestID).To(Equal("req-a"))
			Expect(req.AliasName).To(Equal("nic"))
		})

		It("fails when no request carries the device's request id", func() {
			iface := &Interface{Profile: map[string]string{ProfileDeviceAddressKey: "0000:81:00.2"}}
			_, err := RequestForInterface(ctx, dir, inst, iface)
			var notFound *RequestNotFoundError
			Expect(errors.As(err, &notFound)).To(BeTrue())
			Expect(notFound.Address).To(Equal("0000:81:00.2"))
			Expect(notFound.NodeID).To(Equal("cn-42"))
		})
	})

	Context("when the device belongs to another compute node", func() {
		It("returns no request", func() {
			iface := &Interface{Profile: map[string]string{ProfileDeviceAddressKey: "0000:81:00.3"}}
			req, err := RequestForInterface(ctx, dir, inst, iface)
			Expect(err).NotTo(HaveOccurred())
			Expect(req).To(BeNil())
		})
	})

	Context("when no bound device matches the address", func() {
		It("returns no request", func() {
			iface := &Interface{Profile: map[string]string{ProfileDeviceAddressKey: "0000:ff:00.0"}}
			req, err := RequestForInterface(ctx, dir, inst, iface)
			Expect(err).NotTo(HaveOccurred())
			Expect(req).To(BeNil())
		})
	})
})
