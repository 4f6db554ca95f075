package inventory

import (
	"strings"

	"towerbox/pkg/netbox"
)

// Undefined is the placeholder emitted for attributes a record lacks.
const Undefined = "undefined"

// StatusActive is the NetBox status value of hosts eligible for the inventory.
const StatusActive = "active"

// Kind distinguishes where a host record came from, which decides the role
// hostvar name.
type Kind string

const (
	KindDevice         Kind = "device"
	KindVirtualMachine Kind = "virtual_machine"
)

// Host is the flattened form both NetBox record kinds convert into before
// grouping.
type Host struct {
	Name     string
	Address  string
	Site     string
	Platform string
	Role     string
	Status   string
	Tags     []string
	Kind     Kind
}

// FromDevice flattens a DCIM device record.
func FromDevice(d netbox.Device) Host {
	return Host{
		Name:     d.Name,
		Address:  addressOf(d.PrimaryIP),
		Site:     slugOf(d.Site),
		Platform: slugOf(d.Platform),
		Role:     slugOf(d.DeviceRole),
		Status:   statusOf(d.Status),
		Tags:     tagSlugs(d.Tags),
		Kind:     KindDevice,
	}
}

// FromVirtualMachine flattens a virtual machine record.
func FromVirtualMachine(vm netbox.VirtualMachine) Host {
	return Host{
		Name:     vm.Name,
		Address:  addressOf(vm.PrimaryIP),
		Site:     slugOf(vm.Site),
		Platform: slugOf(vm.Platform),
		Role:     slugOf(vm.Role),
		Status:   statusOf(vm.Status),
		Tags:     tagSlugs(vm.Tags),
		Kind:     KindVirtualMachine,
	}
}

// Active reports whether the host's NetBox status makes it eligible.
func (h Host) Active() bool {
	return h.Status == StatusActive
}

// Addressable reports whether the host has a usable primary IP.
func (h Host) Addressable() bool {
	return h.Address != Undefined
}

// Vars returns the hostvars published to the controller for this host.
// Devices report their role as netbox_device_role, virtual machines as
// netbox_role, matching the attribute names of the two NetBox APIs.
func (h Host) Vars() map[string]any {
	vars := map[string]any{
		"ansible_host":    h.Address,
		"netbox_platform": h.Platform,
		"netbox_status":   h.Status,
		"netbox_tags":     h.Tags,
	}
	if h.Kind == KindDevice {
		vars["netbox_device_role"] = h.Role
	} else {
		vars["netbox_role"] = h.Role
	}
	return vars
}

// groupingSlug returns the host's slug for a grouping attribute, and whether
// the host carries that attribute at all.
func (h Host) groupingSlug(grouping string) (string, bool) {
	var slug string
	switch grouping {
	case GroupBySite:
		slug = h.Site
	case GroupByPlatform:
		slug = h.Platform
	case GroupByRole:
		slug = h.Role
	default:
		return "", false
	}
	if slug == "" || slug == Undefined {
		return "", false
	}
	return slug, true
}

func slugOf(ref *netbox.NamedRef) string {
	if ref == nil || ref.Slug == "" {
		return Undefined
	}
	return ref.Slug
}

func statusOf(status *netbox.Status) string {
	if status == nil || status.Value == "" {
		return Undefined
	}
	return status.Value
}

// addressOf strips the CIDR suffix from the primary IP, e.g.
// "10.0.0.1/24" becomes "10.0.0.1".
func addressOf(ip *netbox.IPAddress) string {
	if ip == nil || ip.Address == "" {
		return Undefined
	}
	addr, _, _ := strings.Cut(ip.Address, "/")
	if addr == "" {
		return Undefined
	}
	return addr
}

func tagSlugs(tags []netbox.Tag) []string {
	slugs := make([]string, 0, len(tags))
	for _, tag := range tags {
		slugs = append(slugs, tag.Slug)
	}
	return slugs
}
