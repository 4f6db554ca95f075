package inventory

import (
	"reflect"
	"testing"

	"towerbox/pkg/netbox"
)

func TestFromDevice(t *testing.T) {
	device := netbox.Device{
		ID:         1,
		Name:       "edge-fra-01",
		Site:       &netbox.NamedRef{ID: 10, Name: "Frankfurt", Slug: "fra"},
		Platform:   &netbox.NamedRef{ID: 20, Name: "Junos", Slug: "junos"},
		DeviceRole: &netbox.NamedRef{ID: 30, Name: "Edge Router", Slug: "edge-router"},
		Status:     &netbox.Status{Value: "active", Label: "Active"},
		PrimaryIP:  &netbox.IPAddress{ID: 40, Address: "192.0.2.10/24"},
		Tags:       []netbox.Tag{{ID: 50, Name: "Production", Slug: "production"}},
	}

	host := FromDevice(device)

	if host.Name != "edge-fra-01" {
		t.Errorf("unexpected name: %q", host.Name)
	}
	if host.Address != "192.0.2.10" {
		t.Errorf("expected the CIDR suffix stripped, got %q", host.Address)
	}
	if host.Site != "fra" || host.Platform != "junos" || host.Role != "edge-router" {
		t.Errorf("unexpected slugs: site=%q platform=%q role=%q", host.Site, host.Platform, host.Role)
	}
	if host.Kind != KindDevice {
		t.Errorf("unexpected kind: %q", host.Kind)
	}
	if !host.Active() || !host.Addressable() {
		t.Error("expected an active, addressable host")
	}
}

func TestFromDeviceMissingAttributes(t *testing.T) {
	host := FromDevice(netbox.Device{ID: 2, Name: "bare"})

	if host.Address != Undefined {
		t.Errorf("expected undefined address, got %q", host.Address)
	}
	if host.Site != Undefined || host.Platform != Undefined || host.Role != Undefined {
		t.Errorf("expected undefined slugs: site=%q platform=%q role=%q", host.Site, host.Platform, host.Role)
	}
	if host.Status != Undefined {
		t.Errorf("expected undefined status, got %q", host.Status)
	}
	if host.Active() {
		t.Error("a host without a status must not count as active")
	}
	if host.Addressable() {
		t.Error("a host without a primary IP must not count as addressable")
	}
}

func TestFromVirtualMachineVars(t *testing.T) {
	vm := netbox.VirtualMachine{
		ID:        7,
		Name:      "web-01",
		Site:      &netbox.NamedRef{ID: 10, Slug: "fra"},
		Platform:  &netbox.NamedRef{ID: 21, Slug: "ubuntu"},
		Role:      &netbox.NamedRef{ID: 31, Slug: "web-server"},
		Status:    &netbox.Status{Value: "active"},
		PrimaryIP: &netbox.IPAddress{ID: 42, Address: "2001:db8::20/64"},
		Tags:      []netbox.Tag{{Slug: "web"}, {Slug: "frontend"}},
	}

	host := FromVirtualMachine(vm)
	if host.Address != "2001:db8::20" {
		t.Errorf("expected the prefix length stripped, got %q", host.Address)
	}

	want := map[string]any{
		"ansible_host":    "2001:db8::20",
		"netbox_platform": "ubuntu",
		"netbox_status":   "active",
		"netbox_tags":     []string{"web", "frontend"},
		"netbox_role":     "web-server",
	}
	if got := host.Vars(); !reflect.DeepEqual(got, want) {
		t.Errorf("unexpected hostvars:\n got %#v\nwant %#v", got, want)
	}
}

func TestDeviceVarsUseDeviceRole(t *testing.T) {
	host := FromDevice(netbox.Device{
		Name:       "edge-fra-01",
		DeviceRole: &netbox.NamedRef{Slug: "edge-router"},
	})

	vars := host.Vars()
	if vars["netbox_device_role"] != "edge-router" {
		t.Errorf("expected netbox_device_role, got %#v", vars)
	}
	if _, ok := vars["netbox_role"]; ok {
		t.Error("devices must not publish netbox_role")
	}
}

func TestGroupingSlug(t *testing.T) {
	host := Host{Site: "fra", Platform: Undefined, Role: "web-server"}

	cases := []struct {
		grouping string
		want     string
		ok       bool
	}{
		{GroupBySite, "fra", true},
		{GroupByPlatform, "", false},
		{GroupByRole, "web-server", true},
		{"cluster", "", false},
	}

	for _, tc := range cases {
		got, ok := host.groupingSlug(tc.grouping)
		if got != tc.want || ok != tc.ok {
			t.Errorf("groupingSlug(%q) = %q, %v; want %q, %v", tc.grouping, got, ok, tc.want, tc.ok)
		}
	}
}
