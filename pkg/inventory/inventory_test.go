package inventory

import (
	"encoding/json"
	"reflect"
	"testing"
)

func testHosts() []Host {
	return []Host{
		{
			Name: "edge-fra-01", Address: "192.0.2.10",
			Site: "fra", Platform: "junos", Role: "edge-router",
			Status: "active", Tags: []string{"production"}, Kind: KindDevice,
		},
		{
			Name: "web-01", Address: "192.0.2.20",
			Site: "fra", Platform: "ubuntu", Role: "web-server",
			Status: "active", Tags: []string{"web"}, Kind: KindVirtualMachine,
		},
		// offline, must be dropped
		{
			Name: "edge-fra-02", Address: "192.0.2.11",
			Site: "fra", Platform: "junos", Role: "edge-router",
			Status: "offline", Kind: KindDevice,
		},
		// no primary IP, must be dropped
		{
			Name: "mgmt-01", Address: Undefined,
			Site: "fra", Platform: "ubuntu", Role: "bastion",
			Status: "active", Kind: KindVirtualMachine,
		},
		// no site, joins the platform group only
		{
			Name: "lab-01", Address: "192.0.2.30",
			Site: Undefined, Platform: "ubuntu", Role: "lab",
			Status: "active", Kind: KindVirtualMachine,
		},
	}
}

func TestBuild(t *testing.T) {
	inv := Build(testHosts(), nil)

	wantGroups := map[string][]string{
		"fra":    {"edge-fra-01", "web-01"},
		"junos":  {"edge-fra-01"},
		"ubuntu": {"lab-01", "web-01"},
	}
	if len(inv.Groups) != len(wantGroups) {
		t.Fatalf("expected groups %v, got %v", wantGroups, inv.Groups)
	}
	for name, hosts := range wantGroups {
		group := inv.Groups[name]
		if group == nil {
			t.Fatalf("missing group %q", name)
		}
		if !reflect.DeepEqual(group.Hosts, hosts) {
			t.Errorf("group %q: expected hosts %v, got %v", name, hosts, group.Hosts)
		}
	}

	for _, name := range []string{"edge-fra-02", "mgmt-01"} {
		if _, ok := inv.Hostvars[name]; ok {
			t.Errorf("dropped host %q must not have hostvars", name)
		}
	}

	vars := inv.HostVars("edge-fra-01")
	if vars["ansible_host"] != "192.0.2.10" {
		t.Errorf("unexpected ansible_host: %#v", vars["ansible_host"])
	}
	if vars["netbox_device_role"] != "edge-router" {
		t.Errorf("unexpected netbox_device_role: %#v", vars["netbox_device_role"])
	}
}

func TestBuildUngroupedHostContributesNothing(t *testing.T) {
	// Active and addressable, but with no site or platform: the host joins
	// no group, so it must not show up in _meta.hostvars either.
	hosts := append(testHosts(), Host{
		Name: "orphan-01", Address: "192.0.2.40",
		Site: Undefined, Platform: Undefined, Role: "lab",
		Status: "active", Kind: KindVirtualMachine,
	})

	inv := Build(hosts, nil)

	for name, group := range inv.Groups {
		for _, host := range group.Hosts {
			if host == "orphan-01" {
				t.Errorf("orphan-01 must not be in group %q", name)
			}
		}
	}
	if _, ok := inv.Hostvars["orphan-01"]; ok {
		t.Error("a host outside all groups must not have hostvars")
	}
}

func TestBuildCustomGroupings(t *testing.T) {
	inv := Build(testHosts(), []string{GroupByRole})

	wantGroups := []string{"edge_router", "lab", "web_server"}
	for _, name := range wantGroups {
		if inv.Groups[name] == nil {
			t.Errorf("missing group %q, got %v", name, inv.Groups)
		}
	}
	if len(inv.Groups) != len(wantGroups) {
		t.Errorf("expected %d groups, got %v", len(wantGroups), inv.Groups)
	}
}

func TestBuildDeduplicatesHosts(t *testing.T) {
	// Same site and platform slug: the host joins the group once.
	hosts := []Host{{
		Name: "web-01", Address: "192.0.2.20",
		Site: "fra", Platform: "fra", Role: "web-server",
		Status: "active", Kind: KindVirtualMachine,
	}}

	inv := Build(hosts, nil)
	if got := inv.Groups["fra"].Hosts; !reflect.DeepEqual(got, []string{"web-01"}) {
		t.Errorf("expected a single membership, got %v", got)
	}
}

func TestHostVarsUnknownHost(t *testing.T) {
	inv := Build(testHosts(), nil)

	vars := inv.HostVars("does-not-exist")
	if vars == nil {
		t.Fatal("expected an empty map, got nil")
	}
	if len(vars) != 0 {
		t.Errorf("expected an empty map, got %#v", vars)
	}
}

func TestMarshalJSONEmpty(t *testing.T) {
	out, err := json.Marshal(Build(nil, nil))
	if err != nil {
		t.Fatalf("error marshalling empty inventory: %v", err)
	}

	if got := string(out); got != `{"_meta":{"hostvars":{}}}` {
		t.Errorf("unexpected empty inventory document: %s", got)
	}
}

func TestMarshalJSON(t *testing.T) {
	inv := Build(testHosts(), nil)

	out, err := json.Marshal(inv)
	if err != nil {
		t.Fatalf("error marshalling inventory: %v", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("error unmarshalling document: %v", err)
	}

	for _, key := range []string{"fra", "junos", "ubuntu", "_meta"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("missing top-level key %q", key)
		}
	}

	var meta struct {
		Hostvars map[string]map[string]any `json:"hostvars"`
	}
	if err := json.Unmarshal(doc["_meta"], &meta); err != nil {
		t.Fatalf("error unmarshalling _meta: %v", err)
	}
	if meta.Hostvars["web-01"]["netbox_role"] != "web-server" {
		t.Errorf("unexpected hostvars for web-01: %#v", meta.Hostvars["web-01"])
	}

	var group struct {
		Hosts []string `json:"hosts"`
	}
	if err := json.Unmarshal(doc["fra"], &group); err != nil {
		t.Fatalf("error unmarshalling group: %v", err)
	}
	if !reflect.DeepEqual(group.Hosts, []string{"edge-fra-01", "web-01"}) {
		t.Errorf("unexpected hosts in group fra: %v", group.Hosts)
	}
}
