// Package inventory turns NetBox host records into the dynamic inventory
// document Ansible AWX/Tower consume from a custom inventory script.
package inventory

import (
	"encoding/json"
	"slices"
)

// Grouping attributes hosts can be grouped by.
const (
	GroupBySite     = "site"
	GroupByPlatform = "platform"
	GroupByRole     = "role"
)

// DefaultGroupings is the grouping set used when none is configured.
var DefaultGroupings = []string{GroupBySite, GroupByPlatform}

// ValidGrouping reports whether name is a supported grouping attribute.
func ValidGrouping(name string) bool {
	switch name {
	case GroupBySite, GroupByPlatform, GroupByRole:
		return true
	}
	return false
}

// Group is one inventory group.
type Group struct {
	Hosts []string `json:"hosts"`
}

// Inventory is the complete dynamic inventory document.
type Inventory struct {
	Groups   map[string]*Group
	Hostvars map[string]map[string]any
}

// Build filters and groups hosts. Only active hosts with a defined primary IP
// are included; a host joins one group per grouping attribute it carries, and
// a host that joins no group contributes no hostvars either. Group host lists
// are deduplicated and sorted for stable output.
func Build(hosts []Host, groupings []string) *Inventory {
	if len(groupings) == 0 {
		groupings = DefaultGroupings
	}

	inv := &Inventory{
		Groups:   make(map[string]*Group),
		Hostvars: make(map[string]map[string]any),
	}

	for _, host := range hosts {
		if !host.Active() || !host.Addressable() {
			continue
		}
		for _, grouping := range groupings {
			slug, ok := host.groupingSlug(grouping)
			if !ok {
				continue
			}
			name := SanitizeGroupName(slug)
			group := inv.Groups[name]
			if group == nil {
				group = &Group{}
				inv.Groups[name] = group
			}
			group.Hosts = append(group.Hosts, host.Name)
			inv.Hostvars[host.Name] = host.Vars()
		}
	}

	for _, group := range inv.Groups {
		slices.Sort(group.Hosts)
		group.Hosts = slices.Compact(group.Hosts)
	}

	return inv
}

// HostVars returns the hostvars for a single host, or an empty map when the
// host is not in the inventory. That is the contract for `--host` queries.
func (inv *Inventory) HostVars(name string) map[string]any {
	if vars, ok := inv.Hostvars[name]; ok {
		return vars
	}
	return map[string]any{}
}

// MarshalJSON emits the inventory-script shape: each group at the top level
// next to the _meta.hostvars namespace.
func (inv *Inventory) MarshalJSON() ([]byte, error) {
	doc := make(map[string]any, len(inv.Groups)+1)
	for name, group := range inv.Groups {
		doc[name] = group
	}
	doc["_meta"] = map[string]any{"hostvars": inv.Hostvars}
	return json.Marshal(doc)
}
