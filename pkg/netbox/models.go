package netbox

import "encoding/json"

// NamedRef is the abbreviated form NetBox embeds for related objects
// such as sites, platforms, roles, and clusters.
type NamedRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Status holds the machine-readable value and the display label of a
// record's lifecycle state.
type Status struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// IPAddress is the abbreviated IP object NetBox embeds as primary_ip.
// Address carries the CIDR suffix, e.g. "10.0.0.1/24".
type IPAddress struct {
	ID      int64  `json:"id"`
	Address string `json:"address"`
}

// Tag is a NetBox tag assignment.
type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Device is a DCIM device record, reduced to the fields the inventory needs.
type Device struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	Site       *NamedRef  `json:"site"`
	Platform   *NamedRef  `json:"platform"`
	DeviceRole *NamedRef  `json:"device_role"`
	Status     *Status    `json:"status"`
	PrimaryIP  *IPAddress `json:"primary_ip"`
	Tags       []Tag      `json:"tags"`
}

// VirtualMachine is a virtualization record. Unlike devices, VMs carry their
// role under "role" and may reference a cluster instead of a site.
type VirtualMachine struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Site      *NamedRef  `json:"site"`
	Cluster   *NamedRef  `json:"cluster"`
	Platform  *NamedRef  `json:"platform"`
	Role      *NamedRef  `json:"role"`
	Status    *Status    `json:"status"`
	PrimaryIP *IPAddress `json:"primary_ip"`
	Tags      []Tag      `json:"tags"`
}

// StatusInfo is the document returned by /api/status/.
type StatusInfo struct {
	NetBoxVersion string            `json:"netbox-version"`
	PythonVersion string            `json:"python-version"`
	Plugins       map[string]string `json:"plugins"`
}

// paginatedResponse is the list envelope every NetBox collection endpoint
// returns. Results is decoded per endpoint.
type paginatedResponse struct {
	Count    int             `json:"count"`
	Next     *string         `json:"next"`
	Previous *string         `json:"previous"`
	Results  json.RawMessage `json:"results"`
}
