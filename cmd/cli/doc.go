/*
Command towerbox queries a NetBox instance for devices and virtual machines
and prints a dynamic inventory for Ansible AWX/Tower.

Add the binary as a custom inventory script in AWX/Tower, then create an
inventory that uses it. Hosts are grouped by their NetBox site and platform;
only active hosts with a defined primary IP are included.

Inventory script contract

	towerbox --list         print the full inventory document
	towerbox --host <name>  print hostvars for a single host

Environment

	NETBOX_HOST_URL              NetBox URL, eg. https://netbox.example.com (required)
	NETBOX_AUTH_TOKEN            NetBox API token (required)
	NETBOX_GROUP_BY              comma-separated grouping attributes (site, platform, role);
	                             default "site,platform"
	NETBOX_INSECURE_SKIP_VERIFY  ignore invalid SSL chains
	NETBOX_REQUEST_TIMEOUT       per-request HTTP timeout, eg. "45s"; default 30s
*/
package main
