// Package rackd is a datacenter hardware inventory service.
//
// # Overview
//
// rackd tracks the physical hardware estate: datacenters, the cabinets
// inside them, and the devices racked in each cabinet (servers, power
// distribution units and network devices). Placement and cabling are
// first-class records, and everything derived from them (power supply,
// allocation and headroom per cabinet, port usage per device, which PDUs
// feed a server and which switches uplink it) is computed from the live
// inventory on every read, never stored.
//
// The service consists of three layers:
//   - API Server: REST API plus a WebSocket feed of inventory changes
//   - Inventory: pure derived computations (power, ports, placement)
//   - Storage Layer: GORM-backed relational storage (postgres or sqlite)
//
// # Data Model
//
// Devices are a polymorphic union: one identity row carrying a type
// discriminator, and one variant row (server, power_distribution_unit or
// network_device) sharing its primary key. Placement and cabling always
// reference the identity, so a cable does not care what kind of hardware
// sits at either end.
//
// Uniqueness is enforced by the store, not by application checks:
//   - a device occupies at most one cabinet (unique device per assignment)
//   - a port carries at most one cable (unique device/port pair)
//   - (manufacturer, model, serial) is unique per device variant
//
// Concurrent claims on the same device or port are arbitrated by those
// constraints at commit time; the losing request receives a conflict and
// may retry once the winning record is removed.
//
// # Usage
//
// Start the API server:
//
//	rackd server --config config.yaml
//
// Generate a bearer token when authentication is enabled:
//
//	rackd token generate alice --role operator
//
// # Configuration
//
// Configuration can be provided via:
//   - YAML file (config.yaml)
//   - Environment variables (RACKD_ prefix)
//   - .env file
//
// Example configuration:
//
//	server:
//	  host: 0.0.0.0
//	  port: 8080
//	database:
//	  driver: postgres
//	  dsn: host=localhost user=rackd dbname=rackd sslmode=disable
//	inventory:
//	  enforce_overlap: false
//
// # API Endpoints
//
// Facilities:
//   - GET/POST       /api/v1/datacenters
//   - GET/PUT/DELETE /api/v1/datacenters/:id
//   - GET/POST       /api/v1/cabinets
//   - GET/PUT/DELETE /api/v1/cabinets/:id
//   - GET            /api/v1/cabinets/:id/devices
//   - GET            /api/v1/cabinets/:id/export
//
// Devices:
//   - GET/POST       /api/v1/servers, /api/v1/pdus, /api/v1/network-devices
//   - GET/PUT/DELETE /api/v1/servers/:id, /api/v1/pdus/:id, /api/v1/network-devices/:id
//   - GET            /api/v1/devices/:id
//
// Placement and cabling:
//   - GET/POST       /api/v1/cabinet-assignments, /api/v1/port-assignments
//   - GET/PUT/DELETE /api/v1/cabinet-assignments/:id, /api/v1/port-assignments/:id
//
// Events:
//   - GET /api/v1/ws/inventory
package rackd
