// Package services implements the driving ports of the core.
//
// Services orchestrate the parse -> normalize -> build pipeline and the
// query facade. They depend only on domain types and the driven port
// interfaces; all I/O happens behind those ports.
package services
