// Package entity contains the core business objects of the project.
package entity

// Role names carried in access-token claims.
const (
	// RoleSalesRep is a field sales representative tracked against outlets.
	RoleSalesRep = "sales_rep"
	// RoleSupervisor is a distributor-side supervisor who receives visit notifications.
	RoleSupervisor = "supervisor"
)
