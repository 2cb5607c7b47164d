package constant

// Entity type labels used in audit log rows.
const (
	AuditEntityContact     = "contact"
	AuditEntityProperty    = "property"
	AuditEntityOpportunity = "opportunity"
	AuditEntityActivity    = "activity"
)

// Audit actions.
const (
	AuditActionCreate      = "create"
	AuditActionUpdate      = "update"
	AuditActionDelete      = "delete"
	AuditActionStageChange = "stage_change"
)

// Activity types mirroring the activity form options.
const (
	ActivityTypeCall  = "call"
	ActivityTypeEmail = "email"
	ActivityTypeVisit = "visit"
	ActivityTypeTask  = "task"
)

// Property listing states.
const (
	PropertyStatusAvailable = "available"
	PropertyStatusReserved  = "reserved"
	PropertyStatusSold      = "sold"
)
