package simconnect

// Caller-chosen identifiers. SimConnect scopes each kind separately; the
// wrapper passes them through unchanged.
type (
	ClientEventID          uint32
	NotificationGroupID    uint32
	InputGroupID           uint32
	DataDefinitionID       uint32
	RequestID              uint32
	ObjectID               uint32
	ClientDataID           uint32
	ClientDataDefinitionID uint32
)
