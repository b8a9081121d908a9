package actions

// ActionType es texto abierto; solo estos tres cambian el status del contract.
type ActionType string

const (
	ActionApprove ActionType = "approve"
	ActionReject  ActionType = "reject"
	ActionReopen  ActionType = "reopen"
	ActionFlag    ActionType = "flag"
)
