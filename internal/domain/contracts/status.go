package contracts

// State son los estados que el motor de ciclo de vida conoce.
type State int

const (
	StateDraft State = iota + 1
	StatePendingApproval
	StateApproved
	StateRejected
	StateActive
	StateExpired
)

var stateNames = map[State]string{
	StateDraft:           "Draft",
	StatePendingApproval: "Pending Approval",
	StateApproved:        "Approved",
	StateRejected:        "Rejected",
	StateActive:          "Active",
	StateExpired:         "Expired",
}

func (s State) String() string {
	return stateNames[s]
}

// Status es una variante: un State conocido u otro valor libre (legacy / override).
// El valor cero es un status vacío.
type Status struct {
	state State
	other string
}

func Known(s State) Status {
	return Status{state: s}
}

func Other(raw string) Status {
	return Status{other: raw}
}

// ParseStatus reconoce los nombres canónicos; cualquier otro texto queda como Other.
func ParseStatus(raw string) Status {
	for st, name := range stateNames {
		if raw == name {
			return Known(st)
		}
	}
	return Other(raw)
}

// State devuelve el estado conocido, si lo es.
func (s Status) State() (State, bool) {
	return s.state, s.state != 0
}

func (s Status) String() string {
	if s.state != 0 {
		return s.state.String()
	}
	return s.other
}

func (s Status) IsZero() bool {
	return s.state == 0 && s.other == ""
}
