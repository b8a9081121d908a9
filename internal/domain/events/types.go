package events

// Channel es texto libre; estos son los valores habituales.
type Channel string

const (
	ChannelWeb    Channel = "Web"
	ChannelMobile Channel = "Mobile"
	ChannelAPI    Channel = "API"
)

// Tipos de evento frecuentes (el campo es abierto).
const (
	TypeLogin         = "Login"
	TypeLogout        = "Logout"
	TypePasswordReset = "Password Reset"
	TypeProfileUpdate = "Profile Update"
)
