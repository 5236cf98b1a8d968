package presentation

const (
	IDParam      = "id"
	SessionParam = "sessionId"
	UserParam    = "userId"
	TypeKey      = "Content-Type"
	ReasonTag    = "X-Reason"
)
