package auth

type Stage int

const (
	StageIdle Stage = iota
	StageRequestingToken
	StageAwaitingLogin
	StageEstablishingSession
	StageFetchingUserID
	StageComplete
	StageFailed
)

func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageRequestingToken:
		return "requesting token"
	case StageAwaitingLogin:
		return "awaiting login"
	case StageEstablishingSession:
		return "establishing session"
	case StageFetchingUserID:
		return "fetching user id"
	case StageComplete:
		return "complete"
	case StageFailed:
		return "failed"
	default:
		return "unknown"
	}
}

func (s Stage) Terminal() bool {
	return s == StageComplete || s == StageFailed
}

// Message returns the message shown to the user when the stage fails.
func (s Stage) Message() string {
	switch s {
	case StageRequestingToken:
		return "Login Failed (Request Token)."
	case StageAwaitingLogin:
		return "Login Failed (Session Invalid)."
	case StageEstablishingSession:
		return "Login Failed (Session ID)."
	case StageFetchingUserID:
		return "Login Failed (User ID)."
	default:
		return "Login Failed."
	}
}
