package domain

// Message is one chat turn inside the live session snapshot.
type Message struct {
	IsUser  bool
	Content string
}

// SessionSnapshot is the caller-supplied view of the running session. It is
// request-scoped and never persisted; analyzers read it alongside stored
// history to decide whether the session needs adapting.
type SessionSnapshot struct {
	Messages         []Message
	CurrentMood      *float64
	InitialMood      *float64
	CurrentTechnique string
	InteractionDepth int
	AvgResponseLen   float64
	AvgResponseSec   float64
}

// UserMessages returns only the user-authored turns.
func (s SessionSnapshot) UserMessages() []Message {
	var out []Message
	for _, m := range s.Messages {
		if m.IsUser {
			out = append(out, m)
		}
	}
	return out
}

// MoodShift returns current - initial mood, and whether both readings exist.
func (s SessionSnapshot) MoodShift() (float64, bool) {
	if s.CurrentMood == nil || s.InitialMood == nil {
		return 0, false
	}
	return *s.CurrentMood - *s.InitialMood, true
}
