package chat

import (
	"github.com/alexanderramin/recipebot/internal/availability"
	"github.com/alexanderramin/recipebot/internal/contract"
)

type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

type Message struct {
	Role Role
	Text string
}

// Session is the state of one conversation. It is owned by the caller and
// threaded through every Respond call.
type Session struct {
	Messages []Message
	// LastRecs are the picks from the latest recommendation, after skipping.
	LastRecs []contract.Recommendation
	// Availability is fetched once per session.
	Availability *availability.Availability
}

func NewSession() *Session {
	return &Session{}
}

func (s *Session) add(role Role, text string) {
	s.Messages = append(s.Messages, Message{Role: role, Text: text})
}

// LastTopPick is the best recipe from the latest recommendation, if any.
func (s *Session) LastTopPick() (contract.Recommendation, bool) {
	if len(s.LastRecs) == 0 {
		return contract.Recommendation{}, false
	}
	return s.LastRecs[0], true
}
