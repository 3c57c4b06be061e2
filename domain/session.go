package domain

// DocumentKind selects which of the three documents a session produces.
type DocumentKind int

const (
	KindNone DocumentKind = iota
	KindContract
	KindGuaranteeLetter
	KindCardLetter
)

func (k DocumentKind) String() string {
	switch k {
	case KindContract:
		return "Contratto"
	case KindGuaranteeLetter:
		return "Garanzia"
	case KindCardLetter:
		return "Carta"
	default:
		return "Nessuno"
	}
}

// State is the position of a conversation in the document flow.
type State int

const (
	StateChoosingDocument State = iota
	StateAskName
	StateAskAmount
	StateAskDuration
	StateAskTAN
	StateAskTAEG
)

// Session is the mutable per-conversation state. It is owned by the state
// machine for exactly one conversation and never shared across chats.
type Session struct {
	ChatID  int64
	State   State
	Kind    DocumentKind
	Name    string
	Amount  float64
	Months  int
	TAN     float64
	TAEG    float64
	Payment float64
}

// NewSession returns an empty session at the document-choice menu.
func NewSession(chatID int64) *Session {
	return &Session{ChatID: chatID, State: StateChoosingDocument}
}

// Reset clears every collected field and returns the session to the menu.
// Called after every production attempt, cancel and restart so no name or
// amount leaks into the next flow.
func (s *Session) Reset() {
	*s = Session{ChatID: s.ChatID, State: StateChoosingDocument}
}
