package bot

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"

	"docbot/domain"
	"docbot/service"
)

// Conversational command surface.
const (
	cmdStart     = "/start"
	cmdCancel    = "/cancel"
	cmdContract  = "/contratto"
	cmdGuarantee = "/garanzia"
	cmdCard      = "/carta"
)

var menuOptions = []string{cmdContract, cmdGuarantee, cmdCard}

// User-facing replies (Italian, like the original command surface).
const (
	msgMenu        = "Benvenuto! Scegli documento:"
	msgAskName     = "Inserisci nome e cognome del cliente:"
	msgAskAmount   = "Inserisci importo (€):"
	msgBadAmount   = "Importo non valido, riprova:"
	msgAskDuration = "Inserisci durata (mesi):"
	msgBadDuration = "Durata non valida, riprova:"
	msgBadRate     = "Tasso non valido, riprova:"
	msgCancelled   = "Operazione annullata."
	msgBuildFailed = "Errore durante la generazione del documento. Contatta l'amministratore."
	msgSendFailed  = "Errore durante l'invio del documento. Contatta l'amministratore."
)

// DocumentBuilder produces the finished artifact for a completed session.
type DocumentBuilder interface {
	Build(s *domain.Session) (filename string, data []byte, err error)
}

// Machine drives one conversation per chat through the document flow:
// ChoosingDocument → AskName → [AskAmount → AskDuration → AskTAN → AskTAEG]
// → build → ChoosingDocument. Every production attempt, cancel or restart
// resets the session, so nothing leaks into the next flow.
type Machine struct {
	loans     *service.LoanService
	builder   DocumentBuilder
	transport Transport

	mu       sync.Mutex
	sessions map[int64]*domain.Session
}

func NewMachine(loans *service.LoanService, builder DocumentBuilder, transport Transport) *Machine {
	return &Machine{
		loans:     loans,
		builder:   builder,
		transport: transport,
		sessions:  make(map[int64]*domain.Session),
	}
}

// Session returns the current session of a chat, creating it at the menu
// state on first contact.
func (m *Machine) Session(chatID int64) *domain.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[chatID]
	if !ok {
		s = domain.NewSession(chatID)
		m.sessions[chatID] = s
	}
	return s
}

// HandleMessage routes one inbound message through exactly one state
// transition. Messages of the same chat must be handled sequentially; the
// dispatch loop guarantees that.
func (m *Machine) HandleMessage(chatID int64, text string) {
	s := m.Session(chatID)
	text = strings.TrimSpace(text)

	// /start and /cancel are idempotent resets from any state.
	switch text {
	case cmdStart:
		m.toMenu(s)
		return
	case cmdCancel:
		m.send(chatID, msgCancelled)
		m.toMenu(s)
		return
	}

	switch s.State {
	case domain.StateChoosingDocument:
		m.chooseDocument(s, text)
	case domain.StateAskName:
		m.askName(s, text)
	case domain.StateAskAmount:
		m.askAmount(s, text)
	case domain.StateAskDuration:
		m.askDuration(s, text)
	case domain.StateAskTAN:
		m.askTAN(s, text)
	case domain.StateAskTAEG:
		m.askTAEG(s, text)
	}
}

func (m *Machine) chooseDocument(s *domain.Session, text string) {
	switch text {
	case cmdContract:
		s.Kind = domain.KindContract
	case cmdGuarantee:
		s.Kind = domain.KindGuaranteeLetter
	case cmdCard:
		s.Kind = domain.KindCardLetter
	default:
		m.menu(s.ChatID)
		return
	}
	s.State = domain.StateAskName
	m.send(s.ChatID, msgAskName)
}

func (m *Machine) askName(s *domain.Session, text string) {
	if text == "" || strings.HasPrefix(text, "/") {
		m.send(s.ChatID, msgAskName)
		return
	}
	s.Name = text

	// The guarantee letter needs no loan parameters.
	if s.Kind == domain.KindGuaranteeLetter {
		m.produce(s)
		return
	}
	s.State = domain.StateAskAmount
	m.send(s.ChatID, msgAskAmount)
}

func (m *Machine) askAmount(s *domain.Session, text string) {
	amount, err := parseAmount(text)
	if err != nil {
		m.send(s.ChatID, msgBadAmount)
		return
	}
	s.Amount = service.RoundMoney(amount)
	s.State = domain.StateAskDuration
	m.send(s.ChatID, msgAskDuration)
}

func (m *Machine) askDuration(s *domain.Session, text string) {
	months, err := strconv.Atoi(text)
	if err != nil || months <= 0 {
		m.send(s.ChatID, msgBadDuration)
		return
	}
	s.Months = months
	s.State = domain.StateAskTAN
	m.send(s.ChatID, fmt.Sprintf("Inserisci TAN (%%), enter per %.2f%%:", service.DefaultTAN))
}

func (m *Machine) askTAN(s *domain.Session, text string) {
	rate, err := parseRate(text, service.DefaultTAN)
	if err != nil {
		m.send(s.ChatID, msgBadRate)
		return
	}
	s.TAN = rate
	s.State = domain.StateAskTAEG
	m.send(s.ChatID, fmt.Sprintf("Inserisci TAEG (%%), enter per %.2f%%:", service.DefaultTAEG))
}

func (m *Machine) askTAEG(s *domain.Session, text string) {
	rate, err := parseRate(text, service.DefaultTAEG)
	if err != nil {
		m.send(s.ChatID, msgBadRate)
		return
	}
	s.TAEG = rate

	result, err := m.loans.Calculate(domain.LoanInput{
		Amount:       s.Amount,
		InterestRate: s.TAN,
		TermMonths:   s.Months,
	})
	if err != nil {
		log.Printf("payment calculation failed for chat %d: %v", s.ChatID, err)
		m.send(s.ChatID, msgBuildFailed)
		m.toMenu(s)
		return
	}
	s.Payment = result.MonthlyPayment

	m.produce(s)
}

// produce builds and delivers the session's document, then resets to the
// menu. Build and delivery failures are fatal to the session, never to the
// process, and never retried.
func (m *Machine) produce(s *domain.Session) {
	filename, data, err := m.builder.Build(s)
	if err != nil {
		log.Printf("document build failed for chat %d: %v", s.ChatID, err)
		m.send(s.ChatID, msgBuildFailed)
		m.toMenu(s)
		return
	}

	if err := m.transport.SendDocument(s.ChatID, filename, data); err != nil {
		log.Printf("document delivery failed for chat %d: %v", s.ChatID, err)
		m.send(s.ChatID, msgSendFailed)
	}
	m.toMenu(s)
}

func (m *Machine) toMenu(s *domain.Session) {
	s.Reset()
	m.menu(s.ChatID)
}

func (m *Machine) menu(chatID int64) {
	if err := m.transport.SendMenu(chatID, msgMenu, menuOptions); err != nil {
		log.Printf("failed to send menu to chat %d: %v", chatID, err)
	}
}

func (m *Machine) send(chatID int64, text string) {
	if err := m.transport.SendText(chatID, text); err != nil {
		log.Printf("failed to send message to chat %d: %v", chatID, err)
	}
}

// parseAmount accepts "1000", "1000,50", "€ 1000.50".
func parseAmount(text string) (float64, error) {
	cleaned := strings.ReplaceAll(text, "€", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	cleaned = strings.TrimSpace(cleaned)
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("negative amount")
	}
	return v, nil
}

// parseRate accepts a decimal (comma or dot) or blank for the default.
func parseRate(text string, fallback float64) (float64, error) {
	if text == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(text, ",", "."), 64)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("negative rate")
	}
	return v, nil
}
