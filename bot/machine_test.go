package bot

import (
	"errors"
	"testing"

	"docbot/domain"
	"docbot/repository"
	"docbot/service"
)

type sentDoc struct {
	chatID   int64
	filename string
	size     int
}

type mockTransport struct {
	texts     []string
	menus     int
	documents []sentDoc
	failSend  bool
}

func (m *mockTransport) SendText(chatID int64, text string) error {
	m.texts = append(m.texts, text)
	return nil
}

func (m *mockTransport) SendMenu(chatID int64, text string, options []string) error {
	m.menus++
	return nil
}

func (m *mockTransport) SendDocument(chatID int64, filename string, data []byte) error {
	if m.failSend {
		return errors.New("delivery error")
	}
	m.documents = append(m.documents, sentDoc{chatID: chatID, filename: filename, size: len(data)})
	return nil
}

type mockBuilder struct {
	builds     []domain.Session // copies captured at build time
	forceError bool
}

func (m *mockBuilder) Build(s *domain.Session) (string, []byte, error) {
	m.builds = append(m.builds, *s)
	if m.forceError {
		return "", nil, errors.New("render error")
	}
	return s.Kind.String() + "_" + s.Name + ".pdf", []byte("%PDF"), nil
}

type nopRepo struct{}

func (nopRepo) Save(domain.LoanInput, domain.LoanResult) error { return nil }

func newTestMachine() (*Machine, *mockTransport, *mockBuilder) {
	tr := &mockTransport{}
	b := &mockBuilder{}
	loans := service.NewLoanService(nopRepo{}, repository.NewMemoryCache())
	return NewMachine(loans, b, tr), tr, b
}

func drive(m *Machine, chatID int64, messages ...string) {
	for _, msg := range messages {
		m.HandleMessage(chatID, msg)
	}
}

func TestGuaranteeShortcut_OneBuildNoNumericPrompts(t *testing.T) {

	m, tr, b := newTestMachine()

	drive(m, 7, "/start", "/garanzia", "Anna Bianchi")

	if len(b.builds) != 1 {
		t.Fatalf("expected exactly one build, got %d", len(b.builds))
	}
	built := b.builds[0]
	if built.Kind != domain.KindGuaranteeLetter || built.Name != "Anna Bianchi" {
		t.Errorf("built %v for %q", built.Kind, built.Name)
	}

	for _, txt := range tr.texts {
		if txt == msgAskAmount || txt == msgAskDuration {
			t.Errorf("guarantee flow must not prompt for loan parameters, saw %q", txt)
		}
	}

	if len(tr.documents) != 1 || tr.documents[0].filename != "Garanzia_Anna Bianchi.pdf" {
		t.Errorf("delivered %+v", tr.documents)
	}

	if s := m.Session(7); s.State != domain.StateChoosingDocument || s.Name != "" {
		t.Errorf("session not reset after delivery: %+v", s)
	}
}

func TestContractFlow_BlankRatesUseDefaults(t *testing.T) {

	m, tr, b := newTestMachine()

	drive(m, 9, "/start", "/contratto", "Mario Rossi", "1000", "12", "", "")

	if len(b.builds) != 1 {
		t.Fatalf("expected one build, got %d", len(b.builds))
	}
	built := b.builds[0]
	if built.TAN != service.DefaultTAN || built.TAEG != service.DefaultTAEG {
		t.Errorf("expected default rates, got TAN=%v TAEG=%v", built.TAN, built.TAEG)
	}
	if built.Amount != 1000 || built.Months != 12 {
		t.Errorf("collected amount=%v months=%v", built.Amount, built.Months)
	}
	// 1000 over 12 months at the default TAN, pinned
	if built.Payment != 86.92 {
		t.Errorf("expected payment 86.92, got %v", built.Payment)
	}
	if len(tr.documents) != 1 {
		t.Errorf("expected one delivered document")
	}
}

func TestAmountAcceptsCommaAndCurrencySymbol(t *testing.T) {

	m, _, b := newTestMachine()

	drive(m, 3, "/start", "/carta", "Luca Verdi", "€ 2500,50", "6", "", "")

	if len(b.builds) != 1 {
		t.Fatalf("expected one build, got %d", len(b.builds))
	}
	if b.builds[0].Amount != 2500.50 {
		t.Errorf("amount = %v, want 2500.50", b.builds[0].Amount)
	}
}

func TestMalformedAmountStaysInState(t *testing.T) {

	m, tr, _ := newTestMachine()

	drive(m, 5, "/start", "/contratto", "Mario Rossi", "abc")

	s := m.Session(5)
	if s.State != domain.StateAskAmount {
		t.Errorf("state = %v, want AskAmount", s.State)
	}
	if s.Amount != 0 {
		t.Errorf("principal mutated by malformed input: %v", s.Amount)
	}
	if last := tr.texts[len(tr.texts)-1]; last != msgBadAmount {
		t.Errorf("expected re-prompt %q, got %q", msgBadAmount, last)
	}
}

func TestMalformedDurationStaysInState(t *testing.T) {

	m, _, _ := newTestMachine()

	drive(m, 5, "/start", "/contratto", "Mario Rossi", "1000", "-3")

	s := m.Session(5)
	if s.State != domain.StateAskDuration {
		t.Errorf("state = %v, want AskDuration", s.State)
	}
	if s.Months != 0 {
		t.Errorf("months mutated by invalid input: %v", s.Months)
	}
}

func TestCancelClearsSessionFromAnyState(t *testing.T) {

	m, _, b := newTestMachine()

	drive(m, 11, "/start", "/contratto", "Mario Rossi", "1000", "/cancel")

	s := m.Session(11)
	if s.State != domain.StateChoosingDocument {
		t.Fatalf("state = %v, want ChoosingDocument", s.State)
	}
	if s.Name != "" || s.Amount != 0 || s.Kind != domain.KindNone {
		t.Errorf("session not cleared: %+v", s)
	}

	// the next guarantee flow must not see leftovers
	drive(m, 11, "/garanzia", "Paolo Neri")

	if len(b.builds) != 1 {
		t.Fatalf("expected one build, got %d", len(b.builds))
	}
	if got := b.builds[0]; got.Name != "Paolo Neri" || got.Amount != 0 {
		t.Errorf("leftover data leaked into new session: %+v", got)
	}
}

func TestRestartIsIdempotentReset(t *testing.T) {

	m, _, _ := newTestMachine()

	drive(m, 2, "/start", "/contratto", "Mario Rossi", "/start", "/start")

	s := m.Session(2)
	if s.State != domain.StateChoosingDocument || s.Name != "" {
		t.Errorf("restart did not reset: %+v", s)
	}
}

func TestMenuRepromptForUnknownChoice(t *testing.T) {

	m, tr, _ := newTestMachine()

	drive(m, 4, "/start", "ciao")

	if s := m.Session(4); s.State != domain.StateChoosingDocument || s.Kind != domain.KindNone {
		t.Errorf("unknown choice must keep the menu state: %+v", s)
	}
	if tr.menus < 2 {
		t.Errorf("expected the menu to be shown again, got %d menus", tr.menus)
	}
}

func TestBuildFailureResetsSession(t *testing.T) {

	m, tr, b := newTestMachine()
	b.forceError = true

	drive(m, 6, "/start", "/garanzia", "Anna Bianchi")

	if len(tr.documents) != 0 {
		t.Errorf("no document must be delivered on build failure")
	}
	found := false
	for _, txt := range tr.texts {
		if txt == msgBuildFailed {
			found = true
		}
	}
	if !found {
		t.Errorf("expected the generic failure notice")
	}
	if s := m.Session(6); s.State != domain.StateChoosingDocument || s.Name != "" {
		t.Errorf("session not reset after build failure: %+v", s)
	}
}

func TestDeliveryFailureResetsSession(t *testing.T) {

	m, tr, _ := newTestMachine()
	tr.failSend = true

	drive(m, 8, "/start", "/garanzia", "Anna Bianchi")

	found := false
	for _, txt := range tr.texts {
		if txt == msgSendFailed {
			found = true
		}
	}
	if !found {
		t.Errorf("expected the delivery failure notice")
	}
	if s := m.Session(8); s.State != domain.StateChoosingDocument || s.Name != "" {
		t.Errorf("session not reset after delivery failure: %+v", s)
	}
}

func TestSessionsAreIndependentPerChat(t *testing.T) {

	m, _, b := newTestMachine()

	drive(m, 100, "/start", "/contratto", "Cliente Uno", "1000")
	drive(m, 200, "/start", "/garanzia", "Cliente Due")

	if len(b.builds) != 1 {
		t.Fatalf("expected only the guarantee build, got %d", len(b.builds))
	}
	if b.builds[0].Name != "Cliente Due" {
		t.Errorf("cross-chat leakage: %+v", b.builds[0])
	}
	if s := m.Session(100); s.State != domain.StateAskDuration || s.Name != "Cliente Uno" {
		t.Errorf("chat 100 lost its progress: %+v", s)
	}
}

func TestContractFlow_ZeroAmountBuildsZeroPayment(t *testing.T) {

	m, tr, b := newTestMachine()

	drive(m, 42, "/start", "/contratto", "Mario Rossi", "0", "12", "", "")

	if len(b.builds) != 1 {
		t.Fatalf("expected one build for a zero principal, got %d", len(b.builds))
	}
	if got := b.builds[0].Payment; got != 0 {
		t.Errorf("expected a zero payment, got %.2f", got)
	}

	for _, txt := range tr.texts {
		if txt == msgBuildFailed {
			t.Errorf("zero principal must not be reported as a failure")
		}
	}
}
