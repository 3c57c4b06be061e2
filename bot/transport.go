package bot

// Transport delivers outbound messages and artifacts for one chat. The
// concrete messaging system (Telegram in production, a recorder in tests)
// stays behind this interface.
type Transport interface {
	SendText(chatID int64, text string) error
	// SendMenu sends text together with a one-time reply keyboard.
	SendMenu(chatID int64, text string, options []string) error
	SendDocument(chatID int64, filename string, data []byte) error
}
