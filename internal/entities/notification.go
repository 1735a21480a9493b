package entities

import "time"

type Channel string

const (
	ChannelAdminEmail  Channel = "admin-email"
	ChannelUserEmail   Channel = "user-email"
	ChannelWhatsApp    Channel = "whatsapp"
	ChannelSpreadsheet Channel = "spreadsheet"
)

func (c Channel) String() string {
	return string(c)
}

type OutcomeStatus string

const (
	OutcomeSucceeded OutcomeStatus = "succeeded"
	OutcomeFailed    OutcomeStatus = "failed"
)

func (s OutcomeStatus) String() string {
	return string(s)
}

type NotificationOutcome struct {
	OrderID   int64
	Channel   Channel
	Status    OutcomeStatus
	Attempts  int
	Error     string
	UpdatedAt time.Time
}

// Receipt - PDF квитанция заказа. Не хранится, всегда перегенерируется из заказа.
type Receipt struct {
	OrderID  int64
	Filename string
	Content  []byte
}

// Mail - письмо администратору или покупателю. Attachment может быть nil.
type Mail struct {
	To         string
	Subject    string
	Body       string
	Attachment *Receipt
}
