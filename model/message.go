package model

// Message is one internal chat entry within a provider's room. ClientRef is a
// sender-generated id echoed back in the broadcast so optimistic local inserts
// can be reconciled against the server-issued row.
type Message struct {
	DTO
	ProviderId uint    `gorm:"index;not null" json:"providerId"`
	AccountId  uint    `gorm:"not null" json:"accountId"`
	Account    Account `gorm:"foreignKey:AccountId" json:"-"`
	Sender     string  `json:"sender"`
	Content    string  `gorm:"not null" json:"content"`
	ClientRef  string  `gorm:"size:40" json:"clientRef,omitempty"`
}

type Messages []Message

type CreateMessageInput struct {
	Content   string `json:"content" validate:"required,min=1,max=2000"`
	ClientRef string `json:"clientRef" validate:"omitempty,max=40"`
}

type FilterMessage struct {
	Pagination
	Before *uint `json:"before"` // message id cursor for history paging
}
