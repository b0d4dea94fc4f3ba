package interaction

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultUserID is assumed when a generate request carries no user id.
const DefaultUserID = "default_user"

// Interaction is the persisted unit of work: a query plus its two generated
// responses. Response fields hold whatever the gateway produced, including
// "Error:" strings, so failures stay visible in history.
type Interaction struct {
	ID             uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	UserID         string    `gorm:"type:varchar(255);index;not null" json:"user_id"`
	Query          string    `gorm:"type:text;not null" json:"query"`
	CasualResponse *string   `gorm:"type:text" json:"casual_response"`
	FormalResponse *string   `gorm:"type:text" json:"formal_response"`
	CreatedAt      time.Time `gorm:"index" json:"created_at"`
}

func (Interaction) TableName() string { return "interactions" }

func (i *Interaction) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
