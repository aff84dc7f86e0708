package models

import "time"

type TicketModel struct {
	ID         uint   `gorm:"primaryKey"`
	Subject    string `gorm:"size:200;not null"`
	Issue      string `gorm:"type:text"`
	Priority   string `gorm:"size:20;not null;index"`
	Status     string `gorm:"size:20;not null;index"`
	CreatedBy  string `gorm:"size:100;index"`
	AssignedTo string `gorm:"size:100;index"`
	CreatedOn  time.Time
	ResolvedOn *time.Time
}

func (TicketModel) TableName() string {
	return "tickets"
}
