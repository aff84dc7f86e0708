package models

type IncidentModel struct {
	ID          uint   `gorm:"primaryKey"`
	Category    string `gorm:"size:100;index"`
	Severity    string `gorm:"size:20;not null;index"`
	Status      string `gorm:"size:20;not null;index"`
	Description string `gorm:"type:text;not null"`
	Reporter    string `gorm:"size:100"`
}

func (IncidentModel) TableName() string {
	return "incidents"
}
