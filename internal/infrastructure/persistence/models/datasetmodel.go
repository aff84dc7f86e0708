package models

type DatasetModel struct {
	ID    uint   `gorm:"primaryKey"`
	Name  string `gorm:"size:200;not null"`
	Owner string `gorm:"size:100;not null;index"`
}

func (DatasetModel) TableName() string {
	return "datasets"
}
