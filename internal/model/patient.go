package model

// Patient is a registered clinic patient. Sex is a reference to the
// static sexes lookup table.
type Patient struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Surname     string `json:"surname" gorm:"size:255;not null;index"`
	Name        string `json:"name" gorm:"size:255;not null"`
	MiddleName  string `json:"middle_name" gorm:"size:255"`
	PhoneNumber string `json:"phone_number" gorm:"size:32"`
	Address     string `json:"address" gorm:"size:255"`
	Age         int    `json:"age"`
	SexID       uint   `json:"sex_id" gorm:"index;not null"`
}

// TableName overrides the default table name.
func (Patient) TableName() string { return "patients" }
