package model

// Doctor is a clinic doctor. Section references the static hospital
// sections lookup table. Experience is in years.
type Doctor struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Surname     string `json:"surname" gorm:"size:255;not null;index"`
	Name        string `json:"name" gorm:"size:255;not null"`
	MiddleName  string `json:"middle_name" gorm:"size:255"`
	PhoneNumber string `json:"phone_number" gorm:"size:32"`
	Experience  int    `json:"experience"`
	SectionID   uint   `json:"section_id" gorm:"index;not null"`
}

// TableName overrides the default table name.
func (Doctor) TableName() string { return "doctors" }
