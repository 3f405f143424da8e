package model

import "time"

// Flat projections produced by the join queries. Column aliases in the
// repository selects line up with the gorm column tags here.

// PatientView is a patient row with the sex lookup resolved to its name.
type PatientView struct {
	ID          uint   `json:"id" gorm:"column:id"`
	Surname     string `json:"surname" gorm:"column:surname"`
	Name        string `json:"name" gorm:"column:name"`
	MiddleName  string `json:"middle_name" gorm:"column:middle_name"`
	Sex         string `json:"sex" gorm:"column:sex"`
	Age         int    `json:"age" gorm:"column:age"`
	PhoneNumber string `json:"phone_number" gorm:"column:phone_number"`
	Address     string `json:"address" gorm:"column:address"`
}

// InspectionView is an inspection row with every linked table resolved
// to its display field. Built by an inner join, so an inspection with a
// dangling reference never appears in a result set.
type InspectionView struct {
	ID           uint      `json:"id" gorm:"column:id"`
	Place        string    `json:"place" gorm:"column:place"`
	Date         time.Time `json:"date" gorm:"column:date"`
	Doctor       string    `json:"doctor" gorm:"column:doctor"`
	Patient      string    `json:"patient" gorm:"column:patient"`
	Diagnosis    string    `json:"diagnosis" gorm:"column:diagnosis"`
	Symptoms     string    `json:"symptoms" gorm:"column:symptoms"`
	Prescription string    `json:"prescription" gorm:"column:prescription"`
}
