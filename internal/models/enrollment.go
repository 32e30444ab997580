package models

import "time"

// Enrollment registers a student into a course. Email is unique;
// creating a duplicate yields a conflict, never a second row.
type Enrollment struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	Name       string    `gorm:"column:nome;size:100;not null" json:"nome"`
	Email      string    `gorm:"column:email;size:100;uniqueIndex;not null" json:"email"`
	Course     string    `gorm:"column:curso;size:100;not null" json:"curso"`
	EnrolledAt time.Time `gorm:"column:data_matricula;not null" json:"data_matricula"`
}

func (Enrollment) TableName() string { return "matriculas" }

// CreateEnrollmentInput represents the input for creating an enrollment.
type CreateEnrollmentInput struct {
	Name   string `json:"nome"`
	Email  string `json:"email"`
	Course string `json:"curso"`
}
