package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Course struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	TeacherID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Name              string    `gorm:"type:varchar(255);not null"`
	Fee               int       `gorm:"not null;default:0"`
	Description       string    `gorm:"type:text;not null"`
	Duration          string    `gorm:"type:varchar(100)"`
	Level             string    `gorm:"type:varchar(50)"`
	Category          string    `gorm:"type:varchar(100)"`
	TeacherName       string    `gorm:"type:varchar(255)"`
	TeacherEmail      string    `gorm:"type:varchar(255)"`
	TeacherExperience string    `gorm:"type:varchar(255)"`
	TeacherAbout      string    `gorm:"type:text"`
	Status            string    `gorm:"type:varchar(20);not null;default:'Published'"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`

	// Associations
	Modules []CourseModule `gorm:"foreignKey:CourseID"`
}

type CourseModule struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	CourseID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Position    int       `gorm:"not null"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`

	Lessons []Lesson `gorm:"foreignKey:ModuleID"`
}

type Lesson struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	ModuleID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Position    int       `gorm:"not null"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Duration    string    `gorm:"type:varchar(100)"`
	Description string    `gorm:"type:text"`
}
