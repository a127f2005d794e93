// internal/models/base.go
package models

import (
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// BaseModel is gorm.Model without soft delete: box-score uniqueness and
// cascades rely on rows really leaving the table.
type BaseModel struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// displayLabel turns a stored enum name such as "point_guard" into "Point Guard".
func displayLabel(name string) string {
	b := []byte(name)
	for i := range b {
		if b[i] == '_' {
			b[i] = ' '
		}
	}
	return cases.Title(language.English).String(string(b))
}
