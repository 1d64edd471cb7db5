package entities

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Name     string `gorm:"size:255" json:"name"`
	Password string `gorm:"size:255;not null" json:"-"`
	IsActive bool   `gorm:"default:true" json:"is_active"`
	IsStaff  bool   `gorm:"default:false" json:"is_staff"`

	Timestamp
}
