package postgres

import "time"

// UserModel é o model GORM para usuários
type UserModel struct {
	ID        uint        `gorm:"primaryKey;autoIncrement"`
	Email     string      `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name      *string     `gorm:"type:varchar(255)"`
	Posts     []PostModel `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	CreatedAt time.Time   `gorm:"index"`
	UpdatedAt time.Time
}

func (UserModel) TableName() string {
	return "users"
}

// PostModel é o model GORM para posts
// AuthorID é nullable: remover um usuário desvincula seus posts
// (ON DELETE SET NULL), nunca remove em cascata.
type PostModel struct {
	ID        uint       `gorm:"primaryKey;autoIncrement"`
	Title     string     `gorm:"type:varchar(255);not null"`
	Content   *string    `gorm:"type:text"`
	Published bool       `gorm:"not null;default:false;index"`
	AuthorID  *uint      `gorm:"index"`
	Author    *UserModel `gorm:"foreignKey:AuthorID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PostModel) TableName() string {
	return "posts"
}
