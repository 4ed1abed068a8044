package models

import (
	"encoding/json"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type User struct {
	BaseModel
	Email        string `gorm:"uniqueIndex;not null" json:"-"`
	PasswordHash string `gorm:"not null" json:"-"`

	Name         string          `json:"name"`
	Headline     string          `json:"headline"`
	Role         string          `json:"role"`
	Experience   ExperienceLevel `gorm:"type:varchar(20)" json:"experience"`
	Availability Availability    `gorm:"type:varchar(20)" json:"availability"`
	Location     string          `json:"location"`
	Skills       pq.StringArray  `gorm:"type:text[]" json:"skills"`
	Links        datatypes.JSON  `gorm:"type:jsonb" json:"links"` // {"github": "...", "site": "..."}

	IsProfileComplete bool `gorm:"default:false;index" json:"isProfileComplete"`
}

// SetLinks сериализует карту ссылок в jsonb
func (u *User) SetLinks(links map[string]string) error {
	data, err := json.Marshal(links)
	if err != nil {
		return err
	}
	u.Links = datatypes.JSON(data)
	return nil
}

// GetLinks десериализует jsonb со ссылками
func (u *User) GetLinks() map[string]string {
	links := make(map[string]string)
	if len(u.Links) == 0 {
		return links
	}
	_ = json.Unmarshal(u.Links, &links)
	return links
}

// ComputeProfileComplete проверяет заполненность профиля.
// Лента и свайпы доступны только при полном профиле.
func (u *User) ComputeProfileComplete() bool {
	return u.Name != "" &&
		u.Role != "" &&
		u.Experience != "" &&
		u.Availability != "" &&
		u.Location != "" &&
		len(u.Skills) > 0
}
