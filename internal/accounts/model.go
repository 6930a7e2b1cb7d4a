package accounts

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Account is an admin credential record. Usernames are stored lowercase;
// the password never leaves the database in any form (the hash is excluded
// from JSON).
type Account struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         string    `gorm:"size:20;default:admin" json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// PublicView is the subset of an account safe to return to clients.
type PublicView struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (a *Account) Public() PublicView {
	return PublicView{ID: a.ID, Username: a.Username, Role: a.Role}
}

func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b), err
}

// CheckPassword reports whether pw matches the stored hash.
func (a *Account) CheckPassword(pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(pw)) == nil
}

// Seed creates an account if no account with that username exists yet.
// Returns true when a new account was created.
func Seed(db *gorm.DB, username, password, role string) (bool, error) {
	username = strings.ToLower(username)

	var existing Account
	err := db.First(&existing, "username = ?", username).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return false, err
	}

	acct := Account{Username: username, PasswordHash: hashed, Role: role}
	if err := db.Create(&acct).Error; err != nil {
		return false, err
	}
	return true, nil
}
