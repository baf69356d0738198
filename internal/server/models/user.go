// Package models holds the User entity and the value types that guard its
// fields. Constructors validate their input and never touch storage.
package models

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/hexplay/internal/common"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	MaxNameLength = 255
	MinAge        = 0
	MaxAge        = 150
)

var validate = validator.New()

// Email is a syntactically valid, lower-cased e-mail address.
type Email string

// NewEmail trims and lower-cases raw and checks it is a valid address.
func NewEmail(raw string) (Email, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if err := validate.Var(v, "required,email"); err != nil {
		return "", common.NewValidationError("email", "must be a valid email")
	}
	return Email(v), nil
}

func (e Email) String() string { return string(e) }

// Age is a person's age in whole years.
type Age int16

func NewAge(v int) (Age, error) {
	if v < MinAge || v > MaxAge {
		return 0, common.NewValidationError("age", "must be between 0 and 150")
	}
	return Age(v), nil
}

// NewName trims raw and checks its length.
func NewName(raw string) (string, error) {
	v := strings.TrimSpace(raw)
	if err := validate.Var(v, "required,max=255"); err != nil {
		return "", common.NewValidationError("name", "must be 1 to 255 characters")
	}
	return v, nil
}

// User is the persisted user record.
type User struct {
	ID        int64     `db:"id"`
	Token     uuid.UUID `db:"token"`
	Name      string    `db:"name"`
	Email     Email     `db:"email"`
	Age       *Age      `db:"age"`
	Version   int64     `db:"version"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Clone returns a deep copy of u.
func (u *User) Clone() *User {
	c := *u
	if u.Age != nil {
		a := *u.Age
		c.Age = &a
	}
	return &c
}

// NewUser is the input of user creation. Storage assigns id, token and version.
type NewUser struct {
	Name  string
	Email Email
	Age   *Age
}

// BuildNewUser validates raw creation input field by field and stops at the first failure.
func BuildNewUser(name, email string, age *int) (NewUser, error) {
	n, err := NewName(name)
	if err != nil {
		return NewUser{}, err
	}
	e, err := NewEmail(email)
	if err != nil {
		return NewUser{}, err
	}
	nu := NewUser{Name: n, Email: e}
	if age != nil {
		a, err := NewAge(*age)
		if err != nil {
			return NewUser{}, err
		}
		nu.Age = &a
	}
	return nu, nil
}

// UserPatch holds the mutable fields of a user. Nil means unchanged.
// Token and email are immutable and have no place here.
type UserPatch struct {
	Name *string
	Age  *Age
}

func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.Age == nil
}

// BuildUserPatch validates raw update input. An empty patch is rejected.
func BuildUserPatch(name *string, age *int) (UserPatch, error) {
	var p UserPatch
	if name != nil {
		n, err := NewName(*name)
		if err != nil {
			return UserPatch{}, err
		}
		p.Name = &n
	}
	if age != nil {
		a, err := NewAge(*age)
		if err != nil {
			return UserPatch{}, err
		}
		p.Age = &a
	}
	if p.IsEmpty() {
		return UserPatch{}, common.NewValidationError("", "update must change at least one field")
	}
	return p, nil
}

// Apply returns a copy of u with the patch fields set.
func (p UserPatch) Apply(u *User) *User {
	c := u.Clone()
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Age != nil {
		a := *p.Age
		c.Age = &a
	}
	return c
}

// ListFilter selects a page of users ordered by id, starting at StartID.
type ListFilter struct {
	StartID  int64
	PageSize int
}
