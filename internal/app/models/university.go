package models

import "time"

// University defines the model based on the 'universities' table
type University struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Location  string    `json:"location" db:"location"`
	Logo      *string   `json:"logo" db:"logo"`
	Website   *string   `json:"website" db:"website"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// UniversityInput holds the caller-supplied fields of a new university.
type UniversityInput struct {
	Name     string  `json:"name" binding:"required"`
	Location string  `json:"location" binding:"required"`
	Logo     *string `json:"logo"`
	Website  *string `json:"website"`
}

// NewUniversityRecord builds the stored university row for id at time now.
func NewUniversityRecord(id int64, in UniversityInput, now time.Time) *University {
	return &University{
		ID:        id,
		Name:      in.Name,
		Location:  in.Location,
		Logo:      optionalText(in.Logo),
		Website:   optionalText(in.Website),
		CreatedAt: now,
	}
}

func (u *University) Clone() *University {
	c := *u
	c.Logo = clonePtr(u.Logo)
	c.Website = clonePtr(u.Website)
	return &c
}
