package entity

type Instructor struct {
	Base
	Name     string  `db:"name"`
	Bio      *string `db:"bio"`
	IsActive bool    `db:"is_active"`
}
