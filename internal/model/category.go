// File: internal/model/category.go
package model

type Category struct {
	ID              int    `db:"id" json:"id"`
	Name            string `db:"name" json:"name"`
	Description     string `db:"description" json:"description"`
	LongDescription string `db:"long_description" json:"long_description"`
	IconURL         string `db:"icon_url" json:"icon_url"`
}
