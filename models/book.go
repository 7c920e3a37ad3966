package models

import "errors"

var ErrBookNotFound = errors.New("book not found")

type Book struct {
	Id          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Author      string `json:"author"`
}

// BookInput is what a user submits. Every field must be non-empty.
type BookInput struct {
	Title       string `json:"title" form:"title" binding:"required"`
	Author      string `json:"author" form:"author" binding:"required"`
	Description string `json:"description" form:"description" binding:"required"`
}

// Book builds a record with the given id from the submitted fields.
func (input BookInput) Book(id string) *Book {
	return &Book{
		Id:          id,
		Title:       input.Title,
		Description: input.Description,
		Author:      input.Author,
	}
}
