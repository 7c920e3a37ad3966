package db

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"bookshelf/models"
)

const ID_PREFIX = "_id_book_"

var ErrIdsExhausted = errors.New("no identifier left above " + ID_PREFIX + strconv.Itoa(math.MaxInt))

// NextId returns ID_PREFIX followed by one more than the greatest numeric
// suffix among books. Gaps are never reused, and an empty collection starts
// at 1. It is computed fresh on every call. A suffix already at math.MaxInt
// leaves no next id.
func NextId(books []models.Book) (string, error) {
	greatest := 0
	for _, book := range books {
		if n, ok := idSuffix(book.Id); ok && n > greatest {
			greatest = n
		}
	}
	if greatest == math.MaxInt {
		return "", ErrIdsExhausted
	}
	return ID_PREFIX + strconv.Itoa(greatest+1), nil
}

// idSuffix parses the leading digits after ID_PREFIX.
func idSuffix(id string) (int, bool) {
	if !strings.HasPrefix(id, ID_PREFIX) {
		return 0, false
	}
	rest := id[len(ID_PREFIX):]

	end := 0
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}

	n, err := strconv.Atoi(rest[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
