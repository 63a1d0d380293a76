// Package models defines the records exchanged with the Resource API.
package models

// User is a decoded /users resource. Records are values: copies never share
// state, and ID is assigned by the server.
type User struct {
	// ID is the server-assigned identity; zero means "not yet created".
	ID int64 `json:"id,omitempty"`

	Name     string `json:"name"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Website  string `json:"website"`

	Address Address `json:"address"`
	Company Company `json:"company"`
}

type Address struct {
	Street  string `json:"street"`
	Suite   string `json:"suite"`
	City    string `json:"city"`
	Zipcode string `json:"zipcode"`
	Geo     Geo    `json:"geo"`
}

// Geo holds coordinates as the API renders them: decimal strings.
type Geo struct {
	Lat string `json:"lat"`
	Lng string `json:"lng"`
}

type Company struct {
	Name        string `json:"name"`
	CatchPhrase string `json:"catchPhrase"`
	BS          string `json:"bs"`
}

func (u User) GetID() int64 { return u.ID }

// WithoutID returns a copy of u with the identity cleared, as sent on create.
func (u User) WithoutID() User {
	u.ID = 0
	return u
}
