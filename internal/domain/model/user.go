//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import "time"

// Name holds the user's name parts as stored by the users service.
type Name struct {
	First  string `json:"first"`
	Middle string `json:"middle,omitempty"`
	Last   string `json:"last"`
}

// Display returns "First Last" for headers and tables.
func (n Name) Display() string {
	if n.First == "" {
		return n.Last
	}
	if n.Last == "" {
		return n.First
	}
	return n.First + " " + n.Last
}

// Image is an optional avatar or card image reference.
type Image struct {
	URL string `json:"url,omitempty"`
	Alt string `json:"alt,omitempty"`
}

// Address mirrors the users/cards services' address object.
type Address struct {
	State       string `json:"state,omitempty"`
	Country     string `json:"country"`
	City        string `json:"city"`
	Street      string `json:"street"`
	HouseNumber int    `json:"houseNumber"`
	Zip         int    `json:"zip,omitempty"`
}

// User is the subset of the remote users service record the app needs for
// authorization and display. Password is write-only: it is sent on register
// and never echoed back by the service.
type User struct {
	ID         string     `json:"_id,omitempty"`
	Name       Name       `json:"name"`
	Phone      string     `json:"phone"`
	Email      string     `json:"email"`
	Password   string     `json:"password,omitempty"`
	Image      Image      `json:"image,omitempty"`
	Address    Address    `json:"address"`
	IsBusiness bool       `json:"isBusiness"`
	IsAdmin    bool       `json:"isAdmin,omitempty"`
	CreatedAt  *time.Time `json:"createdAt,omitempty"`
}

// UserUpdate is the partial profile payload for PUT {users}/{id}.
// Only the fields the profile edit screen exposes; flags and credentials
// are never updatable through this path.
type UserUpdate struct {
	Name    Name    `json:"name"`
	Phone   string  `json:"phone"`
	Image   Image   `json:"image,omitempty"`
	Address Address `json:"address"`
}

// ApplyTo merges the update into a copy of the given profile and returns it.
// The merge is whole-field: the edit form always submits the complete
// name/phone/image/address set, matching the service's PUT semantics.
func (u UserUpdate) ApplyTo(prev User) User {
	next := prev
	next.Name = u.Name
	next.Phone = u.Phone
	next.Image = u.Image
	next.Address = u.Address
	return next
}
