package models

// Client matches the clients table. LawyerID is the optional owning lawyer;
// deleting that lawyer nulls the reference.
type Client struct {
	ClientID int64   `json:"client_id"`
	Name     string  `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	LawyerID *int64  `json:"lawyer_id"`
}
