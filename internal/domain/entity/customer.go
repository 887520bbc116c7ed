package entity

// Customer identifies a buyer. Email is the natural key: the first checkout
// with an email creates the row, later checkouts with the same email reuse it.
type Customer struct {
	ID       int64
	FullName string
	Phone    string
	Email    string
}
