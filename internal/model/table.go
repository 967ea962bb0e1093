package model

// Table mirrors the `tables` table. Code is the short unique identifier
// printed on the physical table (for QR ordering); orders may reference a
// table through it.
type Table struct {
	ID       uint64  `json:"id"`
	Code     string  `json:"code"`
	Seats    int     `json:"seats"`
	Location *string `json:"location"`
	Active   bool    `json:"active"`
}
