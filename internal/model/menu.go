package model

// MenuItem mirrors the `menu_items` table. Amount is the stock counter used
// by the kitchen; Available flags whether the item is currently orderable.
type MenuItem struct {
	ID          uint64
	Name        string
	Description *string
	Price       float64
	Category    *string
	Amount      int
	Available   bool
	ImageURL    *string
}

// Category mirrors the `category` table. Value is the active flag.
type Category struct {
	ID    uint64  `json:"id"`
	Name  string  `json:"name"`
	Value bool    `json:"value"`
	Img   *string `json:"img"`
}

// SubCategory mirrors the `subcategories` table.
type SubCategory struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Img         *string `json:"img"`
}
