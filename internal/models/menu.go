package models

// MenuItem represents a dish on the menu
type MenuItem struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Price        int64  `json:"price"`
	Availability bool   `json:"availability"`
}

// MenuItemInput is the payload for creating or replacing a menu item
type MenuItemInput struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Price        int64  `json:"price"`
	Availability bool   `json:"availability"`
}

// MenuItemsResponse wraps the menu listing
type MenuItemsResponse struct {
	MenuItems []MenuItem `json:"menu_items"`
}
