package cart

type AddItemRequest struct {
	ItemID string `json:"itemId" validate:"required"`
	Qty    int    `json:"qty" validate:"min=0"`
}

type CartCountResponse struct {
	Count int `json:"count"`
}

type CartLineResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	UnitPrice   string `json:"unitPrice"`
	Qty         int    `json:"qty"`
	ImageRef    string `json:"imageRef"`
}

type CartDetailResponse struct {
	Items []CartLineResponse `json:"items"`
	Total string             `json:"total"`
}
