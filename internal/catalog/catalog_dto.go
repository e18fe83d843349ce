package catalog

type ItemResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Count       int    `json:"count"`
	ImageRef    string `json:"imageRef"`
}

type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
}

func toItemResponse(item Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price.StringFixed(2),
		Count:       item.Count,
		ImageRef:    item.ImageRef,
	}
}
