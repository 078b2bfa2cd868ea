package dto

type StockTypeRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Row         *int    `json:"row" binding:"omitempty,min=1,max=5"`
	Col         *string `json:"col" binding:"omitempty,oneof=A B C"`
}

type StockItemRequest struct {
	Name       string            `json:"name" binding:"required"`
	TypeID     string            `json:"typeId" binding:"required"`
	Quantity   int               `json:"quantity" binding:"min=0"`
	Properties map[string]string `json:"properties"`
	Note       string            `json:"note"`
	Available  *bool             `json:"available"`
}

type QuantityRequest struct {
	Delta int `json:"delta"`
}
