package dto

import cartdomain "bookstore-backend/internal/cart/domain"

type AddItemRequest struct {
	ID    string `json:"id" binding:"required"`
	Name  string `json:"name" binding:"required"`
	Image string `json:"image"`
	Price string `json:"price"`
	Qty   int    `json:"qty"`
}

type CartResponse struct {
	Items cartdomain.Cart `json:"items"`
}

type CheckoutRequest struct {
	Logradouro      string `json:"logradouro"`
	Numero          string `json:"numero"`
	Complemento     string `json:"complemento"`
	Bairro          string `json:"bairro"`
	Cidade          string `json:"cidade"`
	UF              string `json:"uf"`
	CEP             string `json:"cep"`
	PontoReferencia string `json:"ponto_referencia"`
	CodigoCidade    string `json:"codigo_cidade"`
}

type CheckoutResponse struct {
	Message string `json:"message"`
	URL     string `json:"url"`
}
