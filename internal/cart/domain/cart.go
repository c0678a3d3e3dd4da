package domain

// CartItem is one intended purchase. Price is display-only and never parsed.
type CartItem struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
	Qty   int    `json:"qty"`
	Price string `json:"price"`
}

// Cart is the visitor's ordered item list. At most one entry per item ID;
// insertion order is add order.
type Cart []CartItem

// Find returns the entry with the given ID, or nil.
func (c Cart) Find(id string) *CartItem {
	for i := range c {
		if c[i].ID == id {
			return &c[i]
		}
	}
	return nil
}

// DeliveryInfo carries the address fields for the order message. Every field
// is optional; empty fields are left out of the message.
type DeliveryInfo struct {
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
