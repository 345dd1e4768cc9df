package domain

// Platform identifica a rede social de origem de um dado
type Platform string

const (
	PlatformFacebook  Platform = "facebook"
	PlatformInstagram Platform = "instagram"
)

// Customer representa um cliente (tenant) da agência
type Customer struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	Active bool   `json:"active"`
}

// CustomerAccount representa o vínculo de propriedade entre um cliente e uma
// conta de plataforma. Cada conta pertence a no máximo um cliente por vez.
type CustomerAccount struct {
	CustomerID  int64    `json:"customer_id"`
	AccountID   string   `json:"account_id"`
	Platform    Platform `json:"platform"`
	DisplayName *string  `json:"display_name,omitempty"`
}
