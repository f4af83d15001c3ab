package domain

// Response é o envelope padrão das respostas da API.
// Em caso de erro, Result é sempre null.
type Response struct {
	Message string      `json:"message" example:"success"`
	Result  interface{} `json:"result"`
}

// PageResponse é o envelope da listagem paginada por cursor.
type PageResponse struct {
	Message string      `json:"message" example:"Success"`
	Result  interface{} `json:"result"`
	LastID  int64       `json:"lastId" example:"42"`
	HasMore bool        `json:"hasMore" example:"true"`
}

// ErrorResponse documenta o corpo de erro no Swagger.
// @Description Estrutura padronizada para respostas de erro na API.
type ErrorResponse struct {
	Message string      `json:"message" example:"\"firstName\" is required"`
	Result  interface{} `json:"result" swaggertype:"object"`
}

// TokenResponse é o corpo de sucesso do login.
type TokenResponse struct {
	Token string `json:"token"`
}
