package currency

type CurrencyResponse struct {
	ID     string `json:"id"`
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

func ToResponse(c Currency) CurrencyResponse {
	return CurrencyResponse{
		ID:     c.ID,
		Code:   c.Code,
		Symbol: c.Symbol,
		Name:   c.Name,
	}
}
