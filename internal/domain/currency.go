package domain

// currencySymbols mapeia as moedas suportadas pela camada de apresentação
// para seus símbolos. Uso estritamente de exibição — o motor nunca valida
// nem converte moeda.
var currencySymbols = map[string]string{
	"USD": "$",
	"KZT": "₸",
	"RUB": "₽",
	"EUR": "€",
}

// CurrencySymbol retorna o símbolo de exibição da moeda, ou o próprio código
// quando a moeda não é conhecida
func CurrencySymbol(currency string) string {
	if symbol, ok := currencySymbols[currency]; ok {
		return symbol
	}
	return currency
}
