package entity

// Unidades y monedas permitidas para lotes de almacén.

var validUnits = map[string]struct{}{
	"pcs": {}, "ton": {}, "kg": {}, "pallet": {}, "box": {}, "case": {},
	"each": {}, "roll": {}, "meter": {}, "liter": {}, "gallon": {}, "pack": {},
	"bundle": {}, "drum": {}, "carton": {}, "bag": {}, "sheet": {}, "pair": {}, "set": {},
}

var validCurrencies = map[string]struct{}{
	"USD": {}, "EUR": {}, "JPY": {}, "GBP": {}, "AUD": {}, "CAD": {}, "CHF": {},
	"CNY": {}, "SEK": {}, "NZD": {}, "BRL": {}, "INR": {}, "RUB": {}, "ZAR": {}, "SGD": {},
}

// ValidUnit indica si la unidad está en la lista permitida.
func ValidUnit(unit string) bool {
	_, ok := validUnits[unit]
	return ok
}

// ValidCurrency indica si la moneda está en la lista permitida.
func ValidCurrency(currency string) bool {
	_, ok := validCurrencies[currency]
	return ok
}
