package money

// ISO4217 is the default currency catalog.
// It covers the currencies commonly seen in payment flows; applications
// dealing with the full ISO 4217 table should load their own [Catalog]
// from an authoritative source.
var ISO4217 Catalog = CatalogMap{
	"AED": {code: "AED", scale: 2, grapheme: "د.إ"},
	"ARS": {code: "ARS", scale: 2, grapheme: "$"},
	"AUD": {code: "AUD", scale: 2, grapheme: "A$"},
	"BHD": {code: "BHD", scale: 3, grapheme: ".د.ب"},
	"BOB": {code: "BOB", scale: 2, grapheme: "Bs."},
	"BRL": {code: "BRL", scale: 2, grapheme: "R$"},
	"CAD": {code: "CAD", scale: 2, grapheme: "C$"},
	"CHF": {code: "CHF", scale: 2, grapheme: "CHF"},
	"CLP": {code: "CLP", scale: 0, grapheme: "$"},
	"CNY": {code: "CNY", scale: 2, grapheme: "元"},
	"COP": {code: "COP", scale: 2, grapheme: "$"},
	"CZK": {code: "CZK", scale: 2, grapheme: "Kč"},
	"DKK": {code: "DKK", scale: 2, grapheme: "kr"},
	"EGP": {code: "EGP", scale: 2, grapheme: "£"},
	"EUR": {code: "EUR", scale: 2, grapheme: "€"},
	"GBP": {code: "GBP", scale: 2, grapheme: "£"},
	"HKD": {code: "HKD", scale: 2, grapheme: "HK$"},
	"HUF": {code: "HUF", scale: 2, grapheme: "Ft"},
	"IDR": {code: "IDR", scale: 2, grapheme: "Rp"},
	"ILS": {code: "ILS", scale: 2, grapheme: "₪"},
	"INR": {code: "INR", scale: 2, grapheme: "₹"},
	"ISK": {code: "ISK", scale: 0, grapheme: "kr"},
	"JOD": {code: "JOD", scale: 3, grapheme: "د.ا"},
	"JPY": {code: "JPY", scale: 0, grapheme: "¥"},
	"KRW": {code: "KRW", scale: 0, grapheme: "₩"},
	"KWD": {code: "KWD", scale: 3, grapheme: "د.ك"},
	"MXN": {code: "MXN", scale: 2, grapheme: "$"},
	"MYR": {code: "MYR", scale: 2, grapheme: "RM"},
	"NGN": {code: "NGN", scale: 2, grapheme: "₦"},
	"NOK": {code: "NOK", scale: 2, grapheme: "kr"},
	"NZD": {code: "NZD", scale: 2, grapheme: "NZ$"},
	"OMR": {code: "OMR", scale: 3, grapheme: "﷼"},
	"PEN": {code: "PEN", scale: 2, grapheme: "S/"},
	"PHP": {code: "PHP", scale: 2, grapheme: "₱"},
	"PLN": {code: "PLN", scale: 2, grapheme: "zł"},
	"PYG": {code: "PYG", scale: 0, grapheme: "₲"},
	"RUB": {code: "RUB", scale: 2, grapheme: "₽"},
	"SAR": {code: "SAR", scale: 2, grapheme: "﷼"},
	"SEK": {code: "SEK", scale: 2, grapheme: "kr"},
	"SGD": {code: "SGD", scale: 2, grapheme: "S$"},
	"THB": {code: "THB", scale: 2, grapheme: "฿"},
	"TND": {code: "TND", scale: 3, grapheme: "د.ت"},
	"TRY": {code: "TRY", scale: 2, grapheme: "₺"},
	"USD": {code: "USD", scale: 2, grapheme: "$"},
	"UYU": {code: "UYU", scale: 2, grapheme: "$U"},
	"VND": {code: "VND", scale: 0, grapheme: "₫"},
	"ZAR": {code: "ZAR", scale: 2, grapheme: "R"},
}
