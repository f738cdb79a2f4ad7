package refdata

type seedEntry struct {
	Name string
	Code string
}

// countrySeed lists the ISO 3166-1 entries loaded by the populate endpoint.
var countrySeed = []seedEntry{
	{"Argentina", "AR"},
	{"Australia", "AU"},
	{"Austria", "AT"},
	{"Belgium", "BE"},
	{"Brazil", "BR"},
	{"Canada", "CA"},
	{"Chile", "CL"},
	{"China", "CN"},
	{"Colombia", "CO"},
	{"Czechia", "CZ"},
	{"Denmark", "DK"},
	{"Finland", "FI"},
	{"France", "FR"},
	{"Germany", "DE"},
	{"Greece", "GR"},
	{"India", "IN"},
	{"Ireland", "IE"},
	{"Italy", "IT"},
	{"Japan", "JP"},
	{"Mexico", "MX"},
	{"Netherlands", "NL"},
	{"New Zealand", "NZ"},
	{"Norway", "NO"},
	{"Poland", "PL"},
	{"Portugal", "PT"},
	{"Romania", "RO"},
	{"Spain", "ES"},
	{"Sweden", "SE"},
	{"Switzerland", "CH"},
	{"United Kingdom", "GB"},
	{"United States", "US"},
	{"Uruguay", "UY"},
}

// currencySeed lists the ISO 4217 entries loaded by the populate endpoint.
var currencySeed = []seedEntry{
	{"Argentine Peso", "ARS"},
	{"Australian Dollar", "AUD"},
	{"Brazilian Real", "BRL"},
	{"British Pound", "GBP"},
	{"Canadian Dollar", "CAD"},
	{"Chilean Peso", "CLP"},
	{"Chinese Yuan", "CNY"},
	{"Colombian Peso", "COP"},
	{"Czech Koruna", "CZK"},
	{"Danish Krone", "DKK"},
	{"Euro", "EUR"},
	{"Indian Rupee", "INR"},
	{"Japanese Yen", "JPY"},
	{"Mexican Peso", "MXN"},
	{"New Zealand Dollar", "NZD"},
	{"Norwegian Krone", "NOK"},
	{"Polish Zloty", "PLN"},
	{"Romanian Leu", "RON"},
	{"Swedish Krona", "SEK"},
	{"Swiss Franc", "CHF"},
	{"US Dollar", "USD"},
	{"Uruguayan Peso", "UYU"},
}
