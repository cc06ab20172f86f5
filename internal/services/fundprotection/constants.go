package fundprotection

// Settlement currencies accepted for the crypto leg.
var AllowedCurrencies = map[string]bool{
	"BTC":  true,
	"ETH":  true,
	"USDT": true,
	"USDC": true,
	"BNB":  true,
	"SOL":  true,
	"POL":  true,
}

// CurrencyEUR is the fiat settlement currency.
const CurrencyEUR = "EUR"

// Display rounding. Stored amounts keep full computed precision.
const (
	EURScale    = 2
	CryptoScale = 8
)
