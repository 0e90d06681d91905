package idlefund

// StockInfo is the static classification of a symbol in the suggestion
// universe: where it trades and whether it is a growth play.
type StockInfo struct {
	Region   string
	Currency string
	Growth   bool
}

// stockUniverse maps the curated suggestion symbols to their classification.
// Symbols outside the table are treated as US blue chips.
var stockUniverse = map[string]StockInfo{
	// US blue chips
	"AAPL":  {Region: "US", Currency: "USD"},
	"MSFT":  {Region: "US", Currency: "USD"},
	"GOOGL": {Region: "US", Currency: "USD"},
	"AMZN":  {Region: "US", Currency: "USD"},
	"TSLA":  {Region: "US", Currency: "USD"},
	"NVDA":  {Region: "US", Currency: "USD"},
	"META":  {Region: "US", Currency: "USD"},
	"JPM":   {Region: "US", Currency: "USD"},
	"JNJ":   {Region: "US", Currency: "USD"},
	"PG":    {Region: "US", Currency: "USD"},
	// US growth
	"PLTR": {Region: "US", Currency: "USD", Growth: true},
	"ROKU": {Region: "US", Currency: "USD", Growth: true},
	"SQ":   {Region: "US", Currency: "USD", Growth: true},
	"SHOP": {Region: "US", Currency: "USD", Growth: true},
	"ZM":   {Region: "US", Currency: "USD", Growth: true},
	"NFLX": {Region: "US", Currency: "USD", Growth: true},
	"AMD":  {Region: "US", Currency: "USD", Growth: true},
	"CRM":  {Region: "US", Currency: "USD", Growth: true},
	"SNOW": {Region: "US", Currency: "USD", Growth: true},
	"COIN": {Region: "US", Currency: "USD", Growth: true},
	// European blue chips
	"ASML":    {Region: "Europe", Currency: "EUR"},
	"SAP":     {Region: "Europe", Currency: "EUR"},
	"LVMH.PA": {Region: "Europe", Currency: "EUR"},
	"NVO":     {Region: "Europe", Currency: "EUR"},
	"MC.PA":   {Region: "Europe", Currency: "EUR"},
	"OR.PA":   {Region: "Europe", Currency: "EUR"},
	"SAN.PA":  {Region: "Europe", Currency: "EUR"},
	"TTE.PA":  {Region: "Europe", Currency: "EUR"},
	// UK blue chips
	"SHEL.L": {Region: "UK", Currency: "GBP"},
	"AZN.L":  {Region: "UK", Currency: "GBP"},
	"ULVR.L": {Region: "UK", Currency: "GBP"},
	"BP.L":   {Region: "UK", Currency: "GBP"},
	"VOD.L":  {Region: "UK", Currency: "GBP"},
	"HSBA.L": {Region: "UK", Currency: "GBP"},
	// Asian blue chips trade in their home currency
	"TSM":       {Region: "Asia", Currency: "Local"},
	"BABA":      {Region: "Asia", Currency: "Local"},
	"7203.T":    {Region: "Asia", Currency: "Local"},
	"005930.KS": {Region: "Asia", Currency: "Local"},
	"TM":        {Region: "Asia", Currency: "Local"},
	"6758.T":    {Region: "Asia", Currency: "Local"},
	// Canadian blue chips
	"SHOP.TO": {Region: "Canada", Currency: "CAD"},
	"RY.TO":   {Region: "Canada", Currency: "CAD"},
	"TD.TO":   {Region: "Canada", Currency: "CAD"},
	"CNR.TO":  {Region: "Canada", Currency: "CAD"},
	"SU.TO":   {Region: "Canada", Currency: "CAD"},
	// Australian blue chips
	"CBA.AX": {Region: "Australia", Currency: "AUD"},
	"BHP.AX": {Region: "Australia", Currency: "AUD"},
	"CSL.AX": {Region: "Australia", Currency: "AUD"},
	"WBC.AX": {Region: "Australia", Currency: "AUD"},
}

// Classify returns the region, currency and growth flag of a symbol.
// Unknown symbols default to US blue chips.
func Classify(symbol string) StockInfo {
	if info, ok := stockUniverse[symbol]; ok {
		return info
	}
	return StockInfo{Region: "US", Currency: "USD"}
}

// DefaultUniverse returns the curated symbols to screen for suggestions:
// the full US blue-chip list plus the top European, UK and Asian names.
// With includeGrowth it adds the US growth names and the top Canadian and
// Australian blue chips.
func DefaultUniverse(includeGrowth bool) []string {
	symbols := []string{
		"AAPL", "MSFT", "GOOGL", "AMZN", "TSLA", "NVDA", "META", "JPM", "JNJ", "PG",
		"ASML", "SAP", "LVMH.PA", "NVO",
		"SHEL.L", "AZN.L", "ULVR.L",
		"TSM", "BABA", "7203.T", "005930.KS",
	}
	if includeGrowth {
		symbols = append(symbols,
			"PLTR", "ROKU", "SQ", "SHOP", "ZM", "NFLX", "AMD", "CRM", "SNOW", "COIN",
			"SHOP.TO", "RY.TO", "TD.TO",
			"CBA.AX", "BHP.AX",
		)
	}
	return symbols
}
