package service

const (
	TierGold   = "ORO"
	TierSilver = "PLATA"
	TierBronze = "BRONCE"
	TierNone   = "SIN CATEGORIA"

	managementBase        = 160
	motorcycleDailyRate   = 22000
	suspensionUnitPayment = 3000
)

// bracket applies when the inspection count is strictly above Above.
// Brackets are listed from the highest threshold down and the first match
// wins, so each count falls into exactly one of them.
type bracket struct {
	Above float64
	Rate  float64
	Bonus float64
	Tier  string
}

var managementBrackets = []bracket{
	{Above: 210, Rate: 15000},
	{Above: 180, Rate: 13000},
	{Above: 160, Rate: 10000},
}

var additionalBrackets = []bracket{
	{Above: 250, Bonus: 500000, Tier: TierGold},
	{Above: 230, Bonus: 330000, Tier: TierSilver},
	{Above: 210, Bonus: 180000, Tier: TierBronze},
}

func match(brackets []bracket, n float64) (bracket, bool) {
	for _, b := range brackets {
		if n > b.Above {
			return b, true
		}
	}
	return bracket{}, false
}

// ManagementBonus pays every inspection above 160 at the rate of the bracket
// the total falls in. Rates are not stacked across brackets.
func ManagementBonus(inspections float64) float64 {
	b, ok := match(managementBrackets, inspections)
	if !ok {
		return 0
	}
	return (inspections - managementBase) * b.Rate
}

// AdditionalBonus is the flat bonus of the bracket the inspection total falls in.
func AdditionalBonus(inspections float64) float64 {
	b, ok := match(additionalBrackets, inspections)
	if !ok {
		return 0
	}
	return b.Bonus
}

// Tier labels an inspection total ORO, PLATA, BRONCE or SIN CATEGORIA.
func Tier(inspections float64) string {
	b, ok := match(additionalBrackets, inspections)
	if !ok {
		return TierNone
	}
	return b.Tier
}

// MotorcycleAllowance pays each worked day to operational employees only.
func MotorcycleAllowance(workedDays int, operational bool) float64 {
	if !operational {
		return 0
	}
	return float64(workedDays) * motorcycleDailyRate
}

// SuspensionAllowance pays each suspension regardless of work center.
func SuspensionAllowance(suspensions float64) float64 {
	return suspensions * suspensionUnitPayment
}
