package fuzzy

// Restaurant-tip model: food and service quality on [0, 10], tip in percent.
const (
	TipLow      = 5.0
	TipHigh     = 20.0
	TipFallback = 10.0
)

var (
	// FoodBad and ServicePoor are the left-shoulder terms of the tip model.
	FoodBad     = Shape{A: 0, B: 0, C: 5}
	ServicePoor = Shape{A: 0, B: 0, C: 5}

	// FoodGood and ServiceExcellent are the right-shoulder terms.
	FoodGood         = Shape{A: 5, B: 10, C: 10}
	ServiceExcellent = Shape{A: 5, B: 10, C: 10}
)

// Tip evaluates the tip model directly:
// service poor OR food bad → TipLow; service excellent AND food good → TipHigh.
func Tip(food, service float64, opts ...Option) Result {
	opts = append([]Option{WithFallback(TipFallback)}, opts...)

	return Evaluate(food, service, FoodBad, FoodGood, ServicePoor, ServiceExcellent, TipLow, TipHigh, opts...)
}

// TipRuleBase returns the tip model as a rule table with inputs "food" and
// "service". Its Infer output matches Tip.
func TipRuleBase() RuleBase {
	return RuleBase{
		Variables: []Variable{
			{Name: "food", Terms: map[string]Shape{"bad": FoodBad, "good": FoodGood}},
			{Name: "service", Terms: map[string]Shape{"poor": ServicePoor, "excellent": ServiceExcellent}},
		},
		Rules: []Rule{
			{Op: Or, Antecedents: []Clause{{"service", "poor"}, {"food", "bad"}}, Output: TipLow},
			{Op: And, Antecedents: []Clause{{"service", "excellent"}, {"food", "good"}}, Output: TipHigh},
		},
		Fallback: TipFallback,
	}
}
