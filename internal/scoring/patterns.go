package scoring

import "regexp"

// featurePattern pairs a query-side and a content-side expression. A boost
// applies only when both sides match, so a fee question only gains from
// chunks that actually talk about fees.
type featurePattern struct {
	name    string
	query   *regexp.Regexp
	content *regexp.Regexp
}

var featurePatterns = []featurePattern{
	{
		name:    "fees",
		query:   regexp.MustCompile(`(?i)\b(fee|fees|charge|charges|waiver)\b`),
		content: regexp.MustCompile(`(?i)\b(fee|fees|charge|charges|waiver)\b`),
	},
	{
		name:    "rewards",
		query:   regexp.MustCompile(`(?i)\b(reward|rewards|points?|benefits?)\b`),
		content: regexp.MustCompile(`(?i)\b(reward|rewards|points?|benefits?)\b`),
	},
	{
		name:    "cashback",
		query:   regexp.MustCompile(`(?i)\bcash\s?back\b`),
		content: regexp.MustCompile(`(?i)\bcash\s?back\b`),
	},
	{
		name:    "travel",
		query:   regexp.MustCompile(`(?i)\b(lounge|travel|airport|airline|miles)\b`),
		content: regexp.MustCompile(`(?i)\b(lounge|travel|airport|airline|miles)\b`),
	},
	{
		name:    "interest",
		query:   regexp.MustCompile(`(?i)\b(interest|apr|finance)\b`),
		content: regexp.MustCompile(`(?i)\b(interest|apr|finance)\b`),
	},
	{
		name:    "eligibility",
		query:   regexp.MustCompile(`(?i)\b(eligib\w*|income|credit\s+score|salary)\b`),
		content: regexp.MustCompile(`(?i)\b(eligib\w*|income|credit\s+score|salary)\b`),
	},
	{
		name:    "network",
		query:   regexp.MustCompile(`(?i)\b(visa|mastercard|rupay)\b`),
		content: regexp.MustCompile(`(?i)\b(visa|mastercard|rupay)\b`),
	},
	{
		name:    "spending",
		query:   regexp.MustCompile(`(?i)\b(dining|fuel|grocery|groceries|shopping)\b`),
		content: regexp.MustCompile(`(?i)\b(dining|fuel|grocery|groceries|shopping)\b`),
	},
}

// currencyPattern detects concrete numbers with a percent or currency
// marker, a weak signal that the chunk carries hard figures.
var currencyPattern = regexp.MustCompile(`(?i)\d+(\.\d+)?\s*(%|₹|rs\.?|inr)`)
