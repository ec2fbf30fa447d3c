package ingest

import "strings"

// Filename substring tables for card and bank inference. First match
// wins; no match leaves the field unset.
var bankPatterns = []struct {
	substr string
	name   string
}{
	{"hdfc", "HDFC Bank"},
	{"icici", "ICICI Bank"},
	{"sbi", "SBI Card"},
	{"axis", "Axis Bank"},
	{"kotak", "Kotak Mahindra Bank"},
	{"idfc", "IDFC First Bank"},
	{"indusind", "IndusInd Bank"},
	{"american-express", "American Express"},
	{"amex", "American Express"},
	{"hsbc", "HSBC"},
	{"rbl", "RBL Bank"},
	{"yes", "Yes Bank"},
	{"federal", "Federal Bank"},
	{"au-bank", "AU Small Finance Bank"},
}

var cardPatterns = []struct {
	substr string
	name   string
}{
	{"regalia", "Regalia"},
	{"millennia", "Millennia"},
	{"infinia", "Infinia"},
	{"moneyback", "MoneyBack"},
	{"amazon-pay", "Amazon Pay"},
	{"amazonpay", "Amazon Pay"},
	{"coral", "Coral"},
	{"sapphiro", "Sapphiro"},
	{"simplyclick", "SimplyCLICK"},
	{"simplysave", "SimplySAVE"},
	{"magnus", "Magnus"},
	{"atlas", "Atlas"},
	{"flipkart", "Flipkart"},
	{"ace", "ACE"},
	{"cashback", "Cashback"},
	{"platinum", "Platinum"},
	{"gold", "Gold"},
}

// InferBankName guesses the issuing bank from a file name.
func InferBankName(fileName string) string {
	f := strings.ToLower(fileName)
	for _, p := range bankPatterns {
		if strings.Contains(f, p.substr) {
			return p.name
		}
	}
	return ""
}

// InferCardName guesses the card product from a file name.
func InferCardName(fileName string) string {
	f := strings.ToLower(fileName)
	for _, p := range cardPatterns {
		if strings.Contains(f, p.substr) {
			return p.name
		}
	}
	return ""
}
