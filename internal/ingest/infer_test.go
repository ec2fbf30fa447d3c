package ingest

import "testing"

func TestInferBankName(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		want     string
	}{
		{
			name:     "HDFC file",
			fileName: "hdfc-regalia-terms.pdf",
			want:     "HDFC Bank",
		},
		{
			name:     "Uppercase file name",
			fileName: "ICICI-Coral-MITC.pdf",
			want:     "ICICI Bank",
		},
		{
			name:     "SBI file",
			fileName: "sbi-simplyclick.txt",
			want:     "SBI Card",
		},
		{
			name:     "Amex variant",
			fileName: "amex-platinum-travel.pdf",
			want:     "American Express",
		},
		{
			name:     "Unknown bank",
			fileName: "statement-march.pdf",
			want:     "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := InferBankName(test.fileName); got != test.want {
				t.Errorf("InferBankName(%q) = %q, want %q", test.fileName, got, test.want)
			}
		})
	}
}

func TestInferCardName(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		want     string
	}{
		{
			name:     "Regalia file",
			fileName: "hdfc-regalia-terms.pdf",
			want:     "Regalia",
		},
		{
			name:     "Amazon Pay hyphenated",
			fileName: "icici-amazon-pay-benefits.pdf",
			want:     "Amazon Pay",
		},
		{
			name:     "SimplyCLICK casing",
			fileName: "SBI-SimplyCLICK.pdf",
			want:     "SimplyCLICK",
		},
		{
			name:     "Unknown card",
			fileName: "generic-card-doc.pdf",
			want:     "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := InferCardName(test.fileName); got != test.want {
				t.Errorf("InferCardName(%q) = %q, want %q", test.fileName, got, test.want)
			}
		})
	}
}
