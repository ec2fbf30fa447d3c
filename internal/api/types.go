package api

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type AskRequest struct {
	Query string `json:"query"`
}

type IngestRequest struct {
	FileName string `json:"file_name"`
	Text     string `json:"text"`
}

type IngestResponse struct {
	OK       bool   `json:"ok"`
	Chunks   int    `json:"chunks"`
	CardName string `json:"card_name,omitempty"`
	BankName string `json:"bank_name,omitempty"`
}

type ClearResponse struct {
	OK bool `json:"ok"`
}
