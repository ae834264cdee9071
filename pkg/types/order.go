package types

// Order is one row of the loaded dataset. Orders are immutable after load.
// StatusLeft and StatusRight come from an open vocabulary, unknown values
// are kept as-is.
type Order struct {
	Oid            uint   `json:"oid"`
	StatusLeft     string `json:"statusLeft"`
	StatusRight    string `json:"statusRight"`
	Type           string `json:"type"`
	Lock           string `json:"lock"`
	Customer       string `json:"customer"`
	DaysSinceOrder int    `json:"daysSinceOrder"`
	Model          string `json:"model"`
	Designer       string `json:"designer"`
}
