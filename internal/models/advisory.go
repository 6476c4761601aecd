package models

// Severity grades how far a selected boot size is from the estimate
type Severity string

const (
	SeverityOk      Severity = "ok"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Advisory is the outcome of comparing a selected boot size against the estimated one.
// It is built fresh per request and never mutated afterwards.
type Advisory struct {
	Severity        Severity   `json:"severity"`
	Code            AdviceCode `json:"code"`
	Message         string     `json:"message"`
	RecommendedSize int        `json:"recommended_size"`
	SelectedSize    int        `json:"selected_size"`
	EstimatedSize   int        `json:"estimated_size"`
}
