package modelserver

// PredictRequest is the body sent to the model server's predict endpoint
type PredictRequest struct {
	HarnessSize float64 `json:"harness_size"`
}

// PredictResponse is the model server's answer
type PredictResponse struct {
	BootSize *float64 `json:"boot_size"`
	Model    string   `json:"model,omitempty"`
}

// ErrorBody is returned by the model server on failures
type ErrorBody struct {
	Error string `json:"error"`
}
