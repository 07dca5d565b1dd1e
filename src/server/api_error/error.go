package api_error

// JSONAPIError never carries internal details, those only go to the logs
type JSONAPIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
