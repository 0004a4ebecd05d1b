package httperror

// Error is the body of all error responses.
type Error struct {
	Success bool   `json:"success" example:"false"`                     // Always false
	Message string `json:"message" example:"please provide all fields"` // The error
}

func New(e error) Error {
	return Error{
		Message: e.Error(),
	}
}

func NewFromString(s string) Error {
	return Error{
		Message: s,
	}
}
