package v1

// Response wraps every successful payload.
type Response struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

func OK(data any) Response {
	return Response{Success: true, Data: data}
}
