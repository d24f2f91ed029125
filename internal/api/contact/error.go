package contact

import "PortfolioGolang/pkg/response"

var (
	ErrMissingFields = response.NewError(400, "all fields are required")
	ErrInvalidEmail  = response.NewError(400, "please provide a valid email address")
	ErrSubmitFailed  = response.NewError(500, "failed to submit contact form, please try again")
)
