package constants

import "github.com/cyphera/cyphera-tax/libs/go/types/business"

// Error messages used throughout the API handlers
const (
	// Not found errors
	TaxpayerNotFound = "Taxpayer not found"

	// Request errors
	InvalidRequestBody = "Invalid request body"
	InvalidAmount      = business.InvalidAmountMessage
	TaxpayerExists     = "Taxpayer already exists"

	// Authorization errors
	AdminAccessRequired = "Admin access required"

	// Server errors
	InternalServerError = "Internal server error"
)
