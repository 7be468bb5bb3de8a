package server

import (
	"github.com/aws/aws-lambda-go/events"
	"github.com/cyphera/cyphera-tax/libs/go/logger"
	"github.com/davecgh/go-spew/spew"
)

var requestContextDumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// RedactRequestContext returns a copy of rc without caller identity, authorizer
// claims or the raw path. ResourcePath keeps the route template.
func RedactRequestContext(rc events.APIGatewayProxyRequestContext) events.APIGatewayProxyRequestContext {
	redacted := rc
	redacted.Identity = events.APIGatewayRequestIdentity{}
	redacted.Authorizer = nil
	if redacted.Path != "" {
		redacted.Path = logger.Redacted
	}
	return redacted
}

// DumpRequestContext renders the redacted request context for debug logs
func DumpRequestContext(rc events.APIGatewayProxyRequestContext) string {
	return requestContextDumper.Sdump(RedactRequestContext(rc))
}
