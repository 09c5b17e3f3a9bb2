package lambda

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
)

// NewRequestFromAPIGateway converts an API Gateway proxy event into a Request.
// The request id is the Lambda invocation id when ctx carries one, otherwise
// the id API Gateway assigned to the request. A base64 body that fails to
// decode is reported through BodyErr and leaves Body empty.
func NewRequestFromAPIGateway(ctx context.Context, event events.APIGatewayProxyRequest) *Request {
	req := &Request{
		Method:    event.HTTPMethod,
		Path:      event.Path,
		Headers:   event.Headers,
		Body:      []byte(event.Body),
		RequestID: RequestIDFromContext(ctx, event.RequestContext.RequestID),
	}

	if event.IsBase64Encoded && event.Body != "" {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			req.Body = nil
			req.BodyErr = fmt.Errorf("failed to decode base64 body: %w", err)
		} else {
			req.Body = decoded
		}
	}

	return req
}

// RequestIDFromContext returns the AWS request id stored in ctx by the
// Lambda runtime, or fallback when ctx has none
func RequestIDFromContext(ctx context.Context, fallback string) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		return lc.AwsRequestID
	}
	return fallback
}

// ToAPIGateway converts the response into an API Gateway proxy response
func (r *Response) ToAPIGateway() events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: r.StatusCode,
		Headers:    r.Headers,
		Body:       string(r.Body),
	}
}
