package router

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/tidwall/sjson"
)

const defaultContentType = "application/json"

// Response lets a handler override the status, description or headers of
// its reply. Returning a plain payload instead is equivalent to
// NewResponse(payload).
type Response struct {
	StatusCode        int
	StatusDescription string
	Headers           map[string]string
	Body              any
}

// NewResponse wraps a body with a 200 status.
func NewResponse(body any) *Response {
	return &Response{StatusCode: 200, Body: body}
}

// WithStatus sets the status code.
func (r *Response) WithStatus(code int) *Response {
	r.StatusCode = code
	return r
}

// WithDescription overrides the derived "<code> <reason>" description.
func (r *Response) WithDescription(description string) *Response {
	r.StatusDescription = description
	return r
}

// WithHeader sets a response header, overriding the defaults.
func (r *Response) WithHeader(key, value string) *Response {
	if r.Headers == nil {
		r.Headers = map[string]string{}
	}
	r.Headers[key] = value
	return r
}

// buildResponse normalizes a handler result into the ALB response shape.
func buildResponse(result any) (events.ALBTargetGroupResponse, error) {
	switch v := result.(type) {
	case *Response:
		return renderResponse(v)
	case Response:
		return renderResponse(&v)
	case nil:
		return renderResponse(NewResponse(""))
	default:
		return renderResponse(NewResponse(result))
	}
}

func renderResponse(r *Response) (events.ALBTargetGroupResponse, error) {
	code := r.StatusCode
	if code == 0 {
		code = 200
	}

	headers := map[string]string{"Content-Type": defaultContentType}
	for k, v := range r.Headers {
		headers[k] = v
	}

	resp := events.ALBTargetGroupResponse{
		StatusCode:        code,
		StatusDescription: r.StatusDescription,
		Headers:           headers,
	}
	if resp.StatusDescription == "" {
		resp.StatusDescription = statusDescription(code)
	}

	switch body := r.Body.(type) {
	case nil:
		resp.Body = ""
	case string:
		resp.Body = body
	case []byte:
		resp.Body = base64.StdEncoding.EncodeToString(body)
		resp.IsBase64Encoded = true
	default:
		data, err := json.Marshal(body)
		if err != nil {
			return events.ALBTargetGroupResponse{}, fmt.Errorf("albrouter: marshal response body: %w", err)
		}
		resp.Body = string(data)
	}

	return resp, nil
}

// errorResponse builds the response for an aborted or failed request:
// the status from the Error and a {"message": ...} JSON body.
func errorResponse(e *Error) events.ALBTargetGroupResponse {
	body, err := sjson.Set("{}", "message", e.Message)
	if err != nil {
		// Message was not serializable; fall back to its printed form.
		body, _ = sjson.Set("{}", "message", fmt.Sprintf("%v", e.Message))
	}

	return events.ALBTargetGroupResponse{
		StatusCode:        e.Code,
		StatusDescription: e.Description(),
		Headers:           map[string]string{"Content-Type": defaultContentType},
		Body:              body,
	}
}
