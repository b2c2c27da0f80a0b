package httpserver

import (
	"encoding/base64"
	"io"
	"net/http"
	"unicode/utf8"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gin-gonic/gin"
)

// Forward converts the HTTP request into an ALB target group event,
// dispatches it through the albrouter engine and writes the resulting
// response back.
func (e *Engine) Forward(c *gin.Context) {
	event, err := e.genEvent(c)
	if err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		c.Abort()
		return
	}

	resp, err := e.alb.Invoke(c.Request.Context(), event)
	if err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		c.Abort()
		return
	}

	body := []byte(resp.Body)
	if resp.IsBase64Encoded {
		body, err = base64.StdEncoding.DecodeString(resp.Body)
		if err != nil {
			c.String(http.StatusInternalServerError, "Internal Server Error")
			c.Abort()
			return
		}
	}

	for k, v := range resp.Headers {
		c.Writer.Header().Set(k, v)
	}
	c.Status(resp.StatusCode)
	c.Writer.Write(body)
	c.Abort()
}

// genEvent builds the ALB event the Lambda runtime would deliver for
// this request. Binary bodies are base64-encoded with the flag set, as
// the ALB does.
func (e *Engine) genEvent(c *gin.Context) (events.ALBTargetGroupRequest, error) {
	event := events.ALBTargetGroupRequest{
		HTTPMethod:                      c.Request.Method,
		Path:                            c.Request.URL.Path,
		MultiValueQueryStringParameters: c.Request.URL.Query(),
		MultiValueHeaders:               c.Request.Header,
	}

	if c.Request.Body != nil {
		data, err := io.ReadAll(c.Request.Body)
		if err != nil {
			return events.ALBTargetGroupRequest{}, err
		}
		defer c.Request.Body.Close()

		if utf8.Valid(data) {
			event.Body = string(data)
		} else {
			event.Body = base64.StdEncoding.EncodeToString(data)
			event.IsBase64Encoded = true
		}
	}

	return event, nil
}

// Cors allows any origin, for local development only.
func Cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, PATCH, HEAD, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
