package httpHandler

import (
	"context"
	"errors"
	"net/http"

	"room-server/repositories"
	"room-server/serializers"
	"room-server/services"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	"go.uber.org/zap"
)

// request is what a handler function needs from the incoming HTTP request.
type request struct {
	method string
	path   string
	id     string
	body   []byte
	trans  ut.Translator
}

// response is a status plus a JSON body. A nil body writes no content.
type response struct {
	status int
	body   any
}

type handlerFunc func(ctx context.Context, req request) response

// Common carries the dependencies shared by every resource handler.
type Common struct {
	Validator *serializers.Validator
	Logger    *zap.Logger
	Reporter  *services.ErrorReporter
}

// serve adapts fn to gin: it decodes the request, runs fn and writes the result.
func (cm Common) serve(c *gin.Context, fn handlerFunc) {
	req := request{
		method: c.Request.Method,
		path:   c.FullPath(),
		id:     c.Param("id"),
		trans:  cm.Validator.Translator(c.GetHeader("Accept-Language")),
	}
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodDelete {
		body, err := c.GetRawData()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}
		req.body = body
	}

	res := fn(c.Request.Context(), req)
	if res.body == nil {
		c.Status(res.status)
		return
	}
	c.JSON(res.status, res.body)
}

// fail maps err onto the response for it. Anything that is not a validation,
// parse or not-found error is a 500 and gets logged and reported.
func (cm Common) fail(req request, op string, err error) response {
	var verr *serializers.ValidationError
	var perr *serializers.ParseError
	switch {
	case errors.As(err, &verr):
		return response{status: http.StatusBadRequest, body: verr}
	case errors.As(err, &perr):
		return response{status: http.StatusBadRequest, body: gin.H{"detail": perr.Detail}}
	case errors.Is(err, repositories.ErrNotFound):
		return response{status: http.StatusNotFound, body: gin.H{"detail": serializers.Message(req.trans, serializers.MsgNotFound)}}
	}

	cm.Logger.Error("request failed",
		zap.String("op", op),
		zap.String("method", req.method),
		zap.String("route", req.path),
		zap.String("id", req.id),
		zap.Error(err),
	)
	cm.Reporter.Capture(err, map[string]string{
		"op":     op,
		"method": req.method,
		"route":  req.path,
	})
	return response{status: http.StatusInternalServerError, body: gin.H{"detail": serializers.Message(req.trans, serializers.MsgServerError)}}
}

func ok(body any) response      { return response{status: http.StatusOK, body: body} }
func created(body any) response { return response{status: http.StatusCreated, body: body} }
func noContent() response       { return response{status: http.StatusNoContent} }
