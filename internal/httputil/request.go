package httputil

import (
	"errors"
	"io"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/rs/zerolog/log"
)

// BindData binds the JSON body of the request to the value that data points to.
//
// Fields that are not present in the body keep their current value. The body
// is cached in the context, so BindData can be called multiple times for the
// same request.
func BindData(c *gin.Context, data any) error {
	err := c.ShouldBindBodyWith(data, binding.JSON)
	if err == nil {
		return nil
	}

	if errors.Is(err, io.EOF) {
		return ErrRequestBodyEmpty
	}

	log.Debug().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	return ErrInvalidBody
}
