package httputil

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/rs/zerolog/log"
	"github.com/ryanuber/go-glob"
)

// wrapper is the envelope some clients send request bodies in.
type wrapper struct {
	PropertyData json.RawMessage `json:"propertyData"`
}

// BindData binds the JSON body of the request to data.
//
// The body can either be the resource itself or an object with the
// resource in its "propertyData" field.
func BindData(c *gin.Context, data any) error {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrInvalidBody
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return ErrRequestBodyEmpty
	}

	var w wrapper
	if json.Unmarshal(body, &w) == nil && len(w.PropertyData) > 0 && string(w.PropertyData) != "null" {
		body = w.PropertyData
	}

	if err := binding.JSON.BindBody(body, data); err != nil {
		var jsonUnmarshalTypeError *json.UnmarshalTypeError
		if errors.As(err, &jsonUnmarshalTypeError) {
			return err
		}

		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrInvalidBody
	}

	return nil
}

// Match reports if name matches the glob pattern, ignoring case.
// An empty pattern matches everything.
func Match(pattern, name string) bool {
	if pattern == "" {
		return true
	}

	return glob.Glob(strings.ToLower(pattern), strings.ToLower(name))
}

// BindURI binds the URI parameters of the request to data. All URI
// parameters are resource IDs, so any failure is reported as ErrInvalidUUID.
func BindURI(c *gin.Context, data any) error {
	if err := c.ShouldBindUri(data); err != nil {
		log.Debug().Str("request-id", requestid.Get(c)).Err(err).Msg("URI binding")
		return ErrInvalidUUID
	}

	return nil
}

// BindQuery binds the query parameters of the request to data. Only
// ID parameters can fail to bind, they are reported as ErrInvalidUUID.
func BindQuery(c *gin.Context, data any) error {
	if err := c.ShouldBindQuery(data); err != nil {
		log.Debug().Str("request-id", requestid.Get(c)).Err(err).Msg("Query binding")
		return ErrInvalidUUID
	}

	return nil
}
