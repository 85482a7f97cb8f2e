package shared

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type taggedRequest struct {
	Name string `validate:"required"`
}

type selfValidatingRequest struct {
	err error
}

func (r selfValidatingRequest) Validate() error { return r.err }

func TestValidateRequest(t *testing.T) {
	t.Parallel()

	t.Run("struct tags", func(t *testing.T) {
		assert.Error(t, ValidateRequest(taggedRequest{}))
		assert.NoError(t, ValidateRequest(taggedRequest{Name: "ok"}))
	})

	t.Run("own Validate method takes precedence", func(t *testing.T) {
		wantErr := errors.New("bad request")
		assert.ErrorIs(t, ValidateRequest(selfValidatingRequest{err: wantErr}), wantErr)
		assert.NoError(t, ValidateRequest(selfValidatingRequest{}))
	})
}
