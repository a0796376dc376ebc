package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/simak-api/pkg/errors"
)

type loginInput struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=3,max=100"`
}

func TestTranslateUsesJSONNames(t *testing.T) {
	v := New()
	err := Translate(v.Struct(loginInput{Username: "ab"}))

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	fields := appErr.Details.(appErrors.FieldErrors)
	assert.Equal(t, []string{"The username field must be at least 3 characters."}, fields["username"])
	assert.Equal(t, []string{"The password field is required."}, fields["password"])
}

func TestTranslatePassesThroughOtherErrors(t *testing.T) {
	boom := errors.New("boom")
	assert.Equal(t, boom, Translate(boom))
	assert.Nil(t, Translate(New().Struct(loginInput{Username: "2019001", Password: "secret"})))
}
