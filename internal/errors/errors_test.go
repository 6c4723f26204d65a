package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meal-benefit/internal/errors"
)

func TestErrorFormatting(t *testing.T) {
	err := errors.New(errors.TypeConfig, "competency month is required")
	assert.Equal(t, "[CONFIG_ERROR] competency month is required", err.Error())

	cause := fmt.Errorf("no such file")
	wrapped := errors.Wrap(errors.TypeInput, "active-employee workbook", cause)
	assert.Equal(t, "[INPUT_ERROR] active-employee workbook: no such file", wrapped.Error())
	assert.Equal(t, cause, wrapped.Unwrap())
}

func TestIsType(t *testing.T) {
	err := errors.Config("bad shares")
	assert.True(t, errors.IsType(err, errors.TypeConfig))
	assert.False(t, errors.IsType(err, errors.TypeInput))
	assert.False(t, errors.IsType(fmt.Errorf("plain"), errors.TypeConfig))
}

func TestConstructors(t *testing.T) {
	assert.True(t, errors.Input("x").Is(errors.TypeInput))
	assert.True(t, errors.Schema("ferias", "no id column").Is(errors.TypeSchema))
	assert.True(t, errors.Parsing("bad date", nil).Is(errors.TypeParsing))
	assert.True(t, errors.Output("save failed", nil).Is(errors.TypeOutput))
	assert.True(t, errors.Internal("oops", nil).Is(errors.TypeInternal))

	schema := errors.Schema("ferias", "no id column")
	assert.Contains(t, schema.Error(), "table ferias")
}

func TestWithContext(t *testing.T) {
	err := errors.New(errors.TypeRate, "no entry matched").
		WithContext("label", "SINDPD SP")
	require.NotNil(t, err.Context)
	assert.Equal(t, "SINDPD SP", err.Context["label"])
}
