package favorite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "NYR", Normalize(" nyr\n", "STL"))
	assert.Equal(t, "STL", Normalize("", "STL"))
	assert.Equal(t, "STL", Normalize("BLUES", "STL"))
	assert.Equal(t, "STL", Normalize("N1R", "STL"))
	assert.Equal(t, "STL", Normalize("zzz", "STL"))
}

func TestValidate(t *testing.T) {
	code, err := Validate("tor")
	require.NoError(t, err)
	assert.Equal(t, "TOR", code)

	_, err = Validate("toronto")
	assert.ErrorIs(t, err, ErrInvalidTeam)

	_, err = Validate("ZZZ")
	assert.ErrorIs(t, err, ErrInvalidTeam)
}

func TestStatic(t *testing.T) {
	assert.Equal(t, "STL", Static("STL").Team(context.Background()))
}
