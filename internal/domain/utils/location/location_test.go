package location

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	loc, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = Load("Local")
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = Load("UTC")
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	_, err = Load("Not/AZone")
	assert.Error(t, err)
}
