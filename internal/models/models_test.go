package models

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationValidate(t *testing.T) {
	assert.NoError(t, Location{Latitude: 12.9, Longitude: 77.6}.Validate())
	assert.ErrorIs(t, Location{Latitude: math.NaN(), Longitude: 1}.Validate(), ErrValidation)
	assert.ErrorIs(t, Location{Latitude: 1, Longitude: math.Inf(1)}.Validate(), ErrValidation)
	assert.ErrorIs(t, Location{Latitude: 91, Longitude: 0}.Validate(), ErrValidation)
	assert.ErrorIs(t, Location{Latitude: 0, Longitude: -181}.Validate(), ErrValidation)
}

func TestRoomKeyRoundTrip(t *testing.T) {
	key := RoomKey("o1", "v1")
	assert.Equal(t, "o1_v1", key)

	officerID, victimID, err := ParseRoomKey(key)
	require.NoError(t, err)
	assert.Equal(t, "o1", officerID)
	assert.Equal(t, "v1", victimID)
}

func TestParseRoomKey_Malformed(t *testing.T) {
	for _, key := range []string{"", "o1", "_v1", "o1_", "a_b_c"} {
		_, _, err := ParseRoomKey(key)
		assert.True(t, errors.Is(err, ErrValidation), key)
	}
}

func TestValidateRoomPair(t *testing.T) {
	require.NoError(t, ValidateRoomPair("o1", "v1"))

	// ("a_b", "c") и ("a", "b_c") дали бы один ключ "a_b_c"
	assert.ErrorIs(t, ValidateRoomPair("a_b", "c"), ErrValidation)
	assert.ErrorIs(t, ValidateRoomPair("a", "b_c"), ErrValidation)
	assert.ErrorIs(t, ValidateRoomPair("", "v1"), ErrValidation)
}

func TestReleasePolicy(t *testing.T) {
	policy, err := ParseReleasePolicy("")
	require.NoError(t, err)
	assert.Equal(t, ReleaseResolve, policy)
	assert.Equal(t, StatusResolved, policy.Target())
	assert.True(t, policy.CanRelease(StatusPending))
	assert.True(t, policy.CanRelease(StatusInChat))
	assert.False(t, policy.CanRelease(StatusResolved))

	policy, err = ParseReleasePolicy("requeue")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, policy.Target())
	assert.False(t, policy.CanRelease(StatusPending))
	assert.True(t, policy.CanRelease(StatusAccepted))

	_, err = ParseReleasePolicy("recycle")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestIdentityNamespaces(t *testing.T) {
	assert.NotEqual(t, Victim("42"), Officer("42"))
	assert.Equal(t, "officer:42", Officer("42").String())
}
