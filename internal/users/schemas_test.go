package users

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserResponseRoundTrip(t *testing.T) {
	name := "A"
	user := User{
		ID:        uuid.New(),
		Email:     "a@x.com",
		FullName:  &name,
		IsActive:  false,
		CreatedAt: time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC),
		UpdatedAt: time.Date(2026, 2, 3, 4, 5, 7, 0, time.UTC),
	}

	raw, err := json.Marshal(NewUserResponse(user))
	require.NoError(t, err)

	var decoded UserResponse
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, NewUserResponse(user), decoded)
}

func TestUserResponseNullFullName(t *testing.T) {
	user := User{ID: uuid.New(), Email: "a@x.com", IsActive: true}

	raw, err := json.Marshal(NewUserResponse(user))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"full_name":null`)
}

func TestUpdateRequestDistinguishesAbsentFromNull(t *testing.T) {
	var absent UpdateUserRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &absent))
	assert.Nil(t, absent.Email)
	assert.Nil(t, absent.FullName)
	assert.Nil(t, absent.IsActive)

	var present UpdateUserRequest
	require.NoError(t, json.Unmarshal([]byte(`{"is_active":false}`), &present))
	require.NotNil(t, present.IsActive)
	assert.False(t, *present.IsActive)
}
