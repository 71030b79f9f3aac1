package userservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sushihentaime/newsfeed/internal/common"
)

func setupTestEnvironment(t *testing.T) *UserService {
	db := common.TestDB("file://../../migrations", t)
	common.SeedTestData(t, db)

	return NewUserService(db)
}

func TestListUsers(t *testing.T) {
	s := setupTestEnvironment(t)

	users, err := s.ListUsers(context.Background())
	assert.NoError(t, err)

	usernames := make([]string, 0, len(users))
	for _, u := range users {
		usernames = append(usernames, u.Username)
	}
	assert.Equal(t, []string{"butter_bridge", "icellusedkars", "lurker", "rogersop"}, usernames)
}

func TestGetUserByUsername(t *testing.T) {
	s := setupTestEnvironment(t)

	testCases := []struct {
		name        string
		username    string
		expectedErr error
	}{
		{
			name:        "existing user",
			username:    "butter_bridge",
			expectedErr: nil,
		},
		{
			name:        "missing user",
			username:    "nobody",
			expectedErr: ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			u, err := s.GetUserByUsername(context.Background(), tc.username)
			assert.Equal(t, tc.expectedErr, err)
			if tc.expectedErr != nil {
				assert.Nil(t, u)
			} else {
				assert.Equal(t, tc.username, u.Username)
				assert.NotEmpty(t, u.Name)
			}
		})
	}
}
