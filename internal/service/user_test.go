package service

import (
	"fmt"
	"testing"

	"wordtrainer/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestUserService_EnsureUserExists(t *testing.T) {
	tests := []struct {
		name          string
		mockError     error
		expectedError bool
	}{
		{
			name: "user ensured",
		},
		{
			name:          "database error",
			mockError:     fmt.Errorf("db error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockUserRepository)
			mockRepo.On("EnsureUserExists", int64(42)).Return(tt.mockError)

			service := NewUserService(mockRepo)

			err := service.EnsureUserExists(42)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
