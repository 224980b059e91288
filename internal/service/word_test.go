package service

import (
	"fmt"
	"strings"
	"testing"

	"wordtrainer/internal/domain"
	"wordtrainer/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestWordService_VisibleWords(t *testing.T) {
	defaultSet := []domain.Word{
		testutil.NewTestWord(1, "Peace", "Мир", false),
		testutil.NewTestWord(2, "Green", "Зеленый", false),
	}

	tests := []struct {
		name          string
		userID        int64
		ensureError   error
		mockWords     []domain.Word
		mockError     error
		expectedLen   int
		expectedError bool
	}{
		{
			name:        "new user sees default set",
			userID:      42,
			mockWords:   defaultSet,
			expectedLen: 2,
		},
		{
			name:          "ensure user fails",
			userID:        42,
			ensureError:   fmt.Errorf("db error"),
			expectedError: true,
		},
		{
			name:          "repository fails",
			userID:        42,
			mockError:     fmt.Errorf("db error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWordRepo := new(testutil.MockWordRepository)
			mockUserRepo := new(testutil.MockUserRepository)

			mockUserRepo.On("EnsureUserExists", tt.userID).Return(tt.ensureError)
			if tt.ensureError == nil {
				mockWordRepo.On("GetVisibleWords", tt.userID).Return(tt.mockWords, tt.mockError)
			}

			service := NewWordService(mockWordRepo, mockUserRepo)

			words, err := service.VisibleWords(tt.userID)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, words, tt.expectedLen)
			}

			mockUserRepo.AssertExpectations(t)
			mockWordRepo.AssertExpectations(t)
		})
	}
}

func TestWordService_AddWord(t *testing.T) {
	tests := []struct {
		name          string
		english       string
		russian       string
		expectStore   bool
		storedEnglish string
		storedRussian string
		mockError     error
		expectedError bool
	}{
		{
			name:          "valid pair",
			english:       "Cat",
			russian:       "Кот",
			expectStore:   true,
			storedEnglish: "Cat",
			storedRussian: "Кот",
		},
		{
			name:          "input is trimmed",
			english:       "  Cat  ",
			russian:       " Кот ",
			expectStore:   true,
			storedEnglish: "Cat",
			storedRussian: "Кот",
		},
		{
			name:          "blank english",
			english:       "   ",
			russian:       "Кот",
			expectedError: true,
		},
		{
			name:          "blank translation",
			english:       "Cat",
			russian:       "",
			expectedError: true,
		},
		{
			name:          "english too long",
			english:       strings.Repeat("a", 51),
			russian:       "Кот",
			expectedError: true,
		},
		{
			name:          "translation too long",
			english:       "Cat",
			russian:       strings.Repeat("б", 51),
			expectedError: true,
		},
		{
			name:          "storage failure",
			english:       "Cat",
			russian:       "Кот",
			expectStore:   true,
			storedEnglish: "Cat",
			storedRussian: "Кот",
			mockError:     fmt.Errorf("db error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWordRepo := new(testutil.MockWordRepository)
			mockUserRepo := new(testutil.MockUserRepository)

			if tt.expectStore {
				mockUserRepo.On("EnsureUserExists", int64(42)).Return(nil)
				mockWordRepo.On("AddWord", int64(42), tt.storedEnglish, tt.storedRussian).Return(tt.mockError)
			}

			service := NewWordService(mockWordRepo, mockUserRepo)

			err := service.AddWord(42, tt.english, tt.russian)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			mockUserRepo.AssertExpectations(t)
			mockWordRepo.AssertExpectations(t)
		})
	}
}

func TestWordService_DeleteWord(t *testing.T) {
	// No policy at this layer: the quiz flow decides whether a word may be
	// deleted, the association just soft-deletes the link.
	tests := []struct {
		name          string
		mockError     error
		expectedError bool
	}{
		{
			name: "link soft-deleted",
		},
		{
			name:          "storage failure",
			mockError:     fmt.Errorf("db error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWordRepo := new(testutil.MockWordRepository)
			mockUserRepo := new(testutil.MockUserRepository)

			mockWordRepo.On("DeleteWord", int64(42), 11).Return(tt.mockError)

			service := NewWordService(mockWordRepo, mockUserRepo)

			err := service.DeleteWord(42, 11)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			mockWordRepo.AssertExpectations(t)
		})
	}
}
