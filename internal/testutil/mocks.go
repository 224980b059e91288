package testutil

import (
	"wordtrainer/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) EnsureUserExists(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

// MockWordRepository is a mock for WordRepository
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) UpsertWord(english, russian string, isCustom bool) (int, error) {
	args := m.Called(english, russian, isCustom)
	return args.Int(0), args.Error(1)
}

func (m *MockWordRepository) GetWordByID(id int) (*domain.Word, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Word), args.Error(1)
}

func (m *MockWordRepository) GetVisibleWords(userID int64) ([]domain.Word, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

func (m *MockWordRepository) HasVisibleWord(userID int64, wordID int) (bool, error) {
	args := m.Called(userID, wordID)
	return args.Bool(0), args.Error(1)
}

func (m *MockWordRepository) AddWord(userID int64, english, russian string) error {
	args := m.Called(userID, english, russian)
	return args.Error(0)
}

func (m *MockWordRepository) DeleteWord(userID int64, wordID int) error {
	args := m.Called(userID, wordID)
	return args.Error(0)
}

func (m *MockWordRepository) SeedDefaults(pairs []domain.WordPair) error {
	args := m.Called(pairs)
	return args.Error(0)
}

// MockStateRepository is a mock for StateRepository
type MockStateRepository struct {
	mock.Mock
}

func (m *MockStateRepository) GetState(userID int64) (*domain.SessionState, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SessionState), args.Error(1)
}

func (m *MockStateRepository) SetState(userID int64, wordID int) error {
	args := m.Called(userID, wordID)
	return args.Error(0)
}

func (m *MockStateRepository) ClearState(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}
