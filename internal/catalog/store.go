// Package catalog holds the fixed, in-memory user and quiz data served by the
// API. The data is built once at startup and never mutated.
package catalog

import (
	"errors"
	"fmt"
	"strconv"
)

// DefaultUserID is returned by User when the requested id is unknown.
const DefaultUserID = "1"

// OptionsPerQuestion is the number of answer options every question carries.
const OptionsPerQuestion = 4

// Store is a read-only view over the user and quiz catalogs. It is safe for
// concurrent use because nothing writes to it after New returns.
type Store struct {
	users     []User
	questions []QuizQuestion
	byID      map[string]int
}

// New builds the store from the built-in mock data. It panics if the data
// breaks a catalog invariant.
func New() *Store {
	s, err := NewFrom(mockUsers, mockQuestions)
	if err != nil {
		panic(fmt.Sprintf("catalog: built-in data is invalid: %v", err))
	}
	return s
}

// NewFrom builds a store from the given records after validating them. The
// input slices are copied.
func NewFrom(users []User, questions []QuizQuestion) (*Store, error) {
	if err := Validate(users, questions); err != nil {
		return nil, err
	}

	s := &Store{
		users:     cloneUsers(users),
		questions: cloneQuestions(questions),
		byID:      make(map[string]int, len(users)),
	}
	for i, u := range s.users {
		s.byID[strconv.Itoa(u.ID)] = i
	}
	if _, ok := s.byID[DefaultUserID]; !ok {
		return nil, fmt.Errorf("no user with default id %s", DefaultUserID)
	}
	return s, nil
}

// User returns the user whose id matches the decimal string id. Unknown ids
// yield the user with DefaultUserID instead of an error.
func (s *Store) User(id string) User {
	if i, ok := s.byID[id]; ok {
		return s.users[i]
	}
	return s.users[s.byID[DefaultUserID]]
}

// Users returns every user in ascending id order.
func (s *Store) Users() []User {
	return cloneUsers(s.users)
}

// QuizQuestions returns every question in ascending id order, correct answers
// included.
func (s *Store) QuizQuestions() []QuizQuestion {
	return cloneQuestions(s.questions)
}

// Validate checks the invariants both catalogs must hold.
func Validate(users []User, questions []QuizQuestion) error {
	if len(users) == 0 {
		return errors.New("user catalog is empty")
	}
	for i, u := range users {
		if u.ID <= 0 {
			return fmt.Errorf("user %q: id must be positive, got %d", u.Name, u.ID)
		}
		if i > 0 && u.ID <= users[i-1].ID {
			return fmt.Errorf("user %d: ids must be unique and ascending", u.ID)
		}
		if u.FinScore < 0 || u.FinScore > 100 {
			return fmt.Errorf("user %d: finScore %.1f out of range", u.ID, u.FinScore)
		}
		for name, v := range map[string]int{
			"budgetAdherence":       u.BudgetAdherence,
			"savingProgress":        u.SavingProgress,
			"investmentPerformance": u.InvestmentPerformance,
			"quizScore":             u.QuizScore,
		} {
			if v < 0 || v > 100 {
				return fmt.Errorf("user %d: %s %d out of range", u.ID, name, v)
			}
		}
	}

	for i, q := range questions {
		if q.ID <= 0 {
			return fmt.Errorf("question %q: id must be positive, got %d", q.Question, q.ID)
		}
		if i > 0 && q.ID <= questions[i-1].ID {
			return fmt.Errorf("question %d: ids must be unique and ascending", q.ID)
		}
		if len(q.Options) != OptionsPerQuestion {
			return fmt.Errorf("question %d: want %d options, got %d", q.ID, OptionsPerQuestion, len(q.Options))
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			return fmt.Errorf("question %d: correctAnswer %d out of bounds", q.ID, q.CorrectAnswer)
		}
	}
	return nil
}

func cloneUsers(in []User) []User {
	out := make([]User, len(in))
	copy(out, in)
	return out
}

func cloneQuestions(in []QuizQuestion) []QuizQuestion {
	out := make([]QuizQuestion, len(in))
	for i, q := range in {
		q.Options = append([]string(nil), q.Options...)
		out[i] = q
	}
	return out
}
