package expense

import "context"

type StubRepository struct {
	expenses []Expense
}

func NewStubRepository() *StubRepository {
	return &StubRepository{expenses: []Expense{}}
}

func (s *StubRepository) GetAll(ctx context.Context) ([]Expense, error) {
	out := make([]Expense, len(s.expenses))
	copy(out, s.expenses)
	return out, nil
}

func (s *StubRepository) ReplaceAll(ctx context.Context, expenses []Expense) error {
	s.expenses = make([]Expense, len(expenses))
	copy(s.expenses, expenses)
	return nil
}

func (s *StubRepository) Cleanup() {
	s.expenses = []Expense{}
}
