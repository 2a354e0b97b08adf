package client

import (
	"spendwise-server/src/models"
	"spendwise-server/src/store"
)

// Session holds the client-side state for one logged-in user: the fetched
// expense list, the active category filter, and the single-record edit
// toggle. It is passed explicitly to whatever renders it; there is no
// package-level state. The list is re-fetched after every mutation and on
// every filter change, never updated optimistically.
type Session struct {
	api       *API
	Username  string
	Expenses  []models.Expense
	EditingID *int64
	Filter    string
}

func NewSession(api *API) *Session {
	return &Session{api: api, Filter: store.FilterAll}
}

// Login authenticates and loads the initial expense list.
func (s *Session) Login(username, password string) error {
	if err := s.api.Login(username, password); err != nil {
		return err
	}
	s.Username = username
	return s.Refresh()
}

// Refresh re-fetches the expense list for the current filter.
func (s *Session) Refresh() error {
	category := s.Filter
	if category == store.FilterAll {
		category = ""
	}
	expenses, err := s.api.ListExpenses(category)
	if err != nil {
		return err
	}
	s.Expenses = expenses
	return nil
}

// SetFilter switches the category filter and re-fetches. An empty category
// resets to "all".
func (s *Session) SetFilter(category string) error {
	if category == "" {
		category = store.FilterAll
	}
	s.Filter = category
	return s.Refresh()
}

// StartEdit marks an expense as being edited and returns it so its fields
// can pre-fill the form. The next Submit becomes an update.
func (s *Session) StartEdit(id int64) (*models.Expense, bool) {
	for i := range s.Expenses {
		if s.Expenses[i].ID == id {
			s.EditingID = &id
			return &s.Expenses[i], true
		}
	}
	return nil, false
}

func (s *Session) CancelEdit() {
	s.EditingID = nil
}

// Submit creates a new expense, or replaces the one being edited; either
// way edit mode is cleared and the list re-fetched once the server has
// confirmed the operation.
func (s *Session) Submit(req models.ExpenseRequest) error {
	var err error
	if s.EditingID != nil {
		_, err = s.api.UpdateExpense(*s.EditingID, req)
	} else {
		_, err = s.api.CreateExpense(req)
	}
	if err != nil {
		return err
	}
	s.EditingID = nil
	return s.Refresh()
}

func (s *Session) Delete(id int64) error {
	if err := s.api.DeleteExpense(id); err != nil {
		return err
	}
	if s.EditingID != nil && *s.EditingID == id {
		s.EditingID = nil
	}
	return s.Refresh()
}

func (s *Session) Dashboard() (*models.DashboardSnapshot, error) {
	return s.api.Dashboard()
}
