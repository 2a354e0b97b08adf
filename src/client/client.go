// Package client implements the terminal client for the expense API: a thin
// HTTP client, explicit per-session state, and pure view-model builders the
// CLI renders from.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"spendwise-server/src/models"
)

// API is a bearer-token client for the expense server.
type API struct {
	BaseURL string
	HTTP    *http.Client
	Token   string
}

func NewAPI(baseURL string) *API {
	return &API{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (a *API) do(method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, a.BaseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if a.Token != "" {
		req.Header.Set("Authorization", "Bearer "+a.Token)
	}

	resp, err := a.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s", apiErr.Error)
		}
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (a *API) Register(username, password string) (*models.RegisterResponse, error) {
	var resp models.RegisterResponse
	err := a.do(http.MethodPost, "/api/register", models.RegisterRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login stores the returned token on the client for subsequent calls.
func (a *API) Login(username, password string) error {
	var resp struct {
		Token string `json:"token"`
	}
	err := a.do(http.MethodPost, "/api/login", models.RegisterRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return err
	}
	a.Token = resp.Token
	return nil
}

// ListExpenses fetches the caller's expenses, date descending. An empty
// category fetches everything.
func (a *API) ListExpenses(category string) ([]models.Expense, error) {
	path := "/api/expenses"
	if category != "" {
		path += "?category=" + url.QueryEscape(category)
	}
	var expenses []models.Expense
	if err := a.do(http.MethodGet, path, nil, &expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}

func (a *API) CreateExpense(req models.ExpenseRequest) (*models.Expense, error) {
	var expense models.Expense
	if err := a.do(http.MethodPost, "/api/expenses", req, &expense); err != nil {
		return nil, err
	}
	return &expense, nil
}

func (a *API) UpdateExpense(id int64, req models.ExpenseRequest) (*models.Expense, error) {
	var expense models.Expense
	if err := a.do(http.MethodPut, fmt.Sprintf("/api/expenses/%d", id), req, &expense); err != nil {
		return nil, err
	}
	return &expense, nil
}

func (a *API) DeleteExpense(id int64) error {
	return a.do(http.MethodDelete, fmt.Sprintf("/api/expenses/%d", id), nil, nil)
}

func (a *API) Dashboard() (*models.DashboardSnapshot, error) {
	var snapshot models.DashboardSnapshot
	if err := a.do(http.MethodGet, "/api/dashboard", nil, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}
