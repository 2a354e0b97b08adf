package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"spendwise-server/src/models"
	"spendwise-server/src/store"
	"spendwise-server/src/util"
)

// decodeExpenseRequest reads and validates a create/update payload. A
// non-empty message means the request is invalid.
func decodeExpenseRequest(r *http.Request) (models.ExpenseRequest, time.Time, string) {
	var req models.ExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, time.Time{}, "invalid request"
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Category = strings.TrimSpace(req.Category)
	if !util.ValidateExpense(req.Name, req.Amount, req.Category) {
		return req, time.Time{}, "name, positive amount, date and category are required"
	}

	date, ok := util.ParseDate(req.Date)
	if !ok {
		return req, time.Time{}, "date must be in YYYY-MM-DD format"
	}
	return req, date, ""
}

func CreateExpense(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		req, date, msg := decodeExpenseRequest(r)
		if msg != "" {
			log.Printf("ERROR: Invalid create expense request for user %d: %s", userID, msg)
			writeError(w, http.StatusBadRequest, msg)
			return
		}

		expense, err := st.CreateExpense(r.Context(), userID, req.Name, req.Amount, date, req.Category)
		if err != nil {
			log.Printf("ERROR: Failed to create expense for user %d: %v", userID, err)
			writeError(w, http.StatusInternalServerError, "failed to create expense")
			return
		}

		log.Printf("INFO: Created expense id %d for user %d, category %s", expense.ID, userID, expense.Category)
		writeJSON(w, http.StatusCreated, expense)
	}
}

func GetExpenses(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		category := r.URL.Query().Get("category")

		expenses, err := st.ListExpenses(r.Context(), userID, category)
		if err != nil {
			log.Printf("ERROR: Failed to get expenses for user %d: %v", userID, err)
			writeError(w, http.StatusInternalServerError, "failed to get expenses")
			return
		}
		if expenses == nil {
			expenses = []models.Expense{}
		}
		writeJSON(w, http.StatusOK, expenses)
	}
}

func UpdateExpense(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		expenseIDStr := chi.URLParam(r, "expense_id")
		expenseID, err := strconv.ParseInt(expenseIDStr, 10, 64)
		if err != nil {
			log.Printf("ERROR: Invalid expense id param: %s", expenseIDStr)
			writeError(w, http.StatusBadRequest, "invalid expense id")
			return
		}

		req, date, msg := decodeExpenseRequest(r)
		if msg != "" {
			log.Printf("ERROR: Invalid update expense request for user %d: %s", userID, msg)
			writeError(w, http.StatusBadRequest, msg)
			return
		}

		expense, err := st.UpdateExpense(r.Context(), userID, expenseID, req.Name, req.Amount, date, req.Category)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				log.Printf("ERROR: Expense id %d not found for user %d", expenseID, userID)
				writeError(w, http.StatusNotFound, "expense not found")
				return
			}
			log.Printf("ERROR: Failed to update expense id %d for user %d: %v", expenseID, userID, err)
			writeError(w, http.StatusInternalServerError, "failed to update expense")
			return
		}

		log.Printf("INFO: Updated expense id %d for user %d", expense.ID, userID)
		writeJSON(w, http.StatusOK, expense)
	}
}

func DeleteExpense(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		expenseIDStr := chi.URLParam(r, "expense_id")
		expenseID, err := strconv.ParseInt(expenseIDStr, 10, 64)
		if err != nil {
			log.Printf("ERROR: Invalid expense id param: %s", expenseIDStr)
			writeError(w, http.StatusBadRequest, "invalid expense id")
			return
		}

		if err := st.DeleteExpense(r.Context(), userID, expenseID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				log.Printf("ERROR: Expense id %d not found for user %d", expenseID, userID)
				writeError(w, http.StatusNotFound, "expense not found")
				return
			}
			log.Printf("ERROR: Failed to delete expense id %d for user %d: %v", expenseID, userID, err)
			writeError(w, http.StatusInternalServerError, "failed to delete expense")
			return
		}

		log.Printf("INFO: Deleted expense id %d for user %d", expenseID, userID)
		writeJSON(w, http.StatusOK, map[string]string{"message": "expense deleted"})
	}
}
