package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"golang.org/x/term"

	"spendwise-server/src/client"
	"spendwise-server/src/models"
	"spendwise-server/src/util"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("spendwise", flag.ContinueOnError)
	fs.SetOutput(stderr)

	serverURL := fs.String("server", "http://localhost:8080", "Base URL of the expense API")

	if err := fs.Parse(args); err != nil {
		return err
	}

	api := client.NewAPI(*serverURL)
	session := client.NewSession(api)
	scanner := bufio.NewScanner(stdin)

	fmt.Fprintln(stdout, "Commands: register, login, list, add, edit <id>, delete <id>, filter [category], dashboard, quit")
	for {
		fmt.Fprint(stdout, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		cmd, rest := fields[0], fields[1:]

		var err error
		switch cmd {
		case "quit", "exit":
			return nil
		case "register":
			err = doRegister(api, scanner, stdin, stdout)
		case "login":
			err = doLogin(session, scanner, stdin, stdout)
		case "list":
			if err = session.Refresh(); err == nil {
				printTable(stdout, client.BuildTableView(session))
			}
		case "filter":
			category := ""
			if len(rest) > 0 {
				category = rest[0]
			}
			if err = session.SetFilter(category); err == nil {
				printTable(stdout, client.BuildTableView(session))
			}
		case "add":
			err = doSubmit(session, scanner, stdout, nil)
		case "edit":
			err = doEdit(session, scanner, stdout, rest)
		case "delete":
			err = doDelete(session, stdout, rest)
		case "dashboard":
			var snapshot *models.DashboardSnapshot
			if snapshot, err = session.Dashboard(); err == nil {
				printDashboard(stdout, client.BuildDashboardView(snapshot))
			}
		default:
			fmt.Fprintf(stdout, "unknown command: %s\n", cmd)
		}
		if err != nil {
			fmt.Fprintf(stdout, "error: %v\n", err)
		}
	}
}

func doRegister(api *client.API, scanner *bufio.Scanner, stdin io.Reader, stdout io.Writer) error {
	username, err := prompt(scanner, stdout, "Username", "")
	if err != nil {
		return err
	}
	fmt.Fprint(stdout, "Password: ")
	password, err := readPassword(stdin, scanner)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout)

	resp, err := api.Register(username, password)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Registered %s (id %d). You can now log in.\n", resp.Username, resp.ID)
	return nil
}

func doLogin(session *client.Session, scanner *bufio.Scanner, stdin io.Reader, stdout io.Writer) error {
	username, err := prompt(scanner, stdout, "Username", "")
	if err != nil {
		return err
	}
	fmt.Fprint(stdout, "Password: ")
	password, err := readPassword(stdin, scanner)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout)

	if err := session.Login(username, password); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Logged in as %s.\n", username)
	printTable(stdout, client.BuildTableView(session))
	return nil
}

func doEdit(session *client.Session, scanner *bufio.Scanner, stdout io.Writer, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	expense, ok := session.StartEdit(id)
	if !ok {
		return fmt.Errorf("no expense with id %d in the current list", id)
	}
	if err := doSubmit(session, scanner, stdout, expense); err != nil {
		session.CancelEdit()
		return err
	}
	return nil
}

func doDelete(session *client.Session, stdout io.Writer, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	if err := session.Delete(id); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Deleted expense %d.\n", id)
	printTable(stdout, client.BuildTableView(session))
	return nil
}

// doSubmit prompts for the expense fields and submits them; when editing,
// empty input keeps the current value.
func doSubmit(session *client.Session, scanner *bufio.Scanner, stdout io.Writer, editing *models.Expense) error {
	defaults := models.ExpenseRequest{}
	if editing != nil {
		defaults = models.ExpenseRequest{
			Name:     editing.Name,
			Amount:   editing.Amount,
			Date:     editing.Date.Format(util.DateLayout),
			Category: editing.Category,
		}
	} else {
		defaults.Date = time.Now().Format(util.DateLayout)
	}

	name, err := prompt(scanner, stdout, "Name", defaults.Name)
	if err != nil {
		return err
	}
	amountStr, err := prompt(scanner, stdout, "Amount", strconv.FormatFloat(defaults.Amount, 'f', -1, 64))
	if err != nil {
		return err
	}
	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil {
		return fmt.Errorf("invalid amount: %s", amountStr)
	}
	date, err := prompt(scanner, stdout, "Date (YYYY-MM-DD)", defaults.Date)
	if err != nil {
		return err
	}
	category, err := prompt(scanner, stdout, "Category", defaults.Category)
	if err != nil {
		return err
	}

	if err := session.Submit(models.ExpenseRequest{Name: name, Amount: amount, Date: date, Category: category}); err != nil {
		return err
	}
	printTable(stdout, client.BuildTableView(session))
	return nil
}

func parseID(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("expense id required")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid expense id: %s", args[0])
	}
	return id, nil
}

func prompt(scanner *bufio.Scanner, stdout io.Writer, label, fallback string) (string, error) {
	if fallback != "" && fallback != "0" {
		fmt.Fprintf(stdout, "%s [%s]: ", label, fallback)
	} else {
		fmt.Fprintf(stdout, "%s: ", label)
	}
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	value := strings.TrimSpace(scanner.Text())
	if value == "" {
		return fallback, nil
	}
	return value, nil
}

func readPassword(stdin io.Reader, scanner *bufio.Scanner) (string, error) {
	// Check if stdin is a terminal
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		bytePassword, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return string(bytePassword), nil
	}

	// Fallback for non-terminal (e.g. tests, pipes); the shared scanner may
	// already have buffered the line
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func printTable(stdout io.Writer, view client.TableView) {
	if len(view.Rows) == 0 {
		fmt.Fprintf(stdout, "No expenses (filter: %s). Total: %s\n", view.Filter, view.Total)
		return
	}
	w := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tAMOUNT\tDATE\tCATEGORY\t")
	for _, row := range view.Rows {
		marker := ""
		if row.Editing {
			marker = " (editing)"
		}
		fmt.Fprintf(w, "%d\t%s%s\t%s\t%s\t%s\t\n", row.ID, row.Name, marker, row.Amount, row.Date, row.Category)
	}
	w.Flush()
	fmt.Fprintf(stdout, "Filter: %s  Total: %s\n", view.Filter, view.Total)
}

func printDashboard(stdout io.Writer, view client.DashboardView) {
	fmt.Fprintf(stdout, "Total: %s  This month: %s  Top category: %s\n", view.Total, view.Monthly, view.TopCategory)

	if len(view.Categories) > 0 {
		fmt.Fprintln(stdout, "By category:")
		for _, c := range view.Categories {
			fmt.Fprintf(stdout, "  %-16s %.2f\n", c.Category, c.Total)
		}
	}

	fmt.Fprintln(stdout, "Monthly trend (current year):")
	for i, total := range view.MonthlySeries {
		fmt.Fprintf(stdout, "  %s %.2f\n", time.Month(i+1).String()[:3], total)
	}

	if len(view.Recent) > 0 {
		fmt.Fprintln(stdout, "Recent expenses:")
		for _, row := range view.Recent {
			fmt.Fprintf(stdout, "  %s  %s  %s (%s)\n", row.Date, row.Name, row.Amount, row.Category)
		}
	}
}
