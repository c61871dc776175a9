package handler

import (
	"bufio"
	"bytes"
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/Eursukkul/transit-booking/internal/dto"
	"github.com/Eursukkul/transit-booking/internal/models"
	"github.com/Eursukkul/transit-booking/internal/service"
	"github.com/charmbracelet/lipgloss"
)

const (
	mainMenu = "\nMain Menu:\n" +
		"1. List Services\n" +
		"2. Book Ticket\n" +
		"3. Cancel Booking\n" +
		"4. View My Bookings\n" +
		"5. Admin Menu (password)\n" +
		"6. Exit\n"

	adminMenu = "\n--- Admin Menu ---\n" +
		"1. Add Service\n" +
		"2. List Services\n" +
		"3. View Bookings\n" +
		"4. Back\n"
)

var errInputClosed = errors.New("input closed")

// Flusher writes the in-memory collections out on exit.
type Flusher interface {
	Flush(ctx context.Context) error
}

// Console is the interactive menu front end. It reads one answer per line.
type Console struct {
	bookings    service.BookingService
	catalog     service.CatalogService
	flusher     Flusher
	adminSecret string

	in     *bufio.Reader
	out    io.Writer
	header lipgloss.Style
}

func NewConsole(bookings service.BookingService, catalog service.CatalogService, flusher Flusher, adminSecret string, in io.Reader, out io.Writer) *Console {
	return &Console{
		bookings:    bookings,
		catalog:     catalog,
		flusher:     flusher,
		adminSecret: adminSecret,
		in:          bufio.NewReader(in),
		out:         out,
		header:      lipgloss.NewRenderer(out).NewStyle().Bold(true).Underline(true),
	}
}

// Run drives the main menu until Exit is chosen or input ends. Both
// paths flush before returning.
func (c *Console) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, "=== Simple Bus/Train Booking System ===")
	for {
		if err := ctx.Err(); err != nil {
			return c.finish(ctx, err)
		}

		fmt.Fprint(c.out, mainMenu)
		choice, err := c.prompt("Choose option: ")
		if err != nil {
			return c.finish(ctx, err)
		}

		switch choice {
		case "1":
			err = c.listServices(ctx)
		case "2":
			err = c.bookTicket(ctx)
		case "3":
			err = c.cancelBooking(ctx)
		case "4":
			err = c.listBookings(ctx)
		case "5":
			err = c.adminGate(ctx)
		case "6":
			fmt.Fprintln(c.out, "Saving data and exiting...")
			return c.flush(ctx)
		default:
			fmt.Fprintln(c.out, "Invalid option. Try again.")
		}
		if err != nil {
			return c.finish(ctx, err)
		}
	}
}

func (c *Console) finish(ctx context.Context, cause error) error {
	if errors.Is(cause, errInputClosed) {
		fmt.Fprintln(c.out, "\nSaving data and exiting...")
		return c.flush(ctx)
	}
	if err := c.flush(context.WithoutCancel(ctx)); err != nil {
		return errors.Join(cause, err)
	}
	return cause
}

func (c *Console) flush(ctx context.Context) error {
	if c.flusher == nil {
		return nil
	}
	if err := c.flusher.Flush(ctx); err != nil {
		fmt.Fprintln(c.out, "Warning: data could not be saved.")
		return err
	}
	return nil
}

// prompt reads one answer of any length. A final line without a
// newline still counts; only an empty read at end of input closes.
func (c *Console) prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		if line == "" {
			return "", errInputClosed
		}
	}
	return strings.TrimSpace(line), nil
}

// promptInt reports ok=false when the answer is not a whole number.
func (c *Console) promptInt(label string) (int, bool, error) {
	answer, err := c.prompt(label)
	if err != nil {
		return 0, false, err
	}
	n, convErr := strconv.Atoi(answer)
	return n, convErr == nil, nil
}

func (c *Console) listServices(ctx context.Context) error {
	services, err := c.catalog.ListServices(ctx)
	if err != nil {
		fmt.Fprintln(c.out, userMessage(err))
		return nil
	}

	fmt.Fprintln(c.out, "\nAvailable Services:")
	rows := make([][]string, 0, len(services))
	for _, s := range services {
		rows = append(rows, []string{
			strconv.Itoa(s.ID), string(s.Type), s.Name, s.Source, s.Destination, s.DepartTime,
			fmt.Sprintf("%d/%d", s.SeatsAvailable, s.SeatsTotal),
		})
	}
	c.renderTable([]string{"ID", "Type", "Name", "Source", "Destination", "Depart", "Avail"}, rows)
	return nil
}

func (c *Console) listBookings(ctx context.Context) error {
	bookings, err := c.bookings.ListBookings(ctx)
	if err != nil {
		fmt.Fprintln(c.out, userMessage(err))
		return nil
	}
	if len(bookings) == 0 {
		fmt.Fprintln(c.out, "\nNo bookings yet.")
		return nil
	}

	services, err := c.catalog.ListServices(ctx)
	if err != nil {
		fmt.Fprintln(c.out, userMessage(err))
		return nil
	}
	byID := make(map[int]*models.Service, len(services))
	for i := range services {
		byID[services[i].ID] = &services[i]
	}

	fmt.Fprintln(c.out, "\nMy Bookings:")
	rows := make([][]string, 0, len(bookings))
	for _, b := range bookings {
		v := dto.ToBookingView(b, byID[b.ServiceID])
		rows = append(rows, []string{
			strconv.Itoa(v.BookingID), strconv.Itoa(v.ServiceID), v.ServiceName,
			v.PassengerName, strconv.Itoa(v.SeatsBooked), v.Contact,
		})
	}
	c.renderTable([]string{"BID", "SID", "Service Name", "Passenger", "Seats", "Contact"}, rows)
	return nil
}

func (c *Console) bookTicket(ctx context.Context) error {
	if err := c.listServices(ctx); err != nil {
		return err
	}
	serviceID, ok, err := c.promptInt("\nEnter Service ID to book: ")
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(c.out, userMessage(models.ErrServiceNotFound))
		return nil
	}

	svc, err := c.catalog.GetService(ctx, serviceID)
	if err != nil {
		fmt.Fprintln(c.out, userMessage(err))
		return nil
	}
	fmt.Fprintf(c.out, "Available seats: %d\n", svc.SeatsAvailable)
	if svc.SeatsAvailable <= 0 {
		fmt.Fprintln(c.out, userMessage(models.ErrNoSeatsAvailable))
		return nil
	}

	name, err := c.prompt("Passenger name: ")
	if err != nil {
		return err
	}
	seats, ok, err := c.promptInt("Number of seats: ")
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(c.out, userMessage(models.ErrInvalidQuantity))
		return nil
	}
	contact, err := c.prompt("Contact (phone/email): ")
	if err != nil {
		return err
	}

	booking, err := c.bookings.CreateBooking(ctx, serviceID, name, seats, contact)
	if err != nil {
		fmt.Fprintln(c.out, userMessage(err))
		return nil
	}
	fmt.Fprintf(c.out, "\nBooking successful! Your Booking ID: %d\n", booking.BookingID)
	return nil
}

func (c *Console) cancelBooking(ctx context.Context) error {
	bookings, err := c.bookings.ListBookings(ctx)
	if err != nil {
		fmt.Fprintln(c.out, userMessage(err))
		return nil
	}
	if len(bookings) == 0 {
		fmt.Fprintln(c.out, "No bookings to cancel.")
		return nil
	}
	if err := c.listBookings(ctx); err != nil {
		return err
	}

	bookingID, ok, err := c.promptInt("\nEnter Booking ID to cancel: ")
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(c.out, userMessage(models.ErrBookingNotFound))
		return nil
	}

	if _, err := c.bookings.CancelBooking(ctx, bookingID); err != nil {
		fmt.Fprintln(c.out, userMessage(err))
		return nil
	}
	fmt.Fprintln(c.out, "Booking cancelled and seats released.")
	return nil
}

func (c *Console) adminGate(ctx context.Context) error {
	password, err := c.prompt("Enter admin password: ")
	if err != nil {
		return err
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(c.adminSecret)) != 1 {
		fmt.Fprintln(c.out, "Wrong password.")
		return nil
	}
	return c.adminLoop(ctx)
}

func (c *Console) adminLoop(ctx context.Context) error {
	for {
		fmt.Fprint(c.out, adminMenu)
		choice, err := c.prompt("Choose: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = c.addService(ctx)
		case "2":
			err = c.listServices(ctx)
		case "3":
			err = c.listBookings(ctx)
		case "4":
			return nil
		default:
			fmt.Fprintln(c.out, "Invalid option.")
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) addService(ctx context.Context) error {
	var req dto.AddServiceRequest
	fields := []struct {
		label string
		dst   *string
	}{
		{"Type (Bus/Train): ", &req.Type},
		{"Name: ", &req.Name},
		{"Source: ", &req.Source},
		{"Destination: ", &req.Destination},
		{"Departure time (e.g., 07:30): ", &req.DepartTime},
	}
	for _, f := range fields {
		answer, err := c.prompt(f.label)
		if err != nil {
			return err
		}
		*f.dst = answer
	}

	total, ok, err := c.promptInt("Total seats: ")
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(c.out, "Invalid seat count.")
		return nil
	}
	req.SeatsTotal = total

	svc, err := c.catalog.AddService(ctx, req)
	if err != nil {
		fmt.Fprintln(c.out, userMessage(err))
		return nil
	}
	fmt.Fprintf(c.out, "Service added with ID: %d\n", svc.ID)
	return nil
}

// renderTable aligns the columns first and styles the header line
// afterwards so escape codes do not skew the widths.
func (c *Console) renderTable(header []string, rows [][]string) {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 2, 0, 3, ' ', 0)
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()

	head, body, _ := strings.Cut(buf.String(), "\n")
	fmt.Fprintln(c.out, c.header.Render(head))
	fmt.Fprint(c.out, body)
}
