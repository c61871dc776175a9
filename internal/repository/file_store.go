package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Eursukkul/transit-booking/internal/models"
	"github.com/Eursukkul/transit-booking/pkg/binfile"
)

// Smallest possible encoded records: every string empty.
const (
	minServiceRecordSize = 4 + 5*4 + 4 + 4
	minBookingRecordSize = 4 + 4 + 4 + 4 + 4
)

// FilePersister keeps services and bookings in two flat binary files.
type FilePersister struct {
	servicesPath string
	bookingsPath string
}

func NewFilePersister(servicesPath, bookingsPath string) *FilePersister {
	return &FilePersister{servicesPath: servicesPath, bookingsPath: bookingsPath}
}

func (p *FilePersister) LoadServices(ctx context.Context) ([]models.Service, error) {
	r, err := p.open(p.servicesPath)
	if err != nil {
		return nil, err
	}

	n := r.Count(minServiceRecordSize)
	services := make([]models.Service, 0, n)
	for i := 0; i < n && r.Err() == nil; i++ {
		var s models.Service
		s.ID = r.Int32()
		s.Type = models.ServiceType(r.String())
		s.Name = r.String()
		s.Source = r.String()
		s.Destination = r.String()
		s.DepartTime = r.String()
		s.SeatsTotal = r.Int32()
		s.SeatsAvailable = r.Int32()
		services = append(services, s)
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("decode %s: %w", p.servicesPath, err)
	}
	return services, nil
}

func (p *FilePersister) SaveServices(ctx context.Context, services []models.Service) error {
	w := binfile.NewWriter()
	w.Int32(len(services))
	for _, s := range services {
		w.Int32(s.ID)
		w.String(string(s.Type))
		w.String(s.Name)
		w.String(s.Source)
		w.String(s.Destination)
		w.String(s.DepartTime)
		w.Int32(s.SeatsTotal)
		w.Int32(s.SeatsAvailable)
	}
	data, err := w.Bytes()
	if err != nil {
		return fmt.Errorf("encode services: %w", err)
	}
	return writeFileAtomic(p.servicesPath, data)
}

func (p *FilePersister) LoadBookings(ctx context.Context) ([]models.Booking, int, error) {
	r, err := p.open(p.bookingsPath)
	if err != nil {
		return nil, 0, err
	}

	n := r.Count(0)
	next := r.Int32()
	if r.Err() == nil && n > r.Remaining()/minBookingRecordSize {
		return nil, 0, fmt.Errorf("decode %s: %w: %d bookings declared", p.bookingsPath, binfile.ErrTruncated, n)
	}

	bookings := make([]models.Booking, 0, n)
	for i := 0; i < n && r.Err() == nil; i++ {
		var b models.Booking
		b.BookingID = r.Int32()
		b.ServiceID = r.Int32()
		b.PassengerName = r.String()
		b.SeatsBooked = r.Int32()
		b.Contact = r.String()
		bookings = append(bookings, b)
	}
	if err := r.Err(); err != nil {
		return nil, 0, fmt.Errorf("decode %s: %w", p.bookingsPath, err)
	}
	return bookings, next, nil
}

func (p *FilePersister) SaveBookings(ctx context.Context, bookings []models.Booking, nextBookingID int) error {
	w := binfile.NewWriter()
	w.Int32(len(bookings))
	w.Int32(nextBookingID)
	for _, b := range bookings {
		w.Int32(b.BookingID)
		w.Int32(b.ServiceID)
		w.String(b.PassengerName)
		w.Int32(b.SeatsBooked)
		w.String(b.Contact)
	}
	data, err := w.Bytes()
	if err != nil {
		return fmt.Errorf("encode bookings: %w", err)
	}
	return writeFileAtomic(p.bookingsPath, data)
}

func (p *FilePersister) open(path string) (*binfile.Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoData
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r, err := binfile.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return r, nil
}

// writeFileAtomic replaces path with data via a temp file in the same
// directory, so readers see either the old contents or the new ones.
func writeFileAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync %s: %w", tmp.Name(), err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
