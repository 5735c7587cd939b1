package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	goa "goa.design/goa/v3/pkg"

	"fortiercars/internal/config"
	"fortiercars/internal/database"
	"fortiercars/internal/domain"
)

var testNow = time.Date(2026, time.October, 18, 15, 4, 5, 0, time.UTC)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func openStore(t *testing.T) *database.Store {
	t.Helper()
	ctx := context.Background()
	cfg := &config.DatabaseConfig{URL: "sqlite:///" + filepath.Join(t.TempDir(), "services.db")}

	db, err := database.Open(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	store := database.NewStore(db)
	require.NoError(t, store.Migrate(ctx))
	return store
}

func ptr[T any](v T) *T { return &v }

func requireServiceError(t *testing.T, err error) *goa.ServiceError {
	t.Helper()
	var serr *goa.ServiceError
	require.True(t, errors.As(err, &serr), "expected goa service error, got %v", err)
	return serr
}

func contactForm(name string) *domain.ContactSubmissionCreate {
	return &domain.ContactSubmissionCreate{FullName: name, Email: "buyer@example.com", Message: "Call me"}
}

func TestContactSubmitAndList(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	for i := 0; i < 3; i++ {
		svc := NewContactService(store, fixedClock(testNow.Add(time.Duration(i)*time.Minute)))
		rec, err := svc.Submit(ctx, contactForm(fmt.Sprintf("buyer %d", i)))
		require.NoError(t, err)
		assert.Equal(t, domain.ContactStatusNew, rec.Status)
	}

	svc := NewContactService(store, fixedClock(testNow))
	recs, err := svc.List(ctx, &domain.ContactListParams{Limit: 2})
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "buyer 2", recs[0].FullName)
	assert.Equal(t, "buyer 1", recs[1].FullName)

	closed := domain.ContactStatusClosed
	recs, err = svc.List(ctx, &domain.ContactListParams{Status: &closed})
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestContactSubmitRejectsInvalidInput(t *testing.T) {
	store := openStore(t)
	svc := NewContactService(store, fixedClock(testNow))

	in := contactForm("")
	in.Email = "nope"
	_, err := svc.Submit(context.Background(), in)
	serr := requireServiceError(t, err)
	assert.False(t, serr.Fault)

	n, err := store.Contacts.Count(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestContactUpdate(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)
	svc := NewContactService(store, fixedClock(testNow))

	rec, err := svc.Submit(ctx, contactForm("Ada"))
	require.NoError(t, err)

	updated, err := svc.Update(ctx, rec.ID, &domain.ContactSubmissionUpdate{Notes: ptr("left voicemail")})
	require.NoError(t, err)
	assert.Equal(t, domain.ContactStatusNew, updated.Status)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, "left voicemail", *updated.Notes)

	updated, err = svc.Update(ctx, rec.ID, &domain.ContactSubmissionUpdate{Status: ptr(domain.ContactStatusContacted)})
	require.NoError(t, err)
	assert.Equal(t, domain.ContactStatusContacted, updated.Status)
	require.NotNil(t, updated.Notes)

	unchanged, err := svc.Update(ctx, rec.ID, &domain.ContactSubmissionUpdate{})
	require.NoError(t, err)
	assert.Equal(t, updated.Status, unchanged.Status)

	_, err = svc.Update(ctx, "missing", &domain.ContactSubmissionUpdate{Status: ptr(domain.ContactStatusClosed)})
	serr := requireServiceError(t, err)
	assert.Equal(t, ErrNameNotFound, serr.Name)
	assert.Equal(t, "Contact not found", serr.Message)

	_, err = svc.Update(ctx, rec.ID, &domain.ContactSubmissionUpdate{Status: ptr(domain.ContactStatus("lost"))})
	serr = requireServiceError(t, err)
	assert.NotEqual(t, ErrNameNotFound, serr.Name)
	assert.False(t, serr.Fault)
}

func TestInquiryFlow(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)
	svc := NewInquiryService(store, fixedClock(testNow))

	in := &domain.CarInquiryCreate{
		CarID:         ptr("does-not-exist"),
		CarType:       domain.VehicleCategoryUsed,
		CustomerName:  "Lin",
		CustomerEmail: "lin@example.com",
		InquiryType:   domain.InquiryTypePurchase,
	}
	rec, err := svc.Submit(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, domain.InquiryStatusNew, rec.Status)

	in.CarID = ptr("new-1")
	_, err = svc.Submit(ctx, in)
	require.NoError(t, err)

	carID := "new-1"
	recs, err := svc.List(ctx, &domain.InquiryListParams{CarID: &carID})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "new-1", recs[0].CarID)

	updated, err := svc.Update(ctx, rec.ID, &domain.CarInquiryUpdate{Status: ptr(domain.InquiryStatusScheduled)})
	require.NoError(t, err)
	assert.Equal(t, domain.InquiryStatusScheduled, updated.Status)

	scheduled := domain.InquiryStatusScheduled
	recs, err = svc.List(ctx, &domain.InquiryListParams{Status: &scheduled})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, rec.ID, recs[0].ID)

	_, err = svc.Update(ctx, "missing", &domain.CarInquiryUpdate{Status: ptr(domain.InquiryStatusClosed)})
	assert.Equal(t, "Inquiry not found", requireServiceError(t, err).Message)
}

func TestTestimonialModeration(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)
	svc := NewTestimonialService(store, fixedClock(testNow))

	rec, err := svc.Submit(ctx, &domain.TestimonialCreate{
		Name: "Sam", Email: "sam@example.com", Rating: 5, Quote: "Smooth purchase, no pressure.",
	})
	require.NoError(t, err)
	assert.False(t, rec.IsApproved)
	assert.Nil(t, rec.ApprovedAt)

	public, err := svc.List(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, public)

	all, err := svc.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	approved, err := svc.Approve(ctx, rec.ID, &domain.TestimonialApprove{IsApproved: ptr(true)})
	require.NoError(t, err)
	assert.True(t, approved.IsApproved)
	require.NotNil(t, approved.ApprovedAt)
	assert.True(t, testNow.Equal(*approved.ApprovedAt))

	later := NewTestimonialService(store, fixedClock(testNow.Add(time.Hour)))
	withdrawn, err := later.Approve(ctx, rec.ID, &domain.TestimonialApprove{IsApproved: ptr(false)})
	require.NoError(t, err)
	assert.False(t, withdrawn.IsApproved)
	require.NotNil(t, withdrawn.ApprovedAt)
	assert.True(t, testNow.Equal(*withdrawn.ApprovedAt))

	_, err = svc.Approve(ctx, rec.ID, &domain.TestimonialApprove{})
	assert.False(t, requireServiceError(t, err).Fault)

	_, err = svc.Approve(ctx, "missing", &domain.TestimonialApprove{IsApproved: ptr(true)})
	assert.Equal(t, "Testimonial not found", requireServiceError(t, err).Message)
}

func TestTestimonialListIsCapped(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	for i := 0; i < MaxListLimit+5; i++ {
		tm := domain.NewTestimonial(&domain.TestimonialCreate{
			Name: "Sam", Email: "sam@example.com", Rating: 4, Quote: "Good experience overall.",
		}, testNow.Add(time.Duration(i)*time.Second))
		require.NoError(t, store.Testimonials.Insert(ctx, tm))
	}

	recs, err := NewTestimonialService(store, fixedClock(testNow)).List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, recs, MaxListLimit)
}

func vehicleBody(brand string, category domain.VehicleCategory) *domain.VehicleCreate {
	return &domain.VehicleCreate{
		Year: 2024, Brand: brand, Model: "X", Type: ptr("SUV"), Category: category,
		ImageURL: ptr("https://img.example/x.jpg"), Features: ptr("Roomy"), Description: ptr("A car"),
		Price: ptr("$1"),
	}
}

func TestVehicleCatalog(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)
	svc := NewVehicleService(store, fixedClock(testNow))

	a, err := svc.Create(ctx, vehicleBody("Audi", domain.VehicleCategoryNew))
	require.NoError(t, err)
	assert.True(t, a.IsAvailable)

	b, err := svc.Create(ctx, vehicleBody("BMW", domain.VehicleCategoryUsed))
	require.NoError(t, err)

	later := NewVehicleService(store, fixedClock(testNow.Add(time.Hour)))
	sold, err := later.Update(ctx, b.ID, &domain.VehicleUpdate{IsAvailable: ptr(false), Price: ptr("$2")})
	require.NoError(t, err)
	assert.False(t, sold.IsAvailable)
	assert.Equal(t, "$2", sold.Price)
	assert.Equal(t, "BMW", sold.Brand)
	assert.True(t, testNow.Add(time.Hour).Equal(sold.UpdatedAt))
	assert.True(t, testNow.Equal(sold.CreatedAt))

	available, err := svc.List(ctx, &domain.VehicleListParams{AvailableOnly: true})
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, a.ID, available[0].ID)

	everything, err := svc.List(ctx, &domain.VehicleListParams{})
	require.NoError(t, err)
	assert.Len(t, everything, 2)

	used := domain.VehicleCategoryUsed
	usedOnly, err := svc.List(ctx, &domain.VehicleListParams{Category: &used})
	require.NoError(t, err)
	require.Len(t, usedOnly, 1)
	assert.Equal(t, b.ID, usedOnly[0].ID)

	featured, err := svc.List(ctx, &domain.VehicleListParams{FeaturedOnly: true})
	require.NoError(t, err)
	assert.Empty(t, featured)

	got, err := svc.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Audi", got.Brand)

	_, err = svc.Get(ctx, "missing")
	serr := requireServiceError(t, err)
	assert.Equal(t, ErrNameNotFound, serr.Name)
	assert.Equal(t, "Vehicle not found", serr.Message)

	unchanged, err := later.Update(ctx, a.ID, &domain.VehicleUpdate{})
	require.NoError(t, err)
	assert.True(t, testNow.Equal(unchanged.UpdatedAt))
}

func TestVehicleCreateAcceptsEmptyText(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)
	svc := NewVehicleService(store, fixedClock(testNow))

	in := vehicleBody("Audi", domain.VehicleCategoryNew)
	in.Type, in.ImageURL, in.Features, in.Description, in.Price = ptr(""), ptr(""), ptr(""), ptr(""), ptr("")
	rec, err := svc.Create(ctx, in)
	require.NoError(t, err)

	stored, err := svc.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "", stored.Features)
	assert.Equal(t, "", stored.Type)

	missing := vehicleBody("Audi", domain.VehicleCategoryNew)
	missing.Features = nil
	_, err = svc.Create(ctx, missing)
	serr := requireServiceError(t, err)
	assert.False(t, serr.Fault)
	assert.Contains(t, serr.Message, "features")
}

func TestDashboardStats(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)
	midnight := domain.StartOfDay(testNow)

	yesterday := NewContactService(store, fixedClock(midnight.Add(-time.Second)))
	_, err := yesterday.Submit(ctx, contactForm("old"))
	require.NoError(t, err)
	today := NewContactService(store, fixedClock(midnight))
	_, err = today.Submit(ctx, contactForm("new"))
	require.NoError(t, err)

	inquiries := NewInquiryService(store, fixedClock(testNow))
	_, err = inquiries.Submit(ctx, &domain.CarInquiryCreate{
		CarID: ptr("new-1"), CarType: domain.VehicleCategoryNew, CustomerName: "Lin",
		CustomerEmail: "lin@example.com", InquiryType: domain.InquiryTypeDetails,
	})
	require.NoError(t, err)

	require.NoError(t, store.Seed(ctx))
	testimonials := NewTestimonialService(store, fixedClock(testNow))
	_, err = testimonials.Submit(ctx, &domain.TestimonialCreate{
		Name: "Sam", Email: "sam@example.com", Rating: 3, Quote: "Decent, took a while.",
	})
	require.NoError(t, err)

	vehicles := NewVehicleService(store, fixedClock(testNow))
	_, err = vehicles.Update(ctx, "used-4", &domain.VehicleUpdate{IsAvailable: ptr(false)})
	require.NoError(t, err)

	stats, err := NewDashboardService(store, fixedClock(testNow)).Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, &domain.DashboardStats{
		TotalContacts:       2,
		TotalInquiries:      1,
		TotalTestimonials:   5,
		TotalVehicles:       7,
		PendingTestimonials: 1,
		NewContactsToday:    1,
		NewInquiriesToday:   1,
	}, stats)
}

func TestStorageFailuresAreFaults(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)
	require.NoError(t, database.Close(store.DB()))

	tests := []struct {
		name    string
		call    func() error
		message string
	}{
		{"contact submit", func() error {
			_, err := NewContactService(store, fixedClock(testNow)).Submit(ctx, contactForm("Ada"))
			return err
		}, "Failed to submit contact form"},
		{"contact list", func() error {
			_, err := NewContactService(store, fixedClock(testNow)).List(ctx, &domain.ContactListParams{})
			return err
		}, "Failed to retrieve contacts"},
		{"contact update", func() error {
			_, err := NewContactService(store, fixedClock(testNow)).Update(ctx, "x", &domain.ContactSubmissionUpdate{Notes: ptr("n")})
			return err
		}, "Failed to update contact"},
		{"inquiry list", func() error {
			_, err := NewInquiryService(store, fixedClock(testNow)).List(ctx, &domain.InquiryListParams{})
			return err
		}, "Failed to retrieve inquiries"},
		{"testimonial list", func() error {
			_, err := NewTestimonialService(store, fixedClock(testNow)).List(ctx, true)
			return err
		}, "Failed to retrieve testimonials"},
		{"vehicle get", func() error {
			_, err := NewVehicleService(store, fixedClock(testNow)).Get(ctx, "new-1")
			return err
		}, "Failed to retrieve vehicle"},
		{"vehicle create", func() error {
			_, err := NewVehicleService(store, fixedClock(testNow)).Create(ctx, vehicleBody("Audi", domain.VehicleCategoryNew))
			return err
		}, "Failed to create vehicle"},
		{"dashboard", func() error {
			_, err := NewDashboardService(store, fixedClock(testNow)).Stats(ctx)
			return err
		}, "Failed to retrieve dashboard stats"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serr := requireServiceError(t, tt.call())
			assert.True(t, serr.Fault)
			assert.Equal(t, ErrNameInternal, serr.Name)
			assert.Equal(t, tt.message, serr.Message)
		})
	}
}

func TestHealthCheck(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)
	svc := NewHealthService(store, "Ben Fortier Car Sales API")

	status, err := svc.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, "operational", status.Status)

	res, err := svc.Check(ctx)
	require.NoError(t, err)
	assert.Equal(t, "healthy", res.Status)
	assert.Equal(t, "connected", res.Database)

	require.NoError(t, database.Close(store.DB()))
	res, err = svc.Check(ctx)
	require.NoError(t, err)
	assert.Equal(t, "degraded", res.Status)
	assert.Equal(t, "unavailable", res.Database)
}

func TestListLimit(t *testing.T) {
	assert.Equal(t, DefaultListLimit, listLimit(0, DefaultListLimit))
	assert.Equal(t, 7, listLimit(7, DefaultListLimit))
	assert.Equal(t, MaxListLimit, listLimit(1000, DefaultListLimit))
}
