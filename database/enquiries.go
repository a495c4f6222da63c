package database

import (
	"context"
	"time"

	"github.com/sahilchouksey/college-directory/model"
)

// ListEnquiries returns enquiries newest first. The id tiebreak keeps the order
// strict when two rows share a created_at.
func (s *GORMStore) ListEnquiries(ctx context.Context) ([]model.Enquiry, error) {
	return listAll[model.Enquiry](ctx, s.db, "enquiry", "created_at DESC, id DESC")
}

func (s *GORMStore) GetEnquiry(ctx context.Context, id uint) (*model.Enquiry, error) {
	return getByID[model.Enquiry](ctx, s.db, "enquiry", id)
}

// CreateEnquiry stores the lead; created_at is always assigned here
func (s *GORMStore) CreateEnquiry(ctx context.Context, enquiry *model.Enquiry) (*model.Enquiry, error) {
	enquiry.ID = 0
	enquiry.CreatedAt = time.Time{}
	return create(ctx, s.db, "enquiry", enquiry)
}

func (s *GORMStore) DeleteEnquiry(ctx context.Context, id uint) ([]model.Enquiry, error) {
	return deleteByID[model.Enquiry](ctx, s.db, "enquiry", id)
}
