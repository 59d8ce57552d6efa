package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"

	"github.com/AJ2025dev/audiencestreet-campaign-hub-sub000/internal/models"
)

func TestRecordIncrementsCountersOnRepeatViewer(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	campaignID := uuid.New()
	now := time.Now()

	// A second event from the same viewer must hit the conflict branch and
	// add to the stored counters instead of creating a new row.
	mock.ExpectQuery(`ON CONFLICT \(campaign_id, user_identifier\) DO UPDATE SET\s+impression_count = impression_tracking\.impression_count \+ EXCLUDED\.impression_count`).
		WithArgs(campaignID, "viewer-1", 2, int64(350)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_impression", "last_impression", "created_at"}).
			AddRow(uuid.New(), now.Add(-time.Hour), now, now.Add(-time.Hour)))

	rec := &models.ImpressionRecord{
		CampaignID:      campaignID,
		UserIdentifier:  "viewer-1",
		ImpressionCount: 2,
		SpendCents:      350,
	}
	if err := NewImpressionRepository(db).Record(rec); err != nil {
		t.Fatalf("Record() error: %v", err)
	}
	if !rec.LastImpression.After(rec.FirstImpression) {
		t.Error("last impression should advance past the first")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
