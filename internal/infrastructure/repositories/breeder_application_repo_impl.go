package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"pawmart.backend/internal/domain/entities"
	domainerrors "pawmart.backend/internal/domain/errors"
	"pawmart.backend/internal/infrastructure/models"
)

// BreederApplicationRepository implements the application review queue
type BreederApplicationRepository struct {
	db *gorm.DB
}

// NewBreederApplicationRepository creates a new breeder application repository
func NewBreederApplicationRepository(db *gorm.DB) *BreederApplicationRepository {
	return &BreederApplicationRepository{db: db}
}

// Create persists a new application and its breed links
func (r *BreederApplicationRepository) Create(ctx context.Context, app *entities.BreederApplication) error {
	db := GetDB(ctx, r.db).WithContext(ctx)

	m := &models.BreederApplication{
		ID:           app.ID,
		UserID:       app.UserID,
		BusinessName: app.BusinessName,
		Email:        app.Email,
		Phone:        app.Phone,
		CityID:       app.CityID,
		Address:      app.Address.String,
		Experience:   app.Experience.String,
		Status:       string(app.Status),
		Superseded:   false,
		SubmittedAt:  app.SubmittedAt,
		CreatedAt:    app.CreatedAt,
		UpdatedAt:    app.UpdatedAt,
	}

	if err := db.Create(m).Error; err != nil {
		return err
	}

	for _, breedID := range app.BreedIDs {
		link := &models.ApplicationBreed{ApplicationID: app.ID, BreedID: breedID}
		if err := db.Create(link).Error; err != nil {
			return err
		}
	}
	return nil
}

// GetByID gets an application by ID
func (r *BreederApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.BreederApplication, error) {
	var m models.BreederApplication
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.withBreeds(ctx, applicationToEntity(&m))
}

// GetLatestByUserID returns the most recent non-superseded application
func (r *BreederApplicationRepository) GetLatestByUserID(ctx context.Context, userID uuid.UUID) (*entities.BreederApplication, error) {
	var m models.BreederApplication
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ? AND superseded = ?", userID, false).
		Order("submitted_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.withBreeds(ctx, applicationToEntity(&m))
}

// ListPending returns pending applications oldest first (review queue order)
func (r *BreederApplicationRepository) ListPending(ctx context.Context) ([]*entities.BreederApplication, error) {
	var appModels []models.BreederApplication
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("status = ? AND superseded = ?", string(entities.ApplicationStatusPending), false).
		Order("submitted_at ASC").
		Find(&appModels).Error
	if err != nil {
		return nil, err
	}

	apps := make([]*entities.BreederApplication, 0, len(appModels))
	for i := range appModels {
		app, err := r.withBreeds(ctx, applicationToEntity(&appModels[i]))
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, nil
}

// UpdateStatus transitions an application and records the reviewer
func (r *BreederApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ApplicationStatus, reviewerID uuid.UUID, notes string) error {
	updates := map[string]interface{}{
		"status":      string(status),
		"reviewed_by": reviewerID.String(),
		"reviewed_at": time.Now(),
		"updated_at":  time.Now(),
	}
	if notes != "" {
		updates["review_notes"] = notes
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.BreederApplication{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// MarkSuperseded retires an application so a resubmission can replace it
func (r *BreederApplicationRepository) MarkSuperseded(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.BreederApplication{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"superseded": true, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *BreederApplicationRepository) withBreeds(ctx context.Context, app *entities.BreederApplication) (*entities.BreederApplication, error) {
	var links []models.ApplicationBreed
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("application_id = ?", app.ID).Find(&links).Error; err != nil {
		return nil, err
	}
	for _, l := range links {
		app.BreedIDs = append(app.BreedIDs, l.BreedID)
	}
	return app, nil
}

func applicationToEntity(m *models.BreederApplication) *entities.BreederApplication {
	app := &entities.BreederApplication{
		ID:           m.ID,
		UserID:       m.UserID,
		BusinessName: m.BusinessName,
		Email:        m.Email,
		Phone:        m.Phone,
		CityID:       m.CityID,
		Address:      null.NewString(m.Address, m.Address != ""),
		Experience:   null.NewString(m.Experience, m.Experience != ""),
		Status:       entities.ApplicationStatus(m.Status),
		ReviewNotes:  null.NewString(m.ReviewNotes, m.ReviewNotes != ""),
		ReviewedBy:   null.NewString(m.ReviewedBy, m.ReviewedBy != ""),
		Superseded:   m.Superseded,
		SubmittedAt:  m.SubmittedAt,
		ReviewedAt:   null.TimeFromPtr(m.ReviewedAt),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	return app
}
