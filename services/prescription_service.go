package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/VibhourSharma/prescript-ease/models"
	"github.com/VibhourSharma/prescript-ease/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrVisionAnalysis marks failures of the vision call so the HTTP layer can
// tell upstream trouble apart from local persistence errors.
var ErrVisionAnalysis = errors.New("vision analysis failed")

// ImageStore archives the raw upload; S3 in production, a fake in tests.
type ImageStore interface {
	Upload(data []byte, contentType, prescriptionID string) (string, error)
}

// S3ImageStore adapts the package-level S3 helper.
type S3ImageStore struct{}

func (S3ImageStore) Upload(data []byte, contentType, prescriptionID string) (string, error) {
	return utils.UploadPrescriptionImage(data, contentType, prescriptionID)
}

type PrescriptionService struct {
	vision *VisionService
	store  ImageStore
	db     *gorm.DB
	logger *zap.Logger
}

func NewPrescriptionService(vision *VisionService, store ImageStore, db *gorm.DB, logger *zap.Logger) *PrescriptionService {
	return &PrescriptionService{vision: vision, store: store, db: db, logger: logger}
}

// Analyze runs the full upload flow: archive the image, call the vision
// model once, default missing fields and persist the record. The caller has
// already validated file type and size.
func (s *PrescriptionService) Analyze(image []byte, contentType string) (*models.Prescription, *models.PrescriptionData, error) {
	id := uuid.New().String()

	var imageURL string
	if s.store != nil {
		url, err := s.store.Upload(image, contentType, id)
		if err != nil {
			// The archive copy is best-effort; analysis still proceeds.
			s.logger.Warn("Failed to archive prescription image", zap.Error(err))
		} else {
			imageURL = url
		}
	}

	data, err := s.vision.AnalyzeImage(image, contentType)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrVisionAnalysis, err)
	}

	serialized, err := json.Marshal(data)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to serialize analysis: %w", err)
	}

	record := &models.Prescription{
		ID:        id,
		ImageURL:  imageURL,
		Diagnosis: data.Diagnosis,
		Accuracy:  data.Accuracy,
		Data:      string(serialized),
	}
	if err := s.db.Create(record).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to store analysis: %w", err)
	}

	return record, data, nil
}

// Get loads a stored analysis; gorm.ErrRecordNotFound maps to 404 upstream.
func (s *PrescriptionService) Get(id string) (*models.Prescription, *models.PrescriptionData, error) {
	var record models.Prescription
	if err := s.db.First(&record, "id = ?", id).Error; err != nil {
		return nil, nil, err
	}

	var data models.PrescriptionData
	if err := json.Unmarshal([]byte(record.Data), &data); err != nil {
		return nil, nil, fmt.Errorf("failed to decode stored analysis: %w", err)
	}
	return &record, &data, nil
}

// Report renders the downloadable plain-text summary.
func (s *PrescriptionService) Report(id string) (string, error) {
	_, data, err := s.Get(id)
	if err != nil {
		return "", err
	}
	return utils.BuildPrescriptionReport(*data), nil
}

// Delete is the explicit clear/reset of a stored analysis.
func (s *PrescriptionService) Delete(id string) error {
	result := s.db.Delete(&models.Prescription{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
