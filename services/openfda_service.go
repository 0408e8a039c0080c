package services

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/VibhourSharma/prescript-ease/models"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// ErrMedicineNotFound reports that no label search variant produced a hit.
var ErrMedicineNotFound = errors.New("medicine not found")

type OpenFDAService struct {
	httpClient *resty.Client
	logger     *zap.Logger
}

// labelResponse is the subset of the openFDA drug label document we reshape
// for display.
type labelResponse struct {
	Results []struct {
		DoNotUse                 []string `json:"do_not_use"`
		Warnings                 []string `json:"warnings"`
		DosageAndAdministration  []string `json:"dosage_and_administration"`
		IndicationsAndUsage      []string `json:"indications_and_usage"`
		AdverseReactions         []string `json:"adverse_reactions"`
		StopUse                  []string `json:"stop_use"`
		PregnancyOrBreastFeeding []string `json:"pregnancy_or_breast_feeding"`
		OpenFDA                  struct {
			BrandName []string `json:"brand_name"`
		} `json:"openfda"`
	} `json:"results"`
}

func NewOpenFDAService(logger *zap.Logger) *OpenFDAService {
	baseURL := os.Getenv("OPENFDA_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.fda.gov"
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(15 * time.Second).
		SetHeader("Accept", "application/json")

	return &OpenFDAService{httpClient: client, logger: logger}
}

// Search queries the drug label API by generic name, substance name and
// brand name concurrently; the first non-empty response wins. When every
// variant misses, ErrMedicineNotFound is returned.
func (s *OpenFDAService) Search(name string) (*models.MedicineInfo, error) {
	fields := []string{
		"openfda.generic_name",
		"openfda.substance_name",
		"openfda.brand_name",
	}

	results := make(chan *models.MedicineInfo, len(fields))
	for _, field := range fields {
		go func(field string) {
			info, err := s.searchByField(field, name)
			if err != nil {
				s.logger.Debug("Label search variant missed",
					zap.String("field", field),
					zap.String("query", name),
					zap.Error(err),
				)
				results <- nil
				return
			}
			results <- info
		}(field)
	}

	for range fields {
		if info := <-results; info != nil {
			return info, nil
		}
	}
	return nil, ErrMedicineNotFound
}

func (s *OpenFDAService) searchByField(field, name string) (*models.MedicineInfo, error) {
	var response labelResponse
	resp, err := s.httpClient.R().
		SetQueryParam("search", fmt.Sprintf(`%s:"%s"`, field, name)).
		SetQueryParam("limit", "1").
		SetResult(&response).
		Get("/drug/label.json")
	if err != nil {
		return nil, fmt.Errorf("failed to call openFDA: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("openFDA error %d", resp.StatusCode())
	}
	if len(response.Results) == 0 {
		return nil, ErrMedicineNotFound
	}

	r := response.Results[0]
	return &models.MedicineInfo{
		BrandName:     firstOr(r.OpenFDA.BrandName, name),
		DoNotUse:      firstOr(append(r.DoNotUse, r.Warnings...), models.FieldPlaceholder),
		Dosage:        firstOr(r.DosageAndAdministration, models.FieldPlaceholder),
		Usage:         firstOr(r.IndicationsAndUsage, models.FieldPlaceholder),
		SideEffects:   firstOr(append(r.AdverseReactions, r.StopUse...), models.FieldPlaceholder),
		PregnancyInfo: firstOr(r.PregnancyOrBreastFeeding, models.FieldPlaceholder),
	}, nil
}

func firstOr(values []string, fallback string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return fallback
}
