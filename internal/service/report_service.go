package service

import (
	"fmt"

	"growlog/internal/models"
	"growlog/internal/report"
	"growlog/internal/repository"
	"growlog/internal/security"
	"growlog/internal/validation"
)

// ReportService builds growth reports and issues share links for them
type ReportService struct {
	childRepo  *repository.ChildRepository
	builder    *report.Builder
	signer     *security.ShareTokenSigner
	appBaseURL string
}

// NewReportService creates a new report service
func NewReportService(childRepo *repository.ChildRepository, builder *report.Builder, signer *security.ShareTokenSigner, appBaseURL string) *ReportService {
	return &ReportService{
		childRepo:  childRepo,
		builder:    builder,
		signer:     signer,
		appBaseURL: appBaseURL,
	}
}

// BuildReport builds a growth report for the parent's child over [start, end]
func (s *ReportService) BuildReport(parentID int64, childID, start, end string) (*models.GrowthReport, error) {
	if err := s.checkOwnership(parentID, childID); err != nil {
		return nil, err
	}
	return s.buildChecked(childID, start, end)
}

// ShareLink issues a signed link that opens the report without a session
func (s *ReportService) ShareLink(parentID int64, childID, start, end string) (string, error) {
	if err := s.checkOwnership(parentID, childID); err != nil {
		return "", err
	}
	if err := validatePeriod(start, end); err != nil {
		return "", err
	}

	token, err := s.signer.Sign(childID, start, end)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/api/shared/report?token=%s", s.appBaseURL, token), nil
}

// BuildSharedReport builds a report from a share token, bypassing session auth
func (s *ReportService) BuildSharedReport(token string) (*models.GrowthReport, error) {
	claims, err := s.signer.Verify(token)
	if err != nil {
		return nil, err
	}
	return s.buildChecked(claims.ChildID, claims.Start, claims.End)
}

func (s *ReportService) buildChecked(childID, start, end string) (*models.GrowthReport, error) {
	if err := validatePeriod(start, end); err != nil {
		return nil, err
	}

	growthReport, err := s.builder.Build(childID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to build report: %w", err)
	}
	return growthReport, nil
}

func (s *ReportService) checkOwnership(parentID int64, childID string) error {
	child, err := s.childRepo.GetByID(childID)
	if err != nil {
		return fmt.Errorf("failed to get child: %w", err)
	}
	if child == nil {
		return ErrChildNotFound
	}
	if child.ParentID != parentID {
		return ErrNotParentChild
	}
	return nil
}

func validatePeriod(start, end string) error {
	if err := validation.ValidateDate(start); err != nil {
		return err
	}
	if err := validation.ValidateDate(end); err != nil {
		return err
	}
	if end < start {
		return validation.ValidationError{Field: "period", Message: "end date is before start date"}
	}
	return nil
}
