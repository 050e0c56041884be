package usecase

import (
	"context"
	"time"

	"mobilicity/internal/domain/entity"
	"mobilicity/internal/domain/repository"
)

type ReportUseCase struct {
	reportRepo  repository.ReportRepository
	productRepo repository.ProductRepository
}

func NewReportUseCase(reportRepo repository.ReportRepository, productRepo repository.ProductRepository) *ReportUseCase {
	return &ReportUseCase{
		reportRepo:  reportRepo,
		productRepo: productRepo,
	}
}

type FileReportInput struct {
	ProductID string
	Reason    string
}

type ReportResult struct {
	Acknowledged bool
	Message      string
	Report       *entity.Report
}

// FileReport adds a product to the moderation log, once per (buyer,
// product) pair. Same pre-check shape as bookings.
func (uc *ReportUseCase) FileReport(ctx context.Context, buyerEmail string, input FileReportInput) (*ReportResult, error) {
	product, err := uc.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}

	reported, err := uc.reportRepo.ExistsForBuyerAndProduct(ctx, buyerEmail, input.ProductID)
	if err != nil {
		return nil, err
	}
	if reported {
		return &ReportResult{
			Acknowledged: false,
			Message:      "You already reported this product",
		}, nil
	}

	report := &entity.Report{
		BuyerEmail:  buyerEmail,
		ProductID:   product.ID,
		ProductName: product.Name,
		Reason:      input.Reason,
		CreatedAt:   time.Now(),
	}

	if err := uc.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}

	return &ReportResult{
		Acknowledged: true,
		Message:      "Report submitted",
		Report:       report,
	}, nil
}

func (uc *ReportUseCase) HasReported(ctx context.Context, buyerEmail, productID string) (bool, error) {
	return uc.reportRepo.ExistsForBuyerAndProduct(ctx, buyerEmail, productID)
}

func (uc *ReportUseCase) ListReports(ctx context.Context) ([]*entity.Report, error) {
	return uc.reportRepo.List(ctx)
}
