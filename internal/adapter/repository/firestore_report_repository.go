package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"mobilicity/internal/domain/entity"
	"mobilicity/internal/domain/repository"
	"mobilicity/pkg/errors"
)

type firestoreReportRepository struct {
	client *firestore.Client
}

func NewFirestoreReportRepository(client *firestore.Client) repository.ReportRepository {
	return &firestoreReportRepository{
		client: client,
	}
}

func (r *firestoreReportRepository) Create(ctx context.Context, report *entity.Report) error {
	if report.ID == "" {
		doc := r.client.Collection("reports").NewDoc()
		report.ID = doc.ID
	}
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("reports").Doc(report.ID).Set(ctx, report)
	if err != nil {
		return errors.Internal("Failed to create report", err)
	}

	return nil
}

func (r *firestoreReportRepository) ExistsForBuyerAndProduct(ctx context.Context, buyerEmail, productID string) (bool, error) {
	query := r.client.Collection("reports").
		Where("buyerEmail", "==", buyerEmail).
		Where("productId", "==", productID).
		Limit(1)
	iter := query.Documents(ctx)
	_, err := iter.Next()
	if err == iterator.Done {
		return false, nil
	}
	if err != nil {
		return false, errors.Internal("Failed to query reports", err)
	}
	return true, nil
}

func (r *firestoreReportRepository) List(ctx context.Context) ([]*entity.Report, error) {
	iter := r.client.Collection("reports").Documents(ctx)
	var reports []*entity.Report

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list reports", err)
		}

		var report entity.Report
		if err := doc.DataTo(&report); err != nil {
			return nil, errors.Internal("Failed to parse report data", err)
		}
		reports = append(reports, &report)
	}

	return reports, nil
}
