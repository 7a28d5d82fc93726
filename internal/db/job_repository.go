package db

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"skillhub-backend-go/internal/models"
)

const jobsCollection = "jobs"

// ErrJobNotOpen is returned when a completion is attempted on a job that has
// already left the open state. The transition is strictly one-way.
var ErrJobNotOpen = errors.New("job is not open")

// firestoreJobRepository implements the JobRepository interface using Firestore.
type firestoreJobRepository struct {
	client *firestore.Client
}

// NewFirestoreJobRepository creates a new instance of firestoreJobRepository.
func NewFirestoreJobRepository(client *firestore.Client) JobRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for JobRepository.")
	}
	return &firestoreJobRepository{client: client}
}

// Create adds a new job document to Firestore with an auto-generated ID.
func (r *firestoreJobRepository) Create(ctx context.Context, job *models.Job) (string, error) {
	docRef := r.client.Collection(jobsCollection).NewDoc()
	job.ID = docRef.ID

	_, err := docRef.Create(ctx, job)
	if err != nil {
		return "", fmt.Errorf("failed to create job: %w", err)
	}
	return docRef.ID, nil
}

// GetByID retrieves a job document from Firestore by its ID.
func (r *firestoreJobRepository) GetByID(ctx context.Context, jobID string) (*models.Job, error) {
	if jobID == "" {
		return nil, errors.New("jobID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(jobsCollection).Doc(jobID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("job with ID '%s' not found: %w", jobID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get job with ID '%s': %w", jobID, err)
	}

	var job models.Job
	if err := docSnap.DataTo(&job); err != nil {
		return nil, fmt.Errorf("failed to decode job data for ID '%s': %w", jobID, err)
	}
	job.ID = docSnap.Ref.ID

	return &job, nil
}

// ListAll retrieves every job, newest first.
func (r *firestoreJobRepository) ListAll(ctx context.Context) ([]*models.Job, error) {
	iter := r.client.Collection(jobsCollection).OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var jobs []*models.Job
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate jobs: %w", err)
		}

		var job models.Job
		if err := doc.DataTo(&job); err != nil {
			log.Printf("Error decoding job data (ID: %s): %v. Skipping.", doc.Ref.ID, err)
			continue
		}
		job.ID = doc.Ref.ID
		jobs = append(jobs, &job)
	}

	return jobs, nil
}

// CompleteIfOpen performs the open -> completed transition inside a Firestore
// transaction, so two concurrent completers cannot both win. The returned job
// reflects the post-transition state.
func (r *firestoreJobRepository) CompleteIfOpen(ctx context.Context, jobID, completerUID string, completedAt time.Time) (*models.Job, error) {
	if jobID == "" {
		return nil, errors.New("jobID cannot be empty for CompleteIfOpen operation")
	}
	if completerUID == "" {
		return nil, errors.New("completerUID cannot be empty for CompleteIfOpen operation")
	}

	docRef := r.client.Collection(jobsCollection).Doc(jobID)
	var job models.Job

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		docSnap, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return fmt.Errorf("job with ID '%s' not found: %w", jobID, ErrNotFound)
			}
			return fmt.Errorf("failed to get job with ID '%s' in transaction: %w", jobID, err)
		}
		if err := docSnap.DataTo(&job); err != nil {
			return fmt.Errorf("failed to decode job data for ID '%s': %w", jobID, err)
		}
		if job.Status != models.JobStatusOpen {
			return fmt.Errorf("job with ID '%s' has status '%s': %w", jobID, job.Status, ErrJobNotOpen)
		}

		return tx.Update(docRef, []firestore.Update{
			{Path: "status", Value: models.JobStatusCompleted},
			{Path: "completedBy", Value: completerUID},
			{Path: "completedAt", Value: completedAt},
		})
	})
	if err != nil {
		return nil, err
	}

	job.ID = jobID
	job.Status = models.JobStatusCompleted
	job.CompletedBy = completerUID
	job.CompletedAt = &completedAt

	return &job, nil
}
