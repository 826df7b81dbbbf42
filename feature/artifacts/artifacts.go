package artifacts

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"hunterdb/core/storage"
	"hunterdb/feature/validate"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Publisher uploads build artifacts to one bucket.
type Publisher struct {
	client storage.Client
	bucket string
	log    *zap.Logger
}

// NewPublisher creates a publisher for the given bucket.
func NewPublisher(client storage.Client, bucket string, log *zap.Logger) *Publisher {
	return &Publisher{client: client, bucket: bucket, log: log}
}

// ensureBucket creates the artifact bucket if it does not exist yet.
func (p *Publisher) ensureBucket(ctx context.Context) error {
	exists, err := p.client.BucketExists(ctx, p.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := p.client.MakeBucket(ctx, p.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", p.bucket, err)
		}
	}
	return nil
}

// WriteListing uploads a plain text artifact, one line per entry.
func (p *Publisher) WriteListing(ctx context.Context, name string, lines []string) error {
	if err := p.ensureBucket(ctx); err != nil {
		return err
	}

	body := []byte(strings.Join(lines, "\n"))
	objectName := "artifacts/" + name

	_, err := p.client.PutObject(ctx, p.bucket, objectName,
		bytes.NewReader(body), int64(len(body)),
		minio.PutObjectOptions{ContentType: "text/plain"})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", objectName, err)
	}

	if p.log != nil {
		p.log.Info("artifact published",
			zap.String("object", objectName),
			zap.Int("lines", len(lines)))
	}
	return nil
}

// ValidationReport is the JSON document published for each run.
type ValidationReport struct {
	RunID       string   `json:"run_id"`
	GeneratedAt string   `json:"generated_at"`
	Passed      bool     `json:"passed"`
	Errors      int      `json:"errors"`
	Warnings    int      `json:"warnings"`
	Issues      []string `json:"issues"`
}

// PublishReport uploads the validation report and returns its run id.
func (p *Publisher) PublishReport(ctx context.Context, report *validate.Report) (string, error) {
	if err := p.ensureBucket(ctx); err != nil {
		return "", err
	}

	runID := uuid.NewString()
	errors, warnings := report.Counts()

	doc := ValidationReport{
		RunID:       runID,
		GeneratedAt: time.Now().Format(time.RFC3339),
		Passed:      !report.Failed(),
		Errors:      errors,
		Warnings:    warnings,
		Issues:      report.Lines(),
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}

	objectName := "reports/" + runID + ".json"
	_, err = p.client.PutObject(ctx, p.bucket, objectName,
		bytes.NewReader(body), int64(len(body)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", objectName, err)
	}

	if p.log != nil {
		p.log.Info("validation report published",
			zap.String("object", objectName),
			zap.Bool("passed", doc.Passed))
	}
	return runID, nil
}
