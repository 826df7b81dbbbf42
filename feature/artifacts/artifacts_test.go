package artifacts

import (
	"context"
	"io"
	"strings"
	"testing"

	"hunterdb/core/storage/mocks"
	"hunterdb/feature/validate"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWriteListing(t *testing.T) {
	mockClient := new(mocks.Client)
	publisher := NewPublisher(mockClient, "test-bucket", zap.NewNop())

	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)

	var body []byte
	mockClient.On("PutObject", mock.Anything, "test-bucket", "artifacts/weapons_crafted.csv",
		mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			var err error
			body, err = io.ReadAll(args.Get(3).(io.Reader))
			require.NoError(t, err)
		}).
		Return(minio.UploadInfo{}, nil)

	lines := []string{"Buster Sword I,great-sword", "Buster Sword II,great-sword"}
	require.NoError(t, publisher.WriteListing(context.Background(), "weapons_crafted.csv", lines))

	assert.Equal(t, "Buster Sword I,great-sword\nBuster Sword II,great-sword", string(body))
	mockClient.AssertExpectations(t)
}

func TestWriteListingCreatesBucket(t *testing.T) {
	mockClient := new(mocks.Client)
	publisher := NewPublisher(mockClient, "test-bucket", zap.NewNop())

	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, nil)
	mockClient.On("MakeBucket", mock.Anything, "test-bucket", mock.Anything).Return(nil)
	mockClient.On("PutObject", mock.Anything, "test-bucket", mock.Anything,
		mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	require.NoError(t, publisher.WriteListing(context.Background(), "weapons_isolated.csv", nil))
	mockClient.AssertExpectations(t)
}

func TestPublishReport(t *testing.T) {
	mockClient := new(mocks.Client)
	publisher := NewPublisher(mockClient, "test-bucket", zap.NewNop())

	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)

	var objectName string
	var body []byte
	mockClient.On("PutObject", mock.Anything, "test-bucket",
		mock.MatchedBy(func(name string) bool { return strings.HasPrefix(name, "reports/") }),
		mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			objectName = args.String(2)
			var err error
			body, err = io.ReadAll(args.Get(3).(io.Reader))
			require.NoError(t, err)
		}).
		Return(minio.UploadInfo{}, nil)

	report := &validate.Report{Issues: []validate.Issue{
		{Severity: validate.Error, Entity: "Buster Sword I", Message: "weapon does not have any recipes"},
		{Severity: validate.Warning, Entity: "Zorah Magdaros", Message: "large monster does not contain a weakness entry"},
	}}

	runID, err := publisher.PublishReport(context.Background(), report)
	require.NoError(t, err)

	_, err = uuid.Parse(runID)
	assert.NoError(t, err, "run ids are UUIDs")
	assert.Equal(t, "reports/"+runID+".json", objectName)

	var doc ValidationReport
	require.NoError(t, json.Unmarshal(body, &doc))
	assert.Equal(t, runID, doc.RunID)
	assert.False(t, doc.Passed)
	assert.Equal(t, 1, doc.Errors)
	assert.Equal(t, 1, doc.Warnings)
	require.Len(t, doc.Issues, 2)
	assert.Contains(t, doc.Issues[0], "ERROR")

	mockClient.AssertExpectations(t)
}

func TestPublishReportBucketFailure(t *testing.T) {
	mockClient := new(mocks.Client)
	publisher := NewPublisher(mockClient, "test-bucket", zap.NewNop())

	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, assert.AnError)

	_, err := publisher.PublishReport(context.Background(), &validate.Report{})
	assert.Error(t, err)
}
