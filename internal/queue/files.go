package queue

import (
	"context"
	"encoding/json"

	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/teskilat/backend/internal/storage"
	"github.com/teskilat/backend/pkg/logger"
)

// FileDeleteMessage is queued when an attachment row is soft-deleted; the
// worker removes the underlying blob out of band.
type FileDeleteMessage struct {
	FileID    string `json:"file_id"`
	ObjectKey string `json:"object_key"`
}

// ProcessFileDeleteMessage removes one attachment blob from S3. Returning an
// error sends the message through the retry/dead-letter path.
func ProcessFileDeleteMessage(ctx context.Context, s3Client *awss3.Client, msg string) error {
	data := new(FileDeleteMessage)
	if err := json.Unmarshal([]byte(msg), data); err != nil {
		return err
	}

	if err := storage.DeleteFile(ctx, s3Client, data.ObjectKey); err != nil {
		return err
	}

	logger.Info("[Queue] Deleted attachment blob", "file_id", data.FileID, "object_key", data.ObjectKey)
	return nil
}
