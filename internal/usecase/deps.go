package usecase

import "io"

// MediaStore is the slice of the media bucket the use cases need. Satisfied
// by *s3.Client.
type MediaStore interface {
	UploadFile(key string, file io.Reader, contentType string) (string, error)
	DeleteFile(key string) error
}

// TaskPublisher pushes activity tasks to the notification queue. Satisfied
// by *queue.Client; a nil publisher disables publishing.
type TaskPublisher interface {
	PublishNotificationTask(task map[string]interface{}) error
}
