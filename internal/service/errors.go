package service

import "errors"

var (
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrNoFileUploaded      = errors.New("no file uploaded")
	ErrUnsupportedFileType = errors.New("invalid file type, only 3D model files are allowed")
	ErrFileTooLarge        = errors.New("file too large")
	ErrUploadFailed        = errors.New("failed to upload file to storage")
)
