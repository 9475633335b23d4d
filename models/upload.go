// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UploadedFile is a file received in a multipart request. It lives only for
// the duration of one request and is never written to local disk.
type UploadedFile struct {
	// OriginalName is the filename supplied by the client. It is never used
	// as a storage key.
	OriginalName string

	// ContentType is the MIME type from the part header.
	ContentType string

	// Size is the number of bytes in Data.
	Size int64

	// Data is the whole file, buffered in memory.
	Data []byte
}

// StorageObject describes an object about to be written to the bucket.
type StorageObject struct {
	// Key is the full object key, including the "3d-uploads/" prefix.
	Key string

	// ContentType is sent as the object's Content-Type.
	ContentType string

	// Size is the exact number of bytes the body yields.
	Size int64

	// Metadata is stored as user metadata on the object.
	Metadata map[string]string
}
