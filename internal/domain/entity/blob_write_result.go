package entity

// BlobWriteResult reports what the blob store actually persisted. SizeBytes
// is the on-store object size, not the client-reported one.
type BlobWriteResult struct {
	RelativePath string `json:"relative_path"`
	SizeBytes    int64  `json:"size_bytes"`
}
