package usecase

import (
	"context"
	"io"

	"emostore/internal/domain/model"
	"emostore/internal/domain/repository/blob"
	dbRepository "emostore/internal/domain/repository/database"
)

// Getter serves direct file retrieval. Here, unlike export, a record
// whose blob is gone is a hard NotFound.
type Getter struct {
	retriever  dbRepository.Retriever
	blobReader blob.Reader
}

func NewGetter(retriever dbRepository.Retriever, blobReader blob.Reader) *Getter {
	return &Getter{retriever: retriever, blobReader: blobReader}
}

func (g *Getter) OpenMedia(ctx context.Context, id string) (*model.MediaRecord, io.ReadCloser, error) {
	record, err := g.retriever.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	rc, _, err := g.blobReader.Open(ctx, record.RelativePath)
	if err != nil {
		return nil, nil, err
	}

	return record, rc, nil
}
