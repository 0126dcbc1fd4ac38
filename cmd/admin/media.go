package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"erp/backend/internal/pkg/config"
	"erp/backend/internal/pkg/repository/sqlitedb"
	"erp/backend/internal/repository/sqlite/worker"
	"erp/backend/internal/service"

	"github.com/pkg/errors"
)

const (
	kindPhoto   = "photo"
	kindIDProof = "id_proof"

	thumbnailSize = 160
)

// attachFile copies src into the media directory and points the worker's
// photo or ID proof at the copy. The previous file is left in place.
func attachFile(ctx context.Context, db *sqlitedb.Database, cfg *config.Config, id, kind, src string) (string, error) {
	workerID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return "", fmt.Errorf("invalid worker id %q", id)
	}

	folder := ""
	switch kind {
	case kindPhoto:
		folder = "photos"
	case kindIDProof:
		folder = "id_proofs"
	default:
		return "", fmt.Errorf("unknown attachment %q, expected photo or id_proof", kind)
	}

	repo := worker.NewRepository(db)
	w, err := repo.GetById(ctx, workerID)
	if err != nil {
		return "", errors.Wrap(err, fmt.Sprintf("loading worker %d", workerID))
	}

	path, err := service.Upload(src, cfg.MediaDir, folder, fmt.Sprintf("%s_%d", kind, workerID))
	if err != nil {
		return "", err
	}

	request := worker.UpdateRequest{ID: w.ID, CreateRequest: worker.CreateRequest{
		FirstName:          w.FirstName,
		LastName:           w.LastName,
		PhotoPath:          w.PhotoPath,
		Address:            w.Address,
		ContactNumber:      w.ContactNumber,
		PreviousExperience: w.PreviousExperience,
		SalaryAmount:       w.SalaryAmount,
		SalaryFrequency:    w.SalaryFrequency,
		Role:               w.Role,
		JoiningDate:        w.JoiningDate,
		IDProofPath:        w.IDProofPath,
	}}

	if kind == kindPhoto {
		request.PhotoPath = path
		thumb := strings.TrimSuffix(path, filepath.Ext(path)) + "_thumb.png"
		if err = service.SaveThumbnail(path, thumb, thumbnailSize, thumbnailSize); err != nil {
			db.Logf("worker thumbnail", workerID, err)
		}
	} else {
		request.IDProofPath = path
	}

	if err = repo.UpdateAll(ctx, request); err != nil {
		return "", err
	}

	return path, nil
}
